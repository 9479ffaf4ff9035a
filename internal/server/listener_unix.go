//go:build linux || darwin

package server

import (
	"errors"
	"net"
	"os"
	"strconv"
)

// GetListener returns the server listener. With SOCKET_ACTIVATION=1 it
// adopts the socket systemd passed as fd 3 (LISTEN_FDS protocol), so
// restarts do not drop in-flight storefront beacons; otherwise it binds
// addr directly.
func GetListener(addr string) (net.Listener, error) {
	if os.Getenv("SOCKET_ACTIVATION") != "1" {
		return net.Listen("tcp", addr)
	}

	if os.Getenv("LISTEN_FDS") != "1" {
		return nil, errors.New("socket activation requested but no valid LISTEN_FDS")
	}
	if pid, _ := strconv.Atoi(os.Getenv("LISTEN_PID")); pid != os.Getpid() {
		return nil, errors.New("socket activation fd addressed to another pid")
	}
	f := os.NewFile(uintptr(3), "listener") // SD_LISTEN_FDS_START
	if f == nil {
		return nil, errors.New("socket activation fd 3 unavailable")
	}
	return net.FileListener(f)
}
