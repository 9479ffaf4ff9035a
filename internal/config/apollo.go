package config

import (
	"log"
	"strconv"

	agollo "github.com/apolloconfig/agollo/v4"
	apconf "github.com/apolloconfig/agollo/v4/env/config"
	"github.com/apolloconfig/agollo/v4/storage"
)

// overrideFromApollo starts the Apollo client and overrides config values if
// present. Returns a closer to stop the Apollo client.
func overrideFromApollo(cfg *Config, store *Store) (func(), error) {
	if cfg.Apollo.Addrs == "" || cfg.Apollo.AppID == "" {
		log.Println("apollo: missing APOLLO_ADDRS or APOLLO_APP_ID; skip")
		return nil, nil
	}

	ns := cfg.Apollo.Namespace
	if ns == "" {
		ns = "application"
	}

	appCfg := &apconf.AppConfig{
		AppID:              cfg.Apollo.AppID,
		Cluster:            cfg.Apollo.Cluster,
		NamespaceName:      ns,
		IP:                 cfg.Apollo.Addrs,
		Secret:             cfg.Apollo.AccessKey,
	}

	client, err := agollo.StartWithConfig(func() (*apconf.AppConfig, error) { return appCfg, nil })
	if err != nil {
		return nil, err
	}

	applyApolloOverrides(client, ns, cfg)
	_ = store.UpdateValidated(cfg, map[string]bool{"apollo.init": true})

	client.AddChangeListener(&changeListener{ns: ns, client: client, store: store})

	// agollo v4 exposes no Stop API; the closer is a no-op kept for symmetry.
	return func() {}, nil
}

func applyApolloOverrides(client agollo.Client, namespace string, cfg *Config) {
	cache := client.GetConfigCache(namespace)
	if cache == nil {
		return
	}
	getStr := func(key string, dst *string, allowEmpty bool) {
		if v, err := cache.Get(key); err == nil {
			if s, _ := v.(string); allowEmpty || s != "" {
				*dst = s
			}
		}
	}
	getInt := func(key string, dst *int) {
		if v, err := cache.Get(key); err == nil {
			if s, _ := v.(string); s != "" {
				if n, err := strconv.Atoi(s); err == nil {
					*dst = n
				}
			}
		}
	}

	getStr("app.env", &cfg.AppEnv, false)
	getStr("server.addr", &cfg.Server.Addr, false)
	getStr("log.level", &cfg.Log.Level, false)
	getStr("log.format", &cfg.Log.Format, false)

	getStr("pg.url", &cfg.PG.URL, false)
	getInt("pg.max_open", &cfg.PG.MaxOpenConns)
	getInt("pg.max_idle", &cfg.PG.MaxIdleConns)

	getStr("redis.addr", &cfg.Redis.Addr, false)
	getStr("redis.password", &cfg.Redis.Password, true)
	getInt("redis.db", &cfg.Redis.DB)

	getStr("mq.url", &cfg.MQ.URL, false)

	getStr("es.addrs", &cfg.ES.Addrs, false)
	getStr("es.username", &cfg.ES.Username, true)
	getStr("es.password", &cfg.ES.Password, true)

	if v, err := cache.Get("bot.threshold"); err == nil {
		if s, _ := v.(string); s != "" {
			if f, err := strconv.ParseFloat(s, 64); err == nil && f > 0 && f <= 1 {
				cfg.Bot.Threshold = f
			}
		}
	}

	getInt("rate_limit.window_sec", &cfg.RateLimit.WindowSec)
	getInt("rate_limit.max", &cfg.RateLimit.Max)
}

type changeListener struct {
	ns     string
	client agollo.Client
	store  *Store
}

func (c *changeListener) OnChange(e *storage.ChangeEvent) {
	log.Printf("apollo change: namespace=%s, changes=%d", e.Namespace, len(e.Changes))
	cur := c.store.Get()
	next := cloneConfig(cur)
	applyApolloOverrides(c.client, c.ns, next)
	changed := map[string]bool{}
	for k := range e.Changes {
		changed[k] = true
	}
	_ = c.store.UpdateValidated(next, changed)
}

func (c *changeListener) OnNewestChange(e *storage.FullChangeEvent) {
	log.Printf("apollo newest change: namespace=%s", e.Namespace)
}
