//go:build integration
// +build integration

package db

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/testcontainers/testcontainers-go/modules/postgres"

	"visitor-iq/ent/fingerprint"
	"visitor-iq/internal/config"
	"visitor-iq/internal/identity"
	"visitor-iq/internal/signal"
)

func Test_Open_With_PostgresContainer(t *testing.T) {
	ctx := context.Background()

	pg, err := postgres.RunContainer(ctx,
		postgres.WithDatabase("app"),
		postgres.WithUsername("postgres"),
		postgres.WithPassword("postgres"),
		postgres.WithSQLDriver("pgx"),
		postgres.BasicWaitStrategies(),
	)
	if err != nil {
		t.Fatalf("start postgres: %v", err)
	}
	t.Cleanup(func() { _ = pg.Terminate(ctx) })

	host, err := pg.Host(ctx)
	if err != nil {
		t.Fatalf("get container host: %v", err)
	}
	port, err := pg.MappedPort(ctx, "5432")
	if err != nil {
		t.Fatalf("get container port: %v", err)
	}

	dsn := fmt.Sprintf("postgres://postgres:postgres@%s:%s/app?sslmode=disable", host, port.Port())

	cfg := &config.Config{}
	cfg.PG.URL = dsn
	cfg.PG.MaxOpenConns = 5
	cfg.PG.MaxIdleConns = 2

	c, closeFn, err := Open(cfg)
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	defer closeFn()

	ctx2, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	if err := c.Schema.Create(ctx2); err != nil {
		t.Fatalf("create schema: %v", err)
	}

	m, err := c.Merchant.Create().
		SetShopDomain("it.example.com").
		SetName("Integration Shop").
		Save(ctx2)
	if err != nil {
		t.Fatalf("create merchant: %v", err)
	}
	if m.ShopDomain != "it.example.com" {
		t.Fatalf("merchant shop = %q", m.ShopDomain)
	}

	// exercise the real ON CONFLICT upsert path against postgres
	engine := identity.NewEngine(c, nil)
	payload := signal.RawPayload{
		Shop:            "it.example.com",
		FingerprintHash: "fp-it-1",
		CanvasHash:      "c",
		WebglHash:       "w",
		UserAgent:       "Mozilla/5.0",
		Platform:        "Linux x86_64",
		Timezone:        "UTC",
		ScreenWidth:     1280,
		ScreenHeight:    720,
	}
	first := engine.Collect(ctx2, payload, "198.51.100.1")
	if !first.Success || first.VisitCount != 1 {
		t.Fatalf("first collect: %+v", first)
	}
	second := engine.Collect(ctx2, payload, "198.51.100.2")
	if !second.Success || second.VisitCount != 2 {
		t.Fatalf("second collect: %+v", second)
	}
	if first.FingerprintID != second.FingerprintID {
		t.Errorf("upsert created a duplicate fingerprint")
	}

	count, err := c.Fingerprint.Query().Count(ctx2)
	if err != nil {
		t.Fatalf("count fingerprints: %v", err)
	}
	if count != 1 {
		t.Errorf("expected 1 fingerprint, got %d", count)
	}

	// concurrent collects for the same hash must serialize on the upsert:
	// one row, every visit counted
	const racers = 10
	racing := payload
	racing.FingerprintHash = "fp-it-race"
	var wg sync.WaitGroup
	errs := make(chan string, racers)
	for i := 0; i < racers; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			ip := fmt.Sprintf("198.51.100.%d", 10+n)
			if res := engine.Collect(ctx2, racing, ip); !res.Success {
				errs <- res.Error
			}
		}(i)
	}
	wg.Wait()
	close(errs)
	for msg := range errs {
		t.Fatalf("concurrent collect failed: %s", msg)
	}

	raced, err := c.Fingerprint.Query().
		Where(fingerprint.FpHash("fp-it-race")).
		All(ctx2)
	if err != nil {
		t.Fatalf("query raced fingerprint: %v", err)
	}
	if len(raced) != 1 {
		t.Fatalf("expected 1 fingerprint row, got %d", len(raced))
	}
	if raced[0].VisitCount != racers {
		t.Errorf("visit count = %d, want %d", raced[0].VisitCount, racers)
	}
}
