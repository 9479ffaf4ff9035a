// Package main is the entry point for the visitor identity API server
//
//	@title			Visitor IQ API
//	@version		1.0
//	@description	Visitor identity resolution and behavioral scoring for e-commerce storefronts
//
//	@host		localhost:8080
//	@BasePath	/
//
//	@schemes		http https
//
//	@securityDefinitions.apikey	BearerAuth
//	@in						header
//	@name					Authorization
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"visitor-iq/internal/config"
	"visitor-iq/internal/db"
	"visitor-iq/internal/esx"
	"visitor-iq/internal/httpx"
	"visitor-iq/internal/httpx/kit"
	"visitor-iq/internal/identity"
	"visitor-iq/internal/logx"
	"visitor-iq/internal/mqx"
	"visitor-iq/internal/redisx"
	"visitor-iq/internal/server"

	_ "visitor-iq/docs" // swagger docs
)

func main() {
	// Load .env if present
	_ = godotenv.Load()

	// Load config (env first; optional Apollo override)
	cfg, store, apClose, err := config.Load()
	if err != nil {
		panic(err)
	}
	if apClose != nil {
		defer apClose()
	}

	logx.Init(cfg.Log.Level, cfg.Log.Format)
	mainLogger := logx.GetScope("main")

	mainLogger.Info("config loaded",
		zap.String("env", cfg.AppEnv),
		zap.String("addr", cfg.Server.Addr),
		zap.String("log.level", cfg.Log.Level),
		zap.Float64("bot.threshold", cfg.Bot.Threshold),
	)

	// Open DB (Ent + pgx)
	client, closeDB, err := db.Open(cfg)
	if err != nil {
		mainLogger.Sugar().Error("open db error", "err", err)
		panic(err)
	}
	defer closeDB()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := client.Schema.Create(ctx); err != nil {
		mainLogger.Sugar().Error("auto migrate error", "err", err)
		panic(err)
	}

	// Optional deps: Redis, MQ, ES
	rdb, redisClose, err := redisx.Open(cfg)
	if err != nil {
		mainLogger.Sugar().Warn("redis init failed", "err", err)
	} else {
		defer redisClose()
	}

	engine := identity.NewEngine(client, store)

	consumeCtx, stopConsume := context.WithCancel(context.Background())
	defer stopConsume()
	if cfg.MQ.URL != "" {
		if pub, err := mqx.NewRabbitPublisher(cfg.MQ.URL, "events"); err != nil {
			mainLogger.Sugar().Warn("mq publisher init failed", "err", err)
		} else {
			engine.MQ = pub
			defer func() { _ = pub.Close() }()
		}
		if con, err := mqx.NewRabbitConsumer(cfg.MQ.URL, "events", "behavior-events", "behavior.*"); err != nil {
			mainLogger.Sugar().Warn("mq consumer init failed", "err", err)
		} else {
			if err := con.Start(consumeCtx, func(ctx context.Context, _ string, body []byte) error {
				return engine.HandleBehaviorMessage(ctx, body)
			}); err != nil {
				mainLogger.Sugar().Warn("mq consume start failed", "err", err)
			}
			defer func() { _ = con.Close() }()
		}
	}

	esClient, esClose, err := esx.Open(cfg)
	if err != nil {
		mainLogger.Sugar().Warn("es init failed", "err", err)
	} else {
		engine.ES = esClient
		defer esClose()
	}

	// Fiber app and routes
	app := fiber.New(fiber.Config{ErrorHandler: kit.ErrorHandler()})
	httpx.RegisterCommonMiddlewares(app)
	httpx.Register(app, client, store, engine, &httpx.Providers{Redis: rdb})

	// Validators: rollback strategy for invalid config
	store.AddValidator(func(newCfg *config.Config, changed map[string]bool) error {
		if changed["pg.max_open"] || changed["pg.max_idle"] {
			if newCfg.PG.MaxIdleConns > newCfg.PG.MaxOpenConns {
				return fmt.Errorf("PG_MAX_IDLE cannot exceed PG_MAX_OPEN")
			}
		}
		if changed["bot.threshold"] {
			if t := newCfg.Bot.Threshold; t <= 0 || t > 1 {
				return fmt.Errorf("BOT_THRESHOLD must be in (0, 1]")
			}
		}
		return nil
	})

	store.Watch(func(newCfg *config.Config, changed map[string]bool) {
		if changed["pg.max_open"] || changed["pg.max_idle"] {
			db.UpdatePool(newCfg.PG.MaxOpenConns, newCfg.PG.MaxIdleConns)
			mainLogger.Info("db pool updated",
				zap.Int("max_open", newCfg.PG.MaxOpenConns),
				zap.Int("max_idle", newCfg.PG.MaxIdleConns),
			)
		}
		if changed["bot.threshold"] {
			mainLogger.Info("bot threshold updated", zap.Float64("threshold", newCfg.Bot.Threshold))
		}
		if changed["log.level"] || changed["log.format"] {
			logx.Init(newCfg.Log.Level, newCfg.Log.Format)
			mainLogger.Info("logger reconfigured",
				zap.String("level", newCfg.Log.Level),
				zap.String("format", newCfg.Log.Format),
			)
		}
	})

	// Graceful shutdown
	go func() {
		ln, err := server.GetListener(cfg.Server.Addr)
		if err != nil {
			mainLogger.Sugar().Errorf("listener error: %v", err)
			return
		}
		if err := app.Listener(ln); err != nil {
			mainLogger.Sugar().Infof("fiber exit: %v", err)
		}
	}()
	mainLogger.Sugar().Infof("server started on %s", cfg.Server.Addr)

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	<-sig
	mainLogger.Sugar().Info("shutting down...")
	_ = app.Shutdown()
}
