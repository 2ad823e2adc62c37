package main

import (
	"context"
	"log"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/harshkhandelwal17/tbes-company-website/config"
	"github.com/harshkhandelwal17/tbes-company-website/internal/assets"
	"github.com/harshkhandelwal17/tbes-company-website/internal/bootstrap"
	"github.com/harshkhandelwal17/tbes-company-website/internal/cleanup"
	"github.com/harshkhandelwal17/tbes-company-website/internal/projects/repository"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	bootstrap.SetGinMode(cfg.App.Environment)

	ctx := context.Background()

	db, err := bootstrap.OpenDB(ctx, bootstrap.DBOptions{
		DSN:      cfg.Database.DSN,
		MaxConns: cfg.Database.MaxConns,
		MinConns: cfg.Database.MinConns,
	})
	if err != nil {
		log.Fatalf("db: %v", err)
	}
	defer db.Close()

	rdb, err := bootstrap.OpenRedis(ctx, bootstrap.RedisOptions{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err != nil {
		log.Fatalf("redis: %v", err)
	}
	defer rdb.Close()

	store, err := assets.NewStore(cfg.Uploads.Dir)
	if err != nil {
		log.Fatalf("uploads: %v", err)
	}

	sweeper := cleanup.NewSweeper(
		repository.NewRepo(db),
		store,
		time.Duration(cfg.Uploads.SweepGraceHours)*time.Hour,
	)
	c := cron.New()
	if err := sweeper.Schedule(c); err != nil {
		log.Fatalf("cron: %v", err)
	}
	c.Start()
	defer c.Stop()

	r := bootstrap.BuildRouter(bootstrap.RouterDeps{
		ServiceName:  "tbes-company-website",
		Version:      cfg.App.Version,
		AllowOrigins: cfg.Server.AllowOrigins,
		DB:           db,
		Redis:        rdb,
		Assets:       store,
		UploadsDir:   cfg.Uploads.Dir,
		AdminHash:    cfg.Admin.PasswordHash,
		SessionTTL:   time.Duration(cfg.Admin.SessionTTLMinutes) * time.Minute,
	})

	log.Printf("[info] op=startup port=%s env=%s", cfg.Server.Port, cfg.App.Environment)
	if err := r.Run(":" + cfg.Server.Port); err != nil {
		log.Fatalf("server: %v", err)
	}
}
