package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"

	"unihub/internal/catalog"
	"unihub/internal/compare"
	"unihub/internal/config"
	"unihub/internal/db"
	"unihub/internal/router"
	"unihub/internal/service"
	"unihub/internal/session"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	source, closeSource, err := openSource(cfg)
	if err != nil {
		log.Fatalf("source open: %v", err)
	}
	if closeSource != nil {
		defer closeSource()
	}

	cat := catalog.New(source)
	n, err := cat.Load(context.Background())
	if err != nil {
		log.Fatalf("catalog load: %v", err)
	}
	if n == 0 && cfg.RequireCatalog {
		log.Fatalf("catalog load yielded zero records (driver=%s)", cfg.SourceDriver)
	}
	log.Printf("catalog loaded: %d records", n)

	// Root context cancelled on shutdown — propagates to the session janitor.
	rootCtx, rootCancel := context.WithCancel(context.Background())
	defer rootCancel()

	sessions, sets, err := openStores(rootCtx, cfg)
	if err != nil {
		log.Fatalf("store open: %v", err)
	}

	export, err := service.NewExportService(cfg)
	if err != nil {
		log.Fatalf("export init: %v", err)
	}

	handler := router.New(cfg, cat, sessions, sets, export)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.Port),
		Handler:      handler,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	done := make(chan os.Signal, 1)
	signal.Notify(done, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		log.Printf("unihub listening on :%s (source=%s store=%s)", cfg.Port, cfg.SourceDriver, cfg.StoreBackend)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %v", err)
		}
	}()

	<-done
	log.Println("shutting down...")
	rootCancel() // stop janitor

	shutCtx, shutCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutCancel()
	if err := srv.Shutdown(shutCtx); err != nil {
		log.Printf("shutdown error: %v", err)
	}
	log.Println("stopped")
}

// openSource builds the catalog row source for the configured driver. The
// returned closer is nil for the CSV source, which holds no connection.
func openSource(cfg *config.Config) (catalog.Source, func() error, error) {
	switch cfg.SourceDriver {
	case "sqlite", "postgres":
		database, err := db.Open(cfg)
		if err != nil {
			return nil, nil, err
		}
		src, err := catalog.NewSQLSource(database, cfg.SourceTable)
		if err != nil {
			database.Close()
			return nil, nil, err
		}
		return src, database.Close, nil
	case "csv":
		return catalog.NewCSVSource(cfg.SourcePath), nil, nil
	default:
		return nil, nil, fmt.Errorf("unsupported source driver: %s", cfg.SourceDriver)
	}
}

// openStores builds the per-user session and comparison stores. The memory
// backend runs an eviction janitor tied to ctx; the redis backend lets the
// server lean on key TTLs instead.
func openStores(ctx context.Context, cfg *config.Config) (session.Store, compare.Store, error) {
	switch cfg.StoreBackend {
	case "redis":
		client := redis.NewClient(&redis.Options{
			Addr: cfg.RedisAddr,
			DB:   cfg.RedisDB,
		})
		if err := client.Ping(ctx).Err(); err != nil {
			return nil, nil, fmt.Errorf("redis ping %s: %w", cfg.RedisAddr, err)
		}
		return session.NewRedisStore(client, cfg.SessionTTL), compare.NewRedisStore(client, cfg.SessionTTL), nil
	default:
		sessions := session.NewMemoryStore(cfg.SessionTTL)
		go sessions.StartJanitor(ctx)
		return sessions, compare.NewMemoryStore(), nil
	}
}
