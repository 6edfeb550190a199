package main

import (
	"context"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"turkeypos/internal/adapters/api"
	menucache "turkeypos/internal/adapters/cache"
	"turkeypos/internal/httpx"
	"turkeypos/internal/journal"
	journalsqlite "turkeypos/internal/journal/sqlite"
	"turkeypos/internal/pkg/cache"
	"turkeypos/internal/pkg/telemetry"
	"turkeypos/internal/pos/ports"
	"turkeypos/internal/pos/session"
)

func main() {
	telemetry.InitLogger("pos-terminal")

	listenAddr := getEnv("POS_LISTEN_ADDR", ":8080")
	apiBase := getEnv("POS_API_BASE", "http://localhost:8000/api/v1")
	apiToken := os.Getenv("POS_API_TOKEN")
	redisAddr := os.Getenv("POS_REDIS_ADDR")
	journalPath := getEnv("POS_JOURNAL_PATH", "checkout-journal.db")
	menuTTL := getDuration("POS_MENU_CACHE_TTL", time.Minute)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	shutdownTracer, err := telemetry.SetupTracer(ctx, "pos-terminal")
	if err != nil {
		slog.Warn("tracing disabled", "error", err)
	} else {
		defer func() { _ = shutdownTracer(context.Background()) }()
	}

	client := api.NewClient(apiBase, api.Credentials{Token: apiToken})

	var menu ports.MenuService = client
	if redisAddr != "" {
		menu = menucache.NewCachedMenu(client, cache.NewRedisCache(redisAddr, "pos-terminal"), menuTTL)
		slog.Info("menu cache enabled", "redis_addr", redisAddr, "ttl", menuTTL)
	}

	var checkoutJournal journal.Repository
	var checkoutReader journal.Reader
	if journalPath != "" {
		repo, err := journalsqlite.Open(journalPath)
		if err != nil {
			log.Fatalf("open checkout journal: %v", err)
		}
		defer repo.Close()
		checkoutJournal = repo
		checkoutReader = repo
	}

	sessions := session.NewManager(client, checkoutJournal)
	handler := httpx.NewHandler(sessions, menu, client, client, checkoutReader)

	server := &http.Server{
		Addr:    listenAddr,
		Handler: otelhttp.NewHandler(httpx.NewRouter(handler), "pos-terminal"),
	}

	go func() {
		slog.Info("pos terminal listening", "addr", listenAddr, "api_base", apiBase)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("http server failed: %v", err)
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("shutdown incomplete", "error", err)
	}
	slog.Info("pos terminal stopped")
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		log.Fatalf("invalid %s: %v", key, err)
	}
	return d
}
