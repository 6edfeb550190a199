package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"turkeypos/internal/adapters/api"
	"turkeypos/internal/kitchen"
	"turkeypos/internal/pkg/telemetry"
)

func main() {
	telemetry.InitLogger("kitchen-display")

	apiBase := getEnv("POS_API_BASE", "http://localhost:8000/api/v1")
	apiToken := os.Getenv("POS_API_TOKEN")
	interval := getDuration("KITCHEN_POLL_INTERVAL", 10*time.Second)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	shutdownTracer, err := telemetry.SetupTracer(ctx, "kitchen-display")
	if err != nil {
		slog.Warn("tracing disabled", "error", err)
	} else {
		defer func() { _ = shutdownTracer(context.Background()) }()
	}

	client := api.NewClient(apiBase, api.Credentials{Token: apiToken})
	board := kitchen.NewBoard()
	poller := kitchen.NewPoller(client, board, interval)

	go render(ctx, board, interval)

	slog.Info("kitchen display polling", "api_base", apiBase, "interval", interval)
	if err := poller.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		log.Fatalf("poller failed: %v", err)
	}
	slog.Info("kitchen display stopped")
}

// render prints the board to stdout on the same cadence as the poller.
func render(ctx context.Context, board *kitchen.Board, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			orders := board.Orders()
			fmt.Printf("\n=== %s | %d pending order(s) ===\n",
				board.UpdatedAt().Format("15:04:05"), len(orders))
			for _, o := range orders {
				table := o.TableNumber
				if table == "" {
					table = "N/A"
				}
				fmt.Printf("table %-8s %s\n", table, o.Status)
				for _, it := range o.Items {
					fmt.Printf("  %dx %s", it.Quantity, it.ProductName)
					for _, opt := range it.SelectedOptions {
						fmt.Printf(" [+%s]", opt.OptionName)
					}
					fmt.Println()
				}
			}
		}
	}
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
