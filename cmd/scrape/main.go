package main

import (
	"context"
	"encoding/json"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"irres-scraper/internal/httpx"
	"irres-scraper/internal/scraper"
)

// One-shot run of the pipeline, writing the listings to a JSON file.
func main() {
	out := flag.String("out", "irres_listings.json", "output file, - for stdout")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))
	slog.SetDefault(logger)

	godotenv.Load()

	cfg := scraper.DefaultConfig()
	if origin := os.Getenv("SITE_ORIGIN"); origin != "" {
		cfg.Origin = origin
	}
	if path := os.Getenv("SITE_INDEX_PATH"); path != "" {
		cfg.IndexPath = path
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	fetcher := httpx.NewFetcher(os.Getenv("SCRAPER_USER_AGENT"))
	svc := scraper.NewService(cfg, fetcher, logger)

	listings, err := svc.Scrape(ctx)
	if err != nil {
		slog.Error("scrape failed", "error", err)
		os.Exit(1)
	}

	w := os.Stdout
	if *out != "-" {
		f, err := os.Create(*out)
		if err != nil {
			slog.Error("failed to create output file", "path", *out, "error", err)
			os.Exit(1)
		}
		defer f.Close()
		w = f
	}

	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(listings); err != nil {
		slog.Error("failed to write listings", "error", err)
		os.Exit(1)
	}

	slog.Info("done", "listings", len(listings), "out", *out)
}
