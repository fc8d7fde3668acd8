package main

import (
	"log/slog"
	"net/http"
	"os"

	"github.com/joho/godotenv"

	"irres-scraper/internal/api"
	"irres-scraper/internal/httpx"
	"irres-scraper/internal/scraper"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	slog.SetDefault(logger)

	// Optional .env for local runs; missing file is fine.
	godotenv.Load()

	cfg := scraper.DefaultConfig()
	if origin := os.Getenv("SITE_ORIGIN"); origin != "" {
		cfg.Origin = origin
	}
	if path := os.Getenv("SITE_INDEX_PATH"); path != "" {
		cfg.IndexPath = path
	}

	fetcher := httpx.NewFetcher(os.Getenv("SCRAPER_USER_AGENT"))
	svc := scraper.NewService(cfg, fetcher, logger)

	srv := api.NewServer(svc)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	slog.Info("starting server", "port", port, "origin", cfg.Origin)
	if err := http.ListenAndServe(":"+port, srv.Router()); err != nil {
		slog.Error("server failed", "error", err)
		os.Exit(1)
	}
}
