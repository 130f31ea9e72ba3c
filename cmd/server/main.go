package main

import (
	"log/slog"
	"os"

	"cinecatalog/app"
	"cinecatalog/config"
	"cinecatalog/tmdb"
)

func main() {
	config.InitConfig()
	if config.Config.Debug {
		slog.SetLogLoggerLevel(slog.LevelDebug)
	}

	if config.Config.TMDBAPIKey == "" && config.Config.TMDBAccessToken == "" {
		slog.Warn("TMDB_API_KEY is not set, every catalog request will fail")
	}

	tmdb.InitClient()

	e := app.New()

	if err := app.Start(e); err != nil {
		slog.Error(err.Error())
		os.Exit(1)
	}
}
