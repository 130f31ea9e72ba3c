package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

const (
	defaultAppName       = "CineCatalog"
	defaultPort          = 8080
	defaultTMDBBaseURL   = "https://api.themoviedb.org/3"
	defaultTMDBImageURL  = "https://image.tmdb.org/t/p"
	defaultTMDBLanguage  = "en-EN"
	defaultTMDBTimeout   = 10
	defaultWindowSize    = 5
	defaultCastLimit     = 10
	defaultSearchMaxPage = 500
)

type config struct {
	AppName          string
	Debug            bool
	Port             int
	TMDBAPIKey       string
	TMDBAccessToken  string
	TMDBBaseURL      string
	TMDBImageURL     string
	TMDBLanguage     string
	TMDBTimeout      time.Duration
	PaginationWindow int
	CastLimit        int
	SearchMaxPage    int
}

var Config *config

func InitConfig() {
	godotenv.Load()
	var cfg = new(config)

	cfg.AppName = getString("APP_NAME", defaultAppName)
	cfg.Debug = os.Getenv("DEBUG") == "true"
	cfg.Port = getInt("PORT", defaultPort)
	cfg.TMDBAPIKey = os.Getenv("TMDB_API_KEY")
	cfg.TMDBAccessToken = os.Getenv("TMDB_ACCESS_TOKEN")
	cfg.TMDBBaseURL = getString("TMDB_BASE_URL", defaultTMDBBaseURL)
	cfg.TMDBImageURL = getString("TMDB_IMAGE_URL", defaultTMDBImageURL)
	cfg.TMDBLanguage = getString("TMDB_LANGUAGE", defaultTMDBLanguage)
	cfg.TMDBTimeout = time.Duration(getInt("TMDB_TIMEOUT_SECONDS", defaultTMDBTimeout)) * time.Second
	cfg.PaginationWindow = getInt("PAGINATION_WINDOW", defaultWindowSize)
	cfg.CastLimit = getInt("CAST_LIMIT", defaultCastLimit)
	cfg.SearchMaxPage = defaultSearchMaxPage

	Config = cfg
}

func getString(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}

	return fallback
}

// getInt falls back on missing, malformed and non-positive values.
func getInt(key string, fallback int) int {
	value, err := strconv.Atoi(os.Getenv(key))
	if err != nil || value < 1 {
		return fallback
	}

	return value
}
