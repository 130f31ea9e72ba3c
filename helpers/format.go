package helpers

import (
	"fmt"
	"math"
	"strings"
	"time"

	"cinecatalog/tmdb"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const (
	DescriptionLimit = 200
	EmptyValue       = "-"
)

var printer = message.NewPrinter(language.AmericanEnglish)

// Truncate cuts s to max-1 runes followed by "..." when it is longer than max.
// A max below 1 yields an empty string.
func Truncate(s string, max int) string {
	if max < 1 {
		return ""
	}

	runes := []rune(s)
	if len(runes) <= max {
		return s
	}

	return string(runes[:max-1]) + "..."
}

func FormatRuntime(minutes int) string {
	hours := minutes / 60
	if hours > 0 {
		return fmt.Sprintf("%dh %dm", hours, minutes%60)
	}

	return fmt.Sprintf("%dm", minutes%60)
}

// FormatDuration is the episode count for series and the runtime for movies.
func FormatDuration(m *tmdb.Media) string {
	if m.NumberOfEpisodes > 0 {
		return fmt.Sprintf("%d episodes", m.NumberOfEpisodes)
	}

	return FormatRuntime(m.Runtime)
}

func FormatUSD(amount int64) string {
	if amount == 0 {
		return EmptyValue
	}

	return printer.Sprintf("$%d", amount)
}

func FormatDate(date string) string {
	t, err := time.Parse(time.DateOnly, date)
	if err != nil {
		return EmptyValue
	}

	return t.Format("Jan 2, 2006")
}

func FormatGenres(genres []tmdb.Genre) string {
	if len(genres) == 0 {
		return "Unknown"
	}

	names := make([]string, len(genres))
	for i, g := range genres {
		names[i] = g.Name
	}

	return strings.Join(names, ", ")
}

func FormatLanguage(languages []tmdb.Language) string {
	if len(languages) == 0 || languages[0].Name == "" {
		return EmptyValue
	}

	return languages[0].Name
}

func FormatStatus(status string) string {
	if status == "" {
		return EmptyValue
	}

	return status
}

// RatingPercent maps a 0-10 vote average onto 0-100.
func RatingPercent(voteAverage float64) int {
	return int(math.Round(min(max(voteAverage, 0), 10) * 10))
}
