// Package cards turns TMDB result lists into the card and suggestion view
// models rendered by the search page, the carousels and the autocomplete.
package cards

import (
	"fmt"
	"net/url"
	"strconv"

	"cinecatalog/helpers"
	"cinecatalog/tmdb"
)

const MaxSuggestions = 10

type Card struct {
	ID          int
	MediaType   tmdb.MediaType
	Title       string
	Description string
	Poster      string
	Href        string
}

type Suggestion struct {
	ID        int            `json:"id"`
	Label     string         `json:"label"`
	Poster    string         `json:"poster"`
	MediaType tmdb.MediaType `json:"media_type"`
	Href      string         `json:"href"`
}

// MediaHref links to the detail page of a media.
func MediaHref(mediaType tmdb.MediaType, id int) string {
	q := url.Values{}
	q.Set("id", strconv.Itoa(id))
	q.Set("type", string(mediaType))

	return "/media?" + q.Encode()
}

// Build maps results to cards. People are skipped, results without a media
// type take fallback, and repeated (type, id) pairs keep their first
// occurrence.
func Build(images *tmdb.Client, results []tmdb.Media, fallback tmdb.MediaType) []Card {
	cards := make([]Card, 0, len(results))

	for _, m := range dedupe(results, fallback) {
		cards = append(cards, Card{
			ID:          m.ID,
			MediaType:   m.MediaType,
			Title:       m.DisplayTitle(),
			Description: helpers.Truncate(m.Overview, helpers.DescriptionLimit),
			Poster:      images.ImageURL(m.PosterPath, tmdb.ImageSizeW400),
			Href:        MediaHref(m.MediaType, m.ID),
		})
	}

	return cards
}

// Suggestions maps results to at most limit autocomplete items.
func Suggestions(images *tmdb.Client, results []tmdb.Media, limit int) []Suggestion {
	suggestions := make([]Suggestion, 0, min(len(results), limit))

	for _, m := range dedupe(results, tmdb.MediaTypeMovie) {
		if len(suggestions) == limit {
			break
		}

		suggestions = append(suggestions, Suggestion{
			ID:        m.ID,
			Label:     m.DisplayTitle(),
			Poster:    images.ImageURL(m.PosterPath, tmdb.ImageSizeW400),
			MediaType: m.MediaType,
			Href:      MediaHref(m.MediaType, m.ID),
		})
	}

	return suggestions
}

func dedupe(results []tmdb.Media, fallback tmdb.MediaType) []tmdb.Media {
	seen := make(map[string]struct{}, len(results))
	out := make([]tmdb.Media, 0, len(results))

	for _, m := range results {
		if m.MediaType == "" {
			m.MediaType = fallback
		}
		if m.MediaType == tmdb.MediaTypePerson {
			continue
		}

		key := fmt.Sprintf("%s/%d", m.MediaType, m.ID)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}

		out = append(out, m)
	}

	return out
}
