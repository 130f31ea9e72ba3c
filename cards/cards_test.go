package cards

import (
	"strings"
	"testing"

	"cinecatalog/tmdb"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var images = tmdb.NewClient("key", tmdb.WithImageBaseURL("https://img.test/t/p"))

func TestBuild(t *testing.T) {
	results := []tmdb.Media{
		{ID: 1, MediaType: tmdb.MediaTypeMovie, Title: "Alien", Overview: "In space.", PosterPath: "/alien.jpg"},
		{ID: 2, MediaType: tmdb.MediaTypeTV, Name: "The Expanse", Overview: strings.Repeat("x", 250)},
		{ID: 3, MediaType: tmdb.MediaTypePerson, Name: "Sigourney Weaver"},
		{ID: 1, MediaType: tmdb.MediaTypeMovie, Title: "Alien (duplicate)"},
		{ID: 1, MediaType: tmdb.MediaTypeTV, Name: "Alien: Earth"},
	}

	got := Build(images, results, tmdb.MediaTypeMovie)
	require.Len(t, got, 3)

	assert.Equal(t, Card{
		ID:          1,
		MediaType:   tmdb.MediaTypeMovie,
		Title:       "Alien",
		Description: "In space.",
		Poster:      "https://img.test/t/p/w400/alien.jpg",
		Href:        "/media?id=1&type=movie",
	}, got[0])

	assert.Equal(t, "The Expanse", got[1].Title)
	assert.Equal(t, tmdb.PlaceholderImage, got[1].Poster)
	assert.Len(t, []rune(got[1].Description), 202)
	assert.True(t, strings.HasSuffix(got[1].Description, "..."))

	assert.Equal(t, "Alien: Earth", got[2].Title)
	assert.Equal(t, "/media?id=1&type=tv", got[2].Href)
}

func TestBuild_FallbackType(t *testing.T) {
	got := Build(images, []tmdb.Media{{ID: 7, Title: "Heat"}}, tmdb.MediaTypeMovie)
	require.Len(t, got, 1)
	assert.Equal(t, tmdb.MediaTypeMovie, got[0].MediaType)
	assert.Equal(t, "/media?id=7&type=movie", got[0].Href)
}

func TestBuild_Empty(t *testing.T) {
	assert.Empty(t, Build(images, nil, tmdb.MediaTypeMovie))
}

func TestSuggestions(t *testing.T) {
	var results []tmdb.Media
	for i := 1; i <= 15; i++ {
		results = append(results, tmdb.Media{ID: i, MediaType: tmdb.MediaTypeMovie, Title: "Movie"})
	}
	results = append([]tmdb.Media{{ID: 99, MediaType: tmdb.MediaTypePerson, Name: "Someone"}}, results...)

	got := Suggestions(images, results, MaxSuggestions)
	require.Len(t, got, MaxSuggestions)
	assert.Equal(t, 1, got[0].ID)
	assert.Equal(t, "Movie", got[0].Label)
	assert.Equal(t, "/media?id=1&type=movie", got[0].Href)
}
