package pages

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"cinecatalog/cards"
	"cinecatalog/httpx"
	"cinecatalog/pagination"
	"cinecatalog/templates/utils"

	"github.com/PuerkitoBio/goquery"
	"github.com/a-h/templ"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func searchProps(t *testing.T) SearchProps {
	t.Helper()

	page, err := pagination.New(2, 4, 5)
	require.NoError(t, err)

	return SearchProps{
		Search:       "star",
		TotalResults: 12,
		Cards: []cards.Card{
			{ID: 11, MediaType: "movie", Title: "Star", Href: "/movie/11", Poster: "/poster.jpg"},
		},
		Page: &page,
	}
}

func TestSearch_FullPage(t *testing.T) {
	ctx := utils.WithNavigation(context.Background(), &utils.Navigation{Search: "star", Type: "tv"})

	var buf bytes.Buffer
	require.NoError(t, Search(searchProps(t)).Render(ctx, &buf))

	doc, err := goquery.NewDocumentFromReader(&buf)
	require.NoError(t, err)

	assert.Contains(t, doc.Find("#header-title").Text(), `"STAR" on`)
	assert.Equal(t, "star", doc.Find("input#search").AttrOr("value", ""))
	assert.Equal(t, "tv", doc.Find(`input[name="type"]`).AttrOr("value", ""))
	assert.Equal(t, "12 results", doc.Find("#search-results p").First().Text())
	assert.Equal(t, "Star", doc.Find("#card-container .card-title").Text())
	assert.Equal(t, 4, doc.Find(`#pagination li[data-type="page"]`).Length())
}

func TestSearch_FragmentOnly(t *testing.T) {
	var buf bytes.Buffer
	err := templ.RenderFragments(context.Background(), &buf, Search(searchProps(t)), SearchResultsFragment)
	require.NoError(t, err)

	body := buf.String()
	assert.True(t, strings.HasPrefix(body, `<section id="search-results">`))
	assert.True(t, strings.HasSuffix(body, "</section>"))
	assert.NotContains(t, body, "<html")
	assert.NotContains(t, body, "header-title")
	assert.Contains(t, body, `id="pagination"`)
}

func TestSearchResults_EmptyHasNoPaginator(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, SearchResults(SearchProps{Search: "zzz"}).Render(context.Background(), &buf))

	doc, err := goquery.NewDocumentFromReader(&buf)
	require.NoError(t, err)

	assert.Equal(t, httpx.MsgNoResults, doc.Find("#card-container p").Text())
	assert.Equal(t, 0, doc.Find("#pagination").Length())
	assert.Equal(t, 0, doc.Find(".card").Length())
}
