package app

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"sync/atomic"
	"testing"

	"cinecatalog/cards"
	"cinecatalog/config"
	"cinecatalog/tmdb"

	"github.com/PuerkitoBio/goquery"
	"github.com/labstack/echo/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeTMDB struct {
	totalPages    int
	searchCalls   atomic.Int32
	failSearch    bool
	failTrending  bool
	failUpcoming  bool
	lastSearchURL atomic.Value
}

func (f *fakeTMDB) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	switch {
	case strings.HasPrefix(r.URL.Path, "/search/"):
		f.searchCalls.Add(1)
		f.lastSearchURL.Store(r.URL.String())
		if f.failSearch {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		page, _ := strconv.Atoi(r.URL.Query().Get("page"))
		writeJSON(w, tmdb.MediaResponse{
			Page:         page,
			TotalPages:   f.totalPages,
			TotalResults: f.totalPages * 3,
			Results: []tmdb.Media{
				{ID: page*10 + 1, MediaType: tmdb.MediaTypeMovie, Title: fmt.Sprintf("Movie %d", page), Overview: "A movie."},
				{ID: page*10 + 2, MediaType: tmdb.MediaTypeTV, Name: fmt.Sprintf("Series %d", page), PosterPath: "/series.jpg"},
				{ID: 7, MediaType: tmdb.MediaTypePerson, Name: "An Actor"},
				{ID: page*10 + 1, MediaType: tmdb.MediaTypeMovie, Title: "Duplicate"},
			},
		})
	case r.URL.Path == "/trending/all/week":
		if f.failTrending {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		writeJSON(w, tmdb.MediaResponse{Results: []tmdb.Media{
			{ID: 100, MediaType: tmdb.MediaTypeTV, Name: "Trending Series"},
		}})
	case r.URL.Path == "/movie/upcoming":
		if f.failUpcoming {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		writeJSON(w, tmdb.MediaResponse{Results: []tmdb.Media{
			{ID: 200, Title: "Upcoming Movie"},
		}})
	case r.URL.Path == "/movie/27205":
		writeJSON(w, inception())
	case strings.HasPrefix(r.URL.Path, "/person/"):
		if r.URL.Path == "/person/1/images" {
			w.Write([]byte(`{"profiles":[{"file_path":"/leo.jpg"}]}`))
			return
		}
		w.Write([]byte(`{"profiles":[]}`))
	case r.URL.Path == "/tv/500":
		w.WriteHeader(http.StatusInternalServerError)
	default:
		w.WriteHeader(http.StatusNotFound)
	}
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(v)
}

func inception() tmdb.Media {
	cast := make([]tmdb.Cast, 12)
	for i := range cast {
		cast[i] = tmdb.Cast{ID: i + 1, Name: fmt.Sprintf("Actor %d", i+1), Character: fmt.Sprintf("Role %d", i+1)}
	}

	return tmdb.Media{
		ID:          27205,
		Title:       "Inception",
		Overview:    "A thief who steals corporate secrets.",
		ReleaseDate: "2010-07-15",
		Runtime:     148,
		Budget:      160000000,
		VoteAverage: 8.4,
		Status:      "Released",
		Homepage:    "https://inception.test",
		Genres:      []tmdb.Genre{{ID: 28, Name: "Action"}, {ID: 878, Name: "Science Fiction"}},
		Credits:     &tmdb.Credits{Cast: cast},
		Videos:      &tmdb.Videos{Results: []tmdb.Video{{ID: "v", Key: "YoHD9XEInc0", Site: "YouTube", Name: "Trailer"}}},
		Keywords:    &tmdb.Keywords{Keywords: []tmdb.Keyword{{ID: 1, Name: "dream"}, {ID: 2, Name: "heist"}}},
	}
}

func newTestApp(t *testing.T, fake *fakeTMDB) *echo.Echo {
	t.Helper()

	t.Setenv("APP_NAME", "CineCatalog")
	t.Setenv("PAGINATION_WINDOW", "5")
	t.Setenv("CAST_LIMIT", "10")
	config.InitConfig()

	srv := httptest.NewServer(fake)
	t.Cleanup(srv.Close)
	tmdb.API = tmdb.NewClient("test-key", tmdb.WithBaseURL(srv.URL), tmdb.WithImageBaseURL("https://img.test/t/p"))

	return New()
}

func get(t *testing.T, e *echo.Echo, target string, headers ...string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func parse(t *testing.T, rec *httptest.ResponseRecorder) *goquery.Document {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(rec.Body)
	require.NoError(t, err)
	return doc
}

func pageButtons(doc *goquery.Document) []string {
	var pages []string
	doc.Find(`#pagination li[data-type="page"] a`).Each(func(_ int, s *goquery.Selection) {
		pages = append(pages, s.Text())
	})
	return pages
}

func TestSearchPagination(t *testing.T) {
	tests := []struct {
		name       string
		totalPages int
		page       int
		want       []string
	}{
		{"first page", 10, 1, []string{"1", "2", "3", "4", "5"}},
		{"centered", 10, 5, []string{"3", "4", "5", "6", "7"}},
		{"last page", 10, 10, []string{"6", "7", "8", "9", "10"}},
		{"fewer pages than window", 3, 2, []string{"1", "2", "3"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newTestApp(t, &fakeTMDB{totalPages: tt.totalPages})

			rec := get(t, e, fmt.Sprintf("/search?search=star&page=%d", tt.page))
			require.Equal(t, http.StatusOK, rec.Code)
			doc := parse(t, rec)

			assert.Equal(t, tt.want, pageButtons(doc))

			active := doc.Find(`#pagination a[aria-current="page"]`)
			assert.Equal(t, 1, active.Length())
			assert.Equal(t, strconv.Itoa(tt.page), active.Text())

			// each button links to the page it displays
			doc.Find(`#pagination li[data-type="page"] a`).Each(func(_ int, s *goquery.Selection) {
				href, _ := s.Attr("href")
				assert.Equal(t, "/search?page="+s.Text()+"&search=star", href)
			})
		})
	}
}

func TestSearchRendersCards(t *testing.T) {
	fake := &fakeTMDB{totalPages: 10}
	e := newTestApp(t, fake)

	rec := get(t, e, "/search?search=star&page=2")
	require.Equal(t, http.StatusOK, rec.Code)
	doc := parse(t, rec)

	titles := doc.Find("#card-container .card-title").Map(func(_ int, s *goquery.Selection) string {
		return s.Text()
	})
	assert.Equal(t, []string{"Movie 2", "Series 2"}, titles)

	href, _ := doc.Find("#card-container .card-title").First().Attr("href")
	assert.Equal(t, "/media?id=21&type=movie", href)

	src, _ := doc.Find("#card-container img").Eq(1).Attr("src")
	assert.Equal(t, "https://img.test/t/p/w400/series.jpg", src)

	value, _ := doc.Find("input#search").Attr("value")
	assert.Equal(t, "star", value)
	assert.Contains(t, doc.Find("#header-title").Text(), `"STAR" on CineCatalog`)

	lastURL, _ := fake.lastSearchURL.Load().(string)
	assert.Contains(t, lastURL, "page=2")
	assert.Contains(t, lastURL, "include_adult=false")
}

func TestSearchPrevNextLinks(t *testing.T) {
	e := newTestApp(t, &fakeTMDB{totalPages: 10})

	doc := parse(t, get(t, e, "/search?search=star&page=1"))

	prev := doc.Find(`#pagination li[data-type="prev"] a`)
	_, disabled := prev.Attr("aria-disabled")
	assert.True(t, disabled)
	href, _ := prev.Attr("href")
	assert.Equal(t, "/search?page=1&search=star", href)

	next := doc.Find(`#pagination li[data-type="next"] a`)
	href, _ = next.Attr("href")
	assert.Equal(t, "/search?page=2&search=star", href)
}

func TestSearchSinglePageHasNoPagination(t *testing.T) {
	e := newTestApp(t, &fakeTMDB{totalPages: 1})

	doc := parse(t, get(t, e, "/search?search=star"))
	assert.Equal(t, 0, doc.Find("#pagination").Length())
	assert.Equal(t, 2, doc.Find("#card-container article.card").Length())
}

func TestSearchPageBeyondTotalRedirects(t *testing.T) {
	e := newTestApp(t, &fakeTMDB{totalPages: 10})

	rec := get(t, e, "/search?search=star&page=50")
	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/search?page=10&search=star", rec.Header().Get("Location"))
}

func TestSearchClampsNonPositivePage(t *testing.T) {
	fake := &fakeTMDB{totalPages: 10}
	e := newTestApp(t, fake)

	rec := get(t, e, "/search?search=star&page=-4")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "1", parse(t, rec).Find(`#pagination a[aria-current="page"]`).Text())
}

func TestSearchInvalidPage(t *testing.T) {
	e := newTestApp(t, &fakeTMDB{totalPages: 10})

	rec := get(t, e, "/search?search=star&page=abc")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSearchEmptyQuery(t *testing.T) {
	fake := &fakeTMDB{totalPages: 10}
	e := newTestApp(t, fake)

	rec := get(t, e, "/search")
	require.Equal(t, http.StatusOK, rec.Code)
	doc := parse(t, rec)

	assert.Contains(t, doc.Find("#card-container").Text(), "There are no movies that matched your query.")
	assert.Equal(t, int32(0), fake.searchCalls.Load())
}

func TestSearchUpstreamFailure(t *testing.T) {
	e := newTestApp(t, &fakeTMDB{failSearch: true})

	rec := get(t, e, "/search?search=star")
	require.Equal(t, http.StatusOK, rec.Code)
	doc := parse(t, rec)

	assert.Contains(t, doc.Find("#card-container").Text(), "There are no movies that matched your query.")
	assert.Equal(t, 0, doc.Find("#pagination").Length())
}

func TestSearchHTMXReturnsFragment(t *testing.T) {
	e := newTestApp(t, &fakeTMDB{totalPages: 10})

	rec := get(t, e, "/search?search=star&page=3", "HX-Request", "true")
	require.Equal(t, http.StatusOK, rec.Code)

	body := rec.Body.String()
	assert.True(t, strings.HasPrefix(body, `<section id="search-results">`))
	assert.NotContains(t, body, "<html")
}

func TestSearchNavigate(t *testing.T) {
	e := newTestApp(t, &fakeTMDB{totalPages: 10})

	tests := []struct {
		query string
		want  string
	}{
		{"action=page&slot=4&page=5&total=10", "/search?page=7&search=star"},
		{"action=page&slot=0&page=1&total=10", "/search?page=1&search=star"},
		{"action=page&slot=2&page=5&total=10", "/search?page=5&search=star"},
		{"action=prev&page=1&total=10", "/search?page=1&search=star"},
		{"action=next&page=10&total=10", "/search?page=10&search=star"},
		{"action=next&page=4&total=10&type=tv", "/search?page=5&search=star&type=tv"},
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			rec := get(t, e, "/search/navigate?search=star&"+tt.query)
			assert.Equal(t, http.StatusSeeOther, rec.Code)
			assert.Equal(t, tt.want, rec.Header().Get("Location"))
		})
	}
}

func TestSearchNavigateMatchesRenderedButtons(t *testing.T) {
	e := newTestApp(t, &fakeTMDB{totalPages: 12})

	for page := 1; page <= 12; page++ {
		doc := parse(t, get(t, e, fmt.Sprintf("/search?search=star&page=%d", page)))

		doc.Find(`#pagination li[data-type="page"] a`).Each(func(_ int, s *goquery.Selection) {
			navigate, ok := s.Attr("data-navigate")
			require.True(t, ok)
			href, _ := s.Attr("href")

			rec := get(t, e, navigate)
			assert.Equal(t, href, rec.Header().Get("Location"))
		})
	}
}

func TestSearchNavigateInvalid(t *testing.T) {
	e := newTestApp(t, &fakeTMDB{totalPages: 10})

	for _, query := range []string{
		"action=page&slot=5&page=5&total=10",
		"action=page&slot=-1&page=5&total=10",
		"action=jump&page=5&total=10",
		"action=next&page=5",
	} {
		rec := get(t, e, "/search/navigate?search=star&"+query)
		assert.Equal(t, http.StatusBadRequest, rec.Code, query)
	}
}

func TestMediaShow(t *testing.T) {
	e := newTestApp(t, &fakeTMDB{})

	rec := get(t, e, "/media?id=27205&type=movie")
	require.Equal(t, http.StatusOK, rec.Code)
	doc := parse(t, rec)

	assert.Equal(t, "Inception", doc.Find("#media-title").Text())
	assert.Equal(t, "Inception - CineCatalog", doc.Find("title").Text())
	assert.Equal(t, "Action, Science Fiction", doc.Find("#media-genre").Text())
	assert.Equal(t, "2h 28m", doc.Find("#media-duration").Text())
	assert.Equal(t, "Jul 15, 2010", doc.Find("#media-date").Text())
	assert.Equal(t, "84%", doc.Find("#media-rating").Text())
	assert.Equal(t, "$160,000,000", doc.Find("#media-budget").Text())
	assert.Equal(t, "-", doc.Find("#media-revenue").Text())
	assert.Equal(t, "-", doc.Find("#media-language").Text())
	assert.Equal(t, "Released", doc.Find("#media-status").Text())
	assert.Equal(t, 2, doc.Find("#media-keywords li").Length())

	src, _ := doc.Find("#media-video iframe").Attr("src")
	assert.Equal(t, "https://www.youtube.com/embed/YoHD9XEInc0", src)

	castCards := doc.Find("#casting-content article")
	assert.Equal(t, 10, castCards.Length())
	portrait, _ := castCards.First().Find("img").Attr("src")
	assert.Equal(t, "https://img.test/t/p/w400/leo.jpg", portrait)
	portrait, _ = castCards.Eq(1).Find("img").Attr("src")
	assert.Equal(t, tmdb.PlaceholderImage, portrait)

	og, _ := doc.Find(`meta[property="og:title"]`).Attr("content")
	assert.Equal(t, "Inception", og)
	desc, _ := doc.Find(`meta[name="description"]`).Attr("content")
	assert.Equal(t, "A thief who steals corporate secrets.", desc)
}

func TestMediaShowErrors(t *testing.T) {
	e := newTestApp(t, &fakeTMDB{})

	rec := get(t, e, "/media?id=404&type=movie")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "There are no movies that matched your query.")

	rec = get(t, e, "/media?id=500&type=tv")
	assert.Equal(t, http.StatusBadGateway, rec.Code)

	rec = get(t, e, "/media?id=1&type=person")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = get(t, e, "/media?type=movie")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestMovieRedirect(t *testing.T) {
	e := newTestApp(t, &fakeTMDB{})

	rec := get(t, e, "/movie?id=27205")
	assert.Equal(t, http.StatusMovedPermanently, rec.Code)
	assert.Equal(t, "/media?id=27205&type=movie", rec.Header().Get("Location"))
}

func TestAutocomplete(t *testing.T) {
	fake := &fakeTMDB{totalPages: 4}
	e := newTestApp(t, fake)

	rec := get(t, e, "/api/autocomplete?q=S")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())
	assert.Equal(t, int32(0), fake.searchCalls.Load())

	rec = get(t, e, "/api/autocomplete?q=Star")
	require.Equal(t, http.StatusOK, rec.Code)

	var suggestions []cards.Suggestion
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &suggestions))
	require.Len(t, suggestions, 2)
	assert.Equal(t, "Movie 1", suggestions[0].Label)
	assert.Equal(t, "/media?id=12&type=tv", suggestions[1].Href)

	lastURL, _ := fake.lastSearchURL.Load().(string)
	assert.Contains(t, lastURL, "query=star")
}

func TestHome(t *testing.T) {
	e := newTestApp(t, &fakeTMDB{})

	doc := parse(t, get(t, e, "/"))
	assert.Equal(t, "Trending Series", doc.Find("#trending .card-title").Text())
	assert.Equal(t, "Upcoming Movie", doc.Find("#upcoming .card-title").Text())

	href, _ := doc.Find("#upcoming .card-title").Attr("href")
	assert.Equal(t, "/media?id=200&type=movie", href)
}

func TestHomeSurvivesFailedCarousel(t *testing.T) {
	e := newTestApp(t, &fakeTMDB{failTrending: true})

	rec := get(t, e, "/")
	require.Equal(t, http.StatusOK, rec.Code)
	doc := parse(t, rec)

	assert.Contains(t, doc.Find("#trending").Text(), "Nothing to show right now.")
	assert.Equal(t, 1, doc.Find("#upcoming article.card").Length())
}

func TestHomeSurvivesBothCarouselsFailing(t *testing.T) {
	e := newTestApp(t, &fakeTMDB{failTrending: true, failUpcoming: true})

	rec := get(t, e, "/")
	require.Equal(t, http.StatusOK, rec.Code)
	doc := parse(t, rec)

	assert.Contains(t, doc.Find("#trending").Text(), "Nothing to show right now.")
	assert.Contains(t, doc.Find("#upcoming").Text(), "Nothing to show right now.")
	assert.Equal(t, 0, doc.Find("article.card").Length())
}

func TestStaticAssets(t *testing.T) {
	e := newTestApp(t, &fakeTMDB{})

	rec := get(t, e, "/static/js/app.js")
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = get(t, e, "/static/images/empty_portrait.svg")
	assert.Equal(t, http.StatusOK, rec.Code)
}
