package tmdb

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	return NewClient("test-key", WithBaseURL(srv.URL), WithImageBaseURL("https://img.test/t/p"))
}

func TestSearchMedia(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/search/multi", r.URL.Path)
		q := r.URL.Query()
		assert.Equal(t, "test-key", q.Get("api_key"))
		assert.Equal(t, "star wars", q.Get("query"))
		assert.Equal(t, "3", q.Get("page"))
		assert.Equal(t, "false", q.Get("include_adult"))
		assert.Equal(t, DefaultLanguage, q.Get("language"))

		w.Write([]byte(`{"page":3,"total_pages":7,"total_results":140,"results":[
			{"id":11,"media_type":"movie","title":"Star Wars","overview":"A long time ago"},
			{"id":1399,"media_type":"tv","name":"Star Wars: Andor"}]}`))
	})

	res, err := c.SearchMedia(context.Background(), "star wars", SearchOptions{Page: 3})
	require.NoError(t, err)
	assert.Equal(t, 3, res.Page)
	assert.Equal(t, 7, res.TotalPages)
	require.Len(t, res.Results, 2)
	assert.Equal(t, "Star Wars", res.Results[0].DisplayTitle())
	assert.Equal(t, "Star Wars: Andor", res.Results[1].DisplayTitle())
	assert.Equal(t, MediaTypeTV, res.Results[1].MediaType)
}

func TestSearchMedia_SingleTypeFillsMediaType(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/search/tv", r.URL.Path)
		assert.Equal(t, "1", r.URL.Query().Get("page"))
		w.Write([]byte(`{"page":1,"total_pages":1,"results":[{"id":5,"name":"Lost"}]}`))
	})

	res, err := c.SearchMedia(context.Background(), "lost", SearchOptions{Type: MediaTypeTV})
	require.NoError(t, err)
	require.Len(t, res.Results, 1)
	assert.Equal(t, MediaTypeTV, res.Results[0].MediaType)
}

func TestAccessTokenUsesBearer(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer token", r.Header.Get("Authorization"))
		assert.Empty(t, r.URL.Query().Get("api_key"))
		w.Write([]byte(`{"results":[]}`))
	}))
	defer srv.Close()

	c := NewClient("", WithBaseURL(srv.URL), WithAccessToken("token"))
	_, err := c.Trending(context.Background())
	require.NoError(t, err)
}

func TestMissingKey(t *testing.T) {
	c := NewClient("")
	_, err := c.Trending(context.Background())
	assert.ErrorIs(t, err, ErrMissingKey)
}

func TestErrorStatuses(t *testing.T) {
	tests := []struct {
		status int
		check  func(t *testing.T, err error)
	}{
		{http.StatusNotFound, func(t *testing.T, err error) { assert.ErrorIs(t, err, ErrNotFound) }},
		{http.StatusUnauthorized, func(t *testing.T, err error) { assert.ErrorIs(t, err, ErrUnauthorized) }},
		{http.StatusInternalServerError, func(t *testing.T, err error) {
			var apiErr *APIError
			require.ErrorAs(t, err, &apiErr)
			assert.Equal(t, http.StatusInternalServerError, apiErr.Status)
			assert.Equal(t, "/movie/42", apiErr.Path)
		}},
	}

	for _, tt := range tests {
		t.Run(http.StatusText(tt.status), func(t *testing.T) {
			c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
			})

			_, err := c.GetMedia(context.Background(), MediaTypeMovie, 42)
			require.Error(t, err)
			tt.check(t, err)
		})
	}
}

func TestGetMedia(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/tv/1399", r.URL.Path)
		assert.Equal(t, "credits,videos,keywords", r.URL.Query().Get("append_to_response"))
		w.Write([]byte(`{"id":1399,"name":"Game of Thrones","number_of_episodes":73,
			"credits":{"cast":[{"id":1,"name":"Emilia","character":"Daenerys"}]},
			"videos":{"results":[{"id":"v1","key":"abc","site":"YouTube"}]},
			"keywords":{"results":[{"id":9,"name":"dragon"}]}}`))
	})

	m, err := c.GetMedia(context.Background(), MediaTypeTV, 1399)
	require.NoError(t, err)
	assert.Equal(t, MediaTypeTV, m.MediaType)
	assert.Equal(t, 73, m.NumberOfEpisodes)
	require.Len(t, m.Credits.Cast, 1)
	assert.Equal(t, "Daenerys", m.Credits.Cast[0].Character)

	trailer, ok := m.Trailer()
	require.True(t, ok)
	assert.Equal(t, "abc", trailer.Key)

	require.Len(t, m.Keywords.List(), 1)
	assert.Equal(t, "dragon", m.Keywords.List()[0].Name)
}

func TestGetMedia_UnsupportedType(t *testing.T) {
	c := NewClient("key")
	_, err := c.GetMedia(context.Background(), MediaTypePerson, 1)
	assert.Error(t, err)
}

func TestUpcomingSetsMovieType(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/movie/upcoming", r.URL.Path)
		w.Write([]byte(`{"results":[{"id":1,"title":"Dune"}]}`))
	})

	movies, err := c.Upcoming(context.Background())
	require.NoError(t, err)
	require.Len(t, movies, 1)
	assert.Equal(t, MediaTypeMovie, movies[0].MediaType)
}

func TestPersonImage(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/person/1/images":
			w.Write([]byte(`{"id":1,"profiles":[{"file_path":"/a.jpg"},{"file_path":"/b.jpg"}]}`))
		default:
			w.Write([]byte(`{"id":2,"profiles":[]}`))
		}
	})

	path, err := c.PersonImage(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, "/a.jpg", path)

	path, err = c.PersonImage(context.Background(), 2)
	require.NoError(t, err)
	assert.Empty(t, path)
}

func TestCastPortraits(t *testing.T) {
	var calls atomic.Int32
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		switch r.URL.Path {
		case "/person/1/images":
			w.Write([]byte(`{"profiles":[{"file_path":"/one.jpg"}]}`))
		case "/person/2/images":
			w.WriteHeader(http.StatusInternalServerError)
		default:
			w.Write([]byte(`{"profiles":[]}`))
		}
	})

	cast := []Cast{{ID: 1}, {ID: 2}, {ID: 3}, {ID: 4}}
	portraits := c.CastPortraits(context.Background(), cast, 3)

	assert.Equal(t, int32(3), calls.Load())
	assert.Len(t, portraits, 3)
	assert.Equal(t, "https://img.test/t/p/w400/one.jpg", portraits[1])
	assert.Equal(t, PlaceholderImage, portraits[2])
	assert.Equal(t, PlaceholderImage, portraits[3])
}

func TestImageURL(t *testing.T) {
	c := NewClient("key")
	assert.Equal(t, DefaultImageBaseURL+"/w400/p.jpg", c.ImageURL("/p.jpg", ImageSizeW400))
	assert.Equal(t, PlaceholderImage, c.ImageURL("", ImageSizeOriginal))
}
