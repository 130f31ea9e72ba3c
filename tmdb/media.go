package tmdb

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"strconv"

	"github.com/tidwall/gjson"
	"golang.org/x/sync/errgroup"
)

const (
	ImageSizeW400     = "w400"
	ImageSizeOriginal = "original"

	// PlaceholderImage is served when a record has no poster or portrait.
	PlaceholderImage = "/static/images/empty_portrait.svg"

	portraitConcurrency = 4
)

type SearchOptions struct {
	Type MediaType
	Page int
}

// SearchMedia queries /search/{type}. Type defaults to multi, page to 1.
func (c *Client) SearchMedia(ctx context.Context, query string, opts SearchOptions) (*MediaResponse, error) {
	mediaType := opts.Type
	if mediaType == "" {
		mediaType = MediaTypeMulti
	}
	page := opts.Page
	if page < 1 {
		page = 1
	}

	params := url.Values{}
	params.Set("language", c.language)
	params.Set("query", query)
	params.Set("page", strconv.Itoa(page))
	params.Set("include_adult", "false")

	var res MediaResponse
	if err := c.getJSON(ctx, "/search/"+string(mediaType), params, &res); err != nil {
		return nil, err
	}

	// single type searches omit media_type on results
	if mediaType != MediaTypeMulti {
		for i := range res.Results {
			if res.Results[i].MediaType == "" {
				res.Results[i].MediaType = mediaType
			}
		}
	}

	return &res, nil
}

// GetMedia fetches a movie or series with credits, videos and keywords.
func (c *Client) GetMedia(ctx context.Context, mediaType MediaType, id int) (*Media, error) {
	if mediaType != MediaTypeMovie && mediaType != MediaTypeTV {
		return nil, fmt.Errorf("tmdb: unsupported media type %q", mediaType)
	}

	params := url.Values{}
	params.Set("language", c.language)
	params.Set("append_to_response", "credits,videos,keywords")

	var media Media
	if err := c.getJSON(ctx, fmt.Sprintf("/%s/%d", mediaType, id), params, &media); err != nil {
		return nil, err
	}
	media.MediaType = mediaType

	return &media, nil
}

// Upcoming returns the first page of movies coming to theatres.
func (c *Client) Upcoming(ctx context.Context) ([]Media, error) {
	params := url.Values{}
	params.Set("language", c.language)
	params.Set("page", "1")

	var res MediaResponse
	if err := c.getJSON(ctx, "/movie/upcoming", params, &res); err != nil {
		return nil, err
	}

	for i := range res.Results {
		res.Results[i].MediaType = MediaTypeMovie
	}

	return res.Results, nil
}

// Trending returns this week's trending movies and series.
func (c *Client) Trending(ctx context.Context) ([]Media, error) {
	var res MediaResponse
	if err := c.getJSON(ctx, "/trending/all/week", nil, &res); err != nil {
		return nil, err
	}

	return res.Results, nil
}

// PersonImage returns the file path of a person's first profile image, or
// an empty string when there is none.
func (c *Client) PersonImage(ctx context.Context, id int) (string, error) {
	body, err := c.get(ctx, fmt.Sprintf("/person/%d/images", id), nil)
	if err != nil {
		return "", err
	}

	return gjson.GetBytes(body, "profiles.0.file_path").String(), nil
}

// CastPortraits resolves portrait URLs for the first limit cast members,
// keyed by person ID. A failed lookup is logged and falls back to the
// placeholder.
func (c *Client) CastPortraits(ctx context.Context, cast []Cast, limit int) map[int]string {
	if len(cast) > limit {
		cast = cast[:limit]
	}

	urls := make([]string, len(cast))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(portraitConcurrency)
	for i, member := range cast {
		g.Go(func() error {
			path, err := c.PersonImage(gctx, member.ID)
			if err != nil {
				slog.Warn("failed to fetch person image", "person", member.ID, "err", err.Error())
			}
			urls[i] = c.ImageURL(path, ImageSizeW400)
			return nil
		})
	}
	g.Wait()

	portraits := make(map[int]string, len(cast))
	for i, member := range cast {
		portraits[member.ID] = urls[i]
	}

	return portraits
}

// ImageURL builds an image CDN URL. An empty path yields the placeholder.
func (c *Client) ImageURL(path, size string) string {
	if path == "" {
		return PlaceholderImage
	}

	return c.imageBaseURL + "/" + size + path
}

// Trailer returns the first video of a media, if any.
func (m Media) Trailer() (Video, bool) {
	if m.Videos == nil || len(m.Videos.Results) == 0 {
		return Video{}, false
	}

	return m.Videos.Results[0], true
}
