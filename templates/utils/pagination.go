package utils

import (
	"net/url"
	"strconv"

	"cinecatalog/pagination"
)

// SearchURL is the canonical address of a search results page.
func SearchURL(search, mediaType string, page int) string {
	q := url.Values{}
	q.Set("search", search)
	q.Set("page", strconv.Itoa(page))
	if mediaType != "" {
		q.Set("type", mediaType)
	}

	return "/search?" + q.Encode()
}

// NavigateURL points a pagination element at the navigation endpoint, which
// resolves it to an absolute page with pagination.Navigate.
func NavigateURL(search, mediaType string, s pagination.State, action pagination.Action, slot int) string {
	q := url.Values{}
	q.Set("search", search)
	q.Set("page", strconv.Itoa(s.Current))
	q.Set("total", strconv.Itoa(s.Total))
	q.Set("action", string(action))
	if action == pagination.ActionPage {
		q.Set("slot", strconv.Itoa(slot))
	}
	if mediaType != "" {
		q.Set("type", mediaType)
	}

	return "/search/navigate?" + q.Encode()
}
