package api

import (
	"fmt"
	"net/http"
	"strconv"
)

// Pagination defaults.
const (
	defaultLimit = 10
	defaultPage  = 1
)

// Pagination parameter messages. These are part of the API contract.
const (
	msgInvalidLimit  = "Invalid limit value provided"
	msgNegativeLimit = "Limit value must be a positive integer"
	msgInvalidPage   = "Invalid page value provided"
	msgNegativePage  = "Page number must be a positive integer"
)

// pageParams holds validated pagination query parameters.
type pageParams struct {
	Limit int
	Page  int
}

// offset returns the row offset for the page.
func (p pageParams) offset() int {
	return (p.Page - 1) * p.Limit
}

// parsePageParams reads and validates the limit and page query
// parameters, applying the defaults when they are absent. On failure
// it returns the contract message for the offending field.
func parsePageParams(r *http.Request) (pageParams, string) {
	params := pageParams{Limit: defaultLimit, Page: defaultPage}
	q := r.URL.Query()

	if raw := q.Get("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil {
			return pageParams{}, msgInvalidLimit
		}
		if limit < 1 {
			return pageParams{}, msgNegativeLimit
		}
		params.Limit = limit
	}

	if raw := q.Get("page"); raw != "" {
		page, err := strconv.Atoi(raw)
		if err != nil {
			return pageParams{}, msgInvalidPage
		}
		if page < 1 {
			return pageParams{}, msgNegativePage
		}
		params.Page = page
	}

	return params, ""
}

// pageLinks builds the previous/next page link strings for a
// paginated response. Absent pages are represented by the literal
// string "None", matching the published contract.
func pageLinks(basePath string, params pageParams, total int) (previous, next string) {
	previous = "None"
	next = "None"

	if params.Page > 1 {
		previous = fmt.Sprintf("%s?limit=%d&page=%d", basePath, params.Limit, params.Page-1)
	}
	if params.Page*params.Limit < total {
		next = fmt.Sprintf("%s?limit=%d&page=%d", basePath, params.Limit, params.Page+1)
	}
	return previous, next
}

// parsePositiveInt validates a required positive-integer field sent as
// text. The three failure modes get distinct messages: missing,
// non-numeric and non-positive.
func parsePositiveInt(raw, missingMsg, invalidMsg, negativeMsg string) (int, string) {
	if raw == "" {
		return 0, missingMsg
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, invalidMsg
	}
	if n < 1 {
		return 0, negativeMsg
	}
	return n, ""
}
