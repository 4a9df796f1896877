package api

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParsePageParams(t *testing.T) {
	cases := []struct {
		name    string
		query   string
		want    pageParams
		message string
	}{
		{"defaults", "", pageParams{Limit: 10, Page: 1}, ""},
		{"explicit values", "?limit=25&page=3", pageParams{Limit: 25, Page: 3}, ""},
		{"non-numeric limit", "?limit=abc", pageParams{}, msgInvalidLimit},
		{"zero limit", "?limit=0", pageParams{}, msgNegativeLimit},
		{"negative limit", "?limit=-5", pageParams{}, msgNegativeLimit},
		{"non-numeric page", "?page=x", pageParams{}, msgInvalidPage},
		{"zero page", "?page=0", pageParams{}, msgNegativePage},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := httptest.NewRequest("GET", "/shoppinglists/"+tc.query, nil)
			params, msg := parsePageParams(r)
			assert.Equal(t, tc.message, msg)
			if tc.message == "" {
				assert.Equal(t, tc.want, params)
			}
		})
	}
}

func TestPageOffset(t *testing.T) {
	assert.Equal(t, 0, pageParams{Limit: 10, Page: 1}.offset())
	assert.Equal(t, 20, pageParams{Limit: 10, Page: 3}.offset())
	assert.Equal(t, 5, pageParams{Limit: 5, Page: 2}.offset())
}

func TestPageLinks(t *testing.T) {
	t.Run("middle page links both ways", func(t *testing.T) {
		previous, next := pageLinks("/shoppinglists/", pageParams{Limit: 2, Page: 2}, 5)
		assert.Equal(t, "/shoppinglists/?limit=2&page=1", previous)
		assert.Equal(t, "/shoppinglists/?limit=2&page=3", next)
	})

	t.Run("first page has no previous", func(t *testing.T) {
		previous, next := pageLinks("/shoppinglists/", pageParams{Limit: 2, Page: 1}, 5)
		assert.Equal(t, "None", previous)
		assert.Equal(t, "/shoppinglists/?limit=2&page=2", next)
	})

	t.Run("last page has no next", func(t *testing.T) {
		previous, next := pageLinks("/shoppinglists/", pageParams{Limit: 2, Page: 3}, 5)
		assert.Equal(t, "/shoppinglists/?limit=2&page=2", previous)
		assert.Equal(t, "None", next)
	})

	t.Run("everything fits on one page", func(t *testing.T) {
		previous, next := pageLinks("/shoppinglists/", pageParams{Limit: 10, Page: 1}, 3)
		assert.Equal(t, "None", previous)
		assert.Equal(t, "None", next)
	})
}

func TestParsePositiveInt(t *testing.T) {
	cases := []struct {
		name    string
		raw     string
		want    int
		message string
	}{
		{"valid", "50", 50, ""},
		{"missing", "", 0, "missing"},
		{"non-numeric", "one", 0, "invalid"},
		{"zero", "0", 0, "negative"},
		{"negative", "-3", 0, "negative"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			n, msg := parsePositiveInt(tc.raw, "missing", "invalid", "negative")
			assert.Equal(t, tc.want, n)
			assert.Equal(t, tc.message, msg)
		})
	}
}
