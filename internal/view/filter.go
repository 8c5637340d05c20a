package view

import (
	"strconv"
	"strings"

	"github.com/Makepad-fr/postview/internal/model"
)

// Filter returns the records of master matching query, in master order.
// A record matches when the lower-cased query is a substring of its
// lower-cased title or body, or of its decimal id. An empty query matches
// everything. master is never modified.
func Filter(master []model.Record, query string) []model.Record {
	q := strings.ToLower(query)
	out := make([]model.Record, 0, len(master))
	for _, r := range master {
		if Matches(r, q) {
			out = append(out, r)
		}
	}
	return out
}

// Matches expects q already lower-cased.
func Matches(r model.Record, q string) bool {
	if q == "" {
		return true
	}
	return strings.Contains(strings.ToLower(r.Title), q) ||
		strings.Contains(strings.ToLower(r.Body), q) ||
		strings.Contains(strconv.Itoa(r.ID), q)
}
