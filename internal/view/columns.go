package view

import (
	"cmp"
	"slices"
	"strconv"
	"strings"

	"github.com/Makepad-fr/postview/internal/model"
)

// Column describes one table column for a renderer.
// Compare is only consulted when Sortable is true.
type Column struct {
	Title    string
	Width    int
	Sortable bool
	Value    func(model.Record) string
	Compare  func(a, b model.Record) int
}

// ActionHint is rendered in the action column of every row.
const ActionHint = "[e]dit [d]elete"

// DefaultColumns is ID, Title, Body and the row actions.
func DefaultColumns() []Column {
	return []Column{
		{
			Title:    "ID",
			Width:    5,
			Sortable: true,
			Value:    func(r model.Record) string { return strconv.Itoa(r.ID) },
			Compare:  func(a, b model.Record) int { return cmp.Compare(a.ID, b.ID) },
		},
		{
			Title:    "Title",
			Width:    32,
			Sortable: true,
			Value:    func(r model.Record) string { return r.Title },
			Compare:  func(a, b model.Record) int { return strings.Compare(a.Title, b.Title) },
		},
		{
			Title:    "Body",
			Width:    48,
			Sortable: true,
			Value:    func(r model.Record) string { return flatten(r.Body) },
			Compare:  func(a, b model.Record) int { return strings.Compare(a.Body, b.Body) },
		},
		{
			Title: "Edit/Delete",
			Width: 16,
			Value: func(model.Record) string { return ActionHint },
		},
	}
}

// Sort returns a stably sorted copy of records. A non-sortable column (or
// one without Compare) leaves the order as is.
func Sort(records []model.Record, col Column, desc bool) []model.Record {
	out := clone(records)
	if !col.Sortable || col.Compare == nil {
		return out
	}
	slices.SortStableFunc(out, func(a, b model.Record) int {
		c := col.Compare(a, b)
		if desc {
			return -c
		}
		return c
	})
	return out
}

// Paginate returns the slice for page (0-based, clamped into range) and the
// total number of pages, which is at least 1.
func Paginate(records []model.Record, page, perPage int) ([]model.Record, int) {
	if perPage <= 0 || len(records) == 0 {
		return clone(records), 1
	}
	pages := (len(records) + perPage - 1) / perPage
	page = max(0, min(page, pages-1))
	start := page * perPage
	end := min(start+perPage, len(records))
	return clone(records[start:end]), pages
}

// Rows projects records through cols into string cells.
func Rows(records []model.Record, cols []Column) [][]string {
	rows := make([][]string, 0, len(records))
	for _, r := range records {
		row := make([]string, len(cols))
		for i, c := range cols {
			row[i] = c.Value(r)
		}
		rows = append(rows, row)
	}
	return rows
}

func flatten(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
