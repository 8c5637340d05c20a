package view

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Makepad-fr/postview/internal/model"
)

func TestSortByIDIsNumeric(t *testing.T) {
	cols := DefaultColumns()
	in := []model.Record{{ID: 100}, {ID: 2}, {ID: 21}, {ID: 1}}

	asc := Sort(in, cols[0], false)
	assert.Equal(t, []int{1, 2, 21, 100}, ids(asc))

	desc := Sort(in, cols[0], true)
	assert.Equal(t, []int{100, 21, 2, 1}, ids(desc))

	assert.Equal(t, []int{100, 2, 21, 1}, ids(in), "input must keep its order")
}

func TestSortIsStable(t *testing.T) {
	cols := DefaultColumns()
	in := []model.Record{
		{ID: 3, Title: "b"},
		{ID: 1, Title: "a"},
		{ID: 2, Title: "b"},
		{ID: 4, Title: "a"},
	}
	got := Sort(in, cols[1], false)
	assert.Equal(t, []int{1, 4, 3, 2}, ids(got))
}

func TestSortActionColumnKeepsOrder(t *testing.T) {
	cols := DefaultColumns()
	action := cols[len(cols)-1]
	require.False(t, action.Sortable)

	in := []model.Record{{ID: 3}, {ID: 1}, {ID: 2}}
	assert.Equal(t, []int{3, 1, 2}, ids(Sort(in, action, true)))
}

func TestPaginate(t *testing.T) {
	in := make([]model.Record, 0, 23)
	for i := 1; i <= 23; i++ {
		in = append(in, model.Record{ID: i})
	}

	tests := []struct {
		name      string
		page      int
		perPage   int
		wantFirst int
		wantLen   int
		wantPages int
	}{
		{"first", 0, 10, 1, 10, 3},
		{"last partial", 2, 10, 21, 3, 3},
		{"past end clamps", 9, 10, 21, 3, 3},
		{"negative clamps", -1, 10, 1, 10, 3},
		{"no paging", 0, 0, 1, 23, 1},
		{"exact fit", 0, 23, 1, 23, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, pages := Paginate(in, tt.page, tt.perPage)
			assert.Equal(t, tt.wantPages, pages)
			require.Len(t, got, tt.wantLen)
			assert.Equal(t, tt.wantFirst, got[0].ID)
		})
	}
}

func TestPaginateEmpty(t *testing.T) {
	got, pages := Paginate(nil, 3, 10)
	assert.Empty(t, got)
	assert.Equal(t, 1, pages)
}

func TestRows(t *testing.T) {
	rows := Rows([]model.Record{{ID: 7, Title: "t", Body: "line one\nline  two"}}, DefaultColumns())
	want := [][]string{{"7", "t", "line one line two", ActionHint}}
	if diff := cmp.Diff(want, rows); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

func TestSelector(t *testing.T) {
	s := New()
	assert.Equal(t, "", s.Selected())
	assert.Equal(t, SelectorPlaceholder, SelectorLabel(s.Selected()))

	s, ok := s.Select("Umar")
	require.True(t, ok)
	assert.Equal(t, "Umar", s.Selected())

	s, ok = s.Select("Bob")
	assert.False(t, ok)
	assert.Equal(t, "Umar", s.Selected())

	assert.Equal(t, "Asad", s.NextSelection())
	s, _ = s.Select("Asad")
	assert.Equal(t, "", s.NextSelection())
}
