package search_test

import (
	"testing"

	"github.com/memoshare/memoshare/internal/client/model"
	"github.com/memoshare/memoshare/internal/client/search"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIndexAndSearch(t *testing.T) {
	idx, err := search.NewIndex()
	require.NoError(t, err)

	require.NoError(t, idx.Add(model.Memo{ID: "m1", Title: "Groceries", Content: "milk and eggs"}))
	require.NoError(t, idx.Add(model.Memo{ID: "m2", Title: "Meeting notes", Content: "next Monday at ten"}))

	var cases = []struct {
		name     string
		keywords string
		expected []string
	}{
		{"Searching by title finds the memo", "groceries", []string{"m1"}},
		{"Searching by content finds the memo", "monday", []string{"m2"}},
		{"Searching for an absent word finds nothing", "holidays", []string{}},
	}

	for _, tcase := range cases {
		t.Run(tcase.name, func(t *testing.T) {
			ids, err := idx.Search(tcase.keywords)
			require.NoError(t, err)
			assert.Equal(t, tcase.expected, ids)
		})
	}
}

func TestRemove(t *testing.T) {
	idx, err := search.NewIndex()
	require.NoError(t, err)

	require.NoError(t, idx.Add(model.Memo{ID: "m1", Title: "Groceries", Content: "milk and eggs"}))
	require.NoError(t, idx.Remove("m1"))

	ids, err := idx.Search("groceries")
	require.NoError(t, err)
	assert.Empty(t, ids)
}

func TestReindexReplacesDocument(t *testing.T) {
	idx, err := search.NewIndex()
	require.NoError(t, err)

	require.NoError(t, idx.Add(model.Memo{ID: "m1", Title: "Groceries", Content: "milk and eggs"}))
	require.NoError(t, idx.Add(model.Memo{ID: "m1", Title: "Holiday plan", Content: "pack the tent"}))

	ids, err := idx.Search("groceries")
	require.NoError(t, err)
	assert.Empty(t, ids)

	ids, err = idx.Search("holiday")
	require.NoError(t, err)
	assert.Equal(t, []string{"m1"}, ids)
}
