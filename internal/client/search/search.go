// Package search keeps an in-memory full-text index over the locally
// cached memos so they stay searchable while offline. The index is
// rebuilt as memos flow through the coordinator; the cache remains the
// source of record.
package search

import (
	"github.com/blevesearch/bleve/v2"
	"github.com/memoshare/memoshare/internal/client/model"
)

type Index struct {
	idx bleve.Index
}

type memoDocument struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

func NewIndex() (*Index, error) {
	indexMapping := bleve.NewIndexMapping()
	memoMapping := bleve.NewDocumentMapping()
	memoMapping.AddFieldMappingsAt("title", bleve.NewTextFieldMapping())
	memoMapping.AddFieldMappingsAt("content", bleve.NewTextFieldMapping())
	indexMapping.AddDocumentMapping("memo", memoMapping)

	idx, err := bleve.NewMemOnly(indexMapping)
	if err != nil {
		return nil, err
	}
	return &Index{idx: idx}, nil
}

func (i *Index) Add(memo model.Memo) error {
	return i.idx.Index(memo.ID, memoDocument{
		Title:   memo.Title,
		Content: memo.Content,
	})
}

func (i *Index) Remove(id string) error {
	return i.idx.Delete(id)
}

// Search returns the identifiers of the memos matching the keywords,
// best match first.
func (i *Index) Search(keywords string) ([]string, error) {
	query := bleve.NewMatchQuery(keywords)
	searchOptions := bleve.NewSearchRequestOptions(query, 100, 0, false)

	searchResult, err := i.idx.Search(searchOptions)
	if err != nil {
		return nil, err
	}

	ids := make([]string, 0, len(searchResult.Hits))
	for _, hit := range searchResult.Hits {
		ids = append(ids, hit.ID)
	}
	return ids, nil
}
