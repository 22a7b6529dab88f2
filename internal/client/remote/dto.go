package remote

import (
	"time"

	"github.com/memoshare/memoshare/internal/client/model"
)

// memoPayload is the wire shape the authoritative service speaks. It
// exists only inside this package; everything past the client boundary
// works with model.Memo.
type memoPayload struct {
	ID         string    `json:"id"`
	Title      string    `json:"title"`
	Content    string    `json:"content"`
	AuthorID   string    `json:"authorId"`
	AuthorName string    `json:"authorName"`
	IsShared   bool      `json:"isShared"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

type memoRequest struct {
	Title    string `json:"title"`
	Content  string `json:"content"`
	IsShared bool   `json:"isShared"`
}

type shareRequest struct {
	SharedWithUserID string `json:"sharedWithUserId"`
}

type errorResponse struct {
	Message string `json:"message"`
}

func (p memoPayload) toMemo() model.Memo {
	return model.Memo{
		ID:         p.ID,
		Title:      p.Title,
		Content:    p.Content,
		AuthorID:   p.AuthorID,
		AuthorName: p.AuthorName,
		IsShared:   p.IsShared,
		CreatedAt:  p.CreatedAt,
		UpdatedAt:  p.UpdatedAt,
	}
}

func toMemos(payloads []memoPayload) []model.Memo {
	memos := make([]model.Memo, 0, len(payloads))
	for _, payload := range payloads {
		memos = append(memos, payload.toMemo())
	}
	return memos
}
