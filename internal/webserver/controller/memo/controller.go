package memo

import (
	"time"

	"github.com/memoshare/memoshare/internal/webserver/model"
)

type memosRepository interface {
	ListByAuthor(authorID string) ([]model.Memo, error)
	ListSharedWith(userID string) ([]model.Memo, error)
	FindByID(id string) (*model.Memo, error)
	Create(memo *model.Memo) error
	Update(memo *model.Memo) error
	Delete(id string) error
}

type sharesRepository interface {
	Grant(memoID, userID string) error
	Revoke(memoID, userID string) error
}

type usersRepository interface {
	FindByID(id string) (*model.User, error)
}

type Controller struct {
	memos  memosRepository
	shares sharesRepository
	users  usersRepository
}

func NewController(memos memosRepository, shares sharesRepository, users usersRepository) *Controller {
	return &Controller{
		memos:  memos,
		shares: shares,
		users:  users,
	}
}

type memoResponse struct {
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

func toResponse(memo model.Memo) memoResponse {
	return memoResponse{
		ID:         memo.ID,
		Title:      memo.Title,
		Content:    memo.Content,
		AuthorID:   memo.AuthorID,
		AuthorName: memo.Author.DisplayName,
		IsShared:   memo.IsShared,
		CreatedAt:  memo.CreatedAt,
		UpdatedAt:  memo.UpdatedAt,
	}
}

func toResponses(memos []model.Memo) []memoResponse {
	responses := make([]memoResponse, 0, len(memos))
	for _, memo := range memos {
		responses = append(responses, toResponse(memo))
	}
	return responses
}
