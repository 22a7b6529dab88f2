package model

import (
	"errors"

	"gorm.io/gorm"
)

type MemoRepository struct {
	DB *gorm.DB
}

// ListByAuthor returns all memos authored by the given user, most
// recently updated first.
func (m *MemoRepository) ListByAuthor(authorID string) ([]Memo, error) {
	var memos []Memo

	result := m.DB.
		Preload("Author").
		Where("author_id = ?", authorID).
		Order("updated_at desc").
		Find(&memos)
	return memos, result.Error
}

// ListSharedWith returns all memos other users have shared with the
// given user, most recently updated first.
func (m *MemoRepository) ListSharedWith(userID string) ([]Memo, error) {
	var memos []Memo

	result := m.DB.
		Preload("Author").
		Joins("JOIN memo_shares ON memo_shares.memo_id = memos.id").
		Where("memo_shares.shared_with_user_id = ?", userID).
		Order("memos.updated_at desc").
		Find(&memos)
	return memos, result.Error
}

func (m *MemoRepository) FindByID(id string) (*Memo, error) {
	var memo Memo

	result := m.DB.
		Preload("Author").
		Preload("Shares").
		Take(&memo, "id = ?", id)
	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return nil, nil
	}

	return &memo, result.Error
}

func (m *MemoRepository) Create(memo *Memo) error {
	return m.DB.Create(memo).Error
}

func (m *MemoRepository) Update(memo *Memo) error {
	return m.DB.Omit("Author", "Shares").Save(memo).Error
}

// Delete removes the memo along with all its shares.
func (m *MemoRepository) Delete(id string) error {
	return m.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("memo_id = ?", id).Delete(&MemoShare{}).Error; err != nil {
			return err
		}
		return tx.Delete(&Memo{}, "id = ?", id).Error
	})
}
