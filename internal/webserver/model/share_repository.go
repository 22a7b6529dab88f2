package model

import (
	"errors"

	"gorm.io/gorm"
)

var ErrDuplicateShare = errors.New("memo is already shared with that user")

type ShareRepository struct {
	DB *gorm.DB
}

// Grant shares a memo with a user and flips the memo's derived IsShared
// flag. Granting an existing share returns ErrDuplicateShare and leaves
// the share set untouched.
func (r *ShareRepository) Grant(memoID, userID string) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		var existing int64
		if err := tx.Model(&MemoShare{}).
			Where("memo_id = ? AND shared_with_user_id = ?", memoID, userID).
			Count(&existing).Error; err != nil {
			return err
		}
		if existing > 0 {
			return ErrDuplicateShare
		}

		share := MemoShare{MemoID: memoID, SharedWithUserID: userID}
		if err := tx.Create(&share).Error; err != nil {
			return err
		}

		return tx.Model(&Memo{}).Where("id = ?", memoID).Update("is_shared", true).Error
	})
}

// Revoke removes a share and recomputes IsShared from the remaining
// grant set, so the flag stays a pure function of the shares.
func (r *ShareRepository) Revoke(memoID, userID string) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.
			Where("memo_id = ? AND shared_with_user_id = ?", memoID, userID).
			Delete(&MemoShare{}).Error; err != nil {
			return err
		}

		var remaining int64
		if err := tx.Model(&MemoShare{}).Where("memo_id = ?", memoID).Count(&remaining).Error; err != nil {
			return err
		}

		return tx.Model(&Memo{}).Where("id = ?", memoID).Update("is_shared", remaining > 0).Error
	})
}
