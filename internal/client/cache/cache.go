// Package cache is the device-resident store the coordinator falls back
// to when the authoritative service cannot be reached. It holds whole
// memo, grant and user records keyed by their identifiers and survives
// restarts.
package cache

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/memoshare/memoshare/internal/client/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Store struct {
	db      *gorm.DB
	once    sync.Once
	initErr error
}

// Open prepares the store at the given path, creating the database file
// if it does not exist yet. Schema creation is deferred until the first
// operation; concurrent first callers all wait on that one run.
func Open(path string) (*Store, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) && !strings.Contains(path, ":memory:") {
		if _, err = os.Create(path); err != nil {
			return nil, err
		}
	}

	db, err := gorm.Open(sqlite.Open(fmt.Sprintf("%s?_pragma=foreign_keys(1)", path)), &gorm.Config{
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	})
	if err != nil {
		return nil, err
	}

	return &Store{db: db}, nil
}

func (s *Store) ensureSchema() error {
	s.once.Do(func() {
		s.initErr = s.db.AutoMigrate(&model.Memo{}, &model.ShareGrant{}, &model.User{})
	})
	return s.initErr
}

// UpsertMemo stores the memo, fully replacing any record with the same
// identifier.
func (s *Store) UpsertMemo(ctx context.Context, memo model.Memo) error {
	if err := s.ensureSchema(); err != nil {
		return err
	}
	return s.db.WithContext(ctx).Clauses(clause.OnConflict{UpdateAll: true}).Create(&memo).Error
}

func (s *Store) MemoByID(ctx context.Context, id string) (model.Memo, error) {
	var memo model.Memo

	if err := s.ensureSchema(); err != nil {
		return memo, err
	}

	result := s.db.WithContext(ctx).Take(&memo, "id = ?", id)
	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return memo, model.ErrNotFound
	}
	return memo, result.Error
}

func (s *Store) MemosByAuthor(ctx context.Context, authorID string) ([]model.Memo, error) {
	var memos []model.Memo

	if err := s.ensureSchema(); err != nil {
		return nil, err
	}

	result := s.db.WithContext(ctx).
		Where("author_id = ?", authorID).
		Order("updated_at desc").
		Find(&memos)
	return memos, result.Error
}

// SharedWith lists the memos visible to the given user through shares:
// those a locally known grant names them on, plus their own memos that
// carry the shared flag. Identifiers never repeat, both legs select from
// the same table.
func (s *Store) SharedWith(ctx context.Context, userID string) ([]model.Memo, error) {
	var memos []model.Memo

	if err := s.ensureSchema(); err != nil {
		return nil, err
	}

	granted := s.db.Model(&model.ShareGrant{}).Select("memo_id").Where("grantee_id = ?", userID)
	result := s.db.WithContext(ctx).
		Where(s.db.Where("id IN (?)", granted).Or("author_id = ? AND is_shared = ?", userID, true)).
		Order("updated_at desc").
		Find(&memos)
	return memos, result.Error
}

// DeleteMemoCascade removes the memo together with every grant that
// points at it, in a single transaction.
func (s *Store) DeleteMemoCascade(ctx context.Context, id string) error {
	if err := s.ensureSchema(); err != nil {
		return err
	}

	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("memo_id = ?", id).Delete(&model.ShareGrant{}).Error; err != nil {
			return err
		}
		return tx.Delete(&model.Memo{}, "id = ?", id).Error
	})
}

// UpsertGrant records a grant. Storing the same (memo, grantee) pair
// twice leaves a single grant behind.
func (s *Store) UpsertGrant(ctx context.Context, grant model.ShareGrant) error {
	if err := s.ensureSchema(); err != nil {
		return err
	}
	return s.db.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(&grant).Error
}

func (s *Store) DeleteGrant(ctx context.Context, memoID, granteeID string) error {
	if err := s.ensureSchema(); err != nil {
		return err
	}
	return s.db.WithContext(ctx).
		Where("memo_id = ? AND grantee_id = ?", memoID, granteeID).
		Delete(&model.ShareGrant{}).Error
}

func (s *Store) GrantsForMemo(ctx context.Context, memoID string) ([]model.ShareGrant, error) {
	var grants []model.ShareGrant

	if err := s.ensureSchema(); err != nil {
		return nil, err
	}

	result := s.db.WithContext(ctx).Where("memo_id = ?", memoID).Find(&grants)
	return grants, result.Error
}

func (s *Store) UpsertUser(ctx context.Context, user model.User) error {
	if err := s.ensureSchema(); err != nil {
		return err
	}
	return s.db.WithContext(ctx).Clauses(clause.OnConflict{UpdateAll: true}).Create(&user).Error
}

func (s *Store) UserByID(ctx context.Context, id string) (*model.User, error) {
	var user model.User

	if err := s.ensureSchema(); err != nil {
		return nil, err
	}

	result := s.db.WithContext(ctx).Take(&user, "id = ?", id)
	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &user, result.Error
}
