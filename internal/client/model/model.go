package model

import "time"

// Memo is the one canonical memo representation used by the coordinator,
// the local cache and the callers. The remote wire format is converted
// into it at the remote client boundary and nowhere else.
type Memo struct {
	ID         string `gorm:"primarykey"`
	Title      string
	Content    string `gorm:"type:text"`
	AuthorID   string `gorm:"index"`
	AuthorName string
	// IsShared mirrors whether the memo currently has at least one grant.
	IsShared  bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// ShareGrant records that one user may read one memo. The pair is unique.
type ShareGrant struct {
	ID        uint   `gorm:"primarykey"`
	MemoID    string `gorm:"index; uniqueIndex:idx_grant_pair"`
	GranteeID string `gorm:"index; uniqueIndex:idx_grant_pair"`
	GrantedAt time.Time
}

type User struct {
	ID          string `gorm:"primarykey"`
	Username    string `gorm:"uniqueIndex"`
	Email       string `gorm:"uniqueIndex"`
	DisplayName string
}
