package model

import "time"

type Memo struct {
	ID        string `gorm:"primarykey"`
	CreatedAt time.Time
	UpdatedAt time.Time
	Title     string
	Content   string `gorm:"type:text"`
	AuthorID  string `gorm:"index; not null"`
	Author    User
	// IsShared is derived state: true while at least one share exists.
	// ShareRepository keeps it consistent on every grant and revoke.
	IsShared bool
	Shares   []MemoShare `gorm:"constraint:OnDelete:CASCADE"`
}

// SharedWith tells whether the memo has an active share for the given user.
func (m Memo) SharedWith(userID string) bool {
	for _, share := range m.Shares {
		if share.SharedWithUserID == userID {
			return true
		}
	}
	return false
}

// ReadableBy tells whether the given user may see the memo, that is,
// they authored it or it has been shared with them.
func (m Memo) ReadableBy(userID string) bool {
	return m.AuthorID == userID || m.SharedWith(userID)
}
