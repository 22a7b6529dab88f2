package model

import "time"

type MemoShare struct {
	ID               uint      `gorm:"primarykey"`
	CreatedAt        time.Time `gorm:"autoCreateTime"`
	MemoID           string    `gorm:"index; uniqueIndex:idx_memo_grantee"`
	SharedWithUserID string    `gorm:"index; uniqueIndex:idx_memo_grantee"`
	SharedWith       User      `gorm:"foreignKey:SharedWithUserID; constraint:OnDelete:CASCADE"`
}
