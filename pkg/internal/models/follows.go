package models

import "time"

// FollowEdge is a pure directed relation: its existence is the only queryable
// fact, so rows are hard-deleted rather than soft-deleted. Uniqueness on the
// (user, author) pair is enforced by the store via the composite index plus
// an insert that ignores conflicts.
type FollowEdge struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	CreatedAt time.Time `json:"created_at"`

	UserID   uint `json:"user_id" gorm:"uniqueIndex:idx_follow_edges_pair"`
	AuthorID uint `json:"author_id" gorm:"uniqueIndex:idx_follow_edges_pair"`

	User   Account `json:"user" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Author Account `json:"author" gorm:"foreignKey:AuthorID;constraint:OnDelete:CASCADE"`
}
