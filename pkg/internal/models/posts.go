package models

import (
	"gorm.io/datatypes"
)

// Post ordering key is (created_at DESC, id DESC); created_at is assigned at
// persistence time so the key reflects commit order under concurrent writers.
type Post struct {
	BaseModel

	Text        string                      `json:"text"`
	Language    string                      `json:"language"`
	Attachments datatypes.JSONSlice[string] `json:"attachments"`

	GroupID *uint  `json:"group_id"`
	Group   *Group `json:"group,omitempty"`

	AuthorID uint    `json:"author_id"`
	Author   Account `json:"author"`

	Comments []Comment `json:"comments,omitempty" gorm:"constraint:OnDelete:CASCADE"`
}

// PostView decorates a post with viewer-only fields; it is never persisted.
type PostView struct {
	Post

	IsFollowingAuthor bool `json:"is_following_author"`
}
