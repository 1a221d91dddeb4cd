package models

// Account is the local mirror of an identity owned by the auth subsystem.
// Records are upserted from verified token claims and never mutated otherwise.
type Account struct {
	BaseModel

	Name   string `json:"name" gorm:"uniqueIndex"`
	Nick   string `json:"nick"`
	Avatar string `json:"avatar"`

	Posts    []Post    `json:"posts,omitempty" gorm:"foreignKey:AuthorID;constraint:OnDelete:CASCADE"`
	Comments []Comment `json:"comments,omitempty" gorm:"foreignKey:AuthorID;constraint:OnDelete:CASCADE"`
}
