package models

// Group slug is unique and immutable once set; when absent it is derived
// from the title, truncated to a hundred characters.
type Group struct {
	BaseModel

	Title       string `json:"title"`
	Slug        string `json:"slug" gorm:"uniqueIndex"`
	Description string `json:"description"`

	Posts []Post `json:"posts,omitempty" gorm:"constraint:OnDelete:SET NULL"`
}
