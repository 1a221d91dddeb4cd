package services

import (
	"fmt"
	"strings"
	"sync"

	"github.com/quillapp/quill-server/pkg/internal/database"
	"github.com/quillapp/quill-server/pkg/internal/models"
	"github.com/pemistahl/lingua-go"
	"github.com/rs/zerolog/log"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// PostOrdering is the canonical sort for post listings: two posts committed
// in sequence always sort in reverse commit order.
const PostOrdering = "created_at DESC, id DESC"

func FilterPostWithGroup(tx *gorm.DB, groupID uint) *gorm.DB {
	return tx.Where("group_id = ?", groupID)
}

func FilterPostWithAuthor(tx *gorm.DB, authorID uint) *gorm.DB {
	return tx.Where("author_id = ?", authorID)
}

func FilterPostWithSubscriptions(tx *gorm.DB, authorIDs []uint) *gorm.DB {
	return tx.Where("author_id IN ?", authorIDs)
}

func PreloadPostGeneral(tx *gorm.DB) *gorm.DB {
	return tx.
		Preload("Author").
		Preload("Group")
}

func GetPost(tx *gorm.DB, id uint) (models.Post, error) {
	var item models.Post
	if err := PreloadPostGeneral(tx).
		Where("id = ?", id).
		First(&item).Error; err != nil {
		return item, err
	}

	return item, nil
}

// GetPostWithComments loads a post for the detail view, comments included.
func GetPostWithComments(tx *gorm.DB, id uint) (models.Post, error) {
	tx = tx.Preload("Comments", func(tx *gorm.DB) *gorm.DB {
		return tx.Order(PostOrdering).Preload("Author")
	})

	return GetPost(tx, id)
}

func CountPost(tx *gorm.DB) (int64, error) {
	var count int64
	if err := tx.Model(&models.Post{}).Count(&count).Error; err != nil {
		return count, err
	}

	return count, nil
}

func ListPost(tx *gorm.DB, take int, offset int) ([]models.Post, error) {
	if take > 100 {
		take = 100
	}

	var items []models.Post
	if err := PreloadPostGeneral(tx).
		Limit(take).Offset(offset).
		Order(PostOrdering).
		Find(&items).Error; err != nil {
		return items, err
	}

	return items, nil
}

var (
	languageDetector     lingua.LanguageDetector
	languageDetectorOnce sync.Once
)

func DetectPostLanguage(content string) string {
	languageDetectorOnce.Do(func() {
		languageDetector = lingua.NewLanguageDetectorBuilder().
			FromAllSpokenLanguages().
			Build()
	})

	if language, exists := languageDetector.DetectLanguageOf(content); exists {
		return strings.ToLower(language.IsoCode639_1().String())
	}

	return ""
}

// NewPost persists a post for its author. The creation timestamp is assigned
// by the store at persistence time, so feed ordering reflects commit order.
func NewPost(author models.Account, item models.Post) (models.Post, error) {
	if len(strings.TrimSpace(item.Text)) == 0 {
		return item, fmt.Errorf("post text cannot be empty")
	}

	if item.GroupID != nil {
		if _, err := GetGroupWithID(*item.GroupID); err != nil {
			return item, err
		}
	}

	item.AuthorID = author.ID
	item.Language = DetectPostLanguage(item.Text)

	if err := database.C.Create(&item).Error; err != nil {
		return item, fmt.Errorf("unable to create post: %v", err)
	}

	InvalidateTimeline()

	log.Debug().Uint("id", item.ID).Uint("author", author.ID).Msg("Created a new post.")

	return GetPost(database.C, item.ID)
}

func EditPost(item models.Post, text string, groupID *uint, attachments []string) (models.Post, error) {
	if len(strings.TrimSpace(text)) == 0 {
		return item, fmt.Errorf("post text cannot be empty")
	}

	if groupID != nil {
		if _, err := GetGroupWithID(*groupID); err != nil {
			return item, err
		}
	}

	item.Text = text
	item.GroupID = groupID
	item.Language = DetectPostLanguage(text)
	if attachments != nil {
		item.Attachments = datatypes.JSONSlice[string](attachments)
	}

	if err := database.C.Save(&item).Error; err != nil {
		return item, fmt.Errorf("unable to update post: %v", err)
	}

	InvalidateTimeline()

	return GetPost(database.C, item.ID)
}

func DeletePost(item models.Post) error {
	if err := database.C.Delete(&item).Error; err != nil {
		return fmt.Errorf("unable to delete post: %v", err)
	}

	InvalidateTimeline()

	return nil
}
