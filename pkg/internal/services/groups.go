package services

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/quillapp/quill-server/pkg/internal/database"
	"github.com/quillapp/quill-server/pkg/internal/models"
	"gorm.io/gorm"
)

const groupSlugMaxLength = 100

var (
	groupSlugPattern        = regexp.MustCompile(`^[a-z0-9-]+$`)
	groupSlugCleanupPattern = regexp.MustCompile(`[^a-z0-9]+`)
)

// SlugifyGroupTitle derives a slug from a title: lowercased, non-alphanumeric
// runs collapsed to a single dash, truncated to a hundred characters.
func SlugifyGroupTitle(title string) string {
	slug := strings.ToLower(title)
	slug = groupSlugCleanupPattern.ReplaceAllString(slug, "-")
	slug = strings.Trim(slug, "-")
	if len(slug) > groupSlugMaxLength {
		slug = strings.Trim(slug[:groupSlugMaxLength], "-")
	}
	return slug
}

func ListGroup(take int, offset int) ([]models.Group, error) {
	var groups []models.Group
	err := database.C.Offset(offset).Limit(take).Order("title ASC").Find(&groups).Error

	return groups, err
}

func GetGroup(slug string) (models.Group, error) {
	var group models.Group
	if err := database.C.Where(models.Group{Slug: slug}).First(&group).Error; err != nil {
		return group, fmt.Errorf("unable to get group: %w", err)
	}
	return group, nil
}

func GetGroupWithID(id uint) (models.Group, error) {
	var group models.Group
	if err := database.C.Where("id = ?", id).First(&group).Error; err != nil {
		return group, fmt.Errorf("unable to get group: %w", err)
	}
	return group, nil
}

func NewGroup(title, slug, description string) (models.Group, error) {
	var group models.Group
	if len(strings.TrimSpace(title)) == 0 {
		return group, fmt.Errorf("group title cannot be empty")
	}

	if len(slug) == 0 {
		slug = SlugifyGroupTitle(title)
	}
	if len(slug) > groupSlugMaxLength || !groupSlugPattern.MatchString(slug) {
		return group, fmt.Errorf("invalid group slug, allowed are lowercase letters, digits and dashes up to %d characters", groupSlugMaxLength)
	}

	group = models.Group{
		Title:       title,
		Slug:        slug,
		Description: description,
	}

	err := database.C.Create(&group).Error

	return group, err
}

// EditGroup updates the mutable fields; the slug is immutable once set.
func EditGroup(group models.Group, title, description string) (models.Group, error) {
	group.Title = title
	group.Description = description

	err := database.C.Save(&group).Error

	return group, err
}

// DeleteGroup detaches the group's posts before removing the group, so they
// stay retrievable with a null group reference.
func DeleteGroup(group models.Group) error {
	err := database.C.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.Post{}).
			Where("group_id = ?", group.ID).
			Update("group_id", nil).Error; err != nil {
			return err
		}
		return tx.Delete(&group).Error
	})
	if err != nil {
		return fmt.Errorf("unable to delete group: %v", err)
	}

	InvalidateTimeline()

	return nil
}
