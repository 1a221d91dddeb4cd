package services

import (
	"fmt"

	"github.com/quillapp/quill-server/pkg/internal/database"
	"github.com/quillapp/quill-server/pkg/internal/models"
	"github.com/samber/lo"
	"gorm.io/gorm/clause"
)

// FollowAuthor creates the follow edge if absent and reports the edge-count
// delta. Self-follow is a silent no-op. The dedup is an atomic conditional
// insert at the store level, so two simultaneous calls for the same pair
// still yield exactly one edge.
func FollowAuthor(user models.Account, author models.Account) (int64, error) {
	if user.ID == author.ID {
		return 0, nil
	}

	edge := models.FollowEdge{
		UserID:   user.ID,
		AuthorID: author.ID,
	}

	tx := database.C.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "author_id"}},
		DoNothing: true,
	}).Create(&edge)
	if tx.Error != nil {
		return 0, fmt.Errorf("unable to create follow edge: %v", tx.Error)
	}

	return tx.RowsAffected, nil
}

// UnfollowAuthor deletes the edge if present; idempotent.
func UnfollowAuthor(user models.Account, author models.Account) (int64, error) {
	tx := database.C.
		Where("user_id = ? AND author_id = ?", user.ID, author.ID).
		Delete(&models.FollowEdge{})
	if tx.Error != nil {
		return 0, fmt.Errorf("unable to delete follow edge: %v", tx.Error)
	}

	return tx.RowsAffected, nil
}

func IsFollowing(userID, authorID uint) bool {
	var count int64
	if err := database.C.Model(&models.FollowEdge{}).
		Where("user_id = ? AND author_id = ?", userID, authorID).
		Count(&count).Error; err != nil {
		return false
	}

	return count > 0
}

// ListSubscriptions returns the ids of the authors followed by the user.
func ListSubscriptions(userID uint) ([]uint, error) {
	var edges []models.FollowEdge
	if err := database.C.Where("user_id = ?", userID).Find(&edges).Error; err != nil {
		return nil, fmt.Errorf("unable to list subscriptions: %v", err)
	}

	return lo.Map(edges, func(edge models.FollowEdge, _ int) uint {
		return edge.AuthorID
	}), nil
}

func CountFollowers(authorID uint) int64 {
	var count int64
	if err := database.C.Model(&models.FollowEdge{}).
		Where("author_id = ?", authorID).
		Count(&count).Error; err != nil {
		return 0
	}

	return count
}

func CountFollowing(userID uint) int64 {
	var count int64
	if err := database.C.Model(&models.FollowEdge{}).
		Where("user_id = ?", userID).
		Count(&count).Error; err != nil {
		return 0
	}

	return count
}
