package services

import (
	"fmt"
	"strings"

	"github.com/quillapp/quill-server/pkg/internal/database"
	"github.com/quillapp/quill-server/pkg/internal/models"
)

func ListCommentPage(postID uint, page int) (models.Page[models.Comment], error) {
	var comments []models.Comment
	if err := database.C.
		Where("post_id = ?", postID).
		Order(PostOrdering).
		Preload("Author").
		Find(&comments).Error; err != nil {
		return models.Page[models.Comment]{}, fmt.Errorf("unable to list comments: %v", err)
	}

	return PageOf(comments, FeedPageSize, page), nil
}

func NewComment(author models.Account, post models.Post, text string) (models.Comment, error) {
	var comment models.Comment
	if len(strings.TrimSpace(text)) == 0 {
		return comment, fmt.Errorf("comment text cannot be empty")
	}

	comment = models.Comment{
		Text:     text,
		PostID:   post.ID,
		AuthorID: author.ID,
	}

	if err := database.C.Create(&comment).Error; err != nil {
		return comment, fmt.Errorf("unable to create comment: %v", err)
	}

	return comment, nil
}
