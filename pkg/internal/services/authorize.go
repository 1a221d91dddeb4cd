package services

import "github.com/quillapp/quill-server/pkg/internal/models"

// Authorization predicates over already-loaded entities. They never error;
// callers translate false into an unauthorized or forbidden response.

func CanEditPost(actor *models.Account, post models.Post) bool {
	return actor != nil && actor.ID == post.AuthorID
}

func CanDeletePost(actor *models.Account, post models.Post) bool {
	return CanEditPost(actor, post)
}

func CanComment(actor *models.Account) bool {
	return actor != nil
}

func CanFollow(actor *models.Account, target models.Account) bool {
	return actor != nil && actor.ID != target.ID
}
