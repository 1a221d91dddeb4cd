package services

import (
	"testing"

	"github.com/quillapp/quill-server/pkg/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestAuthorizePredicates(t *testing.T) {
	author := models.Account{BaseModel: models.BaseModel{ID: 1}}
	stranger := models.Account{BaseModel: models.BaseModel{ID: 2}}
	post := models.Post{AuthorID: author.ID}

	t.Run("OnlyAuthorMayEdit", func(t *testing.T) {
		assert.True(t, CanEditPost(&author, post))
		assert.False(t, CanEditPost(&stranger, post))
		assert.False(t, CanEditPost(nil, post))
	})

	t.Run("DeleteFollowsEditRule", func(t *testing.T) {
		assert.True(t, CanDeletePost(&author, post))
		assert.False(t, CanDeletePost(&stranger, post))
		assert.False(t, CanDeletePost(nil, post))
	})

	t.Run("AnyAuthenticatedViewerMayComment", func(t *testing.T) {
		assert.True(t, CanComment(&stranger))
		assert.False(t, CanComment(nil))
	})

	t.Run("NoSelfFollow", func(t *testing.T) {
		assert.True(t, CanFollow(&stranger, author))
		assert.False(t, CanFollow(&author, author))
		assert.False(t, CanFollow(nil, author))
	})
}
