package services

import (
	"fmt"
	"testing"

	"github.com/quillapp/quill-server/pkg/internal/database"
	"github.com/quillapp/quill-server/pkg/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPostRejectsEmptyText(t *testing.T) {
	resetDatabase(t)

	author := createTestAccount(t, "writer")

	_, err := NewPost(author, models.Post{Text: ""})
	assert.Error(t, err)

	_, err = NewPost(author, models.Post{Text: "   \n\t"})
	assert.Error(t, err)

	var count int64
	require.NoError(t, database.C.Model(&models.Post{}).Count(&count).Error)
	assert.EqualValues(t, 0, count)
}

func TestNewPostAssignsOrderingKeyAtPersistence(t *testing.T) {
	resetDatabase(t)

	author := createTestAccount(t, "writer")

	var ids []uint
	for i := 0; i < 5; i++ {
		item := createTestPost(t, author, fmt.Sprintf("entry %d", i), nil)
		ids = append(ids, item.ID)
	}

	items, err := ListPost(database.C, 100, 0)
	require.NoError(t, err)
	require.Len(t, items, 5)

	// Strictly reverse commit order.
	for i, item := range items {
		assert.Equal(t, ids[len(ids)-1-i], item.ID)
	}
}

func TestEditPostByNonAuthorLeavesTextUnchanged(t *testing.T) {
	resetDatabase(t)

	author := createTestAccount(t, "writer")
	stranger := createTestAccount(t, "stranger")

	item := createTestPost(t, author, "hello", nil)

	// The guard runs before any mutation; a false verdict means the store
	// is never touched, which is what the forbidden response promises.
	require.False(t, CanEditPost(&stranger, item))

	stored, err := GetPost(database.C, item.ID)
	require.NoError(t, err)
	assert.Equal(t, "hello", stored.Text)
}

func TestEditPostUpdatesFields(t *testing.T) {
	resetDatabase(t)

	author := createTestAccount(t, "writer")
	group := createTestGroup(t, "News", "news-edit")

	item := createTestPost(t, author, "first draft", nil)

	item, err := EditPost(item, "second draft", &group.ID, []string{"ref-1"})
	require.NoError(t, err)
	assert.Equal(t, "second draft", item.Text)
	require.NotNil(t, item.GroupID)
	assert.Equal(t, group.ID, *item.GroupID)
	assert.EqualValues(t, []string{"ref-1"}, []string(item.Attachments))
}

func TestDeletePostHidesItFromReads(t *testing.T) {
	resetDatabase(t)

	author := createTestAccount(t, "writer")
	item := createTestPost(t, author, "ephemeral", nil)

	require.NoError(t, DeletePost(item))

	_, err := GetPost(database.C, item.ID)
	assert.Error(t, err)
}

func TestNewCommentRequiresText(t *testing.T) {
	resetDatabase(t)

	author := createTestAccount(t, "writer")
	reader := createTestAccount(t, "reader")
	item := createTestPost(t, author, "discuss", nil)

	_, err := NewComment(reader, item, "")
	assert.Error(t, err)

	comment, err := NewComment(reader, item, "nice one")
	require.NoError(t, err)
	assert.Equal(t, item.ID, comment.PostID)
	assert.Equal(t, reader.ID, comment.AuthorID)
}

func TestListCommentPageOrdersNewestFirst(t *testing.T) {
	resetDatabase(t)

	author := createTestAccount(t, "writer")
	reader := createTestAccount(t, "reader")
	item := createTestPost(t, author, "discuss", nil)

	var ids []uint
	for i := 0; i < 3; i++ {
		comment, err := NewComment(reader, item, fmt.Sprintf("comment %d", i))
		require.NoError(t, err)
		ids = append(ids, comment.ID)
	}

	page, err := ListCommentPage(item.ID, 1)
	require.NoError(t, err)
	require.Len(t, page.Items, 3)
	for i, comment := range page.Items {
		assert.Equal(t, ids[len(ids)-1-i], comment.ID)
	}
}
