package services

import (
	"strings"
	"testing"

	"github.com/quillapp/quill-server/pkg/internal/database"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSlugifyGroupTitle(t *testing.T) {
	assert.Equal(t, "daily-news", SlugifyGroupTitle("Daily News"))
	assert.Equal(t, "q-a", SlugifyGroupTitle("  Q&A!  "))
	assert.LessOrEqual(t, len(SlugifyGroupTitle(strings.Repeat("long title ", 30))), 100)
}

func TestNewGroupDerivesSlugFromTitle(t *testing.T) {
	resetDatabase(t)

	group, err := NewGroup("Weekend Projects", "", "things built on Saturdays")
	require.NoError(t, err)
	assert.Equal(t, "weekend-projects", group.Slug)

	found, err := GetGroup("weekend-projects")
	require.NoError(t, err)
	assert.Equal(t, group.ID, found.ID)
}

func TestNewGroupRejectsBadSlug(t *testing.T) {
	resetDatabase(t)

	_, err := NewGroup("Anything", "Not A Slug", "")
	assert.Error(t, err)

	_, err = NewGroup("Anything", strings.Repeat("a", 101), "")
	assert.Error(t, err)

	_, err = NewGroup("   ", "", "")
	assert.Error(t, err)
}

func TestEditGroupKeepsSlug(t *testing.T) {
	resetDatabase(t)

	group := createTestGroup(t, "Old Title", "stable-slug")

	group, err := EditGroup(group, "New Title", "rewritten")
	require.NoError(t, err)
	assert.Equal(t, "New Title", group.Title)
	assert.Equal(t, "stable-slug", group.Slug)
}

func TestDeleteGroupDetachesPosts(t *testing.T) {
	resetDatabase(t)

	author := createTestAccount(t, "writer")
	group := createTestGroup(t, "News", "news")
	item := createTestPost(t, author, "grouped entry", &group.ID)

	require.NoError(t, DeleteGroup(group))

	stored, err := GetPost(database.C, item.ID)
	require.NoError(t, err)
	assert.Nil(t, stored.GroupID)

	_, err = GetGroup("news")
	assert.Error(t, err)
}
