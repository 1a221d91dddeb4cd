package services

import (
	"fmt"
	"os"
	"testing"

	localCache "github.com/quillapp/quill-server/pkg/internal/cache"
	"github.com/quillapp/quill-server/pkg/internal/database"
	"github.com/quillapp/quill-server/pkg/internal/models"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func TestMain(m *testing.M) {
	source, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		panic(err)
	}

	database.C = source
	if err := database.RunMigration(source); err != nil {
		panic(err)
	}
	if err := localCache.NewStore(); err != nil {
		panic(err)
	}

	os.Exit(m.Run())
}

// resetDatabase clears every table so each test starts from a known state.
func resetDatabase(t *testing.T) {
	t.Helper()

	for _, model := range []any{
		&models.Comment{},
		&models.FollowEdge{},
		&models.Post{},
		&models.Group{},
		&models.Account{},
	} {
		require.NoError(t, database.C.Unscoped().Where("1 = 1").Delete(model).Error)
	}

	InvalidateTimeline()
}

var accountSerial int

func createTestAccount(t *testing.T, name string) models.Account {
	t.Helper()

	accountSerial++
	account := models.Account{
		Name: fmt.Sprintf("%s-%d", name, accountSerial),
		Nick: name,
	}
	require.NoError(t, database.C.Create(&account).Error)

	return account
}

func createTestPost(t *testing.T, author models.Account, text string, groupID *uint) models.Post {
	t.Helper()

	item, err := NewPost(author, models.Post{Text: text, GroupID: groupID})
	require.NoError(t, err)

	return item
}

func createTestGroup(t *testing.T, title, slug string) models.Group {
	t.Helper()

	group, err := NewGroup(title, slug, "")
	require.NoError(t, err)

	return group
}
