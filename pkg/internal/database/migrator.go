package database

import (
	"github.com/quillapp/quill-server/pkg/internal/models"
	"gorm.io/gorm"
)

// AutoMaintainRange lists the soft-deleted entities swept by the cleanup job.
// FollowEdge is excluded: edges are hard-deleted on unfollow.
var AutoMaintainRange = []any{
	&models.Account{},
	&models.Group{},
	&models.Post{},
	&models.Comment{},
}

func RunMigration(source *gorm.DB) error {
	if err := source.AutoMigrate(
		append(
			AutoMaintainRange,
			&models.FollowEdge{},
		)...,
	); err != nil {
		return err
	}

	return nil
}
