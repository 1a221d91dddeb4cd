package services

import (
	"time"

	"github.com/quillapp/quill-server/pkg/internal/database"
	"github.com/rs/zerolog/log"
)

// DoAutoDatabaseCleanup hard-deletes rows that were soft-deleted more than
// thirty days ago.
func DoAutoDatabaseCleanup() {
	deadline := time.Now().Add(-30 * 24 * time.Hour)
	log.Debug().Time("deadline", deadline).Msg("Now cleaning up entire database...")

	var count int64
	for _, model := range database.AutoMaintainRange {
		tx := database.C.Unscoped().
			Where("deleted_at < ?", deadline).
			Delete(model)
		if tx.Error != nil {
			log.Error().Err(tx.Error).Msg("An error occurred when running auto database cleanup...")
			continue
		}
		count += tx.RowsAffected
	}

	log.Info().Int64("affected", count).Msg("Auto database cleanup finished.")
}
