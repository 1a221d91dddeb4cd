package services

import (
	"testing"

	"github.com/quillapp/quill-server/pkg/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestInvalidateTimelineDropsCachedPages(t *testing.T) {
	resetDatabase(t)

	CacheTimelinePage(1, models.Page[models.Post]{PageNumber: 1, TotalPages: 1})
	CacheTimelinePage(2, models.Page[models.Post]{PageNumber: 2, TotalPages: 2})

	InvalidateTimeline()

	_, hit := GetTimelinePage(1)
	assert.False(t, hit)
	_, hit = GetTimelinePage(2)
	assert.False(t, hit)
}
