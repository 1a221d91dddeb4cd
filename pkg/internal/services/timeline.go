package services

import (
	"context"
	"fmt"
	"time"

	localCache "github.com/quillapp/quill-server/pkg/internal/cache"
	"github.com/quillapp/quill-server/pkg/internal/models"
	"github.com/eko/gocache/lib/v4/cache"
	"github.com/eko/gocache/lib/v4/marshaler"
	"github.com/eko/gocache/lib/v4/store"
	"github.com/spf13/viper"
)

// The rendered global feed is read-heavy and tolerates brief staleness, so
// pages are cached for a short TTL keyed by page number. Every post mutation
// invalidates the whole set before acknowledging the write.

const timelineCacheTag = "timeline"

func timelineCacheKey(page int) string {
	return fmt.Sprintf("timeline-page#%d", page)
}

func timelineCacheTTL() time.Duration {
	ttl := viper.GetInt("performance.timeline_ttl")
	if ttl <= 0 {
		ttl = 30
	}
	return time.Duration(ttl) * time.Second
}

func GetTimelinePage(page int) (models.Page[models.Post], bool) {
	marshal := marshaler.New(cache.New[any](localCache.S))

	val, err := marshal.Get(
		context.Background(),
		timelineCacheKey(page),
		new(models.Page[models.Post]),
	)
	if err != nil {
		return models.Page[models.Post]{}, false
	}

	out, ok := val.(*models.Page[models.Post])
	if !ok {
		return models.Page[models.Post]{}, false
	}

	return *out, true
}

func CacheTimelinePage(page int, data models.Page[models.Post]) {
	marshal := marshaler.New(cache.New[any](localCache.S))

	_ = marshal.Set(
		context.Background(),
		timelineCacheKey(page),
		data,
		store.WithExpiration(timelineCacheTTL()),
		store.WithTags([]string{timelineCacheTag}),
	)
}

// InvalidateTimeline drops every cached global-feed page. Called synchronously
// by writers before they return success, not fire-and-forget.
func InvalidateTimeline() {
	cacheManager := cache.New[any](localCache.S)

	_ = cacheManager.Invalidate(
		context.Background(),
		store.WithInvalidateTags([]string{timelineCacheTag}),
	)
}
