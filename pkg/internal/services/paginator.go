package services

import "github.com/quillapp/quill-server/pkg/internal/models"

const (
	// FeedPageSize applies to the global, group and profile feeds.
	FeedPageSize = 10
	// SubscriptionPageSize applies to the follow-based feed only.
	SubscriptionPageSize = 20
)

// PageBounds clamps the requested page number against the item total and
// returns the record offset to read from, the resolved page number and the
// page count. A total of zero resolves to page 1 of 0 pages.
func PageBounds(total int64, size, number int) (offset, page, totalPages int) {
	totalPages = int((total + int64(size) - 1) / int64(size))
	if totalPages == 0 {
		return 0, 1, 0
	}

	page = min(max(number, 1), totalPages)
	offset = (page - 1) * size

	return offset, page, totalPages
}

// PageOf paginates an in-memory sequence. Pure, no I/O.
func PageOf[T any](items []T, size, number int) models.Page[T] {
	offset, page, totalPages := PageBounds(int64(len(items)), size, number)
	end := min(offset+size, len(items))

	return models.Page[T]{
		Items:      items[offset:end],
		PageNumber: page,
		TotalCount: int64(len(items)),
		TotalPages: totalPages,
	}
}
