package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPageBounds(t *testing.T) {
	t.Run("EmptySequence", func(t *testing.T) {
		offset, page, totalPages := PageBounds(0, 10, 1)
		assert.Equal(t, 0, offset)
		assert.Equal(t, 1, page)
		assert.Equal(t, 0, totalPages)
	})

	t.Run("CeilDivision", func(t *testing.T) {
		_, _, totalPages := PageBounds(21, 10, 1)
		assert.Equal(t, 3, totalPages)

		_, _, totalPages = PageBounds(20, 10, 1)
		assert.Equal(t, 2, totalPages)

		_, _, totalPages = PageBounds(1, 10, 1)
		assert.Equal(t, 1, totalPages)
	})

	t.Run("ClampsAboveRange", func(t *testing.T) {
		offset, page, totalPages := PageBounds(25, 10, 99)
		assert.Equal(t, 20, offset)
		assert.Equal(t, 3, page)
		assert.Equal(t, 3, totalPages)
	})

	t.Run("ClampsBelowRange", func(t *testing.T) {
		offset, page, _ := PageBounds(25, 10, 0)
		assert.Equal(t, 0, offset)
		assert.Equal(t, 1, page)

		offset, page, _ = PageBounds(25, 10, -3)
		assert.Equal(t, 0, offset)
		assert.Equal(t, 1, page)
	})
}

func TestPageOf(t *testing.T) {
	sequence := make([]int, 0, 25)
	for i := 0; i < 25; i++ {
		sequence = append(sequence, i)
	}

	t.Run("EveryItemAppearsExactlyOnce", func(t *testing.T) {
		var gathered []int
		_, _, totalPages := PageBounds(int64(len(sequence)), 10, 1)
		for number := 1; number <= totalPages; number++ {
			page := PageOf(sequence, 10, number)
			if number < totalPages {
				assert.Len(t, page.Items, 10)
			}
			gathered = append(gathered, page.Items...)
		}
		assert.Equal(t, sequence, gathered)
	})

	t.Run("OverflowingPageEqualsLastPage", func(t *testing.T) {
		last := PageOf(sequence, 10, 3)
		overflow := PageOf(sequence, 10, 42)
		assert.Equal(t, last, overflow)
	})

	t.Run("EmptySequence", func(t *testing.T) {
		page := PageOf([]int{}, 10, 5)
		assert.Empty(t, page.Items)
		assert.Equal(t, 0, page.TotalPages)
		assert.EqualValues(t, 0, page.TotalCount)
	})

	t.Run("SubscriptionPageSizeIsLarger", func(t *testing.T) {
		page := PageOf(sequence, SubscriptionPageSize, 1)
		assert.Len(t, page.Items, 20)
		assert.Equal(t, 2, page.TotalPages)
	})
}
