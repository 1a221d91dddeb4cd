package models

// Page is a fixed-size window over an ordered sequence.
type Page[T any] struct {
	Items      []T   `json:"items"`
	PageNumber int   `json:"page_number"`
	TotalCount int64 `json:"total_count"`
	TotalPages int   `json:"total_pages"`
}
