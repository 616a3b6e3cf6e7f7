package models

// Page is one visible slice of a longer list plus the metadata a pager needs.
type Page[T any] struct {
	Items      []T   `json:"items"`
	Page       int   `json:"page"`
	PageSize   int   `json:"page_size"`
	TotalItems int   `json:"total_items"`
	TotalPages int   `json:"total_pages"`
	Pages      []int `json:"pages"`
}
