package registry

// ListResponse is the paginated list envelope.
type ListResponse struct {
	TotalItems  int64 `json:"total_items"`
	TotalPages  int64 `json:"total_pages"`
	CurrentPage int   `json:"current_page"`
	Items       any   `json:"items"`
}
