package locker

// ListFilters are the optional equality filters for listing lockers.
type ListFilters struct {
	IsVIP    *bool
	IsOpen   *bool
	UserID   *int64
	FullName *string
}

type CreateLockerRequest struct {
	IsVIP    bool    `json:"is_vip"`
	IsOpen   bool    `json:"is_open"`
	UserID   *int64  `json:"user_id"`
	FullName *string `json:"full_name"`
}

// UpdateLockerRequest carries a partial update; nil fields are untouched.
type UpdateLockerRequest struct {
	IsVIP    *bool   `json:"is_vip"`
	IsOpen   *bool   `json:"is_open"`
	UserID   *int64  `json:"user_id"`
	FullName *string `json:"full_name"`
}

type LockerResponse struct {
	ID       int64   `json:"id"`
	IsVIP    bool    `json:"is_vip"`
	IsOpen   bool    `json:"is_open"`
	UserID   *int64  `json:"user_id"`
	FullName *string `json:"full_name"`
}
