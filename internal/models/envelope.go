package models

// Pagination metadata computed before slicing the page.
type Pagination struct {
	Page       int  `json:"page"`
	Limit      int  `json:"limit"`
	Total      int  `json:"total"`
	TotalPages int  `json:"total_pages"`
	HasNext    bool `json:"has_next"`
	HasPrev    bool `json:"has_prev"`
}

// Envelope is the uniform wrapper every non-paginated service call
// returns. Data may legitimately be nil: a read that finds nothing is
// a success with a nil payload and an explanatory message, never an
// error.
type Envelope[T any] struct {
	Data    *T     `json:"data"`
	Message string `json:"message"`
	Success bool   `json:"success"`
}

// PaginatedEnvelope wraps list results together with their pagination
// metadata.
type PaginatedEnvelope[T any] struct {
	Data       []T        `json:"data"`
	Pagination Pagination `json:"pagination"`
}

func Ok[T any](data T, message string) Envelope[T] {
	return Envelope[T]{Data: &data, Message: message, Success: true}
}

func NotFound[T any](message string) Envelope[T] {
	return Envelope[T]{Data: nil, Message: message, Success: true}
}
