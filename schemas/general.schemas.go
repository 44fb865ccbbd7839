package schemas

// ErrorResponse struct is the error payload shape the server sends
type ErrorResponse struct {
	Error   string        `json:"error"`
	Message string        `json:"message"`
	Details []ErrorDetail `json:"details"`
}

// ErrorDetail struct is one field-level validation detail
type ErrorDetail struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Message struct
type Message struct {
	Message string `json:"message"`
}

// Page struct carries the shared pagination fields of list responses
type Page struct {
	Page    int  `json:"page"`
	Limit   int  `json:"limit"`
	Total   int  `json:"total"`
	HasMore bool `json:"hasMore"`
}
