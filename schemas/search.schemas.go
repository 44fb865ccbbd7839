package schemas

// SearchSchema struct carries the normalized search filters
type SearchSchema struct {
	Query string `json:"q" validate:"required,max=100"`
	Page  int    `json:"page"`
	Limit int    `json:"limit"`
}

// SearchResponse struct is the unified search result
type SearchResponse struct {
	Users []User `json:"users"`
	Posts []Post `json:"posts"`
}
