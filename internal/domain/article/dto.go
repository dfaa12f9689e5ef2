package article

// CreateRequest is the admin authoring form
type CreateRequest struct {
	Slug      string `json:"slug"`
	Title     string `json:"title" validate:"required"`
	Summary   string `json:"summary"`
	Body      string `json:"body" validate:"required"`
	Category  string `json:"category"`
	Published bool   `json:"published"`
}

// UpdateRequest is a partial edit; nil fields are left unchanged
type UpdateRequest struct {
	Title     *string `json:"title,omitempty"`
	Summary   *string `json:"summary,omitempty"`
	Body      *string `json:"body,omitempty"`
	Category  *string `json:"category,omitempty"`
	Published *bool   `json:"published,omitempty"`
}

// ListResponse is a page of articles without bodies
type ListResponse struct {
	Articles []Article `json:"articles"`
	Total    int64     `json:"total"`
}
