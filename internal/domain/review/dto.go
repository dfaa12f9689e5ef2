package review

// RequestReviewRequest asks to invite the customer behind a won lead
type RequestReviewRequest struct {
	LeadID int64 `json:"lead_id" validate:"required,gt=0"`
}

// SubmitRequest is the customer-facing review form, redeemed by token
type SubmitRequest struct {
	AuthorName string `json:"author_name" validate:"required"`
	Rating     int    `json:"rating" validate:"required,min=1,max=5"`
	Comment    string `json:"comment"`
}

// ModerateRequest sets a review's moderation status
type ModerateRequest struct {
	Status string `json:"status" validate:"required,oneof=approved hidden"`
}

// ListResponse is a page of reviews
type ListResponse struct {
	Reviews []Review `json:"reviews"`
	Total   int64    `json:"total"`
}
