package consensus

import (
	"time"

	"hopa-consensus/internal/services"
)

// MatchResponse keeps the shape existing clients read: the document under
// data and a string status.
type MatchResponse struct {
	Data       *services.TemplateDocument `json:"data"`
	Message    string                     `json:"message"`
	Status     string                     `json:"status" example:"success"`
	Keywords   []string                   `json:"keywords"`
	Candidates []string                   `json:"candidates"`
}

type TemplateListItem struct {
	ID          uint      `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type TemplateListResponse struct {
	Templates []TemplateListItem `json:"templates"`
	Total     int64              `json:"total"`
	Page      int                `json:"page"`
	Limit     int                `json:"limit"`
}

type BatchCreateRequest struct {
	Templates []services.TemplateDocument `json:"templates" binding:"required,min=1,max=500"`
}

type BatchCreateResponse struct {
	IDs []uint `json:"ids"`
}

// BatchFailure is returned when a batch stops part way; IDs lists the
// templates stored before the failing one.
type BatchFailure struct {
	IDs   []uint `json:"ids"`
	Index int    `json:"index"`
	Title string `json:"title"`
	Error string `json:"error"`
}
