package dto

import (
	"time"

	"github.com/google/uuid"

	"smat.com/campusapi/internal/entity"
)

// CreatedDateLayout renders post timestamps as ISO local date-time.
const CreatedDateLayout = "2006-01-02T15:04:05"

type ListPostsRequest struct {
	Writer string `form:"writer" binding:"omitempty,max=100"`
}

type PostsByCategoryRequest struct {
	Category string `form:"category" binding:"required,category"`
}

type SearchPostsRequest struct {
	Q string `form:"q" binding:"required,max=100"`
}

type PostResponse struct {
	ID            uuid.UUID       `json:"id"`
	Category      entity.Category `json:"category"`
	Title         string          `json:"title"`
	Content       string          `json:"content"`
	Writer        string          `json:"writer"`
	Price         *int            `json:"price"`
	CurrentPeople *int            `json:"currentPeople"`
	MaxPeople     *int            `json:"maxPeople"`
	CreatedDate   string          `json:"createdDate"`
}

// FromPost copies p, rendering CreatedAt as wall-clock time in loc.
func FromPost(p *entity.Post, loc *time.Location) PostResponse {
	return PostResponse{
		ID:            p.ID,
		Category:      p.Category,
		Title:         p.Title,
		Content:       p.Content,
		Writer:        p.Writer,
		Price:         p.Price,
		CurrentPeople: p.CurrentPeople,
		MaxPeople:     p.MaxPeople,
		CreatedDate:   p.CreatedAt.In(loc).Format(CreatedDateLayout),
	}
}
