package request

import "news-comments/domain"

type CreateComment struct {
	Text     string `json:"text" binding:"required,min=2,max=1000"`
	AuthorID *int64 `json:"author_id" binding:"omitempty,gt=0"`
	ParentID *int64 `json:"parent_id" binding:"omitempty,gt=0"`

	NewsID int64 `json:"-"` // from URL param
}

// ToDomain: Request -> Domain
func (r *CreateComment) ToDomain() domain.Comment {
	return domain.Comment{
		NewsID:   r.NewsID,
		AuthorID: r.AuthorID,
		Text:     r.Text,
		ParentID: r.ParentID,
	}
}

type UpdateComment struct {
	Text string `json:"text" binding:"required,min=2,max=1000"`
	// Status may be omitted; when present it must be one of the moderation
	// keys. Omitting it keeps the stored status untouched.
	Status *string `json:"status" binding:"omitempty,comment_status"`
}

type SearchComments struct {
	Search string  `form:"search" binding:"omitempty,max=1000"`
	NewsID *int64  `form:"news_id" binding:"omitempty,gt=0"`
	Status *string `form:"status" binding:"omitempty,comment_status"`
	Limit  int64   `form:"limit"`
	Offset int64   `form:"offset" binding:"omitempty,gte=0"`
}

// ToFilter: Request -> Domain
func (r *SearchComments) ToFilter() domain.SearchFilter {
	filter := domain.SearchFilter{
		Text:   r.Search,
		NewsID: r.NewsID,
	}
	if r.Status != nil {
		status := domain.Status(*r.Status)
		filter.Status = &status
	}
	return filter
}
