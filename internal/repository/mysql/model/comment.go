package model

import (
	"time"

	"news-comments/domain"
)

type Comment struct {
	ID        int64     `gorm:"primaryKey;autoIncrement"`
	NewsID    int64     `gorm:"column:news_id;not null;index"`
	AuthorID  *int64    `gorm:"column:author_id"`
	Text      string    `gorm:"type:text;not null"`
	ParentID  *int64    `gorm:"column:parent_id"`
	Status    string    `gorm:"type:varchar(16);not null;default:'pending';index"`
	CreatedAt time.Time `gorm:"type:datetime"`
	UpdatedAt time.Time `gorm:"type:datetime"`
}

func (Comment) TableName() string {
	return "comments"
}

func NewCommentFromDomain(c *domain.Comment) *Comment {
	return &Comment{
		ID:        c.ID,
		NewsID:    c.NewsID,
		AuthorID:  c.AuthorID,
		Text:      c.Text,
		ParentID:  c.ParentID,
		Status:    string(c.Status),
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

func (m *Comment) ToDomain() domain.Comment {
	return domain.Comment{
		ID:        m.ID,
		NewsID:    m.NewsID,
		AuthorID:  m.AuthorID,
		Text:      m.Text,
		ParentID:  m.ParentID,
		Status:    domain.Status(m.Status),
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}
