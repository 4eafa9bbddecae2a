package model

import "news-comments/domain"

type News struct {
	ID    int64  `gorm:"primaryKey"`
	Title string `gorm:"column:title"`
}

func (News) TableName() string {
	return "news"
}

func (m *News) ToDomain() domain.News {
	return domain.News{
		ID:    m.ID,
		Title: m.Title,
	}
}
