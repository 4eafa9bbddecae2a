package model

import "news-comments/domain"

// Author is the slice of the users table this service reads. The users table
// is owned by the account service; comments keep a SET NULL foreign key to it.
type Author struct {
	ID    int64  `gorm:"primaryKey"`
	Name  string `gorm:"column:name"`
	Email string `gorm:"column:email"`
}

func (Author) TableName() string {
	return "users"
}

func (m *Author) ToDomain() domain.Author {
	return domain.Author{
		ID:    m.ID,
		Name:  m.Name,
		Email: m.Email,
	}
}
