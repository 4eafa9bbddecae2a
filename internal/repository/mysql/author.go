package mysql

import (
	"context"

	"gorm.io/gorm"

	"news-comments/domain"
	"news-comments/internal/repository/mysql/model"
)

type authorRepository struct {
	DB *gorm.DB
}

var _ domain.AuthorRepository = (*authorRepository)(nil)

func NewAuthorRepository(db *gorm.DB) *authorRepository {
	return &authorRepository{
		DB: db,
	}
}

func (m *authorRepository) ResolveByIDs(ctx context.Context, ids []int64) (map[int64]domain.Author, error) {
	res := make(map[int64]domain.Author, len(ids))
	ids = dedupeIDs(ids)
	if len(ids) == 0 {
		return res, nil
	}

	var authors []model.Author
	err := m.DB.WithContext(ctx).Model(&model.Author{}).Where("id IN ?", ids).Find(&authors).Error
	if err != nil {
		return nil, err
	}
	for i := range authors {
		res[authors[i].ID] = authors[i].ToDomain()
	}
	return res, nil
}
