package mysql

import (
	"context"

	"gorm.io/gorm"

	"news-comments/domain"
	"news-comments/internal/repository/mysql/model"
)

type newsRepository struct {
	DB *gorm.DB
}

var _ domain.NewsRepository = (*newsRepository)(nil)

func NewNewsRepository(db *gorm.DB) *newsRepository {
	return &newsRepository{
		DB: db,
	}
}

func (m *newsRepository) ResolveByIDs(ctx context.Context, ids []int64) (map[int64]domain.News, error) {
	res := make(map[int64]domain.News, len(ids))
	ids = dedupeIDs(ids)
	if len(ids) == 0 {
		return res, nil
	}

	var news []model.News
	err := m.DB.WithContext(ctx).Model(&model.News{}).Where("id IN ?", ids).Find(&news).Error
	if err != nil {
		return nil, err
	}
	for i := range news {
		res[news[i].ID] = news[i].ToDomain()
	}
	return res, nil
}

func dedupeIDs(ids []int64) []int64 {
	seen := make(map[int64]struct{}, len(ids))
	out := make([]int64, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
