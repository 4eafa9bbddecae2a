package mysql

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"news-comments/domain"
	"news-comments/internal/repository/mysql/model"
)

type commentRepository struct {
	DB *gorm.DB
}

var _ domain.CommentRepository = (*commentRepository)(nil)

func NewCommentRepository(db *gorm.DB) *commentRepository {
	return &commentRepository{
		DB: db,
	}
}

func (c *commentRepository) Store(ctx context.Context, comment *domain.Comment) error {
	commentModel := model.NewCommentFromDomain(comment)
	result := c.DB.WithContext(ctx).Create(commentModel)
	if result.Error != nil {
		return result.Error
	}
	comment.ID = commentModel.ID
	comment.CreatedAt = commentModel.CreatedAt
	comment.UpdatedAt = commentModel.UpdatedAt
	return nil
}

func (c *commentRepository) Update(ctx context.Context, comment *domain.Comment) error {
	commentModel := model.NewCommentFromDomain(comment)
	// RowsAffected is not checked here: mysql reports 0 for a no-op update
	// and the usecase pre-fetches the row, so absence is caught earlier.
	result := c.DB.WithContext(ctx).Model(commentModel).
		Select("text", "status").
		Updates(commentModel)
	if result.Error != nil {
		return result.Error
	}
	comment.UpdatedAt = commentModel.UpdatedAt
	return nil
}

func (c *commentRepository) GetByID(ctx context.Context, id int64) (*domain.Comment, error) {
	var comment model.Comment
	err := c.DB.WithContext(ctx).First(&comment, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.ErrNotFound
	} else if err != nil {
		return nil, err
	}
	domainComment := comment.ToDomain()
	return &domainComment, nil
}

func (c *commentRepository) FetchApprovedByNews(ctx context.Context, newsID int64) ([]*domain.Comment, error) {
	var comments []model.Comment
	err := c.DB.WithContext(ctx).
		Where("news_id = ? AND status = ?", newsID, string(domain.StatusApproved)).
		Order("created_at ASC").
		Find(&comments).Error
	if err != nil {
		return nil, err
	}

	res := make([]*domain.Comment, 0, len(comments))
	for _, comment := range comments {
		domainComment := comment.ToDomain()
		res = append(res, &domainComment)
	}
	return res, nil
}

func (c *commentRepository) Fetch(ctx context.Context, limit, offset int64) ([]*domain.Comment, error) {
	var comments []model.Comment
	err := c.DB.WithContext(ctx).
		Order("id DESC").
		Limit(int(limit)).
		Offset(int(offset)).
		Find(&comments).Error
	if err != nil {
		return nil, err
	}

	res := make([]*domain.Comment, 0, len(comments))
	for _, comment := range comments {
		domainComment := comment.ToDomain()
		res = append(res, &domainComment)
	}
	return res, nil
}

// applyFilter chains the optional search criteria; absent fields add no
// condition, present fields are ANDed.
func applyFilter(query *gorm.DB, filter domain.SearchFilter) *gorm.DB {
	if filter.Text != "" {
		query = query.Where("LOWER(text) LIKE ?", "%"+escapeLike(filter.Text)+"%")
	}
	if filter.NewsID != nil {
		query = query.Where("news_id = ?", *filter.NewsID)
	}
	if filter.Status != nil {
		query = query.Where("status = ?", string(*filter.Status))
	}
	return query
}

func (c *commentRepository) Search(ctx context.Context, filter domain.SearchFilter, limit, offset int64) ([]*domain.Comment, error) {
	var comments []model.Comment
	query := applyFilter(c.DB.WithContext(ctx).Model(&model.Comment{}), filter)
	err := query.
		Order("id DESC").
		Limit(int(limit)).
		Offset(int(offset)).
		Find(&comments).Error
	if err != nil {
		return nil, err
	}

	res := make([]*domain.Comment, 0, len(comments))
	for _, comment := range comments {
		domainComment := comment.ToDomain()
		res = append(res, &domainComment)
	}
	return res, nil
}

func (c *commentRepository) CountSearch(ctx context.Context, filter domain.SearchFilter) (int64, error) {
	var count int64
	query := applyFilter(c.DB.WithContext(ctx).Model(&model.Comment{}), filter)
	err := query.Count(&count).Error
	return count, err
}

func (c *commentRepository) Delete(ctx context.Context, comment *domain.Comment) error {
	result := c.DB.WithContext(ctx).Delete(&model.Comment{}, comment.ID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (c *commentRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := c.DB.WithContext(ctx).Model(&model.Comment{}).Count(&count).Error
	return count, err
}
