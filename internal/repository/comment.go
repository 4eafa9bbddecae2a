package repository

import (
	"context"
	"errors"
	"strconv"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/singleflight"

	"news-comments/domain"
)

// commentRepository 协调层，协调缓存和数据库。
// The public thread view is served from the per-news cache; every mutation
// invalidates the owning news key so moderation changes are visible on the
// next fetch.
type commentRepository struct {
	db           domain.CommentRepository
	cache        domain.CommentCache
	rebuildGroup singleflight.Group
}

var _ domain.CommentRepository = (*commentRepository)(nil)

// NewCommentRepository 创建协调层repository
func NewCommentRepository(db domain.CommentRepository, cache domain.CommentCache) *commentRepository {
	return &commentRepository{
		db:    db,
		cache: cache,
	}
}

func (r *commentRepository) FetchApprovedByNews(ctx context.Context, newsID int64) ([]*domain.Comment, error) {
	comments, err := r.cache.GetNewsComments(ctx, newsID)
	if err == nil {
		return cloneComments(comments), nil
	}
	if !errors.Is(err, domain.ErrCacheMiss) {
		logrus.Warnf("comment cache get error for news %d: %v", newsID, err)
	}

	// singleflight 避免缓存击穿
	key := "news:" + strconv.FormatInt(newsID, 10)
	result, err, _ := r.rebuildGroup.Do(key, func() (interface{}, error) {
		res, err := r.db.FetchApprovedByNews(ctx, newsID)
		if err != nil {
			return nil, err
		}
		if err := r.cache.SetNewsComments(ctx, newsID, res); err != nil {
			logrus.Warnf("failed to set comment cache for news %d: %v", newsID, err)
		}
		return res, nil
	})
	if err != nil {
		return nil, err
	}
	// Callers joined on the same flight must not share comment structs:
	// the usecase writes Replies and Author on them per request.
	return cloneComments(result.([]*domain.Comment)), nil
}

// cloneComments copies the flat records so every caller assembles its own
// thread. The transient display fields start empty on each copy.
func cloneComments(comments []*domain.Comment) []*domain.Comment {
	res := make([]*domain.Comment, len(comments))
	for i, c := range comments {
		cc := *c
		cc.Author = nil
		cc.News = nil
		cc.Replies = nil
		res[i] = &cc
	}
	return res
}

func (r *commentRepository) Store(ctx context.Context, c *domain.Comment) error {
	if err := r.db.Store(ctx, c); err != nil {
		return err
	}
	r.invalidate(ctx, c.NewsID)
	return nil
}

func (r *commentRepository) Update(ctx context.Context, c *domain.Comment) error {
	if err := r.db.Update(ctx, c); err != nil {
		return err
	}
	r.invalidate(ctx, c.NewsID)
	return nil
}

func (r *commentRepository) Delete(ctx context.Context, c *domain.Comment) error {
	if err := r.db.Delete(ctx, c); err != nil {
		return err
	}
	r.invalidate(ctx, c.NewsID)
	return nil
}

func (r *commentRepository) invalidate(ctx context.Context, newsID int64) {
	if err := r.cache.InvalidateNews(ctx, newsID); err != nil {
		logrus.Warnf("failed to invalidate comment cache for news %d: %v", newsID, err)
	}
}

func (r *commentRepository) GetByID(ctx context.Context, id int64) (*domain.Comment, error) {
	return r.db.GetByID(ctx, id)
}

func (r *commentRepository) Fetch(ctx context.Context, limit, offset int64) ([]*domain.Comment, error) {
	return r.db.Fetch(ctx, limit, offset)
}

func (r *commentRepository) Search(ctx context.Context, filter domain.SearchFilter, limit, offset int64) ([]*domain.Comment, error) {
	return r.db.Search(ctx, filter, limit, offset)
}

func (r *commentRepository) CountSearch(ctx context.Context, filter domain.SearchFilter) (int64, error) {
	return r.db.CountSearch(ctx, filter)
}

func (r *commentRepository) Count(ctx context.Context) (int64, error) {
	return r.db.Count(ctx)
}
