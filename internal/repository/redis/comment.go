package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"news-comments/domain"
)

const (
	KeyNewsComments = "comments:news:%d"

	newsCommentsTTL = 5 * time.Minute
)

type commentCache struct {
	client *redis.Client
}

var _ domain.CommentCache = (*commentCache)(nil)

func NewCommentCache(client *redis.Client) *commentCache {
	return &commentCache{
		client,
	}
}

func (c *commentCache) GetNewsComments(ctx context.Context, newsID int64) ([]*domain.Comment, error) {
	key := fmt.Sprintf(KeyNewsComments, newsID)
	data, err := c.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, domain.ErrCacheMiss
	} else if err != nil {
		return nil, err
	}

	var res []*domain.Comment
	if err = json.Unmarshal(data, &res); err != nil {
		return nil, err
	}
	return res, nil
}

func (c *commentCache) SetNewsComments(ctx context.Context, newsID int64, comments []*domain.Comment) error {
	key := fmt.Sprintf(KeyNewsComments, newsID)
	data, err := json.Marshal(comments)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, key, data, newsCommentsTTL).Err()
}

func (c *commentCache) InvalidateNews(ctx context.Context, newsID int64) error {
	key := fmt.Sprintf(KeyNewsComments, newsID)
	return c.client.Del(ctx, key).Err()
}
