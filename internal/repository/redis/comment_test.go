package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"testing"
	"time"

	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"news-comments/domain"
)

func TestGetNewsCommentsMiss(t *testing.T) {
	client, mock := redismock.NewClientMock()
	cache := NewCommentCache(client)

	mock.ExpectGet(fmt.Sprintf(KeyNewsComments, 7)).RedisNil()

	_, err := cache.GetNewsComments(context.Background(), 7)

	assert.ErrorIs(t, err, domain.ErrCacheMiss)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSetAndGetNewsComments(t *testing.T) {
	client, mock := redismock.NewClientMock()
	cache := NewCommentCache(client)

	comments := []*domain.Comment{
		{ID: 1, NewsID: 7, Text: "first", Status: domain.StatusApproved, CreatedAt: time.Unix(100, 0).UTC()},
	}
	data, err := json.Marshal(comments)
	require.NoError(t, err)

	key := fmt.Sprintf(KeyNewsComments, 7)
	mock.ExpectSet(key, data, newsCommentsTTL).SetVal("OK")
	mock.ExpectGet(key).SetVal(string(data))

	require.NoError(t, cache.SetNewsComments(context.Background(), 7, comments))

	res, err := cache.GetNewsComments(context.Background(), 7)
	require.NoError(t, err)
	require.Len(t, res, 1)
	assert.Equal(t, "first", res[0].Text)
	assert.Equal(t, domain.StatusApproved, res[0].Status)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestInvalidateNews(t *testing.T) {
	client, mock := redismock.NewClientMock()
	cache := NewCommentCache(client)

	mock.ExpectDel(fmt.Sprintf(KeyNewsComments, 7)).SetVal(1)

	require.NoError(t, cache.InvalidateNews(context.Background(), 7))
	require.NoError(t, mock.ExpectationsWereMet())
}
