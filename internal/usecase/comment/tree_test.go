package comment

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"news-comments/domain"
)

func ptr(v int64) *int64 {
	return &v
}

func flatComment(id int64, parentID *int64, offset time.Duration) *domain.Comment {
	base := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	return &domain.Comment{
		ID:        id,
		NewsID:    7,
		Text:      "text",
		ParentID:  parentID,
		Status:    domain.StatusApproved,
		CreatedAt: base.Add(offset),
	}
}

func countNodes(comments []*domain.Comment) int {
	total := 0
	for _, c := range comments {
		total += 1 + countNodes(c.Replies)
	}
	return total
}

func TestBuildThreadNestsReplies(t *testing.T) {
	input := []*domain.Comment{
		flatComment(1, nil, 0),
		flatComment(2, ptr(1), time.Minute),
		flatComment(3, ptr(1), 2*time.Minute),
		flatComment(4, nil, 3*time.Minute),
	}

	roots := buildThread(input)

	assert.Len(t, roots, 2)
	assert.Equal(t, int64(1), roots[0].ID)
	assert.Equal(t, int64(4), roots[1].ID)
	assert.Len(t, roots[0].Replies, 2)
	assert.Equal(t, int64(2), roots[0].Replies[0].ID)
	assert.Equal(t, int64(3), roots[0].Replies[1].ID)
	assert.Empty(t, roots[1].Replies)
}

func TestBuildThreadPromotesOrphans(t *testing.T) {
	// parent 99 is not part of the approved set: its reply shows up as a
	// root instead of being dropped
	input := []*domain.Comment{
		flatComment(1, nil, 0),
		flatComment(2, ptr(1), time.Minute),
		flatComment(3, ptr(99), 2*time.Minute),
	}

	roots := buildThread(input)

	assert.Len(t, roots, 2)
	assert.Equal(t, int64(1), roots[0].ID)
	assert.Equal(t, int64(3), roots[1].ID)
	assert.Len(t, roots[0].Replies, 1)
	assert.Equal(t, int64(2), roots[0].Replies[0].ID)
}

func TestBuildThreadKeepsEveryComment(t *testing.T) {
	// mixed roots, nested chains and a dangling orphan chain
	input := []*domain.Comment{
		flatComment(1, nil, 0),
		flatComment(2, ptr(1), time.Minute),
		flatComment(3, ptr(2), 2*time.Minute),
		flatComment(4, ptr(50), 3*time.Minute),
		flatComment(5, ptr(4), 4*time.Minute),
		flatComment(6, nil, 5*time.Minute),
	}

	roots := buildThread(input)

	assert.Equal(t, len(input), countNodes(roots))
}

func TestBuildThreadSupportsArbitraryDepth(t *testing.T) {
	input := []*domain.Comment{
		flatComment(1, nil, 0),
		flatComment(2, ptr(1), time.Minute),
		flatComment(3, ptr(2), 2*time.Minute),
	}

	roots := buildThread(input)

	assert.Len(t, roots, 1)
	assert.Len(t, roots[0].Replies, 1)
	assert.Len(t, roots[0].Replies[0].Replies, 1)
	assert.Equal(t, int64(3), roots[0].Replies[0].Replies[0].ID)
}

func TestBuildThreadPreservesOrderPerLevel(t *testing.T) {
	input := []*domain.Comment{
		flatComment(10, nil, 0),
		flatComment(11, ptr(10), time.Minute),
		flatComment(12, nil, 2*time.Minute),
		flatComment(13, ptr(10), 3*time.Minute),
		flatComment(14, ptr(12), 4*time.Minute),
	}

	roots := buildThread(input)

	rootIDs := make([]int64, len(roots))
	for i, r := range roots {
		rootIDs[i] = r.ID
	}
	assert.Equal(t, []int64{10, 12}, rootIDs)

	replyIDs := make([]int64, len(roots[0].Replies))
	for i, r := range roots[0].Replies {
		replyIDs[i] = r.ID
	}
	assert.Equal(t, []int64{11, 13}, replyIDs)
}

func TestBuildThreadEmptyInput(t *testing.T) {
	roots := buildThread([]*domain.Comment{})
	assert.NotNil(t, roots)
	assert.Empty(t, roots)
}

func TestBuildThreadSelfReference(t *testing.T) {
	input := []*domain.Comment{
		flatComment(1, ptr(1), 0),
	}

	roots := buildThread(input)

	assert.Len(t, roots, 1)
	assert.Empty(t, roots[0].Replies)
}
