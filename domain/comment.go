package domain

import (
	"context"
	"time"
)

// Comment domain model. AuthorID is nullable because the author row may be
// deleted after the fact (ON DELETE SET NULL); such comments render as guest
// comments. ParentID nil means a top-level comment.
type Comment struct {
	ID        int64     `json:"id"`
	NewsID    int64     `json:"news_id"`
	AuthorID  *int64    `json:"author_id"`
	Text      string    `json:"text"`
	ParentID  *int64    `json:"parent_id"`
	Status    Status    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Author 评论作者信息，批量解析后填充
	Author *Author `json:"author,omitempty"`
	// News 所属新闻，仅搜索结果填充
	News *News `json:"news,omitempty"`
	// Replies 子评论列表，仅线程视图填充，不落库
	Replies []*Comment `json:"replies,omitempty"`
}

// SearchFilter composes the optional admin search criteria.
// Absent fields impose no constraint; present fields are ANDed.
type SearchFilter struct {
	Text   string
	NewsID *int64
	Status *Status
}

// CommentUsecase 业务逻辑接口
type CommentUsecase interface {
	Create(ctx context.Context, c *Comment) error
	// Update overwrites the text, and the status only when status != nil.
	Update(ctx context.Context, id int64, text string, status *Status) (*Comment, error)
	Delete(ctx context.Context, id int64) error
	GetByID(ctx context.Context, id int64) (*Comment, error)
	// FetchByNews returns the approved comments of one news item as a
	// thread: root comments with nested replies.
	FetchByNews(ctx context.Context, newsID int64) ([]*Comment, error)
	Fetch(ctx context.Context, limit, offset int64) ([]*Comment, int64, error)
	Search(ctx context.Context, filter SearchFilter, limit, offset int64) ([]*Comment, int64, error)
}

// CommentRepository 数据存取接口
type CommentRepository interface {
	Store(ctx context.Context, c *Comment) error
	Update(ctx context.Context, c *Comment) error
	GetByID(ctx context.Context, id int64) (*Comment, error)
	// FetchApprovedByNews returns only approved comments of the given news
	// item, ordered by created_at ascending. Pending and rejected comments
	// never reach the public thread view through this method.
	FetchApprovedByNews(ctx context.Context, newsID int64) ([]*Comment, error)
	// Fetch is the admin listing: all statuses, ordered by id descending.
	Fetch(ctx context.Context, limit, offset int64) ([]*Comment, error)
	Search(ctx context.Context, filter SearchFilter, limit, offset int64) ([]*Comment, error)
	CountSearch(ctx context.Context, filter SearchFilter) (int64, error)
	Delete(ctx context.Context, c *Comment) error
	Count(ctx context.Context) (int64, error)
}

// CommentCache caches the approved flat comment list per news item.
type CommentCache interface {
	// GetNewsComments returns ErrCacheMiss when the key is absent.
	GetNewsComments(ctx context.Context, newsID int64) ([]*Comment, error)
	SetNewsComments(ctx context.Context, newsID int64, comments []*Comment) error
	// InvalidateNews drops the cached list so moderation changes become
	// visible on the next fetch.
	InvalidateNews(ctx context.Context, newsID int64) error
}
