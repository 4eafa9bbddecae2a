package response

import "news-comments/domain"

const DateTimeFormat = "2006-01-02 15:04:05"

type Author struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type News struct {
	ID    int64  `json:"id"`
	Title string `json:"title"`
}

type Comment struct {
	ID          int64  `json:"id"`
	NewsID      int64  `json:"news_id"`
	Text        string `json:"text"`
	ParentID    *int64 `json:"parent_id"`
	Status      string `json:"status"`
	StatusLabel string `json:"status_label"`
	CreatedAt   string `json:"created_at"`
	UpdatedAt   string `json:"updated_at"`

	// Author 评论作者信息，作者被删除时为 null（游客显示）
	Author *Author `json:"author"`
	// News 所属新闻，仅搜索结果返回
	News *News `json:"news,omitempty"`
	// Replies 子评论列表
	Replies []*Comment `json:"replies,omitempty"`
}

func NewAuthorFromDomain(a *domain.Author) *Author {
	if a == nil {
		return nil
	}
	return &Author{
		ID:    a.ID,
		Name:  a.Name,
		Email: a.Email,
	}
}

func NewSingleCommentFromDomain(c *domain.Comment) *Comment {
	if c == nil {
		return nil
	}
	res := &Comment{
		ID:          c.ID,
		NewsID:      c.NewsID,
		Text:        c.Text,
		ParentID:    c.ParentID,
		Status:      string(c.Status),
		StatusLabel: c.Status.Label(),
		CreatedAt:   c.CreatedAt.Format(DateTimeFormat),
		UpdatedAt:   c.UpdatedAt.Format(DateTimeFormat),
		Author:      NewAuthorFromDomain(c.Author),
	}
	if c.News != nil {
		res.News = &News{ID: c.News.ID, Title: c.News.Title}
	}
	return res
}

// NewCommentFromDomain: Domain -> Response, including nested replies.
func NewCommentFromDomain(c *domain.Comment) *Comment {
	if c == nil {
		return nil
	}
	root := NewSingleCommentFromDomain(c)
	if len(c.Replies) > 0 {
		replies := make([]*Comment, 0, len(c.Replies))
		for _, r := range c.Replies {
			replies = append(replies, NewCommentFromDomain(r))
		}
		root.Replies = replies
	}
	return root
}

func NewCommentListFromDomain(comments []*domain.Comment) []*Comment {
	res := make([]*Comment, 0, len(comments))
	for _, c := range comments {
		res = append(res, NewCommentFromDomain(c))
	}
	return res
}
