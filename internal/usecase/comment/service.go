package comment

import (
	"context"

	"github.com/sirupsen/logrus"

	"news-comments/domain"
)

type Service struct {
	commentRepo domain.CommentRepository
	authorRepo  domain.AuthorRepository
	newsRepo    domain.NewsRepository
}

var _ domain.CommentUsecase = (*Service)(nil)

// NewService will create a new comment service object
func NewService(commentRepo domain.CommentRepository, authorRepo domain.AuthorRepository, newsRepo domain.NewsRepository) *Service {
	return &Service{
		commentRepo: commentRepo,
		authorRepo:  authorRepo,
		newsRepo:    newsRepo,
	}
}

// fillAuthors resolves the authors of a whole page in one batch call and
// attaches them. Comments without an author id, or whose author row is gone,
// keep a nil Author and render as guest comments.
func (s *Service) fillAuthors(ctx context.Context, comments []*domain.Comment) error {
	ids := make([]int64, 0, len(comments))
	for _, c := range comments {
		if c.AuthorID != nil {
			ids = append(ids, *c.AuthorID)
		}
	}

	authors, err := s.authorRepo.ResolveByIDs(ctx, ids)
	if err != nil {
		return err
	}
	for _, c := range comments {
		if c.AuthorID == nil {
			continue
		}
		if author, ok := authors[*c.AuthorID]; ok {
			c.Author = &author
		}
	}
	return nil
}

func (s *Service) fillNews(ctx context.Context, comments []*domain.Comment) error {
	ids := make([]int64, 0, len(comments))
	for _, c := range comments {
		ids = append(ids, c.NewsID)
	}

	news, err := s.newsRepo.ResolveByIDs(ctx, ids)
	if err != nil {
		return err
	}
	for _, c := range comments {
		if n, ok := news[c.NewsID]; ok {
			c.News = &n
		}
	}
	return nil
}

// Create stores a new comment. Moderation always starts at pending; the
// caller's status, if any, is discarded.
func (s *Service) Create(ctx context.Context, c *domain.Comment) error {
	c.Status = domain.StatusPending
	return s.commentRepo.Store(ctx, c)
}

// Update overwrites the text and, only when status is non-nil, the status.
// There is no legality check between the old and new status: moderation is
// free to move a comment between any two states.
func (s *Service) Update(ctx context.Context, id int64, text string, status *domain.Status) (*domain.Comment, error) {
	c, err := s.commentRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	c.Text = text
	if status != nil {
		c.Status = *status
	}
	if err := s.commentRepo.Update(ctx, c); err != nil {
		return nil, err
	}

	if err := s.fillAuthors(ctx, []*domain.Comment{c}); err != nil {
		logrus.Warnf("failed to resolve author for comment %d: %v", c.ID, err)
	}
	return c, nil
}

// Delete hard-deletes the comment. Replies are not re-parented; an approved
// reply of a deleted comment surfaces as a root in the thread view.
func (s *Service) Delete(ctx context.Context, id int64) error {
	c, err := s.commentRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	return s.commentRepo.Delete(ctx, c)
}

func (s *Service) GetByID(ctx context.Context, id int64) (*domain.Comment, error) {
	c, err := s.commentRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.fillAuthors(ctx, []*domain.Comment{c}); err != nil {
		return nil, err
	}
	return c, nil
}

// FetchByNews runs the public thread pipeline: approved-only fetch, one
// batch author resolution, thread assembly.
func (s *Service) FetchByNews(ctx context.Context, newsID int64) ([]*domain.Comment, error) {
	comments, err := s.commentRepo.FetchApprovedByNews(ctx, newsID)
	if err != nil {
		return nil, err
	}
	if len(comments) == 0 {
		return []*domain.Comment{}, nil
	}

	if err := s.fillAuthors(ctx, comments); err != nil {
		return nil, err
	}
	return buildThread(comments), nil
}

// Fetch is the flat admin listing over all statuses. The total count is
// fetched independently of the page.
func (s *Service) Fetch(ctx context.Context, limit, offset int64) ([]*domain.Comment, int64, error) {
	comments, err := s.commentRepo.Fetch(ctx, limit, offset)
	if err != nil {
		return nil, 0, err
	}

	total, err := s.commentRepo.Count(ctx)
	if err != nil {
		return nil, 0, err
	}

	if err := s.fillAuthors(ctx, comments); err != nil {
		return nil, 0, err
	}
	return comments, total, nil
}

// Search delegates filter composition to the store and resolves both authors
// and owning news items for the result page. The total is computed under the
// same filter.
func (s *Service) Search(ctx context.Context, filter domain.SearchFilter, limit, offset int64) ([]*domain.Comment, int64, error) {
	comments, err := s.commentRepo.Search(ctx, filter, limit, offset)
	if err != nil {
		return nil, 0, err
	}

	total, err := s.commentRepo.CountSearch(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	if err := s.fillAuthors(ctx, comments); err != nil {
		return nil, 0, err
	}
	if err := s.fillNews(ctx, comments); err != nil {
		return nil, 0, err
	}
	return comments, total, nil
}
