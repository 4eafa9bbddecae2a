package domain

import "context"

// News is the projection of a news article used to disambiguate comments in
// the admin search view.
type News struct {
	ID    int64  `json:"id"`
	Title string `json:"title"`
}

// NewsRepository resolves referenced news items in batch, with the same
// contract as AuthorRepository.ResolveByIDs.
type NewsRepository interface {
	ResolveByIDs(ctx context.Context, ids []int64) (map[int64]News, error)
}
