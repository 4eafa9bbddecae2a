package domain

import "context"

// Author is the projection of a user shown next to a comment.
type Author struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// AuthorRepository resolves comment authors in batch.
type AuthorRepository interface {
	// ResolveByIDs returns the authors that exist, keyed by id. Duplicate
	// ids are collapsed and an empty input returns an empty map without
	// touching the store; ids that do not resolve are simply absent.
	// List pages must collect all author ids first and call this once,
	// never once per row.
	ResolveByIDs(ctx context.Context, ids []int64) (map[int64]Author, error)
}
