package comment

import "news-comments/domain"

// buildThread reassembles the flat, created_at-ascending comment list of one
// news item into a forest of root comments with nested replies.
//
// Single pass over the input: an id index is built first, then every comment
// is appended either to its parent's Replies or to the roots slice, so the
// relative input order is kept within each level and every comment shows up
// exactly once. A comment whose parent_id is not in the index (parent not
// approved, deleted, or on another news item) is promoted to a root instead
// of being dropped. NOTE: the promotion makes replies of a rejected parent
// visible at top level; kept as-is for compatibility with the existing site.
func buildThread(comments []*domain.Comment) []*domain.Comment {
	index := make(map[int64]*domain.Comment, len(comments))
	for _, c := range comments {
		c.Replies = []*domain.Comment{}
		index[c.ID] = c
	}

	roots := make([]*domain.Comment, 0, len(comments))
	for _, c := range comments {
		if c.ParentID == nil {
			roots = append(roots, c)
			continue
		}
		parent, ok := index[*c.ParentID]
		if !ok || parent == c {
			roots = append(roots, c)
			continue
		}
		parent.Replies = append(parent.Replies, c)
	}
	return roots
}
