package mysql

import "strings"

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// escapeLike lowercases the search term and escapes the LIKE wildcards so a
// user query matches literally, case-insensitively.
func escapeLike(s string) string {
	return likeEscaper.Replace(strings.ToLower(s))
}
