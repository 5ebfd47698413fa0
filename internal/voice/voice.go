package voice

import "strings"

// commandPrefixes is checked in order; the first match wins.
var commandPrefixes = []string{
	"search for",
	"find",
	"show me",
	"get",
	"look for",
	"filter",
}

// Normalize turns a finalized voice transcript into a search query by
// stripping a leading command phrase. The remainder keeps its original
// casing. ok is false when stripping leaves nothing, in which case the
// caller must not overwrite its current query.
func Normalize(rawPhrase string) (query string, ok bool) {
	trimmed := strings.TrimSpace(rawPhrase)
	if trimmed == "" {
		return "", false
	}

	lower := strings.ToLower(trimmed)
	for _, prefix := range commandPrefixes {
		if strings.HasPrefix(lower, prefix) {
			rest := strings.TrimSpace(trimmed[len(prefix):])
			if rest == "" {
				return "", false
			}
			return rest, true
		}
	}

	return trimmed, true
}
