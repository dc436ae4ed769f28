// Package listing fixes the ordering and truncation rules for news and
// comment collections. The SQL repositories express the same rules in
// ORDER BY / LIMIT clauses; the functions here are the reference
// semantics and back the in-memory repositories.
package listing

import (
	"sort"

	"github.com/notepress/notepress/app/models"
)

// NewsHomeLimit caps the news home page.
const NewsHomeLimit = 10

// NewsHome orders news most-recent-first (id descending on equal
// timestamps, so repeated calls are deterministic) and truncates to
// limit. A limit <= 0 falls back to NewsHomeLimit.
func NewsHome(news []models.News, limit int) []models.News {
	if limit <= 0 {
		limit = NewsHomeLimit
	}
	out := make([]models.News, len(news))
	copy(out, news)
	sort.SliceStable(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return out[i].ID > out[j].ID
	})
	if len(out) > limit {
		out = out[:limit]
	}
	return out
}

// Comments orders comments chronologically, oldest first, id ascending
// as tiebreak. No truncation.
func Comments(comments []models.Comment) []models.Comment {
	out := make([]models.Comment, len(comments))
	copy(out, comments)
	sort.SliceStable(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.Before(out[j].CreatedAt)
		}
		return out[i].ID < out[j].ID
	})
	return out
}

// OwnNotes filters notes down to the given author before any other
// processing and keeps stable creation (id ascending) order. Records of
// other users never pass through, whatever the input contains.
func OwnNotes(notes []models.Note, userID uint) []models.Note {
	out := make([]models.Note, 0, len(notes))
	for _, n := range notes {
		if n.UserID == userID {
			out = append(out, n)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].ID < out[j].ID
	})
	return out
}
