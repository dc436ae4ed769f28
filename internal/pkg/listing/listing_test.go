package listing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/notepress/notepress/app/models"
)

func newsAt(id uint, created time.Time) models.News {
	return models.News{ID: id, Title: "Title", Content: "Text", CreatedAt: created}
}

func TestNewsHome_CapsAtLimit(t *testing.T) {
	t.Parallel()

	base := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	var all []models.News
	for i := 1; i <= 11; i++ {
		all = append(all, newsAt(uint(i), base.Add(time.Duration(i)*time.Minute)))
	}

	got := NewsHome(all, 0)
	assert.Len(t, got, NewsHomeLimit)
	// Newest first: the eleventh created item leads the page.
	assert.Equal(t, uint(11), got[0].ID)
	assert.Equal(t, uint(2), got[len(got)-1].ID)
}

func TestNewsHome_MostRecentFirstRegardlessOfInputOrder(t *testing.T) {
	t.Parallel()

	base := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	shuffled := []models.News{
		newsAt(2, base.Add(2 * time.Hour)),
		newsAt(3, base.Add(3 * time.Hour)),
		newsAt(1, base.Add(1 * time.Hour)),
	}

	got := NewsHome(shuffled, 0)
	assert.Equal(t, []uint{3, 2, 1}, []uint{got[0].ID, got[1].ID, got[2].ID})
}

func TestNewsHome_TiesBrokenByIDDescending(t *testing.T) {
	t.Parallel()

	at := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	got := NewsHome([]models.News{newsAt(1, at), newsAt(2, at)}, 0)
	assert.Equal(t, uint(2), got[0].ID)
	assert.Equal(t, uint(1), got[1].ID)
}

func TestNewsHome_DoesNotMutateInput(t *testing.T) {
	t.Parallel()

	base := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	in := []models.News{newsAt(1, base), newsAt(2, base.Add(time.Hour))}
	_ = NewsHome(in, 0)
	assert.Equal(t, uint(1), in[0].ID)
}

func TestComments_ChronologicalOldestFirst(t *testing.T) {
	t.Parallel()

	base := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	in := []models.Comment{
		{ID: 2, Content: "c2", CreatedAt: base.Add(2 * time.Minute)},
		{ID: 1, Content: "c1", CreatedAt: base.Add(1 * time.Minute)},
		{ID: 3, Content: "c3", CreatedAt: base.Add(3 * time.Minute)},
	}

	got := Comments(in)
	assert.Equal(t, "c1", got[0].Content)
	assert.Equal(t, "c2", got[1].Content)
	assert.Equal(t, "c3", got[2].Content)
}

func TestOwnNotes_NeverLeaksOtherUsers(t *testing.T) {
	t.Parallel()

	in := []models.Note{
		{ID: 1, UserID: 1, Slug: "mine"},
		{ID: 2, UserID: 2, Slug: "theirs"},
		{ID: 3, UserID: 1, Slug: "mine-too"},
	}

	got := OwnNotes(in, 1)
	assert.Len(t, got, 2)
	for _, n := range got {
		assert.Equal(t, uint(1), n.UserID)
	}
	assert.Equal(t, uint(1), got[0].ID)
	assert.Equal(t, uint(3), got[1].ID)

	assert.Empty(t, OwnNotes(in, 99))
}
