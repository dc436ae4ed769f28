package service

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/notepress/notepress/app/models"
	"github.com/notepress/notepress/app/repository"
	"github.com/notepress/notepress/internal/pkg/access"
	"github.com/notepress/notepress/internal/pkg/moderation"
)

func newTestEnv(t *testing.T) (*repository.Repositories, *NewsService, *NoteService, *CommentService) {
	t.Helper()
	repos := repository.NewMemoryRepositories()
	filter := moderation.New([]string{"scoundrel", "rascal"}, "Please mind your language!")
	return repos,
		NewNewsService(repos.News, repos.Comment, 0),
		NewNoteService(repos.Note),
		NewCommentService(repos.Comment, repos.News, filter)
}

func createNewsAt(t *testing.T, repos *repository.Repositories, title string, created time.Time) *models.News {
	t.Helper()
	n := &models.News{Title: title, Content: "Text", CreatedAt: created}
	require.NoError(t, repos.News.Create(n))
	return n
}

func TestNewsHome_ReturnsAtMostTenNewestFirst(t *testing.T) {
	repos, newsSvc, _, _ := newTestEnv(t)

	base := time.Date(2025, 5, 1, 9, 0, 0, 0, time.UTC)
	for i := 1; i <= 11; i++ {
		createNewsAt(t, repos, fmt.Sprintf("N%d", i), base.Add(time.Duration(i)*time.Minute))
	}

	home, err := newsSvc.Home(access.Anonymous)
	require.NoError(t, err)
	require.Len(t, home, 10)
	assert.Equal(t, "N11", home[0].Title)
	for i := 1; i < len(home); i++ {
		assert.True(t, !home[i-1].CreatedAt.Before(home[i].CreatedAt),
			"home listing must be ordered newest first")
	}
}

func TestNewsHome_OpenToAnonymous(t *testing.T) {
	repos, newsSvc, _, _ := newTestEnv(t)
	createNewsAt(t, repos, "Open", time.Now())

	home, err := newsSvc.Home(access.Anonymous)
	require.NoError(t, err)
	assert.Len(t, home, 1)
}

func TestNewsDetail_CommentsChronologicalRegardlessOfInsertOrder(t *testing.T) {
	repos, newsSvc, _, _ := newTestEnv(t)
	news := createNewsAt(t, repos, "News", time.Now())

	base := time.Date(2025, 5, 1, 9, 0, 0, 0, time.UTC)
	// Persist out of order; the listing must still be t1 < t2 < t3.
	for _, c := range []struct {
		text string
		at   time.Time
	}{
		{"c3", base.Add(3 * time.Minute)},
		{"c1", base.Add(1 * time.Minute)},
		{"c2", base.Add(2 * time.Minute)},
	} {
		require.NoError(t, repos.Comment.Create(&models.Comment{
			NewsID: news.ID, UserID: 1, Content: c.text, CreatedAt: c.at,
		}))
	}

	detail, err := newsSvc.Detail(access.Anonymous, news.ID)
	require.NoError(t, err)
	require.Len(t, detail.Comments, 3)
	assert.Equal(t, "c1", detail.Comments[0].Content)
	assert.Equal(t, "c2", detail.Comments[1].Content)
	assert.Equal(t, "c3", detail.Comments[2].Content)
}

func TestNewsDetail_CommentFormOnlyForAuthenticated(t *testing.T) {
	repos, newsSvc, _, _ := newTestEnv(t)
	news := createNewsAt(t, repos, "News", time.Now())

	anon, err := newsSvc.Detail(access.Anonymous, news.ID)
	require.NoError(t, err)
	assert.False(t, anon.ShowCommentForm)

	authed, err := newsSvc.Detail(access.Actor{UserID: 5, Username: "reader"}, news.ID)
	require.NoError(t, err)
	assert.True(t, authed.ShowCommentForm)
}

func TestNewsDetail_UnknownIDIsNotFound(t *testing.T) {
	_, newsSvc, _, _ := newTestEnv(t)

	_, err := newsSvc.Detail(access.Anonymous, 42)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestPublish_RejectsInvalidPayload(t *testing.T) {
	_, newsSvc, _, _ := newTestEnv(t)

	_, err := newsSvc.Publish("Launch day", "")
	ve, ok := AsValidationError(err)
	require.True(t, ok)
	assert.Equal(t, "content", ve.Field)
}
