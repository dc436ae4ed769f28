package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/notepress/notepress/internal/pkg/access"
)

func TestCommentCreate_AnonymousIsSentToLogin(t *testing.T) {
	repos, _, _, commentSvc := newTestEnv(t)
	news := createNewsAt(t, repos, "News", time.Now())

	_, err := commentSvc.Create(access.Anonymous, news.ID, "hello")
	assert.ErrorIs(t, err, ErrAuthRequired)

	count, err := repos.Comment.Count()
	require.NoError(t, err)
	assert.Zero(t, count, "no comment may persist for anonymous actors")
}

func TestCommentCreate_AuthenticatedUserSucceeds(t *testing.T) {
	repos, _, _, commentSvc := newTestEnv(t)
	news := createNewsAt(t, repos, "News", time.Now())

	comment, err := commentSvc.Create(author, news.ID, "This is a comment")
	require.NoError(t, err)
	assert.Equal(t, news.ID, comment.NewsID)
	assert.Equal(t, author.UserID, comment.UserID)
	assert.Equal(t, "This is a comment", comment.Content)
}

func TestCommentCreate_UnknownNewsIsNotFound(t *testing.T) {
	_, _, _, commentSvc := newTestEnv(t)

	_, err := commentSvc.Create(author, 999, "into the void")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCommentCreate_BannedTermRejectedOnTextField(t *testing.T) {
	repos, _, _, commentSvc := newTestEnv(t)
	news := createNewsAt(t, repos, "News", time.Now())

	_, err := commentSvc.Create(author, news.ID, "you absolute SCOUNDREL")
	ve, ok := AsValidationError(err)
	require.True(t, ok, "expected a field-level rejection")
	assert.Equal(t, "text", ve.Field)
	assert.Equal(t, "Please mind your language!", ve.Message)

	count, err := repos.Comment.Count()
	require.NoError(t, err)
	assert.Zero(t, count, "rejected text must not persist")
}

func TestCommentEdit_OwnerOnly(t *testing.T) {
	repos, _, _, commentSvc := newTestEnv(t)
	news := createNewsAt(t, repos, "News", time.Now())

	comment, err := commentSvc.Create(author, news.ID, "original text")
	require.NoError(t, err)

	// Author gets the edit form.
	got, err := commentSvc.GetForEdit(author, comment.ID)
	require.NoError(t, err)
	assert.Equal(t, "original text", got.Content)

	// A different user sees not-found, never forbidden.
	_, err = commentSvc.GetForEdit(stranger, comment.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = commentSvc.Update(stranger, comment.ID, "hijack attempt")
	assert.ErrorIs(t, err, ErrNotFound)

	stored, err := repos.Comment.GetByID(comment.ID)
	require.NoError(t, err)
	assert.Equal(t, "original text", stored.Content, "record must stay unchanged")

	updated, err := commentSvc.Update(author, comment.ID, "revised text")
	require.NoError(t, err)
	assert.Equal(t, "revised text", updated.Content)
}

func TestCommentUpdate_ModeratesNewText(t *testing.T) {
	repos, _, _, commentSvc := newTestEnv(t)
	news := createNewsAt(t, repos, "News", time.Now())

	comment, err := commentSvc.Create(author, news.ID, "clean text")
	require.NoError(t, err)

	_, err = commentSvc.Update(author, comment.ID, "what a rascal")
	ve, ok := AsValidationError(err)
	require.True(t, ok)
	assert.Equal(t, "text", ve.Field)

	stored, err := repos.Comment.GetByID(comment.ID)
	require.NoError(t, err)
	assert.Equal(t, "clean text", stored.Content)
}

func TestCommentDelete_OwnershipRules(t *testing.T) {
	repos, _, _, commentSvc := newTestEnv(t)
	news := createNewsAt(t, repos, "News", time.Now())

	comment, err := commentSvc.Create(author, news.ID, "to be removed")
	require.NoError(t, err)

	assert.ErrorIs(t, commentSvc.Delete(access.Anonymous, comment.ID), ErrAuthRequired)
	assert.ErrorIs(t, commentSvc.Delete(stranger, comment.ID), ErrNotFound)

	count, _ := repos.Comment.Count()
	assert.Equal(t, int64(1), count)

	require.NoError(t, commentSvc.Delete(author, comment.ID))
	count, _ = repos.Comment.Count()
	assert.Zero(t, count)
}
