package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/notepress/notepress/internal/pkg/access"
)

var (
	author   = access.Actor{UserID: 1, Username: "author"}
	stranger = access.Actor{UserID: 2, Username: "stranger"}
)

func TestNoteCreate_AnonymousIsSentToLogin(t *testing.T) {
	repos, _, noteSvc, _ := newTestEnv(t)

	_, err := noteSvc.Create(access.Anonymous, "Title", "Text", "")
	assert.ErrorIs(t, err, ErrAuthRequired)

	count, err := repos.Note.Count()
	require.NoError(t, err)
	assert.Zero(t, count, "nothing may persist for anonymous actors")
}

func TestNoteCreate_GeneratesSlugFromTitle(t *testing.T) {
	_, _, noteSvc, _ := newTestEnv(t)

	note, err := noteSvc.Create(author, "My First Note", "Text", "")
	require.NoError(t, err)
	assert.Equal(t, "my-first-note", note.Slug)
}

func TestNoteCreate_IdenticalTitlesGetDistinctSlugs(t *testing.T) {
	_, _, noteSvc, _ := newTestEnv(t)

	first, err := noteSvc.Create(author, "Same Title", "Text", "")
	require.NoError(t, err)
	second, err := noteSvc.Create(author, "Same Title", "Text", "")
	require.NoError(t, err)

	assert.NotEmpty(t, first.Slug)
	assert.NotEmpty(t, second.Slug)
	assert.NotEqual(t, first.Slug, second.Slug)
}

func TestNoteCreate_ExplicitSlugCollisionRetriesWithSuffix(t *testing.T) {
	_, _, noteSvc, _ := newTestEnv(t)

	first, err := noteSvc.Create(author, "One", "Text", "chosen")
	require.NoError(t, err)
	require.Equal(t, "chosen", first.Slug)

	// Same explicit slug: the unique index fires and the service retries
	// once with a random suffix.
	second, err := noteSvc.Create(author, "Two", "Text", "chosen")
	require.NoError(t, err)
	assert.NotEqual(t, "chosen", second.Slug)
	assert.Contains(t, second.Slug, "chosen-")
}

func TestNoteList_ScopedToActor(t *testing.T) {
	_, _, noteSvc, _ := newTestEnv(t)

	_, err := noteSvc.Create(author, "Mine", "Text", "")
	require.NoError(t, err)
	_, err = noteSvc.Create(stranger, "Theirs", "Text", "")
	require.NoError(t, err)

	mine, err := noteSvc.List(author)
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, author.UserID, mine[0].UserID)

	_, err = noteSvc.List(access.Anonymous)
	assert.ErrorIs(t, err, ErrAuthRequired)
}

func TestNoteDetail_HiddenFromNonOwners(t *testing.T) {
	_, _, noteSvc, _ := newTestEnv(t)

	note, err := noteSvc.Create(author, "Secret", "Text", "")
	require.NoError(t, err)

	got, err := noteSvc.Detail(author, note.Slug)
	require.NoError(t, err)
	assert.Equal(t, note.ID, got.ID)

	// The record exists, but a different user must not learn that.
	_, err = noteSvc.Detail(stranger, note.Slug)
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = noteSvc.Detail(author, "no-such-slug")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestNoteUpdate_OwnerOnly_SlugPreserved(t *testing.T) {
	_, _, noteSvc, _ := newTestEnv(t)

	note, err := noteSvc.Create(author, "Original Title", "Text", "")
	require.NoError(t, err)
	originalSlug := note.Slug

	updated, err := noteSvc.Update(author, note.Slug, "Completely New Title", "New text")
	require.NoError(t, err)
	assert.Equal(t, "Completely New Title", updated.Title)
	assert.Equal(t, originalSlug, updated.Slug, "slug must survive title edits")
}

func TestNoteUpdate_StrangerSeesNotFoundAndRecordIsUnchanged(t *testing.T) {
	_, _, noteSvc, _ := newTestEnv(t)

	note, err := noteSvc.Create(author, "Original", "Text", "")
	require.NoError(t, err)

	_, err = noteSvc.Update(stranger, note.Slug, "Hijacked", "Nope")
	assert.ErrorIs(t, err, ErrNotFound)

	got, err := noteSvc.Detail(author, note.Slug)
	require.NoError(t, err)
	assert.Equal(t, "Original", got.Title)
}

func TestNoteDelete_OwnershipRules(t *testing.T) {
	repos, _, noteSvc, _ := newTestEnv(t)

	note, err := noteSvc.Create(author, "Keep Or Drop", "Text", "")
	require.NoError(t, err)

	assert.ErrorIs(t, noteSvc.Delete(stranger, note.Slug), ErrNotFound)
	count, _ := repos.Note.Count()
	assert.Equal(t, int64(1), count)

	assert.ErrorIs(t, noteSvc.Delete(access.Anonymous, note.Slug), ErrAuthRequired)

	require.NoError(t, noteSvc.Delete(author, note.Slug))
	count, _ = repos.Note.Count()
	assert.Zero(t, count)
}
