package service

import (
	"errors"

	"github.com/go-playground/validator/v10"

	"github.com/notepress/notepress/app/models"
	"github.com/notepress/notepress/app/repository"
	"github.com/notepress/notepress/internal/pkg/access"
	"github.com/notepress/notepress/internal/pkg/slugify"
)

// NoteService owns the lifecycle of private notes. All operations are
// scoped to the acting user; other users' notes behave as if they did
// not exist.
type NoteService struct {
	notes    repository.NoteRepository
	validate *validator.Validate
}

// NewNoteService creates a note service.
func NewNoteService(notes repository.NoteRepository) *NoteService {
	return &NoteService{notes: notes, validate: validator.New()}
}

// List returns the actor's own notes, never anybody else's.
func (s *NoteService) List(actor access.Actor) ([]models.Note, error) {
	switch access.Evaluate(actor, access.NoOwner, access.OpReadOwnList) {
	case access.Allow:
	case access.DenyAsAuthRequired:
		return nil, ErrAuthRequired
	default:
		return nil, ErrNotFound
	}
	return s.notes.GetByUserID(actor.UserID)
}

// Detail returns a single note addressed by slug. Non-owners get
// ErrNotFound whether or not the slug exists.
func (s *NoteService) Detail(actor access.Actor, slug string) (*models.Note, error) {
	note, err := s.getOwned(actor, slug, access.OpRead)
	if err != nil {
		return nil, err
	}
	return note, nil
}

// Create adds a note for the actor. A blank slug is derived from the
// title; an explicit slug is normalized. The storage unique index backs
// the pre-check, and a constraint hit is retried once with a random
// suffix before surfacing.
func (s *NoteService) Create(actor access.Actor, title, content, slug string) (*models.Note, error) {
	switch access.Evaluate(actor, access.NoOwner, access.OpCreate) {
	case access.Allow:
	case access.DenyAsAuthRequired:
		return nil, ErrAuthRequired
	default:
		return nil, ErrNotFound
	}

	if slug == "" {
		existing, err := s.notes.Slugs()
		if err != nil {
			return nil, err
		}
		slug = slugify.Generate(title, existing)
	} else {
		slug = slugify.Slugify(slug)
		if slug == "" {
			return nil, &ValidationError{Field: "slug", Message: "slug has no usable characters"}
		}
	}

	note := &models.Note{
		Title:   title,
		Content: content,
		Slug:    slug,
		UserID:  actor.UserID,
	}
	if err := s.validate.Struct(note); err != nil {
		return nil, validationError(err)
	}

	err := s.notes.Create(note)
	if errors.Is(err, repository.ErrDuplicateSlug) {
		// The pre-check and the insert are not atomic; regenerate once.
		note.Slug = slugify.WithRandomSuffix(slug)
		err = s.notes.Create(note)
	}
	if errors.Is(err, repository.ErrDuplicateSlug) {
		return nil, &ValidationError{Field: "slug", Message: "slug already exists"}
	}
	if err != nil {
		return nil, err
	}
	return note, nil
}

// Update edits the actor's own note. The slug is set at creation and
// preserved here, even when the title changes.
func (s *NoteService) Update(actor access.Actor, slug, title, content string) (*models.Note, error) {
	note, err := s.getOwned(actor, slug, access.OpEdit)
	if err != nil {
		return nil, err
	}

	note.Title = title
	note.Content = content
	if err := s.validate.Struct(note); err != nil {
		return nil, validationError(err)
	}
	if err := s.notes.Update(note); err != nil {
		return nil, err
	}
	return note, nil
}

// Delete removes the actor's own note.
func (s *NoteService) Delete(actor access.Actor, slug string) error {
	note, err := s.getOwned(actor, slug, access.OpDelete)
	if err != nil {
		return err
	}
	return s.notes.Delete(note.ID)
}

// getOwned loads a note and applies the ownership rules for op. The
// access decision is taken even when the record is absent, so anonymous
// actors are redirected to login instead of learning about existence.
func (s *NoteService) getOwned(actor access.Actor, slug string, op access.Operation) (*models.Note, error) {
	if !actor.IsAuthenticated() {
		return nil, ErrAuthRequired
	}
	note, err := s.notes.GetBySlug(slug)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	switch access.Evaluate(actor, note.UserID, op) {
	case access.Allow:
		return note, nil
	case access.DenyAsAuthRequired:
		return nil, ErrAuthRequired
	default:
		return nil, ErrNotFound
	}
}
