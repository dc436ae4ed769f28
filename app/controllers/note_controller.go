package controllers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sujit-baniya/flash"

	"github.com/notepress/notepress/app/repository"
	"github.com/notepress/notepress/app/service"
	"github.com/notepress/notepress/internal/pkg/usercontext"
)

// NoteController handles the private notes area
type NoteController struct {
	notes *service.NoteService
}

var noteController *NoteController

// InitializeNoteController wires the note controller with its service
func InitializeNoteController() {
	repos := repository.GetGlobalRepositories()
	noteController = &NoteController{
		notes: service.NewNoteService(repos.Note),
	}
}

// HandleNoteList shows the signed-in user's own notes
func HandleNoteList(c *fiber.Ctx) error {
	userCtx := usercontext.GetUserContext(c)

	notes, err := noteController.notes.List(userCtx.Actor())
	if err != nil {
		return handleServiceError(c, err)
	}

	return c.Render("note_list", fiber.Map{
		"Page":          "My notes",
		"FromProtected": userCtx.IsLoggedIn,
		"Username":      userCtx.Username,
		"Msg":           flash.Get(c),
		"Csrf":          csrfToken(c),
		"Notes":         notes,
	}, "layouts/main")
}

// HandleNoteShow renders a single note, addressed by slug
func HandleNoteShow(c *fiber.Ctx) error {
	userCtx := usercontext.GetUserContext(c)

	note, err := noteController.notes.Detail(userCtx.Actor(), c.Params("slug"))
	if err != nil {
		return handleServiceError(c, err)
	}

	return c.Render("note_show", fiber.Map{
		"Page":          note.Title,
		"FromProtected": userCtx.IsLoggedIn,
		"Username":      userCtx.Username,
		"Msg":           flash.Get(c),
		"Csrf":          csrfToken(c),
		"Note":          note,
	}, "layouts/main")
}

// HandleNoteAdd renders the empty note form
func HandleNoteAdd(c *fiber.Ctx) error {
	userCtx := usercontext.GetUserContext(c)

	return c.Render("note_form", fiber.Map{
		"Page":          "New note",
		"FromProtected": userCtx.IsLoggedIn,
		"Username":      userCtx.Username,
		"Msg":           flash.Get(c),
		"Csrf":          csrfToken(c),
		"Action":        "/notes/add",
	}, "layouts/main")
}

// HandleNoteStore creates a note from the submitted form. The slug is
// optional; a blank slug is derived from the title.
func HandleNoteStore(c *fiber.Ctx) error {
	userCtx := usercontext.GetUserContext(c)

	title := c.FormValue("title")
	content := c.FormValue("content")
	slug := c.FormValue("slug")

	note, err := noteController.notes.Create(userCtx.Actor(), title, content, slug)
	if err != nil {
		if ve, ok := service.AsValidationError(err); ok {
			return c.Status(fiber.StatusUnprocessableEntity).Render("note_form", fiber.Map{
				"Page":          "New note",
				"FromProtected": userCtx.IsLoggedIn,
				"Username":      userCtx.Username,
				"Action":        "/notes/add",
				"Title":         title,
				"Content":       content,
				"Slug":          slug,
				"FormError":     ve.Message,
				"Csrf":          csrfToken(c),
				"FormErrorFor":  ve.Field,
			}, "layouts/main")
		}
		return handleServiceError(c, err)
	}

	return flashSuccess(c, "Note created", "/notes/"+note.Slug)
}

// HandleNoteEdit renders the edit form pre-filled with the note
func HandleNoteEdit(c *fiber.Ctx) error {
	userCtx := usercontext.GetUserContext(c)

	note, err := noteController.notes.Detail(userCtx.Actor(), c.Params("slug"))
	if err != nil {
		return handleServiceError(c, err)
	}

	return c.Render("note_form", fiber.Map{
		"Page":          "Edit note",
		"FromProtected": userCtx.IsLoggedIn,
		"Username":      userCtx.Username,
		"Msg":           flash.Get(c),
		"Csrf":          csrfToken(c),
		"Action":        "/notes/" + note.Slug + "/edit",
		"Title":         note.Title,
		"Content":       note.Content,
		"Slug":          note.Slug,
		"SlugLocked":    true,
	}, "layouts/main")
}

// HandleNoteUpdate applies an edit to the owner's note. The slug stays
// stable across edits so bookmarks keep working.
func HandleNoteUpdate(c *fiber.Ctx) error {
	userCtx := usercontext.GetUserContext(c)

	slug := c.Params("slug")
	title := c.FormValue("title")
	content := c.FormValue("content")

	note, err := noteController.notes.Update(userCtx.Actor(), slug, title, content)
	if err != nil {
		if ve, ok := service.AsValidationError(err); ok {
			return c.Status(fiber.StatusUnprocessableEntity).Render("note_form", fiber.Map{
				"Page":          "Edit note",
				"FromProtected": userCtx.IsLoggedIn,
				"Username":      userCtx.Username,
				"Action":        "/notes/" + slug + "/edit",
				"Title":         title,
				"Content":       content,
				"Slug":          slug,
				"SlugLocked":    true,
				"FormError":     ve.Message,
				"Csrf":          csrfToken(c),
				"FormErrorFor":  ve.Field,
			}, "layouts/main")
		}
		return handleServiceError(c, err)
	}

	return flashSuccess(c, "Note updated", "/notes/"+note.Slug)
}

// HandleNoteDeleteConfirm renders the delete confirmation page
func HandleNoteDeleteConfirm(c *fiber.Ctx) error {
	userCtx := usercontext.GetUserContext(c)

	note, err := noteController.notes.Detail(userCtx.Actor(), c.Params("slug"))
	if err != nil {
		return handleServiceError(c, err)
	}

	return c.Render("note_delete", fiber.Map{
		"Page":          "Delete note",
		"FromProtected": userCtx.IsLoggedIn,
		"Username":      userCtx.Username,
		"Csrf":          csrfToken(c),
		"Note":          note,
	}, "layouts/main")
}

// HandleNoteDelete removes the owner's note
func HandleNoteDelete(c *fiber.Ctx) error {
	userCtx := usercontext.GetUserContext(c)

	if err := noteController.notes.Delete(userCtx.Actor(), c.Params("slug")); err != nil {
		return handleServiceError(c, err)
	}

	return flashSuccess(c, "Note deleted", "/notes")
}
