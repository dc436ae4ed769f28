package controllers

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/sujit-baniya/flash"

	"github.com/notepress/notepress/app/repository"
	"github.com/notepress/notepress/app/service"
	"github.com/notepress/notepress/internal/pkg/env"
	"github.com/notepress/notepress/internal/pkg/listing"
	"github.com/notepress/notepress/internal/pkg/metrics/counter"
	"github.com/notepress/notepress/internal/pkg/moderation"
	"github.com/notepress/notepress/internal/pkg/usercontext"
	"github.com/notepress/notepress/internal/pkg/viewmodel"
)

// NewsController serves the public news pages
type NewsController struct {
	news *service.NewsService
}

var newsController *NewsController

// InitializeNewsController wires the news controller with its service
func InitializeNewsController() {
	repos := repository.GetGlobalRepositories()
	limit, _ := strconv.Atoi(env.GetEnv("NEWS_HOME_LIMIT", ""))
	if limit <= 0 {
		limit = listing.NewsHomeLimit
	}
	newsController = &NewsController{
		news: service.NewNewsService(repos.News, repos.Comment, limit),
	}
}

// NewModerationFilter builds the injected moderation policy from env
func NewModerationFilter() *moderation.Filter {
	var terms []string
	for _, t := range strings.Split(env.GetEnv("MODERATION_BANNED_TERMS", ""), ",") {
		if t = strings.TrimSpace(t); t != "" {
			terms = append(terms, t)
		}
	}
	return moderation.New(terms, env.GetEnv("MODERATION_WARNING", ""))
}

// HandleHome renders the news home page: the newest articles, capped
func HandleHome(c *fiber.Ctx) error {
	userCtx := usercontext.GetUserContext(c)

	newsList, err := newsController.news.Home(userCtx.Actor())
	if err != nil {
		return handleServiceError(c, err)
	}

	return c.Render("news_index", fiber.Map{
		"Page":          "Home",
		"FromProtected": userCtx.IsLoggedIn,
		"Username":      userCtx.Username,
		"IsAdmin":       userCtx.IsAdmin,
		"Msg":           flash.Get(c),
		"Csrf":          csrfToken(c),
		"News":          newsList,
		"OG": &viewmodel.OpenGraph{
			Title:       "News - NotePress",
			Description: "Latest news and updates",
			URL:         "/",
		},
	}, "layouts/main")
}

// HandleNewsShow renders a single news article with its comments
func HandleNewsShow(c *fiber.Ctx) error {
	userCtx := usercontext.GetUserContext(c)

	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return renderNotFound(c)
	}

	detail, err := newsController.news.Detail(userCtx.Actor(), uint(id))
	if err != nil {
		return handleServiceError(c, err)
	}

	// Count the view out of band; rendering never waits on Redis.
	_ = counter.AddNewsView(detail.News.ID)

	view := viewmodel.NewsDetailView{
		News:            detail.News,
		Comments:        viewmodel.NewCommentViews(detail.Comments, userCtx.UserID),
		ShowCommentForm: detail.ShowCommentForm,
	}

	return c.Render("news_show", fiber.Map{
		"Page":          detail.News.Title,
		"FromProtected": userCtx.IsLoggedIn,
		"Username":      userCtx.Username,
		"IsAdmin":       userCtx.IsAdmin,
		"Msg":           flash.Get(c),
		"Csrf":          csrfToken(c),
		"Detail":        view,
		"OG": &viewmodel.OpenGraph{
			Title:       detail.News.Title + " - NotePress",
			Description: truncate(detail.News.Content, 150),
			URL:         "/news/" + strconv.FormatUint(uint64(detail.News.ID), 10),
		},
	}, "layouts/main")
}

func truncate(text string, maxLength int) string {
	if len(text) <= maxLength {
		return text
	}
	return text[:maxLength]
}
