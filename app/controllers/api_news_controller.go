package controllers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/notepress/notepress/internal/pkg/usercontext"
)

// HandleAPINewsIndex returns the home page listing as JSON
func HandleAPINewsIndex(c *fiber.Ctx) error {
	news, err := newsController.news.Home(usercontext.GetUserContext(c).Actor())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal error"})
	}
	return c.JSON(fiber.Map{"news": news})
}

// HandleAPINewsShow returns a single news article with its comments
func HandleAPINewsShow(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "not found"})
	}

	detail, err := newsController.news.Detail(usercontext.GetUserContext(c).Actor(), uint(id))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "not found"})
	}

	return c.JSON(fiber.Map{
		"news":     detail.News,
		"comments": detail.Comments,
	})
}
