package controllers

import (
	"github.com/gofiber/fiber/v2"

	"studytutor/backend/subjects"
	"studytutor/backend/utils"
)

type SubjectsController struct{}

func NewSubjectsController() *SubjectsController {
	return &SubjectsController{}
}

func (sc *SubjectsController) ListSubjects(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"subjects": subjects.Catalog})
}

func (sc *SubjectsController) ListTopics(c *fiber.Ctx) error {
	subject, err := pathParam(c, "subject")
	if err != nil {
		return utils.BadRequest(c, "Invalid subject")
	}

	topics := subjects.Topics(subject)
	if topics == nil {
		return utils.NotFound(c, "Subject not found")
	}

	// Earlier topics in the sequence are prerequisites for later ones.
	prereqs := make(map[string][]string, len(topics))
	for _, t := range topics {
		prereqs[t] = subjects.Prerequisites(subject, t)
	}

	return c.JSON(fiber.Map{
		"subject":       subject,
		"topics":        topics,
		"prerequisites": prereqs,
	})
}
