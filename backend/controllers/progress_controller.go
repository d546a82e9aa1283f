package controllers

import (
	"github.com/gofiber/fiber/v2"

	"studytutor/backend/config"
	"studytutor/backend/progress"
	"studytutor/backend/subjects"
	"studytutor/backend/utils"
)

type ProgressController struct {
	Cfg     *config.Config
	Tracker *progress.Tracker
}

func NewProgressController(cfg *config.Config, tracker *progress.Tracker) *ProgressController {
	return &ProgressController{Cfg: cfg, Tracker: tracker}
}

// GetProgress godoc
// @Summary Subject progress rollup
// @Description Returns per-topic progress plus completion stats for a subject
// @Tags progress
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /progress/{subject} [get]
func (pc *ProgressController) GetProgress(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	subject, err := pc.subject(c)
	if err != nil {
		return utils.NotFound(c, "Subject not found")
	}

	topicProgress, err := pc.Tracker.Store.GetProgress(userID, subject)
	if err != nil {
		return utils.InternalServerError(c, "Could not query database")
	}

	completed := make(map[string]bool, len(topicProgress))
	completedCount := 0
	for topic, p := range topicProgress {
		completed[topic] = p.Completed
		if p.Completed {
			completedCount++
		}
	}

	allTopics := subjects.Topics(subject)

	return c.JSON(fiber.Map{
		"subject":        subject,
		"topics":         topicProgress,
		"total_topics":   len(allTopics),
		"completed":      completedCount,
		"next_suggested": subjects.NextSuggested(subject, completed),
	})
}

func (pc *ProgressController) Recommendations(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	subject, err := pc.subject(c)
	if err != nil {
		return utils.NotFound(c, "Subject not found")
	}

	recommendations, err := pc.Tracker.Recommendations(userID, subject)
	if err != nil {
		return utils.InternalServerError(c, "Could not query database")
	}
	return c.JSON(fiber.Map{"recommendations": recommendations})
}

func (pc *ProgressController) Achievements(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	subject, err := pc.subject(c)
	if err != nil {
		return utils.NotFound(c, "Subject not found")
	}

	badges, err := pc.Tracker.Achievements(userID, subject)
	if err != nil {
		return utils.InternalServerError(c, "Could not query database")
	}
	return c.JSON(fiber.Map{"achievements": badges})
}

func (pc *ProgressController) StudySuggestions(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	subject, err := pc.subject(c)
	if err != nil {
		return utils.NotFound(c, "Subject not found")
	}

	suggestions, err := pc.Tracker.StudySuggestions(userID, subject)
	if err != nil {
		return utils.InternalServerError(c, "Could not query database")
	}
	return c.JSON(fiber.Map{"suggestions": suggestions})
}

// LearningStreak reports distinct active days within the trailing week,
// derived from chat and quiz timestamps.
func (pc *ProgressController) LearningStreak(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	streak, err := pc.Tracker.LearningStreak(userID)
	if err != nil {
		return utils.InternalServerError(c, "Could not query database")
	}
	return c.JSON(fiber.Map{"streak_days": streak})
}

// Export returns the full progress snapshot for download.
func (pc *ProgressController) Export(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	subject, err := pc.subject(c)
	if err != nil {
		return utils.NotFound(c, "Subject not found")
	}

	data, err := pc.Tracker.ExportData(userID, subject)
	if err != nil {
		return utils.InternalServerError(c, "Could not query database")
	}
	return c.JSON(data)
}

func (pc *ProgressController) subject(c *fiber.Ctx) (string, error) {
	subject, err := pathParam(c, "subject")
	if err != nil || !subjects.Valid(subject, "") {
		return "", fiber.NewError(fiber.StatusNotFound, "Subject not found")
	}
	return subject, nil
}
