package controllers

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"studytutor/backend/config"
	"studytutor/backend/progress"
	"studytutor/backend/subjects"
	"studytutor/backend/tutor"
	"studytutor/backend/utils"
)

type ChatController struct {
	Cfg      *config.Config
	Engine   *tutor.Engine
	Tracker  *progress.Tracker
	Sessions *tutor.SessionStore
}

func NewChatController(cfg *config.Config, engine *tutor.Engine, tracker *progress.Tracker, sessions *tutor.SessionStore) *ChatController {
	return &ChatController{Cfg: cfg, Engine: engine, Tracker: tracker, Sessions: sessions}
}

type chatInput struct {
	Subject  string `json:"subject"`
	Topic    string `json:"topic"`
	Question string `json:"question"`
}

// SendMessage godoc
// @Summary Ask the tutor a question
// @Description Returns a tutoring reply and records the exchange in progress
// @Tags chat
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /chat/message [post]
func (cc *ChatController) SendMessage(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	var input chatInput
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}
	if input.Question == "" {
		return utils.BadRequest(c, "Question is required")
	}
	if input.Topic == "" || !subjects.Valid(input.Subject, input.Topic) {
		return utils.BadRequest(c, "Unknown subject or topic")
	}

	// Session context is explicit: starting a different topic resets it.
	session := cc.Sessions.Context(userID, input.Subject, input.Topic)

	reply := cc.Engine.TutorReply(c.Context(), input.Subject, input.Topic, input.Question, session.History)
	cc.Sessions.Append(userID, input.Question, reply)

	if err := cc.Tracker.UpdateOnChat(userID, input.Subject, input.Topic); err != nil {
		return utils.InternalServerError(c, "Could not update progress")
	}

	return c.JSON(fiber.Map{
		"reply":   reply,
		"subject": input.Subject,
		"topic":   input.Topic,
	})
}

// ClearSession drops the current chat context, e.g. when the user switches
// subject in the UI.
func (cc *ChatController) ClearSession(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	cc.Sessions.Clear(userID)
	return c.JSON(fiber.Map{"message": "Session cleared"})
}

// LearningTips returns provider-written study tips for a topic.
func (cc *ChatController) LearningTips(c *fiber.Ctx) error {
	return cc.contentEndpoint(c, cc.Engine.LearningTips)
}

// PracticeProblem returns a generated practice problem without a solution.
func (cc *ChatController) PracticeProblem(c *fiber.Ctx) error {
	return cc.contentEndpoint(c, cc.Engine.PracticeProblem)
}

// ExplainConcept returns a structured explanation of a topic.
func (cc *ChatController) ExplainConcept(c *fiber.Ctx) error {
	return cc.contentEndpoint(c, cc.Engine.ExplainConcept)
}

// contentEndpoint handles the shared shape of the three generation
// endpoints: parse subject/topic, validate, call the engine.
func (cc *ChatController) contentEndpoint(c *fiber.Ctx, generate func(ctx context.Context, subject, topic string) string) error {
	type topicInput struct {
		Subject string `json:"subject"`
		Topic   string `json:"topic"`
	}

	var input topicInput
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}
	if !subjects.Valid(input.Subject, input.Topic) || input.Topic == "" {
		return utils.BadRequest(c, "Unknown subject or topic")
	}

	content := generate(c.Context(), input.Subject, input.Topic)
	return c.JSON(fiber.Map{
		"subject": input.Subject,
		"topic":   input.Topic,
		"content": content,
	})
}
