package tutor

import (
	"context"
	"encoding/json"

	"google.golang.org/genai"

	"studytutor/backend/quiz"
)

// GeminiProvider implements Provider against the Google Gemini API.
// Quiz generation uses the pro model with JSON output; conversational
// calls use the cheaper flash model.
type GeminiProvider struct {
	client    *genai.Client
	quizModel string
	chatModel string
}

type GeminiConfig struct {
	APIKey    string
	QuizModel string
	ChatModel string
}

func NewGeminiProvider(ctx context.Context, cfg GeminiConfig) (*GeminiProvider, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, &ErrProvider{Op: "create client", Err: err}
	}

	return &GeminiProvider{
		client:    client,
		quizModel: cfg.QuizModel,
		chatModel: cfg.ChatModel,
	}, nil
}

func (p *GeminiProvider) GenerateQuiz(ctx context.Context, subject, topic string, numQuestions int) (*quiz.Quiz, error) {
	config := &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
	}

	result, err := p.client.Models.GenerateContent(ctx, p.quizModel,
		genai.Text(quizPrompt(subject, topic, numQuestions)), config)
	if err != nil {
		return nil, &ErrProvider{Op: "generate quiz", Err: err}
	}

	var q quiz.Quiz
	if err := json.Unmarshal([]byte(result.Text()), &q); err != nil {
		return nil, &ErrProvider{Op: "parse quiz", Err: err}
	}

	return &q, nil
}

func (p *GeminiProvider) TutorReply(ctx context.Context, subject, topic, question string, history []Message) (string, error) {
	config := &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{
			Parts: []*genai.Part{{Text: tutorSystemPrompt(subject, topic, history)}},
		},
	}

	return p.generateText(ctx, p.chatModel, tutorUserPrompt(topic, question), config, "tutor reply")
}

func (p *GeminiProvider) QuizFeedback(ctx context.Context, subject, topic string, score float64) (string, error) {
	return p.generateText(ctx, p.quizModel, feedbackPrompt(subject, topic, score), nil, "quiz feedback")
}

func (p *GeminiProvider) LearningTips(ctx context.Context, subject, topic string) (string, error) {
	return p.generateText(ctx, p.chatModel, tipsPrompt(subject, topic), nil, "learning tips")
}

func (p *GeminiProvider) PracticeProblem(ctx context.Context, subject, topic string) (string, error) {
	return p.generateText(ctx, p.chatModel, practicePrompt(subject, topic), nil, "practice problem")
}

func (p *GeminiProvider) ExplainConcept(ctx context.Context, subject, topic string) (string, error) {
	return p.generateText(ctx, p.chatModel, explainPrompt(subject, topic), nil, "explain concept")
}

func (p *GeminiProvider) generateText(ctx context.Context, model, prompt string, config *genai.GenerateContentConfig, op string) (string, error) {
	result, err := p.client.Models.GenerateContent(ctx, model, genai.Text(prompt), config)
	if err != nil {
		return "", &ErrProvider{Op: op, Err: err}
	}
	return result.Text(), nil
}
