// Package progress is the aggregation core: it turns raw progress rows into
// rollups, recommendations, achievement badges and streaks. The tracker
// holds no state of its own — every call recomputes from freshly fetched
// rows.
package progress

import (
	"encoding/json"
	"time"

	"studytutor/backend/models"
	"studytutor/backend/store"
)

// CompletionThreshold is the quiz score at or above which a topic counts
// as completed. Completion is sticky: once set it never reverts.
const CompletionThreshold = 80.0

type Tracker struct {
	Store *store.Store
}

func NewTracker(s *store.Store) *Tracker {
	return &Tracker{Store: s}
}

// UpdateOnChat bumps the triple's chat counter and logs the exchange.
// Every tutor exchange is exactly one increment.
func (t *Tracker) UpdateOnChat(userID, subject, topic string) error {
	current, err := t.Store.GetTopicProgress(userID, subject, topic)
	if err != nil {
		return err
	}

	newCount := current.ChatCount + 1
	err = t.Store.UpsertProgress(userID, subject, topic, models.ProgressUpdate{
		ChatCount: &newCount,
	})
	if err != nil {
		return err
	}

	return t.Store.AppendChatSession(userID, subject, topic, 1)
}

// UpdateOnQuiz records a quiz result: best score never decreases, and the
// topic is marked completed once any score reaches the threshold.
func (t *Tracker) UpdateOnQuiz(userID, subject, topic string, score float64, questions, answers interface{}) error {
	current, err := t.Store.GetTopicProgress(userID, subject, topic)
	if err != nil {
		return err
	}

	bestScore := current.BestScore
	if score > bestScore {
		bestScore = score
	}
	completed := current.Completed || score >= CompletionThreshold

	err = t.Store.UpsertProgress(userID, subject, topic, models.ProgressUpdate{
		BestScore: &bestScore,
		Completed: &completed,
	})
	if err != nil {
		return err
	}

	questionsData, _ := json.Marshal(questions)
	answersData, _ := json.Marshal(answers)
	return t.Store.AppendQuizAttempt(userID, subject, topic, score, string(questionsData), string(answersData))
}

// streakWindow is the trailing period the learning streak looks at.
const streakWindow = 7 * 24 * time.Hour

// LearningStreak counts distinct UTC calendar days with at least one chat
// or quiz within the trailing week.
func (t *Tracker) LearningStreak(userID string) (int, error) {
	since := time.Now().Add(-streakWindow)
	dates, err := t.Store.ActivityDates(userID, since)
	if err != nil {
		return 0, err
	}

	days := make(map[string]struct{})
	for _, d := range dates {
		days[d.UTC().Format("2006-01-02")] = struct{}{}
	}
	return len(days), nil
}

// ExportData is the downloadable progress snapshot for one subject.
type ExportData struct {
	UserID          string                          `json:"user_id"`
	Subject         string                          `json:"subject"`
	ExportDate      time.Time                       `json:"export_date"`
	ProgressSummary map[string]models.TopicProgress `json:"progress_summary"`
	QuizHistory     []models.QuizAttempt            `json:"quiz_history"`
	Achievements    []Badge                         `json:"achievements"`
}

func (t *Tracker) ExportData(userID, subject string) (*ExportData, error) {
	summary, err := t.Store.GetProgress(userID, subject)
	if err != nil {
		return nil, err
	}
	history, err := t.Store.QuizHistory(userID, subject, "")
	if err != nil {
		return nil, err
	}
	badges, err := t.Achievements(userID, subject)
	if err != nil {
		return nil, err
	}

	return &ExportData{
		UserID:          userID,
		Subject:         subject,
		ExportDate:      time.Now(),
		ProgressSummary: summary,
		QuizHistory:     history,
		Achievements:    badges,
	}, nil
}
