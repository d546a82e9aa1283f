package progress

import (
	"fmt"

	"studytutor/backend/models"
)

// Trend summarizes performance across quiz attempts.
type Trend struct {
	LatestScore  float64 `json:"latest_score"`
	AverageScore float64 `json:"average_score"`
	Direction    string  `json:"direction"` // improving, declining, stable
	Summary      string  `json:"summary"`
}

// PerformanceTrend compares the two most recent attempts and averages the
// rest. Attempts must be ordered most-recent-first, as QuizHistory returns
// them. Returns nil with fewer than two attempts.
func PerformanceTrend(history []models.QuizAttempt) *Trend {
	if len(history) < 2 {
		return nil
	}

	latest := history[0].Score
	previous := history[1].Score

	direction := "stable"
	switch {
	case latest > previous:
		direction = "improving"
	case latest < previous:
		direction = "declining"
	}

	sum := 0.0
	for _, attempt := range history {
		sum += attempt.Score
	}
	avg := sum / float64(len(history))

	summary := ""
	switch direction {
	case "improving":
		summary = "You're making great progress! Keep up the excellent work."
	case "declining":
		summary = "Consider reviewing the material and identifying areas that need more focus."
	default:
		summary = "Your performance is consistent. Try challenging yourself with harder topics."
	}

	return &Trend{
		LatestScore:  latest,
		AverageScore: avg,
		Direction:    direction,
		Summary:      fmt.Sprintf("Latest %.1f%%, average %.1f%%, trend %s. %s", latest, avg, direction, summary),
	}
}
