package progress

// Badge is one earned achievement.
type Badge struct {
	Name        string `json:"name"`
	Icon        string `json:"icon"`
	Description string `json:"description"`
}

// Achievements evaluates every badge rule against the user's progress in a
// subject and returns all that qualify; the thresholds are not mutually
// exclusive tiers.
func (t *Tracker) Achievements(userID, subject string) ([]Badge, error) {
	userProgress, err := t.Store.GetProgress(userID, subject)
	if err != nil {
		return nil, err
	}

	badges := []Badge{}
	if len(userProgress) == 0 {
		return badges, nil
	}

	completedCount := 0
	totalChats := 0
	var quizScores []float64

	for _, p := range userProgress {
		if p.Completed {
			completedCount++
		}
		if p.BestScore > 0 {
			quizScores = append(quizScores, p.BestScore)
		}
		totalChats += p.ChatCount
	}

	if completedCount >= 1 {
		badges = append(badges, Badge{"First Steps", "🎯", "Completed your first topic"})
	}
	if completedCount >= 3 {
		badges = append(badges, Badge{"Getting Started", "🚀", "Completed 3 topics"})
	}
	if completedCount >= 5 {
		badges = append(badges, Badge{"Dedicated Learner", "📚", "Completed 5 topics"})
	}

	if len(quizScores) > 0 {
		best := quizScores[0]
		allAbove := true
		for _, s := range quizScores {
			if s > best {
				best = s
			}
			if s < 80 {
				allAbove = false
			}
		}
		if best >= 90 {
			badges = append(badges, Badge{"Quiz Master", "🏆", "Scored 90% or higher on a quiz"})
		}
		// Vacuously false with no recorded scores: the all-scores rule only
		// applies once at least one quiz was taken.
		if allAbove {
			badges = append(badges, Badge{"Consistent Performer", "⭐", "All quiz scores above 80%"})
		}
	}

	if totalChats >= 20 {
		badges = append(badges, Badge{"Curious Mind", "🤔", "Asked 20+ questions in chat"})
	}

	return badges, nil
}
