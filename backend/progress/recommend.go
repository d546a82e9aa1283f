package progress

import (
	"fmt"
	"sort"
	"strings"

	"studytutor/backend/models"
)

// reviewCutoff: a quiz score below this (but above zero) flags the topic
// for review.
const reviewCutoff = 70.0

// Recommendations derives an ordered list of study advice from the user's
// progress in the subject. Rule order is fixed: review the weakest topic,
// explore untouched topics, focus on the first incomplete one, reinforce
// completions, nudge low chat usage. A generic encouragement is the
// fallback when nothing fires.
func (t *Tracker) Recommendations(userID, subject string) ([]string, error) {
	userProgress, err := t.Store.GetProgress(userID, subject)
	if err != nil {
		return nil, err
	}

	if len(userProgress) == 0 {
		return []string{"Start with the first topic to begin your learning journey!"}, nil
	}

	type scoredTopic struct {
		topic string
		score float64
	}

	var lowScoreTopics []scoredTopic
	var incompleteTopics []string
	var zeroChatTopics []string
	completedCount := 0
	totalChats := 0

	for _, topic := range sortedTopics(userProgress) {
		p := userProgress[topic]

		if p.Completed {
			completedCount++
		} else {
			incompleteTopics = append(incompleteTopics, topic)
		}
		if p.BestScore > 0 && p.BestScore < reviewCutoff {
			lowScoreTopics = append(lowScoreTopics, scoredTopic{topic, p.BestScore})
		}
		if p.ChatCount == 0 {
			zeroChatTopics = append(zeroChatTopics, topic)
		}
		totalChats += p.ChatCount
	}

	var recommendations []string

	if len(lowScoreTopics) > 0 {
		sort.SliceStable(lowScoreTopics, func(i, j int) bool {
			return lowScoreTopics[i].score < lowScoreTopics[j].score
		})
		worst := lowScoreTopics[0]
		recommendations = append(recommendations, fmt.Sprintf(
			"Review '%s' - your quiz score of %.1f%% suggests you need more practice with this topic.",
			worst.topic, worst.score))
	}

	if len(zeroChatTopics) > 0 && len(zeroChatTopics) <= 3 {
		named := zeroChatTopics
		if len(named) > 2 {
			named = named[:2]
		}
		recommendations = append(recommendations, fmt.Sprintf(
			"Start learning: %s - you haven't explored these topics yet.",
			strings.Join(named, ", ")))
	}

	if len(incompleteTopics) > 0 {
		recommendations = append(recommendations, fmt.Sprintf(
			"Focus on completing: %s - aim for a quiz score of 80%% or higher.",
			incompleteTopics[0]))
	}

	if completedCount > 0 {
		recommendations = append(recommendations, fmt.Sprintf(
			"Great job completing %d topic(s)! Consider exploring advanced concepts or helping others.",
			completedCount))
	}

	if totalChats < 5 {
		recommendations = append(recommendations,
			"Try using the chat tutor more often - asking questions helps reinforce learning.")
	}

	if len(recommendations) == 0 {
		recommendations = []string{"You're doing great! Keep up the excellent work!"}
	}
	return recommendations, nil
}

// StudySuggestions looks at aggregate patterns rather than single topics:
// overall completion rate, average quiz performance and how many topics are
// in flight at once.
func (t *Tracker) StudySuggestions(userID, subject string) ([]string, error) {
	userProgress, err := t.Store.GetProgress(userID, subject)
	if err != nil {
		return nil, err
	}

	if len(userProgress) == 0 {
		return []string{"Begin with the fundamentals and work your way up systematically."}, nil
	}

	completedCount := 0
	quizTaken := 0
	scoreSum := 0.0
	activeTopics := 0

	for _, p := range userProgress {
		if p.Completed {
			completedCount++
		}
		if p.BestScore > 0 {
			scoreSum += p.BestScore
			quizTaken++
		}
		if p.ChatCount > 0 && !p.Completed {
			activeTopics++
		}
	}

	completionRate := float64(completedCount) / float64(len(userProgress))
	avgScore := 0.0
	if quizTaken > 0 {
		avgScore = scoreSum / float64(quizTaken)
	}

	var suggestions []string

	if completionRate < 0.3 {
		suggestions = append(suggestions,
			"Focus on completing topics systematically rather than jumping around.")
	}
	if avgScore < 70 && quizTaken > 0 {
		suggestions = append(suggestions,
			"Spend more time with the chat tutor before taking quizzes to build stronger understanding.")
	}
	if avgScore > 85 {
		suggestions = append(suggestions,
			"You're performing excellently! Consider exploring advanced topics or teaching others.")
	}
	if activeTopics > 3 {
		suggestions = append(suggestions,
			"Consider focusing on fewer topics at once for deeper understanding.")
	}

	if len(suggestions) == 0 {
		suggestions = []string{"Keep up the great work! Your learning approach is effective."}
	}
	return suggestions, nil
}

// sortedTopics gives map iteration a stable order so recommendation text
// is deterministic.
func sortedTopics(progress map[string]models.TopicProgress) []string {
	topics := make([]string, 0, len(progress))
	for topic := range progress {
		topics = append(topics, topic)
	}
	sort.Strings(topics)
	return topics
}
