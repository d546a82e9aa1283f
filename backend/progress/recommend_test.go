package progress

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"studytutor/backend/models"
)

// seed writes a progress row directly, bypassing the update rules.
func seed(t *testing.T, tr *Tracker, topic string, completed bool, bestScore float64, chatCount int) {
	t.Helper()
	require.NoError(t, tr.Store.UpsertProgress("u1", "Calculus", topic, models.ProgressUpdate{
		Completed: &completed,
		BestScore: &bestScore,
		ChatCount: &chatCount,
	}))
}

func TestRecommendationsEmptyProgress(t *testing.T) {
	tr := newTestTracker(t)

	recs, err := tr.Recommendations("u1", "Calculus")
	require.NoError(t, err)
	assert.Equal(t, []string{"Start with the first topic to begin your learning journey!"}, recs)
}

func TestRecommendationsOrderAndContent(t *testing.T) {
	tr := newTestTracker(t)

	seed(t, tr, "Limits and Continuity", false, 45, 2) // lowest score, needs review
	seed(t, tr, "Definite Integrals", false, 65, 1)    // low score but not lowest
	seed(t, tr, "Vector Calculus", false, 0, 0)        // unexplored
	seed(t, tr, "Differential Equations", true, 85, 1) // completed

	recs, err := tr.Recommendations("u1", "Calculus")
	require.NoError(t, err)
	require.Len(t, recs, 5)

	// Fixed order: review -> explore-new -> complete-focus -> reinforcement -> nudge.
	assert.Contains(t, recs[0], "Review 'Limits and Continuity'")
	assert.Contains(t, recs[0], "45.0%")
	assert.Contains(t, recs[1], "Start learning: Vector Calculus")
	assert.Contains(t, recs[2], "Focus on completing:")
	assert.Contains(t, recs[3], "Great job completing 1 topic(s)")
	assert.Contains(t, recs[4], "chat tutor more often")
}

func TestRecommendationsReviewPicksLowestScore(t *testing.T) {
	tr := newTestTracker(t)

	seed(t, tr, "Definite Integrals", false, 55, 5)
	seed(t, tr, "Limits and Continuity", false, 30, 5)
	seed(t, tr, "Vector Calculus", false, 69, 5)

	recs, err := tr.Recommendations("u1", "Calculus")
	require.NoError(t, err)
	assert.Contains(t, recs[0], "Limits and Continuity")
	assert.Contains(t, recs[0], "30.0%")
}

func TestRecommendationsSkipsExploreWhenTooManyUntouched(t *testing.T) {
	tr := newTestTracker(t)

	// Four untouched topics: the explore-new rule stays silent.
	seed(t, tr, "Limits and Continuity", false, 0, 0)
	seed(t, tr, "Definite Integrals", false, 0, 0)
	seed(t, tr, "Vector Calculus", false, 0, 0)
	seed(t, tr, "Differential Equations", false, 0, 0)

	recs, err := tr.Recommendations("u1", "Calculus")
	require.NoError(t, err)
	for _, r := range recs {
		assert.NotContains(t, r, "Start learning:")
	}
}

func TestRecommendationsExploreNamesAtMostTwo(t *testing.T) {
	tr := newTestTracker(t)

	seed(t, tr, "Definite Integrals", false, 0, 0)
	seed(t, tr, "Limits and Continuity", false, 0, 0)
	seed(t, tr, "Vector Calculus", false, 0, 0)

	recs, err := tr.Recommendations("u1", "Calculus")
	require.NoError(t, err)

	found := false
	for _, r := range recs {
		if len(r) > 15 && r[:15] == "Start learning:" {
			found = true
			// Two names, alphabetical.
			assert.Contains(t, r, "Definite Integrals, Limits and Continuity")
			assert.NotContains(t, r, "Vector Calculus")
		}
	}
	assert.True(t, found)
}

func TestRecommendationsReinforcementOnly(t *testing.T) {
	tr := newTestTracker(t)

	// Everything completed with high scores and plenty of chatting:
	// only the reinforcement rule fires.
	seed(t, tr, "Limits and Continuity", true, 95, 3)
	seed(t, tr, "Definite Integrals", true, 90, 4)

	recs, err := tr.Recommendations("u1", "Calculus")
	require.NoError(t, err)

	// Reinforcement still fires for completed topics.
	require.Len(t, recs, 1)
	assert.Contains(t, recs[0], "Great job completing 2 topic(s)")
}

func TestStudySuggestionsEmpty(t *testing.T) {
	tr := newTestTracker(t)

	suggestions, err := tr.StudySuggestions("u1", "Calculus")
	require.NoError(t, err)
	assert.Equal(t, []string{"Begin with the fundamentals and work your way up systematically."}, suggestions)
}

func TestStudySuggestionsLowCompletionRate(t *testing.T) {
	tr := newTestTracker(t)

	seed(t, tr, "Limits and Continuity", true, 85, 2)
	seed(t, tr, "Definite Integrals", false, 0, 1)
	seed(t, tr, "Vector Calculus", false, 0, 1)
	seed(t, tr, "Differential Equations", false, 0, 1)

	suggestions, err := tr.StudySuggestions("u1", "Calculus")
	require.NoError(t, err)
	assert.Contains(t, suggestions[0], "systematically")
}

func TestStudySuggestionsLowAverage(t *testing.T) {
	tr := newTestTracker(t)

	seed(t, tr, "Limits and Continuity", true, 60, 2)
	seed(t, tr, "Definite Integrals", true, 55, 1)

	suggestions, err := tr.StudySuggestions("u1", "Calculus")
	require.NoError(t, err)

	joined := ""
	for _, s := range suggestions {
		joined += s + "\n"
	}
	assert.Contains(t, joined, "Spend more time with the chat tutor")
}

func TestStudySuggestionsHighAverage(t *testing.T) {
	tr := newTestTracker(t)

	seed(t, tr, "Limits and Continuity", true, 95, 2)
	seed(t, tr, "Definite Integrals", true, 90, 1)

	suggestions, err := tr.StudySuggestions("u1", "Calculus")
	require.NoError(t, err)
	assert.Contains(t, suggestions[0], "performing excellently")
}

func TestStudySuggestionsTooManyActiveTopics(t *testing.T) {
	tr := newTestTracker(t)

	seed(t, tr, "Limits and Continuity", false, 85, 2)
	seed(t, tr, "Definite Integrals", false, 90, 1)
	seed(t, tr, "Vector Calculus", false, 95, 3)
	seed(t, tr, "Differential Equations", false, 88, 2)

	suggestions, err := tr.StudySuggestions("u1", "Calculus")
	require.NoError(t, err)

	joined := ""
	for _, s := range suggestions {
		joined += s + "\n"
	}
	assert.Contains(t, joined, "fewer topics at once")
}
