package progress

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func badgeNames(badges []Badge) []string {
	names := make([]string, len(badges))
	for i, b := range badges {
		names[i] = b.Name
	}
	return names
}

func TestAchievementsEmpty(t *testing.T) {
	tr := newTestTracker(t)

	badges, err := tr.Achievements("u1", "Calculus")
	require.NoError(t, err)
	assert.Empty(t, badges)
}

func TestAchievementsCompletionTiersStack(t *testing.T) {
	tr := newTestTracker(t)

	topics := []string{
		"Limits and Continuity",
		"Definite Integrals",
		"Vector Calculus",
		"Differential Equations",
		"Sequences and Series",
	}
	for _, topic := range topics {
		seed(t, tr, topic, true, 85, 1)
	}

	badges, err := tr.Achievements("u1", "Calculus")
	require.NoError(t, err)

	names := badgeNames(badges)
	// All tiers are returned, not just the highest.
	assert.Contains(t, names, "First Steps")
	assert.Contains(t, names, "Getting Started")
	assert.Contains(t, names, "Dedicated Learner")
}

func TestAchievementsQuizMaster(t *testing.T) {
	tr := newTestTracker(t)

	seed(t, tr, "Limits and Continuity", false, 89.9, 1)
	badges, err := tr.Achievements("u1", "Calculus")
	require.NoError(t, err)
	assert.NotContains(t, badgeNames(badges), "Quiz Master")

	seed(t, tr, "Definite Integrals", false, 90, 1)
	badges, err = tr.Achievements("u1", "Calculus")
	require.NoError(t, err)
	assert.Contains(t, badgeNames(badges), "Quiz Master")
}

func TestAchievementsConsistentPerformer(t *testing.T) {
	tr := newTestTracker(t)

	seed(t, tr, "Limits and Continuity", false, 85, 1)
	seed(t, tr, "Definite Integrals", false, 92, 1)

	badges, err := tr.Achievements("u1", "Calculus")
	require.NoError(t, err)
	assert.Contains(t, badgeNames(badges), "Consistent Performer")

	// One score below 80 breaks the badge.
	seed(t, tr, "Vector Calculus", false, 60, 1)
	badges, err = tr.Achievements("u1", "Calculus")
	require.NoError(t, err)
	assert.NotContains(t, badgeNames(badges), "Consistent Performer")
}

func TestAchievementsConsistentPerformerVacuouslyFalse(t *testing.T) {
	tr := newTestTracker(t)

	// Activity but no quiz scores recorded: the all-scores rule must not fire.
	seed(t, tr, "Limits and Continuity", false, 0, 10)

	badges, err := tr.Achievements("u1", "Calculus")
	require.NoError(t, err)
	assert.NotContains(t, badgeNames(badges), "Consistent Performer")
}

func TestAchievementsCuriousMind(t *testing.T) {
	tr := newTestTracker(t)

	seed(t, tr, "Limits and Continuity", false, 0, 12)
	seed(t, tr, "Definite Integrals", false, 0, 7)

	badges, err := tr.Achievements("u1", "Calculus")
	require.NoError(t, err)
	assert.NotContains(t, badgeNames(badges), "Curious Mind")

	seed(t, tr, "Vector Calculus", false, 0, 1)
	badges, err = tr.Achievements("u1", "Calculus")
	require.NoError(t, err)
	assert.Contains(t, badgeNames(badges), "Curious Mind")
}
