package store

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"studytutor/backend/models"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{TranslateError: true})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.ProgressRecord{},
		&models.QuizAttempt{},
		&models.ChatSession{},
	))

	return New(db)
}

func TestCreateUserAndAuthenticate(t *testing.T) {
	s := newTestStore(t)

	user, err := s.CreateUser("alice", "alice@example.com", "password123", "Alice A")
	require.NoError(t, err)
	assert.NotEmpty(t, user.UserID)
	assert.NotEqual(t, "password123", user.PasswordHash)

	got, err := s.Authenticate("alice", "password123")
	require.NoError(t, err)
	assert.Equal(t, user.UserID, got.UserID)
}

func TestAuthenticateInvalid(t *testing.T) {
	s := newTestStore(t)

	_, err := s.CreateUser("alice", "alice@example.com", "password123", "")
	require.NoError(t, err)

	// Wrong password and unknown user look identical to the caller.
	_, err = s.Authenticate("alice", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = s.Authenticate("nobody", "password123")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestCreateUserDuplicate(t *testing.T) {
	s := newTestStore(t)

	_, err := s.CreateUser("alice", "alice@example.com", "password123", "")
	require.NoError(t, err)

	_, err = s.CreateUser("alice", "other@example.com", "password123", "")
	assert.ErrorIs(t, err, ErrDuplicateUser)

	_, err = s.CreateUser("bob", "alice@example.com", "password123", "")
	assert.ErrorIs(t, err, ErrDuplicateUser)
}

func TestEnsureUserCreatesGuestOnce(t *testing.T) {
	s := newTestStore(t)

	require.NoError(t, s.EnsureUser("0123456789abcdef"))
	require.NoError(t, s.EnsureUser("0123456789abcdef"))

	user, err := s.GetUserByID("0123456789abcdef")
	require.NoError(t, err)
	assert.Equal(t, "guest_01234567", user.Username)
}

func TestGetTopicProgressDefault(t *testing.T) {
	s := newTestStore(t)

	p, err := s.GetTopicProgress("u1", "Calculus", "Limits and Continuity")
	require.NoError(t, err)
	assert.Equal(t, models.TopicProgress{Completed: false, BestScore: 0, ChatCount: 0}, p)
}

func TestUpsertProgressPartialMerge(t *testing.T) {
	s := newTestStore(t)

	score := 65.0
	require.NoError(t, s.UpsertProgress("u1", "Calculus", "Limits and Continuity",
		models.ProgressUpdate{BestScore: &score}))

	// Updating only chat_count must leave best_score untouched.
	chats := 3
	require.NoError(t, s.UpsertProgress("u1", "Calculus", "Limits and Continuity",
		models.ProgressUpdate{ChatCount: &chats}))

	p, err := s.GetTopicProgress("u1", "Calculus", "Limits and Continuity")
	require.NoError(t, err)
	assert.Equal(t, 65.0, p.BestScore)
	assert.Equal(t, 3, p.ChatCount)
	assert.False(t, p.Completed)
}

func TestUpsertProgressRefreshesLastUpdated(t *testing.T) {
	s := newTestStore(t)

	chats := 1
	require.NoError(t, s.UpsertProgress("u1", "Physics", "Energy and Work",
		models.ProgressUpdate{ChatCount: &chats}))

	var row models.ProgressRecord
	require.NoError(t, s.DB.Where("user_id = ?", "u1").First(&row).Error)
	first := row.LastUpdated

	chats = 2
	require.NoError(t, s.UpsertProgress("u1", "Physics", "Energy and Work",
		models.ProgressUpdate{ChatCount: &chats}))

	require.NoError(t, s.DB.Where("user_id = ?", "u1").First(&row).Error)
	assert.False(t, row.LastUpdated.Before(first))
	assert.Equal(t, 2, row.ChatCount)
}

func TestQuizHistoryMostRecentFirst(t *testing.T) {
	s := newTestStore(t)

	require.NoError(t, s.AppendQuizAttempt("u1", "Calculus", "Definite Integrals", 60, "{}", "{}"))
	require.NoError(t, s.AppendQuizAttempt("u1", "Calculus", "Definite Integrals", 80, "{}", "{}"))

	// Force distinct timestamps; SQLite stores to millisecond precision.
	s.DB.Model(&models.QuizAttempt{}).Where("score = ?", 60.0).
		Update("attempt_date", time.Now().Add(-time.Hour))

	attempts, err := s.QuizHistory("u1", "Calculus", "Definite Integrals")
	require.NoError(t, err)
	require.Len(t, attempts, 2)
	assert.Equal(t, 80.0, attempts[0].Score)
	assert.Equal(t, 60.0, attempts[1].Score)
}

func TestQuizHistoryTopicFilter(t *testing.T) {
	s := newTestStore(t)

	require.NoError(t, s.AppendQuizAttempt("u1", "Calculus", "Definite Integrals", 60, "{}", "{}"))
	require.NoError(t, s.AppendQuizAttempt("u1", "Calculus", "Vector Calculus", 90, "{}", "{}"))

	attempts, err := s.QuizHistory("u1", "Calculus", "Vector Calculus")
	require.NoError(t, err)
	require.Len(t, attempts, 1)
	assert.Equal(t, "Vector Calculus", attempts[0].Topic)

	all, err := s.QuizHistory("u1", "Calculus", "")
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestActivityDates(t *testing.T) {
	s := newTestStore(t)

	require.NoError(t, s.AppendChatSession("u1", "Physics", "Energy and Work", 1))
	require.NoError(t, s.AppendQuizAttempt("u1", "Physics", "Energy and Work", 75, "{}", "{}"))
	require.NoError(t, s.AppendChatSession("u2", "Physics", "Energy and Work", 1))

	dates, err := s.ActivityDates("u1", time.Now().Add(-time.Hour))
	require.NoError(t, err)
	assert.Len(t, dates, 2)

	none, err := s.ActivityDates("u1", time.Now().Add(time.Hour))
	require.NoError(t, err)
	assert.Empty(t, none)
}
