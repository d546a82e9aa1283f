package store

import (
	"time"

	"studytutor/backend/models"
)

// AppendQuizAttempt logs one quiz submission. Attempts are immutable.
func (s *Store) AppendQuizAttempt(userID, subject, topic string, score float64, questionsData, answersData string) error {
	attempt := models.QuizAttempt{
		UserID:        userID,
		Subject:       subject,
		Topic:         topic,
		Score:         score,
		QuestionsData: questionsData,
		AnswersData:   answersData,
		AttemptDate:   time.Now(),
	}
	return s.DB.Create(&attempt).Error
}

// AppendChatSession logs one tutor exchange.
func (s *Store) AppendChatSession(userID, subject, topic string, messageCount int) error {
	session := models.ChatSession{
		UserID:       userID,
		Subject:      subject,
		Topic:        topic,
		MessageCount: messageCount,
		SessionDate:  time.Now(),
	}
	return s.DB.Create(&session).Error
}

// QuizHistory returns attempts most-recent-first. Topic narrows the result
// when non-empty.
func (s *Store) QuizHistory(userID, subject, topic string) ([]models.QuizAttempt, error) {
	query := s.DB.Where("user_id = ? AND subject = ?", userID, subject)
	if topic != "" {
		query = query.Where("topic = ?", topic)
	}

	var attempts []models.QuizAttempt
	if err := query.Order("attempt_date DESC").Find(&attempts).Error; err != nil {
		return nil, err
	}
	return attempts, nil
}

// ActivityDates returns every activity timestamp (chat or quiz) for the user
// at or after since. The streak is computed from these, not from the
// progress table, whose last_updated only reflects the latest write.
func (s *Store) ActivityDates(userID string, since time.Time) ([]time.Time, error) {
	var chats []models.ChatSession
	if err := s.DB.Where("user_id = ? AND session_date >= ?", userID, since).
		Find(&chats).Error; err != nil {
		return nil, err
	}

	var attempts []models.QuizAttempt
	if err := s.DB.Where("user_id = ? AND attempt_date >= ?", userID, since).
		Find(&attempts).Error; err != nil {
		return nil, err
	}

	dates := make([]time.Time, 0, len(chats)+len(attempts))
	for _, c := range chats {
		dates = append(dates, c.SessionDate)
	}
	for _, a := range attempts {
		dates = append(dates, a.AttemptDate)
	}
	return dates, nil
}
