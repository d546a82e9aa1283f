package store

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"studytutor/backend/models"
)

// GetProgress returns topic -> progress for every topic the user has touched
// in the subject.
func (s *Store) GetProgress(userID, subject string) (map[string]models.TopicProgress, error) {
	var rows []models.ProgressRecord
	err := s.DB.Where("user_id = ? AND subject = ?", userID, subject).Find(&rows).Error
	if err != nil {
		return nil, err
	}

	progress := make(map[string]models.TopicProgress, len(rows))
	for _, row := range rows {
		progress[row.Topic] = models.TopicProgress{
			Completed: row.Completed,
			BestScore: row.BestScore,
			ChatCount: row.ChatCount,
		}
	}
	return progress, nil
}

// GetTopicProgress returns the record for one triple, or the zero-value
// default when the user has not touched the topic yet.
func (s *Store) GetTopicProgress(userID, subject, topic string) (models.TopicProgress, error) {
	var row models.ProgressRecord
	err := s.DB.Where("user_id = ? AND subject = ? AND topic = ?", userID, subject, topic).
		First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.TopicProgress{}, nil
		}
		return models.TopicProgress{}, err
	}

	return models.TopicProgress{
		Completed: row.Completed,
		BestScore: row.BestScore,
		ChatCount: row.ChatCount,
	}, nil
}

// UpsertProgress merges only the fields set in update into the triple's row,
// creating it when absent. last_updated is refreshed either way.
func (s *Store) UpsertProgress(userID, subject, topic string, update models.ProgressUpdate) error {
	now := time.Now()

	var row models.ProgressRecord
	err := s.DB.Where("user_id = ? AND subject = ? AND topic = ?", userID, subject, topic).
		First(&row).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		row = models.ProgressRecord{
			UserID:      userID,
			Subject:     subject,
			Topic:       topic,
			LastUpdated: now,
		}
		applyUpdate(&row, update)
		return s.DB.Create(&row).Error
	}
	if err != nil {
		return err
	}

	fields := map[string]interface{}{"last_updated": now}
	if update.Completed != nil {
		fields["completed"] = *update.Completed
	}
	if update.BestScore != nil {
		fields["best_score"] = *update.BestScore
	}
	if update.ChatCount != nil {
		fields["chat_count"] = *update.ChatCount
	}

	return s.DB.Model(&models.ProgressRecord{}).Where("id = ?", row.ID).Updates(fields).Error
}

func applyUpdate(row *models.ProgressRecord, update models.ProgressUpdate) {
	if update.Completed != nil {
		row.Completed = *update.Completed
	}
	if update.BestScore != nil {
		row.BestScore = *update.BestScore
	}
	if update.ChatCount != nil {
		row.ChatCount = *update.ChatCount
	}
}
