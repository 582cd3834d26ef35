package sqlite

import (
	"fmt"

	"github.com/kotoba-dev/kotoba/pkg/types"
)

// AddLesson creates a lesson row and returns the autoincrement id assigned
// by SQLite. On failure it returns FailedID alongside the error.
func (s *Store) AddLesson(mainName, subName string) (int, error) {
	if err := s.ready(); err != nil {
		return types.FailedID, err
	}

	res, err := s.db.Exec(
		"INSERT INTO lessons (main_name, sub_name) VALUES (?, ?)",
		mainName, subName,
	)
	if err != nil {
		s.logger.Error("add lesson failed", "main_name", mainName, "sub_name", subName, "err", err)
		return types.FailedID, fmt.Errorf("adding lesson: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		s.logger.Error("add lesson failed", "err", err)
		return types.FailedID, fmt.Errorf("reading lesson id: %w", err)
	}

	s.logger.Info("added lesson", "id", id, "main_name", mainName, "sub_name", subName)
	return int(id), nil
}

// UpdateLesson replaces both name fields of the lesson with the given id.
// A missing id updates zero rows and is not an error.
func (s *Store) UpdateLesson(lessonID int, mainName, subName string) error {
	if err := s.ready(); err != nil {
		return err
	}

	_, err := s.db.Exec(
		"UPDATE lessons SET main_name = ?, sub_name = ? WHERE id = ?",
		mainName, subName, lessonID,
	)
	if err != nil {
		s.logger.Error("update lesson failed", "id", lessonID, "err", err)
		return fmt.Errorf("updating lesson %d: %w", lessonID, err)
	}

	s.logger.Info("updated lesson", "id", lessonID, "main_name", mainName, "sub_name", subName)
	return nil
}

// DeleteLesson removes a lesson and cascades to its words and their tags.
// The cascade is explicit and runs inside one transaction.
func (s *Store) DeleteLesson(lessonID int) error {
	if err := s.ready(); err != nil {
		return err
	}

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(
		"DELETE FROM tags WHERE word_id IN (SELECT id FROM words WHERE lesson_id = ?)",
		lessonID,
	); err != nil {
		s.logger.Error("delete lesson tags failed", "lesson_id", lessonID, "err", err)
		return fmt.Errorf("deleting lesson tags: %w", err)
	}
	if _, err := tx.Exec("DELETE FROM words WHERE lesson_id = ?", lessonID); err != nil {
		s.logger.Error("delete lesson words failed", "lesson_id", lessonID, "err", err)
		return fmt.Errorf("deleting lesson words: %w", err)
	}
	if _, err := tx.Exec("DELETE FROM lessons WHERE id = ?", lessonID); err != nil {
		s.logger.Error("delete lesson failed", "id", lessonID, "err", err)
		return fmt.Errorf("deleting lesson %d: %w", lessonID, err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing lesson deletion: %w", err)
	}

	s.logger.Info("deleted lesson", "id", lessonID)
	return nil
}

// GetAllLessons returns every lesson with its words and each word's tags
// fully populated, in id order.
func (s *Store) GetAllLessons() ([]types.Lesson, error) {
	if err := s.ready(); err != nil {
		return nil, err
	}

	rows, err := s.db.Query("SELECT id, main_name, sub_name FROM lessons")
	if err != nil {
		s.logger.Error("get all lessons failed", "err", err)
		return nil, fmt.Errorf("querying lessons: %w", err)
	}
	defer rows.Close()

	var lessons []types.Lesson
	for rows.Next() {
		var l types.Lesson
		if err := rows.Scan(&l.ID, &l.MainName, &l.SubName); err != nil {
			return nil, fmt.Errorf("scanning lesson: %w", err)
		}
		lessons = append(lessons, l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating lessons: %w", err)
	}

	for i := range lessons {
		words, err := s.GetWordsInLesson(lessons[i].ID)
		if err != nil {
			return nil, err
		}
		lessons[i].Words = words
	}

	return lessons, nil
}

// GetLessonNames returns the "{main_name} - {sub_name}" label per lesson,
// in id order.
func (s *Store) GetLessonNames() ([]string, error) {
	if err := s.ready(); err != nil {
		return nil, err
	}

	rows, err := s.db.Query("SELECT main_name, sub_name FROM lessons")
	if err != nil {
		s.logger.Error("get lesson names failed", "err", err)
		return nil, fmt.Errorf("querying lesson names: %w", err)
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var main, sub string
		if err := rows.Scan(&main, &sub); err != nil {
			return nil, fmt.Errorf("scanning lesson name: %w", err)
		}
		names = append(names, main+" - "+sub)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating lesson names: %w", err)
	}

	return names, nil
}
