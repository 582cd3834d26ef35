// Package lessons provides the Manager, which composes LessonStore calls
// into multi-entity writes: a lesson create implies one word create per word
// and one tag create per tag, all in input order.
package lessons

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/kotoba-dev/kotoba/pkg/types"
)

// Manager orchestrates multi-step writes against a LessonStore. It performs
// no compensating rollback: when a sub-write fails, rows written earlier in
// the sequence remain (the store keeps single-statement atomicity only).
// Callers must serialize access; the Manager holds no locks.
type Manager struct {
	store  types.LessonStore
	logger *slog.Logger
}

// NewManager returns a Manager over the given store. A nil logger discards.
func NewManager(store types.LessonStore, logger *slog.Logger) *Manager {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Manager{store: store, logger: logger}
}

// AddLesson persists a lesson, then each of its words in order, then each
// word's tags in order. Returns the lesson id assigned by the store.
// A failed word or tag write aborts the remaining sub-writes for this
// lesson; rows already written stay in place.
func (m *Manager) AddLesson(lesson types.Lesson) (int, error) {
	lessonID, err := m.store.AddLesson(lesson.MainName, lesson.SubName)
	if err != nil {
		return types.FailedID, fmt.Errorf("adding lesson %q: %w", lesson.Name(), err)
	}

	for _, word := range lesson.Words {
		wordID, err := m.store.AddWord(lessonID, word)
		if err != nil {
			return lessonID, fmt.Errorf("adding word %q to lesson %d: %w", word.Kana, lessonID, err)
		}
		for _, tag := range word.Tags {
			if err := m.store.AddTag(wordID, tag); err != nil {
				return lessonID, fmt.Errorf("adding tag %q to word %d: %w", tag, wordID, err)
			}
		}
	}

	m.logger.Info("added lesson", "id", lessonID, "name", lesson.Name(), "words", len(lesson.Words))
	return lessonID, nil
}

// AddLessons applies AddLesson to each lesson in order. A failing lesson
// does not stop the remaining ones; all errors are joined and returned.
func (m *Manager) AddLessons(lessons []types.Lesson) error {
	var errs []error
	for _, lesson := range lessons {
		if _, err := m.AddLesson(lesson); err != nil {
			m.logger.Error("add lesson failed", "name", lesson.Name(), "err", err)
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// RenameLessons updates both name fields of each lesson using its existing
// id. Words are untouched. Errors do not stop the remaining renames.
func (m *Manager) RenameLessons(lessons []types.Lesson) error {
	var errs []error
	for _, lesson := range lessons {
		if err := m.store.UpdateLesson(lesson.ID, lesson.MainName, lesson.SubName); err != nil {
			m.logger.Error("rename lesson failed", "id", lesson.ID, "err", err)
			errs = append(errs, fmt.Errorf("renaming lesson %d: %w", lesson.ID, err))
		}
	}
	return errors.Join(errs...)
}

// DeleteLessons deletes each lesson by id, continuing past failures.
func (m *Manager) DeleteLessons(ids []int) error {
	var errs []error
	for _, id := range ids {
		if err := m.store.DeleteLesson(id); err != nil {
			m.logger.Error("delete lesson failed", "id", id, "err", err)
			errs = append(errs, fmt.Errorf("deleting lesson %d: %w", id, err))
		}
	}
	return errors.Join(errs...)
}

// DeleteWords deletes each word by id, continuing past failures.
func (m *Manager) DeleteWords(ids []int) error {
	var errs []error
	for _, id := range ids {
		if err := m.store.DeleteWord(id); err != nil {
			m.logger.Error("delete word failed", "id", id, "err", err)
			errs = append(errs, fmt.Errorf("deleting word %d: %w", id, err))
		}
	}
	return errors.Join(errs...)
}

// UpdateWord replaces the text fields of one word. Tags are untouched.
func (m *Manager) UpdateWord(wordID int, w types.Word) error {
	if err := m.store.UpdateWord(wordID, w); err != nil {
		return fmt.Errorf("updating word %d: %w", wordID, err)
	}
	return nil
}

// GetAllLessons returns the store's lessons exactly as supplied: a pure
// pass-through read.
func (m *Manager) GetAllLessons() ([]types.Lesson, error) {
	return m.store.GetAllLessons()
}

// GetLessonNames returns the store's display labels, pass-through.
func (m *Manager) GetLessonNames() ([]string, error) {
	return m.store.GetLessonNames()
}
