package sqlite

import (
	"fmt"

	"github.com/kotoba-dev/kotoba/pkg/types"
)

// AddWord inserts a word row linked to lessonID and returns the assigned id.
// Tags carried by w are not written here; callers add them via AddTag so
// that tag rows are created in input order.
func (s *Store) AddWord(lessonID int, w types.Word) (int, error) {
	if err := s.ready(); err != nil {
		return types.FailedID, err
	}

	res, err := s.db.Exec(
		"INSERT INTO words (lesson_id, kana, translation, romaji, example_sentence) VALUES (?, ?, ?, ?, ?)",
		lessonID, w.Kana, w.Translation, w.Romaji, w.ExampleSentence,
	)
	if err != nil {
		s.logger.Error("add word failed", "lesson_id", lessonID, "kana", w.Kana, "err", err)
		return types.FailedID, fmt.Errorf("adding word: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		s.logger.Error("add word failed", "err", err)
		return types.FailedID, fmt.Errorf("reading word id: %w", err)
	}

	s.logger.Info("added word", "id", id, "lesson_id", lessonID)
	return int(id), nil
}

// AddTag inserts one tag row linked to wordID. Failures are logged; the
// error is also returned so callers may inspect it.
func (s *Store) AddTag(wordID int, tag string) error {
	if err := s.ready(); err != nil {
		return err
	}

	if _, err := s.db.Exec(
		"INSERT INTO tags (word_id, tag) VALUES (?, ?)",
		wordID, tag,
	); err != nil {
		s.logger.Error("add tag failed", "word_id", wordID, "tag", tag, "err", err)
		return fmt.Errorf("adding tag: %w", err)
	}

	s.logger.Info("added tag", "word_id", wordID, "tag", tag)
	return nil
}

// UpdateWord replaces the kana, translation, romaji, and example sentence
// fields of the word with the given id. Tags are untouched; a missing id
// updates zero rows and is not an error.
func (s *Store) UpdateWord(wordID int, w types.Word) error {
	if err := s.ready(); err != nil {
		return err
	}

	_, err := s.db.Exec(
		"UPDATE words SET kana = ?, translation = ?, romaji = ?, example_sentence = ? WHERE id = ?",
		w.Kana, w.Translation, w.Romaji, w.ExampleSentence, wordID,
	)
	if err != nil {
		s.logger.Error("update word failed", "id", wordID, "err", err)
		return fmt.Errorf("updating word %d: %w", wordID, err)
	}

	s.logger.Info("updated word", "id", wordID)
	return nil
}

// DeleteWord removes a word and cascades to its tags in one transaction.
func (s *Store) DeleteWord(wordID int) error {
	if err := s.ready(); err != nil {
		return err
	}

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM tags WHERE word_id = ?", wordID); err != nil {
		s.logger.Error("delete word tags failed", "word_id", wordID, "err", err)
		return fmt.Errorf("deleting word tags: %w", err)
	}
	if _, err := tx.Exec("DELETE FROM words WHERE id = ?", wordID); err != nil {
		s.logger.Error("delete word failed", "id", wordID, "err", err)
		return fmt.Errorf("deleting word %d: %w", wordID, err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing word deletion: %w", err)
	}

	s.logger.Info("deleted word", "id", wordID)
	return nil
}

// GetWordsInLesson returns the words of one lesson with tags populated,
// in id order.
func (s *Store) GetWordsInLesson(lessonID int) ([]types.Word, error) {
	if err := s.ready(); err != nil {
		return nil, err
	}

	rows, err := s.db.Query(
		"SELECT id, kana, translation, romaji, example_sentence FROM words WHERE lesson_id = ?",
		lessonID,
	)
	if err != nil {
		s.logger.Error("get words failed", "lesson_id", lessonID, "err", err)
		return nil, fmt.Errorf("querying words for lesson %d: %w", lessonID, err)
	}
	defer rows.Close()

	var words []types.Word
	for rows.Next() {
		var w types.Word
		if err := rows.Scan(&w.ID, &w.Kana, &w.Translation, &w.Romaji, &w.ExampleSentence); err != nil {
			return nil, fmt.Errorf("scanning word: %w", err)
		}
		words = append(words, w)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating words: %w", err)
	}

	for i := range words {
		tags, err := s.wordTags(words[i].ID)
		if err != nil {
			return nil, err
		}
		words[i].Tags = tags
	}

	return words, nil
}

// wordTags returns the tags of one word in insertion order.
func (s *Store) wordTags(wordID int) ([]string, error) {
	rows, err := s.db.Query("SELECT tag FROM tags WHERE word_id = ?", wordID)
	if err != nil {
		return nil, fmt.Errorf("querying tags for word %d: %w", wordID, err)
	}
	defer rows.Close()

	var tags []string
	for rows.Next() {
		var tag string
		if err := rows.Scan(&tag); err != nil {
			return nil, fmt.Errorf("scanning tag: %w", err)
		}
		tags = append(tags, tag)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating tags: %w", err)
	}

	return tags, nil
}
