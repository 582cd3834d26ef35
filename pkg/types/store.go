package types

import "errors"

// FailedID is the sentinel returned by id-producing store operations when
// the underlying write fails, alongside a non-nil error.
const FailedID = -1

// LessonStore is the storage contract for lesson, word, and tag rows.
// All operations are synchronous and blocking; the store assumes a single
// caller at a time and provides no internal serialization beyond what the
// backend needs for its own consistency.
type LessonStore interface {
	// AddLesson creates a lesson row and returns its fresh positive id.
	// Returns FailedID and an error when the write fails.
	AddLesson(mainName, subName string) (int, error)

	// AddWord inserts a word row linked to lessonID and returns the word id.
	// Tags carried by the word are not written; see AddTag.
	AddWord(lessonID int, w Word) (int, error)

	// AddTag inserts one tag row linked to wordID. Failures are logged by
	// the backend; the error is returned so callers may inspect it.
	AddTag(wordID int, tag string) error

	// UpdateLesson replaces both name fields of the lesson with the given id.
	// A missing id is a no-op, not an error.
	UpdateLesson(lessonID int, mainName, subName string) error

	// UpdateWord replaces the kana, translation, romaji, and example
	// sentence fields of the word with the given id. Tags are untouched.
	UpdateWord(wordID int, w Word) error

	// DeleteLesson removes a lesson and cascades to its words and their tags.
	DeleteLesson(lessonID int) error

	// DeleteWord removes a word and cascades to its tags.
	DeleteWord(wordID int) error

	// GetAllLessons returns every lesson with words and tags fully
	// populated, in storage iteration order.
	GetAllLessons() ([]Lesson, error)

	// GetLessonNames returns the "{MainName} - {SubName}" label per lesson,
	// in storage iteration order.
	GetLessonNames() ([]string, error)

	// GetWordsInLesson returns the words of one lesson with tags populated.
	GetWordsInLesson(lessonID int) ([]Word, error)
}

// Store operation errors.
var (
	ErrStoreClosed = errors.New("store is closed")
	ErrNotFound    = errors.New("entity not found")
)
