package sqlite

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kotoba-dev/kotoba/pkg/types"
)

// setupStore opens a fresh database in a temp directory and closes it when
// the test finishes.
func setupStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "kotoba.db"), nil)
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenCreatesSchema(t *testing.T) {
	s := setupStore(t)

	// All three tables exist and are empty.
	lessons, err := s.GetAllLessons()
	require.NoError(t, err)
	assert.Empty(t, lessons)

	names, err := s.GetLessonNames()
	require.NoError(t, err)
	assert.Empty(t, names)
}

func TestOpenIsIdempotentOnExistingDatabase(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "kotoba.db")

	s, err := Open(path, nil)
	require.NoError(t, err)
	id, err := s.AddLesson("Main", "Sub")
	require.NoError(t, err)
	require.NoError(t, s.Close())

	// Reopening keeps existing rows; CREATE TABLE IF NOT EXISTS is a no-op.
	s2, err := Open(path, nil)
	require.NoError(t, err)
	defer s2.Close()

	lessons, err := s2.GetAllLessons()
	require.NoError(t, err)
	require.Len(t, lessons, 1)
	assert.Equal(t, id, lessons[0].ID)
}

func TestCloseIsIdempotent(t *testing.T) {
	s, err := Open(filepath.Join(t.TempDir(), "kotoba.db"), nil)
	require.NoError(t, err)

	require.NoError(t, s.Close())
	require.NoError(t, s.Close())

	_, err = s.AddLesson("Main", "Sub")
	assert.ErrorIs(t, err, types.ErrStoreClosed)

	_, err = s.GetAllLessons()
	assert.ErrorIs(t, err, types.ErrStoreClosed)
}

func TestAddLessonReturnsFreshIDs(t *testing.T) {
	s := setupStore(t)

	id1, err := s.AddLesson("Main Name", "Sub Name")
	require.NoError(t, err)
	assert.Equal(t, 1, id1)

	id2, err := s.AddLesson("Main Name", "Sub Name")
	require.NoError(t, err)
	assert.Equal(t, 2, id2)
}

func TestUpdateLesson(t *testing.T) {
	s := setupStore(t)

	id, err := s.AddLesson("Old Main", "Old Sub")
	require.NoError(t, err)

	require.NoError(t, s.UpdateLesson(id, "New Main", "New Sub"))

	names, err := s.GetLessonNames()
	require.NoError(t, err)
	assert.Equal(t, []string{"New Main - New Sub"}, names)
}

func TestUpdateLessonMissingIDIsNoOp(t *testing.T) {
	s := setupStore(t)

	require.NoError(t, s.UpdateLesson(42, "Main", "Sub"))

	names, err := s.GetLessonNames()
	require.NoError(t, err)
	assert.Empty(t, names)
}

func TestGetLessonNamesFormat(t *testing.T) {
	s := setupStore(t)

	_, err := s.AddLesson("Grammar", "Particles")
	require.NoError(t, err)
	_, err = s.AddLesson("Vocabulary", "Animals")
	require.NoError(t, err)

	names, err := s.GetLessonNames()
	require.NoError(t, err)
	assert.Equal(t, []string{"Grammar - Particles", "Vocabulary - Animals"}, names)
}

func TestWordRoundTrip(t *testing.T) {
	s := setupStore(t)

	lessonID, err := s.AddLesson("Main", "Sub")
	require.NoError(t, err)

	wordID, err := s.AddWord(lessonID, types.Word{
		Kana:            "ねこ",
		Translation:     "cat",
		Romaji:          "neko",
		ExampleSentence: "ねこがいます",
	})
	require.NoError(t, err)
	require.NoError(t, s.AddTag(wordID, "animal"))
	require.NoError(t, s.AddTag(wordID, "n5"))

	words, err := s.GetWordsInLesson(lessonID)
	require.NoError(t, err)
	require.Len(t, words, 1)

	got := words[0]
	assert.Equal(t, wordID, got.ID)
	assert.Equal(t, "ねこ", got.Kana)
	assert.Equal(t, "cat", got.Translation)
	assert.Equal(t, "neko", got.Romaji)
	assert.Equal(t, "ねこがいます", got.ExampleSentence)
	assert.Equal(t, []string{"animal", "n5"}, got.Tags, "tags keep insertion order")
}

func TestUpdateWordLeavesTagsAlone(t *testing.T) {
	s := setupStore(t)

	lessonID, err := s.AddLesson("Main", "Sub")
	require.NoError(t, err)
	wordID, err := s.AddWord(lessonID, types.Word{Kana: "いぬ", Translation: "dog"})
	require.NoError(t, err)
	require.NoError(t, s.AddTag(wordID, "animal"))

	require.NoError(t, s.UpdateWord(wordID, types.Word{
		Kana:            "いぬ",
		Translation:     "hound",
		Romaji:          "inu",
		ExampleSentence: "いぬがいます",
	}))

	words, err := s.GetWordsInLesson(lessonID)
	require.NoError(t, err)
	require.Len(t, words, 1)
	assert.Equal(t, "hound", words[0].Translation)
	assert.Equal(t, "inu", words[0].Romaji)
	assert.Equal(t, []string{"animal"}, words[0].Tags)
}

func TestDeleteWordCascadesToTags(t *testing.T) {
	s := setupStore(t)

	lessonID, err := s.AddLesson("Main", "Sub")
	require.NoError(t, err)
	wordID, err := s.AddWord(lessonID, types.Word{Kana: "いぬ", Translation: "dog"})
	require.NoError(t, err)
	require.NoError(t, s.AddTag(wordID, "animal"))
	keepID, err := s.AddWord(lessonID, types.Word{Kana: "ねこ", Translation: "cat"})
	require.NoError(t, err)
	require.NoError(t, s.AddTag(keepID, "animal"))

	require.NoError(t, s.DeleteWord(wordID))

	words, err := s.GetWordsInLesson(lessonID)
	require.NoError(t, err)
	require.Len(t, words, 1)
	assert.Equal(t, keepID, words[0].ID)

	// No orphaned tag rows remain for the deleted word.
	var count int
	require.NoError(t, s.db.QueryRow("SELECT COUNT(*) FROM tags WHERE word_id = ?", wordID).Scan(&count))
	assert.Zero(t, count)
}

func TestDeleteLessonCascadesToWordsAndTags(t *testing.T) {
	s := setupStore(t)

	lessonID, err := s.AddLesson("Main", "Sub")
	require.NoError(t, err)
	wordID, err := s.AddWord(lessonID, types.Word{Kana: "ねこ", Translation: "cat"})
	require.NoError(t, err)
	require.NoError(t, s.AddTag(wordID, "animal"))

	otherID, err := s.AddLesson("Other", "Lesson")
	require.NoError(t, err)
	otherWordID, err := s.AddWord(otherID, types.Word{Kana: "いぬ", Translation: "dog"})
	require.NoError(t, err)
	require.NoError(t, s.AddTag(otherWordID, "animal"))

	require.NoError(t, s.DeleteLesson(lessonID))

	lessons, err := s.GetAllLessons()
	require.NoError(t, err)
	require.Len(t, lessons, 1)
	assert.Equal(t, otherID, lessons[0].ID)

	var words, tags int
	require.NoError(t, s.db.QueryRow("SELECT COUNT(*) FROM words").Scan(&words))
	require.NoError(t, s.db.QueryRow("SELECT COUNT(*) FROM tags").Scan(&tags))
	assert.Equal(t, 1, words)
	assert.Equal(t, 1, tags)
}

func TestGetAllLessonsAssemblesNestedData(t *testing.T) {
	s := setupStore(t)

	l1, err := s.AddLesson("Main Name 1", "Sub Name 1")
	require.NoError(t, err)
	w1, err := s.AddWord(l1, types.Word{Kana: "as", Translation: "translation1", Romaji: "romaji1", ExampleSentence: "example1"})
	require.NoError(t, err)
	require.NoError(t, s.AddTag(w1, "tag1"))

	l2, err := s.AddLesson("Main Name 2", "Sub Name 2")
	require.NoError(t, err)
	w2, err := s.AddWord(l2, types.Word{Kana: "qwe", Translation: "translation2", Romaji: "romaji2", ExampleSentence: "example2"})
	require.NoError(t, err)
	require.NoError(t, s.AddTag(w2, "tag2"))

	lessons, err := s.GetAllLessons()
	require.NoError(t, err)
	require.Len(t, lessons, 2)

	assert.Equal(t, l1, lessons[0].ID)
	assert.Equal(t, "Main Name 1", lessons[0].MainName)
	require.Len(t, lessons[0].Words, 1)
	assert.Equal(t, []string{"tag1"}, lessons[0].Words[0].Tags)

	assert.Equal(t, l2, lessons[1].ID)
	require.Len(t, lessons[1].Words, 1)
	assert.Equal(t, "qwe", lessons[1].Words[0].Kana)
	assert.Equal(t, []string{"tag2"}, lessons[1].Words[0].Tags)
}
