// Package quiz implements the single-session quiz engine: a deck of
// flashcards built from lessons, driven through a question/answer/advance
// loop with per-card attempt tracking.
package quiz

import (
	"fmt"

	"github.com/kotoba-dev/kotoba/pkg/types"
)

// WordType selects which textual representation of a word is used for a
// question or an answer.
type WordType int

const (
	// BaseWord is the translation field.
	BaseWord WordType = iota
	// Kana is the kana field.
	Kana
	// Romaji is the romaji field.
	Romaji
)

// ParseWordType parses the config-file spelling of a word type.
func ParseWordType(s string) (WordType, error) {
	switch s {
	case "translation", "base":
		return BaseWord, nil
	case "kana":
		return Kana, nil
	case "romaji":
		return Romaji, nil
	default:
		return BaseWord, fmt.Errorf("unknown word type %q (want translation, kana, or romaji)", s)
	}
}

// String returns the config-file spelling.
func (t WordType) String() string {
	switch t {
	case Kana:
		return "kana"
	case Romaji:
		return "romaji"
	default:
		return "translation"
	}
}

// FieldOf returns the word field this type selects.
func (t WordType) FieldOf(w types.Word) string {
	switch t {
	case Kana:
		return w.Kana
	case Romaji:
		return w.Romaji
	default:
		return w.Translation
	}
}
