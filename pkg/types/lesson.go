package types

// Word is one vocabulary entry. IDs are assigned by the storage backend at
// creation time; a Word built by a caller carries ID 0 until persisted.
// A word belongs to exactly one lesson for its whole lifetime.
type Word struct {
	ID              int      `json:"id"`
	Kana            string   `json:"kana"`
	Translation     string   `json:"translation"`
	Romaji          string   `json:"romaji"`
	ExampleSentence string   `json:"example_sentence"`
	Tags            []string `json:"tags"`
}

// Equal reports whether two words carry the same field values, including
// tag order. Tag order is preserved for display but carries no meaning.
func (w Word) Equal(other Word) bool {
	if w.ID != other.ID ||
		w.Kana != other.Kana ||
		w.Translation != other.Translation ||
		w.Romaji != other.Romaji ||
		w.ExampleSentence != other.ExampleSentence {
		return false
	}
	if len(w.Tags) != len(other.Tags) {
		return false
	}
	for i := range w.Tags {
		if w.Tags[i] != other.Tags[i] {
			return false
		}
	}
	return true
}

// Lesson is a named group of vocabulary words. MainName and SubName form a
// display label pair, not a key; neither is required to be unique.
type Lesson struct {
	ID       int    `json:"id"`
	MainName string `json:"main_name"`
	SubName  string `json:"sub_name"`
	Words    []Word `json:"words"`
}

// Name returns the display label for the lesson, "{MainName} - {SubName}".
func (l Lesson) Name() string {
	return l.MainName + " - " + l.SubName
}

// Equal reports whether two lessons carry the same field values and the
// same words in the same order.
func (l Lesson) Equal(other Lesson) bool {
	if l.ID != other.ID || l.MainName != other.MainName || l.SubName != other.SubName {
		return false
	}
	if len(l.Words) != len(other.Words) {
		return false
	}
	for i := range l.Words {
		if !l.Words[i].Equal(other.Words[i]) {
			return false
		}
	}
	return true
}
