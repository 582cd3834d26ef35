package quiz

import "github.com/kotoba-dev/kotoba/pkg/types"

// learnedAfterGood is the number of correct answers that marks a card
// learned. This is a minimal bookkeeping threshold, not a scheduling
// policy; no spaced-repetition logic exists over these counters.
const learnedAfterGood = 1

// Flashcard wraps one word for the duration of a quiz session, carrying the
// session's attempt counters. Counters reset on every Start.
type Flashcard struct {
	Word         types.Word
	LessonID     int
	BadAttempts  int
	GoodAttempts int
	Learned      bool
}

// recordGood counts a correct answer and promotes the card once the
// threshold is reached.
func (f *Flashcard) recordGood() {
	f.GoodAttempts++
	if f.GoodAttempts >= learnedAfterGood {
		f.Learned = true
	}
}

// recordBad counts an incorrect answer.
func (f *Flashcard) recordBad() {
	f.BadAttempts++
}
