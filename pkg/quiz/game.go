package quiz

import (
	"fmt"
	"io"
	"log/slog"
	"math/rand"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/kotoba-dev/kotoba/pkg/types"
)

// State is the quiz session lifecycle state.
type State int

const (
	// Idle means the game is constructed but Start has not been called.
	Idle State = iota
	// InProgress means a current question exists and awaits an answer.
	InProgress
	// Finished means every flashcard has been consumed.
	Finished
)

// defaultOptionCount is the number of answer options per question (one
// correct answer plus distractors) when the caller does not choose one.
const defaultOptionCount = 4

// Options configures a quiz session. Callers normally pick distinct
// question and answer word types; the zero value uses the translation
// field for both, with four options per question.
type Options struct {
	// QuestionType selects the word field shown as the question.
	QuestionType WordType
	// AnswerType selects the word field offered as options.
	AnswerType WordType
	// OptionCount is the total number of options per question; values
	// below 2 fall back to the default.
	OptionCount int
	// Rand is the randomness source for deck and option shuffling.
	// Inject a seeded source for deterministic behavior; nil gets a
	// time-seeded one.
	Rand *rand.Rand
	// Logger receives session events. Nil discards.
	Logger *slog.Logger
}

// Game drives one quiz session over a fixed deck of flashcards. It never
// blocks or sleeps; the presentation layer calls Advance once per user
// action and may query the current state as often as it likes between
// advances without mutating it. Not safe for concurrent use.
type Game struct {
	lessons []types.Lesson
	opts    Options
	rng     *rand.Rand
	logger  *slog.Logger

	state     State
	sessionID string
	deck      []*Flashcard
	cursor    int
	options   []string
	correct   int
}

// New constructs an Idle game over a snapshot of lessons. Call Start to
// build the deck and begin.
func New(lessons []types.Lesson, opts Options) *Game {
	if opts.OptionCount < 2 {
		opts.OptionCount = defaultOptionCount
	}
	rng := opts.Rand
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Game{
		lessons: lessons,
		opts:    opts,
		rng:     rng,
		logger:  logger,
		correct: -1,
	}
}

// Start builds the deck and transitions into InProgress. Every word across
// the supplied lessons becomes one flashcard with zeroed counters; the deck
// is shuffled with the injected randomness source. Calling Start again,
// including from Finished, is a full reset of progress and counters.
func (g *Game) Start() {
	g.deck = g.deck[:0]
	for _, lesson := range g.lessons {
		for _, word := range lesson.Words {
			g.deck = append(g.deck, &Flashcard{Word: word, LessonID: lesson.ID})
		}
	}
	g.rng.Shuffle(len(g.deck), func(i, j int) {
		g.deck[i], g.deck[j] = g.deck[j], g.deck[i]
	})

	g.cursor = 0
	g.sessionID = newSessionID()

	if len(g.deck) == 0 {
		g.state = Finished
		g.options = nil
		g.correct = -1
		g.logger.Info("quiz started with empty deck", "session", g.sessionID)
		return
	}

	g.state = InProgress
	g.loadQuestion()
	g.logger.Info("quiz started", "session", g.sessionID, "cards", len(g.deck))
}

// Advance records the outcome of the current question against its flashcard
// and moves to the next one, transitioning to Finished when the deck is
// exhausted. selected is an index into the last-returned options. Calling
// Advance outside InProgress does nothing.
func (g *Game) Advance(selected int) {
	if g.state != InProgress {
		return
	}

	card := g.deck[g.cursor]
	if selected == g.correct {
		card.recordGood()
	} else {
		card.recordBad()
	}

	g.cursor++
	if g.cursor >= len(g.deck) {
		g.state = Finished
		g.options = nil
		g.correct = -1
		g.logger.Info("quiz finished", "session", g.sessionID)
		return
	}
	g.loadQuestion()
}

// CurrentQuestion returns the question-type field of the current flashcard,
// or "" outside InProgress.
func (g *Game) CurrentQuestion() string {
	if g.state != InProgress {
		return ""
	}
	return g.opts.QuestionType.FieldOf(g.deck[g.cursor].Word)
}

// CurrentOptions returns the options for the current question: the correct
// answer plus unique distractors, shuffled. The slice is stable until the
// next Advance. Returns nil outside InProgress.
func (g *Game) CurrentOptions() []string {
	if g.state != InProgress {
		return nil
	}
	out := make([]string, len(g.options))
	copy(out, g.options)
	return out
}

// CorrectAnswerIndex returns the index of the correct answer within the
// last-returned options, or -1 outside InProgress.
func (g *Game) CorrectAnswerIndex() int {
	if g.state != InProgress {
		return -1
	}
	return g.correct
}

// IsFinished reports whether the deck has been consumed.
func (g *Game) IsFinished() bool {
	return g.state == Finished
}

// CurrentQuestionIndex returns the 0-based position in the deck.
func (g *Game) CurrentQuestionIndex() int {
	return g.cursor
}

// TotalQuestions returns the deck size.
func (g *Game) TotalQuestions() int {
	return len(g.deck)
}

// Results returns a human-readable summary of the session: how many cards
// were learned and the per-card attempt counts.
func (g *Game) Results() string {
	learned := 0
	for _, card := range g.deck {
		if card.Learned {
			learned++
		}
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Learned %d of %d words.\n", learned, len(g.deck))
	for _, card := range g.deck {
		status := "not yet"
		if card.Learned {
			status = "learned"
		}
		fmt.Fprintf(&b, "  [%s] %s (%s): %d correct, %d wrong\n",
			status,
			g.opts.QuestionType.FieldOf(card.Word),
			g.opts.AnswerType.FieldOf(card.Word),
			card.GoodAttempts,
			card.BadAttempts,
		)
	}
	return b.String()
}

// loadQuestion computes and caches the options and correct index for the
// flashcard under the cursor. Distractors are drawn without replacement
// from the other cards' answer field: unique, never equal to the correct
// answer, never empty. When fewer distinct distractors exist than needed,
// whatever pool is available is used.
func (g *Game) loadQuestion() {
	card := g.deck[g.cursor]
	answer := g.opts.AnswerType.FieldOf(card.Word)

	seen := map[string]bool{answer: true, "": true}
	var pool []string
	for i, other := range g.deck {
		if i == g.cursor {
			continue
		}
		candidate := g.opts.AnswerType.FieldOf(other.Word)
		if seen[candidate] {
			continue
		}
		seen[candidate] = true
		pool = append(pool, candidate)
	}
	g.rng.Shuffle(len(pool), func(i, j int) {
		pool[i], pool[j] = pool[j], pool[i]
	})

	want := g.opts.OptionCount - 1
	if want > len(pool) {
		want = len(pool)
	}

	g.options = append(pool[:want:want], answer)
	g.rng.Shuffle(len(g.options), func(i, j int) {
		g.options[i], g.options[j] = g.options[j], g.options[i]
	})
	for i, opt := range g.options {
		if opt == answer {
			g.correct = i
			break
		}
	}
}

// newSessionID returns a UUID v7 session identifier, falling back to v4
// when v7 generation fails.
func newSessionID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.New().String()
	}
	return id.String()
}
