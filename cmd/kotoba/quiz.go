package main

import (
	"bufio"
	"fmt"
	"os"
	"slices"
	"time"

	"github.com/spf13/cobra"

	"github.com/kotoba-dev/kotoba/pkg/quiz"
	"github.com/kotoba-dev/kotoba/pkg/types"
)

// highlightDelay gates the pause between showing the correct answer and
// advancing to the next question. Purely presentational; the quiz engine
// itself never sleeps.
const highlightDelay = 2 * time.Second

var (
	flagQuizLessons   []int
	flagQuestionType  string
	flagAnswerType    string
	flagQuizNoDelay   bool
	flagQuizOptionCnt int
)

var quizCmd = &cobra.Command{
	Use:   "quiz [--lesson ID]...",
	Short: "Run an interactive quiz over your lessons",
	Long: `Run a multiple-choice quiz. Every word in the selected lessons (all
lessons when no --lesson flag is given) becomes one question. Answer with
the option letter; the correct answer is shown for two seconds before the
next question.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		opts, err := quizOptions()
		if err != nil {
			return err
		}

		mgr, closeStore, err := openManager()
		if err != nil {
			return err
		}
		selected, err := mgr.GetAllLessons()
		closeStore()
		if err != nil {
			return err
		}

		if len(flagQuizLessons) > 0 {
			selected = slices.DeleteFunc(selected, func(l types.Lesson) bool {
				return !slices.Contains(flagQuizLessons, l.ID)
			})
		}

		game := quiz.New(selected, opts)
		game.Start()
		if game.TotalQuestions() == 0 {
			return userError{fmt.Errorf("no words to quiz; add lessons first")}
		}

		if cfg.Username != "" {
			fmt.Printf("Welcome to the quiz, %s!\n", cfg.Username)
		}
		return runQuizLoop(game)
	},
}

// runQuizLoop drives the question/answer/advance loop on stdin until the
// deck is exhausted, then prints the results summary.
func runQuizLoop(game *quiz.Game) error {
	scanner := bufio.NewScanner(os.Stdin)

	for !game.IsFinished() {
		options := game.CurrentOptions()
		fmt.Printf("\n[%d/%d] %s\n", game.CurrentQuestionIndex()+1, game.TotalQuestions(), game.CurrentQuestion())
		for i, opt := range options {
			fmt.Printf("  %c) %s\n", 'a'+i, opt)
		}

		selected := readSelection(scanner, len(options))
		if selected < 0 {
			// stdin closed; end the session early with current results.
			break
		}

		correct := game.CorrectAnswerIndex()
		if selected == correct {
			fmt.Println("Correct!")
		} else {
			fmt.Printf("Wrong. The answer is %c) %s\n", 'a'+correct, options[correct])
		}

		// Hold the answer on screen before advancing, unless disabled.
		if !flagQuizNoDelay {
			deadline := time.Now().Add(highlightDelay)
			for time.Now().Before(deadline) {
				time.Sleep(50 * time.Millisecond)
			}
		}

		game.Advance(selected)
	}

	fmt.Println()
	fmt.Print(game.Results())
	return nil
}

// readSelection reads option letters until a valid one arrives. Returns -1
// when stdin is exhausted.
func readSelection(scanner *bufio.Scanner, optionCount int) int {
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			return -1
		}
		answer := scanner.Text()
		if len(answer) == 1 {
			idx := int(answer[0] - 'a')
			if idx >= 0 && idx < optionCount {
				return idx
			}
		}
		fmt.Printf("Please answer a-%c.\n", 'a'+optionCount-1)
	}
}

// quizOptions builds engine options from config and flags (flags win).
func quizOptions() (quiz.Options, error) {
	questionSpelling := cfg.QuestionType
	if flagQuestionType != "" {
		questionSpelling = flagQuestionType
	}
	answerSpelling := cfg.AnswerType
	if flagAnswerType != "" {
		answerSpelling = flagAnswerType
	}

	questionType, err := quiz.ParseWordType(questionSpelling)
	if err != nil {
		return quiz.Options{}, userError{err}
	}
	answerType, err := quiz.ParseWordType(answerSpelling)
	if err != nil {
		return quiz.Options{}, userError{err}
	}

	optionCount := cfg.OptionCount
	if flagQuizOptionCnt > 0 {
		optionCount = flagQuizOptionCnt
	}

	return quiz.Options{
		QuestionType: questionType,
		AnswerType:   answerType,
		OptionCount:  optionCount,
		Logger:       logger,
	}, nil
}

func init() {
	quizCmd.Flags().IntSliceVar(&flagQuizLessons, "lesson", nil, "lesson id to include (repeatable; default all)")
	quizCmd.Flags().StringVar(&flagQuestionType, "questions", "", "question word type: translation, kana, or romaji")
	quizCmd.Flags().StringVar(&flagAnswerType, "answers", "", "answer word type: translation, kana, or romaji")
	quizCmd.Flags().IntVar(&flagQuizOptionCnt, "options", 0, "options per question")
	quizCmd.Flags().BoolVar(&flagQuizNoDelay, "no-delay", false, "skip the answer highlight pause")
}
