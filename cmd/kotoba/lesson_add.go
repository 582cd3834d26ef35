package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kotoba-dev/kotoba/pkg/types"
)

var (
	flagLessonMain string
	flagLessonSub  string
	flagLessonWord []string
)

var lessonAddCmd = &cobra.Command{
	Use:   "add --main NAME --sub NAME [--word SPEC]...",
	Short: "Add a lesson with its words and tags",
	Long: `Add a lesson. Each --word flag carries one word as comma-separated
key=value fields:

  kotoba lesson add --main Animals --sub Basics \
    --word 'kana=ねこ,translation=cat,romaji=neko,tags=animal;n5' \
    --word 'kana=いぬ,translation=dog,romaji=inu,tags=animal'

Words and tags are written in the order given.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		lesson := types.Lesson{MainName: flagLessonMain, SubName: flagLessonSub}
		for _, spec := range flagLessonWord {
			w, err := parseWordSpec(spec)
			if err != nil {
				return err
			}
			lesson.Words = append(lesson.Words, w)
		}

		mgr, closeStore, err := openManager()
		if err != nil {
			return err
		}
		defer closeStore()

		id, err := mgr.AddLesson(lesson)
		if err != nil {
			return err
		}
		fmt.Printf("Added lesson %d: %s (%d words)\n", id, lesson.Name(), len(lesson.Words))
		return nil
	},
}

func init() {
	lessonAddCmd.Flags().StringVar(&flagLessonMain, "main", "", "lesson main name")
	lessonAddCmd.Flags().StringVar(&flagLessonSub, "sub", "", "lesson sub name")
	lessonAddCmd.Flags().StringArrayVar(&flagLessonWord, "word", nil, "word spec (repeatable)")
	lessonAddCmd.MarkFlagRequired("main")
	lessonAddCmd.MarkFlagRequired("sub")
}
