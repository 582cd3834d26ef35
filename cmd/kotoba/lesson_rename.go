package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kotoba-dev/kotoba/pkg/types"
)

var (
	flagRenameMain string
	flagRenameSub  string
)

var lessonRenameCmd = &cobra.Command{
	Use:   "rename ID --main NAME --sub NAME",
	Short: "Rename a lesson (words are untouched)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ids, err := parseIDs(args)
		if err != nil {
			return err
		}

		mgr, closeStore, err := openManager()
		if err != nil {
			return err
		}
		defer closeStore()

		lesson := types.Lesson{ID: ids[0], MainName: flagRenameMain, SubName: flagRenameSub}
		if err := mgr.RenameLessons([]types.Lesson{lesson}); err != nil {
			return err
		}
		fmt.Printf("Renamed lesson %d to %s\n", lesson.ID, lesson.Name())
		return nil
	},
}

var lessonDeleteCmd = &cobra.Command{
	Use:   "delete ID...",
	Short: "Delete lessons with their words and tags",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ids, err := parseIDs(args)
		if err != nil {
			return err
		}

		mgr, closeStore, err := openManager()
		if err != nil {
			return err
		}
		defer closeStore()

		if err := mgr.DeleteLessons(ids); err != nil {
			return err
		}
		fmt.Printf("Deleted %d lesson(s)\n", len(ids))
		return nil
	},
}

func init() {
	lessonRenameCmd.Flags().StringVar(&flagRenameMain, "main", "", "new main name")
	lessonRenameCmd.Flags().StringVar(&flagRenameSub, "sub", "", "new sub name")
	lessonRenameCmd.MarkFlagRequired("main")
	lessonRenameCmd.MarkFlagRequired("sub")
}
