package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

var flagListJSON bool

var lessonListCmd = &cobra.Command{
	Use:   "list",
	Short: "List lessons",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		mgr, closeStore, err := openManager()
		if err != nil {
			return err
		}
		defer closeStore()

		if flagListJSON {
			all, err := mgr.GetAllLessons()
			if err != nil {
				return err
			}
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(all)
		}

		all, err := mgr.GetAllLessons()
		if err != nil {
			return err
		}
		if len(all) == 0 {
			fmt.Println("No lessons yet. Add one with 'kotoba lesson add'.")
			return nil
		}
		for _, lesson := range all {
			fmt.Printf("%4d  %s (%d words)\n", lesson.ID, lesson.Name(), len(lesson.Words))
		}
		return nil
	},
}

var lessonShowCmd = &cobra.Command{
	Use:   "show ID",
	Short: "Show one lesson with its words and tags",
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

		all, err := mgr.GetAllLessons()
		if err != nil {
			return err
		}
		for _, lesson := range all {
			if lesson.ID != ids[0] {
				continue
			}
			fmt.Printf("%d  %s\n", lesson.ID, lesson.Name())
			for _, w := range lesson.Words {
				fmt.Printf("  %4d  %s  %s  %s", w.ID, w.Kana, w.Romaji, w.Translation)
				if len(w.Tags) > 0 {
					fmt.Printf("  [%s]", strings.Join(w.Tags, ", "))
				}
				fmt.Println()
				if w.ExampleSentence != "" {
					fmt.Printf("        %s\n", w.ExampleSentence)
				}
			}
			return nil
		}
		return userError{fmt.Errorf("lesson %d not found", ids[0])}
	},
}

func init() {
	lessonListCmd.Flags().BoolVar(&flagListJSON, "json", false, "output as JSON")
}
