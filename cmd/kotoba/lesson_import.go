package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/kotoba-dev/kotoba/pkg/types"
)

var lessonImportCmd = &cobra.Command{
	Use:   "import FILE",
	Short: "Import lessons from a JSON file",
	Long: `Import lessons from a JSON array of lesson objects. Ids in the file are
ignored; the store assigns fresh ones. Lessons are created in file order,
and a failing lesson does not stop the rest.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return userError{fmt.Errorf("read %s: %w", args[0], err)}
		}

		var imported []types.Lesson
		if err := json.Unmarshal(data, &imported); err != nil {
			return userError{fmt.Errorf("parse %s: %w", args[0], err)}
		}
		// The store assigns ids; file-supplied ones must not leak through.
		for i := range imported {
			imported[i].ID = 0
			for j := range imported[i].Words {
				imported[i].Words[j].ID = 0
			}
		}

		mgr, closeStore, err := openManager()
		if err != nil {
			return err
		}
		defer closeStore()

		if err := mgr.AddLessons(imported); err != nil {
			return err
		}
		fmt.Printf("Imported %d lesson(s) from %s\n", len(imported), args[0])
		return nil
	},
}

var lessonExportCmd = &cobra.Command{
	Use:   "export [FILE]",
	Short: "Export all lessons as JSON",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		mgr, closeStore, err := openManager()
		if err != nil {
			return err
		}
		defer closeStore()

		all, err := mgr.GetAllLessons()
		if err != nil {
			return err
		}

		out := os.Stdout
		if len(args) == 1 {
			f, err := os.Create(args[0])
			if err != nil {
				return fmt.Errorf("create %s: %w", args[0], err)
			}
			defer f.Close()
			out = f
		}

		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		if err := enc.Encode(all); err != nil {
			return fmt.Errorf("encode lessons: %w", err)
		}
		return nil
	},
}
