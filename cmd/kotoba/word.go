package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var wordCmd = &cobra.Command{
	Use:   "word",
	Short: "Manage individual words",
}

var flagWordSpec string

var wordUpdateCmd = &cobra.Command{
	Use:   "update ID --fields SPEC",
	Short: "Replace a word's text fields (tags are untouched)",
	Long: `Replace the kana, translation, romaji, and example sentence of a word.
This is a full-field replace; all four fields take the values from the
spec, empty when omitted. Tags are never modified.

  kotoba word update 7 --fields 'kana=ねこ,translation=cat,romaji=neko'`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ids, err := parseIDs(args)
		if err != nil {
			return err
		}
		w, err := parseWordSpec(flagWordSpec)
		if err != nil {
			return err
		}

		mgr, closeStore, err := openManager()
		if err != nil {
			return err
		}
		defer closeStore()

		if err := mgr.UpdateWord(ids[0], w); err != nil {
			return err
		}
		fmt.Printf("Updated word %d\n", ids[0])
		return nil
	},
}

var wordDeleteCmd = &cobra.Command{
	Use:   "delete ID...",
	Short: "Delete words with their tags",
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

		if err := mgr.DeleteWords(ids); err != nil {
			return err
		}
		fmt.Printf("Deleted %d word(s)\n", len(ids))
		return nil
	},
}

func init() {
	wordUpdateCmd.Flags().StringVar(&flagWordSpec, "fields", "", "word fields as key=value pairs")
	wordUpdateCmd.MarkFlagRequired("fields")

	wordCmd.AddCommand(wordUpdateCmd)
	wordCmd.AddCommand(wordDeleteCmd)
}
