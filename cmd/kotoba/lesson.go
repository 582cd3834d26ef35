package main

import "github.com/spf13/cobra"

var lessonCmd = &cobra.Command{
	Use:   "lesson",
	Short: "Manage vocabulary lessons",
}

func init() {
	lessonCmd.AddCommand(lessonAddCmd)
	lessonCmd.AddCommand(lessonListCmd)
	lessonCmd.AddCommand(lessonShowCmd)
	lessonCmd.AddCommand(lessonRenameCmd)
	lessonCmd.AddCommand(lessonDeleteCmd)
	lessonCmd.AddCommand(lessonImportCmd)
	lessonCmd.AddCommand(lessonExportCmd)
}
