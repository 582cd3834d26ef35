// Package main provides the kotoba CLI: a local vocabulary-learning tool
// backed by SQLite, with lesson management and interactive quiz sessions.
package main

import (
	"errors"
	"fmt"
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		var ue userError
		if errors.As(err, &ue) {
			os.Exit(exitUserError)
		}
		os.Exit(exitSysError)
	}
}
