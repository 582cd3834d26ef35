// Shared helpers for kotoba CLI commands.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/kotoba-dev/kotoba/internal/sqlite"
	"github.com/kotoba-dev/kotoba/pkg/lessons"
	"github.com/kotoba-dev/kotoba/pkg/types"
)

// dbFileName is the SQLite database file inside the data directory.
const dbFileName = "kotoba.db"

// openStore resolves the data directory, creates it if needed, and opens
// the SQLite store. The caller must defer store.Close().
func openStore() (*sqlite.Store, error) {
	dataDir, err := resolveDataDir()
	if err != nil {
		return nil, fmt.Errorf("resolve data dir: %w", err)
	}
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}

	store, err := sqlite.Open(filepath.Join(dataDir, dbFileName), logger)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}
	return store, nil
}

// openManager opens the store and wraps it in a Manager. The caller must
// defer the returned close func.
func openManager() (*lessons.Manager, func() error, error) {
	store, err := openStore()
	if err != nil {
		return nil, nil, err
	}
	return lessons.NewManager(store, logger), store.Close, nil
}

// parseIDs converts positional id arguments. Bad input is a user error.
func parseIDs(args []string) ([]int, error) {
	ids := make([]int, 0, len(args))
	for _, arg := range args {
		id, err := strconv.Atoi(arg)
		if err != nil {
			return nil, userError{fmt.Errorf("invalid id %q", arg)}
		}
		ids = append(ids, id)
	}
	return ids, nil
}

// parseWordSpec parses a --word flag value of the form
// "kana=ねこ,translation=cat,romaji=neko,example=...,tags=animal;n5".
func parseWordSpec(spec string) (types.Word, error) {
	var w types.Word
	for _, part := range strings.Split(spec, ",") {
		key, value, ok := strings.Cut(part, "=")
		if !ok {
			return w, userError{fmt.Errorf("invalid word field %q (want key=value)", part)}
		}
		switch key {
		case "kana":
			w.Kana = value
		case "translation":
			w.Translation = value
		case "romaji":
			w.Romaji = value
		case "example":
			w.ExampleSentence = value
		case "tags":
			if value != "" {
				w.Tags = strings.Split(value, ";")
			}
		default:
			return w, userError{fmt.Errorf("unknown word field %q", key)}
		}
	}
	if w.Kana == "" && w.Translation == "" {
		return w, userError{fmt.Errorf("word %q needs at least kana or translation", spec)}
	}
	return w, nil
}
