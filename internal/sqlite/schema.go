// Package sqlite implements the LessonStore contract on an embedded SQLite
// database. Lessons own words, words own tags; deletes cascade explicitly
// inside a single transaction.
package sqlite

// Schema DDL. Three tables with a strict ownership chain:
// lessons -> words -> tags.
const (
	createLessons = `CREATE TABLE IF NOT EXISTS lessons (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    main_name TEXT NOT NULL,
    sub_name TEXT NOT NULL
);`

	createWords = `CREATE TABLE IF NOT EXISTS words (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    lesson_id INTEGER,
    kana TEXT NOT NULL,
    translation TEXT NOT NULL,
    romaji TEXT,
    example_sentence TEXT,
    FOREIGN KEY(lesson_id) REFERENCES lessons(id)
);`

	createTags = `CREATE TABLE IF NOT EXISTS tags (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    word_id INTEGER,
    tag TEXT NOT NULL,
    FOREIGN KEY(word_id) REFERENCES words(id)
);`
)

// schemaDDL lists the statements executed by Open, in dependency order.
var schemaDDL = []string{createLessons, createWords, createTags}
