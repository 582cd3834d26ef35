// Package types defines the lesson and word domain model, the LessonStore
// storage contract, and the standard errors shared across kotoba components.
package types
