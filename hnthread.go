// Package hnthread fetches Hacker News threads and flattens them into a
// plain JSON comment tree suitable for reading or analysis.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., http/, htmltomarkdown/, slog/).
package hnthread
