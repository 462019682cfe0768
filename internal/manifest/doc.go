// Package manifest keeps a SQLite index of language pipeline runs and the
// cache entries they wrote.
//
// The cache directory itself stays the source of truth for consumers; the
// manifest only answers "what was written, when, by which run" for the
// cache list and cache runs commands. Entries are keyed by their path
// relative to the cache root, so rewriting a file replaces its row the same
// way the write replaces the file.
package manifest
