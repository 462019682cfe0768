// Package cachefs writes cache entries to disk.
//
// It is the only code that touches the cache files. Paths are a pure function
// of the cache root and a slash-separated sub path, missing parent
// directories are created with DirMode, and existing files are replaced
// without merging or versioning.
package cachefs
