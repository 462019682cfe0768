// Package config loads, normalizes, and validates langcache configuration.
//
// Configuration is read from TOML (by default ~/.config/langcache/config.toml,
// falling back to ./langcache.toml) on top of the values returned by Default.
// Environment variables fill in secrets and endpoints that are commonly kept
// out of files (LANGCACHE_API_URL, LANGCACHE_API_TOKEN, LANGCACHE_ROOT,
// LANGCACHE_REDIS_URL).
//
// Translated applications are declared as an array of tables so the order in
// the file is the order the language pipeline walks them. Lookup offers the
// dotted-key view (system.translated_applications, system.paths.root) that the
// pipelines consume.
package config
