// Package main hosts the langcache CLI entrypoint and command graph.
//
// "generate" runs the language pipelines under the cache run lock, "cache"
// reads the sqlite manifest, "status" runs preflight checks and "config"
// scaffolds and validates the TOML configuration. Configuration and logging
// are resolved once per invocation in commandContext so subcommands only
// deal with their own output.
package main
