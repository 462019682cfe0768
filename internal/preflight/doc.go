// Package preflight provides readiness checks for the filesystem paths and
// remote services langcache depends on.
//
// The "langcache status" command runs RunAll and renders each Result. The
// redis check only runs when mirroring is enabled.
package preflight
