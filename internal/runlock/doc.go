// Package runlock keeps two langcache processes from writing into the same
// cache directory at once.
package runlock
