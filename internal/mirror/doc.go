// Package mirror optionally copies cache entries into redis after they are
// written to disk, so hosts without the cache directory can read the same
// translations. Mirroring is off by default.
package mirror
