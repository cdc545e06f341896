package domain

import "strings"

// SourceFileSet is the ordered collection of discovered source paths.
// It is built once per discovery and must not be modified afterwards.
type SourceFileSet []string

// Len returns the number of files in the set.
func (s SourceFileSet) Len() int {
	return len(s)
}

// Paths returns a copy of the paths in discovery order.
func (s SourceFileSet) Paths() []string {
	out := make([]string, len(s))
	copy(out, s)
	return out
}

// MatchesExtension reports whether the final len(ext) characters of path equal
// ext, ignoring case. There is no check for a dot boundary: with ext ".c" a
// path only needs to end in ".c" or ".C", and a path that is not longer than
// ext never matches.
func MatchesExtension(path, ext string) bool {
	if ext == "" || len(path) <= len(ext) {
		return false
	}
	return strings.EqualFold(path[len(path)-len(ext):], ext)
}
