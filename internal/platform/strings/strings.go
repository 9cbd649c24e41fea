// Package strings holds small string, pointer and slice helpers shared by the
// CLI and the HTTP layer
package strings

import std "strings"

// IfEmpty returns def when in has no elements
func IfEmpty[T any](in, def []T) []T {
	if len(in) == 0 {
		return def
	}
	return in
}

// MustString trims s and panics naming what when nothing is left
func MustString(s, what string) string {
	if s = std.TrimSpace(s); s == "" {
		panic(what + " is required")
	}
	return s
}

// MustPrefix turns s into a mount path with one leading slash and no trailing
// one, so "v1/", " /v1" and "/v1" all give "/v1". The root alone panics
func MustPrefix(s string) string {
	p := "/" + std.Trim(std.TrimSpace(s), " /")
	if p == "/" {
		panic("root path is required")
	}
	return p
}

// BlankPtr points at s unless s is blank; the raw value is kept.
// ?day= therefore behaves like an absent day
func BlankPtr(s string) *string {
	if std.TrimSpace(s) == "" {
		return nil
	}
	return &s
}

// Deref is the inverse of BlankPtr, nil reads as ""
func Deref(ps *string) string {
	if ps == nil {
		return ""
	}
	return *ps
}

// At points at a copy of args[i], nil when i is out of range. Optional
// positional arguments are read with it
func At(args []string, i int) *string {
	if i < 0 || i >= len(args) {
		return nil
	}
	v := args[i]
	return &v
}
