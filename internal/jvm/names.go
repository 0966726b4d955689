package jvm

import (
	"strings"
)

// CanonicalToInternal converts a dotted qualified name (java.lang.String)
// to its internal form (java/lang/String).
func CanonicalToInternal(canonical string) string {
	return strings.ReplaceAll(canonical, ".", "/")
}

// InternalToCanonical converts an internal name (java/lang/String) back to
// its dotted form (java.lang.String).
func InternalToCanonical(internal string) string {
	return strings.ReplaceAll(internal, "/", ".")
}

// SimpleName returns the last segment of a dotted qualified name.
func SimpleName(canonical string) string {
	idx := strings.LastIndex(canonical, ".")
	if idx < 0 {
		return canonical
	}
	return canonical[idx+1:]
}

// PackageName returns everything before the last segment of a dotted
// qualified name, or the empty string for an unqualified name.
func PackageName(canonical string) string {
	idx := strings.LastIndex(canonical, ".")
	if idx < 0 {
		return ""
	}
	return canonical[:idx]
}

// IsValidQualifiedName reports whether the given dotted name consists of
// non-empty identifier segments.
func IsValidQualifiedName(canonical string) bool {
	if canonical == "" {
		return false
	}
	for _, segment := range strings.Split(canonical, ".") {
		if !isIdentifier(segment) {
			return false
		}
	}
	return true
}

func isIdentifier(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		if r == '_' || r == '$' {
			continue
		}
		if r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z' {
			continue
		}
		if r >= '0' && r <= '9' {
			if i == 0 {
				return false
			}
			continue
		}
		return false
	}
	return true
}
