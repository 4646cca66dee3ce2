// Package util provides small text helpers shared by the command output and
// the dashboard.
package util

import (
	"strconv"
	"strings"
)

// JoinOrNone joins strings with ", " or returns "(none)" for empty slices.
func JoinOrNone(items []string) string {
	return JoinOrDefault(items, "(none)")
}

// JoinOrDefault joins strings with ", " or returns the default value for empty slices.
func JoinOrDefault(items []string, def string) string {
	if len(items) == 0 {
		return def
	}
	return strings.Join(items, ", ")
}

// Pluralize returns singular if count is 1, otherwise plural.
func Pluralize(count int, singular, plural string) string {
	if count == 1 {
		return singular
	}
	return plural
}

// Count formats a count with its noun: "1 lot", "3 lots".
func Count(count int, singular, plural string) string {
	return strconv.Itoa(count) + " " + Pluralize(count, singular, plural)
}
