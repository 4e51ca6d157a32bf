// ABOUTME: Shared parsing and formatting helpers for CLI commands.
// ABOUTME: Time flags, column padding, and short-id resolution.
package main

import (
	"fmt"
	"strings"
	"time"
)

// parseTime accepts the flag formats users actually type.
func parseTime(s string) (time.Time, error) {
	formats := []string{
		"2006-01-02 15:04",
		"2006-01-02T15:04",
		"2006-01-02",
		time.RFC3339,
	}

	for _, f := range formats {
		if t, err := time.ParseInLocation(f, s, time.Local); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid time format: %s (use YYYY-MM-DD HH:MM)", s)
}

// timeFlag returns now when s is empty.
func timeFlag(s string) (time.Time, error) {
	if s == "" {
		return time.Now(), nil
	}
	return parseTime(s)
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return s[:maxLen]
	}
	return s[:maxLen-3] + "..."
}

func padRight(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

// resolveID expands a unique id prefix against ids. An unmatched prefix is
// returned unchanged so the service reports the not-found error.
func resolveID(prefix string, ids []string) (string, error) {
	if prefix == "" {
		return prefix, nil
	}
	var matches []string
	for _, id := range ids {
		if id == prefix {
			return id, nil
		}
		if strings.HasPrefix(id, prefix) {
			matches = append(matches, id)
		}
	}
	switch len(matches) {
	case 0:
		return prefix, nil
	case 1:
		return matches[0], nil
	default:
		return "", fmt.Errorf("ambiguous id prefix %q matches %d records", prefix, len(matches))
	}
}
