// Package search implements the line matching core of minigrep.
//
// Both entry points make a single pass over the document in line order and
// return the matching lines as substrings of the original contents. They are
// stateless, cannot fail, and hold no references beyond their return value.
package search

import "strings"

// Search returns every line of contents that contains query as a literal,
// case-sensitive substring, in document order.
//
// The returned strings are slices of contents and share its backing memory,
// so they remain valid exactly as long as contents does. An empty query
// matches every line; empty contents yields no lines.
func Search(query, contents string) []string {
	results := []string{}
	for _, line := range splitLines(contents) {
		if strings.Contains(line, query) {
			results = append(results, line)
		}
	}
	return results
}

// SearchCaseInsensitive behaves like Search but lowercases both query and
// each candidate line before the substring test, using the locale-independent
// Unicode simple mapping of strings.ToLower. The returned lines keep their
// original casing; only the comparison is normalized.
func SearchCaseInsensitive(query, contents string) []string {
	query = strings.ToLower(query)
	results := []string{}
	for _, line := range splitLines(contents) {
		if strings.Contains(strings.ToLower(line), query) {
			results = append(results, line)
		}
	}
	return results
}

// splitLines splits contents into lines. Both "\n" and "\r\n" terminate a
// line, a final unterminated line is included, and a trailing terminator does
// not produce a trailing empty line. Empty contents yields zero lines.
// Each returned line is a slice of contents.
func splitLines(contents string) []string {
	if contents == "" {
		return nil
	}
	lines := strings.Split(contents, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}
