package search

import "strings"

// Lines splits contents on "\n", dropping one trailing "\r" from each line.
// A final terminator does not produce an empty trailing line.
func Lines(contents string) []string {
	if contents == "" {
		return nil
	}
	parts := strings.Split(strings.TrimSuffix(contents, "\n"), "\n")
	for i, p := range parts {
		parts[i] = strings.TrimSuffix(p, "\r")
	}
	return parts
}

// Search returns the lines of contents that contain query, in order.
func Search(query, contents string) []string {
	results := []string{}
	for _, line := range Lines(contents) {
		if strings.Contains(line, query) {
			results = append(results, line)
		}
	}
	return results
}

// SearchCaseInsensitive is Search with both sides lowercased before the
// containment test. Returned lines keep their original case.
func SearchCaseInsensitive(query, contents string) []string {
	query = strings.ToLower(query)
	results := []string{}
	for _, line := range Lines(contents) {
		if strings.Contains(strings.ToLower(line), query) {
			results = append(results, line)
		}
	}
	return results
}
