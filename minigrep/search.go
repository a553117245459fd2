package minigrep

import "strings"

// Search returns the lines of contents containing query, case sensitively.
func Search(query, contents string) []string {
	var results []string
	for _, line := range strings.Split(contents, "\n") {
		if strings.Contains(line, query) {
			results = append(results, line)
		}
	}
	return results
}

// SearchInsensitive lowercases both sides before comparing. Good enough
// for the project; full Unicode case folding would reach for
// strings.EqualFold on a per-candidate basis instead.
func SearchInsensitive(query, contents string) []string {
	query = strings.ToLower(query)
	var results []string
	for _, line := range strings.Split(contents, "\n") {
		if strings.Contains(strings.ToLower(line), query) {
			results = append(results, line)
		}
	}
	return results
}
