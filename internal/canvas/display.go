package canvas

import (
	"regexp"
	"strings"
)

var (
	sectionTail = regexp.MustCompile(`\s*-\s*[A-Za-z]?\d{1,4}[A-Za-z]?\b.*$`)
	courseCode  = regexp.MustCompile(`([A-Za-z]{2,5})[- ]?(\d{1,3}[A-Za-z]?)`)
	wordSplit   = regexp.MustCompile(`\s+`)
)

// fillers are introductory words dropped when shortening a course title.
var fillers = map[string]bool{
	"introduction": true,
	"intro":        true,
	"beginning":    true,
	"fundamentals": true,
	"basic":        true,
	"advanced":     true,
}

// DisplayName shortens a full Canvas course name for the briefing page.
// Section identifiers are stripped first; a detected course code wins,
// otherwise filler words are removed and the result is capped at 16
// characters.
func DisplayName(fullName string) string {
	if fullName == "" {
		return ""
	}

	name := strings.TrimSpace(fullName)
	name = strings.ReplaceAll(name, "(", " (")
	name = strings.TrimSpace(strings.SplitN(name, "(", 2)[0])
	name = strings.Trim(name, " -")
	name = strings.TrimSpace(sectionTail.ReplaceAllString(name, ""))

	if m := courseCode.FindStringSubmatch(name); m != nil {
		return strings.ToUpper(m[1]) + " " + strings.ToUpper(m[2])
	}

	words := wordSplit.Split(name, -1)
	cleaned := make([]string, 0, len(words))
	for _, w := range words {
		if w == "" {
			continue
		}
		if fillers[strings.ToLower(strings.Trim(w, ",.:-"))] {
			continue
		}
		cleaned = append(cleaned, strings.Trim(w, ",.:-"))
	}
	if len(cleaned) == 0 {
		cleaned = words
	}

	trimmed := cleaned
	if len(trimmed) > 2 {
		trimmed = trimmed[:2]
	}
	if len(trimmed) == 2 && len([]rune(trimmed[1])) > 6 {
		trimmed[1] = strings.TrimRight(string([]rune(trimmed[1])[:4]), ".") + "."
	}

	result := strings.TrimSpace(strings.Join(trimmed, " "))
	if len([]rune(result)) > 16 {
		result = strings.TrimSpace(string([]rune(result)[:16])) + "…"
	}

	return result
}
