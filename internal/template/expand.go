package template

import (
	"fmt"
	"strings"
)

// ExpandTemplate replaces {name} placeholders with values from vars.
// Example: "{field} Fundamentals" with vars {"field": "Rust"} => "Rust Fundamentals"
// An unknown placeholder or an unmatched brace is an error.
func ExpandTemplate(tmpl string, vars map[string]string) (string, error) {
	var result strings.Builder
	i := 0
	for i < len(tmpl) {
		if tmpl[i] != '{' {
			result.WriteByte(tmpl[i])
			i++
			continue
		}
		end := strings.IndexByte(tmpl[i+1:], '}')
		if end < 0 {
			return "", fmt.Errorf("unmatched '{' at position %d", i)
		}
		name := strings.TrimSpace(tmpl[i+1 : i+1+end])
		val, ok := vars[name]
		if !ok {
			return "", fmt.Errorf("unknown placeholder '%s'", name)
		}
		result.WriteString(val)
		i += end + 2
	}
	return result.String(), nil
}
