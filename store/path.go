package store

import (
	"fmt"
	"regexp"
)

var placeholder = regexp.MustCompile(`\{(\w+)\}`)

// ResolvePath substitutes every "{name}" placeholder in template with the
// corresponding value from fields, turning one command class with an index
// argument (e.g. "focuser.presets.name_{idx}") into N independent store
// cells. It reports false if template is empty or references a field that
// fields does not carry, in which case callers must treat the operation as
// a no-op rather than writing to a malformed path.
func ResolvePath(template string, fields map[string]any) (string, bool) {
	if template == "" {
		return "", false
	}
	if !placeholder.MatchString(template) {
		return template, true
	}

	missing := false
	resolved := placeholder.ReplaceAllStringFunc(template, func(m string) string {
		name := placeholder.FindStringSubmatch(m)[1]
		v, ok := fields[name]
		if !ok {
			missing = true
			return m
		}
		return fmt.Sprintf("%v", v)
	})
	if missing {
		return "", false
	}
	return resolved, true
}
