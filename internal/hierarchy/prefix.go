package hierarchy

import (
	"regexp"
	"strconv"
)

// modulePrefix matches the "3." in "3.2 Some Title".
var modulePrefix = regexp.MustCompile(`^(\d+)\.`)

// ModuleIndexFromTitle reports the 1-based module position a lesson title
// points at through its leading "N." prefix. It is only a fallback for
// lessons whose parent reference is missing or stale: a title such as
// "5. Tips for..." that is not numbered by module will be misplaced.
func ModuleIndexFromTitle(title string) (int, bool) {
	m := modulePrefix.FindStringSubmatch(title)
	if m == nil {
		return 0, false
	}
	n, err := strconv.Atoi(m[1])
	if err != nil || n < 1 {
		return 0, false
	}
	return n, true
}
