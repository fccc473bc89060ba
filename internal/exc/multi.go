package exc

import "strings"

// MultiException carries every exception collected by a Reporter.
type MultiException []Exception

func (self MultiException) Error() string {
	if len(self) == 0 {
		return ""
	}
	var b strings.Builder
	for _, err := range self[:len(self)-1] {
		b.WriteString(err.Error())
		b.WriteString("; ")
	}
	b.WriteString(self[len(self)-1].Error())
	return b.String()
}
