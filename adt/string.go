package adt

import "strings"

// PrintString emits value with every byte in escapeSet preceded by marker,
// matching the source's print_string: JSON uses escapeSet `"` with marker
// `\`, CSV uses escapeSet `"` with marker `"` (doubling).
func PrintString(value string, escapeSet string, marker byte) string {
	if !strings.ContainsAny(value, escapeSet) {
		return value
	}
	var sb strings.Builder
	sb.Grow(len(value) + 8)
	for i := 0; i < len(value); i++ {
		c := value[i]
		if strings.IndexByte(escapeSet, c) >= 0 {
			sb.WriteByte(marker)
		}
		sb.WriteByte(c)
	}
	return sb.String()
}
