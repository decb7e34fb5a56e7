package templates

import (
	"strconv"
	"strings"
)

func prefixedStrings(prefix string, count int) string {
	var sb strings.Builder
	for i := 0; i < count; i++ {
		sb.WriteString(prefix)
		sb.WriteString(strconv.Itoa(i))
		if i < count-1 {
			sb.WriteString(", ")
		}
	}
	return sb.String()
}

func calledStrings(prefix string, count int) string {
	var sb strings.Builder
	for i := 0; i < count; i++ {
		sb.WriteString(prefix)
		sb.WriteString(strconv.Itoa(i))
		sb.WriteString("()")
		if i < count-1 {
			sb.WriteString(", ")
		}
	}
	return sb.String()
}

func newOldParams(count int) string {
	var sb strings.Builder
	for i := 0; i < count; i++ {
		n := strconv.Itoa(i)
		sb.WriteString("new" + n + ", old" + n + " T" + n)
		if i < count-1 {
			sb.WriteString(", ")
		}
	}
	return sb.String()
}

func newOldArgs(count int) string {
	var sb strings.Builder
	for i := 0; i < count; i++ {
		n := strconv.Itoa(i)
		sb.WriteString("new" + n + ", old" + n)
		if i < count-1 {
			sb.WriteString(", ")
		}
	}
	return sb.String()
}
