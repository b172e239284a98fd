// Package display derives the human-readable strings shown next to records.
// Everything here is pure.
package display

import (
	"fmt"
	"strings"
	"time"
	"unicode"

	"flowboard/internal/model"
)

const dateLayout = "Jan 2, 2006"

// Date formats t as a short absolute date, e.g. "Mar 15, 2024".
func Date(t time.Time) string {
	return t.Format(dateLayout)
}

// RelativeDate formats t relative to now. Anything a week or older falls back
// to Date. Times in the future read as "just now".
func RelativeDate(t, now time.Time) string {
	secs := int64(now.Sub(t) / time.Second)
	mins := secs / 60
	hours := mins / 60
	days := hours / 24

	switch {
	case secs < 60:
		return "just now"
	case mins < 60:
		return fmt.Sprintf("%dm ago", mins)
	case hours < 24:
		return fmt.Sprintf("%dh ago", hours)
	case days < 7:
		return fmt.Sprintf("%dd ago", days)
	default:
		return Date(t)
	}
}

// Initials returns the upper-cased first letters of the first two words of name.
func Initials(name string) string {
	words := strings.Fields(name)
	if len(words) > 2 {
		words = words[:2]
	}
	var b strings.Builder
	for _, w := range words {
		for _, r := range w {
			b.WriteRune(unicode.ToUpper(r))
			break
		}
	}
	return b.String()
}

// Truncate shortens text to at most max runes, ending in "...".
func Truncate(text string, max int) string {
	runes := []rune(text)
	if len(runes) <= max {
		return text
	}
	if max <= 3 {
		return string(runes[:max])
	}
	return string(runes[:max-3]) + "..."
}

var statusColors = map[model.TaskStatus]string{
	model.StatusTodo:       "bg-gray-100 text-gray-800",
	model.StatusInProgress: "bg-blue-100 text-blue-800",
	model.StatusReview:     "bg-yellow-100 text-yellow-800",
	model.StatusDone:       "bg-green-100 text-green-800",
}

var priorityColors = map[model.TaskPriority]string{
	model.PriorityLow:    "bg-gray-100 text-gray-600",
	model.PriorityMedium: "bg-blue-100 text-blue-600",
	model.PriorityHigh:   "bg-orange-100 text-orange-600",
	model.PriorityUrgent: "bg-red-100 text-red-600",
}

func StatusColor(status model.TaskStatus) string {
	if c, ok := statusColors[status]; ok {
		return c
	}
	return "bg-gray-100 text-gray-800"
}

func PriorityColor(priority model.TaskPriority) string {
	if c, ok := priorityColors[priority]; ok {
		return c
	}
	return "bg-gray-100 text-gray-600"
}
