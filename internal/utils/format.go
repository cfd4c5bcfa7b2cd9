package utils

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"
)

type interval struct {
	unit    string
	seconds int64
}

// Largest unit first.
var intervals = []interval{
	{"year", 31536000},
	{"month", 2592000},
	{"week", 604800},
	{"day", 86400},
	{"hour", 3600},
	{"minute", 60},
}

// TimeAgo renders t relative to now ("2 hours ago", "Just now").
func TimeAgo(t time.Time) string {
	return timeAgoAt(t, time.Now())
}

func timeAgoAt(t, now time.Time) string {
	seconds := int64(now.Sub(t).Seconds())
	for _, iv := range intervals {
		n := seconds / iv.seconds
		if n >= 1 {
			if n == 1 {
				return fmt.Sprintf("1 %s ago", iv.unit)
			}
			return fmt.Sprintf("%d %ss ago", n, iv.unit)
		}
	}
	return "Just now"
}

// Initials returns the uppercased first letter of each word in name.
func Initials(name string) string {
	var b strings.Builder
	for _, word := range strings.Fields(name) {
		r, _ := utf8.DecodeRuneInString(word)
		b.WriteRune(r)
	}
	return strings.ToUpper(b.String())
}
