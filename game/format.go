package game

import (
	"fmt"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var scorePrinter = message.NewPrinter(language.English)

// FormatTime renders d as m:ss.mmm.
func FormatTime(d time.Duration) string {
	ms := max(d.Milliseconds(), 0)
	return fmt.Sprintf("%d:%02d.%03d", ms/60000, ms/1000%60, ms%1000)
}

// FormatPPS renders pieces per second.
func FormatPPS(pieces int, d time.Duration) string {
	if d <= 0 {
		return "0.00/s"
	}
	return fmt.Sprintf("%.2f/s", float64(pieces)/d.Seconds())
}

// FormatAPM renders attack per minute.
func FormatAPM(attack int, d time.Duration) string {
	if d <= 0 {
		return "0.00/min"
	}
	return fmt.Sprintf("%.2f/min", float64(attack)/d.Minutes())
}

// FormatScore renders n with comma thousands separators.
func FormatScore(n int) string {
	return scorePrinter.Sprintf("%d", n)
}
