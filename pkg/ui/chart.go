package ui

import (
	"fmt"
	"strings"

	"swarmtrack/pkg/checkin"
)

const maxBarWidth = 25

// BarChart prints entries as a horizontal bar chart, scaled so the largest
// count fills the full bar width
func BarChart(entries []checkin.Entry) {
	if len(entries) == 0 {
		fmt.Println(Dim("  (no data)"))
		return
	}

	max := 0
	keyWidth := 0
	for _, e := range entries {
		if e.Count > max {
			max = e.Count
		}
		if len(e.Key) > keyWidth {
			keyWidth = len(e.Key)
		}
	}

	for _, e := range entries {
		bar := strings.Repeat("█", barLength(e.Count, max))
		fmt.Printf("  %-*s  %s %d\n", keyWidth, e.Key, Cyan(bar), e.Count)
	}
}

// RankedBarChart prints numbered entries as a horizontal bar chart, with an
// optional dim annotation after each row's count
func RankedBarChart(entries []checkin.Entry, annotations []string) {
	if len(entries) == 0 {
		fmt.Println(Dim("  (no data)"))
		return
	}

	max := 0
	keyWidth := 0
	for _, e := range entries {
		if e.Count > max {
			max = e.Count
		}
		if len(e.Key) > keyWidth {
			keyWidth = len(e.Key)
		}
	}

	for i, e := range entries {
		bar := strings.Repeat("█", barLength(e.Count, max))
		line := fmt.Sprintf("  %2d. %-*s  %s %d", i+1, keyWidth, e.Key, Cyan(bar), e.Count)
		if i < len(annotations) && annotations[i] != "" {
			line += "  " + Dim(annotations[i])
		}
		fmt.Println(line)
	}
}

// barLength scales a count to a bar width; nonzero counts always get at
// least one block
func barLength(count, max int) int {
	if max <= 0 || count <= 0 {
		return 0
	}
	n := count * maxBarWidth / max
	if n == 0 {
		n = 1
	}
	return n
}
