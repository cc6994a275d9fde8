package app

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

type documentMetrics struct {
	words int
	chars int
	lines int
}

func computeDocumentMetrics(content string) documentMetrics {
	if content == "" {
		return documentMetrics{}
	}
	lines := strings.Count(content, "\n")
	if !strings.HasSuffix(content, "\n") {
		lines++
	}
	return documentMetrics{
		words: len(strings.Fields(content)),
		chars: utf8.RuneCountInString(content),
		lines: lines,
	}
}

// documentMetricsSummary is the "W:12 C:80 L:3" counter shown in the footer,
// or "" when no document is open or it is blank.
func (m *Model) documentMetricsSummary() string {
	doc := m.docs.Current()
	if !doc.Open() || strings.TrimSpace(doc.Content) == "" {
		return ""
	}
	metrics := computeDocumentMetrics(doc.Content)
	return fmt.Sprintf("W:%d C:%d L:%d", metrics.words, metrics.chars, metrics.lines)
}
