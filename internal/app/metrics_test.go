package app

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"

	"github.com/treykane/markditor/internal/platform"
)

func TestComputeDocumentMetrics(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    documentMetrics
	}{
		{name: "empty", content: "", want: documentMetrics{}},
		{name: "one line", content: "hello world", want: documentMetrics{words: 2, chars: 11, lines: 1}},
		{name: "trailing newline", content: "a\nb\n", want: documentMetrics{words: 2, chars: 4, lines: 2}},
		{name: "multibyte", content: "你好 世界", want: documentMetrics{words: 2, chars: 5, lines: 1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := computeDocumentMetrics(tt.content); got != tt.want {
				t.Fatalf("got %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestStatusShowsDocumentMetrics(t *testing.T) {
	m, _, _ := newTestModel(t)
	if got := m.documentMetricsSummary(); got != "" {
		t.Fatalf("expected no metrics without a document, got %q", got)
	}

	m.loadDocument(platform.File{Path: "/notes/a.md", Content: "# Title\nbody"})
	if got := m.documentMetricsSummary(); got != "W:3 C:12 L:2" {
		t.Fatalf("unexpected summary %q", got)
	}
	if status := ansi.Strip(m.renderStatus(120)); !strings.Contains(status, "W:3 C:12 L:2") {
		t.Fatalf("expected metrics in footer, got %q", status)
	}
}
