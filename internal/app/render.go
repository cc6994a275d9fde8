// render.go renders markdown through Glamour for the welcome page and the
// preview.
//
// Glamour TermRenderers are cached per (style, width bucket) in a small LRU
// guarded by a mutex, since creating one parses the style JSON. The style
// follows the effective theme, so switching between light and dark picks a
// different cached renderer instead of rebuilding one.
package app

import (
	"container/list"
	"sync"

	"github.com/charmbracelet/glamour"
)

type rendererKey struct {
	style string
	width int
}

var (
	// maxRendererCacheEntries bounds the number of Glamour renderers
	// retained in memory.
	maxRendererCacheEntries = 8

	rendererCacheMu    sync.Mutex
	rendererCache      = map[rendererKey]*glamour.TermRenderer{}
	rendererCacheOrder = list.New()
	rendererCacheNodes = map[rendererKey]*list.Element{}
)

// glamourStyle maps the effective theme to a Glamour standard style.
func glamourStyle(dark bool) string {
	if dark {
		return "dark"
	}
	return "light"
}

// renderMarkdown converts markdown to ANSI output at the given width. If the
// renderer fails the raw markdown is returned so the user still sees it.
func renderMarkdown(content string, width int, dark bool) string {
	width = renderWidthBucket(width)
	renderer, err := getRenderer(glamourStyle(dark), width)
	if err != nil {
		appLog.Error("create markdown renderer", "width", width, "error", err)
		return content
	}
	out, err := renderer.Render(content)
	if err != nil {
		appLog.Error("render markdown content", "width", width, "error", err)
		return content
	}
	return out
}

// getRenderer returns a cached Glamour TermRenderer, creating one on a miss.
func getRenderer(style string, width int) (*glamour.TermRenderer, error) {
	key := rendererKey{style: style, width: width}
	rendererCacheMu.Lock()
	defer rendererCacheMu.Unlock()
	if renderer, ok := rendererCache[key]; ok {
		if node, ok := rendererCacheNodes[key]; ok {
			rendererCacheOrder.MoveToBack(node)
		}
		return renderer, nil
	}
	renderer, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(style),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return nil, err
	}
	rendererCache[key] = renderer
	rendererCacheNodes[key] = rendererCacheOrder.PushBack(key)
	evictOldestRendererIfNeeded()
	return renderer, nil
}

func evictOldestRendererIfNeeded() {
	for len(rendererCache) > maxRendererCacheEntries && rendererCacheOrder.Len() > 0 {
		oldest := rendererCacheOrder.Front()
		key, _ := oldest.Value.(rendererKey)
		rendererCacheOrder.Remove(oldest)
		delete(rendererCache, key)
		delete(rendererCacheNodes, key)
	}
}

func resetRendererCacheForTests() {
	rendererCacheMu.Lock()
	defer rendererCacheMu.Unlock()
	rendererCache = map[rendererKey]*glamour.TermRenderer{}
	rendererCacheOrder = list.New()
	rendererCacheNodes = map[rendererKey]*list.Element{}
}

// renderedBlock memoizes one rendered page so View does not run Glamour on
// every frame.
type renderedBlock struct {
	key string
	out string
}

func (b *renderedBlock) get(key string, render func() string) string {
	if b.key == key && b.out != "" {
		return b.out
	}
	b.key = key
	b.out = render()
	return b.out
}

func (b *renderedBlock) reset() {
	b.key = ""
	b.out = ""
}
