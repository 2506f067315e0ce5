package ui

import (
	"strconv"
	"strings"
	"sync"

	"github.com/charmbracelet/glamour"
)

var (
	mdRendererMu sync.Mutex
	// Keyed by style and wrap width. WithAutoStyle is avoided because its
	// terminal background query can block inside the alt screen.
	mdRenderers = map[string]*glamour.TermRenderer{}
)

// renderCode renders source as a fenced JavaScript block.
func renderCode(source, style string, width int) string {
	source = strings.TrimSpace(source)
	if source == "" {
		return ""
	}
	width = max(width, 10)

	key := style + ":" + strconv.Itoa(width)
	mdRendererMu.Lock()
	r := mdRenderers[key]
	mdRendererMu.Unlock()

	if r == nil {
		rr, err := glamour.NewTermRenderer(
			glamour.WithStandardStyle(style),
			glamour.WithWordWrap(width),
		)
		if err != nil {
			return source
		}
		mdRendererMu.Lock()
		if existing := mdRenderers[key]; existing != nil {
			r = existing
		} else {
			mdRenderers[key] = rr
			r = rr
		}
		mdRendererMu.Unlock()
	}

	out, err := r.Render("```js\n" + source + "\n```")
	if err != nil {
		return source
	}
	return strings.Trim(out, "\n")
}
