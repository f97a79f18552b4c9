package formatter

import (
	"strconv"
	"strings"
	"sync"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/glamour/styles"
)

var (
	mdMu        sync.Mutex
	mdRenderers = map[string]*glamour.TermRenderer{}
)

// RenderMarkdown renders a note description for the terminal. The style
// follows the planner's dark mode setting. Rendering errors fall back to the
// raw text.
func RenderMarkdown(md string, width int, dark bool) string {
	md = strings.TrimSpace(md)
	if md == "" {
		return ""
	}
	if width < 20 {
		width = 20
	}
	r, err := markdownRenderer(dark, width)
	if err != nil {
		return md
	}
	out, err := r.Render(md)
	if err != nil {
		return md
	}
	return strings.Trim(out, "\n")
}

func markdownRenderer(dark bool, width int) (*glamour.TermRenderer, error) {
	key := strconv.FormatBool(dark) + ":" + strconv.Itoa(width)

	mdMu.Lock()
	defer mdMu.Unlock()
	if r, ok := mdRenderers[key]; ok {
		return r, nil
	}
	// A fixed style avoids the terminal background query WithAutoStyle makes.
	cfg := styles.LightStyleConfig
	if dark {
		cfg = styles.DarkStyleConfig
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithStyles(cfg),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return nil, err
	}
	mdRenderers[key] = r
	return r, nil
}
