package tui

import (
	"strconv"
	"strings"
	"sync"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
)

const helpText = `# Keys

## Navigate

- ` + "`j`/`k`" + ` move, ` + "`enter`/`l`" + ` open group, ` + "`esc`/`h`" + ` back
- ` + "`/`" + ` jump to any entry by name

## Edit

- ` + "`a`" + ` add action, ` + "`g`" + ` add group
- ` + "`e`" + ` key, ` + "`n`" + ` label, ` + "`v`" + ` value, ` + "`t`" + ` type
- ` + "`o`" + ` browse for a file or folder value
- ` + "`d`" + ` duplicate, ` + "`x`" + ` delete (asks first)

## Other

- ` + "`r`" + ` reload from disk
- ` + "`q`" + ` quit

Changes save automatically; the previous file is kept as a backup.
`

var (
	mdRendererMu sync.Mutex
	// Cache renderers by wrap width. Creating a renderer with
	// WithAutoStyle can trigger terminal background queries that block on
	// some terminals, so the style is resolved once from Lip Gloss.
	mdRenderers = map[string]*glamour.TermRenderer{}
)

func markdownStyle() string {
	if lipgloss.HasDarkBackground() {
		return "dark"
	}
	return "light"
}

func renderMarkdown(md string, width int) string {
	md = strings.TrimSpace(md)
	if md == "" {
		return ""
	}
	if width < 10 {
		width = 10
	}

	mdRendererMu.Lock()
	style := markdownStyle()
	key := style + ":" + strconv.Itoa(width)
	r := mdRenderers[key]
	mdRendererMu.Unlock()

	if r == nil {
		rr, err := glamour.NewTermRenderer(
			glamour.WithStandardStyle(style),
			glamour.WithWordWrap(width),
		)
		if err != nil {
			return md
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

	out, err := r.Render(md)
	if err != nil {
		return md
	}
	return strings.TrimRight(out, "\n")
}

func renderHelpModal(width int) string {
	body := renderMarkdown(helpText, modalBodyWidth(width))
	return renderModalBox(width, "Help", body+"\n\n"+styleMuted().Render("esc: close"))
}
