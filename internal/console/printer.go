package console

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/handiism/met-downloader/internal/fetch"
	"github.com/handiism/met-downloader/internal/model"
)

type styles struct {
	title   lipgloss.Style
	success lipgloss.Style
	err     lipgloss.Style
	warning lipgloss.Style
	info    lipgloss.Style
	dim     lipgloss.Style
	box     lipgloss.Style
	label   lipgloss.Style
	artwork lipgloss.Style
}

func newStyles(r *lipgloss.Renderer) styles {
	return styles{
		title: r.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FF6B6B")),
		success: r.NewStyle().
			Foreground(lipgloss.Color("#95E1A3")),
		err: r.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B")),
		warning: r.NewStyle().
			Foreground(lipgloss.Color("#FFE66D")),
		info: r.NewStyle().
			Foreground(lipgloss.Color("#A8DADC")),
		dim: r.NewStyle().
			Foreground(lipgloss.Color("#6C757D")),
		box: r.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#4ECDC4")).
			Padding(0, 1),
		label: r.NewStyle().
			Foreground(lipgloss.Color("#4ECDC4")),
		artwork: r.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#F8B500")),
	}
}

// Printer renders progress events and results on a terminal.
//
// Errors go to the error writer, everything else to the output writer.
// Colors are only emitted when the writer is a terminal.
type Printer struct {
	out     io.Writer
	errOut  io.Writer
	verbose bool

	styles    styles
	errStyles styles
}

// NewPrinter creates a Printer. Verbose events are dropped unless verbose is set.
func NewPrinter(out, errOut io.Writer, verbose bool) *Printer {
	return &Printer{
		out:       out,
		errOut:    errOut,
		verbose:   verbose,
		styles:    newStyles(lipgloss.NewRenderer(out)),
		errStyles: newStyles(lipgloss.NewRenderer(errOut)),
	}
}

// Banner prints the program header.
func (p *Printer) Banner() {
	fmt.Fprintln(p.out, p.styles.title.Render("Met Downloader"))
	fmt.Fprintln(p.out, p.styles.dim.Render("Images from The Metropolitan Museum of Art collection"))
	fmt.Fprintln(p.out)
}

// Handle prints a progress event. It has the signature of the fetch
// progress callback.
func (p *Printer) Handle(event fetch.ProgressEvent) {
	if event.Level == fetch.LevelVerbose && !p.verbose {
		return
	}

	switch event.Level {
	case fetch.LevelError:
		fmt.Fprintln(p.errOut, p.errStyles.err.Render("✗ "+event.Message))
	case fetch.LevelWarning:
		fmt.Fprintln(p.out, p.styles.warning.Render("! "+event.Message))
	case fetch.LevelSuccess:
		fmt.Fprintln(p.out, p.styles.success.Render("✓ "+event.Message))
		if event.Artwork != nil {
			fmt.Fprintln(p.out, p.Card(event.Artwork))
		}
	case fetch.LevelInfo:
		fmt.Fprintln(p.out, p.styles.info.Render("i "+event.Message))
	default:
		fmt.Fprintln(p.out, p.styles.dim.Render("  "+event.Message))
	}
}

// Card renders the details of a downloaded artwork.
func (p *Printer) Card(a *model.Artwork) string {
	var b strings.Builder

	title := a.Title
	if title == "" {
		title = fmt.Sprintf("Object %d", a.ID)
	}
	b.WriteString(p.styles.artwork.Render(title))

	fields := []struct{ label, value string }{
		{"Artist", a.DisplayArtist()},
		{"Date", a.Date},
		{"Medium", a.Medium},
		{"Department", a.Department},
		{"Culture", a.Culture},
		{"Link", a.ObjectURL},
		{"Saved to", a.SavedPath},
	}
	for _, f := range fields {
		if f.value == "" {
			continue
		}
		b.WriteString("\n")
		b.WriteString(p.styles.label.Render(fmt.Sprintf("%-10s", f.label)))
		b.WriteString(" ")
		b.WriteString(f.value)
	}

	return p.styles.box.Render(b.String())
}

// Infof prints an informational line.
func (p *Printer) Infof(format string, args ...any) {
	fmt.Fprintln(p.out, p.styles.info.Render(fmt.Sprintf(format, args...)))
}

// Errorf prints an error line to the error writer.
func (p *Printer) Errorf(format string, args ...any) {
	fmt.Fprintln(p.errOut, p.errStyles.err.Render(fmt.Sprintf(format, args...)))
}

// Summary prints how many of the requested artworks were downloaded.
func (p *Printer) Summary(requested int, viewed *model.ViewedSet) {
	got := viewed.Len()

	fmt.Fprintln(p.out)
	switch {
	case got == 0:
		fmt.Fprintln(p.out, p.styles.warning.Render(fmt.Sprintf("No artworks downloaded (%d requested)", requested)))
	case got < requested:
		fmt.Fprintln(p.out, p.styles.success.Render(fmt.Sprintf("Done! Downloaded %d/%d artworks", got, requested)))
		fmt.Fprintln(p.out, p.styles.dim.Render("Some slots ran out of candidates; try a broader query or --random."))
	default:
		fmt.Fprintln(p.out, p.styles.success.Render(fmt.Sprintf("Done! Downloaded %d/%d artworks", got, requested)))
	}
}
