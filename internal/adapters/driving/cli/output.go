package cli

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"

	"github.com/custodia-labs/spatial-cli/internal/core/domain"
)

// printer renders registry records to a command's output.
type printer struct {
	w io.Writer

	heading lipgloss.Style
	id      lipgloss.Style
	name    lipgloss.Style
	tag     lipgloss.Style
	value   lipgloss.Style
	ok      lipgloss.Style
	bad     lipgloss.Style
	empty   lipgloss.Style
}

func newPrinter(cmd *cobra.Command) *printer {
	w := cmd.OutOrStdout()
	r := lipgloss.NewRenderer(w)

	switch colorMode() {
	case domain.ColorNever:
		r.SetColorProfile(termenv.Ascii)
	case domain.ColorAlways:
		r.SetColorProfile(termenv.ANSI)
	case domain.ColorAuto:
		// renderer detects the profile from w
	}

	return &printer{
		w:       w,
		heading: r.NewStyle().Bold(true).Foreground(lipgloss.Color("4")),
		id:      r.NewStyle().Foreground(lipgloss.Color("6")),
		name:    r.NewStyle().Bold(true),
		tag:     r.NewStyle().Foreground(lipgloss.Color("3")),
		value:   r.NewStyle().Foreground(lipgloss.Color("6")),
		ok:      r.NewStyle().Foreground(lipgloss.Color("2")),
		bad:     r.NewStyle().Foreground(lipgloss.Color("1")),
		empty:   r.NewStyle().Foreground(lipgloss.Color("3")),
	}
}

func (p *printer) printf(format string, args ...any) {
	fmt.Fprintf(p.w, format, args...)
}

// Heading prints a blank line followed by a section title.
func (p *printer) Heading(title string) {
	p.printf("\n%s\n", p.heading.Render(title))
}

// Empty prints the placeholder for an empty listing.
func (p *printer) Empty(text string) {
	p.printf("  %s\n", p.empty.Render(text))
}

// Created prints a creation confirmation.
func (p *printer) Created(kind, name, verb string, id int64) {
	p.printf("%s %s %s %s (id=%d)\n", p.ok.Render("✓"), kind, p.name.Render(name), verb, id)
}

// Zone prints one zone line.
func (p *printer) Zone(z domain.Zone) {
	state := p.ok.Render("active")
	if !z.Active {
		state = p.bad.Render("inactive")
	}
	p.printf("  %s %s  center=%s  r=%.1f  type=%s  %s\n",
		p.id.Render(fmt.Sprintf("[%d]", z.ID)),
		p.name.Render(z.Name),
		z.Center,
		z.Radius,
		p.tag.Render(z.Type),
		state,
	)
}

// Entity prints one entity line.
func (p *printer) Entity(e domain.Entity) {
	p.printf("  %s\n", p.entityLine(e))
}

// Match prints one entity line with its distance.
func (p *printer) Match(m domain.Match) {
	p.printf("  %s  dist=%s\n", p.entityLine(m.Entity), p.value.Render(fmt.Sprintf("%.2f", m.Distance)))
}

func (p *printer) entityLine(e domain.Entity) string {
	return fmt.Sprintf("%s %s  pos=%s  type=%s",
		p.id.Render(fmt.Sprintf("[%d]", e.ID)),
		p.name.Render(e.Name),
		e.Position,
		p.tag.Render(e.Type),
	)
}

// Field prints an aligned label/value pair.
func (p *printer) Field(label string, value any) {
	p.printf("  %-16s %s\n", label+":", p.value.Render(fmt.Sprint(value)))
}
