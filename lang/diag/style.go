package diag

import "github.com/charmbracelet/lipgloss"

// Styles colors each part of a rendered [Diagnostic].
type Styles struct {
	Message lipgloss.Style
	Source  lipgloss.Style
	Marker  lipgloss.Style
	Help    lipgloss.Style
}

// DefaultStyles returns yellow messages, red markers and green hints for the
// default renderer, which inspects standard output.
func DefaultStyles() Styles { return NewStyles(lipgloss.DefaultRenderer()) }

// NewStyles returns the styles of [DefaultStyles] bound to r. Colors are
// dropped when r does not support them.
func NewStyles(r *lipgloss.Renderer) Styles {
	return Styles{
		Message: r.NewStyle().Foreground(lipgloss.Color("3")).Bold(true),
		Source:  r.NewStyle(),
		Marker:  r.NewStyle().Foreground(lipgloss.Color("1")),
		Help:    r.NewStyle().Foreground(lipgloss.Color("2")),
	}
}

// PlainStyles returns styles that leave every part unchanged.
func PlainStyles() Styles {
	return Styles{
		Message: lipgloss.NewStyle(),
		Source:  lipgloss.NewStyle(),
		Marker:  lipgloss.NewStyle(),
		Help:    lipgloss.NewStyle(),
	}
}

// RenderStyled is [Diagnostic.Render] with each part passed through s.
// The layout is identical; only terminal escape sequences are added.
func (d *Diagnostic) RenderStyled(s Styles) string {
	help := d.Help
	if help != "" {
		help = s.Help.Render(help)
	}

	return s.Message.Render(d.Message) + "\n\n" +
		s.Source.Render(d.Source()) + "\n" +
		s.Marker.Render(d.Marker()) + "\n" +
		help
}
