package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/javiermolinar/teamcal/internal/schedule"
	"github.com/javiermolinar/teamcal/internal/tui/theme"
)

// CardStyles are the styles used to paint one status of card.
type CardStyles struct {
	Body           lipgloss.Style
	Border         lipgloss.Style
	Selected       lipgloss.Style
	SelectedBorder lipgloss.Style
	Origin         lipgloss.Style
}

// StyleCache stores the grid styles so painting does not rebuild them per cell.
type StyleCache struct {
	Empty      lipgloss.Style
	Cursor     lipgloss.Style
	Rule       lipgloss.Style
	SlotHeader lipgloss.Style
	Member     lipgloss.Style
	Preview    lipgloss.Style
	PreviewBad lipgloss.Style

	cards    map[schedule.Status]CardStyles
	fallback CardStyles
}

// NewStyleCache precomputes the per-status card styles.
func NewStyleCache(styles *Styles) StyleCache {
	p := styles.Palette()
	cache := StyleCache{
		Empty:      styles.EmptyCellStyle,
		Cursor:     styles.CursorStyle,
		Rule:       styles.RuleStyle,
		SlotHeader: styles.SlotHeaderStyle,
		Member:     styles.MemberStyle,
		Preview:    styles.PreviewStyle,
		PreviewBad: styles.PreviewBadStyle,
		cards:      make(map[schedule.Status]CardStyles, len(schedule.Statuses)),
	}
	for _, s := range schedule.Statuses {
		cache.cards[s] = newCardStyles(p.StatusColors(s))
	}
	cache.fallback = newCardStyles(p.FallbackCard)
	return cache
}

func newCardStyles(c theme.CardColors) CardStyles {
	body := lipgloss.NewStyle().Background(c.Bg).Foreground(c.Text)
	selected := body.Background(c.Selected).Bold(true)
	return CardStyles{
		Body:           body,
		Border:         lipgloss.NewStyle().Background(c.Bg).Foreground(c.Border),
		Selected:       selected,
		SelectedBorder: lipgloss.NewStyle().Background(c.Selected).Foreground(c.Border),
		Origin:         lipgloss.NewStyle().Background(c.Origin).Foreground(c.Text).Faint(true),
	}
}

// Card returns the styles for a status.
func (c StyleCache) Card(s schedule.Status) CardStyles {
	if cs, ok := c.cards[s]; ok {
		return cs
	}
	return c.fallback
}
