// Package tui provides the terminal user interface for teamcal.
package tui

import (
	"testing"

	"github.com/javiermolinar/teamcal/internal/grid"
)

func TestBuildLayoutCache(t *testing.T) {
	tests := []struct {
		name         string
		width        int
		height       int
		wantFooterH  int
		wantGridH    int
		wantRows     int
		wantSlots    int
		wantSlotSize int
	}{
		{
			name:         "roomy window uses the full footer",
			width:        testWidth,
			height:       testHeight,
			wantFooterH:  footerBaseLines,
			wantGridH:    38 - headerLines - footerBaseLines,
			wantRows:     15,
			wantSlots:    14,
			wantSlotSize: slotW,
		},
		{
			name:         "short window falls back to the compact footer",
			width:        testWidth,
			height:       16,
			wantFooterH:  footerCompact,
			wantGridH:    14 - headerLines - footerCompact,
			wantRows:     4,
			wantSlots:    14,
			wantSlotSize: slotW,
		},
		{
			name:         "narrow window keeps the minimum slot width",
			width:        60,
			height:       testHeight,
			wantFooterH:  footerBaseLines,
			wantGridH:    38 - headerLines - footerBaseLines,
			wantRows:     15,
			wantSlots:    (56 - grid.DefaultMemberColumnWidth) / grid.MinSlotWidth,
			wantSlotSize: grid.MinSlotWidth,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, _ := newSizedModel(t, tt.width, tt.height)
			layout := m.layoutCache

			if layout.InnerW != tt.width-4 {
				t.Fatalf("InnerW = %d, want %d", layout.InnerW, tt.width-4)
			}
			if layout.FooterH != tt.wantFooterH {
				t.Fatalf("FooterH = %d, want %d", layout.FooterH, tt.wantFooterH)
			}
			if layout.GridH != tt.wantGridH {
				t.Fatalf("GridH = %d, want %d", layout.GridH, tt.wantGridH)
			}
			if layout.VisibleRows != tt.wantRows {
				t.Fatalf("VisibleRows = %d, want %d", layout.VisibleRows, tt.wantRows)
			}
			if layout.VisibleSlots != tt.wantSlots {
				t.Fatalf("VisibleSlots = %d, want %d", layout.VisibleSlots, tt.wantSlots)
			}
			if got := m.grid.Layout().SlotWidth; got != tt.wantSlotSize {
				t.Fatalf("SlotWidth = %d, want %d", got, tt.wantSlotSize)
			}
			if layout.GridX != 2 || layout.GridY != 1+headerLines {
				t.Fatalf("grid origin = (%d, %d), want (2, %d)", layout.GridX, layout.GridY, 1+headerLines)
			}
		})
	}
}

func TestLayoutCache_PromptGrowsFooter(t *testing.T) {
	m, _ := newTestModel(t)
	before := m.layoutCache.FooterH

	m = press(t, m, "/")
	if got := m.layoutCache.FooterH; got <= before {
		t.Fatalf("FooterH = %d, want more than %d while prompting", got, before)
	}

	m = press(t, m, "esc")
	if got := m.layoutCache.FooterH; got != before {
		t.Fatalf("FooterH = %d, want %d after closing the prompt", got, before)
	}
}

func TestHorizontalScrollFollowsCursor(t *testing.T) {
	m, _ := newSizedModel(t, 60, testHeight)
	visible := m.layoutCache.VisibleSlots

	m = press(t, m, "$")
	if want := 13 - visible; m.hscroll != want {
		t.Fatalf("hscroll = %d, want %d", m.hscroll, want)
	}

	m = press(t, m, "0")
	if m.hscroll != 0 {
		t.Fatalf("hscroll = %d, want 0", m.hscroll)
	}
}
