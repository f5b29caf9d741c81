package slot

import (
	"errors"
	"math"
	"testing"
)

func TestLabel(t *testing.T) {
	tests := []struct {
		slot int
		want string
	}{
		{0, "6:00 am"},
		{3, "9:00 am"},
		{5, "11:00 am"},
		{6, "12:00 pm"},
		{7, "1:00 pm"},
		{12, "6:00 pm"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			got, err := Label(tt.slot)
			if err != nil {
				t.Fatalf("Label(%d) error: %v", tt.slot, err)
			}
			if got != tt.want {
				t.Errorf("Label(%d) = %q, want %q", tt.slot, got, tt.want)
			}
		})
	}
}

func TestLabel_OutOfRange(t *testing.T) {
	for _, s := range []int{-1, 13, 100} {
		if _, err := Label(s); !errors.Is(err, ErrSlotOutOfRange) {
			t.Errorf("Label(%d) error = %v, want ErrSlotOutOfRange", s, err)
		}
	}
}

func TestToSlot(t *testing.T) {
	tests := []struct {
		label   string
		want    int
		wantErr error
	}{
		{label: "6:00 am", want: 0},
		{label: "9:00 am", want: 3},
		{label: "12:00 pm", want: 6},
		{label: "6:00 pm", want: 12},
		{label: "9:30 am", want: 4},
		{label: "9:15 am", want: 3},
		{label: "11:45 AM", want: 6},
		{label: "9 am", want: 3},
		{label: "5:45 am", want: 0},
		{label: "6:20 pm", want: 12},
		{label: "12:30 am", wantErr: ErrSlotOutOfRange},
		{label: "8:00 pm", wantErr: ErrSlotOutOfRange},
		{label: "nine", wantErr: ErrUnknownLabel},
		{label: "", wantErr: ErrUnknownLabel},
		{label: "13:00 pm", wantErr: ErrUnknownLabel},
		{label: "9:5 am", wantErr: ErrUnknownLabel},
		{label: "9:00 xm", wantErr: ErrUnknownLabel},
	}

	for _, tt := range tests {
		t.Run(tt.label, func(t *testing.T) {
			got, err := ToSlot(tt.label)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("ToSlot(%q) error = %v, want %v", tt.label, err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("ToSlot(%q) error: %v", tt.label, err)
			}
			if got != tt.want {
				t.Errorf("ToSlot(%q) = %d, want %d", tt.label, got, tt.want)
			}
		})
	}
}

func TestAddDuration(t *testing.T) {
	tests := []struct {
		start string
		hours float64
		want  string
	}{
		{"9:00 am", 0.5, "9:30 am"},
		{"11:00 am", 0.5, "11:30 am"},
		{"11:30 am", 1, "12:30 pm"},
		{"1:00 pm", 0.75, "1:45 pm"},
		{"10:00 am", 4, "2:00 pm"},
		{"5:00 pm", 2, "7:00 pm"},
		{"11:00 pm", 2, "1:00 am"},
		{"12:00 am", 0.25, "12:15 am"},
	}

	for _, tt := range tests {
		t.Run(tt.start, func(t *testing.T) {
			got, err := AddDuration(tt.start, tt.hours)
			if err != nil {
				t.Fatalf("AddDuration error: %v", err)
			}
			if got != tt.want {
				t.Errorf("AddDuration(%q, %v) = %q, want %q", tt.start, tt.hours, got, tt.want)
			}
		})
	}
}

func TestAddDuration_UnknownLabel(t *testing.T) {
	if _, err := AddDuration("soon", 1); !errors.Is(err, ErrUnknownLabel) {
		t.Errorf("error = %v, want ErrUnknownLabel", err)
	}
}

func TestRoundTrip(t *testing.T) {
	durations := []float64{0.25, 0.5, 0.75, 1, 1.5, 2, 2.25, 3, 4, 6, 8}
	for s := First; s <= Last; s++ {
		for _, d := range durations {
			if float64(s)+d > Last {
				continue
			}
			start := MustLabel(s)
			end, err := AddDuration(start, d)
			if err != nil {
				t.Fatalf("AddDuration(%q, %v): %v", start, d, err)
			}
			got, err := ToSlot(end)
			if err != nil {
				t.Fatalf("ToSlot(%q): %v", end, err)
			}
			want := int(math.Round(float64(s) + d))
			if got != want {
				t.Errorf("s=%d d=%v: ToSlot(%q) = %d, want %d", s, d, end, got, want)
			}
		}
	}
}

func TestEndLabel(t *testing.T) {
	if got := EndLabel(5, 0.5); got != "11:30 am" {
		t.Errorf("EndLabel(5, 0.5) = %q", got)
	}
	if got := EndLabel(11, 1); got != "6:00 pm" {
		t.Errorf("EndLabel(11, 1) = %q", got)
	}
}

func TestHeaderLabel(t *testing.T) {
	want := []string{"6am", "7am", "8am", "9am", "10am", "11am", "12pm", "1pm", "2pm", "3pm", "4pm", "5pm", "6pm"}
	for i, w := range want {
		if got := HeaderLabel(i); got != w {
			t.Errorf("HeaderLabel(%d) = %q, want %q", i, got, w)
		}
	}
}

func TestOptions(t *testing.T) {
	opts := Options()
	if len(opts) != Count {
		t.Fatalf("expected %d options, got %d", Count, len(opts))
	}
	if opts[3].Value != "9:00 am" || opts[3].Label != "9:00 AM" || opts[3].Index != 3 {
		t.Errorf("unexpected option 3: %+v", opts[3])
	}
}

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		hours float64
		want  string
	}{
		{0.5, "30 min"},
		{0.25, "15 min"},
		{1, "1h"},
		{2, "2h"},
		{1.5, "1h 30m"},
		{0.75, "45 min"},
		{2.25, "2h 15m"},
	}
	for _, tt := range tests {
		if got := FormatDuration(tt.hours); got != tt.want {
			t.Errorf("FormatDuration(%v) = %q, want %q", tt.hours, got, tt.want)
		}
	}
}
