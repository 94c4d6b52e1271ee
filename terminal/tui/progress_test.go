package tui

import (
	"testing"

	"github.com/lixenwraith/konsole/terminal"
	"github.com/lixenwraith/konsole/terminal/terminaltest"
)

func TestProgressBar(t *testing.T) {
	tests := []struct {
		name string
		w    int
		pct  float64
		want string
	}{
		{"Empty", 4, 0, "░░░░"},
		{"Half", 4, 0.5, "██░░"},
		{"HalfCell", 4, 0.625, "██▌░"},
		{"Full", 4, 1, "████"},
		{"ClampHigh", 3, 2.5, "███"},
		{"ClampLow", 3, -1, "░░░"},
		{"ZeroWidth", 0, 0.5, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ProgressBar(tt.w, tt.pct); got != tt.want {
				t.Errorf("Expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestGaugeText(t *testing.T) {
	tests := []struct {
		name       string
		w          int
		value, max int
		want       string
	}{
		{"Half", 12, 50, 100, "[██▌░░]  50%"},
		{"Done", 12, 100, 100, "[█████] 100%"},
		{"ZeroMax", 12, 3, 0, "[░░░░░]   0%"},
		{"Narrow", 5, 1, 1, "[█] 100%"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := GaugeText(tt.w, tt.value, tt.max); got != tt.want {
				t.Errorf("Expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestWidgetsDrawThroughPositionWriter(t *testing.T) {
	ambient := terminal.NewState(terminal.Gray, terminal.Black, 0, 10, true)
	rec := terminaltest.NewRecorder(40, 12, ambient)
	con := terminal.NewConsole(rec)

	if err := Gauge(con, 2, 3, 12, 50, 100, terminal.Green); err != nil {
		t.Fatal(err)
	}
	if err := Spinner(con, 0, 3, 11, terminal.Cyan); err != nil {
		t.Fatal(err)
	}
	if err := Label(con, 0, 4, 6, "hello world", terminal.White); err != nil {
		t.Fatal(err)
	}

	want := []string{
		"cursor=2,3", "fg=Green", `write="[██▌░░]  50%"`, "cursor=0,10", "fg=Gray",
		"cursor=0,3", "fg=Cyan", `write="⠙"`, "cursor=0,10", "fg=Gray",
		"cursor=0,4", "fg=White", `write="hello…"`, "cursor=0,10", "fg=Gray",
	}
	got := rec.Trace()
	if len(got) != len(want) {
		t.Fatalf("Expected %d trace entries, got %d: %q", len(want), len(got), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Entry %d: expected %q, got %q", i, want[i], got[i])
		}
	}

	if rec.State() != ambient {
		t.Errorf("Expected ambient state restored, got %+v", rec.State())
	}
}

func TestWidgetsSkipDegenerateSizes(t *testing.T) {
	rec := terminaltest.NewRecorder(40, 12, terminal.NewState(terminal.Gray, terminal.Black, 0, 0, true))
	con := terminal.NewConsole(rec)

	if err := Gauge(con, 0, 0, 4, 1, 2, terminal.Green); err != nil {
		t.Fatal(err)
	}
	if err := Progress(con, 0, 0, 0, 0.5, terminal.Green); err != nil {
		t.Fatal(err)
	}
	if err := Label(con, 0, 0, 0, "x", terminal.Green); err != nil {
		t.Fatal(err)
	}

	if n := len(rec.Trace()); n != 0 {
		t.Errorf("Expected nothing drawn, got %q", rec.Trace())
	}
}

func TestSpinnerNegativeFrame(t *testing.T) {
	rec := terminaltest.NewRecorder(40, 12, terminal.NewState(terminal.Gray, terminal.Black, 0, 0, true))
	con := terminal.NewConsole(rec)

	if err := Spinner(con, 0, 0, -3, terminal.Cyan); err != nil {
		t.Fatal(err)
	}
	if got := rec.Trace()[2]; got != `write="⠸"` {
		t.Errorf("Expected frame 3, got %q", got)
	}
}
