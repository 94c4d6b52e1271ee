package main

import (
	"io"
	"log"
	"os"
	"strings"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/lixenwraith/konsole/terminal"
	"github.com/lixenwraith/konsole/terminal/terminaltest"
)

// labelBomb panics when a worker draws its label
type labelBomb struct {
	*terminaltest.Recorder
}

func (d *labelBomb) WriteRaw(text string) error {
	if strings.Contains(text, "worker-") {
		panic("label exploded")
	}
	return d.Recorder.WriteRaw(text)
}

func TestWorkerPanicReleasesOutput(t *testing.T) {
	var (
		mu    sync.Mutex
		codes []int
	)
	exit = func(code int) {
		mu.Lock()
		defer mu.Unlock()
		codes = append(codes, code)
	}
	t.Cleanup(func() { exit = os.Exit })

	d := &labelBomb{Recorder: terminaltest.NewRecorder(80, 24, terminal.NewState(terminal.White, terminal.Black, 0, 0, true))}
	con := terminal.NewConsole(d)

	var released atomic.Int32
	const workers = 3
	err := run(con, log.New(io.Discard, "", 0), func() { released.Add(1) }, workers, 2, 0, terminal.Green)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if got := released.Load(); got != workers {
		t.Errorf("Expected output released by %d workers, got %d", workers, got)
	}
	if len(codes) != workers {
		t.Fatalf("Expected %d exits, got %v", workers, codes)
	}
	for _, c := range codes {
		if c != 1 {
			t.Errorf("Expected exit code 1, got %d", c)
		}
	}

	// Recovered workers still leave the console usable
	if s := d.State(); s.Foreground != terminal.White || s.Background != terminal.Black {
		t.Errorf("Expected ambient colors after crashes, got %+v", s)
	}
}
