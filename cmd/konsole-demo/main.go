package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"runtime/debug"
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"
	"golang.org/x/term"

	"github.com/lixenwraith/konsole/terminal"
	"github.com/lixenwraith/konsole/terminal/tui"
)

var (
	driverFlag  = flag.String("driver", "auto", "Output driver: auto, ansi, tcell")
	workersFlag = flag.Int("workers", 6, "Number of concurrent progress bars")
	stepsFlag   = flag.Int("steps", 60, "Steps per progress bar")
	delayFlag   = flag.Duration("delay", 40*time.Millisecond, "Base delay between steps")
	logFlag     = flag.String("log", "", "Append diagnostics to this file")
	fgFlag      = flag.String("fg", "green", "Progress bar color")
)

// labelWidth is the column budget for worker names
const labelWidth = 10

// exit is swapped in tests
var exit = os.Exit

func main() {
	// Panic Recovery: main goroutine only, workers recover through crash themselves
	defer func() {
		if r := recover(); r != nil {
			crash(r)
		}
	}()

	flag.Parse()

	logger := log.New(io.Discard, "", 0)
	if *logFlag != "" {
		f, err := os.OpenFile(*logFlag, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to open log file: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		logger = log.New(f, "konsole-demo ", log.LstdFlags|log.Lmicroseconds)
	}

	barColor, err := terminal.ParseColor(*fgFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Invalid -fg: %v\n", err)
		os.Exit(2)
	}

	out, err := openOutput(*driverFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize terminal: %v\n", err)
		os.Exit(1)
	}
	defer out.close()

	con := terminal.NewConsole(out.driver, terminal.WithLogger(logger))
	logger.Printf("driver=%s size=%dx%d workers=%d", *driverFlag, con.WindowWidth(), con.WindowHeight(), *workersFlag)

	if err := run(con, logger, out.close, *workersFlag, *stepsFlag, *delayFlag, barColor); err != nil {
		logger.Printf("run: %v", err)
	}

	out.wait()
}

// crash resets the terminal, reports r with the current goroutine's stack and exits
func crash(r any) {
	terminal.EmergencyReset(os.Stdout)
	fmt.Fprintf(os.Stderr, "\r\n\x1b[31mKONSOLE-DEMO CRASHED: %v\x1b[0m\r\n", r)
	fmt.Fprintf(os.Stderr, "Stack Trace:\r\n%s\r\n", debug.Stack())
	exit(1)
}

// output bundles a driver with its lifecycle hooks
type output struct {
	driver terminal.Driver
	wait   func()
	close  func()
}

func openOutput(name string) (*output, error) {
	if name == "auto" {
		name = "ansi"
		if term.IsTerminal(int(os.Stdout.Fd())) {
			name = "tcell"
		}
	}

	switch name {
	case "ansi":
		d := terminal.NewANSIDriver(os.Stdout)
		if err := d.Reset(); err != nil {
			return nil, err
		}
		return &output{
			driver: d,
			wait:   func() {},
			close:  func() { terminal.EmergencyReset(os.Stdout) },
		}, nil

	case "tcell":
		screen, err := tcell.NewScreen()
		if err != nil {
			return nil, fmt.Errorf("tcell screen: %w", err)
		}
		if err := screen.Init(); err != nil {
			return nil, fmt.Errorf("tcell init: %w", err)
		}
		d := terminal.NewTcellDriver(screen)
		return &output{
			driver: d,
			wait: func() {
				for {
					if _, ok := screen.PollEvent().(*tcell.EventKey); ok {
						return
					}
				}
			},
			close: d.Fini,
		}, nil

	default:
		return nil, fmt.Errorf("unknown driver %q", name)
	}
}

// run animates one gauge per worker, every worker drawing from its own goroutine
// A worker panic releases the output through release before the process exits
func run(con *terminal.Console, logger *log.Logger, release func(), workers, steps int, delay time.Duration, barColor terminal.Color) error {
	if err := con.Clear(); err != nil {
		return err
	}
	if err := con.PrintLineColorf(terminal.Cyan, "konsole demo: %d workers, %d steps", workers, steps); err != nil {
		return err
	}

	gaugeWidth := con.WindowWidth() - labelWidth - 4
	if gaugeWidth > 60 {
		gaugeWidth = 60
	}

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			defer func() {
				if r := recover(); r != nil {
					release()
					crash(r)
				}
			}()
			row := id + 2
			name := fmt.Sprintf("worker-%d", id+1)
			pace := delay + time.Duration(id)*delay/3

			if err := tui.Label(con, 2, row, labelWidth, name, terminal.White); err != nil {
				logger.Printf("%s: label: %v", name, err)
				return
			}
			for step := 0; step <= steps; step++ {
				if err := tui.Spinner(con, 0, row, step, terminal.Yellow); err != nil {
					logger.Printf("%s: spinner: %v", name, err)
					return
				}
				if err := tui.Gauge(con, labelWidth+3, row, gaugeWidth, step, steps, barColor); err != nil {
					logger.Printf("%s: gauge: %v", name, err)
					return
				}
				time.Sleep(pace)
			}
			if err := con.PrintAtColor(terminal.Black, 0, row, "✓", barColor); err != nil {
				logger.Printf("%s: done marker: %v", name, err)
			}
		}(i)
	}
	wg.Wait()

	// Plain output continues from the cursor, which the workers never moved
	for i := 0; i <= workers; i++ {
		if err := con.PrintLine(""); err != nil {
			return err
		}
	}
	return con.PrintLineColor(terminal.Green, "all workers finished")
}
