package ui

import (
	"os"
	"time"

	"github.com/briandowns/spinner"
)

type HistorySpinner []string

var (
	CommitDots HistorySpinner = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}
	Branches   HistorySpinner = []string{"●", "●─", "●─●", "●─●─", "●─●─●", "●─●─●─", "●─●─●─●"}
)

const maxSpinnerMessage = 60

type SpinnerCfg struct {
	Message  string
	Tokens   []string
	Duration time.Duration
}

var s *spinner.Spinner

// StartSpinner shows progress on stderr. It does nothing when stderr is not a
// terminal so piped output stays clean.
func StartSpinner(cfg *SpinnerCfg) {
	if !SupportsANSICodesFor(os.Stderr) {
		return
	}
	if cfg.Tokens == nil {
		cfg.Tokens = CommitDots
	}
	if cfg.Duration.Microseconds() == 0 {
		cfg.Duration = time.Duration(100) * time.Millisecond
	}
	s = spinner.New(cfg.Tokens, cfg.Duration)
	s.Writer = os.Stderr

	if cfg.Message != "" {
		s.Suffix = " " + Truncate(cfg.Message, maxSpinnerMessage)
	}

	s.Start()
}

func StopSpinner(msg string) {
	if s == nil {
		return
	}
	if msg != "" {
		s.FinalMSG = msg + "\n"
	}

	s.Stop()
	s = nil
}
