package cmd

import (
	"fmt"
	"os"

	"github.com/schollz/progressbar/v3"
)

// barReporter renders pipeline progress as a terminal progress bar. Warnings
// go to stderr so they survive the bar redraws.
type barReporter struct {
	bar *progressbar.ProgressBar
}

func newBarReporter(description string) *barReporter {
	return &barReporter{
		bar: progressbar.NewOptions(100,
			progressbar.OptionSetDescription(description),
			progressbar.OptionSetWriter(os.Stderr),
			progressbar.OptionShowCount(),
			progressbar.OptionClearOnFinish(),
		),
	}
}

func (r *barReporter) Progress(fraction float64) {
	r.bar.Set(int(fraction * 100))
}

func (r *barReporter) Status(message string) {
	r.bar.Describe(message)
}

func (r *barReporter) Warning(message string) {
	fmt.Fprintf(os.Stderr, "\nWarning: %s\n", message)
}

func (r *barReporter) finish() {
	r.bar.Finish()
}
