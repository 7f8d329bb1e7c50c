package spinner

import (
	"os"
	"strings"
	"time"

	"github.com/briandowns/spinner"
)

// Start shows a spinner on stderr while a slow probe runs and returns the
// function that stops and clears it. Frames go to stderr so piped stdout
// (e.g. `sysprobe report > out.json`) stays clean.
//
//	stop := spinner.Start("Collecting system report")
//	doc, err := si.ToDocument(ctx, cfg)
//	stop()
func Start(message string) func() {
	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond,
		spinner.WithWriter(os.Stderr))
	s.Suffix = " " + strings.TrimSpace(message)
	s.Start()

	return s.Stop
}
