package output

import (
	"fmt"
	"io"
	"strconv"

	"github.com/fatih/color"

	"github.com/yourusername/winrescue/internal/models"
)

// AccessDeniedTip is shown once per run when the OS refused an operation
const AccessDeniedTip = "Tip: Try running as administrator."

var (
	keyColor   = color.New(color.FgYellow)
	titleColor = color.New(color.FgCyan)
	okColor    = color.New(color.FgGreen, color.Bold)
	failColor  = color.New(color.FgRed, color.Bold)
	tipColor   = color.New(color.FgMagenta, color.Bold)
)

// FormatPercent renders a [0,1] fraction as a two-decimal percentage
func FormatPercent(fraction float64) string {
	return fmt.Sprintf("%.2f%%", fraction*100)
}

// PrintRemediation prints the single line reported for each remediated window
func PrintRemediation(w io.Writer, o *models.WindowOutcome, dryRun bool) {
	status := okColor.Sprint("fixed")
	switch {
	case dryRun:
		status = keyColor.Sprint("dry-run")
	case len(o.Errors) > 0:
		status = failColor.Sprint("failed")
	case !o.Repositioned:
		status = failColor.Sprint("unchanged")
	}

	fmt.Fprintf(w, "%s %s %s %s %s %s %s %s [%s]\n",
		keyColor.Sprint("Title:"), titleColor.Sprint(strconv.Quote(o.Title)),
		keyColor.Sprint("Percent:"), FormatPercent(o.DisplayPercent),
		keyColor.Sprint("Handle:"), o.Handle,
		keyColor.Sprint("Rect:"), o.Rect.String(),
		status,
	)
}

// PrintAccessDeniedTip prints the privilege hint
func PrintAccessDeniedTip(w io.Writer) {
	tipColor.Fprintln(w, AccessDeniedTip)
}

// PrintError prints a failure message, matching the CLI's error style
func PrintError(w io.Writer, msg string) {
	if color.NoColor {
		fmt.Fprintln(w, "Error:", msg)
		return
	}
	failColor.Fprint(w, "✗ Error: ")
	fmt.Fprintln(w, msg)
}
