package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/yourusername/winrescue/internal/config"
	"github.com/yourusername/winrescue/internal/logging"
	"github.com/yourusername/winrescue/internal/models"
	"github.com/yourusername/winrescue/internal/output"
	"github.com/yourusername/winrescue/internal/platform"
	"github.com/yourusername/winrescue/internal/policy"
	"github.com/yourusername/winrescue/internal/scan"
	"github.com/yourusername/winrescue/internal/snapshot"
	"github.com/yourusername/winrescue/internal/types"
)

var (
	configPath  string
	jsonOutput  bool
	noColor     bool
	debugMode   bool
	strategy    string
	enumFailure string
	dryRun      bool
	summary     bool
	limit       int
	listAll     bool

	// newDesktop is swapped in tests
	newDesktop = platform.NewDesktop
)

// rootCmd scans once and fixes off-screen windows
var rootCmd = &cobra.Command{
	Use:   "winrescue",
	Short: "Bring off-screen windows back onto the primary screen",
	Long: `winrescue scans the visible top-level windows once and moves every window
that is mostly off-screen back to the top-left corner of the primary screen.

Hidden, minimized and untitled windows are ignored, as are windows already
anchored near the screen origin and windows that are more than half visible.
Maximized windows are restored before they are moved.`,
	Version:       "0.1.0",
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runScan,
}

// listCmd shows what a scan would decide without touching any window
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List top-level windows and how they classify",
	Long: `Lists top-level windows with their rectangle, visible percentage and the
decision a scan would take. No window is changed.

By default only visible, titled windows are shown. Use --all to include every window.`,
	Args: cobra.NoArgs,
	RunE: runList,
}

func runScan(cmd *cobra.Command, args []string) error {
	cfg, err := effectiveConfig(cmd)
	if err != nil {
		return err
	}

	desktop, err := newDesktop()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	opts := scan.Options{
		Strategy: cfg.GetStrategy(),
		DryRun:   cfg.DryRun,
		Limit:    cfg.Limit,
		OnAccessDenied: func() {
			output.PrintAccessDeniedTip(cmd.ErrOrStderr())
		},
	}
	if !jsonOutput {
		opts.OnRemediate = func(o *models.WindowOutcome) {
			output.PrintRemediation(cmd.OutOrStdout(), o, cfg.DryRun)
		}
	}

	report, err := scan.Run(ctx, desktop, opts)
	if err != nil {
		logging.Debug().Err(err).Msg("scan aborted")
		if cfg.EnumerationFatal() {
			return err
		}
		printError(cmd, err.Error())
		return nil
	}

	if jsonOutput {
		return printJSON(cmd, report)
	}

	if cfg.Summary {
		fmt.Fprintln(cmd.OutOrStdout())
		output.PrintSummaryTable(cmd.OutOrStdout(), report)
	}

	return nil
}

// listEntry is the JSON form of one listed window
type listEntry struct {
	Handle         string      `json:"handle"`
	Title          string      `json:"title"`
	Visible        bool        `json:"visible"`
	Minimized      bool        `json:"minimized"`
	Maximized      bool        `json:"maximized"`
	Rect           *types.Rect `json:"rect,omitempty"`
	DisplayPercent float64     `json:"displayPercent"`
	Verdict        string      `json:"verdict"`
}

func runList(cmd *cobra.Command, args []string) error {
	desktop, err := newDesktop()
	if err != nil {
		return err
	}

	windows, err := snapshot.All(desktop)
	if err != nil {
		if platform.IsAccessDenied(err) {
			output.PrintAccessDeniedTip(cmd.ErrOrStderr())
		}
		return err
	}
	screen := desktop.ScreenSize()

	var rows []output.WindowRow
	for snap := range windows {
		if !listAll && (!snap.IsVisible || snap.Title == "") {
			continue
		}
		rows = append(rows, output.WindowRow{Snapshot: snap, Verdict: policy.Classify(snap, screen)})
	}

	if jsonOutput {
		entries := make([]listEntry, 0, len(rows))
		for _, row := range rows {
			e := listEntry{
				Handle:         row.Snapshot.Handle.String(),
				Title:          row.Snapshot.Title,
				Visible:        row.Snapshot.IsVisible,
				Minimized:      row.Snapshot.IsMinimized,
				Maximized:      row.Snapshot.IsMaximized,
				DisplayPercent: row.Verdict.DisplayPercent,
				Verdict:        row.Verdict.Reason.String(),
			}
			if row.Snapshot.RectErr == nil {
				rect := row.Snapshot.Rect
				e.Rect = &rect
			}
			entries = append(entries, e)
		}
		return printJSON(cmd, entries)
	}

	if len(rows) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No windows found")
		return nil
	}

	output.PrintWindowsTable(cmd.OutOrStdout(), rows)
	fmt.Fprintf(cmd.OutOrStdout(), "\nScreen: %dx%d  Total: %d windows", screen.Width, screen.Height, len(rows))
	if !listAll {
		fmt.Fprint(cmd.OutOrStdout(), " (filtered, use --all to show all windows)")
	}
	fmt.Fprintln(cmd.OutOrStdout())
	return nil
}

// effectiveConfig loads --config (if given) and applies explicitly set flags on top
func effectiveConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("strategy") {
		cfg.Strategy = strategy
	}
	if flags.Changed("enum-failure") {
		cfg.EnumerationFailure = config.FailurePolicy(enumFailure)
	}
	if flags.Changed("dry-run") {
		cfg.DryRun = dryRun
	}
	if flags.Changed("summary") {
		cfg.Summary = summary
	}
	if flags.Changed("limit") {
		cfg.Limit = limit
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid flags: %w", err)
	}
	return cfg, nil
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Optional YAML or JSON config file")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output in JSON format")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colored output")
	rootCmd.PersistentFlags().BoolVar(&debugMode, "debug", false, "Enable debug logging")

	// Scan flags
	rootCmd.Flags().StringVar(&strategy, "strategy", "origin", "Remediation: origin (move only) or preserve-size (move and resize)")
	rootCmd.Flags().StringVar(&enumFailure, "enum-failure", "fatal", "When window enumeration fails: fatal (exit 1) or warn (exit 0)")
	rootCmd.Flags().BoolVar(&dryRun, "dry-run", false, "Report what would be fixed without moving windows")
	rootCmd.Flags().BoolVar(&summary, "summary", false, "Print a summary table after the scan")
	rootCmd.Flags().IntVar(&limit, "limit", 0, "Stop after fixing this many windows (0 = no limit)")

	// List flags
	listCmd.Flags().BoolVar(&listAll, "all", false, "Show hidden and untitled windows too")

	rootCmd.AddCommand(listCmd)

	// Disable color if requested, enable debug logging if requested
	cobra.OnInitialize(func() {
		if noColor {
			color.NoColor = true
			logging.SetNoColor(true)
		}
		if debugMode {
			logging.SetDebug(true)
		}
	})
}

func main() {
	// Initialize logging
	logging.Init(nil)
	defer logging.Close()

	if err := rootCmd.Execute(); err != nil {
		printError(rootCmd, err.Error())
		logging.Close()
		os.Exit(1)
	}
}

// Helper functions

func printJSON(cmd *cobra.Command, data interface{}) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(data)
}

func printError(cmd *cobra.Command, msg string) {
	output.PrintError(cmd.ErrOrStderr(), msg)
}
