package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"strings"

	"github.com/bstn-hfmn/rustman/internal/cli"
	"github.com/bstn-hfmn/rustman/internal/config"
	"github.com/bstn-hfmn/rustman/internal/history"
	"github.com/bstn-hfmn/rustman/internal/keybinds"
	"github.com/bstn-hfmn/rustman/internal/tui"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

var (
	version = "1.0.0"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		if !errors.Is(err, cli.ErrRequestFailed) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "rustman",
	Short: "Rustman - terminal HTTP request builder",
	Long: `Rustman is a terminal request builder for HTTP with a history sidebar,
a URL bar and side-by-side request and response panes.

Navigate mode: arrows move between panes, e edits the selected pane, q quits.
Edit mode: type into the URL bar or request body, enter sends, esc goes back.
The URL bar accepts an optional method prefix such as "POST example.com/users".

Examples:
  rustman                                  # Start interactive TUI
  rustman --no-history                     # Start without reading or saving history
  rustman send example.com/users           # Execute a GET without the TUI
  rustman send POST example.com -d '{}'    # Execute a POST and print the response
  rustman history --limit 20               # Show the last 20 requests
  rustman history --stats                  # Show per-endpoint statistics
  rustman keys                             # List keybindings after config overrides`,
	Version:       version,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := config.Initialize(); err != nil {
			return fmt.Errorf("failed to initialize config: %w", err)
		}
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		settings, err := loadSettings()
		if err != nil {
			return err
		}

		closeLog, err := setupLogging()
		if err != nil {
			return err
		}
		defer closeLog()

		return tui.Run(tui.Options{
			Settings:  settings,
			NoHistory: flagNoHistory,
		})
	},
}

var sendCmd = &cobra.Command{
	Use:   "send [method] <url>",
	Short: "Execute a single request without the TUI",
	Args:  cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		settings, err := loadSettings()
		if err != nil {
			return err
		}

		headers, err := cli.ParseHeaders(flagHeaders)
		if err != nil {
			return err
		}

		opts := cli.SendOptions{
			URL:          args[len(args)-1],
			Body:         flagBody,
			Headers:      headers,
			UserAgent:    settings.Request.UserAgent,
			Timeout:      settings.Request.Timeout,
			OutputFormat: flagOutput,
			ShowFull:     flagFull,
		}
		if len(args) == 2 {
			opts.Method = args[0]
		}

		if settings.History.Enabled && !flagNoHistory {
			mgr, err := history.NewManager(config.DatabasePath)
			if err != nil {
				return err
			}
			defer mgr.Close()
			opts.History = mgr
		}

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()

		return cli.Send(ctx, cmd.OutOrStdout(), opts)
	},
}

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show or clear request history",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		mgr, err := history.NewManager(config.DatabasePath)
		if err != nil {
			return err
		}
		defer mgr.Close()

		if flagClear {
			count, err := mgr.Count()
			if err != nil {
				return err
			}
			if err := mgr.Clear(); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Cleared %d history entries\n", count)
			return nil
		}

		if flagStats {
			stats, err := mgr.Stats()
			if err != nil {
				return err
			}
			return cli.PrintStats(cmd.OutOrStdout(), stats, flagOutput)
		}

		entries, err := mgr.Load(flagLimit)
		if err != nil {
			return err
		}
		return cli.PrintHistory(cmd.OutOrStdout(), entries, flagOutput)
	},
}

var keysCmd = &cobra.Command{
	Use:   "keys",
	Short: "List the active keybindings",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		settings, err := loadSettings()
		if err != nil {
			return err
		}

		registry, err := keybinds.Build(settings.Keybinds)
		if err != nil {
			return fmt.Errorf("invalid keybinds: %w", err)
		}
		return cli.PrintKeybinds(cmd.OutOrStdout(), registry)
	},
}

// Global flags
var (
	flagConfig    string
	flagNoHistory bool
	flagDebug     bool
)

// Flags for send/history
var (
	flagOutput  string
	flagBody    string
	flagHeaders []string
	flagFull    bool
	flagLimit   int
	flagClear   bool
	flagStats   bool
)

func init() {
	rootCmd.PersistentFlags().StringVarP(&flagConfig, "config", "c", "", "Config file (default ~/.rustman/config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&flagNoHistory, "no-history", false, "Do not read or save request history")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Write debug logs to ~/.rustman/debug.log")

	sendCmd.Flags().StringVarP(&flagBody, "data", "d", "", "Request body")
	sendCmd.Flags().StringArrayVarP(&flagHeaders, "header", "H", []string{}, "Header (Name: value), can be repeated")
	sendCmd.Flags().StringVarP(&flagOutput, "output", "o", "text", "Output format (text/json/yaml/body)")
	sendCmd.Flags().BoolVarP(&flagFull, "full", "f", false, "Show response headers")

	historyCmd.Flags().IntVarP(&flagLimit, "limit", "n", 50, "Number of entries to show (0 for all)")
	historyCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete all history entries")
	historyCmd.Flags().BoolVar(&flagStats, "stats", false, "Show call counts and timings per endpoint")
	historyCmd.Flags().StringVarP(&flagOutput, "output", "o", "text", "Output format (text/json/yaml)")

	rootCmd.AddCommand(sendCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(keysCmd)
}

func loadSettings() (*config.Settings, error) {
	path := flagConfig
	if path == "" {
		path = config.ConfigFile
	}

	settings, err := config.Load(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return settings, nil
}

// setupLogging routes the log package to a file while the TUI owns the
// terminal, or discards it
func setupLogging() (func(), error) {
	if !flagDebug && strings.TrimSpace(os.Getenv("RUSTMAN_DEBUG")) == "" {
		log.SetOutput(io.Discard)
		return func() {}, nil
	}

	f, err := tea.LogToFile(config.LogFile, "rustman")
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}
	return func() { f.Close() }, nil
}
