package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/bstn-hfmn/rustman/internal/executor"
	"github.com/bstn-hfmn/rustman/internal/history"
	"github.com/bstn-hfmn/rustman/internal/keybinds"
	"github.com/bstn-hfmn/rustman/internal/types"
	"gopkg.in/yaml.v3"
)

// ErrRequestFailed is returned by Send when the request got no response or a
// 4xx/5xx status. The output has already been written.
var ErrRequestFailed = errors.New("request failed")

// SendOptions configures a headless request
type SendOptions struct {
	Method       string
	URL          string
	Body         string
	Headers      map[string]string
	UserAgent    string
	Timeout      time.Duration
	OutputFormat string // text, json, yaml or body
	ShowFull     bool
	History      *history.Manager // nil skips saving
}

// Send executes one request and writes the formatted response to w
func Send(ctx context.Context, w io.Writer, opts SendOptions) error {
	req := types.NewRequest()
	req.URL = opts.URL
	req.Body = opts.Body

	switch {
	case opts.Method != "":
		req.Method = strings.ToUpper(opts.Method)
	case opts.Body != "":
		req.Method = http.MethodPost
	}

	if opts.Body != "" {
		req.SetHeader("Content-Type", "application/json")
	}
	if opts.UserAgent != "" {
		req.SetHeader("User-Agent", opts.UserAgent)
	}
	for key, value := range opts.Headers {
		req.SetHeader(key, value)
	}

	resp, err := executor.Execute(ctx, req, opts.Timeout)
	if err != nil {
		return err
	}

	if opts.History != nil {
		if err := opts.History.Save(req, resp); err != nil {
			log.Printf("history: %v", err)
		}
	}

	output, err := formatOutput(resp, opts.OutputFormat, opts.ShowFull)
	if err != nil {
		return fmt.Errorf("failed to format output: %w", err)
	}
	if _, err := io.WriteString(w, output); err != nil {
		return err
	}

	if resp.Error != "" || resp.Status >= 400 {
		return ErrRequestFailed
	}
	return nil
}

// ParseHeaders turns "Name: value" strings into a header map
func ParseHeaders(raw []string) (map[string]string, error) {
	headers := make(map[string]string, len(raw))
	for _, h := range raw {
		name, value, ok := strings.Cut(h, ":")
		name = strings.TrimSpace(name)
		if !ok || name == "" {
			return nil, fmt.Errorf("invalid header %q (expected Name: value)", h)
		}
		headers[http.CanonicalHeaderKey(name)] = strings.TrimSpace(value)
	}
	return headers, nil
}

// formatOutput formats the response based on the output format
func formatOutput(resp *types.Response, format string, showFull bool) (string, error) {
	switch format {
	case "json":
		data, err := json.MarshalIndent(resp, "", "  ")
		if err != nil {
			return "", err
		}
		return string(data) + "\n", nil

	case "yaml":
		data, err := yaml.Marshal(resp)
		if err != nil {
			return "", err
		}
		return string(data), nil

	case "body":
		return resp.Body, nil

	case "text", "":
		var sb strings.Builder

		if resp.Error == "" {
			sb.WriteString(fmt.Sprintf("%s%s%s\n", getStatusColor(resp.Status), resp.StatusText, colorReset))
		}
		sb.WriteString(fmt.Sprintf("Duration: %s | Size: %s\n",
			executor.FormatDuration(resp.Time),
			executor.FormatSize(resp.Size)))

		if showFull && len(resp.Headers) > 0 {
			sb.WriteString("\nHeaders:\n")
			keys := make([]string, 0, len(resp.Headers))
			for key := range resp.Headers {
				keys = append(keys, key)
			}
			sort.Strings(keys)
			for _, key := range keys {
				sb.WriteString(fmt.Sprintf("  %s: %s\n", key, resp.Headers[key]))
			}
		}

		if resp.Body != "" {
			sb.WriteString("\n")
			sb.WriteString(resp.Body)
			sb.WriteString("\n")
		}

		if resp.Error != "" {
			sb.WriteString(fmt.Sprintf("%sError: %s%s\n", colorRed, resp.Error, colorReset))
		}

		return sb.String(), nil

	default:
		return "", fmt.Errorf("unknown output format %q (use text, json, yaml or body)", format)
	}
}

// PrintHistory writes entries as a table, or as json/yaml
func PrintHistory(w io.Writer, entries []types.HistoryEntry, format string) error {
	switch format {
	case "json":
		data, err := json.MarshalIndent(entries, "", "  ")
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(w, string(data))
		return err

	case "yaml":
		data, err := yaml.Marshal(entries)
		if err != nil {
			return err
		}
		_, err = w.Write(data)
		return err

	case "text", "":
		if len(entries) == 0 {
			_, err := fmt.Fprintln(w, "No history entries")
			return err
		}
		for _, e := range entries {
			status := fmt.Sprintf("%s%d%s", getStatusColor(e.ResponseStatus), e.ResponseStatus, colorReset)
			if e.Error != "" {
				status = colorRed + "ERR" + colorReset
			}
			if _, err := fmt.Fprintf(w, "%4d  %s  %-7s %s  %s  %s\n",
				e.ID,
				e.Timestamp.Local().Format("2006-01-02 15:04:05"),
				e.Method,
				status,
				executor.FormatDuration(e.Duration),
				e.URL,
			); err != nil {
				return err
			}
		}
		return nil

	default:
		return fmt.Errorf("unknown output format %q (use text, json or yaml)", format)
	}
}

// PrintStats writes per-endpoint aggregates as a table, or as json/yaml
func PrintStats(w io.Writer, stats []history.Stats, format string) error {
	switch format {
	case "json":
		data, err := json.MarshalIndent(stats, "", "  ")
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(w, string(data))
		return err

	case "yaml":
		data, err := yaml.Marshal(stats)
		if err != nil {
			return err
		}
		_, err = w.Write(data)
		return err

	case "text", "":
		if len(stats) == 0 {
			_, err := fmt.Fprintln(w, "No history entries")
			return err
		}
		for _, s := range stats {
			codes := make([]int, 0, len(s.StatusCodes))
			for code := range s.StatusCodes {
				codes = append(codes, code)
			}
			sort.Ints(codes)

			parts := make([]string, 0, len(codes))
			for _, code := range codes {
				label := strconv.Itoa(code)
				if code == 0 {
					label = "ERR"
				}
				parts = append(parts, fmt.Sprintf("%s%s%s×%d", getStatusColor(code), label, colorReset, s.StatusCodes[code]))
			}

			if _, err := fmt.Fprintf(w, "%-7s %s\n  calls: %d  success: %.0f%%  avg: %s  min: %s  max: %s  codes: %s\n",
				s.Method,
				s.URL,
				s.TotalCalls,
				s.SuccessRate(),
				executor.FormatDuration(int64(s.AvgDurationMs)),
				executor.FormatDuration(s.MinDurationMs),
				executor.FormatDuration(s.MaxDurationMs),
				strings.Join(parts, " "),
			); err != nil {
				return err
			}
		}
		return nil

	default:
		return fmt.Errorf("unknown output format %q (use text, json or yaml)", format)
	}
}

// PrintKeybinds lists the bindings of every context, global ones last
func PrintKeybinds(w io.Writer, registry *keybinds.Registry) error {
	for _, ctx := range keybinds.AllContexts {
		if ctx == keybinds.ContextGlobal {
			continue
		}
		if _, err := fmt.Fprintf(w, "%s:\n", ctx); err != nil {
			return err
		}
		for _, b := range registry.ListBindings(ctx) {
			key := b.Key
			if b.Context == keybinds.ContextGlobal {
				key += " (global)"
			}
			if _, err := fmt.Fprintf(w, "  %-22s %s\n", key, b.Action); err != nil {
				return err
			}
		}
	}
	return nil
}

// ANSI color codes
const (
	colorReset  = "\x1b[0m"
	colorRed    = "\x1b[31m"
	colorGreen  = "\x1b[32m"
	colorYellow = "\x1b[33m"
)

func getStatusColor(status int) string {
	switch {
	case executor.IsSuccessStatus(status):
		return colorGreen
	case executor.IsClientErrorStatus(status), executor.IsServerErrorStatus(status), status == 0:
		return colorRed
	default:
		return colorYellow
	}
}
