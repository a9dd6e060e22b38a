package executor

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sort"
	"strings"
	"time"

	"github.com/bstn-hfmn/rustman/internal/types"
)

// DefaultTimeout is used when Execute is called with a zero timeout
const DefaultTimeout = 30 * time.Second

// Execute performs req and returns the response.
// Transport failures are reported on Response.Error; a request that cannot be
// built returns an error.
func Execute(ctx context.Context, req *types.Request, timeout time.Duration) (*types.Response, error) {
	target, err := BuildURL(req.URL, req.Query)
	if err != nil {
		return nil, err
	}

	var bodyReader io.Reader
	if req.Body != "" {
		bodyReader = bytes.NewBufferString(req.Body)
	}

	method := strings.ToUpper(strings.TrimSpace(req.Method))
	if method == "" {
		method = http.MethodGet
	}

	httpReq, err := http.NewRequestWithContext(ctx, method, target, bodyReader)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	keys := make([]string, 0, len(req.Headers))
	for key := range req.Headers {
		keys = append(keys, key)
	}
	// deterministic when keys differ only in case
	sort.Strings(keys)
	for _, key := range keys {
		value := req.Headers[key]
		if strings.EqualFold(key, "Host") {
			if httpReq.URL.Host == "" {
				httpReq.Host = value
			}
			continue
		}
		httpReq.Header.Set(key, value)
	}
	if httpReq.Header.Get("User-Agent") == "" {
		httpReq.Header.Set("User-Agent", types.DefaultUserAgent)
	}

	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	client := &http.Client{Timeout: timeout}

	startTime := time.Now()
	resp, err := client.Do(httpReq)
	duration := time.Since(startTime).Milliseconds()

	if err != nil {
		return &types.Response{
			Time:    duration,
			Headers: map[string]string{},
			Error:   err.Error(),
		}, nil
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	duration = time.Since(startTime).Milliseconds()
	if err != nil {
		return &types.Response{
			Time:       duration,
			Status:     resp.StatusCode,
			StatusText: resp.Status,
			Headers:    flattenHeaders(resp.Header),
			Error:      fmt.Sprintf("failed to read response body: %v", err),
		}, nil
	}

	return &types.Response{
		Time:       duration,
		Status:     resp.StatusCode,
		StatusText: resp.Status,
		Size:       len(bodyBytes),
		Body:       string(bodyBytes),
		Headers:    flattenHeaders(resp.Header),
	}, nil
}

// BuildURL adds a default http scheme and merges query into raw.
// Existing query parameters are kept; entries in query replace them.
func BuildURL(raw string, query map[string]string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty URL")
	}
	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", fmt.Errorf("invalid URL %q: %w", raw, err)
	}

	if len(query) > 0 {
		values := u.Query()
		for key, value := range query {
			values.Set(key, value)
		}
		u.RawQuery = values.Encode()
	}

	return u.String(), nil
}

func flattenHeaders(h http.Header) map[string]string {
	headers := make(map[string]string, len(h))
	for key, values := range h {
		headers[key] = strings.Join(values, ", ")
	}
	return headers
}

// FormatDuration formats duration in milliseconds to human-readable string
func FormatDuration(ms int64) string {
	if ms < 1000 {
		return fmt.Sprintf("%dms", ms)
	}
	seconds := float64(ms) / 1000.0
	return fmt.Sprintf("%.2fs", seconds)
}

// FormatSize formats byte size to human-readable string
func FormatSize(bytes int) string {
	if bytes < 1024 {
		return fmt.Sprintf("%dB", bytes)
	}
	if bytes < 1024*1024 {
		return fmt.Sprintf("%.2fKB", float64(bytes)/1024.0)
	}
	return fmt.Sprintf("%.2fMB", float64(bytes)/(1024.0*1024.0))
}

// IsSuccessStatus returns true if status code is 2xx
func IsSuccessStatus(status int) bool {
	return status >= 200 && status < 300
}

// IsClientErrorStatus returns true if status code is 4xx
func IsClientErrorStatus(status int) bool {
	return status >= 400 && status < 500
}

// IsServerErrorStatus returns true if status code is 5xx
func IsServerErrorStatus(status int) bool {
	return status >= 500 && status < 600
}
