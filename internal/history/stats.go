package history

import (
	"encoding/json"
	"fmt"
	"strconv"
	"time"
)

// Stats aggregates every stored call of one method and URL
type Stats struct {
	Method        string      `json:"method" yaml:"method"`
	URL           string      `json:"url" yaml:"url"`
	TotalCalls    int         `json:"totalCalls" yaml:"totalCalls"`
	SuccessCount  int         `json:"successCount" yaml:"successCount"`
	ErrorCount    int         `json:"errorCount" yaml:"errorCount"`
	NetworkErrors int         `json:"networkErrors" yaml:"networkErrors"` // no response (status 0)
	AvgDurationMs float64     `json:"avgDurationMs" yaml:"avgDurationMs"`
	MinDurationMs int64       `json:"minDurationMs" yaml:"minDurationMs"`
	MaxDurationMs int64       `json:"maxDurationMs" yaml:"maxDurationMs"`
	TotalRespSize int64       `json:"totalRespSize" yaml:"totalRespSize"`
	StatusCodes   map[int]int `json:"statusCodes" yaml:"statusCodes"`
	LastCalled    time.Time   `json:"lastCalled" yaml:"lastCalled"`
}

// Stats returns one row per method and URL, most recently called first
func (m *Manager) Stats() ([]Stats, error) {
	query := `
		WITH status_codes_agg AS (
			SELECT
				method,
				url,
				json_group_object(CAST(response_status AS TEXT), count) AS status_codes_json
			FROM (
				SELECT method, url, response_status, COUNT(*) AS count
				FROM history
				GROUP BY method, url, response_status
			)
			GROUP BY method, url
		)
		SELECT
			h.method,
			h.url,
			COUNT(*) AS total_calls,
			SUM(CASE WHEN h.response_status >= 200 AND h.response_status < 300 THEN 1 ELSE 0 END) AS success_count,
			SUM(CASE WHEN h.response_status >= 400 THEN 1 ELSE 0 END) AS error_count,
			SUM(CASE WHEN h.response_status = 0 THEN 1 ELSE 0 END) AS network_errors,
			AVG(h.duration_ms) AS avg_duration,
			MIN(h.duration_ms) AS min_duration,
			MAX(h.duration_ms) AS max_duration,
			SUM(h.response_size) AS total_resp_size,
			MAX(h.timestamp) AS last_called,
			COALESCE(s.status_codes_json, '{}') AS status_codes_json
		FROM history h
		LEFT JOIN status_codes_agg s ON h.method = s.method AND h.url = s.url
		GROUP BY h.method, h.url
		ORDER BY last_called DESC
	`

	rows, err := m.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to get history stats: %w", err)
	}
	defer rows.Close()

	var statsList []Stats
	for rows.Next() {
		var s Stats
		var lastCalled string
		var statusCodesJSON string

		err := rows.Scan(
			&s.Method,
			&s.URL,
			&s.TotalCalls,
			&s.SuccessCount,
			&s.ErrorCount,
			&s.NetworkErrors,
			&s.AvgDurationMs,
			&s.MinDurationMs,
			&s.MaxDurationMs,
			&s.TotalRespSize,
			&lastCalled,
			&statusCodesJSON,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan stats: %w", err)
		}

		s.LastCalled = parseTimestamp(lastCalled)

		var codes map[string]int
		if err := json.Unmarshal([]byte(statusCodesJSON), &codes); err != nil {
			return nil, fmt.Errorf("failed to unmarshal status codes: %w", err)
		}
		s.StatusCodes = make(map[int]int, len(codes))
		for codeStr, count := range codes {
			if code, err := strconv.Atoi(codeStr); err == nil {
				s.StatusCodes[code] = count
			}
		}

		statsList = append(statsList, s)
	}

	return statsList, rows.Err()
}

// SuccessRate is the share of calls that returned 2xx, in percent
func (s Stats) SuccessRate() float64 {
	if s.TotalCalls == 0 {
		return 0
	}
	return float64(s.SuccessCount) / float64(s.TotalCalls) * 100
}
