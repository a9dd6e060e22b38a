package types

import (
	"net/http"
	"strings"
	"time"
)

// DefaultUserAgent is sent unless the request overrides it
const DefaultUserAgent = "Rustman/ 1.0.0"

// Request is the request being built in the URL bar and request pane
type Request struct {
	Method  string            `json:"method" yaml:"method"`
	URL     string            `json:"url" yaml:"url"`
	Query   map[string]string `json:"query,omitempty" yaml:"query,omitempty"`
	Headers map[string]string `json:"headers,omitempty" yaml:"headers,omitempty"`
	Body    string            `json:"body,omitempty" yaml:"body,omitempty"`
}

// NewRequest returns a GET request carrying the default headers
func NewRequest() *Request {
	return &Request{
		Method: "GET",
		Query:  map[string]string{},
		Headers: map[string]string{
			"User-Agent": DefaultUserAgent,
			"Accept":     "application/json",
			"Host":       "localhost",
		},
	}
}

// SetHeader sets a header under its canonical name, replacing any entry that
// differs only in case
func (r *Request) SetHeader(name, value string) {
	if r.Headers == nil {
		r.Headers = map[string]string{}
	}
	for key := range r.Headers {
		if strings.EqualFold(key, name) {
			delete(r.Headers, key)
		}
	}
	r.Headers[http.CanonicalHeaderKey(name)] = value
}

// Response holds the outcome of an executed request
type Response struct {
	Time       int64             `json:"time" yaml:"time"` // milliseconds
	Status     int               `json:"status" yaml:"status"`
	StatusText string            `json:"statusText" yaml:"statusText"`
	Size       int               `json:"size" yaml:"size"` // bytes
	Body       string            `json:"body" yaml:"body"`
	Headers    map[string]string `json:"headers" yaml:"headers"`
	Error      string            `json:"error,omitempty" yaml:"error,omitempty"`
}

// HistoryEntry is a stored request/response pair
type HistoryEntry struct {
	ID                 int64             `json:"id" yaml:"id"`
	Timestamp          time.Time         `json:"timestamp" yaml:"timestamp"`
	Method             string            `json:"method" yaml:"method"`
	URL                string            `json:"url" yaml:"url"`
	Headers            map[string]string `json:"headers" yaml:"headers"`
	Body               string            `json:"body,omitempty" yaml:"body,omitempty"`
	ResponseStatus     int               `json:"responseStatus" yaml:"responseStatus"`
	ResponseStatusText string            `json:"responseStatusText" yaml:"responseStatusText"`
	ResponseHeaders    map[string]string `json:"responseHeaders" yaml:"responseHeaders"`
	ResponseBody       string            `json:"responseBody" yaml:"responseBody"`
	Duration           int64             `json:"duration" yaml:"duration"`
	ResponseSize       int               `json:"responseSize,omitempty" yaml:"responseSize,omitempty"`
	Error              string            `json:"error,omitempty" yaml:"error,omitempty"`
}
