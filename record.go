package httpscribe

import (
	"fmt"
	"net/http"
	"strings"
	"time"
)

// timestampLayout renders timestamps as ISO-8601 with millisecond
// precision, e.g. "2024-01-01T00:00:00.000Z". Timestamps are always
// normalized to UTC before formatting.
const timestampLayout = "2006-01-02T15:04:05.000Z07:00"

// Request is the normalized, policy-filtered view of an outbound HTTP
// request. It is a value object: built fresh per lifecycle event and never
// mutated after construction.
type Request struct {
	// Timestamp is the issuance time of the request in ISO-8601 format.
	// It reflects when the request was dispatched, not when it was logged.
	Timestamp string `json:"timestamp"`
	// Method is the uppercased HTTP verb.
	Method string `json:"method"`
	// URL is the path component of the target URL; the host travels via
	// the Headers map instead.
	URL string `json:"url"`
	// Headers is the header map after visibility filtering. It always
	// carries a Host entry derived from the target URL.
	Headers map[string]string `json:"headers"`
}

// Response is the normalized, policy-filtered view of a completed HTTP
// response. Like Request, it is an immutable value object.
type Response struct {
	// Timestamp is the response observation time in ISO-8601 format,
	// distinct from the request's issuance timestamp.
	Timestamp string `json:"timestamp"`
	// StatusCode is the HTTP status of the response.
	StatusCode int `json:"statusCode"`
	// Headers is the response header map after visibility filtering.
	Headers map[string]string `json:"headers"`
	// ResponseTime is the elapsed time between issuance and completion in
	// milliseconds. A negative value indicates a clock or stamping defect
	// and is preserved as-is rather than clamped, so downstream analysis
	// can detect it.
	ResponseTime int64 `json:"responseTime"`
}

// formatTimestamp renders a time in the ISO-8601 layout used by all
// records.
func formatTimestamp(t time.Time) string {
	return t.UTC().Format(timestampLayout)
}

// requestHost resolves the target host of a request. The host derived
// from the URL takes precedence over the caller-set Host field so the
// value is correct even when the caller never set it explicitly.
func requestHost(req *http.Request) string {
	if req.URL != nil && req.URL.Host != "" {
		return req.URL.Host
	}

	return req.Host
}

// requestPath resolves the path component of the target URL, defaulting
// to "/" when the URL carries no explicit path.
func requestPath(req *http.Request) string {
	if req.URL == nil || req.URL.Path == "" {
		return "/"
	}

	return req.URL.Path
}

// newRequestRecord builds a Request from an outgoing *http.Request and
// its stamped issuance time. It serves both construction paths: the
// completed-exchange path (preferring the request the client threaded
// back on the response) and the raw-outgoing path used when the call
// failed before a response existed. Header visibility policy is applied
// on both paths.
func newRequestRecord(req *http.Request, issued time.Time, whitelist, blacklist []string) *Request {
	headers := flattenHeader(req.Header)
	headers[hostHeader] = requestHost(req)

	return &Request{
		Timestamp: formatTimestamp(issued),
		Method:    strings.ToUpper(req.Method),
		URL:       requestPath(req),
		Headers:   filterHeaders(headers, whitelist, blacklist),
	}
}

// newResponseRecord builds a Response from a completed exchange.
// ResponseTime is computed strictly from the request's stamped issuance
// time, not from any client-reported duration, so the clock source stays
// consistent regardless of which transport observed the timing.
func newResponseRecord(resp *http.Response, issued, completed time.Time, whitelist, blacklist []string) *Response {
	return &Response{
		Timestamp:    formatTimestamp(completed),
		StatusCode:   resp.StatusCode,
		Headers:      filterHeaders(flattenHeader(resp.Header), whitelist, blacklist),
		ResponseTime: completed.Sub(issued).Milliseconds(),
	}
}

// summaryLine renders the one-line human-readable descriptor of a
// normalized request, e.g. "GET example.com/test". The host is read from
// the filtered header map and degrades to an empty string when absent.
func summaryLine(record *Request) string {
	return fmt.Sprintf("%s %s%s", record.Method, record.Headers[hostHeader], record.URL)
}
