package httpscribe

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
)

// undefinedRequestLine is the sentinel summary used when neither a
// response nor a usable request is available.
const undefinedRequestLine = "Undefined client request"

// errorMarker is appended to the summary line on failure branches in
// place of a status code.
const errorMarker = "ERROR"

// Static error definitions for better error handling.
var (
	// ErrNilSink indicates that no logging sink was supplied.
	ErrNilSink = errors.New("sink is nil")
	// ErrNilRequest indicates that the HTTP request is nil.
	ErrNilRequest = errors.New("request is nil")
)

// Options is the configuration surface accepted at setup time.
type Options struct {
	// Sink is the logging destination. Required.
	Sink Sink
	// Clock supplies timestamps. Defaults to the system clock when nil.
	Clock Clock
	// WhitelistRequestHeaders, when non-nil, lists the only request
	// headers that survive into the loggable request.
	WhitelistRequestHeaders []string
	// BlacklistRequestHeaders lists request headers removed after
	// allow-listing.
	BlacklistRequestHeaders []string
	// WhitelistResponseHeaders, when non-nil, lists the only response
	// headers that survive into the loggable response.
	WhitelistResponseHeaders []string
	// BlacklistResponseHeaders lists response headers removed after
	// allow-listing.
	BlacklistResponseHeaders []string
	// MaxDumpLength, when greater than zero, enables raw request/response
	// dumps on the payload, truncated at this many bytes.
	MaxDumpLength uint64
	// HistorySize, when greater than zero, keeps the most recent
	// exchanges in a bounded in-memory store for later inspection.
	HistorySize int
}

// Transport is a custom http.RoundTripper that observes each outbound
// request and emits a normalized record of the exchange through the
// configured sink. It wraps another http.RoundTripper and never alters
// the traffic flowing through it: responses and errors are returned to
// the caller exactly as the underlying transport produced them.
type Transport struct {
	// next is the underlying HTTP round tripper.
	next http.RoundTripper
	// sink receives the normalized records.
	sink Sink
	// clock supplies issuance and completion timestamps.
	clock Clock
	// whitelistRequestHeaders is the request-direction allow-list.
	whitelistRequestHeaders []string
	// blacklistRequestHeaders is the request-direction deny-list.
	blacklistRequestHeaders []string
	// whitelistResponseHeaders is the response-direction allow-list.
	whitelistResponseHeaders []string
	// blacklistResponseHeaders is the response-direction deny-list.
	blacklistResponseHeaders []string
	// maxDumpLength is the maximum length of raw dumps, 0 disables them.
	maxDumpLength uint64
	// history retains recent exchanges, nil when disabled.
	history *history
}

// failureKind tags the variants of a failed exchange. Normalization is
// dispatched by case instead of ad hoc presence checks.
type failureKind int

const (
	// failureWithResponse is an exchange that reached a server and came
	// back with a non-success status.
	failureWithResponse failureKind = iota
	// failureWithRequest is a transport failure where no response exists
	// but the outgoing request is available, e.g. DNS or connection
	// errors.
	failureWithRequest
	// failureUnknown is a failure with neither response nor request
	// available.
	failureUnknown
)

// classifyFailure tags a failed outcome by the context it still carries.
func classifyFailure(req *http.Request, resp *http.Response) failureKind {
	switch {
	case resp != nil:
		return failureWithResponse
	case req != nil:
		return failureWithRequest
	default:
		return failureUnknown
	}
}

// NewTransport creates and returns a new instance of Transport.
// If next is nil, http.DefaultTransport is used. The sink is required.
func NewTransport(next http.RoundTripper, opts Options) (*Transport, error) {
	if opts.Sink == nil {
		return nil, ErrNilSink
	}

	if next == nil {
		next = http.DefaultTransport
	}

	clock := opts.Clock
	if clock == nil {
		clock = NewSystemClock()
	}

	var hist *history

	if opts.HistorySize > 0 {
		var err error

		hist, err = newHistory(opts.HistorySize)
		if err != nil {
			return nil, err
		}
	}

	return &Transport{
		next:                     next,
		sink:                     opts.Sink,
		clock:                    clock,
		whitelistRequestHeaders:  opts.WhitelistRequestHeaders,
		blacklistRequestHeaders:  opts.BlacklistRequestHeaders,
		whitelistResponseHeaders: opts.WhitelistResponseHeaders,
		blacklistResponseHeaders: opts.BlacklistResponseHeaders,
		maxDumpLength:            opts.MaxDumpLength,
		history:                  hist,
	}, nil
}

// RoundTrip executes a single HTTP transaction and emits a normalized
// record of it. It implements the http.RoundTripper interface.
// The issuance timestamp is captured exactly once, before dispatch, and
// threads the whole lifecycle as a local value; the outgoing request is
// never mutated. Responses with a status of 400 or above are failures
// that carry an upstream response: logged at error severity with the
// status preserved as-is, and still returned to the caller unchanged
// with a nil error.
func (t *Transport) RoundTrip(req *http.Request) (*http.Response, error) {
	if req == nil {
		t.observeFailure(failureUnknown, "", nil, nil, time.Time{}, "", ErrNilRequest)

		return nil, ErrNilRequest
	}

	exchangeID := uuid.NewString()
	issued := t.clock.Now()

	var requestDump string
	if t.maxDumpLength > 0 {
		requestDump = dumpRequest(req, t.maxDumpLength)
	}

	resp, err := t.next.RoundTrip(req)
	if err != nil {
		t.observeFailure(classifyFailure(req, nil), exchangeID, req, nil, issued, requestDump, err)

		return nil, err
	}

	if resp.StatusCode >= http.StatusBadRequest {
		t.observeFailure(classifyFailure(req, resp), exchangeID, req, resp, issued, requestDump, nil)
	} else {
		t.observeSuccess(exchangeID, req, resp, issued, requestDump)
	}

	return resp, nil
}

// Recent returns the retained exchanges ordered from oldest to newest.
// It returns nil when history is disabled.
func (t *Transport) Recent() []*Exchange {
	if t.history == nil {
		return nil
	}

	return t.history.recent()
}

// Exchange returns the retained exchange with the given correlation ID.
func (t *Transport) Exchange(id string) (*Exchange, bool) {
	if t.history == nil {
		return nil, false
	}

	return t.history.lookup(id)
}

// observeSuccess normalizes a successful exchange and emits it at info
// severity.
func (t *Transport) observeSuccess(exchangeID string, req *http.Request, resp *http.Response, issued time.Time, requestDump string) {
	payload, message := t.normalizeExchange(req, resp, issued, requestDump)

	t.sink.Info(payload, message)

	t.remember(&Exchange{ID: exchangeID, Request: payload.Request, Response: payload.Response})
}

// observeFailure normalizes whatever context a failed exchange still
// carries and emits it at error severity. Every branch leaves the error
// itself untouched: the caller observes the failure exactly as it
// arrived.
func (t *Transport) observeFailure(
	kind failureKind,
	exchangeID string,
	req *http.Request,
	resp *http.Response,
	issued time.Time,
	requestDump string,
	cause error,
) {
	switch kind {
	case failureWithResponse:
		payload, message := t.normalizeExchange(req, resp, issued, requestDump)
		payload.Err = cause

		t.sink.Error(payload, message)

		t.remember(&Exchange{ID: exchangeID, Request: payload.Request, Response: payload.Response, Err: cause})
	case failureWithRequest:
		requestRecord := newRequestRecord(req, issued, t.whitelistRequestHeaders, t.blacklistRequestHeaders)

		payload := &Payload{
			Request:     requestRecord,
			Err:         cause,
			RequestDump: requestDump,
		}

		t.sink.Error(payload, fmt.Sprintf("%s %s", summaryLine(requestRecord), errorMarker))

		t.remember(&Exchange{ID: exchangeID, Request: requestRecord, Err: cause})
	case failureUnknown:
		t.sink.Error(&Payload{Err: cause}, fmt.Sprintf("%s %s", undefinedRequestLine, errorMarker))
	}
}

// normalizeExchange builds the loggable request/response pair for an
// exchange that produced a response, along with its summary message.
func (t *Transport) normalizeExchange(
	req *http.Request,
	resp *http.Response,
	issued time.Time,
	requestDump string,
) (*Payload, string) {
	// Prefer the request representation the client threaded back on the
	// response; RoundTripper-level callers usually leave it unset.
	loggedReq := resp.Request
	if loggedReq == nil {
		loggedReq = req
	}

	requestRecord := newRequestRecord(loggedReq, issued, t.whitelistRequestHeaders, t.blacklistRequestHeaders)
	responseRecord := newResponseRecord(resp, issued, t.clock.Now(), t.whitelistResponseHeaders, t.blacklistResponseHeaders)

	payload := &Payload{
		Request:     requestRecord,
		Response:    responseRecord,
		RequestDump: requestDump,
	}

	if t.maxDumpLength > 0 {
		payload.ResponseDump = dumpResponse(resp, t.maxDumpLength)
	}

	return payload, fmt.Sprintf("%s %d", summaryLine(requestRecord), responseRecord.StatusCode)
}

// remember stores an exchange in the history when it is enabled.
func (t *Transport) remember(exchange *Exchange) {
	if t.history == nil {
		return
	}

	t.history.record(exchange)
}
