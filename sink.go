package httpscribe

//go:generate $MOCKGEN -source=sink.go -destination=mocks/sink_mock.go

// Payload is the structured object handed to the sink alongside the
// summary message. Fields that do not apply to a given lifecycle branch
// are left nil or empty.
type Payload struct {
	// Request is the normalized outbound request, when one could be built.
	Request *Request `json:"request,omitempty"`
	// Response is the normalized response, present only when an upstream
	// response actually exists.
	Response *Response `json:"response,omitempty"`
	// Err carries the raw transport error on failure branches.
	Err error `json:"error,omitempty"`
	// RequestDump is the raw request dump, attached only when dumps are
	// enabled via Options.MaxDumpLength.
	RequestDump string `json:"requestDump,omitempty"`
	// ResponseDump is the raw response dump, attached only when dumps are
	// enabled via Options.MaxDumpLength.
	ResponseDump string `json:"responseDump,omitempty"`
}

// Sink is the external structured-logging destination the middleware
// emits to. Successful exchanges go through Info, every failure branch
// through Error; no lifecycle event ever calls both. Implementations
// must be safe for concurrent use, as multiple requests may complete at
// once on the same client.
type Sink interface {
	// Info emits a success-severity record.
	Info(payload *Payload, message string)
	// Error emits a failure-severity record.
	Error(payload *Payload, message string)
}
