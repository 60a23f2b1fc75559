// Package httpscribe instruments an HTTP client so that every outbound
// request and its resulting response (or failure) is turned into a
// normalized, loggable record and emitted through a caller-supplied sink.
// It is middleware: it performs no network I/O of its own and never alters
// the traffic it observes. The entry point is Transport, an
// http.RoundTripper decorator created with NewTransport.
package httpscribe
