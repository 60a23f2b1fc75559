package httpscribe

import (
	"fmt"

	lru "github.com/hashicorp/golang-lru/v2"
)

// Exchange is a completed lifecycle event kept by the history store: the
// normalized request/response pair (or the failure that replaced the
// response) under its correlation ID.
type Exchange struct {
	// ID is the correlation identifier assigned when the request was
	// issued.
	ID string `json:"id"`
	// Request is the normalized outbound request, when one could be built.
	Request *Request `json:"request,omitempty"`
	// Response is the normalized response, when one exists.
	Response *Response `json:"response,omitempty"`
	// Err is the transport error for failed exchanges.
	Err error `json:"error,omitempty"`
}

// history is a bounded in-memory store of the most recent exchanges,
// keyed by correlation ID. Older entries are evicted once the configured
// capacity is reached.
type history struct {
	// cache holds the exchanges in least-recently-used order.
	cache *lru.Cache[string, *Exchange]
}

// newHistory creates a history store with the given capacity.
func newHistory(size int) (*history, error) {
	cache, err := lru.New[string, *Exchange](size)
	if err != nil {
		return nil, fmt.Errorf("failed to create history cache: %w", err)
	}

	return &history{cache: cache}, nil
}

// record stores a completed exchange, evicting the oldest entry when the
// store is full.
func (h *history) record(exchange *Exchange) {
	h.cache.Add(exchange.ID, exchange)
}

// recent returns the stored exchanges ordered from oldest to newest.
func (h *history) recent() []*Exchange {
	return h.cache.Values()
}

// lookup returns the exchange with the given correlation ID, if still
// retained.
func (h *history) lookup(id string) (*Exchange, bool) {
	return h.cache.Peek(id)
}
