package upstream

import (
	"net/http"
	"time"
)

// Registry holds the shared HTTP clients for upstream systems, keyed by
// instance name. It is constructed once during service initialization and
// injected into the gateway clients, so there is no ambient global client
// state.
type Registry struct {
	clients map[string]*http.Client
}

// NewRegistry creates an empty client registry.
func NewRegistry() *Registry {
	return &Registry{
		clients: make(map[string]*http.Client),
	}
}

// Register adds a named client instance. Registering the same name twice
// replaces the previous instance.
func (r *Registry) Register(name string, client *http.Client) {
	r.clients[name] = client
}

// Client returns the client registered under name. Unregistered names get a
// client with a conservative default timeout, so a missing registration
// degrades to slower calls instead of unbounded ones.
func (r *Registry) Client(name string) *http.Client {
	if client, ok := r.clients[name]; ok {
		return client
	}
	return NewHTTPClient(30 * time.Second)
}

// NewHTTPClient builds an HTTP client with a per-request timeout.
func NewHTTPClient(timeout time.Duration) *http.Client {
	return &http.Client{
		Timeout: timeout,
	}
}
