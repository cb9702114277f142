package middleware

import (
	"context"
	"net/http"
	"sync"
)

type holderKey struct{}

// requestHolder lets outer middleware read the request as the router saw
// it, after inner middleware replaced its context.
type requestHolder struct {
	mu  sync.Mutex
	req *http.Request
}

func withRequestHolder(ctx context.Context, h *requestHolder) context.Context {
	return context.WithValue(ctx, holderKey{}, h)
}

func (h *requestHolder) get() *http.Request {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.req
}

func captureRequest(r *http.Request) {
	h, ok := r.Context().Value(holderKey{}).(*requestHolder)
	if !ok {
		return
	}
	h.mu.Lock()
	h.req = r
	h.mu.Unlock()
}
