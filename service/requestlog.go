package service

import (
	"context"
	"time"

	"github.com/kcmvp/commerce/model"
	"github.com/kcmvp/commerce/store"
)

// RequestLog appends one record per inbound HTTP request. Records are
// append-only; there is no update or delete path.
type RequestLog struct {
	store store.Store[model.RequestLog]
}

func NewRequestLog(s store.Store[model.RequestLog]) *RequestLog {
	return &RequestLog{store: s}
}

// Log appends rl, stamping RequestedAt when the caller left it zero.
func (r *RequestLog) Log(ctx context.Context, rl model.RequestLog) (model.RequestLog, error) {
	if rl.RequestedAt.IsZero() {
		rl.RequestedAt = time.Now().UTC()
	}
	rl.ID = 0
	return r.store.Add(ctx, rl)
}

// All returns every recorded request in insertion order.
func (r *RequestLog) All(ctx context.Context) ([]model.RequestLog, error) {
	return r.store.GetAll(ctx)
}
