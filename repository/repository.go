// Package repository implements per-entity persistence over MongoDB.
// Services talk to the interfaces defined here; the mongo-backed
// implementations never leak driver errors upward, they translate
// "no matching document" into ErrNoDocument.
package repository

import (
	"context"
	"errors"
	"time"

	"atleti-backend/metrics"
)

// ErrNoDocument is returned when an id matches no stored record.
var ErrNoDocument = errors.New("no matching document")

// Every storage call gets its own deadline so a stuck mongo node
// cannot pin request goroutines indefinitely.
const opTimeout = 10 * time.Second

func opContext(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, opTimeout)
}

// observe feeds the per-operation mongo metrics.
func observe(operation, collection string, err error) {
	status := "ok"
	if err != nil && !errors.Is(err, ErrNoDocument) {
		status = "error"
	}
	metrics.MongoOperationsTotal.WithLabelValues(operation, collection, status).Inc()
}
