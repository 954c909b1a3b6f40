// Copyright (c) 2026 Wei-Lun Tsai.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package telemetry

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/vegnear/vegnear/backend"
	"github.com/vegnear/vegnear/models"
)

// emitTimeout bounds one insert; after that the event is dropped.
const emitTimeout = 5 * time.Second

// Emitter writes telemetry events best-effort. Failures never reach
// the caller: they are logged at debug level and the event is lost.
type Emitter struct {
	store    backend.Store
	userHash string
	wg       sync.WaitGroup
}

func NewEmitter(store backend.Store, userHash string) *Emitter {
	return &Emitter{store: store, userHash: userHash}
}

// Emit fires the event in the background and returns immediately.
func (e *Emitter) Emit(event string, venueID *string, meta map[string]any) {
	if e == nil || e.store == nil {
		return
	}

	ev := models.Event{
		UserHash: e.userHash,
		VenueID:  venueID,
		Event:    event,
		Meta:     meta,
	}

	e.wg.Add(1)
	go func() {
		defer e.wg.Done()
		ctx, cancel := context.WithTimeout(context.Background(), emitTimeout)
		defer cancel()
		if err := e.store.InsertEvent(ctx, ev); err != nil {
			slog.Debug("telemetry insert failed", "event", event, "error", err)
		}
	}()
}

// Close waits for in-flight emits to finish or time out.
func (e *Emitter) Close() {
	if e == nil {
		return
	}
	e.wg.Wait()
}
