// SPDX-License-Identifier: MIT

package logger

import (
	"context"
	"log/slog"
	"sync"
	"sync/atomic"
)

const defaultQueue = 1024

// AsyncHandler forwards records to another handler from a background
// goroutine. Handle only enqueues; when the queue is full the record is
// dropped and counted.
type AsyncHandler struct {
	next slog.Handler
	d    *dispatcher
}

type dispatcher struct {
	ch      chan item
	closed  chan struct{}
	mu      sync.RWMutex // held for reading while enqueueing, for writing while closing
	once    sync.Once
	wg      sync.WaitGroup
	dropped atomic.Uint64
}

type item struct {
	ctx     context.Context
	rec     slog.Record
	handler slog.Handler
}

// NewAsyncHandler starts the dispatcher. buf <= 0 selects the default queue size.
func NewAsyncHandler(next slog.Handler, buf int) *AsyncHandler {
	if next == nil {
		next = buildHandler(ModeSilence, nil)
	}
	if buf <= 0 {
		buf = defaultQueue
	}
	d := &dispatcher{
		ch:     make(chan item, buf),
		closed: make(chan struct{}),
	}
	d.wg.Add(1)
	go d.run()

	return &AsyncHandler{next: next, d: d}
}

func (d *dispatcher) run() {
	defer d.wg.Done()
	for {
		select {
		case it := <-d.ch:
			_ = it.handler.Handle(it.ctx, it.rec)
		case <-d.closed:
			for {
				select {
				case it := <-d.ch:
					_ = it.handler.Handle(it.ctx, it.rec)
				default:
					return
				}
			}
		}
	}
}

// Dropped returns the number of records lost to a full queue or a closed handler.
func (h *AsyncHandler) Dropped() uint64 {
	return h.d.dropped.Load()
}

// Close stops accepting records and drains the queue. Safe to call twice.
func (h *AsyncHandler) Close() {
	h.d.once.Do(func() {
		h.d.mu.Lock()
		close(h.d.closed)
		h.d.mu.Unlock()
	})
	h.d.wg.Wait()
}

func (h *AsyncHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.next.Enabled(ctx, level)
}

func (h *AsyncHandler) Handle(ctx context.Context, r slog.Record) error {
	h.d.mu.RLock()
	defer h.d.mu.RUnlock()
	select {
	case <-h.d.closed:
		h.d.dropped.Add(1)
		return nil
	default:
	}
	select {
	case h.d.ch <- item{ctx: ctx, rec: r.Clone(), handler: h.next}:
	default:
		h.d.dropped.Add(1)
	}

	return nil
}

func (h *AsyncHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &AsyncHandler{next: h.next.WithAttrs(attrs), d: h.d}
}

func (h *AsyncHandler) WithGroup(name string) slog.Handler {
	return &AsyncHandler{next: h.next.WithGroup(name), d: h.d}
}
