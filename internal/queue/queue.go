// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package queue provides the unbounded multi-producer/single-consumer FIFO
// that carries outbound commands from the client handle to the runtime loop.
//
// Enqueueing never blocks and never fails on capacity, so command methods
// stay non-blocking no matter how slow the transport is. The single consumer
// waits on [Queue.Ready] inside a select, which keeps the queue composable
// with the runtime's other wait sources.
package queue

import (
	"sync"

	"github.com/MKhiriev/go-match-bay/models"
)

// Queue is an unbounded FIFO of outbound protocol commands. Safe for any
// number of concurrent producers and one consumer.
//
// The ready channel holds at most one token; it is re-armed whenever items
// remain after a Pop and when the queue closes, so the consumer never
// sleeps through pending work. A wake-up with an empty queue is possible
// and must be treated as spurious.
type Queue struct {
	mu     sync.Mutex
	items  []models.ClientMessage
	ready  chan struct{}
	closed bool
}

// New creates an empty open queue.
func New() *Queue {
	return &Queue{ready: make(chan struct{}, 1)}
}

// Push appends msg to the tail of the queue and wakes the consumer.
// Returns false if the queue has been closed; the message is dropped then.
func (q *Queue) Push(msg models.ClientMessage) bool {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.closed {
		return false
	}
	q.items = append(q.items, msg)
	q.wake()
	return true
}

// Pop removes and returns the head of the queue. Returns false when the
// queue is currently empty (spurious wake-up or closed-and-drained).
func (q *Queue) Pop() (models.ClientMessage, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()

	if len(q.items) == 0 {
		if q.closed {
			// keep the consumer awake so it observes the closure
			q.wake()
		}
		return nil, false
	}

	msg := q.items[0]
	q.items = q.items[1:]
	if len(q.items) > 0 || q.closed {
		q.wake()
	}
	return msg, true
}

// Close marks the queue closed and wakes the consumer. Messages already
// queued remain poppable; further pushes are rejected. Idempotent.
func (q *Queue) Close() {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.closed {
		return
	}
	q.closed = true
	q.wake()
}

// Closed reports whether Close has been called.
func (q *Queue) Closed() bool {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.closed
}

// Len returns the number of queued messages.
func (q *Queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.items)
}

// Ready returns the wake-up channel the consumer selects on. One token is
// delivered per wake; consumers must call Pop after receiving it.
func (q *Queue) Ready() <-chan struct{} {
	return q.ready
}

// wake arms the ready token if it is not already armed. Callers must hold mu.
func (q *Queue) wake() {
	select {
	case q.ready <- struct{}{}:
	default:
	}
}
