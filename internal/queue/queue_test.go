// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package queue

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-match-bay/models"
)

// drain pops everything currently queued.
func drain(q *Queue) []models.ClientMessage {
	var out []models.ClientMessage
	for {
		msg, ok := q.Pop()
		if !ok {
			return out
		}
		out = append(out, msg)
	}
}

// TestQueue_FIFOOrder verifies that messages come out in push order.
func TestQueue_FIFOOrder(t *testing.T) {
	q := New()
	q.Push(models.Ping{})
	q.Push(models.LeaveRoom{})
	q.Push(models.PlayerReady{})

	msgs := drain(q)
	require.Len(t, msgs, 3)
	assert.Equal(t, models.Ping{}, msgs[0])
	assert.Equal(t, models.LeaveRoom{}, msgs[1])
	assert.Equal(t, models.PlayerReady{}, msgs[2])
}

// TestQueue_PopEmpty verifies that Pop on an empty open queue reports no
// message.
func TestQueue_PopEmpty(t *testing.T) {
	q := New()
	msg, ok := q.Pop()
	assert.Nil(t, msg)
	assert.False(t, ok)
}

// TestQueue_ReadySignalsOnPush verifies that a Push arms the ready channel.
func TestQueue_ReadySignalsOnPush(t *testing.T) {
	q := New()
	q.Push(models.Ping{})

	select {
	case <-q.Ready():
	case <-time.After(time.Second):
		t.Fatal("ready channel was not armed by Push")
	}

	_, ok := q.Pop()
	assert.True(t, ok)
}

// TestQueue_ReadyRearmedWhileItemsRemain verifies that a Pop leaving items
// behind keeps the consumer awake.
func TestQueue_ReadyRearmedWhileItemsRemain(t *testing.T) {
	q := New()
	q.Push(models.Ping{})
	q.Push(models.Ping{})

	<-q.Ready()
	_, ok := q.Pop()
	require.True(t, ok)

	select {
	case <-q.Ready():
	case <-time.After(time.Second):
		t.Fatal("ready channel was not re-armed with items remaining")
	}
}

// TestQueue_PushAfterClose verifies that a closed queue rejects new messages.
func TestQueue_PushAfterClose(t *testing.T) {
	q := New()
	q.Close()
	assert.False(t, q.Push(models.Ping{}))
	assert.True(t, q.Closed())
}

// TestQueue_CloseKeepsQueuedMessages verifies that messages queued before
// Close remain poppable afterwards.
func TestQueue_CloseKeepsQueuedMessages(t *testing.T) {
	q := New()
	q.Push(models.Ping{})
	q.Close()

	msg, ok := q.Pop()
	require.True(t, ok)
	assert.Equal(t, models.Ping{}, msg)

	// drained and closed
	_, ok = q.Pop()
	assert.False(t, ok)
}

// TestQueue_CloseWakesConsumer verifies that Close arms the ready channel so
// a waiting consumer observes the closure.
func TestQueue_CloseWakesConsumer(t *testing.T) {
	q := New()
	q.Close()

	select {
	case <-q.Ready():
	case <-time.After(time.Second):
		t.Fatal("ready channel was not armed by Close")
	}
	assert.True(t, q.Closed())
}

// TestQueue_CloseIdempotent verifies that double Close is harmless.
func TestQueue_CloseIdempotent(t *testing.T) {
	q := New()
	q.Close()
	q.Close()
	assert.True(t, q.Closed())
}

// TestQueue_ConcurrentProducers verifies that pushes from many goroutines are
// all delivered exactly once.
func TestQueue_ConcurrentProducers(t *testing.T) {
	const producers = 8
	const perProducer = 100

	q := New()
	var wg sync.WaitGroup
	for i := 0; i < producers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < perProducer; j++ {
				assert.True(t, q.Push(models.Ping{}))
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, producers*perProducer, q.Len())
	assert.Len(t, drain(q), producers*perProducer)
}
