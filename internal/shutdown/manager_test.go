package shutdown

import (
	"context"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mini-os/internal/logger"
)

func TestShutdown_ReverseOrderOnce(t *testing.T) {
	m := NewManager(logger.Nop{})

	var mu sync.Mutex
	var order []string
	record := func(name string) Func {
		return func() {
			mu.Lock()
			defer mu.Unlock()
			order = append(order, name)
		}
	}
	m.Register("bus", record("bus"))
	m.Register("workspace", record("workspace"))

	m.Shutdown()
	m.Shutdown()

	assert.Equal(t, []string{"workspace", "bus"}, order)
	assert.Error(t, m.ctx.Err())
}

func TestShutdown_TimeoutSkipsStuckComponent(t *testing.T) {
	clock := clockwork.NewFakeClock()
	m := NewManager(logger.Nop{}, WithClock(clock), WithTimeout(time.Second))

	release := make(chan struct{})
	defer close(release)
	ran := false
	m.Register("fast", Func(func() { ran = true }))
	m.Register("stuck", Func(func() { <-release }))

	finished := make(chan struct{})
	go func() {
		m.Shutdown()
		close(finished)
	}()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	require.NoError(t, clock.BlockUntilContext(ctx, 1))
	clock.Advance(time.Second)

	select {
	case <-finished:
	case <-time.After(5 * time.Second):
		t.Fatal("shutdown did not finish")
	}
	assert.True(t, ran)
}

func TestListen_StopsWithManager(t *testing.T) {
	m := NewManager(logger.Nop{})
	called := make(chan os.Signal, 1)
	m.Listen(func(sig os.Signal) { called <- sig })

	m.Shutdown()

	select {
	case <-called:
		t.Fatal("signal handler ran without a signal")
	case <-time.After(50 * time.Millisecond):
	}
}
