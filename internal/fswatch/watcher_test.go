package fswatch

import (
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCountingWatcher(t *testing.T) (*Watcher, *atomic.Int32) {
	t.Helper()
	var calls atomic.Int32
	w, err := New(func() { calls.Add(1) }, WithDebounce(20*time.Millisecond))
	require.NoError(t, err)
	t.Cleanup(func() { _ = w.Close() })
	return w, &calls
}

func TestWatcher_NotifiesOnCreate(t *testing.T) {
	dir := t.TempDir()
	w, calls := newCountingWatcher(t)
	require.NoError(t, w.Watch(dir))

	require.NoError(t, os.WriteFile(filepath.Join(dir, "new.txt"), []byte("x"), 0o644))

	require.Eventually(t, func() bool { return calls.Load() >= 1 }, 2*time.Second, 10*time.Millisecond)
}

func TestWatcher_CoalescesBursts(t *testing.T) {
	dir := t.TempDir()
	var calls atomic.Int32
	w, err := New(func() { calls.Add(1) }, WithDebounce(300*time.Millisecond))
	require.NoError(t, err)
	t.Cleanup(func() { _ = w.Close() })
	require.NoError(t, w.Watch(dir))

	for i := 0; i < 5; i++ {
		require.NoError(t, os.WriteFile(filepath.Join(dir, string(rune('a'+i))), nil, 0o644))
	}

	require.Eventually(t, func() bool { return calls.Load() >= 1 }, 3*time.Second, 10*time.Millisecond)
	time.Sleep(400 * time.Millisecond)
	assert.Equal(t, int32(1), calls.Load())
}

func TestWatcher_Retarget(t *testing.T) {
	first, second := t.TempDir(), t.TempDir()
	w, calls := newCountingWatcher(t)

	require.NoError(t, w.Watch(first))
	require.NoError(t, w.Watch(second))
	assert.Equal(t, second, w.dir)

	require.NoError(t, os.WriteFile(filepath.Join(first, "ignored"), nil, 0o644))
	time.Sleep(100 * time.Millisecond)
	assert.Equal(t, int32(0), calls.Load())

	require.NoError(t, os.WriteFile(filepath.Join(second, "seen"), nil, 0o644))
	require.Eventually(t, func() bool { return calls.Load() >= 1 }, 2*time.Second, 10*time.Millisecond)
}

func TestWatcher_MissingDirectory(t *testing.T) {
	w, _ := newCountingWatcher(t)
	err := w.Watch(filepath.Join(t.TempDir(), "missing"))
	assert.Error(t, err)
	assert.Equal(t, "", w.dir)
}

func TestWatcher_CloseIsIdempotent(t *testing.T) {
	w, err := New(func() {})
	require.NoError(t, err)

	require.NoError(t, w.Close())
	require.NoError(t, w.Close())
	assert.Error(t, w.Watch(t.TempDir()))
}
