package ingest

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStartWatcherRequiresRoots(t *testing.T) {
	_, _, err := StartWatcher(context.Background(), WatchConfig{})
	assert.Error(t, err)
}

func TestWatcherInitialScanEmitsExistingFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "report.txt")
	require.NoError(t, os.WriteFile(path, []byte("Report 1:\nFINDINGS: gastritis.\n"), 0o644))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	evCh, _, err := StartWatcher(ctx, WatchConfig{Roots: []string{dir}, InitialScan: true})
	require.NoError(t, err)

	select {
	case got := <-evCh:
		assert.Equal(t, path, got)
	case <-time.After(2 * time.Second):
		t.Fatal("initial scan never emitted the existing file")
	}
}

func TestWatcherDebounceCoalescesWriteBursts(t *testing.T) {
	dir := t.TempDir()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	evCh, _, err := StartWatcher(ctx, WatchConfig{
		Roots:    []string{dir},
		Debounce: 50 * time.Millisecond,
	})
	require.NoError(t, err)

	// keep events landing while the debounce timer is armed and firing
	path := filepath.Join(dir, "scan.txt")
	for i := 0; i < 20; i++ {
		require.NoError(t, os.WriteFile(path, []byte(strings.Repeat("x", i+1)), 0o644))
		time.Sleep(5 * time.Millisecond)
	}

	select {
	case got := <-evCh:
		assert.Equal(t, path, got)
	case <-time.After(2 * time.Second):
		t.Fatal("debounced event never arrived")
	}
}

func TestWatcherIgnoresDisallowedExtensions(t *testing.T) {
	dir := t.TempDir()
	other := filepath.Join(dir, "notes.csv")
	require.NoError(t, os.WriteFile(other, []byte("a,b\n"), 0o644))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	evCh, _, err := StartWatcher(ctx, WatchConfig{Roots: []string{dir}, InitialScan: true})
	require.NoError(t, err)

	select {
	case got := <-evCh:
		t.Fatalf("unexpected event for %s", got)
	case <-time.After(200 * time.Millisecond):
	}
}
