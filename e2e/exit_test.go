//go:build e2e && unix

package main

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func waitExit(t *testing.T, tf *TUITestFramework, timeout time.Duration) {
	t.Helper()
	done := make(chan error, 1)
	go func() {
		done <- tf.cmd.Wait()
	}()
	select {
	case err := <-done:
		require.NoError(t, err, "Process should exit cleanly")
		tf.cmd = nil
	case <-time.After(timeout):
		tf.DumpTailOnFail(t, "exit-failure", 4096)
		t.Fatal("Application did not exit within timeout")
	}
}

func TestExitWithCtrlC(t *testing.T) {
	t.Parallel()
	tf := NewTUITest(t)
	defer tf.Cleanup()

	require.NoError(t, tf.StartApp(), "Failed to start app")
	require.True(t, tf.Ready(), "Should receive ready signal")

	// The field has focus, so q would be typed; ctrl+c always quits.
	require.NoError(t, tf.SendCtrlC())
	waitExit(t, tf, 2*time.Second)
}

func TestExitWithQOutsideField(t *testing.T) {
	t.Parallel()
	tf := NewTUITest(t)
	defer tf.Cleanup()

	require.NoError(t, tf.StartApp(), "Failed to start app")
	require.True(t, tf.Ready(), "Should receive ready signal")

	require.NoError(t, tf.Leave())
	time.Sleep(150 * time.Millisecond)
	require.NoError(t, tf.Quit())
	waitExit(t, tf, 2*time.Second)
}
