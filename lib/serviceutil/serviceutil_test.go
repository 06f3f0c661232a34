package serviceutil

import (
	"os"
	"syscall"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestSignalContext(t *testing.T) {
	ctx := SignalContext()

	select {
	case <-ctx.Done():
		t.Fatal("context canceled before any signal")
	default:
	}

	err := syscall.Kill(os.Getpid(), syscall.SIGINT)
	require.NoError(t, err)

	select {
	case <-ctx.Done():
	case <-time.After(time.Second * 2):
		t.Fatal("context not canceled after SIGINT")
	}
}
