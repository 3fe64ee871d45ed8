package progrock_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"go.trai.ch/winbuild/internal/adapters/telemetry/progrock"
	"go.trai.ch/winbuild/internal/core/domain"
)

func TestRecorder_Integration(t *testing.T) {
	recorder := progrock.New()
	ctx := context.Background()

	// The same job may appear twice when an architecture is repeated.
	_, first := recorder.Record(ctx, "CordovaApp.Store.jsproj (x86)")
	_, second := recorder.Record(ctx, "CordovaApp.Store.jsproj (x86)")

	_, err := first.Stdout().Write([]byte("Build succeeded.\n"))
	require.NoError(t, err)
	first.Log(domain.LogLevelDebug, "debug msg")
	first.Complete(nil)

	_, err = second.Stderr().Write([]byte("error MSB1009\n"))
	require.NoError(t, err)
	second.Complete(errors.New("exit status 1"))

	require.NoError(t, recorder.Close())
}
