package telemetry_test

import (
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/obtools/internal/adapters/telemetry"
	"go.trai.ch/obtools/internal/core/domain"
)

func TestNoOp(t *testing.T) {
	tel := telemetry.NewNoOp()

	ctx, v := tel.Record(t.Context(), "enable Release|Any CPU")
	assert.Equal(t, t.Context(), ctx)
	assert.Equal(t, io.Discard, v.Stdout())

	assert.NotPanics(t, func() {
		v.Log(domain.LogLevelInfo, "msg")
		v.Cached()
		v.Complete(errors.New("boom"))
	})
	require.NoError(t, tel.Close())
}
