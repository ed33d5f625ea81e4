package telemetry_test

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"graph-copier/telemetry"
)

func TestRecorder(t *testing.T) {
	var rec telemetry.Recorder

	rec.Emit(telemetry.TypeFidelityLoss, map[string]string{"path": "root"})
	rec.Emit(telemetry.ReadOnlyPropertyLost, map[string]string{"field": "secret"})
	rec.Emit(telemetry.TypeFidelityLoss, nil)

	assert.Equal(t, 2, rec.Count(telemetry.TypeFidelityLoss))
	assert.Equal(t, 1, rec.Count(telemetry.ReadOnlyPropertyLost))
	assert.Equal(t, 0, rec.Count(telemetry.ComparerFallback))

	all := rec.Advisories()
	require.Len(t, all, 3)
	assert.Equal(t, "root", all[0].Tags["path"])
}

func TestSinkMask(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	sink := telemetry.NewSink(logger, telemetry.TypeFidelityLoss)

	sink.Emit(telemetry.ComparerFallback, map[string]string{"path": "root"})
	assert.Empty(t, buf.String(), "masked kinds must not log")

	sink.Emit(telemetry.TypeFidelityLoss, map[string]string{"path": "root[1]"})
	assert.Contains(t, buf.String(), "TypeFidelityLoss")
	assert.Contains(t, buf.String(), "root[1]")
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "TypeFidelityLoss", telemetry.TypeFidelityLoss.String())
	assert.Equal(t, "ComparerFallback", telemetry.ComparerFallback.String())
	assert.Equal(t, "ReadOnlyPropertyLost", telemetry.ReadOnlyPropertyLost.String())
	assert.Equal(t, "IndexedPropertySkipped", telemetry.IndexedPropertySkipped.String())
}
