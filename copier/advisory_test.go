package copier_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"graph-copier/copier"
	"graph-copier/telemetry"
)

// plainSet implements the sets.Set capability without NewEmpty, so its
// duplicate-detection strategy cannot be reconstructed.
type plainSet struct{ vals []any }

func (p *plainSet) Size() int     { return len(p.vals) }
func (p *plainSet) Values() []any { return append([]any(nil), p.vals...) }

func (p *plainSet) Add(v any) {
	if !p.Contains(v) {
		p.vals = append(p.vals, v)
	}
}

func (p *plainSet) Contains(v any) bool {
	for _, x := range p.vals {
		if x == v {
			return true
		}
	}

	return false
}

func TestTypeFidelityLossOnAbstractSlot(t *testing.T) {
	type holder struct {
		Items any
	}

	var rec telemetry.Recorder

	out, err := copier.DeepCopyAndApply(holder{Items: []int{1, 2, 3}}, copier.Identity,
		copier.WithTelemetry(&rec))
	require.NoError(t, err)

	require.GreaterOrEqual(t, rec.Count(telemetry.TypeFidelityLoss), 1)
	assert.Equal(t, []int{1, 2, 3}, out.(holder).Items, "advisories must not alter the result")

	advisory := rec.Advisories()[0]
	assert.Equal(t, "root.Items", advisory.Tags["path"])
	assert.Equal(t, "[]int", advisory.Tags["actual"])
}

func TestComparerFallbackAdvisory(t *testing.T) {
	var rec telemetry.Recorder

	out, err := copier.DeepCopyAndApply(&plainSet{vals: []any{1, 2, 3}}, copier.Identity,
		copier.WithTelemetry(&rec))
	require.NoError(t, err)

	assert.Equal(t, 1, rec.Count(telemetry.ComparerFallback))

	got := out.(interface{ Values() []any })
	assert.ElementsMatch(t, []any{1, 2, 3}, got.Values())
}

func TestSkippedFieldAdvisories(t *testing.T) {
	type gadget struct {
		Name   string
		hidden int
		Render func() string
	}

	var rec telemetry.Recorder

	out, err := copier.DeepCopyAndApply(gadget{Name: "n", hidden: 7}, copier.Identity,
		copier.WithTelemetry(&rec))
	require.NoError(t, err)

	assert.Equal(t, 1, rec.Count(telemetry.ReadOnlyPropertyLost))
	assert.Equal(t, 1, rec.Count(telemetry.IndexedPropertySkipped))

	got := out.(gadget)
	assert.Equal(t, "n", got.Name)
	assert.Zero(t, got.hidden, "unexported fields are not copied")
	assert.Nil(t, got.Render)
}

func TestNoAdvisoriesOnConcreteGraph(t *testing.T) {
	var rec telemetry.Recorder

	_, err := copier.DeepCopyAndApply(sampleOrder(), copier.Identity, copier.WithTelemetry(&rec))
	require.NoError(t, err)

	assert.Empty(t, rec.Advisories())
}
