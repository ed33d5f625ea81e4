// Package telemetry carries the advisory channel of the copy engine.
// Advisories describe fidelity or completeness limitations of a finished
// copy; they never abort a call and never alter its result.
package telemetry

type Kind int

const (
	TypeFidelityLoss       Kind = 1 << iota // the declared static type could not be fully preserved
	ComparerFallback                        // a set's duplicate-detection strategy was replaced by the default one
	ReadOnlyPropertyLost                    // an unexported (read-only) composite field was skipped
	IndexedPropertySkipped                  // a parameterized accessor (func-typed field) was skipped

	KindAll  = (1 << iota) - 1 // all advisory kinds combined
	KindNone = 0               // no advisory kinds selected
)

func (k Kind) String() string {
	switch k {
	case TypeFidelityLoss:
		return "TypeFidelityLoss"
	case ComparerFallback:
		return "ComparerFallback"
	case ReadOnlyPropertyLost:
		return "ReadOnlyPropertyLost"
	case IndexedPropertySkipped:
		return "IndexedPropertySkipped"
	default:
		return "Kind(0)"
	}
}

// Emitter is a write-only sink for advisories. The engine is the sole
// producer; implementations must not panic and must tolerate concurrent use.
type Emitter interface {
	Emit(kind Kind, tags map[string]string)
}

// Nop discards every advisory.
var Nop Emitter = nop{}

type nop struct{}

func (nop) Emit(Kind, map[string]string) {}
