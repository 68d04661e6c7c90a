package json

// Outcome is the result code ApplyPatch reports, mirroring the six
// named outcomes of the specification's merge-patch engine.
type Outcome int

const (
	// Success means the merge occurred and something changed.
	Success Outcome = iota
	// NoChange means the merge completed without any change, or the
	// ill-formed-patch fallback fired.
	NoChange
	// ErrOutcomeParseTarget means the target document failed to parse.
	ErrOutcomeParseTarget
	// ErrOutcomeType means the target or patch parsed to a non-Object.
	ErrOutcomeType
	// ErrOutcomeMemory means an allocation failed during the operation.
	ErrOutcomeMemory
	// ErrOutcomeOverflow means the result buffer was too small.
	ErrOutcomeOverflow
)

var outcomeNames = map[Outcome]string{
	Success:               "SUCCESS",
	NoChange:              "NO_CHANGE",
	ErrOutcomeParseTarget: "ERROR_PARSE",
	ErrOutcomeType:        "ERROR_TYPE",
	ErrOutcomeMemory:      "ERROR_MEMORY",
	ErrOutcomeOverflow:    "ERROR_OVERFLOW",
}

func (o Outcome) String() string {
	if name, ok := outcomeNames[o]; ok {
		return name
	}
	return "ERROR_UNKNOWN"
}

// ApplyPatch applies a JSON merge patch to a JSON target document with
// all-or-nothing semantics: target and patch must each parse to an
// Object, the merged result is built on a deep copy of target (so the
// caller's input bytes are never mutated), and the merged copy is
// serialized into dst.
//
// Atomicity: on any error outcome, dst is left untouched, except the
// documented ill-formed-patch fallback below. On ErrOutcomeOverflow the
// written length is always zero.
//
// Ill-formed-patch fallback: if target parses successfully as an
// Object but patch fails to parse, and target's own serialized bytes
// fit in dst, ApplyPatch copies target's bytes verbatim into dst and
// reports NoChange — a deliberate leniency so a malformed patch
// degrades to a no-op rather than an error.
func ApplyPatch(target, patch, dst []byte) (Outcome, int) {
	targetVal, err := Parse(target)
	if err != nil {
		return ErrOutcomeParseTarget, 0
	}
	defer targetVal.Release()

	if targetVal.Kind() != KindObject {
		return ErrOutcomeType, 0
	}

	patchVal, err := Parse(patch)
	if err != nil {
		n, ok := fitVerbatim(target, dst)
		if !ok {
			return ErrOutcomeOverflow, 0
		}
		return NoChange, n
	}
	defer patchVal.Release()

	if patchVal.Kind() != KindObject {
		return ErrOutcomeType, 0
	}

	merged, err := DeepCopy(targetVal)
	if err != nil {
		return ErrOutcomeMemory, 0
	}
	defer merged.Release()

	changed, err := mergeInto(merged, patchVal)
	if err != nil {
		return ErrOutcomeMemory, 0
	}

	n, err := Serialize(merged, dst)
	if err != nil {
		return ErrOutcomeOverflow, 0
	}

	if !changed {
		return NoChange, n
	}
	return Success, n
}

// fitVerbatim copies src into dst unmodified if it fits, matching the
// ill-formed-patch fallback's "target bytes fit in the result buffer"
// requirement.
func fitVerbatim(src, dst []byte) (int, bool) {
	if len(src) > len(dst) {
		return 0, false
	}
	return copy(dst, src), true
}

// mergeInto recursively merges patch's members into target (which must
// already be an Object, typically a deep copy of the real target so
// the original document is never mutated). Reports whether any insert,
// delete, or replace occurred at any depth. A replace of a non-Object
// member is only counted (and only performed) when the patch's value
// actually differs from what is already there, per valuesEqual, so
// reapplying an identical patch reports no change.
func mergeInto(target, patch *Value) (bool, error) {
	changed := false
	var opErr error

	patch.ForEachMember(func(key string, pv *Value) bool {
		if pv.isEmpty() {
			if target.Remove(key) {
				changed = true
			}
			return true
		}

		existing, ok := target.Find(key)
		if !ok {
			copied, err := DeepCopy(pv)
			if err != nil {
				opErr = err
				return false
			}
			if err := target.Set(key, copied); err != nil {
				copied.Release()
				opErr = err
				return false
			}
			changed = true
			return true
		}

		if existing.Kind() == KindObject && pv.Kind() == KindObject {
			sub, err := mergeInto(existing, pv)
			if err != nil {
				opErr = err
				return false
			}
			if sub {
				changed = true
			}
			return true
		}

		if valuesEqual(existing, pv) {
			return true
		}

		copied, err := DeepCopy(pv)
		if err != nil {
			opErr = err
			return false
		}
		if err := target.Set(key, copied); err != nil {
			copied.Release()
			opErr = err
			return false
		}
		changed = true
		return true
	})

	if opErr != nil {
		return changed, opErr
	}
	return changed, nil
}
