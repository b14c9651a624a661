package gll

import (
	"encoding/json"
	"fmt"
)

// Identifiable is the contract every semantic datum and every ParseState
// must satisfy. Identity is the memoisation key: two values with equal
// Identity are interchangeable for the purpose of deduplicating parse
// work and parse results. Concrete semantic types are otherwise opaque
// to the engine.
type Identifiable interface {
	Identity() string
}

// NoneIdentity ignores semantics entirely for memoisation purposes; the
// wrapped value is still carried through the parse state, but contributes
// nothing to the state's identity.
type NoneIdentity struct {
	Value any
}

// Identity always returns the empty string.
func (NoneIdentity) Identity() string { return "" }

// SameIdentity is identical to NoneIdentity in its effect on memoisation
// (empty identity), but documents the author's intent: this value is
// interchangeable with any other value at the same position, not merely
// unexamined.
type SameIdentity struct {
	Value any
}

// Identity always returns the empty string.
func (SameIdentity) Identity() string { return "" }

// StaticIdentity buckets a value by a caller-chosen constant tag, e.g. to
// distinguish "this is a number" from "this is an identifier" without
// distinguishing numbers from each other.
type StaticIdentity struct {
	Tag   string
	Value any
}

// Identity returns the tag unchanged.
func (s StaticIdentity) Identity() string { return s.Tag }

// DynamicIdentity distinguishes values by content: its Identity is a
// canonical serialisation of Value. Two DynamicIdentity wrappers with
// deeply equal Values have equal identities.
type DynamicIdentity struct {
	Value any
}

// Identity canonicalises Value via encoding/json (whose object keys sort
// lexicographically), falling back to a %#v rendering for values that do
// not marshal (e.g. a bare func or chan wrapped by a careless caller).
func (d DynamicIdentity) Identity() string {
	b, err := json.Marshal(d.Value)
	if err != nil {
		return fmt.Sprintf("%#v", d.Value)
	}
	return string(b)
}
