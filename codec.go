package refinement

import (
	"encoding/json"

	"gopkg.in/yaml.v3"
)

// Bind returns an empty holder with the predicate (and any context) already
// attached, for use as an unmarshalling target: struct fields holding
// Refined values need their predicate in place before json.Unmarshal or
// yaml decoding runs. A holder that was never successfully unmarshalled
// into is not refined (IsRefined reports false) and refuses to marshal.
func Bind[T any](pred Predicate[T], opts ...Option) Refined[T] {
	var ctx Context
	for _, opt := range opts {
		opt(&ctx)
	}
	return Refined[T]{pred: pred, ctx: ctx}
}

// MarshalJSON serializes the container as its inner value would: the
// refinement is a construction-time property, not a wire-format concept.
func (r Refined[T]) MarshalJSON() ([]byte, error) {
	if !r.valid {
		return nil, ErrUnbound
	}
	return json.Marshal(r.value)
}

// UnmarshalJSON decodes into the value type and routes the result through
// the same checked construction used by direct callers; deserialization
// never bypasses the predicate. The container must carry a predicate
// already, either from a previous construction or from Bind.
func (r *Refined[T]) UnmarshalJSON(data []byte) error {
	if r.pred == nil {
		return ErrUnbound
	}
	var value T
	if err := json.Unmarshal(data, &value); err != nil {
		return err
	}
	refined, err := refineWith(r.pred, value, r.ctx)
	if err != nil {
		return err
	}
	*r = refined
	return nil
}

// MarshalYAML serializes the container transparently as its inner value.
func (r Refined[T]) MarshalYAML() (any, error) {
	if !r.valid {
		return nil, ErrUnbound
	}
	return r.value, nil
}

// UnmarshalYAML decodes the node into the value type and routes the result
// through checked construction, exactly like UnmarshalJSON.
func (r *Refined[T]) UnmarshalYAML(node *yaml.Node) error {
	if r.pred == nil {
		return ErrUnbound
	}
	var value T
	if err := node.Decode(&value); err != nil {
		return err
	}
	refined, err := refineWith(r.pred, value, r.ctx)
	if err != nil {
		return err
	}
	*r = refined
	return nil
}

// FromJSON decodes data into the value type and refines the result in one
// step.
func FromJSON[T any](pred Predicate[T], data []byte, opts ...Option) (Refined[T], error) {
	holder := Bind(pred, opts...)
	if err := holder.UnmarshalJSON(data); err != nil {
		return Refined[T]{}, err
	}
	return holder, nil
}

// FromYAML decodes data into the value type and refines the result in one
// step.
func FromYAML[T any](pred Predicate[T], data []byte, opts ...Option) (Refined[T], error) {
	holder := Bind(pred, opts...)
	if err := yaml.Unmarshal(data, &holder); err != nil {
		return Refined[T]{}, err
	}
	// An empty document decodes without ever reaching UnmarshalYAML; the
	// predicate must not be bypassed by the absence of a value.
	if !holder.IsRefined() {
		return Refined[T]{}, ErrNoValue
	}
	return holder, nil
}
