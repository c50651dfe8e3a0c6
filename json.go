package confloat

import "encoding/json"

// MarshalJSON encodes the bare payload. The policy tag carries no data and
// has no wire representation, so a Value marshals identically to its float.
func (v Value[F, P]) MarshalJSON() ([]byte, error) {
	return json.Marshal(v.value)
}

// UnmarshalJSON decodes a bare number and runs it through the same
// construction routine as New. A payload failing the policy predicate
// surfaces as an unmarshal error carrying the policy's message; no Value is
// produced.
func (v *Value[F, P]) UnmarshalJSON(data []byte) error {
	var raw F
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	parsed, err := New[F, P](raw)
	if err != nil {
		return err
	}
	*v = parsed
	return nil
}
