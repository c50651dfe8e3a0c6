package confloat

import "gopkg.in/yaml.v3"

// MarshalYAML encodes the bare payload, mirroring MarshalJSON: no policy
// metadata reaches the document.
func (v Value[F, P]) MarshalYAML() (any, error) {
	return v.value, nil
}

// UnmarshalYAML decodes a scalar number and validates it under P. A payload
// failing the predicate fails the decode with the policy's error.
func (v *Value[F, P]) UnmarshalYAML(node *yaml.Node) error {
	var raw F
	if err := node.Decode(&raw); err != nil {
		return err
	}
	parsed, err := New[F, P](raw)
	if err != nil {
		return err
	}
	*v = parsed
	return nil
}
