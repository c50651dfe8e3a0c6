package confloat

import "github.com/dmitrymomot/confloat/pkg/floatx"

// MarshalText renders the payload as its shortest round-tripping decimal
// form at F's width. Implementing encoding.TextMarshaler lets a Value act as
// a map key or flow through any text-based encoder.
func (v Value[F, P]) MarshalText() ([]byte, error) {
	return []byte(floatx.Format(v.value)), nil
}

// UnmarshalText parses a decimal string at F's width and validates it under
// P. Implementing encoding.TextUnmarshaler is what lets constrained values
// sit directly in env-tagged configuration structs: a config field that
// fails its policy fails the whole parse with the policy's message.
func (v *Value[F, P]) UnmarshalText(text []byte) error {
	raw, err := floatx.Parse[F](string(text))
	if err != nil {
		return err
	}
	parsed, err := New[F, P](raw)
	if err != nil {
		return err
	}
	*v = parsed
	return nil
}
