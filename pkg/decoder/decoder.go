// Package decoder converts loosely typed maps, as produced by JSON and YAML decoding, into
// typed structs, rejecting keys the target doesn't declare.
package decoder

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// UnknownFieldError names a key that the target type doesn't accept.
type UnknownFieldError struct {
	Field string
}

func (e *UnknownFieldError) Error() string {
	return fmt.Sprintf("unknown field %q", e.Field)
}

// TypeError names a key whose value has the wrong type.
type TypeError struct {
	Field string
	Want  string
}

func (e *TypeError) Error() string {
	return fmt.Sprintf("field %q must be %s", e.Field, e.Want)
}

func DecodeMapStrict[T any](m map[string]any) (T, error) {
	var out T
	err := decodeStrict(m, &out)
	return out, err
}

// PatchStrict applies the keys of m onto dst, leaving fields that m doesn't mention
// untouched. Keys are first checked against T, which lists the patchable fields, so a
// patch can't reach fields that T leaves out even when dst has them.
func PatchStrict[T any](m map[string]any, dst any) error {
	if _, err := DecodeMapStrict[T](m); err != nil {
		return err
	}

	b, err := json.Marshal(m)
	if err != nil {
		return fmt.Errorf("failed to marshal map: %w", err)
	}

	if err := json.Unmarshal(b, dst); err != nil {
		return fmt.Errorf("failed to apply patch: %w", err)
	}

	return nil
}

func decodeStrict(m map[string]any, out any) error {
	b, err := json.Marshal(m)
	if err != nil {
		return fmt.Errorf("failed to marshal map: %w", err)
	}

	dec := json.NewDecoder(bytes.NewReader(b))
	dec.DisallowUnknownFields()

	if err := dec.Decode(out); err != nil {
		return classify(err)
	}

	return nil
}

func classify(err error) error {
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		return &TypeError{Field: typeErr.Field, Want: typeErr.Type.String()}
	}

	// encoding/json reports unknown fields only through the message text.
	const prefix = "json: unknown field "
	if msg := err.Error(); strings.HasPrefix(msg, prefix) {
		return &UnknownFieldError{Field: strings.Trim(strings.TrimPrefix(msg, prefix), `"`)}
	}

	return fmt.Errorf("failed to decode map: %w", err)
}
