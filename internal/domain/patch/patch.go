// Package patch models the three states a field of a partial-update
// payload can be in: absent, explicitly null, or set to a value.
// Plain pointers collapse the first two, which breaks "omitted fields
// retain prior values" for nullable columns.
package patch

import "encoding/json"

type Field[T any] struct {
	Set   bool
	Valid bool
	Value T
}

func (f *Field[T]) UnmarshalJSON(data []byte) error {
	f.Set = true
	if string(data) == "null" {
		f.Valid = false
		var zero T
		f.Value = zero
		return nil
	}
	if err := json.Unmarshal(data, &f.Value); err != nil {
		return err
	}
	f.Valid = true
	return nil
}

func (f Field[T]) MarshalJSON() ([]byte, error) {
	if !f.Valid {
		return []byte("null"), nil
	}
	return json.Marshal(f.Value)
}

// Ptr returns the value as a nullable pointer: nil when the field was
// omitted or explicitly null.
func (f Field[T]) Ptr() *T {
	if !f.Set || !f.Valid {
		return nil
	}
	v := f.Value
	return &v
}

func Null[T any]() Field[T] {
	return Field[T]{Set: true}
}

func Of[T any](v T) Field[T] {
	return Field[T]{Set: true, Valid: true, Value: v}
}
