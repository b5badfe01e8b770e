// Copyright (c) 2024 John Millikin <john@john-millikin.com>
//
// Permission to use, copy, modify, and/or distribute this software for any
// purpose with or without fee is hereby granted.
//
// THE SOFTWARE IS PROVIDED "AS IS" AND THE AUTHOR DISCLAIMS ALL WARRANTIES WITH
// REGARD TO THIS SOFTWARE INCLUDING ALL IMPLIED WARRANTIES OF MERCHANTABILITY
// AND FITNESS. IN NO EVENT SHALL THE AUTHOR BE LIABLE FOR ANY SPECIAL, DIRECT,
// INDIRECT, OR CONSEQUENTIAL DAMAGES OR ANY DAMAGES WHATSOEVER RESULTING FROM
// LOSS OF USE, DATA OR PROFITS, WHETHER IN AN ACTION OF CONTRACT, NEGLIGENCE OR
// OTHER TORTIOUS ACTION, ARISING OUT OF OR IN CONNECTION WITH THE USE OR
// PERFORMANCE OF THIS SOFTWARE.
//
// SPDX-License-Identifier: 0BSD

package minipb

import (
	"fmt"
)

// FieldValue is one slot of a message's positional field tuple: the ordered
// occurrence sequence of a single field. The owning field's label decides
// how many occurrences are legal.
type FieldValue struct {
	values []Value
}

// One wraps a single occurrence: a required field, or a present optional.
func One(value Value) FieldValue {
	return FieldValue{values: []Value{value}}
}

// None is the empty slot: an absent optional, or an empty repeated field.
func None() FieldValue {
	return FieldValue{}
}

// Repeated wraps zero or more occurrences in order.
func Repeated(values ...Value) FieldValue {
	return FieldValue{values: values}
}

func (fv FieldValue) Len() int {
	return len(fv.values)
}

func (fv FieldValue) At(ii int) Value {
	return fv.values[ii]
}

// IsAbsent reports whether the slot holds no occurrence.
func (fv FieldValue) IsAbsent() bool {
	return len(fv.values) == 0
}

func (fv FieldValue) Equal(other FieldValue) bool {
	if len(fv.values) != len(other.values) {
		return false
	}
	for ii := range fv.values {
		if !fv.values[ii].Equal(other.values[ii]) {
			return false
		}
	}
	return true
}

// Message is an immutable instance of a MessageDescriptor: an ordered tuple
// with one FieldValue per descriptor field, in descriptor order. Nested
// messages are owned by their containing tuple; the structure is a tree.
type Message struct {
	desc   *MessageDescriptor
	fields []FieldValue
}

// NewMessage validates fieldValues against desc and builds a message.
// The tuple must have exactly one slot per descriptor field; each slot's
// occurrence count must fit the field's label and each occurrence's kind
// tag must match the field's kind. Nested messages must be built from the
// same descriptor value the field references.
func NewMessage(
	desc *MessageDescriptor,
	fieldValues ...FieldValue,
) (*Message, error) {
	if desc == nil {
		return nil, ErrNilDescriptor
	}
	if len(fieldValues) != desc.NumFields() {
		return nil, fmt.Errorf(
			"%w: message %q has %d fields, got %d values",
			ErrArityMismatch, desc.name, desc.NumFields(), len(fieldValues),
		)
	}
	for ii := range fieldValues {
		field := desc.Field(ii)
		if err := checkFieldValue(field, ii, fieldValues[ii]); err != nil {
			return nil, err
		}
	}
	return &Message{
		desc:   desc,
		fields: fieldValues,
	}, nil
}

func checkFieldValue(
	field *FieldDescriptor,
	index int,
	fv FieldValue,
) error {
	switch field.label {
	case L_REQUIRED:
		if fv.Len() != 1 {
			return fmt.Errorf(
				"%w: required field %d (%s) has %d values",
				ErrFieldTypeMismatch, index, field.name, fv.Len(),
			)
		}
	case L_OPTIONAL:
		if fv.Len() > 1 {
			return fmt.Errorf(
				"%w: optional field %d (%s) has %d values",
				ErrFieldTypeMismatch, index, field.name, fv.Len(),
			)
		}
	case L_REPEATED:
	}

	for vi := 0; vi < fv.Len(); vi++ {
		value := fv.At(vi)
		if value.Kind() != field.kind {
			return fmt.Errorf(
				"%w: field %d (%s) is %s, got %s",
				ErrFieldTypeMismatch, index, field.name, field.kind,
				value.Kind(),
			)
		}
		if field.kind == K_MESSAGE {
			nested := value.Message()
			if nested == nil || nested.desc != field.message {
				return fmt.Errorf(
					"%w: field %d (%s) wants message %q",
					ErrFieldTypeMismatch, index, field.name,
					field.message.name,
				)
			}
		}
	}
	return nil
}

func (m *Message) Descriptor() *MessageDescriptor {
	return m.desc
}

// Field is the positional accessor. Construction already guarantees one
// slot per descriptor field, but the index is still range-checked for
// callers indexing from dynamic input.
func (m *Message) Field(ii int) (FieldValue, error) {
	if ii < 0 || ii >= len(m.fields) {
		return FieldValue{}, fmt.Errorf(
			"%w: %d (message %q has %d fields)",
			ErrIndexOutOfRange, ii, m.desc.name, len(m.fields),
		)
	}
	return m.fields[ii], nil
}

// Equal reports structural equality: same descriptor, and slot-by-slot
// equal field values (occurrence order significant).
func (m *Message) Equal(other *Message) bool {
	if m == nil || other == nil {
		return m == other
	}
	if m.desc != other.desc {
		return false
	}
	for ii := range m.fields {
		if !m.fields[ii].Equal(other.fields[ii]) {
			return false
		}
	}
	return true
}
