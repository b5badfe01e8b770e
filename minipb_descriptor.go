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

type EnumValueDescriptor struct {
	name   string
	number int32
}

func NewEnumValue(name string, number int32) EnumValueDescriptor {
	return EnumValueDescriptor{
		name:   name,
		number: number,
	}
}

func (d EnumValueDescriptor) Name() string {
	return d.name
}

func (d EnumValueDescriptor) Number() int32 {
	return d.number
}

type EnumDescriptor struct {
	name   string
	values []EnumValueDescriptor
}

// NewEnumDescriptor builds an enum descriptor from an ordered value list.
// Value names must be unique; numbers may repeat and need not be ordered.
func NewEnumDescriptor(
	name string,
	values []EnumValueDescriptor,
) (*EnumDescriptor, error) {
	if name == "" {
		return nil, ErrEmptyName
	}
	seen := make(map[string]struct{}, len(values))
	for _, value := range values {
		if _, conflict := seen[value.name]; conflict {
			return nil, fmt.Errorf(
				"%w: %q in enum %q",
				ErrDuplicateEnumValue, value.name, name,
			)
		}
		seen[value.name] = struct{}{}
	}
	return &EnumDescriptor{
		name:   name,
		values: values,
	}, nil
}

func (d *EnumDescriptor) Name() string {
	return d.name
}

func (d *EnumDescriptor) NumValues() int {
	return len(d.values)
}

func (d *EnumDescriptor) Value(ii int) EnumValueDescriptor {
	return d.values[ii]
}

// ValueByName is a linear scan; the first exact match wins.
func (d *EnumDescriptor) ValueByName(name string) *EnumValueDescriptor {
	for ii := range d.values {
		if d.values[ii].name == name {
			return &d.values[ii]
		}
	}
	return nil
}

// ValueByNumber is a linear scan; the first match wins, so when two names
// share a number the earlier declaration is the canonical name.
func (d *EnumDescriptor) ValueByNumber(number int32) *EnumValueDescriptor {
	for ii := range d.values {
		if d.values[ii].number == number {
			return &d.values[ii]
		}
	}
	return nil
}

type FieldDescriptor struct {
	label   Label
	kind    Kind
	name    string
	number  int32
	enum    *EnumDescriptor
	message *MessageDescriptor
}

// NewField builds a field descriptor of a primitive scalar kind.
func NewField(
	label Label,
	kind Kind,
	name string,
	number int32,
) (FieldDescriptor, error) {
	if name == "" {
		return FieldDescriptor{}, ErrEmptyName
	}
	if !kind.IsScalar() {
		return FieldDescriptor{}, fmt.Errorf(
			"%w: %s field %q needs a type reference",
			ErrKindReference, kind, name,
		)
	}
	return FieldDescriptor{
		label:  label,
		kind:   kind,
		name:   name,
		number: number,
	}, nil
}

func NewEnumField(
	label Label,
	name string,
	number int32,
	enum *EnumDescriptor,
) (FieldDescriptor, error) {
	if name == "" {
		return FieldDescriptor{}, ErrEmptyName
	}
	if enum == nil {
		return FieldDescriptor{}, fmt.Errorf(
			"%w: enum field %q has no enum descriptor",
			ErrKindReference, name,
		)
	}
	return FieldDescriptor{
		label:  label,
		kind:   K_ENUM,
		name:   name,
		number: number,
		enum:   enum,
	}, nil
}

func NewMessageField(
	label Label,
	name string,
	number int32,
	message *MessageDescriptor,
) (FieldDescriptor, error) {
	if name == "" {
		return FieldDescriptor{}, ErrEmptyName
	}
	if message == nil {
		return FieldDescriptor{}, fmt.Errorf(
			"%w: message field %q has no message descriptor",
			ErrKindReference, name,
		)
	}
	return FieldDescriptor{
		label:   label,
		kind:    K_MESSAGE,
		name:    name,
		number:  number,
		message: message,
	}, nil
}

func (d *FieldDescriptor) Label() Label {
	return d.label
}

func (d *FieldDescriptor) Kind() Kind {
	return d.kind
}

func (d *FieldDescriptor) Name() string {
	return d.name
}

func (d *FieldDescriptor) Number() int32 {
	return d.number
}

// Enum returns the referenced enum descriptor, or nil for non-enum fields.
func (d *FieldDescriptor) Enum() *EnumDescriptor {
	return d.enum
}

// MessageType returns the referenced message descriptor, or nil for
// non-message fields.
func (d *FieldDescriptor) MessageType() *MessageDescriptor {
	return d.message
}

type MessageDescriptor struct {
	name   string
	fields []FieldDescriptor
}

// NewMessageDescriptor builds a message descriptor from an ordered field
// list. Field order is significant: it fixes the positional layout of every
// message value of this descriptor. Field names and field numbers must be
// unique within the message.
func NewMessageDescriptor(
	name string,
	fields []FieldDescriptor,
) (*MessageDescriptor, error) {
	if name == "" {
		return nil, ErrEmptyName
	}
	names := make(map[string]struct{}, len(fields))
	numbers := make(map[int32]struct{}, len(fields))
	for _, field := range fields {
		if _, conflict := names[field.name]; conflict {
			return nil, fmt.Errorf(
				"%w: %q in message %q",
				ErrDuplicateFieldName, field.name, name,
			)
		}
		names[field.name] = struct{}{}
		if _, conflict := numbers[field.number]; conflict {
			return nil, fmt.Errorf(
				"%w: %d in message %q",
				ErrDuplicateFieldNumber, field.number, name,
			)
		}
		numbers[field.number] = struct{}{}
	}
	return &MessageDescriptor{
		name:   name,
		fields: fields,
	}, nil
}

func (d *MessageDescriptor) Name() string {
	return d.name
}

func (d *MessageDescriptor) NumFields() int {
	return len(d.fields)
}

func (d *MessageDescriptor) Field(ii int) *FieldDescriptor {
	return &d.fields[ii]
}

// FieldByName is a linear scan; returns the field and its positional index,
// or (nil, -1) when no field has that name.
func (d *MessageDescriptor) FieldByName(name string) (*FieldDescriptor, int) {
	for ii := range d.fields {
		if d.fields[ii].name == name {
			return &d.fields[ii], ii
		}
	}
	return nil, -1
}

func (d *MessageDescriptor) FieldByNumber(number int32) *FieldDescriptor {
	for ii := range d.fields {
		if d.fields[ii].number == number {
			return &d.fields[ii]
		}
	}
	return nil
}
