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

// Package compiler turns schema source text into message and enum
// descriptors. Type references resolve against a registry of previously
// compiled descriptors, so definitions must be supplied in dependency
// order: no forward references, no mutual recursion.
package compiler

import (
	"fmt"
	"strconv"

	"go.minipb.org/minipb"
	"go.minipb.org/minipb/syntax"
)

var builtinKinds = map[string]minipb.Kind{
	"double":   minipb.K_DOUBLE,
	"float":    minipb.K_FLOAT,
	"int32":    minipb.K_INT32,
	"int64":    minipb.K_INT64,
	"uint32":   minipb.K_UINT32,
	"uint64":   minipb.K_UINT64,
	"sint32":   minipb.K_SINT32,
	"sint64":   minipb.K_SINT64,
	"fixed32":  minipb.K_FIXED32,
	"fixed64":  minipb.K_FIXED64,
	"sfixed32": minipb.K_SFIXED32,
	"sfixed64": minipb.K_SFIXED64,
	"bool":     minipb.K_BOOL,
	"string":   minipb.K_STRING,
	"bytes":    minipb.K_BYTES,
}

var fieldLabels = map[string]minipb.Label{
	"required": minipb.L_REQUIRED,
	"optional": minipb.L_OPTIONAL,
	"repeated": minipb.L_REPEATED,
}

// Registry holds compiled descriptors by name for resolving type
// references. It is read-only during a single parse.
type Registry struct {
	messages map[string]*minipb.MessageDescriptor
	enums    map[string]*minipb.EnumDescriptor
}

func NewRegistry() *Registry {
	return &Registry{
		messages: make(map[string]*minipb.MessageDescriptor),
		enums:    make(map[string]*minipb.EnumDescriptor),
	}
}

func (r *Registry) RegisterMessage(desc *minipb.MessageDescriptor) error {
	if _, conflict := r.messages[desc.Name()]; conflict {
		return fmt.Errorf("%w: message %q", ErrNameConflict, desc.Name())
	}
	if _, conflict := r.enums[desc.Name()]; conflict {
		return fmt.Errorf("%w: message %q", ErrNameConflict, desc.Name())
	}
	r.messages[desc.Name()] = desc
	return nil
}

func (r *Registry) RegisterEnum(desc *minipb.EnumDescriptor) error {
	if _, conflict := r.enums[desc.Name()]; conflict {
		return fmt.Errorf("%w: enum %q", ErrNameConflict, desc.Name())
	}
	if _, conflict := r.messages[desc.Name()]; conflict {
		return fmt.Errorf("%w: enum %q", ErrNameConflict, desc.Name())
	}
	r.enums[desc.Name()] = desc
	return nil
}

func (r *Registry) Message(name string) *minipb.MessageDescriptor {
	return r.messages[name]
}

func (r *Registry) Enum(name string) *minipb.EnumDescriptor {
	return r.enums[name]
}

// Schema is the ordered result of compiling one source file.
type Schema struct {
	Messages []*minipb.MessageDescriptor
	Enums    []*minipb.EnumDescriptor
}

// ParseMessage compiles a single `message Name { ... }` declaration.
// The registry is consulted for field type references but not modified.
func ParseMessage(
	src []byte,
	reg *Registry,
) (*minipb.MessageDescriptor, error) {
	cur, err := syntax.NewCursor(src)
	if err != nil {
		return nil, err
	}
	desc, err := parseMessage(cur, reg)
	if err != nil {
		return nil, err
	}
	if err := expectEOF(cur); err != nil {
		return nil, err
	}
	return desc, nil
}

// ParseEnum compiles a single `enum Name { ... }` declaration.
func ParseEnum(src []byte, reg *Registry) (*minipb.EnumDescriptor, error) {
	cur, err := syntax.NewCursor(src)
	if err != nil {
		return nil, err
	}
	desc, err := parseEnum(cur)
	if err != nil {
		return nil, err
	}
	if err := expectEOF(cur); err != nil {
		return nil, err
	}
	return desc, nil
}

// ParseSchema compiles a whole source file of message and enum
// declarations. Each declaration is registered before the next is parsed,
// so file order is dependency order.
func ParseSchema(src []byte, reg *Registry) (*Schema, error) {
	if reg == nil {
		reg = NewRegistry()
	}
	cur, err := syntax.NewCursor(src)
	if err != nil {
		return nil, err
	}

	schema := &Schema{}
	for cur.Kind() != syntax.T_EOF {
		if cur.Kind() != syntax.T_IDENT {
			return nil, errExpectedDeclaration(cur.Kind(), cur.Text(), cur.Span())
		}
		switch cur.Text() {
		case "message":
			desc, err := parseMessage(cur, reg)
			if err != nil {
				return nil, err
			}
			if err := reg.RegisterMessage(desc); err != nil {
				return nil, err
			}
			schema.Messages = append(schema.Messages, desc)
		case "enum":
			desc, err := parseEnum(cur)
			if err != nil {
				return nil, err
			}
			if err := reg.RegisterEnum(desc); err != nil {
				return nil, err
			}
			schema.Enums = append(schema.Enums, desc)
		default:
			return nil, errExpectedDeclaration(cur.Kind(), cur.Text(), cur.Span())
		}
	}
	return schema, nil
}

func parseMessage(
	cur *syntax.Cursor,
	reg *Registry,
) (*minipb.MessageDescriptor, error) {
	if err := expectKeyword(cur, "message"); err != nil {
		return nil, err
	}
	name, nameSpan, err := expectIdent(cur)
	if err != nil {
		return nil, err
	}
	if err := expectSigil(cur, syntax.T_OPEN_CURL); err != nil {
		return nil, err
	}

	var fields []minipb.FieldDescriptor
	for {
		if cur.Kind() == syntax.T_CLOSE_CURL {
			if err := cur.Next(); err != nil {
				return nil, err
			}
			break
		}
		field, err := parseField(cur, reg)
		if err != nil {
			return nil, err
		}
		fields = append(fields, field)
	}

	desc, err := minipb.NewMessageDescriptor(name, fields)
	if err != nil {
		return nil, errInvalidDescriptor(err, nameSpan)
	}
	return desc, nil
}

func parseField(
	cur *syntax.Cursor,
	reg *Registry,
) (minipb.FieldDescriptor, error) {
	var none minipb.FieldDescriptor

	labelText, labelSpan, err := expectIdent(cur)
	if err != nil {
		return none, err
	}
	label, ok := fieldLabels[labelText]
	if !ok {
		return none, errExpectedFieldLabel(labelText, labelSpan)
	}

	typeName, typeSpan, err := expectIdent(cur)
	if err != nil {
		return none, err
	}

	fieldName, fieldSpan, err := expectIdent(cur)
	if err != nil {
		return none, err
	}

	if err := expectSigil(cur, syntax.T_EQ); err != nil {
		return none, err
	}
	number, err := expectFieldNumber(cur)
	if err != nil {
		return none, err
	}
	if err := expectSigil(cur, syntax.T_SEMI); err != nil {
		return none, err
	}

	var field minipb.FieldDescriptor
	var fieldErr error
	if kind, ok := builtinKinds[typeName]; ok {
		field, fieldErr = minipb.NewField(label, kind, fieldName, number)
	} else if enum := reg.Enum(typeName); enum != nil {
		field, fieldErr = minipb.NewEnumField(label, fieldName, number, enum)
	} else if message := reg.Message(typeName); message != nil {
		field, fieldErr = minipb.NewMessageField(label, fieldName, number, message)
	} else {
		return none, errUnknownFieldType(typeName, typeSpan)
	}
	if fieldErr != nil {
		return none, errInvalidDescriptor(fieldErr, fieldSpan)
	}
	return field, nil
}

func parseEnum(cur *syntax.Cursor) (*minipb.EnumDescriptor, error) {
	if err := expectKeyword(cur, "enum"); err != nil {
		return nil, err
	}
	name, nameSpan, err := expectIdent(cur)
	if err != nil {
		return nil, err
	}
	if err := expectSigil(cur, syntax.T_OPEN_CURL); err != nil {
		return nil, err
	}

	var values []minipb.EnumValueDescriptor
	for {
		if cur.Kind() == syntax.T_CLOSE_CURL {
			if err := cur.Next(); err != nil {
				return nil, err
			}
			break
		}
		valueName, _, err := expectIdent(cur)
		if err != nil {
			return nil, err
		}
		if err := expectSigil(cur, syntax.T_EQ); err != nil {
			return nil, err
		}
		number, err := expectEnumNumber(cur)
		if err != nil {
			return nil, err
		}
		if err := expectSigil(cur, syntax.T_SEMI); err != nil {
			return nil, err
		}
		values = append(values, minipb.NewEnumValue(valueName, number))
	}

	desc, err := minipb.NewEnumDescriptor(name, values)
	if err != nil {
		return nil, errInvalidDescriptor(err, nameSpan)
	}
	return desc, nil
}

func expectKeyword(cur *syntax.Cursor, keyword string) error {
	if cur.Kind() != syntax.T_IDENT || cur.Text() != keyword {
		return errExpectedKeyword(keyword, cur.Kind(), cur.Text(), cur.Span())
	}
	return cur.Next()
}

func expectIdent(cur *syntax.Cursor) (string, syntax.Span, error) {
	if cur.Kind() != syntax.T_IDENT {
		return "", syntax.Span{}, errExpectedIdent(
			cur.Kind(), cur.Text(), cur.Span(),
		)
	}
	text := cur.Text()
	span := cur.Span()
	return text, span, cur.Next()
}

func expectSigil(cur *syntax.Cursor, kind syntax.TokenKind) error {
	if cur.Kind() != kind {
		return errExpectedSigil(kind, cur.Kind(), cur.Text(), cur.Span())
	}
	return cur.Next()
}

func expectFieldNumber(cur *syntax.Cursor) (int32, error) {
	if cur.Kind() != syntax.T_INT_LIT {
		return 0, errBadFieldNumber(cur.Text(), cur.Span())
	}
	number, err := strconv.ParseInt(cur.Text(), 10, 32)
	if err != nil || number <= 0 {
		return 0, errBadFieldNumber(cur.Text(), cur.Span())
	}
	return int32(number), cur.Next()
}

func expectEnumNumber(cur *syntax.Cursor) (int32, error) {
	if cur.Kind() != syntax.T_INT_LIT {
		return 0, errBadEnumNumber(cur.Text(), cur.Span())
	}
	number, err := strconv.ParseInt(cur.Text(), 10, 32)
	if err != nil {
		return 0, errBadEnumNumber(cur.Text(), cur.Span())
	}
	return int32(number), cur.Next()
}

func expectEOF(cur *syntax.Cursor) error {
	if cur.Kind() != syntax.T_EOF {
		return errExpectedEOF(cur.Kind(), cur.Text(), cur.Span())
	}
	return nil
}
