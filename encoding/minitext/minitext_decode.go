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

package minitext

import (
	"strconv"

	"go.minipb.org/minipb"
	"go.minipb.org/minipb/syntax"
)

// Unmarshal decodes text-format src against desc. Entries may appear in any
// order; occurrences of a repeated field accumulate in input order, whether
// or not they are adjacent. The returned message is assembled in descriptor
// order regardless of input order. Decoding is all-or-nothing: any failure
// yields no message.
func Unmarshal(src []byte, desc *minipb.MessageDescriptor) (*minipb.Message, error) {
	cur, err := syntax.NewCursor(src)
	if err != nil {
		return nil, err
	}
	d := decoder{cur: cur}
	msg, err := d.message(desc)
	if err != nil {
		return nil, err
	}
	if cur.Kind() != syntax.T_EOF {
		return nil, errUnmatchedBrace(cur.Span())
	}
	return msg, nil
}

type decoder struct {
	cur *syntax.Cursor
}

// message parses a message body up to EOF or an unconsumed closing brace.
func (d *decoder) message(desc *minipb.MessageDescriptor) (*minipb.Message, error) {
	occurrences := make([][]minipb.Value, desc.NumFields())

	for d.cur.Kind() != syntax.T_EOF && d.cur.Kind() != syntax.T_CLOSE_CURL {
		if d.cur.Kind() != syntax.T_IDENT {
			return nil, errExpectedFieldName(d.cur.Kind(), d.cur.Text(), d.cur.Span())
		}
		name := d.cur.Text()
		nameSpan := d.cur.Span()
		field, index := desc.FieldByName(name)
		if field == nil {
			return nil, errUnknownField(name, desc.Name(), nameSpan)
		}
		if err := d.cur.Next(); err != nil {
			return nil, err
		}

		if d.cur.Kind() != syntax.T_COLON {
			return nil, errExpectedColon(d.cur.Kind(), d.cur.Text(), d.cur.Span())
		}
		if err := d.cur.Next(); err != nil {
			return nil, err
		}

		var value minipb.Value
		if field.Kind() == minipb.K_MESSAGE {
			if d.cur.Kind() != syntax.T_OPEN_CURL {
				return nil, errExpectedOpenBrace(
					d.cur.Kind(), d.cur.Text(), d.cur.Span(),
				)
			}
			if err := d.cur.Next(); err != nil {
				return nil, err
			}
			nested, err := d.message(field.MessageType())
			if err != nil {
				return nil, err
			}
			if d.cur.Kind() != syntax.T_CLOSE_CURL {
				return nil, errUnmatchedBrace(d.cur.Span())
			}
			if err := d.cur.Next(); err != nil {
				return nil, err
			}
			value = minipb.Nested(nested)
		} else {
			var err error
			value, err = d.scalar(field)
			if err != nil {
				return nil, err
			}
		}
		occurrences[index] = append(occurrences[index], value)
	}

	fieldValues := make([]minipb.FieldValue, desc.NumFields())
	for ii := range fieldValues {
		field := desc.Field(ii)
		count := len(occurrences[ii])
		switch field.Label() {
		case minipb.L_REQUIRED:
			if count == 0 {
				return nil, errMissingRequiredField(field.Name(), d.cur.Span())
			}
			if count > 1 {
				return nil, errDuplicateField(field.Name(), d.cur.Span())
			}
		case minipb.L_OPTIONAL:
			if count > 1 {
				return nil, errDuplicateField(field.Name(), d.cur.Span())
			}
		case minipb.L_REPEATED:
		}
		fieldValues[ii] = minipb.Repeated(occurrences[ii]...)
	}
	return minipb.NewMessage(desc, fieldValues...)
}

func (d *decoder) scalar(field *minipb.FieldDescriptor) (minipb.Value, error) {
	var none minipb.Value
	text := d.cur.Text()
	span := d.cur.Span()
	kind := d.cur.Kind()

	var value minipb.Value
	switch field.Kind() {
	case minipb.K_STRING, minipb.K_BYTES:
		if kind != syntax.T_TEXT_LIT {
			return none, errBadLiteral(field, text, span)
		}
		decoded, err := syntax.Unquote(text, span.Start())
		if err != nil {
			return none, err
		}
		if field.Kind() == minipb.K_STRING {
			value = minipb.String(decoded)
		} else {
			value = minipb.Bytes([]byte(decoded))
		}

	case minipb.K_BOOL:
		switch {
		case kind == syntax.T_IDENT && text == "true":
			value = minipb.Bool(true)
		case kind == syntax.T_IDENT && text == "false":
			value = minipb.Bool(false)
		default:
			return none, errBadLiteral(field, text, span)
		}

	case minipb.K_ENUM:
		if kind != syntax.T_IDENT {
			return none, errBadLiteral(field, text, span)
		}
		enumValue := field.Enum().ValueByName(text)
		if enumValue == nil {
			return none, errUnknownEnumValue(text, field.Enum().Name(), span)
		}
		value = minipb.Enum(enumValue.Number())

	case minipb.K_DOUBLE, minipb.K_FLOAT:
		if kind != syntax.T_INT_LIT && kind != syntax.T_FLOAT_LIT {
			return none, errBadLiteral(field, text, span)
		}
		bitSize := 64
		if field.Kind() == minipb.K_FLOAT {
			bitSize = 32
		}
		parsed, err := strconv.ParseFloat(text, bitSize)
		if err != nil {
			return none, errBadLiteral(field, text, span)
		}
		if field.Kind() == minipb.K_DOUBLE {
			value = minipb.Double(parsed)
		} else {
			value = minipb.Float(float32(parsed))
		}

	case minipb.K_INT32, minipb.K_SINT32, minipb.K_SFIXED32:
		parsed, err := parseInt(kind, text, 32)
		if err != nil {
			return none, errBadLiteral(field, text, span)
		}
		switch field.Kind() {
		case minipb.K_INT32:
			value = minipb.Int32(int32(parsed))
		case minipb.K_SINT32:
			value = minipb.Sint32(int32(parsed))
		default:
			value = minipb.Sfixed32(int32(parsed))
		}

	case minipb.K_INT64, minipb.K_SINT64, minipb.K_SFIXED64:
		parsed, err := parseInt(kind, text, 64)
		if err != nil {
			return none, errBadLiteral(field, text, span)
		}
		switch field.Kind() {
		case minipb.K_INT64:
			value = minipb.Int64(parsed)
		case minipb.K_SINT64:
			value = minipb.Sint64(parsed)
		default:
			value = minipb.Sfixed64(parsed)
		}

	case minipb.K_UINT32, minipb.K_FIXED32:
		parsed, err := parseUint(kind, text, 32)
		if err != nil {
			return none, errBadLiteral(field, text, span)
		}
		if field.Kind() == minipb.K_UINT32 {
			value = minipb.Uint32(uint32(parsed))
		} else {
			value = minipb.Fixed32(uint32(parsed))
		}

	case minipb.K_UINT64, minipb.K_FIXED64:
		parsed, err := parseUint(kind, text, 64)
		if err != nil {
			return none, errBadLiteral(field, text, span)
		}
		if field.Kind() == minipb.K_UINT64 {
			value = minipb.Uint64(parsed)
		} else {
			value = minipb.Fixed64(parsed)
		}

	default:
		panic("unreachable")
	}

	if err := d.cur.Next(); err != nil {
		return none, err
	}
	return value, nil
}

func parseInt(kind syntax.TokenKind, text string, bitSize int) (int64, error) {
	if kind != syntax.T_INT_LIT {
		return 0, strconv.ErrSyntax
	}
	return strconv.ParseInt(text, 10, bitSize)
}

func parseUint(kind syntax.TokenKind, text string, bitSize int) (uint64, error) {
	if kind != syntax.T_INT_LIT {
		return 0, strconv.ErrSyntax
	}
	return strconv.ParseUint(text, 10, bitSize)
}
