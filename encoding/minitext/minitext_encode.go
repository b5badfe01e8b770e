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

// Package minitext implements the human-readable text format for descriptor
// typed messages: `name: value` entries, brace-delimited nesting, repeated
// fields one entry per element.
package minitext

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"go.minipb.org/minipb"
	"go.minipb.org/minipb/syntax"
)

// Marshal encodes msg in text format. Output is deterministic: fields in
// descriptor order, repeated elements in list order, absent optionals
// omitted. Encoding fails only when an enum value's number has no name in
// its descriptor (ErrUnknownEnumNumber) or a float value is not finite
// (ErrNonFiniteFloat); the literal grammar has no infinity or NaN tokens.
func Marshal(msg *minipb.Message) (string, error) {
	var buf strings.Builder
	if err := MarshalTo(msg, &buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func MarshalTo(msg *minipb.Message, w io.Writer) error {
	e := encoder{w: w}
	e.visitMessage(msg)
	return e.err
}

type encoder struct {
	w      io.Writer
	indent int
	err    error
}

func (e *encoder) line(s string) {
	if indent := strings.Repeat("  ", e.indent); indent != "" {
		if _, err := io.WriteString(e.w, indent); err != nil {
			e.err = err
			return
		}
	}
	if _, err := io.WriteString(e.w, s); err != nil {
		e.err = err
		return
	}
	if _, err := io.WriteString(e.w, "\n"); err != nil {
		e.err = err
		return
	}
}

func (e *encoder) linef(format string, a ...any) {
	e.line(fmt.Sprintf(format, a...))
}

func (e *encoder) visitMessage(msg *minipb.Message) {
	desc := msg.Descriptor()
	for ii := 0; ii < desc.NumFields(); ii++ {
		if e.err != nil {
			return
		}
		field := desc.Field(ii)
		fv, err := msg.Field(ii)
		if err != nil {
			e.err = err
			return
		}
		for vi := 0; vi < fv.Len(); vi++ {
			e.visitField(field, fv.At(vi))
			if e.err != nil {
				return
			}
		}
	}
}

func (e *encoder) visitField(field *minipb.FieldDescriptor, value minipb.Value) {
	switch field.Kind() {
	case minipb.K_MESSAGE:
		e.linef("%s: {", field.Name())
		e.indent += 1
		e.visitMessage(value.Message())
		e.indent -= 1
		e.line("}")
	case minipb.K_ENUM:
		number := value.EnumNumber()
		enumValue := field.Enum().ValueByNumber(number)
		if enumValue == nil {
			e.err = errUnknownEnumNumber(field.Name(), field.Enum().Name(), number)
			return
		}
		e.linef("%s: %s", field.Name(), enumValue.Name())
	case minipb.K_DOUBLE, minipb.K_FLOAT:
		f := value.Float64()
		if math.IsInf(f, 0) || math.IsNaN(f) {
			e.err = errNonFiniteFloat(field.Name(), f)
			return
		}
		e.linef("%s: %s", field.Name(), fmtScalar(value))
	default:
		e.linef("%s: %s", field.Name(), fmtScalar(value))
	}
}

func fmtScalar(value minipb.Value) string {
	switch value.Kind() {
	case minipb.K_DOUBLE:
		return strconv.FormatFloat(value.Float64(), 'g', -1, 64)
	case minipb.K_FLOAT:
		return strconv.FormatFloat(value.Float64(), 'g', -1, 32)
	case minipb.K_INT32, minipb.K_INT64,
		minipb.K_SINT32, minipb.K_SINT64,
		minipb.K_SFIXED32, minipb.K_SFIXED64:
		return strconv.FormatInt(value.Int64(), 10)
	case minipb.K_UINT32, minipb.K_UINT64,
		minipb.K_FIXED32, minipb.K_FIXED64:
		return strconv.FormatUint(value.Uint64(), 10)
	case minipb.K_BOOL:
		if value.Bool() {
			return "true"
		}
		return "false"
	case minipb.K_STRING:
		return syntax.Quote(value.Text())
	case minipb.K_BYTES:
		return syntax.Quote(string(value.Bytes()))
	default:
		panic("unreachable")
	}
}
