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
	"errors"
	"fmt"

	"go.minipb.org/minipb"
	"go.minipb.org/minipb/syntax"
)

var (
	ErrUnknownField         = errors.New("minitext: unknown field name")
	ErrUnknownEnumValue     = errors.New("minitext: unknown enum value name")
	ErrUnknownEnumNumber    = errors.New("minitext: enum number has no name")
	ErrMissingRequiredField = errors.New("minitext: missing required field")
	ErrDuplicateField       = errors.New("minitext: non-repeated field appears more than once")
	ErrBadLiteral           = errors.New("minitext: malformed literal")
	ErrNonFiniteFloat       = errors.New("minitext: non-finite float has no text form")
)

type Error struct {
	code    uint32
	message string
	span    syntax.Span
	err     error
}

var _ error = (*Error)(nil)

func (err *Error) Error() string {
	return fmt.Sprintf("E%d: %s", err.code, err.message)
}

func (err *Error) Code() uint32 {
	return err.code
}

func (err *Error) Message() string {
	return err.message
}

func (err *Error) Span() syntax.Span {
	return err.span
}

func (err *Error) Unwrap() error {
	return err.err
}

func errExpectedFieldName(
	gotKind syntax.TokenKind,
	gotToken string,
	span syntax.Span,
) error {
	return &Error{
		code:    4000,
		message: fmt.Sprintf("Expected field name, got (%s %q)", gotKind, gotToken),
		span:    span,
	}
}

func errExpectedColon(
	gotKind syntax.TokenKind,
	gotToken string,
	span syntax.Span,
) error {
	return &Error{
		code:    4001,
		message: fmt.Sprintf("Expected ':', got (%s %q)", gotKind, gotToken),
		span:    span,
	}
}

func errExpectedOpenBrace(
	gotKind syntax.TokenKind,
	gotToken string,
	span syntax.Span,
) error {
	return &Error{
		code:    4002,
		message: fmt.Sprintf("Expected '{', got (%s %q)", gotKind, gotToken),
		span:    span,
	}
}

func errUnmatchedBrace(span syntax.Span) error {
	return &Error{
		code:    4003,
		message: "Unmatched '}'",
		span:    span,
	}
}

func errUnknownField(name, messageName string, span syntax.Span) error {
	return &Error{
		code: 4004,
		message: fmt.Sprintf(
			"Unknown field %q in message %q",
			name, messageName,
		),
		span: span,
		err:  ErrUnknownField,
	}
}

func errUnknownEnumValue(name, enumName string, span syntax.Span) error {
	return &Error{
		code: 4005,
		message: fmt.Sprintf(
			"Unknown value name %q in enum %q",
			name, enumName,
		),
		span: span,
		err:  ErrUnknownEnumValue,
	}
}

func errMissingRequiredField(name string, span syntax.Span) error {
	return &Error{
		code:    4006,
		message: fmt.Sprintf("Required field %q has no value", name),
		span:    span,
		err:     ErrMissingRequiredField,
	}
}

func errDuplicateField(name string, span syntax.Span) error {
	return &Error{
		code: 4007,
		message: fmt.Sprintf(
			"Non-repeated field %q appears more than once",
			name,
		),
		span: span,
		err:  ErrDuplicateField,
	}
}

func errBadLiteral(
	field *minipb.FieldDescriptor,
	gotToken string,
	span syntax.Span,
) error {
	return &Error{
		code: 4008,
		message: fmt.Sprintf(
			"Invalid %s literal %q for field %q",
			field.Kind(), gotToken, field.Name(),
		),
		span: span,
		err:  ErrBadLiteral,
	}
}

func errUnknownEnumNumber(fieldName, enumName string, number int32) error {
	return &Error{
		code: 4009,
		message: fmt.Sprintf(
			"Field %q holds number %d, which has no name in enum %q",
			fieldName, number, enumName,
		),
		err: ErrUnknownEnumNumber,
	}
}

func errNonFiniteFloat(fieldName string, value float64) error {
	return &Error{
		code: 4010,
		message: fmt.Sprintf(
			"Field %q holds non-finite value %v",
			fieldName, value,
		),
		err: ErrNonFiniteFloat,
	}
}
