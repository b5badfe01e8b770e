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

package compiler

import (
	"errors"
	"fmt"

	"go.minipb.org/minipb/syntax"
)

var (
	ErrUnknownType    = errors.New("compiler: unknown type name")
	ErrBadFieldNumber = errors.New("compiler: invalid field number")
	ErrBadEnumNumber  = errors.New("compiler: invalid enum value number")
	ErrNameConflict   = errors.New("compiler: name already registered")
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

func errExpectedKeyword(
	keyword string,
	gotKind syntax.TokenKind,
	gotToken string,
	span syntax.Span,
) error {
	return &Error{
		code: 3000,
		message: fmt.Sprintf(
			"Expected keyword %q, got (%s %q)",
			keyword, gotKind, gotToken,
		),
		span: span,
	}
}

func errExpectedIdent(
	gotKind syntax.TokenKind,
	gotToken string,
	span syntax.Span,
) error {
	return &Error{
		code:    3001,
		message: fmt.Sprintf("Expected identifier, got (%s %q)", gotKind, gotToken),
		span:    span,
	}
}

func errExpectedSigil(
	wantKind syntax.TokenKind,
	gotKind syntax.TokenKind,
	gotToken string,
	span syntax.Span,
) error {
	var want string
	switch wantKind {
	case syntax.T_EQ:
		want = "="
	case syntax.T_SEMI:
		want = ";"
	case syntax.T_OPEN_CURL:
		want = "{"
	case syntax.T_CLOSE_CURL:
		want = "}"
	default:
		panic("unreachable")
	}
	return &Error{
		code: 3002,
		message: fmt.Sprintf(
			"Expected sigil '%s', got (%s %q)",
			want, gotKind, gotToken,
		),
		span: span,
	}
}

func errExpectedFieldLabel(gotToken string, span syntax.Span) error {
	return &Error{
		code: 3003,
		message: fmt.Sprintf(
			"Expected field label ('required', 'optional', or 'repeated'),"+
				" got %q",
			gotToken,
		),
		span: span,
	}
}

func errUnknownFieldType(name string, span syntax.Span) error {
	return &Error{
		code:    3004,
		message: fmt.Sprintf("Unknown field type %q", name),
		span:    span,
		err:     ErrUnknownType,
	}
}

func errBadFieldNumber(token string, span syntax.Span) error {
	return &Error{
		code:    3005,
		message: fmt.Sprintf("Invalid field number %q", token),
		span:    span,
		err:     ErrBadFieldNumber,
	}
}

func errBadEnumNumber(token string, span syntax.Span) error {
	return &Error{
		code:    3006,
		message: fmt.Sprintf("Invalid enum value number %q", token),
		span:    span,
		err:     ErrBadEnumNumber,
	}
}

func errExpectedDeclaration(
	gotKind syntax.TokenKind,
	gotToken string,
	span syntax.Span,
) error {
	return &Error{
		code: 3007,
		message: fmt.Sprintf(
			"Expected declaration ('message' or 'enum'), got (%s %q)",
			gotKind, gotToken,
		),
		span: span,
	}
}

func errInvalidDescriptor(err error, span syntax.Span) error {
	return &Error{
		code:    3008,
		message: err.Error(),
		span:    span,
		err:     err,
	}
}

func errExpectedEOF(
	gotKind syntax.TokenKind,
	gotToken string,
	span syntax.Span,
) error {
	return &Error{
		code: 3009,
		message: fmt.Sprintf(
			"Expected end of input, got (%s %q)",
			gotKind, gotToken,
		),
		span: span,
	}
}
