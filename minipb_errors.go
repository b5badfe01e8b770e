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

import "errors"

// Descriptor construction errors
var (
	ErrEmptyName            = errors.New("minipb: descriptor name is empty")
	ErrDuplicateFieldName   = errors.New("minipb: duplicate field name")
	ErrDuplicateFieldNumber = errors.New("minipb: duplicate field number")
	ErrDuplicateEnumValue   = errors.New("minipb: duplicate enum value name")
	ErrKindReference        = errors.New("minipb: field kind does not match referenced type")
)

// Message construction errors
var (
	ErrNilDescriptor     = errors.New("minipb: nil message descriptor")
	ErrArityMismatch     = errors.New("minipb: field value count does not match descriptor")
	ErrFieldTypeMismatch = errors.New("minipb: field value does not match descriptor")
	ErrIndexOutOfRange   = errors.New("minipb: field index out of range")
)
