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

// Package minipb holds runtime message descriptors and the descriptor-typed
// value model they describe. Descriptors and messages are immutable once
// constructed; shape checks happen at construction time.
package minipb

import (
	"fmt"
)

type Kind uint8

const (
	K_DOUBLE Kind = iota
	K_FLOAT
	K_INT32
	K_INT64
	K_UINT32
	K_UINT64
	K_SINT32
	K_SINT64
	K_FIXED32
	K_FIXED64
	K_SFIXED32
	K_SFIXED64
	K_BOOL
	K_STRING
	K_BYTES

	K_ENUM
	K_MESSAGE
)

func (k Kind) String() string {
	switch k {
	case K_DOUBLE:
		return "double"
	case K_FLOAT:
		return "float"
	case K_INT32:
		return "int32"
	case K_INT64:
		return "int64"
	case K_UINT32:
		return "uint32"
	case K_UINT64:
		return "uint64"
	case K_SINT32:
		return "sint32"
	case K_SINT64:
		return "sint64"
	case K_FIXED32:
		return "fixed32"
	case K_FIXED64:
		return "fixed64"
	case K_SFIXED32:
		return "sfixed32"
	case K_SFIXED64:
		return "sfixed64"
	case K_BOOL:
		return "bool"
	case K_STRING:
		return "string"
	case K_BYTES:
		return "bytes"
	case K_ENUM:
		return "enum"
	case K_MESSAGE:
		return "message"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}

// IsScalar reports whether k is one of the primitive scalar kinds.
func (k Kind) IsScalar() bool {
	return k < K_ENUM
}

type Label uint8

const (
	L_REQUIRED Label = iota
	L_OPTIONAL
	L_REPEATED
)

func (l Label) String() string {
	switch l {
	case L_REQUIRED:
		return "required"
	case L_OPTIONAL:
		return "optional"
	case L_REPEATED:
		return "repeated"
	default:
		return fmt.Sprintf("Label(%d)", uint8(l))
	}
}
