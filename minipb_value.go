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
	"bytes"
	"math"
)

// Value is a single field value tagged with its kind. The kind tag is
// checked against the owning field's descriptor when a Message is built;
// a Value on its own carries no cardinality.
type Value struct {
	kind Kind
	num  uint64
	text string
	raw  []byte
	msg  *Message
}

func Double(v float64) Value {
	return Value{kind: K_DOUBLE, num: math.Float64bits(v)}
}

func Float(v float32) Value {
	return Value{kind: K_FLOAT, num: math.Float64bits(float64(v))}
}

func Int32(v int32) Value {
	return Value{kind: K_INT32, num: uint64(int64(v))}
}

func Int64(v int64) Value {
	return Value{kind: K_INT64, num: uint64(v)}
}

func Uint32(v uint32) Value {
	return Value{kind: K_UINT32, num: uint64(v)}
}

func Uint64(v uint64) Value {
	return Value{kind: K_UINT64, num: v}
}

func Sint32(v int32) Value {
	return Value{kind: K_SINT32, num: uint64(int64(v))}
}

func Sint64(v int64) Value {
	return Value{kind: K_SINT64, num: uint64(v)}
}

func Fixed32(v uint32) Value {
	return Value{kind: K_FIXED32, num: uint64(v)}
}

func Fixed64(v uint64) Value {
	return Value{kind: K_FIXED64, num: v}
}

func Sfixed32(v int32) Value {
	return Value{kind: K_SFIXED32, num: uint64(int64(v))}
}

func Sfixed64(v int64) Value {
	return Value{kind: K_SFIXED64, num: uint64(v)}
}

func Bool(v bool) Value {
	var num uint64
	if v {
		num = 1
	}
	return Value{kind: K_BOOL, num: num}
}

func String(v string) Value {
	return Value{kind: K_STRING, text: v}
}

// Bytes copies v, so later mutation of the argument cannot reach into a
// constructed message.
func Bytes(v []byte) Value {
	raw := make([]byte, len(v))
	copy(raw, v)
	return Value{kind: K_BYTES, raw: raw}
}

// Enum builds an enum value from its number. The number is not required to
// resolve to a name in the field's enum descriptor at construction time;
// serialization of an unresolvable number fails.
func Enum(number int32) Value {
	return Value{kind: K_ENUM, num: uint64(int64(number))}
}

func Nested(msg *Message) Value {
	return Value{kind: K_MESSAGE, msg: msg}
}

func (v Value) Kind() Kind {
	return v.kind
}

// Int64 returns the numeric payload of the signed integer kinds (int32,
// int64, sint32, sint64, sfixed32, sfixed64).
func (v Value) Int64() int64 {
	return int64(v.num)
}

// Uint64 returns the numeric payload of the unsigned integer kinds (uint32,
// uint64, fixed32, fixed64).
func (v Value) Uint64() uint64 {
	return v.num
}

func (v Value) Float64() float64 {
	return math.Float64frombits(v.num)
}

func (v Value) Bool() bool {
	return v.num != 0
}

func (v Value) Text() string {
	return v.text
}

// Bytes returns a copy of the payload; the value itself stays immutable.
func (v Value) Bytes() []byte {
	raw := make([]byte, len(v.raw))
	copy(raw, v.raw)
	return raw
}

func (v Value) EnumNumber() int32 {
	return int32(int64(v.num))
}

// Message returns the nested message payload, or nil for non-message kinds.
func (v Value) Message() *Message {
	return v.msg
}

// Equal reports structural equality, recursing through nested messages.
func (v Value) Equal(other Value) bool {
	if v.kind != other.kind {
		return false
	}
	switch v.kind {
	case K_STRING:
		return v.text == other.text
	case K_BYTES:
		return bytes.Equal(v.raw, other.raw)
	case K_MESSAGE:
		return v.msg.Equal(other.msg)
	default:
		return v.num == other.num
	}
}
