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

// Package syntax tokenizes the textual grammars shared by the schema
// language and the message text format: one scanner, one escape syntax,
// byte-offset spans for error reporting.
package syntax

import (
	"fmt"
	"strconv"
	"strings"
)

type Span struct {
	start uint32
	len   uint32
}

func NewSpan(start, len uint32) Span {
	return Span{
		start: start,
		len:   len,
	}
}

func (s Span) Start() uint32 {
	return s.start
}

func (s Span) Len() uint32 {
	return s.len
}

func (s Span) String() string {
	return fmt.Sprintf("[%d+%d]", s.start, s.len)
}

// Unquote decodes a raw text literal token, including the surrounding
// double quotes. Recognized escapes are \" \\ \n \r \t and \xHH. The start
// offset is used for error spans only.
func Unquote(token string, start uint32) (string, error) {
	value := token[1 : len(token)-1]
	if !strings.ContainsRune(value, '\\') {
		return value, nil
	}

	var buf strings.Builder
	buf.Grow(len(value))
	for len(value) > 0 {
		c := value[0]
		if c != '\\' {
			buf.WriteByte(c)
			value = value[1:]
			continue
		}
		if len(value) < 2 {
			return "", errTextLitInvalid(start, token)
		}
		switch value[1] {
		case '"', '\\':
			buf.WriteByte(value[1])
			value = value[2:]
		case 'n':
			buf.WriteByte('\n')
			value = value[2:]
		case 'r':
			buf.WriteByte('\r')
			value = value[2:]
		case 't':
			buf.WriteByte('\t')
			value = value[2:]
		case 'x':
			if len(value) < 4 {
				return "", errTextLitInvalid(start, token)
			}
			b, err := strconv.ParseUint(value[2:4], 16, 8)
			if err != nil {
				return "", errTextLitInvalid(start, token)
			}
			buf.WriteByte(uint8(b))
			value = value[4:]
		default:
			return "", errTextLitInvalid(start, token)
		}
	}
	return buf.String(), nil
}

// Quote encodes s as a double-quoted text literal, escaping quotes,
// backslashes, and all non-printable-ASCII bytes. Output is pure ASCII and
// Unquote(Quote(s)) returns s for any byte string, so bytes values survive
// quoting even when not UTF-8.
func Quote(s string) string {
	var buf strings.Builder
	buf.Grow(len(s) + 2)
	buf.WriteByte('"')
	for ii := 0; ii < len(s); ii++ {
		c := s[ii]
		switch c {
		case '"':
			buf.WriteString(`\"`)
		case '\\':
			buf.WriteString(`\\`)
		case '\n':
			buf.WriteString(`\n`)
		case '\r':
			buf.WriteString(`\r`)
		case '\t':
			buf.WriteString(`\t`)
		default:
			if c < 0x20 || c >= 0x7F {
				fmt.Fprintf(&buf, `\x%02X`, c)
			} else {
				buf.WriteByte(c)
			}
		}
	}
	buf.WriteByte('"')
	return buf.String()
}
