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

package syntax

// Cursor walks a token stream one significant token at a time, skipping
// spaces, newlines, and comments. Both grammars built on this scanner are
// whitespace-insensitive beyond token separation, so neither needs the
// trivia tokens.
type Cursor struct {
	src    []byte
	tokens *Tokens
	offset uint32
	kind   TokenKind
	text   string
}

func NewCursor(src []byte) (*Cursor, error) {
	tokens, err := NewTokens(src)
	if err != nil {
		return nil, err
	}
	c := &Cursor{
		src:    src,
		tokens: tokens,
	}
	if err := c.Next(); err != nil {
		return nil, err
	}
	return c, nil
}

// Next advances to the next significant token. After EOF is reached, Next
// keeps returning EOF.
func (c *Cursor) Next() error {
	var token Token
	for {
		start := c.tokens.offset
		if err := c.tokens.Next(&token); err != nil {
			return err
		}
		switch token.Kind {
		case T_SPACE, T_NEWLINE, T_COMMENT:
			continue
		default:
			c.offset = start
			c.kind = token.Kind
			c.text = string(c.src[start : start+uint32(token.Len)])
			return nil
		}
	}
}

func (c *Cursor) Kind() TokenKind {
	return c.kind
}

// Text returns the raw token text, escapes undecoded.
func (c *Cursor) Text() string {
	return c.text
}

func (c *Cursor) Span() Span {
	return Span{
		start: c.offset,
		len:   uint32(len(c.text)),
	}
}
