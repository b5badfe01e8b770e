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

package minipb_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.minipb.org/minipb"
	"go.minipb.org/minipb/internal/testutil"
)

func newPerson(t *testing.T, book *testutil.AddressBook) *minipb.Message {
	t.Helper()
	home := testutil.MustMessage(t, book.PhoneNumber,
		minipb.One(minipb.String("123-456-7890")),
		minipb.One(minipb.Enum(1)),
	)
	other := testutil.MustMessage(t, book.PhoneNumber,
		minipb.One(minipb.String("987-654-3210")),
		minipb.None(),
	)
	return testutil.MustMessage(t, book.Person,
		minipb.One(minipb.String("John Doe")),
		minipb.One(minipb.Int32(1234)),
		minipb.One(minipb.String("jdoe@example.com")),
		minipb.Repeated(minipb.Nested(home), minipb.Nested(other)),
	)
}

func TestNewMessage(t *testing.T) {
	book := testutil.NewAddressBook(t)
	person := newPerson(t, book)

	assert.Same(t, book.Person, person.Descriptor())

	name, err := person.Field(0)
	require.NoError(t, err)
	require.Equal(t, 1, name.Len())
	assert.Equal(t, "John Doe", name.At(0).Text())

	id, err := person.Field(1)
	require.NoError(t, err)
	assert.Equal(t, int64(1234), id.At(0).Int64())

	phone, err := person.Field(3)
	require.NoError(t, err)
	require.Equal(t, 2, phone.Len())
	number, err := phone.At(1).Message().Field(0)
	require.NoError(t, err)
	assert.Equal(t, "987-654-3210", number.At(0).Text())
}

func TestNewMessageNilDescriptor(t *testing.T) {
	_, err := minipb.NewMessage(nil)
	assert.ErrorIs(t, err, minipb.ErrNilDescriptor)
}

func TestNewMessageArityMismatch(t *testing.T) {
	book := testutil.NewAddressBook(t)
	_, err := minipb.NewMessage(book.Person,
		minipb.One(minipb.String("John Doe")),
	)
	assert.ErrorIs(t, err, minipb.ErrArityMismatch)
}

func TestNewMessageCardinality(t *testing.T) {
	book := testutil.NewAddressBook(t)

	// Required field absent.
	_, err := minipb.NewMessage(book.PhoneNumber,
		minipb.None(),
		minipb.None(),
	)
	assert.ErrorIs(t, err, minipb.ErrFieldTypeMismatch)

	// Required field with two occurrences.
	_, err = minipb.NewMessage(book.PhoneNumber,
		minipb.Repeated(minipb.String("a"), minipb.String("b")),
		minipb.None(),
	)
	assert.ErrorIs(t, err, minipb.ErrFieldTypeMismatch)

	// Optional field with two occurrences.
	_, err = minipb.NewMessage(book.PhoneNumber,
		minipb.One(minipb.String("a")),
		minipb.Repeated(minipb.Enum(0), minipb.Enum(1)),
	)
	assert.ErrorIs(t, err, minipb.ErrFieldTypeMismatch)
}

func TestNewMessageKindMismatch(t *testing.T) {
	book := testutil.NewAddressBook(t)

	_, err := minipb.NewMessage(book.PhoneNumber,
		minipb.One(minipb.Int32(7)),
		minipb.None(),
	)
	assert.ErrorIs(t, err, minipb.ErrFieldTypeMismatch)
}

func TestNewMessageNestedDescriptorMismatch(t *testing.T) {
	book := testutil.NewAddressBook(t)

	// A Person value is not a valid PhoneNumber occurrence, even though
	// both are message values.
	person := newPerson(t, book)
	_, err := minipb.NewMessage(book.Person,
		minipb.One(minipb.String("John Doe")),
		minipb.One(minipb.Int32(1234)),
		minipb.None(),
		minipb.Repeated(minipb.Nested(person)),
	)
	assert.ErrorIs(t, err, minipb.ErrFieldTypeMismatch)
}

func TestMessageFieldIndexOutOfRange(t *testing.T) {
	book := testutil.NewAddressBook(t)
	person := newPerson(t, book)

	_, err := person.Field(-1)
	assert.ErrorIs(t, err, minipb.ErrIndexOutOfRange)
	_, err = person.Field(4)
	assert.ErrorIs(t, err, minipb.ErrIndexOutOfRange)
}

func TestFieldValueAccessors(t *testing.T) {
	assert.True(t, minipb.None().IsAbsent())
	assert.Equal(t, 0, minipb.Repeated().Len())

	one := minipb.One(minipb.Bool(true))
	assert.False(t, one.IsAbsent())
	require.Equal(t, 1, one.Len())
	assert.True(t, one.At(0).Bool())
}

func TestValueEqual(t *testing.T) {
	assert.True(t, minipb.String("a").Equal(minipb.String("a")))
	assert.False(t, minipb.String("a").Equal(minipb.String("b")))
	assert.False(t, minipb.String("1").Equal(minipb.Int32(1)))

	assert.True(t, minipb.Bytes([]byte{1, 2}).Equal(minipb.Bytes([]byte{1, 2})))
	assert.False(t, minipb.Bytes([]byte{1, 2}).Equal(minipb.Bytes([]byte{1})))

	assert.True(t, minipb.Double(1.5).Equal(minipb.Double(1.5)))
	assert.False(t, minipb.Double(1.5).Equal(minipb.Double(2.5)))

	assert.True(t, minipb.Enum(5).Equal(minipb.Enum(5)))
	assert.False(t, minipb.Enum(5).Equal(minipb.Enum(0)))
}

func TestBytesValueIsImmutable(t *testing.T) {
	buf := []byte{1, 2, 3}
	value := minipb.Bytes(buf)

	// Mutating the constructor argument must not reach the value.
	buf[0] = 9
	assert.Equal(t, []byte{1, 2, 3}, value.Bytes())

	// Mutating the getter result must not either.
	got := value.Bytes()
	got[1] = 9
	assert.Equal(t, []byte{1, 2, 3}, value.Bytes())
}

func TestValuePayloads(t *testing.T) {
	assert.Equal(t, int64(-42), minipb.Int32(-42).Int64())
	assert.Equal(t, int64(-42), minipb.Sint64(-42).Int64())
	assert.Equal(t, uint64(42), minipb.Fixed64(42).Uint64())
	assert.Equal(t, float64(1.5), minipb.Double(1.5).Float64())
	assert.Equal(t, int32(-3), minipb.Enum(-3).EnumNumber())
	assert.Nil(t, minipb.Bool(true).Message())
}

func TestMessageEqual(t *testing.T) {
	book := testutil.NewAddressBook(t)

	left := newPerson(t, book)
	right := newPerson(t, book)
	assert.True(t, left.Equal(right))

	// Same fields, reversed repeated order.
	home := testutil.MustMessage(t, book.PhoneNumber,
		minipb.One(minipb.String("123-456-7890")),
		minipb.One(minipb.Enum(1)),
	)
	other := testutil.MustMessage(t, book.PhoneNumber,
		minipb.One(minipb.String("987-654-3210")),
		minipb.None(),
	)
	reversed := testutil.MustMessage(t, book.Person,
		minipb.One(minipb.String("John Doe")),
		minipb.One(minipb.Int32(1234)),
		minipb.One(minipb.String("jdoe@example.com")),
		minipb.Repeated(minipb.Nested(other), minipb.Nested(home)),
	)
	assert.False(t, left.Equal(reversed))

	assert.False(t, left.Equal(nil))
	var nilLeft *minipb.Message
	assert.True(t, nilLeft.Equal(nil))
}
