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

package minitext_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.minipb.org/minipb"
	"go.minipb.org/minipb/encoding/minitext"
	"go.minipb.org/minipb/internal/testutil"
)

const personText = `name: "John Doe"
id: 1234
email: "jdoe@example.com"
phone: {
  number: "123-456-7890"
  type: HOME
}
phone: {
  number: "987-654-3210"
}
`

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

func TestMarshalPerson(t *testing.T) {
	book := testutil.NewAddressBook(t)
	got, err := minitext.Marshal(newPerson(t, book))
	require.NoError(t, err)
	testutil.ExpectNoDiff(t, personText, got)
}

func TestRoundTrip(t *testing.T) {
	book := testutil.NewAddressBook(t)
	person := newPerson(t, book)

	text, err := minitext.Marshal(person)
	require.NoError(t, err)
	decoded, err := minitext.Unmarshal([]byte(text), book.Person)
	require.NoError(t, err)
	assert.True(t, person.Equal(decoded))

	// Canonical output is a fixed point.
	again, err := minitext.Marshal(decoded)
	require.NoError(t, err)
	assert.Equal(t, text, again)
}

func TestUnmarshalPerson(t *testing.T) {
	book := testutil.NewAddressBook(t)
	got, err := minitext.Unmarshal([]byte(personText), book.Person)
	require.NoError(t, err)
	assert.True(t, newPerson(t, book).Equal(got))
}

func TestUnmarshalSingleLine(t *testing.T) {
	book := testutil.NewAddressBook(t)
	src := []byte(`name: "Kester Tong" id: 1234`)
	got, err := minitext.Unmarshal(src, book.Person)
	require.NoError(t, err)

	name, err := got.Field(0)
	require.NoError(t, err)
	assert.Equal(t, "Kester Tong", name.At(0).Text())

	email, err := got.Field(2)
	require.NoError(t, err)
	assert.True(t, email.IsAbsent())

	phone, err := got.Field(3)
	require.NoError(t, err)
	assert.Equal(t, 0, phone.Len())
}

func TestUnmarshalAnyOrder(t *testing.T) {
	book := testutil.NewAddressBook(t)
	src := []byte(`
id: 1234
email: "jdoe@example.com"
name: "John Doe"
`)
	got, err := minitext.Unmarshal(src, book.Person)
	require.NoError(t, err)

	// Entry order does not matter; output is descriptor order.
	text, err := minitext.Marshal(got)
	require.NoError(t, err)
	testutil.ExpectNoDiff(t,
		"name: \"John Doe\"\nid: 1234\nemail: \"jdoe@example.com\"\n",
		text,
	)
}

func TestUnmarshalInterleavedRepeated(t *testing.T) {
	book := testutil.NewAddressBook(t)
	src := []byte(`
name: "John Doe"
phone: { number: "111" }
id: 1234
phone: { number: "222" }
`)
	got, err := minitext.Unmarshal(src, book.Person)
	require.NoError(t, err)

	phone, err := got.Field(3)
	require.NoError(t, err)
	require.Equal(t, 2, phone.Len())
	first, err := phone.At(0).Message().Field(0)
	require.NoError(t, err)
	second, err := phone.At(1).Message().Field(0)
	require.NoError(t, err)
	assert.Equal(t, "111", first.At(0).Text())
	assert.Equal(t, "222", second.At(0).Text())
}

func TestRepeatedOrderPreserved(t *testing.T) {
	book := testutil.NewAddressBook(t)
	forward := `name: "x" id: 1 phone: { number: "111" } phone: { number: "222" }`
	reverse := `name: "x" id: 1 phone: { number: "222" } phone: { number: "111" }`

	fwd, err := minitext.Unmarshal([]byte(forward), book.Person)
	require.NoError(t, err)
	rev, err := minitext.Unmarshal([]byte(reverse), book.Person)
	require.NoError(t, err)
	assert.False(t, fwd.Equal(rev))
}

func TestUnmarshalEnumByName(t *testing.T) {
	book := testutil.NewAddressBook(t)
	src := []byte(`number: "555" type: WORK`)
	got, err := minitext.Unmarshal(src, book.PhoneNumber)
	require.NoError(t, err)

	typeValue, err := got.Field(1)
	require.NoError(t, err)
	require.Equal(t, 1, typeValue.Len())
	assert.Equal(t, int32(5), typeValue.At(0).EnumNumber())
}

func TestUnmarshalUnknownEnumValue(t *testing.T) {
	book := testutil.NewAddressBook(t)
	src := []byte(`number: "555" type: FAX`)
	_, err := minitext.Unmarshal(src, book.PhoneNumber)
	assert.ErrorIs(t, err, minitext.ErrUnknownEnumValue)
}

func TestMarshalUnknownEnumNumber(t *testing.T) {
	book := testutil.NewAddressBook(t)
	// Enum(3) has no name in PhoneType.
	msg := testutil.MustMessage(t, book.PhoneNumber,
		minipb.One(minipb.String("555")),
		minipb.One(minipb.Enum(3)),
	)
	_, err := minitext.Marshal(msg)
	assert.ErrorIs(t, err, minitext.ErrUnknownEnumNumber)
}

func TestUnmarshalUnknownField(t *testing.T) {
	book := testutil.NewAddressBook(t)
	src := []byte(`name: "x" id: 1 age: 30`)
	_, err := minitext.Unmarshal(src, book.Person)
	assert.ErrorIs(t, err, minitext.ErrUnknownField)
}

func TestUnmarshalMissingRequired(t *testing.T) {
	book := testutil.NewAddressBook(t)
	_, err := minitext.Unmarshal([]byte(`name: "x"`), book.Person)
	assert.ErrorIs(t, err, minitext.ErrMissingRequiredField)

	// Nested messages enforce their own required fields.
	src := []byte(`name: "x" id: 1 phone: { type: HOME }`)
	_, err = minitext.Unmarshal(src, book.Person)
	assert.ErrorIs(t, err, minitext.ErrMissingRequiredField)
}

func TestUnmarshalDuplicateField(t *testing.T) {
	book := testutil.NewAddressBook(t)

	src := []byte(`name: "x" name: "y" id: 1`)
	_, err := minitext.Unmarshal(src, book.Person)
	assert.ErrorIs(t, err, minitext.ErrDuplicateField)

	src = []byte(`name: "x" id: 1 email: "a" email: "b"`)
	_, err = minitext.Unmarshal(src, book.Person)
	assert.ErrorIs(t, err, minitext.ErrDuplicateField)
}

func TestUnmarshalBraceErrors(t *testing.T) {
	book := testutil.NewAddressBook(t)

	src := []byte(`name: "x" id: 1 }`)
	_, err := minitext.Unmarshal(src, book.Person)
	require.Error(t, err)

	src = []byte(`name: "x" id: 1 phone: { number: "111"`)
	_, err = minitext.Unmarshal(src, book.Person)
	require.Error(t, err)

	src = []byte(`name: "x" id: 1 phone: 4`)
	_, err = minitext.Unmarshal(src, book.Person)
	require.Error(t, err)
}

func TestUnmarshalBadLiterals(t *testing.T) {
	book := testutil.NewAddressBook(t)
	tests := []string{
		`name: "x" id: "1"`,
		`name: "x" id: 1.5`,
		`name: 42 id: 1`,
		`name: "x" id: 99999999999`,
	}
	for _, src := range tests {
		_, err := minitext.Unmarshal([]byte(src), book.Person)
		assert.ErrorIs(t, err, minitext.ErrBadLiteral, "source %q", src)
	}
}

func TestStringEscapes(t *testing.T) {
	book := testutil.NewAddressBook(t)
	tricky := "line\none \"quoted\" \\ tab\t\x01"
	msg := testutil.MustMessage(t, book.Person,
		minipb.One(minipb.String(tricky)),
		minipb.One(minipb.Int32(1)),
		minipb.None(),
		minipb.Repeated(),
	)

	text, err := minitext.Marshal(msg)
	require.NoError(t, err)
	testutil.ExpectNoDiff(t,
		"name: \"line\\none \\\"quoted\\\" \\\\ tab\\t\\x01\"\nid: 1\n",
		text,
	)

	decoded, err := minitext.Unmarshal([]byte(text), book.Person)
	require.NoError(t, err)
	name, err := decoded.Field(0)
	require.NoError(t, err)
	assert.Equal(t, tricky, name.At(0).Text())
}

func newScalarsDescriptor(t *testing.T) *minipb.MessageDescriptor {
	t.Helper()
	kinds := []struct {
		kind minipb.Kind
		name string
	}{
		{minipb.K_DOUBLE, "d"},
		{minipb.K_FLOAT, "f"},
		{minipb.K_INT64, "i64"},
		{minipb.K_UINT32, "u32"},
		{minipb.K_UINT64, "u64"},
		{minipb.K_SINT32, "s32"},
		{minipb.K_SINT64, "s64"},
		{minipb.K_FIXED32, "f32"},
		{minipb.K_FIXED64, "f64"},
		{minipb.K_SFIXED32, "sf32"},
		{minipb.K_SFIXED64, "sf64"},
		{minipb.K_BOOL, "b"},
		{minipb.K_BYTES, "raw"},
	}
	fields := make([]minipb.FieldDescriptor, len(kinds))
	for ii, k := range kinds {
		field, err := minipb.NewField(
			minipb.L_REQUIRED, k.kind, k.name, int32(ii+1),
		)
		require.NoError(t, err)
		fields[ii] = field
	}
	desc, err := minipb.NewMessageDescriptor("Scalars", fields)
	require.NoError(t, err)
	return desc
}

func TestScalarRoundTrip(t *testing.T) {
	desc := newScalarsDescriptor(t)
	msg := testutil.MustMessage(t, desc,
		minipb.One(minipb.Double(-1.5)),
		minipb.One(minipb.Float(0.25)),
		minipb.One(minipb.Int64(-9007199254740993)),
		minipb.One(minipb.Uint32(4294967295)),
		minipb.One(minipb.Uint64(18446744073709551615)),
		minipb.One(minipb.Sint32(-42)),
		minipb.One(minipb.Sint64(42)),
		minipb.One(minipb.Fixed32(7)),
		minipb.One(minipb.Fixed64(8)),
		minipb.One(minipb.Sfixed32(-7)),
		minipb.One(minipb.Sfixed64(-8)),
		minipb.One(minipb.Bool(true)),
		minipb.One(minipb.Bytes([]byte{0x00, 0xFF, 'a'})),
	)

	text, err := minitext.Marshal(msg)
	require.NoError(t, err)
	testutil.ExpectNoDiff(t, `d: -1.5
f: 0.25
i64: -9007199254740993
u32: 4294967295
u64: 18446744073709551615
s32: -42
s64: 42
f32: 7
f64: 8
sf32: -7
sf64: -8
b: true
raw: "\x00\xFFa"
`, text)

	decoded, err := minitext.Unmarshal([]byte(text), desc)
	require.NoError(t, err)
	assert.True(t, msg.Equal(decoded))
}

func TestMarshalNonFiniteFloat(t *testing.T) {
	dField, err := minipb.NewField(minipb.L_REQUIRED, minipb.K_DOUBLE, "d", 1)
	require.NoError(t, err)
	fField, err := minipb.NewField(minipb.L_OPTIONAL, minipb.K_FLOAT, "f", 2)
	require.NoError(t, err)
	desc, err := minipb.NewMessageDescriptor(
		"Readings",
		[]minipb.FieldDescriptor{dField, fField},
	)
	require.NoError(t, err)

	for _, value := range []float64{math.Inf(1), math.Inf(-1), math.NaN()} {
		msg := testutil.MustMessage(t, desc,
			minipb.One(minipb.Double(value)),
			minipb.None(),
		)
		_, err := minitext.Marshal(msg)
		assert.ErrorIs(t, err, minitext.ErrNonFiniteFloat, "double %v", value)

		msg = testutil.MustMessage(t, desc,
			minipb.One(minipb.Double(0)),
			minipb.One(minipb.Float(float32(value))),
		)
		_, err = minitext.Marshal(msg)
		assert.ErrorIs(t, err, minitext.ErrNonFiniteFloat, "float %v", value)
	}

	// Finite values still encode.
	msg := testutil.MustMessage(t, desc,
		minipb.One(minipb.Double(1.5)),
		minipb.None(),
	)
	text, err := minitext.Marshal(msg)
	require.NoError(t, err)
	assert.Equal(t, "d: 1.5\n", text)
}

func TestUnmarshalFloatFromIntLiteral(t *testing.T) {
	desc := newScalarsDescriptor(t)
	src := []byte(`d: 3 f: 2 i64: 0 u32: 0 u64: 0 s32: 0 s64: 0 ` +
		`f32: 0 f64: 0 sf32: 0 sf64: 0 b: false raw: ""`)
	got, err := minitext.Unmarshal(src, desc)
	require.NoError(t, err)

	d, err := got.Field(0)
	require.NoError(t, err)
	assert.Equal(t, 3.0, d.At(0).Float64())
}

func TestUnmarshalEmptyMessage(t *testing.T) {
	desc, err := minipb.NewMessageDescriptor("Empty", nil)
	require.NoError(t, err)

	got, err := minitext.Unmarshal(nil, desc)
	require.NoError(t, err)

	text, err := minitext.Marshal(got)
	require.NoError(t, err)
	assert.Equal(t, "", text)
}
