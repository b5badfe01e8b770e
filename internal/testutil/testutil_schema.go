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

// Package testutil holds the shared address-book descriptor fixture used
// across the test suites.
package testutil

import (
	"testing"

	"go.minipb.org/minipb"
)

// AddressBook is the classic address-book schema, built by hand so tests
// of the value model and codec do not depend on the schema compiler.
//
//	enum PhoneType { MOBILE = 0; HOME = 1; WORK = 5; }
//	message PhoneNumber {
//	  required string number = 1;
//	  optional PhoneType type = 2;
//	}
//	message Person {
//	  required string name = 1;
//	  required int32 id = 2;
//	  optional string email = 3;
//	  repeated PhoneNumber phone = 4;
//	}
type AddressBook struct {
	PhoneType   *minipb.EnumDescriptor
	PhoneNumber *minipb.MessageDescriptor
	Person      *minipb.MessageDescriptor
}

func NewAddressBook(t *testing.T) *AddressBook {
	t.Helper()

	phoneType, err := minipb.NewEnumDescriptor("PhoneType", []minipb.EnumValueDescriptor{
		minipb.NewEnumValue("MOBILE", 0),
		minipb.NewEnumValue("HOME", 1),
		minipb.NewEnumValue("WORK", 5),
	})
	if err != nil {
		t.Fatal(err)
	}

	number, err := minipb.NewField(
		minipb.L_REQUIRED, minipb.K_STRING, "number", 1,
	)
	if err != nil {
		t.Fatal(err)
	}
	typeField, err := minipb.NewEnumField(
		minipb.L_OPTIONAL, "type", 2, phoneType,
	)
	if err != nil {
		t.Fatal(err)
	}
	phoneNumber, err := minipb.NewMessageDescriptor(
		"PhoneNumber",
		[]minipb.FieldDescriptor{number, typeField},
	)
	if err != nil {
		t.Fatal(err)
	}

	name, err := minipb.NewField(
		minipb.L_REQUIRED, minipb.K_STRING, "name", 1,
	)
	if err != nil {
		t.Fatal(err)
	}
	id, err := minipb.NewField(
		minipb.L_REQUIRED, minipb.K_INT32, "id", 2,
	)
	if err != nil {
		t.Fatal(err)
	}
	email, err := minipb.NewField(
		minipb.L_OPTIONAL, minipb.K_STRING, "email", 3,
	)
	if err != nil {
		t.Fatal(err)
	}
	phone, err := minipb.NewMessageField(
		minipb.L_REPEATED, "phone", 4, phoneNumber,
	)
	if err != nil {
		t.Fatal(err)
	}
	person, err := minipb.NewMessageDescriptor(
		"Person",
		[]minipb.FieldDescriptor{name, id, email, phone},
	)
	if err != nil {
		t.Fatal(err)
	}

	return &AddressBook{
		PhoneType:   phoneType,
		PhoneNumber: phoneNumber,
		Person:      person,
	}
}

// MustMessage builds a message value, failing the test on any construction
// error.
func MustMessage(
	t *testing.T,
	desc *minipb.MessageDescriptor,
	fieldValues ...minipb.FieldValue,
) *minipb.Message {
	t.Helper()
	msg, err := minipb.NewMessage(desc, fieldValues...)
	if err != nil {
		t.Fatal(err)
	}
	return msg
}
