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

package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.minipb.org/minipb/compiler"
)

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "minipb.toml")
	content := `
schema = "addressbook.mpb"
message = "Person"
log_level = "debug"
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o666))

	config, err := loadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "addressbook.mpb", config.Schema)
	assert.Equal(t, "Person", config.Message)
	assert.Equal(t, "debug", config.LogLevel)
}

func TestLoadConfigExplicitMissing(t *testing.T) {
	_, err := loadConfig(filepath.Join(t.TempDir(), "nope.toml"))
	assert.Error(t, err)
}

func TestRenderSchema(t *testing.T) {
	src := []byte(`
enum PhoneType { MOBILE = 0; HOME = 1; WORK = 5; }
message PhoneNumber {
  required string number = 1;
  optional PhoneType type = 2;
}
`)
	reg := compiler.NewRegistry()
	schema, err := compiler.ParseSchema(src, reg)
	require.NoError(t, err)

	var out strings.Builder
	for _, enum := range schema.Enums {
		renderEnum(&out, enum)
	}
	for _, message := range schema.Messages {
		renderMessage(&out, message)
	}
	assert.Equal(t, `enum PhoneType {
  MOBILE = 0;
  HOME = 1;
  WORK = 5;
}
message PhoneNumber {
  required string number = 1;
  optional PhoneType type = 2;
}
`, out.String())
}

func TestWriteOutput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.txt")
	require.NoError(t, writeOutput(path, "hello\n"))
	got, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "hello\n", string(got))
}
