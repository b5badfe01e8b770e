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
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/pflag"

	"go.minipb.org/minipb"
	"go.minipb.org/minipb/compiler"
)

// minipb compile: check schema files and print their descriptors back in
// canonical form. Files are compiled in argument order against a shared
// registry, so cross-file type references resolve left to right.
type cmdCompile struct {
	flagOutput string
}

func (*cmdCompile) help() *commandHelp {
	return &commandHelp{
		usage:   "compile [options] SCHEMA_FILES",
		summary: "Compile schema files and print canonical descriptors",
	}
}

func (cmd *cmdCompile) flags(flags *pflag.FlagSet) {
	flags.StringVarP(&cmd.flagOutput, "output", "o", "", "output path")
}

func (cmd *cmdCompile) run(
	ctx context.Context,
	env *cmdEnv,
	argv []string,
) int {
	if len(argv) == 0 {
		env.log.Error().Msg("compile: no schema files given")
		return 1
	}

	reg := compiler.NewRegistry()
	var out strings.Builder
	for _, path := range argv {
		src, err := os.ReadFile(path)
		if err != nil {
			env.log.Error().Err(err).Msg("compile")
			return 1
		}
		schema, err := compiler.ParseSchema(src, reg)
		if err != nil {
			env.log.Error().Err(err).Str("path", path).Msg("compile")
			return 1
		}
		env.log.Debug().
			Str("path", path).
			Int("messages", len(schema.Messages)).
			Int("enums", len(schema.Enums)).
			Msg("compiled schema file")

		for _, enum := range schema.Enums {
			renderEnum(&out, enum)
		}
		for _, message := range schema.Messages {
			renderMessage(&out, message)
		}
	}

	if err := writeOutput(cmd.flagOutput, out.String()); err != nil {
		env.log.Error().Err(err).Msg("compile")
		return 1
	}
	return 0
}

func renderEnum(out *strings.Builder, enum *minipb.EnumDescriptor) {
	fmt.Fprintf(out, "enum %s {\n", enum.Name())
	for ii := 0; ii < enum.NumValues(); ii++ {
		value := enum.Value(ii)
		fmt.Fprintf(out, "  %s = %d;\n", value.Name(), value.Number())
	}
	out.WriteString("}\n")
}

func renderMessage(out *strings.Builder, message *minipb.MessageDescriptor) {
	fmt.Fprintf(out, "message %s {\n", message.Name())
	for ii := 0; ii < message.NumFields(); ii++ {
		field := message.Field(ii)
		fmt.Fprintf(
			out, "  %s %s %s = %d;\n",
			field.Label(), fieldTypeName(field), field.Name(), field.Number(),
		)
	}
	out.WriteString("}\n")
}

func fieldTypeName(field *minipb.FieldDescriptor) string {
	switch field.Kind() {
	case minipb.K_ENUM:
		return field.Enum().Name()
	case minipb.K_MESSAGE:
		return field.MessageType().Name()
	}
	return field.Kind().String()
}
