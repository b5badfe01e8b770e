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
	"os"

	"github.com/spf13/pflag"

	"go.minipb.org/minipb/compiler"
	"go.minipb.org/minipb/encoding/minitext"
)

// minipb fmt: decode a text-format message against a compiled schema and
// re-emit it in canonical form. Canonical form uses declaration field
// order, two-space indentation, and one field per line.
type cmdFmt struct {
	flagSchema    string
	flagMessage   string
	flagOutput    string
	flagCheckOnly bool
}

func (*cmdFmt) help() *commandHelp {
	return &commandHelp{
		usage:   "fmt [options] MESSAGE_FILE",
		summary: "Rewrite a text-format message in canonical form",
	}
}

func (cmd *cmdFmt) flags(flags *pflag.FlagSet) {
	flags.StringVarP(&cmd.flagSchema, "schema", "s", "", "schema file")
	flags.StringVarP(
		&cmd.flagMessage, "message", "m", "", "message type name",
	)
	flags.StringVarP(&cmd.flagOutput, "output", "o", "", "output path")
	flags.BoolVarP(
		&cmd.flagCheckOnly, "check", "n", false,
		"exit non-zero if the input is not canonical, without rewriting",
	)
}

func (cmd *cmdFmt) run(ctx context.Context, env *cmdEnv, argv []string) int {
	schemaPath := cmd.flagSchema
	if schemaPath == "" {
		schemaPath = env.config.Schema
	}
	messageName := cmd.flagMessage
	if messageName == "" {
		messageName = env.config.Message
	}
	if schemaPath == "" || messageName == "" {
		env.log.Error().Msg("fmt: --schema and --message are required")
		return 1
	}
	if len(argv) != 1 {
		env.log.Error().Msg("fmt: expected exactly one message file")
		return 1
	}

	schemaSrc, err := os.ReadFile(schemaPath)
	if err != nil {
		env.log.Error().Err(err).Msg("fmt")
		return 1
	}
	reg := compiler.NewRegistry()
	if _, err := compiler.ParseSchema(schemaSrc, reg); err != nil {
		env.log.Error().Err(err).Str("path", schemaPath).Msg("fmt")
		return 1
	}
	desc := reg.Message(messageName)
	if desc == nil {
		env.log.Error().
			Str("message", messageName).
			Str("path", schemaPath).
			Msg("fmt: message type not found in schema")
		return 1
	}

	src, err := os.ReadFile(argv[0])
	if err != nil {
		env.log.Error().Err(err).Msg("fmt")
		return 1
	}
	msg, err := minitext.Unmarshal(src, desc)
	if err != nil {
		env.log.Error().Err(err).Str("path", argv[0]).Msg("fmt")
		return 1
	}
	canonical, err := minitext.Marshal(msg)
	if err != nil {
		env.log.Error().Err(err).Msg("fmt")
		return 1
	}

	if cmd.flagCheckOnly {
		if string(src) != canonical {
			env.log.Warn().Str("path", argv[0]).Msg("not canonical")
			return 1
		}
		return 0
	}
	if err := writeOutput(cmd.flagOutput, canonical); err != nil {
		env.log.Error().Err(err).Msg("fmt")
		return 1
	}
	return 0
}
