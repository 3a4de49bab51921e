package main

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/allisson/idgen/cmd/app/commands"
	"github.com/allisson/idgen/internal/app"
	"github.com/allisson/idgen/internal/config"
	"github.com/allisson/idgen/internal/identifier/http/dto"
)

func getCommands(version string) []*cli.Command {
	cmds := []*cli.Command{
		{
			Name:  "server",
			Usage: "Start the HTTP API and metrics servers",
			Action: func(ctx context.Context, cmd *cli.Command) error {
				return commands.RunServer(ctx, version)
			},
		},
	}
	cmds = append(cmds, getIdentifierCommands()...)
	return cmds
}

// newContainer loads and validates the configuration before wiring the container.
func newContainer() (*app.Container, error) {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return app.NewContainer(cfg), nil
}

func charsetFlags() []cli.Flag {
	return []cli.Flag{
		&cli.BoolFlag{Name: "uppercase", Aliases: []string{"U"}, Usage: "Include uppercase letters A-Z"},
		&cli.BoolFlag{Name: "lowercase", Aliases: []string{"L"}, Usage: "Include lowercase letters a-z"},
		&cli.BoolFlag{Name: "numbers", Aliases: []string{"N"}, Usage: "Include digits 0-9"},
		&cli.BoolFlag{Name: "symbols", Aliases: []string{"S"}, Usage: "Include symbols"},
	}
}

func charsetFromFlags(cmd *cli.Command) dto.CharsetRequest {
	return dto.CharsetRequest{
		Uppercase: cmd.Bool("uppercase"),
		Lowercase: cmd.Bool("lowercase"),
		Numbers:   cmd.Bool("numbers"),
		Symbols:   cmd.Bool("symbols"),
	}
}

func formatFlag(usage string) cli.Flag {
	return &cli.StringFlag{
		Name:    "format",
		Aliases: []string{"f"},
		Value:   "text",
		Usage:   usage,
	}
}

// optionalInt returns nil when the flag was not set so request defaults apply.
func optionalInt(cmd *cli.Command, name string) *int {
	if !cmd.IsSet(name) {
		return nil
	}
	v := cmd.Int(name)
	return &v
}

func getIdentifierCommands() []*cli.Command {
	return []*cli.Command{
		{
			Name:  "generate",
			Usage: "Generate a batch of identifiers",
			Flags: append([]cli.Flag{
				&cli.StringFlag{
					Name:     "scheme",
					Aliases:  []string{"s"},
					Required: true,
					Usage:    "Identifier scheme (uuid, nanoid, hashids, slug)",
				},
				&cli.IntFlag{
					Name:    "count",
					Aliases: []string{"c"},
					Value:   1,
					Usage:   "Number of identifiers to generate",
				},
				&cli.IntFlag{
					Name:    "length",
					Aliases: []string{"l"},
					Usage:   "Length for nanoid and slug, minimum length for hashids",
				},
				&cli.Uint64Flag{
					Name:  "start",
					Value: 1,
					Usage: "First number encoded by hashids",
				},
				&cli.StringSliceFlag{
					Name:  "words",
					Usage: "Slug word list (defaults to the built-in list)",
				},
				&cli.StringFlag{
					Name:  "separator",
					Usage: "Slug separator: '-' or '_'",
				},
				&cli.BoolFlag{
					Name:  "allow-truncation",
					Usage: "Keep only the trailing characters of hashids longer than the minimum length",
				},
				&cli.StringFlag{
					Name:  "uuid-case",
					Usage: "Letter case of uuid output: 'lower' or 'upper'",
				},
				formatFlag("Output format: 'text', 'csv', 'json' or 'yaml'"),
				&cli.StringFlag{
					Name:    "output",
					Aliases: []string{"o"},
					Usage:   "Write to this file, or to a generated file name inside this directory",
				},
			}, charsetFlags()...),
			Action: func(ctx context.Context, cmd *cli.Command) error {
				container, err := newContainer()
				if err != nil {
					return err
				}
				defer func() { _ = container.Shutdown(ctx) }()

				useCase, err := container.IdentifierUseCase()
				if err != nil {
					return err
				}

				start := cmd.Uint64("start")
				return commands.RunGenerate(
					ctx,
					useCase,
					container.Logger(),
					commands.DefaultIO().Writer,
					container.IdentifierDefaults(),
					commands.GenerateOptions{
						Request: dto.GenerateRequest{
							Scheme:          cmd.String("scheme"),
							Count:           cmd.Int("count"),
							Charset:         charsetFromFlags(cmd),
							Length:          optionalInt(cmd, "length"),
							Start:           &start,
							AllowTruncation: cmd.Bool("allow-truncation"),
							Words:           cmd.StringSlice("words"),
							Separator:       cmd.String("separator"),
							UUIDCase:        cmd.String("uuid-case"),
						},
						Format: cmd.String("format"),
						Output: cmd.String("output"),
					},
				)
			},
		},
		{
			Name:  "encode",
			Usage: "Encode a number as a reversible hashids identifier",
			Flags: append([]cli.Flag{
				&cli.Uint64Flag{
					Name:     "number",
					Aliases:  []string{"n"},
					Required: true,
					Usage:    "Number to encode",
				},
				&cli.IntFlag{
					Name:    "min-length",
					Aliases: []string{"m"},
					Usage:   "Minimum identifier length",
				},
				&cli.BoolFlag{
					Name:  "allow-truncation",
					Usage: "Keep only the trailing characters when the encoding is longer than the minimum length",
				},
				formatFlag("Output format: 'text' or 'json'"),
			}, charsetFlags()...),
			Action: func(ctx context.Context, cmd *cli.Command) error {
				container, err := newContainer()
				if err != nil {
					return err
				}
				defer func() { _ = container.Shutdown(ctx) }()

				useCase, err := container.IdentifierUseCase()
				if err != nil {
					return err
				}

				number := cmd.Uint64("number")
				return commands.RunEncode(
					ctx,
					useCase,
					container.Logger(),
					commands.DefaultIO().Writer,
					container.IdentifierDefaults(),
					dto.EncodeRequest{
						Number:          &number,
						Charset:         charsetFromFlags(cmd),
						MinLength:       optionalInt(cmd, "min-length"),
						AllowTruncation: cmd.Bool("allow-truncation"),
					},
					cmd.String("format"),
				)
			},
		},
		{
			Name:  "decode",
			Usage: "Decode a reversible hashids identifier",
			Flags: append([]cli.Flag{
				&cli.StringFlag{
					Name:     "id",
					Aliases:  []string{"i"},
					Required: true,
					Usage:    "Identifier to decode",
				},
				&cli.IntFlag{
					Name:    "payload-length",
					Aliases: []string{"p"},
					Usage:   "Payload length reported by encode; omit for unpadded identifiers",
				},
				formatFlag("Output format: 'text' or 'json'"),
			}, charsetFlags()...),
			Action: func(ctx context.Context, cmd *cli.Command) error {
				container, err := newContainer()
				if err != nil {
					return err
				}
				defer func() { _ = container.Shutdown(ctx) }()

				useCase, err := container.IdentifierUseCase()
				if err != nil {
					return err
				}

				return commands.RunDecode(
					ctx,
					useCase,
					commands.DefaultIO().Writer,
					dto.DecodeRequest{
						ID:            cmd.String("id"),
						Charset:       charsetFromFlags(cmd),
						PayloadLength: cmd.Int("payload-length"),
					},
					cmd.String("format"),
				)
			},
		},
		{
			Name:  "validate",
			Usage: "Check an identifier against its scheme",
			Flags: append([]cli.Flag{
				&cli.StringFlag{
					Name:     "scheme",
					Aliases:  []string{"s"},
					Required: true,
					Usage:    "Identifier scheme (uuid, nanoid, hashids, slug)",
				},
				&cli.StringFlag{
					Name:     "id",
					Aliases:  []string{"i"},
					Required: true,
					Usage:    "Identifier to check",
				},
				&cli.IntFlag{
					Name:    "length",
					Aliases: []string{"l"},
					Usage:   "Expected length; omit to skip the length check",
				},
				formatFlag("Output format: 'text' or 'json'"),
			}, charsetFlags()...),
			Action: func(ctx context.Context, cmd *cli.Command) error {
				container, err := newContainer()
				if err != nil {
					return err
				}
				defer func() { _ = container.Shutdown(ctx) }()

				useCase, err := container.IdentifierUseCase()
				if err != nil {
					return err
				}

				return commands.RunValidate(
					ctx,
					useCase,
					commands.DefaultIO().Writer,
					dto.ValidateRequest{
						Scheme:  cmd.String("scheme"),
						ID:      cmd.String("id"),
						Charset: charsetFromFlags(cmd),
						Length:  cmd.Int("length"),
					},
					cmd.String("format"),
				)
			},
		},
		{
			Name:  "schemes",
			Usage: "List the supported identifier schemes",
			Flags: []cli.Flag{
				formatFlag("Output format: 'text' or 'json'"),
			},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				container, err := newContainer()
				if err != nil {
					return err
				}
				defer func() { _ = container.Shutdown(ctx) }()

				return commands.RunListSchemes(
					commands.DefaultIO().Writer,
					container.IdentifierDefaults(),
					cmd.String("format"),
				)
			},
		},
	}
}
