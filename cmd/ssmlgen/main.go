/*
Copyright 2024.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"edgessml.dev/config"
	"edgessml.dev/pkg/ssml"
	"edgessml.dev/pkg/types/voice"
)

var errNoText = errors.New("no text given")

type options struct {
	configPath string
	debug      bool
	overrides  config.SynthesisConfig
	text       string
}

func parseFlags(args []string, stderr io.Writer) (*options, error) {
	opts := &options{}

	fs := flag.NewFlagSet("ssmlgen", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&opts.configPath, "config", "", "Path to the configuration file, optional.")
	fs.BoolVar(&opts.debug, "debug", false, "Enable debug logging.")
	fs.StringVar(&opts.overrides.Voice, "voice", "", "Voice short name, e.g. en-US-AriaNeural.")
	fs.StringVar(&opts.overrides.Locale, "locale", "", "Locale override when it cannot be derived from the voice name.")
	fs.StringVar(&opts.overrides.Rate, "rate", "", "Speech rate, e.g. +20% or -10%.")
	fs.StringVar(&opts.overrides.Volume, "volume", "", "Volume, e.g. 80, +10 or -5%.")
	fs.StringVar(&opts.overrides.Style, "style", "", "Speaking style, e.g. cheerful.")
	fs.StringVar(&opts.overrides.OutputFormat, "format", "", "Audio output format for the transport.")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	opts.text = strings.Join(fs.Args(), " ")
	if opts.text == "" {
		return nil, errNoText
	}

	return opts, nil
}

func run(args []string, stdout, stderr io.Writer) error {
	opts, err := parseFlags(args, stderr)
	if err != nil {
		return err
	}

	cfg := &config.Config{}
	if opts.configPath != "" {
		cfg, err = config.LoadConfig(opts.configPath)
		if err != nil {
			return err
		}
	}

	cfg.Debug = cfg.Debug || opts.debug
	cfg.Synthesis = cfg.Synthesis.Merge(opts.overrides)

	logLevel := slog.LevelInfo
	if cfg.Debug {
		logLevel = slog.LevelDebug
	}

	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{
		Level: logLevel,
	}))

	if err := cfg.Validate(); err != nil {
		logger.Error("Invalid synthesis configuration", "error", err)
		return err
	}

	req := cfg.Synthesis.Apply(ssml.NewBuilder().WithText(opts.text)).Build()

	resolvedVoice := req.Voice().OrElse(voice.DefaultVoice())
	format := req.OutputFormat().OrElse(voice.DefaultOutputFormat)

	logger.Debug("Rendering ssml payload",
		slog.String("voice", resolvedVoice.ShortName),
		slog.String("locale", resolvedVoice.Locale),
		slog.String("style", req.Style().OrEmpty().Name),
		slog.String("output_format", format.String()),
		slog.Int("text_length", len(opts.text)),
	)

	if !format.IsKnown() {
		logger.Warn("Output format is not in the known format table", slog.String("output_format", format.String()))
	}

	_, err = fmt.Fprint(stdout, req.Render(ssml.UUIDRequestIDs(), ssml.JSDateTimestamps(nil)))

	return err
}

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if !errors.Is(err, flag.ErrHelp) {
			slog.Error("Failed to render ssml payload", "error", err)
		}

		os.Exit(1)
	}
}
