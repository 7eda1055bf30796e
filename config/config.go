package config

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/hashicorp/go-multierror"
	"github.com/samber/lo"
	"github.com/samber/mo"
	"gopkg.in/yaml.v3"

	"edgessml.dev/pkg/ssml"
	"edgessml.dev/pkg/types/voice"
)

type SynthesisConfig struct {
	// Voice is the short name, e.g. zh-CN-XiaoxiaoNeural. The locale is taken from its prefix unless Locale is set.
	Voice        string `yaml:"voice" json:"voice"`
	Locale       string `yaml:"locale" json:"locale"`
	// Rate and Volume are passed through as-is, e.g. "+20%", "-5", "80".
	Rate         string `yaml:"rate" json:"rate"`
	Volume       string `yaml:"volume" json:"volume"`
	Style        string `yaml:"style" json:"style"`
	OutputFormat string `yaml:"outputFormat" json:"outputFormat"`
}

type Config struct {
	Debug     bool            `yaml:"debug" json:"debug"`
	Synthesis SynthesisConfig `yaml:"synthesis" json:"synthesis"`
}

var (
	ErrVoiceWithoutLocale = errors.New("cannot derive locale from voice name")
	ErrLocaleWithoutVoice = errors.New("locale is set but voice is empty")
)

// LoadConfig loads the configuration from the specified YAML file
func LoadConfig(path string) (*Config, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open config file: %w", err)
	}
	defer file.Close()

	var cfg Config

	decoder := yaml.NewDecoder(file)
	if err := decoder.Decode(&cfg); err != nil {
		// empty or comment-only file
		if errors.Is(err, io.EOF) {
			return &Config{}, nil
		}

		return nil, fmt.Errorf("failed to decode config file: %w", err)
	}

	return &cfg, nil
}

// Validate only checks what is needed to resolve a voice. Rate, volume,
// style and output format are left to the remote service.
func (c *Config) Validate() error {
	mulErrs := &multierror.Error{}

	s := c.Synthesis
	if s.Voice != "" && s.Locale == "" && voice.NewVoice(s.Voice).IsAbsent() {
		mulErrs = multierror.Append(mulErrs, fmt.Errorf("synthesis.voice %q: %w", s.Voice, ErrVoiceWithoutLocale))
	}

	if s.Voice == "" && s.Locale != "" {
		mulErrs = multierror.Append(mulErrs, fmt.Errorf("synthesis.locale %q: %w", s.Locale, ErrLocaleWithoutVoice))
	}

	return mulErrs.ErrorOrNil()
}

// ResolveVoice returns the configured voice, None when no voice is set.
func (s SynthesisConfig) ResolveVoice() mo.Option[voice.Voice] {
	if s.Voice == "" {
		return mo.None[voice.Voice]()
	}

	if s.Locale != "" {
		return mo.Some(voice.Voice{Locale: s.Locale, ShortName: s.Voice})
	}

	return voice.NewVoice(s.Voice)
}

// Apply stages every configured field on b. Empty fields are left unset so
// that rendering falls back to its defaults.
func (s SynthesisConfig) Apply(b *ssml.Builder) *ssml.Builder {
	if v, ok := s.ResolveVoice().Get(); ok {
		b.WithVoice(v)
	}

	if s.Rate != "" {
		b.WithRate(s.Rate)
	}

	if s.Volume != "" {
		b.WithVolume(s.Volume)
	}

	if s.Style != "" {
		b.WithStyle(voice.Style{Name: s.Style})
	}

	return b.WithOutputFormat(voice.OutputFormat(lo.CoalesceOrEmpty(s.OutputFormat, voice.DefaultOutputFormat.String())))
}

// Merge overlays the non-empty fields of other onto s.
func (s SynthesisConfig) Merge(other SynthesisConfig) SynthesisConfig {
	return SynthesisConfig{
		Voice:        lo.CoalesceOrEmpty(other.Voice, s.Voice),
		Locale:       lo.CoalesceOrEmpty(other.Locale, s.Locale),
		Rate:         lo.CoalesceOrEmpty(other.Rate, s.Rate),
		Volume:       lo.CoalesceOrEmpty(other.Volume, s.Volume),
		Style:        lo.CoalesceOrEmpty(other.Style, s.Style),
		OutputFormat: lo.CoalesceOrEmpty(other.OutputFormat, s.OutputFormat),
	}
}
