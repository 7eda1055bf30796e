package ssml

import (
	"github.com/samber/mo"

	"edgessml.dev/pkg/types/voice"
)

// Request is a sealed set of synthesis parameters. Values are only created
// by Builder.Build and cannot change afterwards.
type Request struct {
	text         string
	voice        mo.Option[voice.Voice]
	rate         mo.Option[string]
	volume       mo.Option[string]
	style        mo.Option[voice.Style]
	outputFormat mo.Option[voice.OutputFormat]
}

func (r Request) Text() string {
	return r.text
}

func (r Request) Voice() mo.Option[voice.Voice] {
	return r.voice
}

func (r Request) Rate() mo.Option[string] {
	return r.rate
}

func (r Request) Volume() mo.Option[string] {
	return r.volume
}

func (r Request) Style() mo.Option[voice.Style] {
	return r.style
}

// OutputFormat is carried for the transport that negotiates the audio
// encoding; it is never rendered into the payload.
func (r Request) OutputFormat() mo.Option[voice.OutputFormat] {
	return r.outputFormat
}

// Render is shorthand for Render(r, ids, clock).
func (r Request) Render(ids RequestIDGenerator, clock TimestampGenerator) string {
	return Render(r, ids, clock)
}

// Builder stages synthesis parameters. Every setter overwrites the previous
// value of its field and performs no validation.
type Builder struct {
	staged Request
}

func NewBuilder() *Builder {
	return &Builder{}
}

func (b *Builder) WithText(text string) *Builder {
	b.staged.text = text
	return b
}

func (b *Builder) WithVoice(v voice.Voice) *Builder {
	b.staged.voice = mo.Some(v)
	return b
}

func (b *Builder) WithRate(rate string) *Builder {
	b.staged.rate = mo.Some(rate)
	return b
}

func (b *Builder) WithVolume(volume string) *Builder {
	b.staged.volume = mo.Some(volume)
	return b
}

func (b *Builder) WithStyle(style voice.Style) *Builder {
	b.staged.style = mo.Some(style)
	return b
}

func (b *Builder) WithOutputFormat(format voice.OutputFormat) *Builder {
	b.staged.outputFormat = mo.Some(format)
	return b
}

// Build snapshots the staged fields. It never fails; a builder with nothing
// staged yields a request that renders defaults around an empty text.
func (b *Builder) Build() Request {
	return b.staged
}
