package voice

import (
	"slices"

	"github.com/samber/lo"
	"github.com/samber/mo"
)

// OutputFormat is the service's audio encoding identifier. It travels next
// to the payload, never inside it.
type OutputFormat string

const (
	OutputFormatMP3Mono16k32  OutputFormat = "audio-16khz-32kbitrate-mono-mp3"
	OutputFormatMP3Mono24k48  OutputFormat = "audio-24khz-48kbitrate-mono-mp3"
	OutputFormatMP3Mono24k96  OutputFormat = "audio-24khz-96kbitrate-mono-mp3"
	OutputFormatMP3Mono48k192 OutputFormat = "audio-48khz-192kbitrate-mono-mp3"
	OutputFormatWebmOpus24k   OutputFormat = "webm-24khz-16bit-mono-opus"
	OutputFormatPCM24k        OutputFormat = "raw-24khz-16bit-mono-pcm"

	DefaultOutputFormat = OutputFormatMP3Mono24k48
)

func (f OutputFormat) String() string {
	return string(f)
}

var (
	supportedOutputFormats = map[string]map[uint][]OutputFormat{
		"mp3": {
			16000: {OutputFormatMP3Mono16k32, "audio-16khz-64kbitrate-mono-mp3", "audio-16khz-128kbitrate-mono-mp3"},
			24000: {OutputFormatMP3Mono24k48, OutputFormatMP3Mono24k96, "audio-24khz-160kbitrate-mono-mp3"},
			48000: {"audio-48khz-96kbitrate-mono-mp3", OutputFormatMP3Mono48k192},
		},
		"opus": {
			16000: {"audio-16khz-16bit-32kbps-mono-opus", "ogg-16khz-16bit-mono-opus"},
			24000: {"audio-24khz-16bit-24kbps-mono-opus", "audio-24khz-16bit-48kbps-mono-opus", "ogg-24khz-16bit-mono-opus"},
			48000: {"ogg-48khz-16bit-mono-opus"},
		},
		"webm": {
			16000: {"webm-16khz-16bit-mono-opus"},
			24000: {OutputFormatWebmOpus24k, "webm-24khz-16bit-24kbps-mono-opus"},
		},
		"wav": {
			8000:  {"raw-8khz-16bit-mono-pcm", "raw-8khz-8bit-mono-alaw", "raw-8khz-8bit-mono-mulaw"},
			16000: {"raw-16khz-16bit-mono-pcm", "raw-16khz-16bit-mono-truesilk"},
			22050: {"raw-22050hz-16bit-mono-pcm"},
			24000: {OutputFormatPCM24k, "raw-24khz-16bit-mono-truesilk"},
			44100: {"raw-44100hz-16bit-mono-pcm"},
			48000: {"raw-48khz-16bit-mono-pcm"},
		},
	}
)

// LookupOutputFormat picks the first format the service lists for the
// container at the sample rate.
func LookupOutputFormat(container string, sampleRate uint) mo.Option[OutputFormat] {
	formatsWithSampleRate, ok := supportedOutputFormats[container]
	if !ok {
		return mo.None[OutputFormat]()
	}

	formats, ok := formatsWithSampleRate[sampleRate]
	if !ok || len(formats) == 0 {
		return mo.None[OutputFormat]()
	}

	return mo.Some(formats[0])
}

// Containers lists the containers LookupOutputFormat knows about, sorted.
func Containers() []string {
	containers := lo.Keys(supportedOutputFormats)
	slices.Sort(containers)

	return containers
}

// IsKnown reports whether the format appears in the lookup table. Unknown
// formats are still accepted everywhere else.
func (f OutputFormat) IsKnown() bool {
	for _, rates := range supportedOutputFormats {
		for _, formats := range rates {
			if lo.Contains(formats, f) {
				return true
			}
		}
	}

	return false
}
