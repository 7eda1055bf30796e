package voice

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLookupOutputFormat(t *testing.T) {
	t.Run("Found", func(t *testing.T) {
		assert.Equal(t, OutputFormatMP3Mono24k48, LookupOutputFormat("mp3", 24000).MustGet())
		assert.Equal(t, OutputFormatMP3Mono16k32, LookupOutputFormat("mp3", 16000).MustGet())
		assert.Equal(t, OutputFormatWebmOpus24k, LookupOutputFormat("webm", 24000).MustGet())
		assert.Equal(t, OutputFormat("raw-8khz-16bit-mono-pcm"), LookupOutputFormat("wav", 8000).MustGet())
	})

	t.Run("UnknownContainer", func(t *testing.T) {
		assert.True(t, LookupOutputFormat("flac", 24000).IsAbsent())
	})

	t.Run("UnknownSampleRate", func(t *testing.T) {
		assert.True(t, LookupOutputFormat("mp3", 11025).IsAbsent())
	})
}

func TestContainers(t *testing.T) {
	assert.Equal(t, []string{"mp3", "opus", "wav", "webm"}, Containers())
}

func TestOutputFormatIsKnown(t *testing.T) {
	assert.True(t, DefaultOutputFormat.IsKnown())
	assert.True(t, OutputFormat("ogg-48khz-16bit-mono-opus").IsKnown())
	assert.False(t, OutputFormat("audio-24khz-48kbitrate-mono-flac").IsKnown())
}
