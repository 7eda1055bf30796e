package main

import (
	"bytes"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"edgessml.dev/config"
)

func TestRun(t *testing.T) {
	t.Run("Defaults", func(t *testing.T) {
		stdout, stderr := &bytes.Buffer{}, &bytes.Buffer{}

		require.NoError(t, run([]string{"Hello", "world"}, stdout, stderr))

		out := stdout.String()
		assert.Regexp(t, regexp.MustCompile(`^X-RequestId:[0-9a-f]{32}\r\n`), out)
		assert.Contains(t, out, "Content-Type:application/ssml+xml\r\n")
		assert.Regexp(t, regexp.MustCompile(`X-Timestamp:.+ GMT\+0000 \(Coordinated Universal Time\)Z\r\nPath:ssml\r\n\r\n`), out)
		assert.True(t, strings.HasSuffix(out,
			"<voice name='zh-CN-XiaoxiaoNeural'>\r\n<prosody pitch='+0Hz' rate='+0%' volume='+0%'>Hello world</prosody></voice></speak>"))
		assert.Empty(t, stderr.String())
	})

	t.Run("Flags", func(t *testing.T) {
		stdout, stderr := &bytes.Buffer{}, &bytes.Buffer{}

		err := run([]string{"-voice", "en-US-AriaNeural", "-rate", "+20%", "-volume", "80", "-style", "cheerful", "-debug", "Hi"}, stdout, stderr)
		require.NoError(t, err)

		out := stdout.String()
		assert.Contains(t, out, "xml:lang='en-US'>\r\n<voice name='en-US-AriaNeural'>\r\n")
		assert.True(t, strings.HasSuffix(out,
			"<mstts:express-as style='cheerful'>\r\n<prosody pitch='+0Hz' rate='+20%' volume='80'>Hi</prosody></mstts:express-as></voice></speak>"))
		assert.Contains(t, stderr.String(), "Rendering ssml payload")
		assert.Contains(t, stderr.String(), "output_format=audio-24khz-48kbitrate-mono-mp3")
	})

	t.Run("ConfigWithOverride", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yaml")
		require.NoError(t, os.WriteFile(path, []byte("synthesis:\n  voice: en-GB-LibbyNeural\n  rate: \"-10%\"\n"), 0o600))

		stdout := &bytes.Buffer{}
		require.NoError(t, run([]string{"-config", path, "-rate", "+5%", "text"}, stdout, &bytes.Buffer{}))

		assert.Contains(t, stdout.String(), "<voice name='en-GB-LibbyNeural'>")
		assert.Contains(t, stdout.String(), "rate='+5%'")
	})

	t.Run("EmptyConfig", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yaml")
		require.NoError(t, os.WriteFile(path, []byte("# defaults only\n"), 0o600))

		stdout := &bytes.Buffer{}
		require.NoError(t, run([]string{"-config", path, "text"}, stdout, &bytes.Buffer{}))

		assert.Contains(t, stdout.String(), "<voice name='zh-CN-XiaoxiaoNeural'>")
	})

	t.Run("UnknownFormatWarns", func(t *testing.T) {
		stderr := &bytes.Buffer{}
		require.NoError(t, run([]string{"-format", "custom-format", "text"}, &bytes.Buffer{}, stderr))

		assert.Contains(t, stderr.String(), "Output format is not in the known format table")
	})

	t.Run("NoText", func(t *testing.T) {
		err := run([]string{"-rate", "+5%"}, &bytes.Buffer{}, &bytes.Buffer{})
		require.ErrorIs(t, err, errNoText)
	})

	t.Run("InvalidVoice", func(t *testing.T) {
		stdout := &bytes.Buffer{}

		err := run([]string{"-voice", "Xiaoxiao", "text"}, stdout, &bytes.Buffer{})
		require.ErrorIs(t, err, config.ErrVoiceWithoutLocale)
		assert.Empty(t, stdout.String())
	})

	t.Run("MissingConfig", func(t *testing.T) {
		err := run([]string{"-config", filepath.Join(t.TempDir(), "absent.yaml"), "text"}, &bytes.Buffer{}, &bytes.Buffer{})
		require.ErrorIs(t, err, os.ErrNotExist)
	})
}
