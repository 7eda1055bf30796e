package ssml

import (
	"strings"

	"edgessml.dev/pkg/types/voice"
)

const (
	crlf = "\r\n"

	contentType = "application/ssml+xml"
	path        = "ssml"

	speakVersion   = "1.0"
	namespace      = "http://www.w3.org/2001/10/synthesis"
	namespaceMSTTS = "https://www.w3.org/2001/mstts"

	neutralPitch = "+0Hz"
)

// Neutral is the "no change" literal for rate and volume.
const Neutral = "+0%"

type defaults struct {
	voice  func() voice.Voice
	rate   string
	volume string
}

var renderDefaults = defaults{
	voice:  voice.DefaultVoice,
	rate:   Neutral,
	volume: Neutral,
}

type resolved struct {
	voice      voice.Voice
	rate       string
	volume     string
	styleOpen  string
	styleClose string
}

func resolve(req Request) resolved {
	res := resolved{
		voice:  req.voice.OrElse(renderDefaults.voice()),
		rate:   req.rate.OrElse(renderDefaults.rate),
		volume: req.volume.OrElse(renderDefaults.volume),
	}

	if style, ok := req.style.Get(); ok {
		res.styleOpen = "<mstts:express-as style='" + style.Name + "'>" + crlf
		res.styleClose = "</mstts:express-as>"
	}

	return res
}

// RenderHeader writes the header block: four CRLF terminated lines and the
// blank separator line. The timestamp gets a literal Z appended.
func RenderHeader(requestID, timestamp string) string {
	var sb strings.Builder

	sb.WriteString("X-RequestId:" + requestID + crlf)
	sb.WriteString("Content-Type:" + contentType + crlf)
	sb.WriteString("X-Timestamp:" + timestamp + "Z" + crlf)
	sb.WriteString("Path:" + path + crlf)
	sb.WriteString(crlf)

	return sb.String()
}

// RenderBody writes the SSML document for req. Text, rate, volume and the
// voice and style names are inserted verbatim without escaping.
func RenderBody(req Request) string {
	res := resolve(req)

	var sb strings.Builder

	sb.WriteString("<speak version='" + speakVersion + "'")
	sb.WriteString(" xmlns='" + namespace + "'")
	sb.WriteString(" xmlns:mstts='" + namespaceMSTTS + "'")
	sb.WriteString(" xml:lang='" + res.voice.Locale + "'>" + crlf)
	sb.WriteString("<voice name='" + res.voice.ShortName + "'>" + crlf)
	sb.WriteString(res.styleOpen)
	sb.WriteString("<prosody pitch='" + neutralPitch + "' rate='" + res.rate + "' volume='" + res.volume + "'>")
	sb.WriteString(req.text)
	sb.WriteString("</prosody>")
	sb.WriteString(res.styleClose)
	sb.WriteString("</voice>")
	sb.WriteString("</speak>")

	return sb.String()
}

// Render produces the full payload. Each call asks ids and clock once, so two
// renders of one request differ only in those values. ids and clock must be
// non-nil.
func Render(req Request, ids RequestIDGenerator, clock TimestampGenerator) string {
	requestID := ids.RequestID()
	timestamp := clock.Timestamp()

	return RenderHeader(requestID, timestamp) + RenderBody(req)
}
