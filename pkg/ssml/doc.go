// Package ssml renders the text payload a streaming speech service expects
// on its ssml path: a CRLF header block followed by a speak document with a
// single voice, an optional mstts:express-as style and a prosody element.
//
//	req := ssml.NewBuilder().
//		WithText("Hello").
//		WithVoice(voice.Voice{Locale: "en-US", ShortName: "en-US-AriaNeural"}).
//		WithStyle(voice.StyleCheerful).
//		Build()
//
//	payload := req.Render(ssml.UUIDRequestIDs(), ssml.JSDateTimestamps(nil))
//
// Nothing is escaped. Callers that pass text containing markup characters
// get that markup in the document.
package ssml
