package voice

import (
	"strings"

	"github.com/samber/mo"
	"golang.org/x/text/language"
)

// Voice identifies the synthetic voice that speaks the text. Locale goes to
// the speak element's xml:lang, ShortName to the voice element's name.
type Voice struct {
	Locale    string `json:"locale" yaml:"locale"`
	ShortName string `json:"shortName" yaml:"shortName"`
}

const (
	defaultLocale    = "zh-CN"
	defaultShortName = "zh-CN-XiaoxiaoNeural"
)

// DefaultVoice is the voice used when a request names none.
func DefaultVoice() Voice {
	return Voice{
		Locale:    defaultLocale,
		ShortName: defaultShortName,
	}
}

func (v Voice) String() string {
	return v.ShortName
}

// NewVoice derives the locale from the short name prefix, e.g.
// "en-US-AriaNeural" is spoken in "en-US" and "iu-Latn-CA-TaqqiqNeural"
// in "iu-Latn-CA". The prefix must parse as a registered BCP 47 tag and at
// least one name segment must follow it.
func NewVoice(shortName string) mo.Option[Voice] {
	parts := strings.Split(shortName, "-")
	if len(parts) < 3 {
		return mo.None[Voice]()
	}

	// language-Script-REGION when the second subtag is a script, else language-REGION
	n := 2
	if len(parts[1]) == 4 {
		n = 3
	}

	if len(parts) <= n || parts[n] == "" {
		return mo.None[Voice]()
	}

	prefix := strings.Join(parts[:n], "-")
	if _, err := language.Parse(prefix); err != nil {
		return mo.None[Voice]()
	}

	return mo.Some(Voice{
		Locale:    prefix,
		ShortName: shortName,
	})
}

// Style selects an expressive speaking style through mstts:express-as.
type Style struct {
	Name string `json:"name" yaml:"name"`
}

func (s Style) String() string {
	return s.Name
}

// Well-known styles. They are plain values copied into each request and
// must be treated as read-only.
var (
	StyleAssistant       = Style{Name: "assistant"}
	StyleChat            = Style{Name: "chat"}
	StyleCheerful        = Style{Name: "cheerful"}
	StyleCustomerService = Style{Name: "customerservice"}
	StyleNewscast        = Style{Name: "newscast"}
	StyleSad             = Style{Name: "sad"}
)
