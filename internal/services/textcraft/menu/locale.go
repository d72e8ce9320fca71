package menu

import (
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var supportedTags = []language.Tag{
	language.AmericanEnglish,
	language.BritishEnglish,
	language.MustParse("pt-BR"),
	language.German,
	language.French,
}

var tagMatcher = language.NewMatcher(supportedTags)

// DefaultLocale is used when no locale is configured.
func DefaultLocale() language.Tag {
	return language.AmericanEnglish
}

// ResolveLocale maps a configured locale such as "de-DE" to the closest
// supported tag. Blank or unparseable values yield DefaultLocale.
func ResolveLocale(raw string) language.Tag {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return DefaultLocale()
	}
	tag, err := language.Parse(raw)
	if err != nil {
		return DefaultLocale()
	}
	_, index, confidence := tagMatcher.Match(tag)
	if confidence == language.No {
		return DefaultLocale()
	}
	return supportedTags[index]
}

// Printer returns a message printer that groups digits for tag.
func Printer(tag language.Tag) *message.Printer {
	return message.NewPrinter(tag)
}
