package abcors

import (
	"math"
	"os"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// Locale formats numbers following the conventions of a culture.
type Locale struct {
	tag     language.Tag
	printer *message.Printer
}

// NewLocale returns the locale for a BCP 47 tag such as "en-US" or "de-DE".
// Empty or unparsable tags fall back to American English.
func NewLocale(tag string) Locale {
	t := language.AmericanEnglish
	if tag != "" {
		if parsed, err := language.Parse(tag); err == nil {
			t = parsed
		}
	}
	return Locale{tag: t, printer: message.NewPrinter(t)}
}

// HostLocale returns the BCP 47 tag of the culture of the environment, from LC_ALL, LC_NUMERIC
// then LANG, the first one set being used. POSIX values such as "de_DE.UTF-8" become "de-DE".
// It returns an empty string for the C locale or an unparsable value.
func HostLocale() string {
	for _, key := range []string{"LC_ALL", "LC_NUMERIC", "LANG"} {
		v := os.Getenv(key)
		if v == "" {
			continue
		}
		// language[_territory][.codeset][@modifier]
		if i := strings.IndexAny(v, ".@"); i >= 0 {
			v = v[:i]
		}
		if v == "" || v == "C" || v == "POSIX" {
			return ""
		}
		tag, err := language.Parse(strings.ReplaceAll(v, "_", "-"))
		if err != nil {
			return ""
		}
		return tag.String()
	}
	return ""
}

// Tag returns the language tag of this locale.
func (l Locale) Tag() language.Tag {
	return l.tag
}

// Integer formats v rounded to the nearest whole number, with group separators.
func (l Locale) Integer(v float64) string {
	r := math.Round(v)
	if r == 0 {
		r = 0 // no "-0"
	}
	return l.printer.Sprintf("%v", number.Decimal(r, number.MaxFractionDigits(0)))
}

// Fixed formats v with exactly the provided number of decimals.
func (l Locale) Fixed(v float64, decimals int) string {
	p := math.Pow(10, float64(decimals))
	r := math.Round(v*p) / p
	if r == 0 {
		r = 0
	}
	return l.printer.Sprintf("%v", number.Decimal(r, number.MinFractionDigits(decimals), number.MaxFractionDigits(decimals)))
}
