package abcors

import (
	"testing"

	"golang.org/x/text/language"
)

func TestLocale(t *testing.T) {
	en := NewLocale("")
	if en.Tag() != language.AmericanEnglish {
		t.Fatalf("default locale %s", en.Tag())
	}
	if bad := NewLocale("not a tag!"); bad.Tag() != language.AmericanEnglish {
		t.Fatalf("invalid tags should fall back, got %s", bad.Tag())
	}
	de := NewLocale("de-DE")
	for _, tc := range []struct {
		got, exp string
	}{
		{en.Integer(1234567.4), "1,234,567"},
		{en.Integer(999.5), "1,000"},
		{en.Integer(-0.3), "0"},
		{en.Fixed(12.3456, 2), "12.35"},
		{en.Fixed(7, 2), "7.00"},
		{de.Integer(1234567.4), "1.234.567"},
		{de.Fixed(12.3456, 2), "12,35"},
	} {
		if tc.got != tc.exp {
			t.Errorf("got %q, expected %q", tc.got, tc.exp)
		}
	}
}

func TestHostLocale(t *testing.T) {
	for _, tc := range []struct {
		all, numeric, lang string
		exp                string
	}{
		{"", "", "de_DE.UTF-8", "de-DE"},
		{"", "fr_FR", "de_DE.UTF-8", "fr-FR"},
		{"en_GB.UTF-8@euro", "fr_FR", "de_DE", "en-GB"},
		{"C", "", "de_DE.UTF-8", ""},
		{"", "", "POSIX", ""},
		{"", "", "", ""},
	} {
		t.Setenv("LC_ALL", tc.all)
		t.Setenv("LC_NUMERIC", tc.numeric)
		t.Setenv("LANG", tc.lang)
		if got := HostLocale(); got != tc.exp {
			t.Errorf("LC_ALL=%q LC_NUMERIC=%q LANG=%q: got %q, expected %q", tc.all, tc.numeric, tc.lang, got, tc.exp)
		}
	}

	t.Setenv("LC_ALL", "")
	t.Setenv("LC_NUMERIC", "")
	t.Setenv("LANG", "de_DE.UTF-8")
	cfg := DefaultDisplayConfig()
	cfg.Locale = HostLocale()
	hit := HitResult{Orbit: lowOrbit(), UT: 0, Source: MainVessel}
	if got := Format(hit, cfg, 0); got != "T: 0s\nAlt: 100.000m" {
		t.Fatalf("got %q", got)
	}
}
