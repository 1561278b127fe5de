package utils

import (
	"regexp"
	"strconv"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var nonWord = regexp.MustCompile(`\W+`)

// Letters that do not decompose into a base letter and a mark.
var latinLetters = strings.NewReplacer(
	"ß", "ss",
	"æ", "ae", "Æ", "AE",
	"œ", "oe", "Œ", "OE",
	"ø", "o", "Ø", "O",
	"ł", "l", "Ł", "L",
	"đ", "d", "Đ", "D",
	"þ", "th", "Þ", "TH",
)

// Slugify folds value to ASCII, lowercases it and collapses every run of
// non-word characters into a single dash.
func Slugify(value string) string {
	return nonWord.ReplaceAllString(strings.ToLower(asciiFold(value)), "-")
}

// asciiFold drops accents so "Märzen" reads "Marzen". Letters without an ASCII
// form are left for Slugify to replace.
func asciiFold(value string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(t, latinLetters.Replace(value))
	if err != nil {
		return value
	}
	return folded
}

// UniqueSlug returns Slugify(value), or the same slug with the smallest
// numeric suffix for which taken reports false.
func UniqueSlug(value string, taken func(slug string) (bool, error)) (string, error) {
	base := Slugify(value)
	slug := base
	for n := 1; ; n++ {
		exists, err := taken(slug)
		if err != nil {
			return "", err
		}
		if !exists {
			return slug, nil
		}
		slug = base + strconv.Itoa(n)
	}
}
