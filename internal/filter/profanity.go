// Package filter flags inappropriate language in text typed for translation.
package filter

import (
	"strings"
	"unicode"
)

// defaultWords is a short English block list. Inflected forms are matched
// without listing them.
var defaultWords = []string{
	"arse", "ass", "asshole", "bastard", "bitch", "bollocks", "bullshit",
	"crap", "cunt", "damn", "dick", "fuck", "motherfucker", "piss",
	"prick", "shit", "slut", "twat", "wanker", "whore",
}

type Profanity struct {
	blocked map[string]bool
}

// NewProfanity builds a filter from words; with no words the default list is
// used.
func NewProfanity(words ...string) *Profanity {
	if len(words) == 0 {
		words = defaultWords
	}
	p := &Profanity{blocked: make(map[string]bool)}
	for _, w := range words {
		for v := range inflections(strings.ToLower(w)) {
			p.blocked[v] = true
		}
	}
	return p
}

// IsProfane reports whether any word of text is blocked.
func (p *Profanity) IsProfane(text string) bool {
	return len(p.Matches(text)) > 0
}

// Matches returns the blocked words found in text, in order of appearance.
func (p *Profanity) Matches(text string) []string {
	var found []string
	for _, word := range strings.FieldsFunc(strings.ToLower(text), notLetter) {
		if p.blocked[word] {
			found = append(found, word)
		}
	}
	return found
}

func notLetter(r rune) bool {
	return !unicode.IsLetter(r)
}

// inflections returns word with its plural, verb, adverb and comparative forms.
func inflections(word string) map[string]bool {
	forms := map[string]bool{word: true}

	forms[word+"s"] = true
	forms[word+"es"] = true
	forms[word+"ed"] = true
	forms[word+"ing"] = true
	forms[word+"er"] = true
	forms[word+"ers"] = true
	forms[word+"y"] = true

	// stop -> stopped, stopping
	if len(word) >= 3 && isConsonant(word[len(word)-1]) && isVowel(word[len(word)-2]) && isConsonant(word[len(word)-3]) {
		doubled := word + string(word[len(word)-1])
		forms[doubled+"ed"] = true
		forms[doubled+"ing"] = true
		forms[doubled+"er"] = true
		forms[doubled+"y"] = true
	}

	// make -> making, made
	if strings.HasSuffix(word, "e") {
		base := word[:len(word)-1]
		forms[base+"ing"] = true
		forms[base+"ed"] = true
	}

	// carry -> carried, carries
	if strings.HasSuffix(word, "y") && len(word) >= 2 && isConsonant(word[len(word)-2]) {
		base := word[:len(word)-1]
		forms[base+"ied"] = true
		forms[base+"ies"] = true
	}

	return forms
}

func isVowel(c byte) bool {
	return c == 'a' || c == 'e' || c == 'i' || c == 'o' || c == 'u'
}

func isConsonant(c byte) bool {
	return c >= 'a' && c <= 'z' && !isVowel(c)
}
