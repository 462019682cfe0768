package main

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/language/display"
)

var englishNames = display.English.Tags()

// languageLabel renders a cached language id with its English display name
// when the id parses as a BCP 47 tag. Ids are never rejected.
func languageLabel(id string) string {
	trimmed := strings.TrimSpace(id)
	if trimmed == "" {
		return id
	}
	tag, err := language.Parse(trimmed)
	if err != nil {
		return id
	}
	name := englishNames.Name(tag)
	if name == "" || strings.EqualFold(name, trimmed) {
		return id
	}
	return id + " (" + name + ")"
}

func titleWord(s string) string {
	return cases.Title(language.Und).String(strings.ReplaceAll(s, "_", " "))
}
