// Package decode extracts command strings from backend response bodies.
package decode

import (
	"regexp"

	"github.com/tidwall/gjson"

	"github.com/doeshing/shellmate-go/internal/ports"
)

// JSONDecoder is the primary path: a structured parse of the body with the
// `command` field extracted. Extra fields and whitespace are tolerated; an
// absent or empty field is a miss.
type JSONDecoder struct{}

// Decode implements ports.Decoder.
func (JSONDecoder) Decode(body []byte) (string, bool) {
	if !gjson.ValidBytes(body) {
		return "", false
	}
	field := gjson.GetBytes(body, "command")
	if field.Type != gjson.String {
		return "", false
	}
	command := field.String()
	if command == "" {
		return "", false
	}
	return command, true
}

var commandPattern = regexp.MustCompile(`"command"\s*:\s*"([^"]*)"`)

// PatternDecoder is the fallback path for runtimes where a structured parse
// is not possible: a raw pattern match taking the first capture.
//
// It agrees with JSONDecoder on every body containing a single well-formed
// string `command` field without embedded escaped quotes. A command payload
// containing \" truncates at the first quote; that divergence is a known
// limitation of the pattern, not something this decoder tries to repair.
type PatternDecoder struct{}

// Decode implements ports.Decoder.
func (PatternDecoder) Decode(body []byte) (string, bool) {
	match := commandPattern.FindSubmatch(body)
	if match == nil || len(match[1]) == 0 {
		return "", false
	}
	return string(match[1]), true
}

// Chain tries decoders in order; the first hit short-circuits.
type Chain []ports.Decoder

// Decode implements ports.Decoder.
func (c Chain) Decode(body []byte) (string, bool) {
	for _, d := range c {
		if command, ok := d.Decode(body); ok {
			return command, true
		}
	}
	return "", false
}

// NewChain builds the default decoder chain: structured parse first, pattern
// fallback second.
func NewChain() Chain {
	return Chain{JSONDecoder{}, PatternDecoder{}}
}

var (
	_ ports.Decoder = JSONDecoder{}
	_ ports.Decoder = PatternDecoder{}
	_ ports.Decoder = Chain{}
)
