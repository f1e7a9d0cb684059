package action

import (
	"fmt"
	"strings"
)

// Chord is one compound action: zero or more modifier tokens followed by
// the action token.
type Chord struct {
	Tokens []Token
}

// Action returns the final token of the chord, the action itself.
func (c Chord) Action() Token {
	return c.Tokens[len(c.Tokens)-1]
}

// Modifiers returns the tokens before the action.
func (c Chord) Modifiers() []Token {
	return c.Tokens[:len(c.Tokens)-1]
}

// String reassembles the chord from the canonical spellings.
func (c Chord) String() string {
	parts := make([]string, len(c.Tokens))
	for i, t := range c.Tokens {
		parts[i] = Canonical(t.Raw)
	}
	return strings.Join(parts, "-")
}

// Parse parses a full mapping string into its ordered compound actions.
// An empty mapping parses to nil: the button is unassigned.
//
// Every token before the last in a chord must be a modifier; the last may
// be anything classifiable. Errors name the offending token and its chord.
func Parse(mapping string) ([]Chord, error) {
	if mapping == "" {
		return nil, nil
	}

	raw := strings.Split(mapping, ",")
	chords := make([]Chord, 0, len(raw))
	for i, part := range raw {
		chord, err := parseChord(part)
		if err != nil {
			return nil, fmt.Errorf("action %d: %w", i+1, err)
		}
		chords = append(chords, chord)
	}
	return chords, nil
}

// parseChord parses one dash-separated compound action.
func parseChord(part string) (Chord, error) {
	tokens := strings.Split(part, "-")
	chord := Chord{Tokens: make([]Token, 0, len(tokens))}
	for i, raw := range tokens {
		token, err := Classify(raw)
		if err != nil {
			return Chord{}, err
		}
		if i < len(tokens)-1 && !token.IsModifier() {
			return Chord{}, fmt.Errorf("%q is not a modifier but is chained before %q", raw, tokens[len(tokens)-1])
		}
		chord.Tokens = append(chord.Tokens, token)
	}
	return chord, nil
}
