package action

import (
	"fmt"
	"unicode"
)

// Kind identifies which of the four disjoint grammar categories a token
// resolved to.
type Kind uint8

const (
	// KindModifier is a modifier key.
	KindModifier Kind = iota
	// KindMedia is a media key.
	KindMedia
	// KindKey is a well-known keyboard key.
	KindKey
	// KindMouse is a mouse action.
	KindMouse
)

// String returns the category name.
func (k Kind) String() string {
	switch k {
	case KindModifier:
		return "modifier"
	case KindMedia:
		return "media"
	case KindKey:
		return "key"
	case KindMouse:
		return "mouse"
	default:
		return "unknown"
	}
}

// Token is one classified element of a compound action. Raw preserves the
// user's spelling; exactly one of the typed fields is meaningful, selected
// by Kind.
type Token struct {
	Kind     Kind
	Raw      string
	Modifier Modifier
	Media    MediaCode
	Key      Key
	Mouse    MouseAction
}

// IsModifier reports whether the token is a modifier.
func (t Token) IsModifier() bool {
	return t.Kind == KindModifier
}

// UnknownTokenError reports a token that matches none of the four grammar
// categories. Token is the user's original spelling.
type UnknownTokenError struct {
	Token string
}

// Error implements the error interface.
func (e *UnknownTokenError) Error() string {
	return fmt.Sprintf("unknown key %q", e.Token)
}

// Canonical returns the spelling used for classification: the first
// character upper-cased, the remainder untouched.
func Canonical(token string) string {
	if token == "" {
		return ""
	}
	r := []rune(token)
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}

// Classify resolves a single token into one of the four categories.
// The first matching category wins: modifier, media key, well-known key,
// then mouse action. A token matching none of them yields an
// UnknownTokenError naming the original spelling.
func Classify(token string) (Token, error) {
	canon := Canonical(token)
	if m, ok := ModifierFromName(canon); ok {
		return Token{Kind: KindModifier, Raw: token, Modifier: m}, nil
	}
	if m, ok := MediaFromName(canon); ok {
		return Token{Kind: KindMedia, Raw: token, Media: m}, nil
	}
	if k, ok := KeyFromName(canon); ok {
		return Token{Kind: KindKey, Raw: token, Key: k}, nil
	}
	if m, ok := MouseFromName(canon); ok {
		return Token{Kind: KindMouse, Raw: token, Mouse: m}, nil
	}
	return Token{}, &UnknownTokenError{Token: token}
}
