// Package action implements the grammar of button mapping strings.
//
// A mapping string is a comma-separated sequence of compound actions, each
// sent to the device in order. A compound action is a dash-separated chain
// of tokens: every token before the last must be a modifier, and the last
// token is the action itself (a well-known key, a media key, or a mouse
// action). "ctrl-c,ctrl-v" is two compound actions of two tokens each.
//
// Tokens resolve to exactly one of four disjoint categories:
//
//   - Modifier: ctrl, shift, alt, win and their right-hand r-variants
//   - Media key: playback, volume, and brightness controls
//   - Well-known key: a-z, 0-9, f1-f24, and named keys like space or enter
//   - Mouse action: click, rclick, mclick, wheelup, wheeldown
//
// Before classification a token has its first character upper-cased and the
// remainder left unchanged, then is compared against the canonical
// spellings; mouse actions alone match case-insensitively.
package action
