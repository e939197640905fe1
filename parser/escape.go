/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package parser

import (
	"strings"

	"bennypowers.dev/tavnit/token"
)

// EscapeLiteralBraces replaces backslash-escaped brace pairs with sentinels
// the token grammar cannot match, so escaped braces survive tokenizing as
// literal text. Escaping is idempotent: a second pass finds no escape
// sequences left to replace.
func EscapeLiteralBraces(template string) string {
	template = strings.ReplaceAll(template, token.EscapedOpen, token.OpenSentinel)
	template = strings.ReplaceAll(template, token.EscapedClose, token.CloseSentinel)
	return template
}

// RestoreEscapedBraces swaps the sentinels back to plain brace pairs. The
// backslash is consumed: authors escape braces to get literal {{ and }} in
// the resolved output.
func RestoreEscapedBraces(template string) string {
	template = strings.ReplaceAll(template, token.OpenSentinel, "{{")
	template = strings.ReplaceAll(template, token.CloseSentinel, "}}")
	return template
}

// OriginalOffset maps a byte offset in escaped text back to the offset in
// the template it was escaped from. Sentinels are wider than the escape
// sequences they replace, so every sentinel before the offset shifts it.
func OriginalOffset(escaped string, offset int) int {
	prefix := escaped[:offset]
	offset -= strings.Count(prefix, token.OpenSentinel) *
		(len(token.OpenSentinel) - len(token.EscapedOpen))
	offset -= strings.Count(prefix, token.CloseSentinel) *
		(len(token.CloseSentinel) - len(token.EscapedClose))
	return offset
}
