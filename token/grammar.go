/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package token

import "regexp"

// Token keys are one or more of [a-z0-9_-], matched case-insensitively
// with the original casing preserved in the capture.
const keyClass = `[A-Za-z0-9_-]+`

// Pattern matches every token form in a single pass. Alternation order is
// the grammar's precedence order: explicit prefixed forms first, then the
// legacy whole-snapshot dumps, then the bare legacy field form. Regexp
// alternation tries alternatives left to right at each position, so a span
// claimed by an earlier form is never re-claimed by the bare form.
//
// Submatch groups:
//
//	1: explicit type prefix (field, section, notes)
//	2: key for the explicit form
//	3: legacy dump name (fields_json, notes_json)
//	4: key for the bare form
var Pattern = regexp.MustCompile(
	`\{\{(?:(field|section|notes):(` + keyClass + `)|(fields_json|notes_json)|(` + keyClass + `))\}\}`)

// MalformedPattern matches token shapes the grammar rejects but a template
// author plausibly intended as tokens: a type prefix with an empty key, and
// fully empty braces. Used by the syntax pre-check only.
var MalformedPattern = regexp.MustCompile(`\{\{(?:(?:field|section|notes):)?\}\}`)

// Escape sequences for literal braces. An author writes \{{ or \}} to keep
// a brace pair out of the token grammar; the resolver swaps these for
// sentinels before tokenizing and restores plain braces afterwards. The
// sentinels embed NUL bytes so they cannot collide with user-entered field
// or note content.
const (
	EscapedOpen  = `\{{`
	EscapedClose = `\}}`

	OpenSentinel  = "\x00\x02LBRACE\x03\x00"
	CloseSentinel = "\x00\x02RBRACE\x03\x00"
)
