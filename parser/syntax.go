/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package parser

import (
	"fmt"
	"strings"

	"bennypowers.dev/tavnit/token"
)

// ValidateTokenSyntax runs the cheap pre-parse syntax check and returns one
// message per problem found. An empty result means the template is
// syntactically usable. The check is independent of full parsing: it only
// balances brace pairs and flags malformed token shapes, each distinct
// malformed substring reported once.
func ValidateTokenSyntax(template string) []string {
	var errors []string

	opens := strings.Count(template, "{{")
	closes := strings.Count(template, "}}")
	if opens != closes {
		errors = append(errors, fmt.Sprintf(
			"mismatched braces: %d opening {{ but %d closing }}", opens, closes))
	}

	seen := make(map[string]bool)
	for _, match := range token.MalformedPattern.FindAllString(template, -1) {
		if seen[match] {
			continue
		}
		seen[match] = true
		errors = append(errors, fmt.Sprintf("empty token: %s", match))
	}

	return errors
}
