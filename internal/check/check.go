// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package check validates template structure against a fixed checklist.
// Checks are presence-based substring and regex scans over the whole
// document; a code fence inside a quoted example will match like any other.
package check

import (
	"fmt"
	"regexp"
	"strings"
)

// RequiredSections lists the second-level headings every template must carry.
// The order here fixes the order of violation messages.
var RequiredSections = []string{
	"Overview",
	"Authentication",
	"Endpoints",
	"Data Models",
	"Error Codes",
	"Rate Limiting",
}

// Methods lists the HTTP verbs recognized inside http code fences.
var Methods = []string{"GET", "POST", "PUT", "PATCH", "DELETE"}

var (
	// httpFenceRe matches a fenced http code block whose first line starts
	// with a recognized HTTP verb.
	httpFenceRe = regexp.MustCompile("(?m)^```http[ \t]*\r?\n(GET|POST|PUT|PATCH|DELETE)\\b")

	// jsonFenceRe matches the opening of a fenced json code block.
	jsonFenceRe = regexp.MustCompile("(?m)^```json[ \t]*$")
)

// Check scans text for structural violations and returns them in checklist
// order: one message per missing required section, then at most one message
// for a missing HTTP-method fence, then at most one for a missing JSON fence.
// An empty result means the template is compliant. Identical input always
// yields an identical list.
func Check(text string) []string {
	var violations []string

	for _, section := range RequiredSections {
		if !strings.Contains(text, "## "+section) {
			violations = append(violations, fmt.Sprintf("missing required section: ## %s", section))
		}
	}

	if !httpFenceRe.MatchString(text) {
		violations = append(violations, fmt.Sprintf(
			"no http code block with a recognized method (%s)", strings.Join(Methods, ", ")))
	}

	if !jsonFenceRe.MatchString(text) {
		violations = append(violations, "no json example code block")
	}

	return violations
}

// Compliant reports whether text passes every structural check.
func Compliant(text string) bool {
	return len(Check(text)) == 0
}
