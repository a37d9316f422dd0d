// Package sanitize cleans rich-text content submitted from the back office.
package sanitize

import (
	"agadev/internal/domain/service"

	"github.com/microcosm-cc/bluemonday"
)

type ugcSanitizer struct {
	policy *bluemonday.Policy
}

// NewHTMLSanitizer allows the safe formatting tags the editor produces and
// drops scripts, event handlers and javascript: URLs.
func NewHTMLSanitizer() service.HTMLSanitizer {
	policy := bluemonday.UGCPolicy()
	policy.AddTargetBlankToFullyQualifiedLinks(true)

	return &ugcSanitizer{policy: policy}
}

// Sanitize returns html with unsafe markup removed.
func (s *ugcSanitizer) Sanitize(html string) string {
	if html == "" {
		return ""
	}

	return s.policy.Sanitize(html)
}
