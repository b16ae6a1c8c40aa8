// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package lint

import (
	"context"
	"regexp"
	"sort"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/pdiddy/notemill/pkg/types"
)

// tagRe constrains frontmatter tags to lowercase slugs.
var tagRe = regexp.MustCompile(`^[a-z0-9][a-z0-9-]*$`)

// checkFrontMatter validates the metadata block of documents that carry
// one. Documents without frontmatter pass: the block is optional.
func checkFrontMatter(_ context.Context, _ *Runner, doc types.Document) []types.Finding {
	if !doc.HasFrontMatter {
		return nil
	}

	fm := doc.FrontMatter
	err := validation.ValidateStruct(&fm,
		validation.Field(&fm.Title, validation.Length(1, 200)),
		validation.Field(&fm.Description, validation.Length(0, 500)),
		validation.Field(&fm.Tags,
			validation.Each(validation.Match(tagRe).Error("must be a lowercase slug"))),
	)
	if err == nil {
		return nil
	}

	errs, ok := err.(validation.Errors)
	if !ok {
		return []types.Finding{{
			Rule:     "frontmatter",
			Severity: types.SeverityWarning,
			Path:     doc.Path,
			Line:     1,
			Message:  "invalid frontmatter: " + err.Error(),
		}}
	}

	fields := make([]string, 0, len(errs))
	for field := range errs {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	findings := make([]types.Finding, 0, len(fields))
	for _, field := range fields {
		findings = append(findings, types.Finding{
			Rule:     "frontmatter",
			Severity: types.SeverityWarning,
			Path:     doc.Path,
			Line:     1,
			Message:  "frontmatter field " + field + ": " + errs[field].Error(),
		})
	}
	return findings
}
