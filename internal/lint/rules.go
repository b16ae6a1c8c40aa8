// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package lint

import (
	"context"
	"fmt"
	"strings"

	"github.com/pdiddy/notemill/internal/mdscan"
	"github.com/pdiddy/notemill/internal/sentinel"
	"github.com/pdiddy/notemill/pkg/types"
)

// checkTitle flags documents without a non-empty leading heading, and
// warns when the first heading is not level 1.
func checkTitle(_ context.Context, _ *Runner, doc types.Document) []types.Finding {
	headings := mdscan.Headings([]byte(doc.Body))

	if len(headings) == 0 || strings.TrimSpace(headings[0].Text) == "" {
		return []types.Finding{{
			Rule:     "title",
			Severity: types.SeverityError,
			Path:     doc.Path,
			Message:  "document has no title heading",
		}}
	}

	if headings[0].Level != 1 {
		return []types.Finding{{
			Rule:     "title",
			Severity: types.SeverityWarning,
			Path:     doc.Path,
			Line:     fileLine(doc, headings[0].Line),
			Message:  fmt.Sprintf("first heading is level %d, want level 1", headings[0].Level),
		}}
	}
	return nil
}

// pythonInfos lists info strings treated as Python for the structural check.
var pythonInfos = map[string]bool{"python": true, "py": true, "python3": true}

// checkCodeBlocks flags fenced blocks without a language, empty blocks,
// and structural problems in Python-tagged blocks.
func checkCodeBlocks(_ context.Context, _ *Runner, doc types.Document) []types.Finding {
	var findings []types.Finding

	for _, block := range mdscan.CodeBlocks([]byte(doc.Body)) {
		line := fileLine(doc, block.Line)

		if block.Info == "" {
			findings = append(findings, types.Finding{
				Rule:     "code-block",
				Severity: types.SeverityWarning,
				Path:     doc.Path,
				Line:     line,
				Message:  "fenced code block has no language",
			})
		}

		if strings.TrimSpace(block.Body) == "" {
			findings = append(findings, types.Finding{
				Rule:     "code-block",
				Severity: types.SeverityWarning,
				Path:     doc.Path,
				Line:     line,
				Message:  "fenced code block is empty",
			})
			continue
		}

		if !pythonInfos[strings.ToLower(block.Info)] {
			continue
		}
		for _, prob := range checkPython(block.Body) {
			findings = append(findings, types.Finding{
				Rule:     "code-block",
				Severity: types.SeverityError,
				Path:     doc.Path,
				Line:     fileLine(doc, block.Line+prob.Line),
				Message:  "python: " + prob.Message,
			})
		}
	}
	return findings
}

// checkSentinel verifies that every separator divides two well-formed
// fragments: non-empty, each beginning with a heading. Files without the
// separator are not examined.
func checkSentinel(_ context.Context, _ *Runner, doc types.Document) []types.Finding {
	raw := sentinel.Split(doc.Body)
	if len(raw) < 2 {
		return nil
	}

	var findings []types.Finding
	for _, frag := range raw {
		line := fileLine(doc, frag.Line)

		if frag.Body == "" {
			findings = append(findings, types.Finding{
				Rule:     "sentinel",
				Severity: types.SeverityError,
				Path:     doc.Path,
				Line:     line,
				Message:  fmt.Sprintf("separator bounds an empty fragment (fragment %d)", frag.Index),
			})
			continue
		}

		headings := mdscan.Headings([]byte(frag.Body))
		if len(headings) == 0 || headings[0].Line != 1 {
			findings = append(findings, types.Finding{
				Rule:     "sentinel",
				Severity: types.SeverityWarning,
				Path:     doc.Path,
				Line:     line,
				Message:  fmt.Sprintf("fragment %d does not begin with a heading", frag.Index),
			})
		}
	}
	return findings
}
