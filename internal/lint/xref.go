// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package lint

import (
	"context"
	"fmt"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/pdiddy/notemill/internal/mdscan"
	"github.com/pdiddy/notemill/pkg/types"
)

// checkXrefs verifies that relative links resolve to existing corpus files.
// Absolute http(s) URLs are probed only when external checking is enabled;
// mailto links and bare anchors are skipped. Anchors on relative links are
// ignored: only the file part is resolved.
func checkXrefs(ctx context.Context, r *Runner, doc types.Document) []types.Finding {
	var findings []types.Finding

	for _, link := range mdscan.Links([]byte(doc.Body)) {
		dest := strings.TrimSpace(link.Dest)
		line := fileLine(doc, link.Line)

		switch {
		case dest == "" || strings.HasPrefix(dest, "#"):
			continue
		case strings.HasPrefix(dest, "mailto:") || strings.HasPrefix(dest, "tel:"):
			continue
		case strings.HasPrefix(dest, "http://") || strings.HasPrefix(dest, "https://"):
			if f := r.probeExternal(ctx, doc, dest, line); f != nil {
				findings = append(findings, *f)
			}
		default:
			if f := r.resolveRelative(doc, dest, line); f != nil {
				findings = append(findings, *f)
			}
		}
	}
	return findings
}

// resolveRelative checks a relative link target against the corpus.
func (r *Runner) resolveRelative(doc types.Document, dest string, line int) *types.Finding {
	// Drop the anchor and query, decode percent escapes.
	if i := strings.IndexAny(dest, "#?"); i >= 0 {
		dest = dest[:i]
	}
	if dest == "" {
		return nil
	}
	if decoded, err := url.PathUnescape(dest); err == nil {
		dest = decoded
	}

	var target string
	if strings.HasPrefix(dest, "/") {
		target = path.Clean(strings.TrimPrefix(dest, "/"))
	} else {
		target = path.Clean(path.Join(path.Dir(doc.Path), dest))
	}

	if target == ".." || strings.HasPrefix(target, "../") {
		return &types.Finding{
			Rule:     "xref",
			Severity: types.SeverityError,
			Path:     doc.Path,
			Line:     line,
			Message:  fmt.Sprintf("cross-reference %q escapes the corpus root", dest),
		}
	}

	if r.paths[target] {
		return nil
	}
	if _, err := os.Stat(filepath.Join(r.root, filepath.FromSlash(target))); err == nil {
		return nil
	}

	return &types.Finding{
		Rule:     "xref",
		Severity: types.SeverityError,
		Path:     doc.Path,
		Line:     line,
		Message:  fmt.Sprintf("dangling cross-reference to %q", dest),
	}
}

// probeExternal checks an absolute URL over HTTP when enabled.
func (r *Runner) probeExternal(ctx context.Context, doc types.Document, dest string, line int) *types.Finding {
	if r.prober == nil {
		return nil
	}

	status, err := r.prober.Probe(ctx, dest)
	if err != nil {
		return &types.Finding{
			Rule:     "xref",
			Severity: types.SeverityWarning,
			Path:     doc.Path,
			Line:     line,
			Message:  fmt.Sprintf("external link %s unreachable: %v", dest, err),
		}
	}
	if status >= 400 {
		return &types.Finding{
			Rule:     "xref",
			Severity: types.SeverityWarning,
			Path:     doc.Path,
			Line:     line,
			Message:  fmt.Sprintf("external link %s returned status %d", dest, status),
		}
	}
	return nil
}
