package rewrite

import "strings"

// legacyCallToken is the cheap pre-filter: files without it are never
// transformed at all.
const legacyCallToken = "logger.error"

// 📦 Result pairs one file's contents before and after the transform.
type Result struct {
	Original string // contents as read
	Final    string // contents after all stages
	Changed  bool   // Final != Original
}

// 🏃 Transform runs the full rewrite pipeline over one file's contents:
// call-site rewriting, import reconciliation, then catch-clause
// normalization, each stage consuming the previous stage's output. Input
// lacking the legacy call token is returned byte-identical.
func Transform(src string) Result {
	out := src
	if strings.Contains(src, legacyCallToken) {
		out = RewriteCallSites(out)
		out = ReconcileImports(out)
		out = NormalizeCatchClauses(out)
	}
	return Result{
		Original: src,
		Final:    out,
		Changed:  out != src,
	}
}
