package rewrite

import (
	"regexp"
)

// matchKind tags which legacy call shape a matcher recognizes.
type matchKind int

const (
	// kindErrorExpr matches logger.error('msg', err) where the second
	// argument is an error-like expression.
	kindErrorExpr matchKind = iota
	// kindMetadata matches logger.error('msg', {key: value}).
	kindMetadata
)

// 🔍 callMatcher recognizes one legacy error-logging call shape.
type callMatcher struct {
	kind matchKind
	re   *regexp.Regexp
}

// callMatch is the structured result of one recognized call site.
type callMatch struct {
	message string // inner text of the literal message argument
	payload string // error expression (kindErrorExpr) or metadata body (kindMetadata)
}

// callMatchers are tried in declaration order. The error-expression shape
// runs before the metadata shape, so when both could apply to the same call
// site the first one wins. The ordering is a heuristic carried over from the
// legacy conversion scripts, not a proven disambiguation.
var callMatchers = []callMatcher{
	{kindErrorExpr, regexp.MustCompile(`logger\.error\(\s*['"` + "`" + `](.*?)['"` + "`" + `]\s*,\s*(error.*?)\s*\)`)},
	{kindMetadata, regexp.MustCompile(`logger\.error\(\s*['"` + "`" + `](.*?)['"` + "`" + `]\s*,\s*\{(.*?)\}\s*\)`)},
}

// rewrite renders the replacement for a single matched call site. The
// captured message and payload text are preserved verbatim.
func (m callMatcher) rewrite(site string) string {
	groups := m.re.FindStringSubmatch(site)
	match := callMatch{message: groups[1], payload: groups[2]}

	switch m.kind {
	case kindMetadata:
		return `logError(error, {` + match.payload + `}, "` + match.message + `")`
	default:
		return `logError(` + match.payload + `, {}, "` + match.message + `")`
	}
}

// 🔄 RewriteCallSites converts every recognized logger.error call site to the
// logError convention: error first, metadata second, message last. Call sites
// matching neither shape are left untouched, and a call already in the
// logError shape is never re-matched.
func RewriteCallSites(src string) string {
	for _, m := range callMatchers {
		src = m.re.ReplaceAllStringFunc(src, m.rewrite)
	}
	return src
}
