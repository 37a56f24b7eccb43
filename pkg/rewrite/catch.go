package rewrite

import "regexp"

// catchClauseRe matches a catch clause binding the conventional error name
// with no type annotation. Annotated clauses, other binding names, and
// parameterless catches do not match.
var catchClauseRe = regexp.MustCompile(`catch\s*\(\s*error\s*\)`)

// 🔄 NormalizeCatchClauses annotates bare `catch (error)` bindings with an
// explicit unknown type.
func NormalizeCatchClauses(src string) string {
	return catchClauseRe.ReplaceAllString(src, "catch (error: unknown)")
}
