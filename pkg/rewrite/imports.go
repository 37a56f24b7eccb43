package rewrite

import (
	"regexp"
	"slices"
	"strings"
)

const (
	// oldLoggerName is the legacy logging identifier being phased out.
	oldLoggerName = "logger"
	// newLoggerName is the replacement error-logging function.
	newLoggerName = "logError"
	// handlerModulePath is the canonical module path for logError imports.
	handlerModulePath = "@/lib/utils/error-handler"
	// handlerModuleHint identifies existing error-handler declarations.
	handlerModuleHint = "utils/error-handler"
	// loggerModuleHint identifies the legacy logger's declarations.
	loggerModuleHint = "utils/logger"
)

// 📦 importDecl is one named-import declaration located in the source text.
// It is parsed out of the text, mutated, and re-serialized in place so the
// surrounding file keeps a minimal diff.
type importDecl struct {
	names []string // named imports, in declaration order
	path  string   // module path, without quotes
	quote byte     // quote character used around the module path
	start int      // byte offset of the declaration's first byte
	end   int      // byte offset just past the declaration's last byte
}

var (
	// importDeclRe is a tolerant grammar for `import { a, b } from 'path';`.
	// Anything it does not recognize (default imports, namespace imports,
	// aliased names) is simply not parsed and therefore never touched.
	importDeclRe = regexp.MustCompile(`import\s*\{([^}]*)\}\s*from\s*(['"])([^'"]+)['"];?`)

	// importLineRe anchors placement of synthesized declarations: the new
	// import goes after the last top-level import line of any form.
	importLineRe = regexp.MustCompile(`(?m)^import\b.*$`)

	// otherLoggerUseRe detects non-error usage of the legacy logger, which
	// keeps its import alive. The word boundary keeps unrelated identifiers
	// like mylogger from counting as usage.
	otherLoggerUseRe = regexp.MustCompile(`\blogger\.(info|warn|debug)`)
)

// parseImports scans src for named-import declarations.
func parseImports(src string) []importDecl {
	var decls []importDecl
	for _, loc := range importDeclRe.FindAllStringSubmatchIndex(src, -1) {
		var names []string
		for _, name := range strings.Split(src[loc[2]:loc[3]], ",") {
			if trimmed := strings.TrimSpace(name); trimmed != "" {
				names = append(names, trimmed)
			}
		}
		decls = append(decls, importDecl{
			names: names,
			path:  src[loc[6]:loc[7]],
			quote: src[loc[4]],
			start: loc[0],
			end:   loc[1],
		})
	}
	return decls
}

// has reports whether the declaration names the given import.
func (d importDecl) has(name string) bool {
	return slices.Contains(d.names, name)
}

// render serializes the declaration back to source form.
func (d importDecl) render() string {
	q := string(d.quote)
	return "import { " + strings.Join(d.names, ", ") + " } from " + q + d.path + q + ";"
}

// splice replaces the declaration's span in src with the given replacement.
func (d importDecl) splice(src, replacement string) string {
	return src[:d.start] + replacement + src[d.end:]
}

// extended returns the declaration's original text with the given name
// appended to its name list. The declaration's own spacing, quoting, and
// punctuation are preserved; only the new name is added.
func (d importDecl) extended(src, name string) string {
	if len(d.names) == 0 {
		d.names = []string{name}
		return d.render()
	}
	text := src[d.start:d.end]
	brace := strings.LastIndexByte(text, '}')
	end := brace
	for end > 0 && isSpaceByte(text[end-1]) {
		end--
	}
	return text[:end] + ", " + name + text[brace:]
}

func isSpaceByte(b byte) bool {
	return b == ' ' || b == '\t' || b == '\n' || b == '\r'
}

// remove deletes the declaration's span from src, consuming the rest of its
// line so no blank line is left behind.
func (d importDecl) remove(src string) string {
	end := d.end
	for end < len(src) && (src[end] == ' ' || src[end] == '\t' || src[end] == '\r') {
		end++
	}
	if end < len(src) && src[end] == '\n' {
		end++
	}
	return src[:d.start] + src[end:]
}

// 🔄 ReconcileImports keeps the file's import declarations consistent with
// post-rewrite usage: it guarantees logError is imported exactly once and
// drops the legacy logger import when nothing references it anymore.
func ReconcileImports(src string) string {
	src = ensureLogErrorImport(src)
	return removeStaleLoggerImport(src)
}

// ensureLogErrorImport adds a named logError import unless one already exists
// under any declaration. An existing error-handler declaration is extended in
// place; otherwise a fresh declaration is inserted after the last top-level
// import line, or at the very start of a file with no imports at all.
func ensureLogErrorImport(src string) string {
	decls := parseImports(src)
	for _, d := range decls {
		if d.has(newLoggerName) {
			return src
		}
	}

	for _, d := range decls {
		if strings.Contains(d.path, handlerModuleHint) {
			return d.splice(src, d.extended(src, newLoggerName))
		}
	}

	stmt := "import { " + newLoggerName + " } from '" + handlerModulePath + "';\n"
	insertAt := 0
	if lines := importLineRe.FindAllStringIndex(src, -1); len(lines) > 0 {
		insertAt = lines[len(lines)-1][1]
	}
	// A multi-line trailing declaration ends past its first line; anchoring
	// past its parsed span keeps the insertion from splitting it open.
	if len(decls) > 0 && decls[len(decls)-1].end > insertAt {
		insertAt = decls[len(decls)-1].end
	}
	if insertAt == 0 {
		return stmt + src
	}
	if insertAt < len(src) && src[insertAt] == '\n' {
		insertAt++
		return src[:insertAt] + stmt + src[insertAt:]
	}
	return src[:insertAt] + "\n" + stmt + src[insertAt:]
}

// removeStaleLoggerImport drops the legacy logger name from its import
// declaration when no informational/warning/debug call remains. A declaration
// left with no names is deleted outright, so reconciliation never produces an
// empty-brace import.
func removeStaleLoggerImport(src string) string {
	if otherLoggerUseRe.MatchString(src) {
		return src
	}

	decls := parseImports(src)
	// Reverse span order keeps earlier offsets valid across edits.
	for i := len(decls) - 1; i >= 0; i-- {
		d := decls[i]
		if !strings.Contains(d.path, loggerModuleHint) || !d.has(oldLoggerName) {
			continue
		}
		remaining := slices.DeleteFunc(d.names, func(name string) bool {
			return name == oldLoggerName
		})
		if len(remaining) == 0 {
			src = d.remove(src)
			continue
		}
		d.names = remaining
		src = d.splice(src, d.render())
	}
	return src
}
