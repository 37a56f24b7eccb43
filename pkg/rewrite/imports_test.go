package rewrite

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReconcileImports_EnsureLogError(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want string
	}{
		{
			name: "already_imported",
			src: `import { logError } from '@/lib/utils/error-handler';
logError(error, {}, "x");
`,
			want: `import { logError } from '@/lib/utils/error-handler';
logError(error, {}, "x");
`,
		},
		{
			name: "extends_existing_handler_import",
			src: `import { AppError } from '@/lib/utils/error-handler';
logError(error, {}, "x");
`,
			want: `import { AppError, logError } from '@/lib/utils/error-handler';
logError(error, {}, "x");
`,
		},
		{
			name: "extends_unspaced_declaration_minimally",
			src: `import {AppError} from "@/lib/utils/error-handler"
logError(error, {}, "x");
`,
			want: `import {AppError, logError} from "@/lib/utils/error-handler"
logError(error, {}, "x");
`,
		},
		{
			name: "inserted_after_last_import",
			src: `import { foo } from './foo';
import { bar } from './bar';
logError(error, {}, "x");
`,
			want: `import { foo } from './foo';
import { bar } from './bar';
import { logError } from '@/lib/utils/error-handler';
logError(error, {}, "x");
`,
		},
		{
			name: "inserted_after_multiline_declaration",
			src: `import { foo } from './foo';
import {
  bar,
  baz
} from './x';
logError(error, {}, "x");
`,
			want: `import { foo } from './foo';
import {
  bar,
  baz
} from './x';
import { logError } from '@/lib/utils/error-handler';
logError(error, {}, "x");
`,
		},
		{
			name: "no_imports_prepends",
			src: `logError(error, {}, "x");
`,
			want: `import { logError } from '@/lib/utils/error-handler';
logError(error, {}, "x");
`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ReconcileImports(tt.src))
		})
	}
}

func TestReconcileImports_RemoveStaleLogger(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want string
	}{
		{
			name: "single_name_declaration_deleted",
			src: `import { logError } from '@/lib/utils/error-handler';
import { logger } from '@/lib/utils/logger';
logError(error, {}, "x");
`,
			want: `import { logError } from '@/lib/utils/error-handler';
logError(error, {}, "x");
`,
		},
		{
			name: "name_spliced_from_multi_name_declaration",
			src: `import { logError } from '@/lib/utils/error-handler';
import { logger, format } from '@/lib/utils/logger';
logError(error, {}, "x");
`,
			want: `import { logError } from '@/lib/utils/error-handler';
import { format } from '@/lib/utils/logger';
logError(error, {}, "x");
`,
		},
		{
			name: "kept_while_info_call_remains",
			src: `import { logError } from '@/lib/utils/error-handler';
import { logger } from '@/lib/utils/logger';
logger.info('starting');
logError(error, {}, "x");
`,
			want: `import { logError } from '@/lib/utils/error-handler';
import { logger } from '@/lib/utils/logger';
logger.info('starting');
logError(error, {}, "x");
`,
		},
		{
			name: "kept_while_debug_call_remains",
			src: `import { logError } from '@/lib/utils/error-handler';
import { logger } from '@/lib/utils/logger';
logger.debug('tick');
`,
			want: `import { logError } from '@/lib/utils/error-handler';
import { logger } from '@/lib/utils/logger';
logger.debug('tick');
`,
		},
		{
			name: "prefixed_identifier_does_not_keep_import",
			src: `import { logError } from '@/lib/utils/error-handler';
import { logger } from '@/lib/utils/logger';
mylogger.info('tick');
`,
			want: `import { logError } from '@/lib/utils/error-handler';
mylogger.info('tick');
`,
		},
		{
			name: "aliased_declaration_left_untouched",
			src: `import { logError } from '@/lib/utils/error-handler';
import { logger as log } from '@/lib/utils/logger';
`,
			want: `import { logError } from '@/lib/utils/error-handler';
import { logger as log } from '@/lib/utils/logger';
`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ReconcileImports(tt.src))
		})
	}
}

// Running reconciliation twice produces the same text as running it once.
func TestReconcileImports_Idempotent(t *testing.T) {
	srcs := []string{
		"logError(error, {}, \"x\");\n",
		"import { foo } from './foo';\nlogError(error, {}, \"x\");\n",
		"import { AppError } from '@/lib/utils/error-handler';\nlogError(error, {}, \"x\");\n",
		"import { logger, format } from '@/lib/utils/logger';\nlogError(error, {}, \"x\");\n",
	}
	for _, src := range srcs {
		once := ReconcileImports(src)
		assert.Equal(t, once, ReconcileImports(once))
	}
}

// After reconciliation, logError appears in exactly one import declaration.
func TestReconcileImports_Uniqueness(t *testing.T) {
	src := `import { logError } from '@/lib/utils/error-handler';
import { AppError } from '@/lib/utils/error-handler';
logError(error, {}, "x");
`
	out := ReconcileImports(src)
	count := 0
	for _, d := range parseImports(out) {
		if d.has("logError") {
			count++
		}
	}
	assert.Equal(t, 1, count)
	assert.NotContains(t, out, "import {  }")
	assert.NotContains(t, out, "import { }")
}

func TestParseImports(t *testing.T) {
	src := `import { a, b } from './x';
import { c } from "pkg";
import def from './default';
`
	decls := parseImports(src)
	if assert.Len(t, decls, 2) {
		assert.Equal(t, []string{"a", "b"}, decls[0].names)
		assert.Equal(t, "./x", decls[0].path)
		assert.Equal(t, byte('\''), decls[0].quote)
		assert.Equal(t, []string{"c"}, decls[1].names)
		assert.Equal(t, "pkg", decls[1].path)
		assert.Equal(t, byte('"'), decls[1].quote)
	}
	assert.True(t, strings.Contains(src, "import def"), "default imports stay out of the grammar")
}
