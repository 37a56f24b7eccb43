// Copyright 2025 walteh LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package operation drives the migration over the filesystem: it enumerates
// candidate files under each configured root and runs the rewrite pipeline
// on them one at a time.
package operation

import (
	"context"
	"os"
	"path/filepath"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/rs/zerolog"
	"github.com/spf13/afero"
	"github.com/walteh/tslogmod/pkg/config"
	"github.com/walteh/tslogmod/pkg/log"
	"github.com/walteh/tslogmod/pkg/rewrite"
	"gitlab.com/tozd/go/errors"
)

// 🔧 Options contains configuration for the migrate operation
type Options struct {
	// Config is the tslogmod configuration
	Config *config.Config
	// FS is the filesystem to scan and write
	FS afero.Fs
	// Logger is the operator-facing logger
	Logger *log.UserLogger
	// DryRun reports changes without writing files
	DryRun bool
}

// 🎮 MigrateOperation rewrites legacy logging call sites across file trees.
type MigrateOperation struct {
	opts Options
}

// 🏭 New creates a migrate operation with the given options.
func New(opts Options) (*MigrateOperation, error) {
	if opts.Config == nil {
		return nil, errors.Errorf("config is required")
	}
	if opts.FS == nil {
		return nil, errors.Errorf("filesystem is required")
	}
	if opts.Logger == nil {
		return nil, errors.Errorf("logger is required")
	}
	return &MigrateOperation{opts: opts}, nil
}

// 🏃 Execute processes every root in order and returns the paths of modified
// files. Missing roots are warned about and skipped; per-file failures are
// logged and never stop the run. Files are processed strictly one at a time,
// in the traversal's enumeration order.
func (op *MigrateOperation) Execute(ctx context.Context) ([]string, error) {
	modified := []string{}
	for _, root := range op.opts.Config.Roots {
		exists, err := afero.DirExists(op.opts.FS, root)
		if err != nil || !exists {
			op.opts.Logger.MissingRoot(root)
			continue
		}

		files, err := op.collectFiles(ctx, root)
		if err != nil {
			return nil, errors.Errorf("scanning %s: %w", root, err)
		}

		for _, path := range files {
			changed, err := op.processFile(ctx, path)
			if err != nil {
				op.opts.Logger.FileError(path, err)
				continue
			}
			if !changed {
				continue
			}
			modified = append(modified, path)
			if op.opts.DryRun {
				op.opts.Logger.FileWouldConvert(path)
			} else {
				op.opts.Logger.FileConverted(path)
			}
		}
	}
	return modified, nil
}

// 🔍 collectFiles walks one root and returns the files whose root-relative
// path matches the configured glob pattern.
func (op *MigrateOperation) collectFiles(ctx context.Context, root string) ([]string, error) {
	logger := zerolog.Ctx(ctx)

	var files []string
	walkErr := afero.Walk(op.opts.FS, root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			logger.Debug().Err(err).Str("path", path).Msg("skipping unreadable entry")
			return nil
		}
		if info.IsDir() {
			return nil
		}

		rel, err := filepath.Rel(root, path)
		if err != nil {
			return nil
		}
		matched, err := doublestar.Match(op.opts.Config.Pattern, filepath.ToSlash(rel))
		if err != nil {
			return errors.Errorf("matching pattern %q: %w", op.opts.Config.Pattern, err)
		}
		if matched {
			files = append(files, path)
		}
		return nil
	})
	if walkErr != nil {
		return nil, walkErr
	}

	logger.Debug().Str("root", root).Int("candidates", len(files)).Msg("collected candidate files")
	return files, nil
}

// 📄 processFile reads one file, runs the rewrite pipeline, and overwrites
// the file in place when the pipeline changed it. Under dry-run the change is
// reported but nothing is written.
func (op *MigrateOperation) processFile(ctx context.Context, path string) (bool, error) {
	info, err := op.opts.FS.Stat(path)
	if err != nil {
		return false, errors.Errorf("stating file: %w", err)
	}

	raw, err := afero.ReadFile(op.opts.FS, path)
	if err != nil {
		return false, errors.Errorf("reading file: %w", err)
	}

	result := rewrite.Transform(string(raw))
	zerolog.Ctx(ctx).Debug().
		Str("path", path).
		Bool("changed", result.Changed).
		Msg("transformed file")

	if !result.Changed {
		return false, nil
	}
	if op.opts.DryRun {
		return true, nil
	}

	if err := afero.WriteFile(op.opts.FS, path, []byte(result.Final), info.Mode()); err != nil {
		return false, errors.Errorf("writing file: %w", err)
	}
	return true, nil
}
