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

package log

import (
	"context"
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/pterm/pterm"
	"github.com/rs/zerolog"
)

// 📢 UserLogger provides operator-facing feedback about the migration run,
// mirroring everything to a structured zerolog logger for debugging.
type UserLogger struct {
	zlog    zerolog.Logger
	console io.Writer
	convert *pterm.PrefixPrinter
	pending *pterm.PrefixPrinter
	fail    *pterm.PrefixPrinter
	warn    *pterm.PrefixPrinter
}

// 🎯 New creates a user logger writing console output to the given writer.
func New(ctx context.Context, console io.Writer) *UserLogger {
	return &UserLogger{
		zlog:    *zerolog.Ctx(ctx),
		console: console,
		convert: pterm.Success.WithPrefix(pterm.Prefix{Text: "🔄"}).WithWriter(console),
		pending: pterm.Info.WithPrefix(pterm.Prefix{Text: "👀"}).WithWriter(console),
		fail:    pterm.Error.WithPrefix(pterm.Prefix{Text: "❌"}).WithWriter(console),
		warn:    pterm.Warning.WithPrefix(pterm.Prefix{Text: "⚠️"}).WithWriter(console),
	}
}

// 📝 FileConverted reports a file rewritten and persisted.
func (u *UserLogger) FileConverted(path string) {
	u.convert.Println("Converted " + path)
	u.zlog.Info().Str("path", path).Msg("file converted")
}

// 📝 FileWouldConvert reports a file that would change under dry-run.
func (u *UserLogger) FileWouldConvert(path string) {
	u.pending.Println("Would convert " + path)
	u.zlog.Info().Str("path", path).Msg("file would convert (dry-run)")
}

// 📝 FileError reports a per-file I/O failure. The run continues.
func (u *UserLogger) FileError(path string, err error) {
	u.fail.Println(fmt.Sprintf("Error processing %s: %v", path, err))
	u.zlog.Error().Err(err).Str("path", path).Msg("file processing failed")
}

// 📝 MissingRoot warns about a nonexistent root directory.
func (u *UserLogger) MissingRoot(root string) {
	u.warn.Println("Warning: directory does not exist: " + root)
	u.zlog.Warn().Str("root", root).Msg("root directory missing")
}

// 📝 ConfigError reports a configuration problem that stops the run.
func (u *UserLogger) ConfigError(err error) {
	u.fail.Println(fmt.Sprintf("Config error: %v", err))
	u.zlog.Error().Err(err).Msg("config error")
}

// 📊 Summary prints the count of modified files and one line per path.
func (u *UserLogger) Summary(modified []string) {
	fmt.Fprintf(u.console, "\n%s\n", color.New(color.Bold).Sprintf("%d files converted:", len(modified)))
	for _, path := range modified {
		fmt.Fprintf(u.console, "- %s\n", color.New(color.FgGreen).Sprint(path))
	}
	u.zlog.Info().Int("modified", len(modified)).Msg("run complete")
}
