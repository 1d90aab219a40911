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
	"os"
	"strings"
	"sync"

	"github.com/fatih/color"
	"github.com/pterm/pterm"
	"github.com/rs/zerolog"
	"github.com/walteh/campaignrefs/pkg/status"
)

// 📄 FileOperation represents one file rewrite for logging
type FileOperation struct {
	Path         string            // Absolute file path
	Status       status.FileStatus // What happened to the file
	Replacements int               // Number of matches replaced
	Err          error             // Failure detail, set when Status is StatusFailed
}

// 🎯 Logger handles user-facing console output plus structured diagnostics
type Logger struct {
	zlog    zerolog.Logger
	console io.Writer
	mu      sync.Mutex
}

// 🏭 New creates a new logger. Console lines go to console, diagnostics to stderr.
func New(console io.Writer, level zerolog.Level) *Logger {
	zlog := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger().Level(level)
	return &Logger{
		zlog:    zlog,
		console: console,
	}
}

// 🔑 contextKey is the type for context values
type contextKey struct{}

// 🎯 FromContext gets the logger from context
func FromContext(ctx context.Context) *Logger {
	logger, ok := ctx.Value(contextKey{}).(*Logger)
	if !ok {
		panic("logger not found in context")
	}
	return logger
}

// 🎯 NewContext adds the logger to context
func NewContext(ctx context.Context, l *Logger) context.Context {
	return context.WithValue(ctx, contextKey{}, l)
}

// Zerolog returns the diagnostic logger, for callers that want it in a context.
func (l *Logger) Zerolog() *zerolog.Logger {
	return &l.zlog
}

// 📝 LogFileOperation logs a file operation
func (l *Logger) LogFileOperation(ctx context.Context, op FileOperation) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if line, ok := status.FormatFileOperation(op.Path, op.Status, op.Err); ok {
		fmt.Fprintln(l.console, line)
	}

	ev := l.zlog.Debug()
	if op.Status == status.StatusFailed {
		ev = l.zlog.Error().Err(op.Err)
	}
	ev.Str("file", op.Path).
		Str("status", op.Status.String()).
		Int("replacements", op.Replacements).
		Msg("file operation")
}

// 📝 Total logs the number of files that were rewritten
func (l *Logger) Total(updated int) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintf(l.console, "\nTotal files updated: %s\n", color.New(color.Bold).Sprint(updated))
	l.zlog.Info().Int("updated", updated).Msg("migration complete")
}

// 📝 Note logs a titled list of items, one "- item" line each
func (l *Logger) Note(title string, items []string) {
	l.mu.Lock()
	defer l.mu.Unlock()

	bullets := make([]pterm.BulletListItem, 0, len(items))
	for _, item := range items {
		bullets = append(bullets, pterm.BulletListItem{
			Text:        item,
			Bullet:      "-",
			TextStyle:   pterm.NewStyle(),
			BulletStyle: pterm.NewStyle(),
		})
	}

	list, err := pterm.DefaultBulletList.WithItems(bullets).Srender()
	if err != nil {
		list = "- " + strings.Join(items, "\n- ") + "\n"
	}

	fmt.Fprintf(l.console, "\n%s\n%s", color.New(color.FgYellow).Sprint(title), list)
}

// 📝 Warning logs a warning message
func (l *Logger) Warning(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintf(l.console, "⚠️  %s\n", color.New(color.FgYellow).Sprint(msg))
	l.zlog.Warn().Msg(msg)
}

// 📝 Warningf logs a formatted warning message
func (l *Logger) Warningf(format string, args ...interface{}) {
	l.Warning(fmt.Sprintf(format, args...))
}
