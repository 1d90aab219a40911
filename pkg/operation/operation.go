package operation

import (
	"bytes"
	"context"

	"github.com/rs/zerolog"
	"github.com/walteh/campaignrefs/pkg/log"
	"github.com/walteh/campaignrefs/pkg/status"
	"github.com/walteh/campaignrefs/pkg/text"
	"gitlab.com/tozd/go/errors"
)

// 🎯 Result is the outcome of rewriting one file
type Result struct {
	Path         string            // Absolute file path
	Status       status.FileStatus // Unchanged, updated or failed
	Replacements int               // Number of matches replaced
	Err          error             // Why the rewrite failed, nil otherwise
}

// Updated reports whether the file was written back
func (r Result) Updated() bool {
	return r.Status == status.StatusUpdated
}

// 🔧 Options contains configuration for the updater
type Options struct {
	// Logger reports every file that changed or failed
	Logger *log.Logger
	// Files reads and overwrites files, defaults to status.NewManager()
	Files status.FileManager
	// Replacer applies the rules, defaults to text.NewRegexReplacer()
	Replacer text.TextReplacer
}

// 🎮 Updater applies replacement rules to files on disk
type Updater struct {
	logger   *log.Logger
	files    status.FileManager
	replacer text.TextReplacer
}

// 🏭 NewUpdater creates a new updater with the given options
func NewUpdater(opts Options) (*Updater, error) {
	if opts.Logger == nil {
		return nil, errors.Errorf("logger is required")
	}
	if opts.Files == nil {
		opts.Files = status.NewManager()
	}
	if opts.Replacer == nil {
		opts.Replacer = text.NewRegexReplacer()
	}
	return &Updater{
		logger:   opts.Logger,
		files:    opts.Files,
		replacer: opts.Replacer,
	}, nil
}

// UpdateFile rewrites path with rules using the logger found in ctx.
func UpdateFile(ctx context.Context, path string, rules []text.ReplacementRule) Result {
	u := &Updater{
		logger:   log.FromContext(ctx),
		files:    status.NewManager(),
		replacer: text.NewRegexReplacer(),
	}
	return u.UpdateFile(ctx, path, rules)
}

// 📄 UpdateFile reads path, applies rules in order and writes the result back only when the
// content changed. Failures never escape: they are reported and returned as StatusFailed.
func (u *Updater) UpdateFile(ctx context.Context, path string, rules []text.ReplacementRule) Result {
	res := u.updateFile(ctx, path, rules)
	u.logger.LogFileOperation(ctx, log.FileOperation{
		Path:         res.Path,
		Status:       res.Status,
		Replacements: res.Replacements,
		Err:          res.Err,
	})
	return res
}

func (u *Updater) updateFile(ctx context.Context, path string, rules []text.ReplacementRule) Result {
	logger := zerolog.Ctx(ctx)
	logger.Debug().Str("file", path).Int("rules", len(rules)).Msg("updating file")

	fail := func(err error) Result {
		return Result{Path: path, Status: status.StatusFailed, Err: err}
	}

	content, err := u.files.ReadFile(ctx, path)
	if err != nil {
		return fail(err)
	}

	replaced, err := u.replacer.ReplaceText(ctx, bytes.NewReader(content), rules)
	if err != nil {
		return fail(errors.Errorf("applying rules: %w", err))
	}

	if !replaced.WasModified {
		return Result{Path: path, Status: status.StatusUnchanged, Replacements: replaced.ReplacementCount}
	}

	if err := u.files.OverwriteFile(ctx, path, replaced.ModifiedContent); err != nil {
		return fail(err)
	}

	return Result{Path: path, Status: status.StatusUpdated, Replacements: replaced.ReplacementCount}
}
