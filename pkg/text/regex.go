package text

import (
	"bytes"
	"context"
	"io"
	"path/filepath"
	"regexp"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
)

var _ TextReplacer = (*RegexReplacer)(nil)

// RegexReplacer implements TextReplacer with regular expression patterns
type RegexReplacer struct{}

// NewRegexReplacer creates a new RegexReplacer
func NewRegexReplacer() *RegexReplacer {
	return &RegexReplacer{}
}

// ReplaceText implements TextReplacer.ReplaceText.
// Each rule runs over the output of the previous one, so a later rule sees text already
// rewritten by an earlier rule.
func (r *RegexReplacer) ReplaceText(ctx context.Context, content io.Reader, rules []ReplacementRule) (*ReplacementResult, error) {
	originalContent, err := io.ReadAll(content)
	if err != nil {
		return nil, errors.Errorf("reading content: %w", err)
	}

	result := &ReplacementResult{
		OriginalContent: originalContent,
		ModifiedContent: originalContent,
	}

	currentContent := string(originalContent)
	for i, rule := range rules {
		if rule.Pattern == "" {
			continue
		}

		re, err := regexp.Compile(rule.Pattern)
		if err != nil {
			return nil, errors.Errorf("compiling rule %d pattern %q: %w", i, rule.Pattern, err)
		}

		matches := len(re.FindAllStringIndex(currentContent, -1))
		if matches == 0 {
			continue
		}

		zerolog.Ctx(ctx).Trace().Int("rule", i).Int("matches", matches).Msg("applying rule")

		currentContent = re.ReplaceAllLiteralString(currentContent, rule.Replacement)
		result.ReplacementCount += matches
	}

	result.ModifiedContent = []byte(currentContent)
	result.WasModified = !bytes.Equal(result.OriginalContent, result.ModifiedContent)
	return result, nil
}

// ValidateRules implements TextReplacer.ValidateRules
func (r *RegexReplacer) ValidateRules(rules []ReplacementRule) error {
	for i, rule := range rules {
		if rule.Pattern == "" {
			return errors.Errorf("rule %d: pattern is required", i)
		}
		if _, err := regexp.Compile(rule.Pattern); err != nil {
			return errors.Errorf("rule %d: invalid pattern: %w", i, err)
		}
		if rule.FileFilterGlob != "" && !doublestar.ValidatePattern(rule.FileFilterGlob) {
			return errors.Errorf("rule %d: invalid file_filter_glob %q", i, rule.FileFilterGlob)
		}
	}
	return nil
}

// ForFile returns the rules whose FileFilterGlob matches name, keeping their order.
// name is relative to the project root.
func ForFile(rules []ReplacementRule, name string) ([]ReplacementRule, error) {
	name = filepath.ToSlash(name)

	out := make([]ReplacementRule, 0, len(rules))
	for i, rule := range rules {
		if rule.FileFilterGlob == "" {
			out = append(out, rule)
			continue
		}
		matched, err := doublestar.Match(rule.FileFilterGlob, name)
		if err != nil {
			return nil, errors.Errorf("matching rule %d glob %q: %w", i, rule.FileFilterGlob, err)
		}
		if matched {
			out = append(out, rule)
		}
	}
	return out, nil
}
