package operation

import (
	"path/filepath"

	"github.com/walteh/campaignrefs/pkg/config"
	"github.com/walteh/campaignrefs/pkg/rules"
	"github.com/walteh/campaignrefs/pkg/text"
	"gitlab.com/tozd/go/errors"
)

// Category tells which rule table a job uses
type Category int

const (
	CategoryBackend Category = iota
	CategoryVoterEnum
	CategoryFrontend
)

func (c Category) String() string {
	switch c {
	case CategoryBackend:
		return "backend"
	case CategoryVoterEnum:
		return "voter-enum"
	case CategoryFrontend:
		return "frontend"
	default:
		return "unknown"
	}
}

// 📦 Job pairs one file with the ordered rules applied to it
type Job struct {
	Name     string                 // Path relative to its project root
	Path     string                 // Absolute path on disk
	Category Category               // Which rule table the rules came from
	Rules    []text.ReplacementRule // Rules whose FileFilterGlob matches Name
}

// 🗺️ Plan returns the jobs of a migration in the order they run: the email service, the other
// backend files, the voter model, then the frontend files.
func Plan(layout *config.Layout) ([]Job, error) {
	if layout == nil {
		return nil, errors.Errorf("layout is required")
	}

	var jobs []Job
	add := func(root, name string, category Category, table []text.ReplacementRule) error {
		scoped, err := text.ForFile(table, name)
		if err != nil {
			return errors.Errorf("selecting rules for %s: %w", name, err)
		}
		jobs = append(jobs, Job{
			Name:     name,
			Path:     filepath.Join(root, filepath.FromSlash(name)),
			Category: category,
			Rules:    scoped,
		})
		return nil
	}

	if err := add(layout.BackendDir, rules.EmailServiceFile, CategoryBackend, rules.Backend()); err != nil {
		return nil, err
	}
	for _, name := range rules.BackendFiles() {
		if err := add(layout.BackendDir, name, CategoryBackend, rules.Backend()); err != nil {
			return nil, err
		}
	}
	if err := add(layout.BackendDir, rules.VoterModelFile, CategoryVoterEnum, rules.VoterEnum()); err != nil {
		return nil, err
	}
	for _, name := range rules.FrontendFiles() {
		if err := add(layout.FrontendDir, name, CategoryFrontend, rules.Frontend()); err != nil {
			return nil, err
		}
	}

	return jobs, nil
}
