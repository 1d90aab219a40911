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

package operation

import (
	"context"

	"github.com/rs/zerolog"
	"github.com/walteh/campaignrefs/pkg/log"
	"github.com/walteh/campaignrefs/pkg/status"
)

// 📊 Summary totals the results of a run
type Summary struct {
	Results   []Result
	Updated   int
	Unchanged int
	Failed    int
}

// 🏃 Runner executes jobs one after another
type Runner struct {
	updater *Updater
	logger  *log.Logger
}

// 🏗️ NewRunner creates a new runner
func NewRunner(logger *log.Logger) (*Runner, error) {
	updater, err := NewUpdater(Options{Logger: logger})
	if err != nil {
		return nil, err
	}
	return NewRunnerWithUpdater(updater, logger), nil
}

// 🏗️ NewRunnerWithUpdater creates a runner around an existing updater
func NewRunnerWithUpdater(updater *Updater, logger *log.Logger) *Runner {
	return &Runner{
		updater: updater,
		logger:  logger,
	}
}

// 🏃 Run processes every job in order. A failed job never stops the run; each file's
// update is independent and final.
func (r *Runner) Run(ctx context.Context, jobs []Job) Summary {
	logger := zerolog.Ctx(ctx)

	var sum Summary
	for _, job := range jobs {
		if len(job.Rules) == 0 {
			r.logger.Warningf("no rules apply to %s", job.Name)
		}

		logger.Debug().Str("job", job.Name).Str("category", job.Category.String()).Msg("running job")

		res := r.updater.UpdateFile(ctx, job.Path, job.Rules)
		sum.Results = append(sum.Results, res)

		switch res.Status {
		case status.StatusUpdated:
			sum.Updated++
		case status.StatusFailed:
			sum.Failed++
		default:
			sum.Unchanged++
		}
	}

	return sum
}
