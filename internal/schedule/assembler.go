package schedule

import (
	"context"
	"net/url"

	"golang.org/x/sync/errgroup"

	"github.com/JonWolf1234/current-rms-schedule/internal/config"
	"github.com/JonWolf1234/current-rms-schedule/internal/logging"
	"github.com/JonWolf1234/current-rms-schedule/pkg/models"
)

// Fetcher is the slice of the Current RMS client the assembler needs.
type Fetcher interface {
	FetchAllPages(ctx context.Context, path, collectionKey string, baseParams url.Values) ([]map[string]interface{}, error)
}

// Assembler orchestrates the remote fetches, normalization and filtering
// behind the schedule endpoint. The configured mode is the single
// decision point for fallback-vs-surface on remote errors.
type Assembler struct {
	fetcher    Fetcher
	normalizer *Normalizer
	mode       string
	logger     logging.Logger
}

// NewAssembler creates an assembler in the given schedule mode.
func NewAssembler(fetcher Fetcher, mode string) *Assembler {
	return &Assembler{
		fetcher:    fetcher,
		normalizer: NewNormalizer(),
		mode:       mode,
		logger:     logging.GetGlobalLogger(),
	}
}

// Assemble builds the schedule payload for the inclusive [start, end]
// date range (YYYY-MM-DD). Parameter presence and format are the
// handler's responsibility; by the time Assemble runs, a remote failure
// is the only thing left that can go wrong.
func (a *Assembler) Assemble(ctx context.Context, start, end string) (*models.ScheduleResponse, error) {
	if a.mode == config.ModeMock {
		return MockSchedule(models.SourceMock), nil
	}

	var (
		rawJobs  []map[string]interface{}
		rawStaff []map[string]interface{}
	)

	// The two fetches are independent; results merge only after both
	// complete. One failing does not cancel the other.
	var g errgroup.Group
	g.Go(func() error {
		var err error
		rawJobs, err = a.fetcher.FetchAllPages(ctx, "/opportunities", "opportunities", nil)
		return err
	})
	g.Go(func() error {
		params := url.Values{}
		params.Set("filtermode", "resource")

		var err error
		rawStaff, err = a.fetcher.FetchAllPages(ctx, "/members", "members", params)
		return err
	})

	if err := g.Wait(); err != nil {
		if a.mode == config.ModeFallbackOnError {
			a.logger.Warn("Current RMS fetch failed, serving mock schedule", map[string]interface{}{
				"error": err.Error(),
			})
			return MockSchedule(models.SourceMockError), nil
		}
		return nil, err
	}

	jobs := make([]models.Job, 0, len(rawJobs))
	for _, raw := range rawJobs {
		jobs = append(jobs, a.normalizer.Job(raw))
	}
	jobs = FilterJobsByRange(jobs, start, end)

	if len(jobs) == 0 && a.mode == config.ModeFallbackOnError {
		a.logger.Info("No opportunities in requested range, serving mock schedule", map[string]interface{}{
			"start": start,
			"end":   end,
		})
		return MockSchedule(models.SourceMock), nil
	}

	staff := make([]models.StaffMember, 0, len(rawStaff))
	for _, raw := range rawStaff {
		staff = append(staff, a.normalizer.StaffMember(raw))
	}

	// Real staff-to-job assignment is not implemented anywhere; every job
	// gets an explicit empty entry so the front-end can key into the map
	// unconditionally.
	assignments := make(models.Assignments, len(jobs))
	for _, job := range jobs {
		assignments[job.ID] = []string{}
	}

	a.logger.Info("Schedule assembled from Current RMS", map[string]interface{}{
		"jobs":  len(jobs),
		"staff": len(staff),
		"start": start,
		"end":   end,
	})

	return &models.ScheduleResponse{
		Jobs:        jobs,
		Staff:       staff,
		Assignments: assignments,
		Source:      models.SourceCurrentRMS,
	}, nil
}
