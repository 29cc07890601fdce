package service

import (
	"context"

	"careervr-be/internal/dto"
	"careervr-be/internal/pkg/logger"
	"careervr-be/internal/repository/file"
)

// ICatalogService manages the VR job catalog and the submission log. Both
// are whole-file collections: reads load everything, writes replace everything.
type ICatalogService interface {
	ListJobs(ctx context.Context) ([]dto.VRJob, error)
	ReplaceJobs(ctx context.Context, jobs []dto.VRJob) (int, error)
	ListSubmissions(ctx context.Context) ([]dto.Submission, error)
	AddSubmission(ctx context.Context, submission *dto.Submission) error
}

type catalogService struct {
	jobs        *file.JSONStore[dto.VRJob]
	submissions *file.JSONStore[dto.Submission]
	defaultJobs []dto.VRJob
	logger      logger.ILogger
}

func NewCatalogService(
	jobs *file.JSONStore[dto.VRJob],
	submissions *file.JSONStore[dto.Submission],
	defaultJobs []dto.VRJob,
	logger logger.ILogger,
) ICatalogService {
	return &catalogService{
		jobs:        jobs,
		submissions: submissions,
		defaultJobs: defaultJobs,
		logger:      logger,
	}
}

// ListJobs falls back to the built-in catalog when the file is unreadable.
func (s *catalogService) ListJobs(ctx context.Context) ([]dto.VRJob, error) {
	jobs, err := s.jobs.Load()
	if err != nil {
		s.logger.Error("CATALOG", "Error reading VR jobs", map[string]interface{}{
			"path":  s.jobs.Path(),
			"error": err.Error(),
		})
		return append([]dto.VRJob{}, s.defaultJobs...), nil
	}
	return jobs, nil
}

func (s *catalogService) ReplaceJobs(ctx context.Context, jobs []dto.VRJob) (int, error) {
	if err := s.jobs.Replace(jobs); err != nil {
		s.logger.Error("CATALOG", "Error writing VR jobs", map[string]interface{}{"error": err.Error()})
		return 0, err
	}
	s.logger.Info("CATALOG", "VR jobs replaced", map[string]interface{}{"count": len(jobs)})
	return len(jobs), nil
}

func (s *catalogService) ListSubmissions(ctx context.Context) ([]dto.Submission, error) {
	subs, err := s.submissions.Load()
	if err != nil {
		s.logger.Error("CATALOG", "Error reading submissions", map[string]interface{}{
			"path":  s.submissions.Path(),
			"error": err.Error(),
		})
		return []dto.Submission{}, nil
	}
	return subs, nil
}

func (s *catalogService) AddSubmission(ctx context.Context, submission *dto.Submission) error {
	submission.ApplyDefaults()
	err := s.submissions.Update(func(current []dto.Submission) []dto.Submission {
		return append(current, *submission)
	})
	if err != nil {
		s.logger.Error("CATALOG", "Error saving submission", map[string]interface{}{"error": err.Error()})
		return err
	}
	return nil
}
