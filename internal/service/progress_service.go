package service

import (
	"context"
	"math"
	"time"

	"learning-buddy-be/internal/dto"
	"learning-buddy-be/internal/entity"
	"learning-buddy-be/internal/pkg/logger"
	"learning-buddy-be/internal/pkg/serverutils"
	"learning-buddy-be/internal/repository/specification"
	"learning-buddy-be/internal/repository/unitofwork"
)

type IProgressService interface {
	GetProgress(ctx context.Context, query *dto.ProgressQuery) (*dto.LearnerProgressResponse, error)
	GetStats(ctx context.Context, email string) (*dto.ProgressStatsResponse, error)
	UpdateProgress(ctx context.Context, req *dto.UpdateProgressRequest) (*dto.ProgressResponse, error)
	GetActivity(ctx context.Context, query *dto.ActivityQuery) ([]dto.ProgressActivityResponse, error)
}

type progressService struct {
	uowFactory       unitofwork.RepositoryFactory
	publisherService IPublisherService
	logger           logger.ILogger
}

func NewProgressService(uowFactory unitofwork.RepositoryFactory, publisherService IPublisherService, logger logger.ILogger) IProgressService {
	return &progressService{
		uowFactory:       uowFactory,
		publisherService: publisherService,
		logger:           logger,
	}
}

func (s *progressService) GetProgress(ctx context.Context, query *dto.ProgressQuery) (*dto.LearnerProgressResponse, error) {
	if query.UserId == "" && query.Email == "" {
		return nil, serverutils.NewBadRequest("user_id or email required")
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	learner, err := findLearner(ctx, uow, query.UserId, query.Email)
	if err != nil {
		return nil, err
	}

	// A user_id with no learner behind it has no email to look progress up by
	email := query.Email
	if query.UserId != "" {
		email = ""
		if learner != nil {
			email = learner.Email
		}
	}

	res := &dto.LearnerProgressResponse{Progress: []dto.ProgressResponse{}}
	if learner != nil {
		res.User = &dto.ProgressUserInfo{
			UserId:              learner.Id,
			Name:                learner.Name,
			Email:               learner.Email,
			OnboardingCompleted: learner.OnboardingCompleted,
		}
	}
	if email == "" {
		return res, nil
	}

	progress, err := uow.StudentProgressRepository().FindAll(ctx, specification.ByEmail{Email: email})
	if err != nil {
		return nil, err
	}
	for _, p := range progress {
		res.Progress = append(res.Progress, toProgressResponse(p))
	}
	return res, nil
}

func (s *progressService) GetStats(ctx context.Context, email string) (*dto.ProgressStatsResponse, error) {
	if email == "" {
		return nil, serverutils.NewBadRequest("email required")
	}

	progress, err := s.uowFactory.NewUnitOfWork(ctx).StudentProgressRepository().FindAll(ctx, specification.ByEmail{Email: email})
	if err != nil {
		return nil, err
	}
	stats := computeStats(progress)
	return &stats, nil
}

func (s *progressService) UpdateProgress(ctx context.Context, req *dto.UpdateProgressRequest) (*dto.ProgressResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	record, err := uow.StudentProgressRepository().FindOne(ctx,
		specification.ByEmail{Email: req.Email},
		specification.ByCourseName{CourseName: req.CourseName},
	)
	if err != nil {
		return nil, err
	}
	if record == nil {
		record = &entity.StudentProgress{Email: req.Email, CourseName: req.CourseName}
	}

	if req.CompletedTutorials != nil {
		record.CompletedTutorials = *req.CompletedTutorials
	}
	if req.ActiveTutorials != nil {
		record.ActiveTutorials = *req.ActiveTutorials
	}
	if req.IsGraduated != nil {
		record.IsGraduated = *req.IsGraduated
	}
	if req.ExamScore != nil {
		record.ExamScore = req.ExamScore
	}
	record.UpdatedAt = time.Now()

	if err := uow.StudentProgressRepository().Save(ctx, record); err != nil {
		return nil, err
	}
	if err := uow.Commit(); err != nil {
		return nil, err
	}

	msg := &dto.ProgressUpdatedMessage{
		Email:              req.Email,
		CourseName:         req.CourseName,
		ActiveTutorials:    req.ActiveTutorials,
		CompletedTutorials: req.CompletedTutorials,
		IsGraduated:        req.IsGraduated,
		ExamScore:          req.ExamScore,
		OccurredAt:         record.UpdatedAt,
	}
	if err := s.publisherService.PublishProgressUpdated(ctx, msg); err != nil {
		s.logger.Warn("PROGRESS", "Failed to publish progress update", map[string]interface{}{
			"email": req.Email,
			"error": err.Error(),
		})
	}

	res := toProgressResponse(record)
	return &res, nil
}

func (s *progressService) GetActivity(ctx context.Context, query *dto.ActivityQuery) ([]dto.ProgressActivityResponse, error) {
	if query.Email == "" {
		return nil, serverutils.NewBadRequest("email required")
	}
	if query.Limit < 0 || query.Offset < 0 {
		return nil, serverutils.NewBadRequest("limit and offset must not be negative")
	}

	limit := query.Limit
	switch {
	case limit == 0:
		limit = dto.DefaultActivityLimit
	case limit > dto.MaxActivityLimit:
		limit = dto.MaxActivityLimit
	}

	activities, err := s.uowFactory.NewUnitOfWork(ctx).ProgressActivityRepository().FindAll(ctx,
		specification.ByEmail{Email: query.Email},
		specification.OrderBy{Field: "occurred_at", Desc: true},
		specification.Pagination{Limit: limit, Offset: query.Offset},
	)
	if err != nil {
		return nil, err
	}

	res := make([]dto.ProgressActivityResponse, 0, len(activities))
	for _, a := range activities {
		res = append(res, dto.ProgressActivityResponse{
			Id:                 a.Id,
			Email:              a.Email,
			CourseName:         a.CourseName,
			ActiveTutorials:    a.ActiveTutorials,
			CompletedTutorials: a.CompletedTutorials,
			IsGraduated:        a.IsGraduated,
			ExamScore:          a.ExamScore,
			OccurredAt:         a.OccurredAt,
		})
	}
	return res, nil
}

func computeStats(progress []*entity.StudentProgress) dto.ProgressStatsResponse {
	var stats dto.ProgressStatsResponse
	stats.TotalCourses = len(progress)
	for _, p := range progress {
		if p.IsGraduatedRecord() {
			stats.CompletedCourses++
		}
		stats.TotalTutorials += p.ActiveTutorials + p.CompletedTutorials
		stats.CompletedTutorials += p.CompletedTutorials
	}
	stats.InProgressCourses = stats.TotalCourses - stats.CompletedCourses
	if stats.TotalCourses > 0 {
		rate := float64(stats.CompletedCourses) / float64(stats.TotalCourses) * 100
		stats.CompletionRate = math.Round(rate*100) / 100
	}
	return stats
}

func toProgressResponse(p *entity.StudentProgress) dto.ProgressResponse {
	return dto.ProgressResponse{
		Name:               p.Name,
		Email:              p.Email,
		CourseName:         p.CourseName,
		ActiveTutorials:    p.ActiveTutorials,
		CompletedTutorials: p.CompletedTutorials,
		IsGraduated:        p.IsGraduated,
		ExamScore:          p.ExamScore,
		UpdatedAt:          p.UpdatedAt,
	}
}
