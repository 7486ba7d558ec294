package service

import (
	"context"
	"strconv"

	"learning-buddy-be/internal/dto"
	"learning-buddy-be/internal/entity"
	"learning-buddy-be/internal/pkg/logger"
	"learning-buddy-be/internal/pkg/serverutils"
	"learning-buddy-be/internal/repository/specification"
	"learning-buddy-be/internal/repository/unitofwork"
	"learning-buddy-be/pkg/catalogapi"
)

const (
	tableLearningPaths = "learning_paths"
	tableCourses       = "courses"
	tableTutorials     = "tutorials"
	tableCourseLevels  = "course_levels"
)

type ICatalogService interface {
	GetLearningPaths(ctx context.Context) (*dto.CatalogResult[dto.LearningPathResponse], error)
	GetCourses(ctx context.Context, learningPathId string) (*dto.CatalogResult[dto.CourseResponse], error)
	GetTutorials(ctx context.Context, courseId string) (*dto.CatalogResult[dto.TutorialResponse], error)
	GetCourseLevels(ctx context.Context) (*dto.CatalogResult[dto.CourseLevelResponse], error)
}

type catalogService struct {
	uowFactory unitofwork.RepositoryFactory
	api        *catalogapi.Client
	logger     logger.ILogger
}

func NewCatalogService(uowFactory unitofwork.RepositoryFactory, api *catalogapi.Client, logger logger.ILogger) ICatalogService {
	return &catalogService{
		uowFactory: uowFactory,
		api:        api,
		logger:     logger,
	}
}

func (s *catalogService) GetLearningPaths(ctx context.Context) (*dto.CatalogResult[dto.LearningPathResponse], error) {
	return withFallback(ctx, s, tableLearningPaths, nil, func() ([]dto.LearningPathResponse, error) {
		lps, err := s.uowFactory.NewUnitOfWork(ctx).LearningPathRepository().FindAll(ctx)
		if err != nil {
			return nil, err
		}
		out := make([]dto.LearningPathResponse, 0, len(lps))
		for _, lp := range lps {
			out = append(out, toLearningPathResponse(lp))
		}
		return out, nil
	})
}

func (s *catalogService) GetCourses(ctx context.Context, learningPathId string) (*dto.CatalogResult[dto.CourseResponse], error) {
	filters := map[string]string{}
	if learningPathId != "" {
		filters["learning_path_id"] = learningPathId
	}

	return withFallback(ctx, s, tableCourses, filters, func() ([]dto.CourseResponse, error) {
		var specs []specification.Specification
		if learningPathId != "" {
			id, err := strconv.Atoi(learningPathId)
			if err != nil {
				return nil, serverutils.NewBadRequest("Invalid lp_id")
			}
			specs = append(specs, specification.ByLearningPathID{LearningPathID: id})
		}

		courses, err := s.uowFactory.NewUnitOfWork(ctx).CourseRepository().FindAll(ctx, specs...)
		if err != nil {
			return nil, err
		}
		out := make([]dto.CourseResponse, 0, len(courses))
		for _, c := range courses {
			out = append(out, toCourseResponse(c))
		}
		return out, nil
	})
}

func (s *catalogService) GetTutorials(ctx context.Context, courseId string) (*dto.CatalogResult[dto.TutorialResponse], error) {
	filters := map[string]string{}
	if courseId != "" {
		filters["course_id"] = courseId
	}

	return withFallback(ctx, s, tableTutorials, filters, func() ([]dto.TutorialResponse, error) {
		var specs []specification.Specification
		if courseId != "" {
			id, err := strconv.Atoi(courseId)
			if err != nil {
				return nil, serverutils.NewBadRequest("Invalid course_id")
			}
			specs = append(specs, specification.ByCourseID{CourseID: id})
		}

		tutorials, err := s.uowFactory.NewUnitOfWork(ctx).TutorialRepository().FindAll(ctx, specs...)
		if err != nil {
			return nil, err
		}
		out := make([]dto.TutorialResponse, 0, len(tutorials))
		for _, t := range tutorials {
			out = append(out, dto.TutorialResponse{
				TutorialId:    t.TutorialId,
				CourseId:      t.CourseId,
				TutorialTitle: t.TutorialTitle,
			})
		}
		return out, nil
	})
}

func (s *catalogService) GetCourseLevels(ctx context.Context) (*dto.CatalogResult[dto.CourseLevelResponse], error) {
	return withFallback(ctx, s, tableCourseLevels, nil, func() ([]dto.CourseLevelResponse, error) {
		levels, err := s.uowFactory.NewUnitOfWork(ctx).CourseLevelRepository().FindAll(ctx)
		if err != nil {
			return nil, err
		}
		out := make([]dto.CourseLevelResponse, 0, len(levels))
		for _, l := range levels {
			out = append(out, dto.CourseLevelResponse{Id: l.Id, CourseLevel: l.CourseLevel})
		}
		return out, nil
	})
}

// withFallback asks the remote catalog first and the database second. Client
// errors from the fallback win; any other fallback failure reports the remote
// error.
func withFallback[T any](
	ctx context.Context,
	s *catalogService,
	table string,
	filters map[string]string,
	fallback func() ([]T, error),
) (*dto.CatalogResult[T], error) {
	rows, remoteErr := catalogapi.Fetch[T](ctx, s.api, table, filters)
	if remoteErr == nil {
		return &dto.CatalogResult[T]{Items: rows, Source: dto.CatalogSourceRemote}, nil
	}

	if s.api.IsConfigured() {
		s.logger.Warn("CATALOG", "Remote catalog unavailable, falling back to database", map[string]interface{}{
			"table": table,
			"error": remoteErr.Error(),
		})
	}

	rows, err := fallback()
	if err != nil {
		if _, ok := serverutils.AsAppError(err); ok {
			return nil, err
		}
		s.logger.Error("CATALOG", "Database fallback failed", map[string]interface{}{
			"table": table,
			"error": err.Error(),
		})
		return nil, remoteErr
	}
	return &dto.CatalogResult[T]{Items: rows, Source: dto.CatalogSourceDatabase}, nil
}

func toLearningPathResponse(lp *entity.LearningPath) dto.LearningPathResponse {
	return dto.LearningPathResponse{
		LearningPathId:   lp.LearningPathId,
		LearningPathName: lp.LearningPathName,
	}
}

func toCourseResponse(c *entity.Course) dto.CourseResponse {
	return dto.CourseResponse{
		CourseId:       c.CourseId,
		LearningPathId: c.LearningPathId,
		CourseName:     c.CourseName,
		CourseLevelStr: c.CourseLevelStr,
		HoursToStudy:   c.HoursToStudy,
	}
}
