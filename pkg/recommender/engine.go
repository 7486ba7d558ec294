package recommender

import (
	"context"
	"fmt"
	"sort"
	"sync/atomic"

	"learning-buddy-be/internal/dto"
	"learning-buddy-be/internal/entity"
	"learning-buddy-be/internal/pkg/logger"
)

const (
	maxRecommendedCourses = 10
	maxCompletedSkills    = 10
	maxWeakAreas          = 5
)

// Catalog is the read side of the store the engine needs.
type Catalog interface {
	Courses(ctx context.Context) ([]*entity.Course, error)
	CoursesInLearningPaths(ctx context.Context, learningPathIDs []int) ([]*entity.Course, error)
	LearningPaths(ctx context.Context, learningPathIDs []int) ([]*entity.LearningPath, error)
	SkillKeywords(ctx context.Context) ([]*entity.SkillKeyword, error)
}

// Engine is the rule-based recommender. The keyword index is loaded once at
// construction and only replaced by Reload; requests read the current
// snapshot and never mutate it.
type Engine struct {
	catalog Catalog
	logger  logger.ILogger
	index   atomic.Pointer[KeywordIndex]
}

type scoredCourse struct {
	course *entity.Course
	score  int
	reason string
}

func NewEngine(ctx context.Context, catalog Catalog, log logger.ILogger) (*Engine, error) {
	e := &Engine{
		catalog: catalog,
		logger:  log,
	}
	if _, err := e.Reload(ctx); err != nil {
		return nil, err
	}
	return e, nil
}

// Reload swaps in a fresh keyword snapshot and returns its size.
func (e *Engine) Reload(ctx context.Context) (int, error) {
	keywords, err := e.catalog.SkillKeywords(ctx)
	if err != nil {
		return 0, fmt.Errorf("load skill keywords: %w", err)
	}
	idx := NewKeywordIndex(keywords)
	e.index.Store(idx)

	e.logger.Info("RECOMMENDER", "Skill keyword index loaded", map[string]interface{}{
		"keywords": idx.Len(),
	})
	return idx.Len(), nil
}

// Index returns the current keyword snapshot.
func (e *Engine) Index() *KeywordIndex {
	return e.index.Load()
}

func (e *Engine) ExtractCompletedSkills(progress []*entity.StudentProgress) *SkillMapping {
	return ExtractCompletedSkills(progress, e.Index())
}

func (e *Engine) IdentifyWeakSkills(progress []*entity.StudentProgress) *SkillMapping {
	return IdentifyWeakSkills(progress, e.Index())
}

// GetRecommendations ranks the full catalog for one learner.
func (e *Engine) GetRecommendations(ctx context.Context, email string, progress []*entity.StudentProgress, prefs Preferences) (*dto.RecommendationResponse, error) {
	index := e.Index()
	completed := ExtractCompletedSkills(progress, index)
	weak := IdentifyWeakSkills(progress, index)

	courses, err := e.catalog.Courses(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch courses: %w", err)
	}

	scored := make([]scoredCourse, 0, len(courses))
	for _, c := range courses {
		if c == nil {
			continue
		}
		score := ScoreCourse(c, completed, weak, prefs)
		if score <= 0 {
			continue
		}
		scored = append(scored, scoredCourse{
			course: c,
			score:  score,
			reason: RecommendationReason(c, completed, weak),
		})
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].score > scored[j].score
	})
	if len(scored) > maxRecommendedCourses {
		scored = scored[:maxRecommendedCourses]
	}

	paths, err := e.recommendedLearningPaths(ctx, scored)
	if err != nil {
		return nil, err
	}

	res := &dto.RecommendationResponse{
		RecommendedCourses:       make([]dto.RecommendedCourse, 0, len(scored)),
		RecommendedLearningPaths: paths,
		SkillAnalysis: dto.SkillAnalysis{
			CompletedSkills: completed.Head(maxCompletedSkills),
			WeakAreas:       weak.Head(maxWeakAreas),
		},
	}
	for _, sc := range scored {
		res.RecommendedCourses = append(res.RecommendedCourses, dto.RecommendedCourse{
			CourseId:       sc.course.CourseId,
			CourseName:     sc.course.CourseName,
			LearningPathId: sc.course.LearningPathId,
			Level:          sc.course.CourseLevelStr,
			Hours:          sc.course.HoursToStudy,
			Score:          sc.score,
			Reason:         sc.reason,
		})
	}

	e.logger.Debug("RECOMMENDER", "Recommendations built", map[string]interface{}{
		"email":            email,
		"courses_scored":   len(courses),
		"courses_returned": len(res.RecommendedCourses),
		"completed_skills": completed.Len(),
		"weak_skills":      weak.Len(),
	})

	return res, nil
}

func (e *Engine) recommendedLearningPaths(ctx context.Context, top []scoredCourse) ([]dto.RecommendedLearningPath, error) {
	seen := make(map[int]bool)
	ids := make([]int, 0)
	for _, sc := range top {
		id := sc.course.LearningPathId
		if id == 0 || seen[id] {
			continue
		}
		seen[id] = true
		ids = append(ids, id)
	}

	out := make([]dto.RecommendedLearningPath, 0, len(ids))
	if len(ids) == 0 {
		return out, nil
	}

	lps, err := e.catalog.LearningPaths(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("fetch learning paths: %w", err)
	}
	for _, lp := range lps {
		out = append(out, dto.RecommendedLearningPath{
			LearningPathId:   lp.LearningPathId,
			LearningPathName: lp.LearningPathName,
		})
	}
	return out, nil
}
