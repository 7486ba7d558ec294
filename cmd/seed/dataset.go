package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"math"
	"os"
	"strconv"
	"strings"

	"learning-buddy-be/internal/entity"
	"learning-buddy-be/internal/repository/unitofwork"

	"github.com/xuri/excelize/v2"
)

// Sheet names of the two platform workbooks.
const (
	sheetLearningPath = "Learning Path"
	sheetCourse       = "Course"
	sheetTutorials    = "Tutorials"
	sheetCourseLevel  = "Course Level"

	sheetInterestQuestions = "Current Interest Questions"
	sheetTechQuestions     = "Current Tech Questions"
	sheetSkillKeywords     = "Skill Keywords"
	sheetStudentProgress   = "Student Progress"
)

// Cell texts read as empty, the same set pandas treats as NaN.
var naValues = map[string]struct{}{
	"#N/A": {}, "#N/A N/A": {}, "#NA": {}, "-1.#IND": {}, "-1.#QNAN": {}, "-NaN": {}, "-nan": {},
	"1.#IND": {}, "1.#QNAN": {}, "<NA>": {}, "N/A": {}, "NA": {}, "NULL": {}, "NaN": {}, "None": {},
	"n/a": {}, "nan": {}, "null": {},
}

// Dataset holds one slice per table. A nil slice means the sheet (or its
// whole workbook) was absent and the table is left untouched.
type Dataset struct {
	LearningPaths     []*entity.LearningPath
	Courses           []*entity.Course
	Tutorials         []*entity.Tutorial
	CourseLevels      []*entity.CourseLevel
	SkillKeywords     []*entity.SkillKeyword
	StudentProgress   []*entity.StudentProgress
	InterestQuestions []*entity.InterestQuestion
	TechQuestions     []*entity.TechQuestion

	Missing []string
}

// cleanValue turns a raw cell into nil, int, float64 or string. Empty and NaN
// cells are nil. Texts holding a '.' become floats, other numbers become ints
// when they are whole.
func cleanValue(raw string) interface{} {
	if raw == "" {
		return nil
	}
	if _, na := naValues[raw]; na {
		return nil
	}

	trimmed := strings.TrimSpace(raw)
	if n, err := strconv.Atoi(trimmed); err == nil {
		return n
	}
	f, err := strconv.ParseFloat(trimmed, 64)
	if err != nil || math.IsInf(f, 0) {
		return raw
	}
	if math.IsNaN(f) {
		return nil
	}
	if !strings.Contains(trimmed, ".") && f == math.Trunc(f) && math.Abs(f) <= math.MaxInt32 {
		return int(f)
	}
	return f
}

type record map[string]interface{}

// rowReader converts one cleaned row and keeps the first conversion error.
type rowReader struct {
	sheet string
	line  int
	rec   record
	err   error
}

func (r *rowReader) fail(col string, v interface{}, want string) {
	if r.err == nil {
		r.err = fmt.Errorf("sheet %q row %d column %s: %v is not %s", r.sheet, r.line, col, v, want)
	}
}

func (r *rowReader) str(col string) string {
	switch v := r.rec[col].(type) {
	case nil:
		return ""
	case string:
		return v
	case int:
		return strconv.Itoa(v)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	default:
		return fmt.Sprint(v)
	}
}

func (r *rowReader) integer(col string) int {
	switch v := r.rec[col].(type) {
	case nil:
		return 0
	case int:
		return v
	case float64:
		if v == math.Trunc(v) && math.Abs(v) <= math.MaxInt32 {
			return int(v)
		}
	}
	r.fail(col, r.rec[col], "an integer")
	return 0
}

func (r *rowReader) number(col string) float64 {
	if p := r.numberPtr(col); p != nil {
		return *p
	}
	return 0
}

func (r *rowReader) numberPtr(col string) *float64 {
	switch v := r.rec[col].(type) {
	case nil:
		return nil
	case int:
		f := float64(v)
		return &f
	case float64:
		return &v
	}
	r.fail(col, r.rec[col], "a number")
	return nil
}

// openWorkbook returns nil without error when path does not exist.
func openWorkbook(path string) (*excelize.File, error) {
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, err
	}
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	return f, nil
}

// readSheet returns the cleaned rows under the header row. ok is false when
// the workbook is nil or has no such sheet. Blank rows are skipped.
func readSheet(f *excelize.File, sheet string) (rows []*rowReader, ok bool, err error) {
	if f == nil {
		return nil, false, nil
	}
	idx, err := f.GetSheetIndex(sheet)
	if err != nil {
		return nil, false, err
	}
	if idx == -1 {
		return nil, false, nil
	}

	raw, err := f.GetRows(sheet, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, false, fmt.Errorf("read sheet %q: %w", sheet, err)
	}
	rows = []*rowReader{}
	if len(raw) == 0 {
		return rows, true, nil
	}

	header := raw[0]
	for i, cells := range raw[1:] {
		rec := record{}
		blank := true
		for c, col := range header {
			col = strings.TrimSpace(col)
			if col == "" {
				continue
			}
			var v interface{}
			if c < len(cells) {
				v = cleanValue(cells[c])
			}
			if v != nil {
				blank = false
			}
			rec[col] = v
		}
		if blank {
			continue
		}
		rows = append(rows, &rowReader{sheet: sheet, line: i + 2, rec: rec})
	}
	return rows, true, nil
}

// loadSheet builds one entity per row. A missing sheet records table in
// ds.Missing and yields nil.
func loadSheet[E any](f *excelize.File, sheet, table string, ds *Dataset, build func(*rowReader) *E) ([]*E, error) {
	rows, ok, err := readSheet(f, sheet)
	if err != nil {
		return nil, err
	}
	if !ok {
		ds.Missing = append(ds.Missing, table)
		return nil, nil
	}

	out := make([]*E, 0, len(rows))
	for _, r := range rows {
		e := build(r)
		if r.err != nil {
			return nil, r.err
		}
		out = append(out, e)
	}
	return out, nil
}

// LoadDataset reads the learning path mapping workbook and the resource
// workbook. Either path may point to a missing file.
func LoadDataset(learningPathFile, resourceFile string) (*Dataset, error) {
	ds := &Dataset{}

	lp, err := openWorkbook(learningPathFile)
	if err != nil {
		return nil, err
	}
	if lp != nil {
		defer lp.Close()
	}
	res, err := openWorkbook(resourceFile)
	if err != nil {
		return nil, err
	}
	if res != nil {
		defer res.Close()
	}

	if ds.LearningPaths, err = loadSheet(lp, sheetLearningPath, "learning_paths", ds, func(r *rowReader) *entity.LearningPath {
		return &entity.LearningPath{
			LearningPathId:   r.integer("learning_path_id"),
			LearningPathName: r.str("learning_path_name"),
		}
	}); err != nil {
		return nil, err
	}

	if ds.Courses, err = loadSheet(lp, sheetCourse, "courses", ds, func(r *rowReader) *entity.Course {
		return &entity.Course{
			CourseId:       r.integer("course_id"),
			LearningPathId: r.integer("learning_path_id"),
			CourseName:     r.str("course_name"),
			CourseLevelStr: r.str("course_level_str"),
			HoursToStudy:   r.number("hours_to_study"),
		}
	}); err != nil {
		return nil, err
	}

	if ds.Tutorials, err = loadSheet(lp, sheetTutorials, "tutorials", ds, func(r *rowReader) *entity.Tutorial {
		return &entity.Tutorial{
			TutorialId:    r.integer("tutorial_id"),
			CourseId:      r.integer("course_id"),
			TutorialTitle: r.str("tutorial_title"),
		}
	}); err != nil {
		return nil, err
	}

	if ds.CourseLevels, err = loadSheet(lp, sheetCourseLevel, "course_levels", ds, func(r *rowReader) *entity.CourseLevel {
		return &entity.CourseLevel{Id: r.integer("id"), CourseLevel: r.str("course_level")}
	}); err != nil {
		return nil, err
	}

	if ds.InterestQuestions, err = loadSheet(res, sheetInterestQuestions, "interest_questions", ds, func(r *rowReader) *entity.InterestQuestion {
		return &entity.InterestQuestion{
			QuestionDesc: r.str("question_desc"),
			OptionText:   r.str("option_text"),
			Category:     r.str("category"),
		}
	}); err != nil {
		return nil, err
	}

	if ds.TechQuestions, err = loadSheet(res, sheetTechQuestions, "tech_questions", ds, func(r *rowReader) *entity.TechQuestion {
		return &entity.TechQuestion{
			TechCategory:  r.str("tech_category"),
			Difficulty:    r.str("difficulty"),
			QuestionDesc:  r.str("question_desc"),
			Option1:       r.str("option_1"),
			Option2:       r.str("option_2"),
			Option3:       r.str("option_3"),
			Option4:       r.str("option_4"),
			CorrectAnswer: r.str("correct_answer"),
		}
	}); err != nil {
		return nil, err
	}

	if ds.SkillKeywords, err = loadSheet(res, sheetSkillKeywords, "skill_keywords", ds, func(r *rowReader) *entity.SkillKeyword {
		return &entity.SkillKeyword{Id: r.str("id"), Keyword: r.str("keyword")}
	}); err != nil {
		return nil, err
	}

	if ds.StudentProgress, err = loadSheet(res, sheetStudentProgress, "student_progress", ds, func(r *rowReader) *entity.StudentProgress {
		return &entity.StudentProgress{
			Name:               r.str("name"),
			Email:              r.str("email"),
			CourseName:         r.str("course_name"),
			ActiveTutorials:    r.integer("active_tutorials"),
			CompletedTutorials: r.integer("completed_tutorials"),
			IsGraduated:        r.integer("is_graduated"),
			ExamScore:          r.numberPtr("exam_score"),
		}
	}); err != nil {
		return nil, err
	}

	return ds, nil
}

// SeedResult is the row count written per table.
type SeedResult map[string]int

// Seed replaces every present table inside one transaction.
func Seed(ctx context.Context, uowFactory unitofwork.RepositoryFactory, ds *Dataset) (SeedResult, error) {
	uow := uowFactory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	result := SeedResult{}

	if ds.LearningPaths != nil {
		if err := uow.LearningPathRepository().ReplaceAll(ctx, ds.LearningPaths); err != nil {
			return nil, fmt.Errorf("learning_paths: %w", err)
		}
		result["learning_paths"] = len(ds.LearningPaths)
	}
	if ds.Courses != nil {
		if err := uow.CourseRepository().ReplaceAll(ctx, ds.Courses); err != nil {
			return nil, fmt.Errorf("courses: %w", err)
		}
		result["courses"] = len(ds.Courses)
	}
	if ds.Tutorials != nil {
		if err := uow.TutorialRepository().ReplaceAll(ctx, ds.Tutorials); err != nil {
			return nil, fmt.Errorf("tutorials: %w", err)
		}
		result["tutorials"] = len(ds.Tutorials)
	}
	if ds.CourseLevels != nil {
		if err := uow.CourseLevelRepository().ReplaceAll(ctx, ds.CourseLevels); err != nil {
			return nil, fmt.Errorf("course_levels: %w", err)
		}
		result["course_levels"] = len(ds.CourseLevels)
	}
	if ds.SkillKeywords != nil {
		if err := uow.SkillKeywordRepository().ReplaceAll(ctx, ds.SkillKeywords); err != nil {
			return nil, fmt.Errorf("skill_keywords: %w", err)
		}
		result["skill_keywords"] = len(ds.SkillKeywords)
	}
	if ds.StudentProgress != nil {
		if err := uow.StudentProgressRepository().ReplaceAll(ctx, ds.StudentProgress); err != nil {
			return nil, fmt.Errorf("student_progress: %w", err)
		}
		result["student_progress"] = len(ds.StudentProgress)
	}
	if ds.InterestQuestions != nil {
		if err := uow.QuestionRepository().ReplaceInterestQuestions(ctx, ds.InterestQuestions); err != nil {
			return nil, fmt.Errorf("interest_questions: %w", err)
		}
		result["interest_questions"] = len(ds.InterestQuestions)
	}
	if ds.TechQuestions != nil {
		if err := uow.QuestionRepository().ReplaceTechQuestions(ctx, ds.TechQuestions); err != nil {
			return nil, fmt.Errorf("tech_questions: %w", err)
		}
		result["tech_questions"] = len(ds.TechQuestions)
	}

	if err := uow.Commit(); err != nil {
		return nil, err
	}
	return result, nil
}
