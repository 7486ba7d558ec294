package service

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"learning-buddy-be/internal/dto"
	"learning-buddy-be/internal/pkg/logger"
	"learning-buddy-be/pkg/catalogapi"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCatalogFixture(t *testing.T, cfg catalogapi.Config) ICatalogService {
	t.Helper()
	f := newTestFactory(t)
	seedCatalog(t, f)
	log := logger.NewNopLogger()
	return NewCatalogService(f, catalogapi.NewClient(cfg, log), log)
}

func TestCatalogService_UnconfiguredRemoteServesDatabase(t *testing.T) {
	svc := newCatalogFixture(t, catalogapi.Config{})
	ctx := context.Background()

	lps, err := svc.GetLearningPaths(ctx)
	require.NoError(t, err)
	assert.Equal(t, dto.CatalogSourceDatabase, lps.Source)
	assert.Len(t, lps.Items, 3)

	courses, err := svc.GetCourses(ctx, "1")
	require.NoError(t, err)
	assert.Equal(t, dto.CatalogSourceDatabase, courses.Source)
	require.Len(t, courses.Items, 2)
	assert.Equal(t, "Belajar Dasar Python", courses.Items[0].CourseName)

	all, err := svc.GetCourses(ctx, "")
	require.NoError(t, err)
	assert.Len(t, all.Items, 4)

	tutorials, err := svc.GetTutorials(ctx, "1")
	require.NoError(t, err)
	assert.Len(t, tutorials.Items, 2)

	levels, err := svc.GetCourseLevels(ctx)
	require.NoError(t, err)
	assert.Len(t, levels.Items, 2)
}

func TestCatalogService_MalformedIdsAreBadRequests(t *testing.T) {
	svc := newCatalogFixture(t, catalogapi.Config{})
	ctx := context.Background()

	_, err := svc.GetCourses(ctx, "abc")
	assertAppError(t, err, http.StatusBadRequest, "Invalid lp_id")

	_, err = svc.GetTutorials(ctx, "x1")
	assertAppError(t, err, http.StatusBadRequest, "Invalid course_id")
}

func TestCatalogService_RemoteWins(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/rest/v1/courses", r.URL.Path)
		assert.Equal(t, "eq.9", r.URL.Query().Get("learning_path_id"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"course_id":900,"learning_path_id":9,"course_name":"Remote Course","course_level_str":"Mahir","hours_to_study":5}]`))
	}))
	t.Cleanup(srv.Close)

	svc := newCatalogFixture(t, catalogapi.Config{BaseURL: srv.URL, Key: "k"})

	res, err := svc.GetCourses(context.Background(), "9")
	require.NoError(t, err)
	assert.Equal(t, dto.CatalogSourceRemote, res.Source)
	require.Len(t, res.Items, 1)
	assert.Equal(t, 900, res.Items[0].CourseId)
}

func TestCatalogService_RemoteFailureFallsBack(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusBadGateway)
	}))
	t.Cleanup(srv.Close)

	svc := newCatalogFixture(t, catalogapi.Config{BaseURL: srv.URL, Key: "k"})

	res, err := svc.GetLearningPaths(context.Background())
	require.NoError(t, err)
	assert.Equal(t, dto.CatalogSourceDatabase, res.Source)
	assert.Len(t, res.Items, 3)
}
