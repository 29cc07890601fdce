package service

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"careervr-be/internal/dto"
	"careervr-be/internal/pkg/logger"
	"careervr-be/internal/repository/file"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCatalog(t *testing.T) (ICatalogService, string) {
	dir := t.TempDir()
	defaults := []dto.VRJob{{Id: "job_1", Title: "Phi công", VideoId: "W0ixQ59o-iI"}}
	svc := NewCatalogService(
		file.NewJSONStore(filepath.Join(dir, "vr_jobs.json"), defaults),
		file.NewJSONStore[dto.Submission](filepath.Join(dir, "submissions.json"), nil),
		defaults,
		logger.NewNopLogger(),
	)
	return svc, dir
}

func TestCatalogService_Jobs(t *testing.T) {
	svc, _ := newCatalog(t)
	ctx := context.Background()

	jobs, err := svc.ListJobs(ctx)
	require.NoError(t, err)
	assert.Len(t, jobs, 1)

	count, err := svc.ReplaceJobs(ctx, []dto.VRJob{
		{Id: "job_9", Title: "Đầu bếp", VideoId: "abc"},
		{Id: "job_10", Title: "Nhà báo", VideoId: "def"},
	})
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	jobs, err = svc.ListJobs(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Đầu bếp", jobs[0].Title)
}

func TestCatalogService_CorruptJobsFallBackToDefaults(t *testing.T) {
	svc, dir := newCatalog(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "vr_jobs.json"), []byte("oops"), 0644))

	jobs, err := svc.ListJobs(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "job_1", jobs[0].Id)
}

func TestCatalogService_Submissions(t *testing.T) {
	svc, _ := newCatalog(t)
	ctx := context.Background()

	subs, err := svc.ListSubmissions(ctx)
	require.NoError(t, err)
	assert.Empty(t, subs)

	require.NoError(t, svc.AddSubmission(ctx, &dto.Submission{
		Riasec:  []string{"R", "I", "A"},
		Scores:  map[string]int{"R": 30},
		Answers: []int{1, 2, 3},
		Time:    "2026-10-18T08:00:00Z",
	}))
	require.NoError(t, svc.AddSubmission(ctx, &dto.Submission{Name: "Bình", Time: "t2"}))

	subs, err = svc.ListSubmissions(ctx)
	require.NoError(t, err)
	require.Len(t, subs, 2)
	assert.Equal(t, "Ẩn danh", subs[0].Name)
	assert.Equal(t, "-", subs[0].Class)
	assert.Equal(t, "-", subs[0].School)
	assert.Equal(t, "Bình", subs[1].Name)
}
