package service

import (
	"context"
	"fmt"
	"sort"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"admit-desk/backend/config"
	"admit-desk/backend/internal/model"
	"admit-desk/backend/internal/repository"
	pkgerrors "admit-desk/backend/pkg/errors"
)

// ── Mock CandidateRepository ──

type mockCandidateRepo struct {
	candidates map[string]*model.Candidate // key: candidate_id
	seq        int
}

func newMockCandidateRepo() *mockCandidateRepo {
	return &mockCandidateRepo{candidates: make(map[string]*model.Candidate)}
}

func (m *mockCandidateRepo) Create(_ context.Context, c *model.Candidate) error {
	for _, existing := range m.candidates {
		if existing.ContactKey == c.ContactKey {
			return gorm.ErrDuplicatedKey
		}
	}
	if c.CandidateID == "" {
		m.seq++
		c.CandidateID = fmt.Sprintf("cand-%03d", m.seq)
	}
	m.candidates[c.CandidateID] = c
	return nil
}

func (m *mockCandidateRepo) GetByID(_ context.Context, id string) (*model.Candidate, error) {
	if c, ok := m.candidates[id]; ok {
		return c, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockCandidateRepo) GetByContactKey(_ context.Context, contactKey string) (*model.Candidate, error) {
	key := model.NormalizeContactKey(contactKey)
	for _, c := range m.candidates {
		if c.ContactKey == key {
			return c, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockCandidateRepo) Update(_ context.Context, c *model.Candidate) error {
	m.candidates[c.CandidateID] = c
	return nil
}

func (m *mockCandidateRepo) Delete(_ context.Context, id string, _ string) error {
	delete(m.candidates, id)
	return nil
}

// ── Mock JobRepository ──

type mockJobRepo struct {
	jobs   map[int64]*model.Job
	nextID int64
}

func newMockJobRepo() *mockJobRepo {
	return &mockJobRepo{jobs: make(map[int64]*model.Job), nextID: 1}
}

func (m *mockJobRepo) Create(_ context.Context, job *model.Job) error {
	for _, existing := range m.jobs {
		if existing.Code == job.Code {
			return gorm.ErrDuplicatedKey
		}
	}
	if job.JobID == 0 {
		job.JobID = m.nextID
	}
	if job.JobID >= m.nextID {
		m.nextID = job.JobID + 1
	}
	m.jobs[job.JobID] = job
	return nil
}

func (m *mockJobRepo) GetByID(_ context.Context, id int64) (*model.Job, error) {
	if j, ok := m.jobs[id]; ok {
		cp := *j
		return &cp, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockJobRepo) List(_ context.Context, includeInactive bool, offset, limit int) ([]model.Job, int64, error) {
	var all []model.Job
	for _, j := range m.jobs {
		if includeInactive || j.IsActive {
			all = append(all, *j)
		}
	}
	sort.Slice(all, func(i, k int) bool { return all[i].JobID < all[k].JobID })
	total := int64(len(all))
	if offset >= len(all) {
		return []model.Job{}, total, nil
	}
	end := offset + limit
	if end > len(all) {
		end = len(all)
	}
	return all[offset:end], total, nil
}

func (m *mockJobRepo) Update(_ context.Context, job *model.Job) error {
	stored, ok := m.jobs[job.JobID]
	if !ok || stored.Version != job.Version {
		return pkgerrors.ErrOptimisticLock
	}
	job.Version++
	cp := *job
	m.jobs[job.JobID] = &cp
	return nil
}

func (m *mockJobRepo) Delete(_ context.Context, id int64, _ string) error {
	delete(m.jobs, id)
	return nil
}

// ── Mock ApplicationRepository ──

type mockApplicationRepo struct {
	apps    map[string]*model.Application
	seq     int
	listErr error // 注入 ListActiveByCandidate 错误
}

func newMockApplicationRepo() *mockApplicationRepo {
	return &mockApplicationRepo{apps: make(map[string]*model.Application)}
}

func (m *mockApplicationRepo) Create(_ context.Context, app *model.Application) error {
	for _, existing := range m.apps {
		if existing.CandidateID == app.CandidateID && existing.JobID == app.JobID {
			return gorm.ErrDuplicatedKey
		}
	}
	if app.ApplicationID == "" {
		m.seq++
		app.ApplicationID = fmt.Sprintf("app-%03d", m.seq)
	}
	if app.Version == 0 {
		app.Version = 1
	}
	cp := *app
	m.apps[app.ApplicationID] = &cp
	return nil
}

func (m *mockApplicationRepo) GetByID(_ context.Context, id string) (*model.Application, error) {
	if a, ok := m.apps[id]; ok {
		cp := *a
		return &cp, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockApplicationRepo) GetByCandidateAndJob(_ context.Context, candidateID string, jobID int64) (*model.Application, error) {
	for _, a := range m.apps {
		if a.CandidateID == candidateID && a.JobID == jobID {
			cp := *a
			return &cp, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockApplicationRepo) list(candidateID string, activeOnly bool) []model.Application {
	result := make([]model.Application, 0)
	for _, a := range m.apps {
		if a.CandidateID != candidateID {
			continue
		}
		if activeOnly && a.Status != model.ApplicationStatusActive {
			continue
		}
		result = append(result, *a)
	}
	sort.Slice(result, func(i, k int) bool { return result[i].JobID < result[k].JobID })
	return result
}

func (m *mockApplicationRepo) ListByCandidate(_ context.Context, candidateID string) ([]model.Application, error) {
	return m.list(candidateID, false), nil
}

func (m *mockApplicationRepo) ListActiveByCandidate(_ context.Context, candidateID string) ([]model.Application, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	return m.list(candidateID, true), nil
}

func (m *mockApplicationRepo) Update(_ context.Context, app *model.Application) error {
	stored, ok := m.apps[app.ApplicationID]
	if !ok || stored.Version != app.Version {
		return pkgerrors.ErrOptimisticLock
	}
	app.Version++
	cp := *app
	m.apps[app.ApplicationID] = &cp
	return nil
}

func (m *mockApplicationRepo) UpdateStatus(_ context.Context, id string, status string, _ string) error {
	a, ok := m.apps[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	a.Status = status
	a.Version++
	return nil
}

func (m *mockApplicationRepo) Delete(_ context.Context, id string, _ string) error {
	delete(m.apps, id)
	return nil
}

// ── 测试装配 ──

type mockRepos struct {
	candidates   *mockCandidateRepo
	jobs         *mockJobRepo
	applications *mockApplicationRepo
}

func newMockRepository() (*repository.Repository, *mockRepos) {
	m := &mockRepos{
		candidates:   newMockCandidateRepo(),
		jobs:         newMockJobRepo(),
		applications: newMockApplicationRepo(),
	}
	repo := &repository.Repository{
		Candidate:   m.candidates,
		Job:         m.jobs,
		Application: m.applications,
	}
	return repo, m
}

func testConfig(strict bool) *config.Config {
	return &config.Config{Schedule: config.ScheduleConfig{StrictSharedPaper: strict}}
}

func nopLogger() *zap.Logger { return zap.NewNop() }
