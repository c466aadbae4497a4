//go:build integration

package repository_test

import (
	"context"
	"errors"
	"fmt"
	"os"
	"testing"
	"time"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"admit-desk/backend/internal/model"
	"admit-desk/backend/internal/repository"
	"admit-desk/backend/pkg/database"
	pkgerrors "admit-desk/backend/pkg/errors"
)

// ═══════════════════════════════════════════════════════════
// Test Setup
// ═══════════════════════════════════════════════════════════

var testDB *gorm.DB

func TestMain(m *testing.M) {
	dsn := os.Getenv("TEST_DATABASE_DSN")
	if dsn == "" {
		dsn = "host=localhost port=5433 user=admit_desk password=admit_desk_password dbname=admit_desk_test sslmode=disable TimeZone=Asia/Shanghai"
	}

	var err error
	testDB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "无法连接测试数据库: %v\n", err)
		os.Exit(1)
	}

	// 使用正式迁移建表，保证部分唯一索引与约束一致
	sqlDB, err := testDB.DB()
	if err != nil {
		fmt.Fprintf(os.Stderr, "获取底层连接失败: %v\n", err)
		os.Exit(1)
	}
	if err := database.RunMigrations(sqlDB, zap.NewNop()); err != nil {
		fmt.Fprintf(os.Stderr, "迁移失败: %v\n", err)
		os.Exit(1)
	}

	code := m.Run()
	os.Exit(code)
}

func strPtr(s string) *string { return &s }

func datePtr(y int, m time.Month, d int) *time.Time {
	t := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return &t
}

// setupTestData 创建考生与两个岗位并返回清理函数
func setupTestData(t *testing.T) (candidate *model.Candidate, jobs []*model.Job, cleanup func()) {
	t.Helper()
	ctx := context.Background()
	suffix := time.Now().UnixNano()

	candidate = &model.Candidate{
		ContactKey: fmt.Sprintf("cand%d@example.com", suffix),
		Name:       "测试考生",
	}
	if err := testDB.WithContext(ctx).Create(candidate).Error; err != nil {
		t.Fatalf("创建考生失败: %v", err)
	}

	for i := 0; i < 2; i++ {
		job := &model.Job{
			Code:     fmt.Sprintf("J%d-%d", suffix, i),
			Title:    fmt.Sprintf("测试岗位%d", i),
			IsActive: true,
		}
		if err := testDB.WithContext(ctx).Create(job).Error; err != nil {
			t.Fatalf("创建岗位失败: %v", err)
		}
		jobs = append(jobs, job)
	}

	cleanup = func() {
		testDB.Unscoped().Where("candidate_id = ?", candidate.CandidateID).Delete(&model.Application{})
		for _, j := range jobs {
			testDB.Unscoped().Where("job_id = ?", j.JobID).Delete(&model.Job{})
		}
		testDB.Unscoped().Where("candidate_id = ?", candidate.CandidateID).Delete(&model.Candidate{})
	}
	return
}

func newApplication(candidateID string, jobID int64, roll, status string) *model.Application {
	return &model.Application{
		CandidateID:     candidateID,
		JobID:           jobID,
		RollNumber:      roll,
		Status:          status,
		SharedSubject:   strPtr("General Awareness"),
		SharedDate:      datePtr(2025, 3, 1),
		SharedStartTime: strPtr("10:00:00"),
		SharedEndTime:   strPtr("12:00:00"),
		JobSubject:      strPtr("专业科目"),
		JobDate:         datePtr(2025, 3, 2),
		JobStartTime:    strPtr("14:00:00"),
		JobEndTime:      strPtr("16:00:00"),
		VenueName:       "第一考点",
	}
}

// ═══════════════════════════════════════════════════════════
// Test: Active Applications Query
// ═══════════════════════════════════════════════════════════

func TestListActiveByCandidate_FilterAndOrder(t *testing.T) {
	candidate, jobs, cleanup := setupTestData(t)
	defer cleanup()

	repo := repository.NewRepository(testDB)
	ctx := context.Background()

	// 倒序插入，验证查询按 job_id 升序返回
	if err := repo.Application.Create(ctx, newApplication(candidate.CandidateID, jobs[1].JobID, "R2", model.ApplicationStatusActive)); err != nil {
		t.Fatalf("创建申请失败: %v", err)
	}
	if err := repo.Application.Create(ctx, newApplication(candidate.CandidateID, jobs[0].JobID, "R1", model.ApplicationStatusActive)); err != nil {
		t.Fatalf("创建申请失败: %v", err)
	}

	apps, err := repo.Application.ListActiveByCandidate(ctx, candidate.CandidateID)
	if err != nil {
		t.Fatalf("ListActiveByCandidate 失败: %v", err)
	}
	if len(apps) != 2 {
		t.Fatalf("期望 2 条 active 申请，得到: %d", len(apps))
	}
	if apps[0].JobID != jobs[0].JobID || apps[1].JobID != jobs[1].JobID {
		t.Errorf("期望按 job_id 升序，得到: %d, %d", apps[0].JobID, apps[1].JobID)
	}
	if apps[0].Job == nil || apps[0].Job.Title != jobs[0].Title {
		t.Error("期望预加载 Job")
	}

	// 撤回后不再出现在 active 列表
	if err := repo.Application.UpdateStatus(ctx, apps[1].ApplicationID, model.ApplicationStatusWithdrawn, ""); err != nil {
		t.Fatalf("UpdateStatus 失败: %v", err)
	}
	apps, err = repo.Application.ListActiveByCandidate(ctx, candidate.CandidateID)
	if err != nil {
		t.Fatalf("ListActiveByCandidate 失败: %v", err)
	}
	if len(apps) != 1 || apps[0].RollNumber != "R1" {
		t.Errorf("撤回后期望仅剩 R1，得到: %+v", apps)
	}
}

// ═══════════════════════════════════════════════════════════
// Test: Optimistic Lock
// ═══════════════════════════════════════════════════════════

func TestOptimisticLock_Application_ConflictDetected(t *testing.T) {
	candidate, jobs, cleanup := setupTestData(t)
	defer cleanup()

	repo := repository.NewRepository(testDB)
	ctx := context.Background()

	app := newApplication(candidate.CandidateID, jobs[0].JobID, "R1", model.ApplicationStatusActive)
	if err := repo.Application.Create(ctx, app); err != nil {
		t.Fatalf("创建申请失败: %v", err)
	}

	// 模拟并发：获取两份副本
	copy1, _ := repo.Application.GetByID(ctx, app.ApplicationID)
	copy2, _ := repo.Application.GetByID(ctx, app.ApplicationID)

	copy1.VenueName = "第二考点"
	if err := repo.Application.Update(ctx, copy1); err != nil {
		t.Fatalf("第一次更新应成功: %v", err)
	}

	// 第二次更新应失败（version 已过期）
	copy2.VenueName = "第三考点"
	err := repo.Application.Update(ctx, copy2)
	if err == nil {
		t.Fatal("期望乐观锁冲突错误，但更新成功了")
	}
	if err != pkgerrors.ErrOptimisticLock {
		t.Errorf("期望 ErrOptimisticLock，得到: %v", err)
	}
}

func TestOptimisticLock_Job_VersionIncrement(t *testing.T) {
	_, jobs, cleanup := setupTestData(t)
	defer cleanup()

	repo := repository.NewRepository(testDB)
	ctx := context.Background()

	if jobs[0].Version != 1 {
		t.Errorf("初始 version 应为 1，得到: %d", jobs[0].Version)
	}

	// 连续更新 3 次
	for i := 0; i < 3; i++ {
		got, _ := repo.Job.GetByID(ctx, jobs[0].JobID)
		got.Title = fmt.Sprintf("更新%d", i)
		if err := repo.Job.Update(ctx, got); err != nil {
			t.Fatalf("第 %d 次更新失败: %v", i+1, err)
		}
	}

	final, _ := repo.Job.GetByID(ctx, jobs[0].JobID)
	if final.Version != 4 {
		t.Errorf("期望 version=4，得到: %d", final.Version)
	}
}

// ═══════════════════════════════════════════════════════════
// Test: Unique Constraints
// ═══════════════════════════════════════════════════════════

func TestUniqueApplicationPerCandidateJob(t *testing.T) {
	candidate, jobs, cleanup := setupTestData(t)
	defer cleanup()

	repo := repository.NewRepository(testDB)
	ctx := context.Background()

	if err := repo.Application.Create(ctx, newApplication(candidate.CandidateID, jobs[0].JobID, "R1", model.ApplicationStatusActive)); err != nil {
		t.Fatalf("创建第一条申请失败: %v", err)
	}

	err := repo.Application.Create(ctx, newApplication(candidate.CandidateID, jobs[0].JobID, "R1b", model.ApplicationStatusActive))
	if !errors.Is(err, gorm.ErrDuplicatedKey) {
		t.Fatalf("期望唯一约束违反 (ErrDuplicatedKey)，得到: %v", err)
	}
}

func TestCandidate_GetByContactKey_Normalized(t *testing.T) {
	candidate, _, cleanup := setupTestData(t)
	defer cleanup()

	repo := repository.NewRepository(testDB)
	ctx := context.Background()

	found, err := repo.Candidate.GetByContactKey(ctx, "  "+candidate.ContactKey+"  ")
	if err != nil {
		t.Fatalf("GetByContactKey 失败: %v", err)
	}
	if found.CandidateID != candidate.CandidateID {
		t.Errorf("ID 不匹配: expected %s, got %s", candidate.CandidateID, found.CandidateID)
	}

	if err := repo.Candidate.Delete(ctx, candidate.CandidateID, ""); err != nil {
		t.Fatalf("Delete 失败: %v", err)
	}
	if _, err := repo.Candidate.GetByContactKey(ctx, candidate.ContactKey); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Errorf("软删除后应查不到，得到: %v", err)
	}
}
