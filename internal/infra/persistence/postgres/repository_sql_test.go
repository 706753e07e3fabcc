package postgres

import (
	"context"
	"strings"
	"testing"
	"time"

	"portfolio/internal/domain/entity"
	"portfolio/internal/domain/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// sqlRecorder captures every statement GORM would have sent.
type sqlRecorder struct {
	logger.Interface
	statements []string
}

func (r *sqlRecorder) LogMode(logger.LogLevel) logger.Interface { return r }

func (r *sqlRecorder) Trace(_ context.Context, _ time.Time, fc func() (string, int64), _ error) {
	sql, _ := fc()
	r.statements = append(r.statements, sql)
}

func (r *sqlRecorder) last(t *testing.T) string {
	t.Helper()
	require.NotEmpty(t, r.statements)

	return r.statements[len(r.statements)-1]
}

func newDryRunDB(t *testing.T) (*gorm.DB, *sqlRecorder) {
	t.Helper()

	rec := &sqlRecorder{Interface: logger.Discard}
	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN: "host=localhost user=portfolio dbname=portfolio sslmode=disable",
	}), &gorm.Config{
		DryRun:               true,
		DisableAutomaticPing: true,
		Logger:               rec,
	})
	require.NoError(t, err)

	return db, rec
}

func TestUserRepository_Queries(t *testing.T) {
	db, rec := newDryRunDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	_, err := repo.FindByID(ctx, 7)
	require.NoError(t, err)
	sql := rec.last(t)
	assert.Contains(t, sql, `FROM "users"`)
	assert.Contains(t, sql, `"id" = 7`)

	_, err = repo.FindByEmail(ctx, "owner@example.com")
	require.NoError(t, err)
	assert.Contains(t, rec.last(t), `"email" = 'owner@example.com'`)

	_, err = repo.FindFirst(ctx)
	require.NoError(t, err)
	sql = rec.last(t)
	assert.Contains(t, sql, `ORDER BY`)
	assert.Contains(t, sql, `"id" LIMIT 1`)
}

func TestProjectRepository_ListQuery(t *testing.T) {
	db, rec := newDryRunDB(t)
	repo := NewProjectRepository(db)

	_, err := repo.List(context.Background(), repository.ProjectFilter{UserID: 3, FeaturedOnly: true, Limit: 6})
	require.NoError(t, err)

	sql := rec.last(t)
	assert.Contains(t, sql, `FROM "projects"`)
	assert.Contains(t, sql, `"user_id" = 3`)
	assert.Contains(t, sql, `"featured" = true`)
	assert.Contains(t, sql, `LIMIT 6`)

	featured := strings.Index(sql, `"featured" DESC`)
	created := strings.Index(sql, `"created_at" DESC`)
	require.NotEqual(t, -1, featured)
	require.NotEqual(t, -1, created)
	assert.Less(t, featured, created)
}

func TestSkillRepository_Queries(t *testing.T) {
	db, rec := newDryRunDB(t)
	repo := NewSkillRepository(db)
	ctx := context.Background()

	_, err := repo.List(ctx, 0)
	require.NoError(t, err)
	sql := rec.last(t)
	assert.NotContains(t, sql, "WHERE")
	category := strings.Index(sql, `"category"`)
	proficiency := strings.Index(sql, `"proficiency" DESC`)
	require.NotEqual(t, -1, category)
	require.NotEqual(t, -1, proficiency)
	assert.Less(t, category, proficiency)

	err = repo.Create(ctx, &entity.Skill{UserID: 1, Name: "Go", Proficiency: 90})
	require.NoError(t, err)
	sql = rec.last(t)
	assert.Contains(t, sql, `INSERT INTO "skills"`)
	assert.Contains(t, sql, `'other'`)
}

func TestExperienceRepository_ListQuery(t *testing.T) {
	db, rec := newDryRunDB(t)

	_, err := NewExperienceRepository(db).List(context.Background(), 2)
	require.NoError(t, err)
	sql := rec.last(t)
	assert.Contains(t, sql, `FROM "experiences"`)
	assert.Contains(t, sql, `"user_id" = 2`)
	assert.Contains(t, sql, `"start_date" DESC`)

	_, err = NewEducationRepository(db).ListByUser(context.Background(), 2)
	require.NoError(t, err)
	assert.Contains(t, rec.last(t), `FROM "educations"`)
}
