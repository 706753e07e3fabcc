package postgres

import (
	"context"

	"portfolio/internal/domain/entity"
	"portfolio/internal/domain/repository"
	"portfolio/internal/errors"
	"portfolio/internal/infra/persistence/model"
	"portfolio/internal/infra/persistence/postgres/query"

	"gorm.io/gen/field"
	"gorm.io/gorm"
)

type projectRepository struct {
	q *query.Query
}

// NewProjectRepository is the constructor for projectRepository.
func NewProjectRepository(db *gorm.DB) repository.ProjectRepository {
	return &projectRepository{
		q: query.Use(db),
	}
}

// owner preloads the project owner limited to the columns shown publicly.
func (repo *projectRepository) owner() field.RelationField {
	u := repo.q.UserModel

	return repo.q.ProjectModel.User.Select(u.ID, u.FirstName, u.LastName)
}

func (repo *projectRepository) List(ctx context.Context, filter repository.ProjectFilter) ([]*entity.Project, error) {
	p := repo.q.ProjectModel
	do := p.WithContext(ctx).
		Preload(repo.owner()).
		Order(p.Featured.Desc(), p.CreatedAt.Desc())

	if filter.UserID != 0 {
		do = do.Where(p.UserID.Eq(filter.UserID))
	}
	if filter.FeaturedOnly {
		do = do.Where(p.Featured.Is(true))
	}
	if filter.Limit > 0 {
		do = do.Limit(filter.Limit)
	}

	projectMs, err := do.Find()
	if err != nil {
		return nil, errors.Wrap(err, "failed to list projects")
	}

	projects := make([]*entity.Project, 0, len(projectMs))
	for _, projectM := range projectMs {
		projects = append(projects, toProjectDomain(projectM))
	}

	return projects, nil
}

func (repo *projectRepository) FindByID(ctx context.Context, id uint) (*entity.Project, error) {
	projectM, err := repo.q.ProjectModel.WithContext(ctx).
		Preload(repo.owner()).
		Where(repo.q.ProjectModel.ID.Eq(id)).
		First()
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProjectNotFound
		}

		return nil, errors.Wrap(err, "failed to find project by id")
	}

	return toProjectDomain(projectM), nil
}

func (repo *projectRepository) Create(ctx context.Context, project *entity.Project) error {
	projectM := fromProjectDomain(project)
	if err := repo.q.ProjectModel.WithContext(ctx).Create(projectM); err != nil {
		return translateWriteError(err, "failed to create project")
	}

	project.ID = projectM.ID
	project.Status = entity.ProjectStatus(projectM.Status)
	project.CreatedAt = projectM.CreatedAt
	project.UpdatedAt = projectM.UpdatedAt

	return nil
}

func (repo *projectRepository) CountByUser(ctx context.Context, userID uint) (int64, error) {
	count, err := repo.q.ProjectModel.WithContext(ctx).
		Where(repo.q.ProjectModel.UserID.Eq(userID)).
		Count()
	if err != nil {
		return 0, errors.Wrap(err, "failed to count projects")
	}

	return count, nil
}

func toProjectDomain(data *model.ProjectModel) *entity.Project {
	project := &entity.Project{
		ID:            data.ID,
		UserID:        data.UserID,
		Title:         data.Title,
		Description:   data.Description,
		AIDescription: data.AIDescription,
		TechStack:     []string(data.TechStack),
		GithubURL:     data.GithubURL,
		LiveURL:       data.LiveURL,
		ImageURLs:     []string(data.ImageURLs),
		Featured:      data.Featured,
		StartDate:     data.StartDate,
		EndDate:       data.EndDate,
		Status:        entity.ProjectStatus(data.Status),
		Category:      data.Category,
		CreatedAt:     data.CreatedAt,
		UpdatedAt:     data.UpdatedAt,
	}
	if data.User != nil {
		project.Owner = &entity.ProjectOwner{
			FirstName: data.User.FirstName,
			LastName:  data.User.LastName,
		}
	}

	return project
}

func fromProjectDomain(data *entity.Project) *model.ProjectModel {
	status := string(data.Status)
	if status == "" {
		status = string(entity.ProjectStatusCompleted)
	}

	return &model.ProjectModel{
		ID:            data.ID,
		UserID:        data.UserID,
		Title:         data.Title,
		Description:   data.Description,
		AIDescription: data.AIDescription,
		TechStack:     data.TechStack,
		GithubURL:     data.GithubURL,
		LiveURL:       data.LiveURL,
		ImageURLs:     data.ImageURLs,
		Featured:      data.Featured,
		StartDate:     data.StartDate,
		EndDate:       data.EndDate,
		Status:        status,
		Category:      data.Category,
	}
}
