// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"portfolio/internal/domain/entity"
	"portfolio/internal/domain/repository"
	"portfolio/internal/errors"
	"portfolio/internal/infra/persistence/model"
	"portfolio/internal/infra/persistence/postgres/query"

	"gorm.io/gorm"
)

// userRepository implements repository.UserRepository on the gen query builder.
type userRepository struct {
	q *query.Query
}

// NewUserRepository is the constructor for userRepository.
func NewUserRepository(db *gorm.DB) repository.UserRepository {
	return &userRepository{
		q: query.Use(db),
	}
}

// FindByID retrieves a single user by their unique ID.
func (repo *userRepository) FindByID(ctx context.Context, id uint) (*entity.User, error) {
	userM, err := repo.q.UserModel.WithContext(ctx).
		Where(repo.q.UserModel.ID.Eq(id)).
		First()
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by id")
	}

	return toUserDomain(userM), nil
}

// FindByEmail retrieves a single user by their email address.
func (repo *userRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	userM, err := repo.q.UserModel.WithContext(ctx).
		Where(repo.q.UserModel.Email.Eq(email)).
		First()
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by email")
	}

	return toUserDomain(userM), nil
}

// FindFirst retrieves the earliest registered user.
func (repo *userRepository) FindFirst(ctx context.Context) (*entity.User, error) {
	userM, err := repo.q.UserModel.WithContext(ctx).
		Order(repo.q.UserModel.ID.Asc()).
		First()
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find first user")
	}

	return toUserDomain(userM), nil
}

// Create inserts the user and copies generated fields back onto the entity.
func (repo *userRepository) Create(ctx context.Context, user *entity.User) error {
	userM := fromUserDomain(user)
	if err := repo.q.UserModel.WithContext(ctx).Create(userM); err != nil {
		return translateWriteError(err, "failed to create user")
	}

	user.ID = userM.ID
	user.IsActive = userM.IsActive
	user.CreatedAt = userM.CreatedAt
	user.UpdatedAt = userM.UpdatedAt

	return nil
}

func toUserDomain(data *model.UserModel) *entity.User {
	if data == nil {
		return nil
	}

	return &entity.User{
		ID:           data.ID,
		Email:        data.Email,
		PasswordHash: data.PasswordHash,
		FirstName:    data.FirstName,
		LastName:     data.LastName,
		Title:        data.Title,
		Bio:          data.Bio,
		Location:     data.Location,
		AvatarURL:    data.AvatarURL,
		GithubURL:    data.GithubURL,
		LinkedinURL:  data.LinkedinURL,
		Website:      data.Website,
		Phone:        data.Phone,
		IsActive:     data.IsActive,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}

func fromUserDomain(data *entity.User) *model.UserModel {
	return &model.UserModel{
		ID:           data.ID,
		Email:        data.Email,
		PasswordHash: data.PasswordHash,
		FirstName:    data.FirstName,
		LastName:     data.LastName,
		Title:        data.Title,
		Bio:          data.Bio,
		Location:     data.Location,
		AvatarURL:    data.AvatarURL,
		GithubURL:    data.GithubURL,
		LinkedinURL:  data.LinkedinURL,
		Website:      data.Website,
		Phone:        data.Phone,
		IsActive:     data.IsActive,
	}
}
