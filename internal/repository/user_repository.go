package repository

import (
	"context"

	"github.com/fadilmartias/mentor-eval/internal/apperr"
	"github.com/fadilmartias/mentor-eval/internal/model"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db}
}

func (r *UserRepository) CreateUser(ctx context.Context, user *model.User) error {
	return apperr.Store("create user", r.db.WithContext(ctx).Create(user).Error)
}

func (r *UserRepository) FindUserByID(ctx context.Context, id uuid.UUID) (*model.User, error) {
	var u model.User
	err := r.db.WithContext(ctx).First(&u, "id = ?", id).Error
	if err != nil {
		return nil, apperr.Store("find user", err)
	}
	return &u, nil
}

func (r *UserRepository) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.User{}).Where("id = ?", id).Count(&count).Error
	if err != nil {
		return false, apperr.Store("check user", err)
	}
	return count > 0, nil
}
