package auth

import (
	"context"

	"github.com/smghasemi/membersync/internal/model"
	"gorm.io/gorm"
)

type UserRepository struct{}

func NewUserRepository() *UserRepository {
	return &UserRepository{}
}

func (r *UserRepository) FindByUsername(ctx context.Context, db *gorm.DB, username string) (*model.User, error) {
	var user model.User
	err := db.WithContext(ctx).Where("username = ?", username).First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) UpdatePassword(ctx context.Context, db *gorm.DB, userID int64, password string) error {
	return db.WithContext(ctx).
		Model(&model.User{}).
		Where("user_id = ?", userID).
		Update("password", password).Error
}
