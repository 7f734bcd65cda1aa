package locker

import (
	"context"

	"github.com/smghasemi/membersync/internal/model"
	"gorm.io/gorm"
)

type LockerRepository struct{}

func NewLockerRepository() *LockerRepository {
	return &LockerRepository{}
}

func (r *LockerRepository) FindByID(ctx context.Context, db *gorm.DB, id int64) (*model.Locker, error) {
	var locker model.Locker
	err := db.WithContext(ctx).Where("id = ?", id).First(&locker).Error
	if err != nil {
		return nil, err
	}
	return &locker, nil
}

func (r *LockerRepository) List(ctx context.Context, db *gorm.DB, filters ListFilters) ([]model.Locker, error) {
	q := db.WithContext(ctx).Model(&model.Locker{})

	if filters.IsVIP != nil {
		q = q.Where("is_vip = ?", *filters.IsVIP)
	}
	if filters.IsOpen != nil {
		q = q.Where("is_open = ?", *filters.IsOpen)
	}
	if filters.UserID != nil {
		q = q.Where("user_id = ?", *filters.UserID)
	}
	if filters.FullName != nil {
		q = q.Where("full_name = ?", *filters.FullName)
	}

	var lockers []model.Locker
	if err := q.Order("id ASC").Find(&lockers).Error; err != nil {
		return nil, err
	}
	return lockers, nil
}

func (r *LockerRepository) Create(ctx context.Context, db *gorm.DB, locker *model.Locker) error {
	return db.WithContext(ctx).Create(locker).Error
}

func (r *LockerRepository) Save(ctx context.Context, db *gorm.DB, locker *model.Locker) error {
	return db.WithContext(ctx).Save(locker).Error
}

func (r *LockerRepository) Delete(ctx context.Context, db *gorm.DB, id int64) (int64, error) {
	res := db.WithContext(ctx).Where("id = ?", id).Delete(&model.Locker{})
	return res.RowsAffected, res.Error
}
