package importer

import (
	"context"

	"github.com/smghasemi/membersync/internal/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Store is the destination capability the pipeline writes through: an
// atomic upsert keyed on the natural id, and a lookup by the same key. The
// pipeline never issues raw queries against the destination.
//
// Each upsert is a single INSERT ... ON CONFLICT DO UPDATE statement, so
// two overlapping runs cannot race a lookup-then-write into duplicates.
type Store struct{}

func NewStore() *Store {
	return &Store{}
}

func upsert(ctx context.Context, db *gorm.DB, pkColumn string, row any) error {
	return db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: pkColumn}},
			UpdateAll: true,
		}).
		Create(row).Error
}

func (s *Store) UpsertShift(ctx context.Context, db *gorm.DB, row *model.Shift) error {
	return upsert(ctx, db, "shift_id", row)
}

func (s *Store) UpsertRole(ctx context.Context, db *gorm.DB, row *model.PersonRole) error {
	return upsert(ctx, db, "role_id", row)
}

func (s *Store) UpsertMembershipType(ctx context.Context, db *gorm.DB, row *model.MembershipType) error {
	return upsert(ctx, db, "membership_type_id", row)
}

func (s *Store) UpsertUser(ctx context.Context, db *gorm.DB, row *model.User) error {
	return upsert(ctx, db, "user_id", row)
}

func (s *Store) UpsertPerson(ctx context.Context, db *gorm.DB, row *model.Person) error {
	return upsert(ctx, db, "person_id", row)
}

func (s *Store) UpsertMember(ctx context.Context, db *gorm.DB, row *model.Member) error {
	return upsert(ctx, db, "member_id", row)
}

func (s *Store) GetRole(ctx context.Context, db *gorm.DB, id int64) (*model.PersonRole, error) {
	var row model.PersonRole
	err := db.WithContext(ctx).Where("role_id = ?", id).First(&row).Error
	if err != nil {
		return nil, err
	}
	return &row, nil
}

func (s *Store) GetUser(ctx context.Context, db *gorm.DB, id int64) (*model.User, error) {
	var row model.User
	err := db.WithContext(ctx).Where("user_id = ?", id).First(&row).Error
	if err != nil {
		return nil, err
	}
	return &row, nil
}

func (s *Store) GetShift(ctx context.Context, db *gorm.DB, id int64) (*model.Shift, error) {
	var row model.Shift
	err := db.WithContext(ctx).Where("shift_id = ?", id).First(&row).Error
	if err != nil {
		return nil, err
	}
	return &row, nil
}
