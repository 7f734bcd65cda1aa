package model

// User is a security principal from the legacy Sec_Users table.
//
// PersonID is a denormalized id, not an enforced foreign key: the legacy
// schema lets a user point at a person that is imported later in the same
// run (and vice versa), so the pair must tolerate dangling ids at write time.
type User struct {
	UserID           int64   `gorm:"column:user_id;primaryKey" json:"user_id"`
	Username         string  `gorm:"column:username" json:"username"`
	Password         string  `gorm:"column:password" json:"-"` // stored as received from the source, opaque
	IsAdmin          bool    `gorm:"column:is_admin" json:"is_admin"`
	IsActive         bool    `gorm:"column:is_active" json:"is_active"`
	ShiftID          *int64  `gorm:"column:shift_id" json:"shift_id"`
	PersonID         *int64  `gorm:"column:person_id" json:"person_id"`
	CreationDatetime *string `gorm:"column:creation_datetime" json:"creation_datetime"`

	BaseEntity
}

func (*User) TableName() string {
	return "sec_user"
}
