package model

// Locker is the physical-locker registry. Unlike the imported entities it is
// owned by this system, so the id is a local auto-increment.
type Locker struct {
	ID       int64   `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	IsVIP    bool    `gorm:"column:is_vip" json:"is_vip"`
	IsOpen   bool    `gorm:"column:is_open" json:"is_open"`
	UserID   *int64  `gorm:"column:user_id" json:"user_id"`
	FullName *string `gorm:"column:full_name" json:"full_name"`

	BaseEntity
}

func (*Locker) TableName() string {
	return "locker"
}
