package model

import (
	"time"
)

// BaseEntity carries the bookkeeping columns shared by every table.
// GORM manages both timestamps automatically.
type BaseEntity struct {
	CreatedAt time.Time `gorm:"column:created_at;not null" json:"-"`
	UpdatedAt time.Time `gorm:"column:updated_at;not null" json:"-"`
}
