package model

// Shift is a work-shift lookup row. The primary key is the id assigned by
// the legacy access-control database, not a local sequence.
type Shift struct {
	ShiftID   int64   `gorm:"column:shift_id;primaryKey" json:"shift_id"`
	ShiftDesc *string `gorm:"column:shift_desc" json:"shift_desc"`

	BaseEntity
}

func (*Shift) TableName() string {
	return "gen_shift"
}
