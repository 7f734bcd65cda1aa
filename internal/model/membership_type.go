package model

// MembershipType is an independent lookup table. Nothing else references it
// yet; it is synchronized so the management app can browse it.
type MembershipType struct {
	MembershipTypeID   int64   `gorm:"column:membership_type_id;primaryKey" json:"membership_type_id"`
	MembershipTypeDesc *string `gorm:"column:membership_type_desc" json:"membership_type_desc"`

	BaseEntity
}

func (*MembershipType) TableName() string {
	return "gen_membership_type"
}
