package model

// PersonRole is a role lookup row keyed by the legacy role id.
type PersonRole struct {
	RoleID   int64   `gorm:"column:role_id;primaryKey" json:"role_id"`
	RoleDesc *string `gorm:"column:role_desc" json:"role_desc"`

	BaseEntity
}

func (*PersonRole) TableName() string {
	return "gen_person_role"
}
