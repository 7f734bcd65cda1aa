package model

// Member mirrors the legacy Gen_Members table.
//
// RoleID, UserID and ShiftID are hard references: the import pipeline
// resolves each against an already-synchronized row and aborts the run when
// a lookup misses. PersonID stays a raw id, matching the legacy behavior.
// The minutiae and face template columns are opaque biometric blobs.
type Member struct {
	MemberID             int64    `gorm:"column:member_id;primaryKey" json:"member_id"`
	CardNo               *string  `gorm:"column:card_no" json:"card_no"`
	PersonID             *int64   `gorm:"column:person_id" json:"person_id"`
	RoleID               *int64   `gorm:"column:role_id" json:"role_id"`
	UserID               *int64   `gorm:"column:user_id" json:"user_id"`
	ShiftID              *int64   `gorm:"column:shift_id" json:"shift_id"`
	IsBlackList          bool     `gorm:"column:is_black_list" json:"is_black_list"`
	BoxNo                *int64   `gorm:"column:box_no" json:"box_no"`
	HasFinger            bool     `gorm:"column:has_finger" json:"has_finger"`
	MembershipDatetime   *string  `gorm:"column:membership_datetime" json:"membership_datetime"`
	Modifier             *string  `gorm:"column:modifier" json:"modifier"`
	ModificationDatetime *string  `gorm:"column:modification_datetime" json:"modification_datetime"`
	IsFamily             bool     `gorm:"column:is_family" json:"is_family"`
	MaxDebit             *float64 `gorm:"column:max_debit" json:"max_debit"`
	Salary               *float64 `gorm:"column:salary" json:"salary"`
	Minutiae             []byte   `gorm:"column:minutiae" json:"-"`
	Minutiae2            []byte   `gorm:"column:minutiae2" json:"-"`
	Minutiae3            []byte   `gorm:"column:minutiae3" json:"-"`
	FaceTemplate1        []byte   `gorm:"column:face_template_1" json:"-"`
	FaceTemplate2        []byte   `gorm:"column:face_template_2" json:"-"`
	FaceTemplate3        []byte   `gorm:"column:face_template_3" json:"-"`
	FaceTemplate4        []byte   `gorm:"column:face_template_4" json:"-"`
	FaceTemplate5        []byte   `gorm:"column:face_template_5" json:"-"`

	BaseEntity
}

func (*Member) TableName() string {
	return "gen_member"
}
