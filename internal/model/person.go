package model

// Gender codes as normalized by the import pipeline.
const (
	GenderFemale = "F"
	GenderMale   = "M"
	GenderOther  = "O"
)

// Person mirrors the legacy Gen_Person table. Image columns hold the
// transcoded PNG payload, or nil when the source image could not be
// converted.
//
// UserID is denormalized for the same reason User.PersonID is: the two
// tables reference each other and either side may be written first.
type Person struct {
	PersonID             int64   `gorm:"column:person_id;primaryKey" json:"person_id"`
	FirstName            *string `gorm:"column:first_name" json:"first_name"`
	LastName             *string `gorm:"column:last_name" json:"last_name"`
	FullName             *string `gorm:"column:full_name" json:"full_name"`
	FatherName           *string `gorm:"column:father_name" json:"father_name"`
	Gender               string  `gorm:"column:gender" json:"gender"`
	NationalCode         *string `gorm:"column:national_code" json:"national_code"`
	NIdentity            *string `gorm:"column:nidentity" json:"nidentity"`
	PersonImage          []byte  `gorm:"column:person_image" json:"person_image,omitempty"`
	ThumbnailImage       []byte  `gorm:"column:thumbnail_image" json:"thumbnail_image,omitempty"`
	BirthDate            *string `gorm:"column:birth_date" json:"birth_date"`
	Tel                  *string `gorm:"column:tel" json:"tel"`
	Mobile               *string `gorm:"column:mobile" json:"mobile" binding:"omitempty,mobile"`
	Email                *string `gorm:"column:email" json:"email"`
	Education            *string `gorm:"column:education" json:"education"`
	Job                  *string `gorm:"column:job" json:"job"`
	HasInsurance         bool    `gorm:"column:has_insurance" json:"has_insurance"`
	InsuranceNo          *string `gorm:"column:insurance_no" json:"insurance_no"`
	InsStartDate         *string `gorm:"column:ins_start_date" json:"ins_start_date"`
	InsEndDate           *string `gorm:"column:ins_end_date" json:"ins_end_date"`
	Address              *string `gorm:"column:address" json:"address"`
	HasParent            bool    `gorm:"column:has_parent" json:"has_parent"`
	TeamName             *string `gorm:"column:team_name" json:"team_name"`
	ShiftID              *int64  `gorm:"column:shift_id" json:"shift_id"`
	UserID               *int64  `gorm:"column:user_id" json:"user_id"`
	CreationDatetime     *string `gorm:"column:creation_datetime" json:"creation_datetime"`
	Modifier             *string `gorm:"column:modifier" json:"modifier"`
	ModificationDatetime *string `gorm:"column:modification_datetime" json:"modification_datetime"`

	BaseEntity
}

func (*Person) TableName() string {
	return "gen_person"
}
