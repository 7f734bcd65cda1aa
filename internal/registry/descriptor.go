package registry

import (
	"strconv"

	"github.com/smghasemi/membersync/internal/model"
)

// descriptor is the closed mapping from an action name to the entity it
// selects: constructors, the natural-key column, and the columns that may
// be filtered on or patched. Resolved at compile time; there is no
// reflection-driven dispatch beyond this table.
type descriptor struct {
	newModel func() any
	newSlice func() any
	pkColumn string
	filters  []string
	columns  []string
}

var descriptors = map[string]descriptor{
	"shift": {
		newModel: func() any { return &model.Shift{} },
		newSlice: func() any { return &[]model.Shift{} },
		pkColumn: "shift_id",
		filters:  []string{"shift_id", "shift_desc"},
		columns:  []string{"shift_desc"},
	},
	"role": {
		newModel: func() any { return &model.PersonRole{} },
		newSlice: func() any { return &[]model.PersonRole{} },
		pkColumn: "role_id",
		filters:  []string{"role_id", "role_desc"},
		columns:  []string{"role_desc"},
	},
	"membership_type": {
		newModel: func() any { return &model.MembershipType{} },
		newSlice: func() any { return &[]model.MembershipType{} },
		pkColumn: "membership_type_id",
		filters:  []string{"membership_type_id", "membership_type_desc"},
		columns:  []string{"membership_type_desc"},
	},
	"user": {
		newModel: func() any { return &model.User{} },
		newSlice: func() any { return &[]model.User{} },
		pkColumn: "user_id",
		filters:  []string{"user_id", "person_id", "username", "is_admin", "shift_id", "is_active"},
		columns: []string{"username", "password", "is_admin", "is_active", "shift_id",
			"person_id", "creation_datetime"},
	},
	"person": {
		newModel: func() any { return &model.Person{} },
		newSlice: func() any { return &[]model.Person{} },
		pkColumn: "person_id",
		filters: []string{"person_id", "first_name", "last_name", "full_name", "father_name",
			"gender", "national_code", "nidentity", "birth_date", "tel", "mobile", "email",
			"has_insurance", "user_id"},
		columns: []string{"first_name", "last_name", "full_name", "father_name", "gender",
			"national_code", "nidentity", "birth_date", "tel", "mobile", "email", "education",
			"job", "has_insurance", "insurance_no", "ins_start_date", "ins_end_date", "address",
			"has_parent", "team_name", "shift_id", "user_id", "creation_datetime", "modifier",
			"modification_datetime"},
	},
	"member": {
		newModel: func() any { return &model.Member{} },
		newSlice: func() any { return &[]model.Member{} },
		pkColumn: "member_id",
		filters: []string{"member_id", "card_no", "person_id", "role_id", "user_id", "shift_id",
			"is_black_list", "membership_datetime"},
		columns: []string{"card_no", "person_id", "role_id", "user_id", "shift_id",
			"is_black_list", "box_no", "has_finger", "membership_datetime", "modifier",
			"modification_datetime", "is_family", "max_debit", "salary"},
	},
}

// coerceFilter converts query-string values so they compare correctly
// against boolean and numeric columns across destination drivers.
func coerceFilter(value string) any {
	switch value {
	case "true", "false":
		b, _ := strconv.ParseBool(value)
		return b
	}
	if n, err := strconv.ParseInt(value, 10, 64); err == nil {
		return n
	}
	return value
}
