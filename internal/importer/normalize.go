package importer

import (
	"github.com/smghasemi/membersync/internal/model"
)

// CombineDateTime joins separate date and time columns into the single
// "{date} {time}" string the destination stores. The concatenation is
// purely textual; no format or timezone validation happens here. If either
// part is absent the combined value is absent too.
func CombineDateTime(date, timeOfDay *string) *string {
	if date == nil || timeOfDay == nil {
		return nil
	}
	combined := *date + " " + *timeOfDay
	return &combined
}

// TimestampString passes a single timestamp-like column through as a string.
func TimestampString(value *string) *string {
	if value == nil {
		return nil
	}
	s := *value
	return &s
}

// MapGender maps the legacy numeric gender code to the destination code set.
// The mapping is total: 0 is female, 1 is male, and every other value
// (including absent) is other.
func MapGender(code *int64) string {
	if code == nil {
		return model.GenderOther
	}
	switch *code {
	case 0:
		return model.GenderFemale
	case 1:
		return model.GenderMale
	default:
		return model.GenderOther
	}
}
