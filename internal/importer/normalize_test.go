package importer_test

import (
	"testing"

	"github.com/smghasemi/membersync/internal/importer"
	"github.com/smghasemi/membersync/internal/model"
	"github.com/stretchr/testify/assert"
)

func strp(s string) *string {
	return &s
}

func i64p(v int64) *int64 {
	return &v
}

func TestCombineDateTime(t *testing.T) {
	testCases := []struct {
		name     string
		date     *string
		time     *string
		expected *string
	}{
		{
			name:     "Both parts present",
			date:     strp("2024-03-01"),
			time:     strp("08:30:00"),
			expected: strp("2024-03-01 08:30:00"),
		},
		{
			name:     "Date absent",
			date:     nil,
			time:     strp("08:30:00"),
			expected: nil,
		},
		{
			name:     "Time absent",
			date:     strp("2024-03-01"),
			time:     nil,
			expected: nil,
		},
		{
			name:     "Both absent",
			date:     nil,
			time:     nil,
			expected: nil,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			result := importer.CombineDateTime(tc.date, tc.time)

			if tc.expected == nil {
				assert.Nil(t, result)
				return
			}
			assert.NotNil(t, result)
			assert.Equal(t, *tc.expected, *result)
		})
	}
}

func TestTimestampString(t *testing.T) {
	assert.Nil(t, importer.TimestampString(nil))

	value := strp("2024-03-01 08:30:00")
	result := importer.TimestampString(value)
	assert.NotNil(t, result)
	assert.Equal(t, *value, *result)
}

// The gender mapping must be total: any code outside the known set, and a
// missing code, map to "other" rather than failing the row.
func TestMapGender(t *testing.T) {
	testCases := []struct {
		name     string
		code     *int64
		expected string
	}{
		{name: "Zero is female", code: i64p(0), expected: model.GenderFemale},
		{name: "One is male", code: i64p(1), expected: model.GenderMale},
		{name: "Unknown positive code", code: i64p(2), expected: model.GenderOther},
		{name: "Unknown negative code", code: i64p(-1), expected: model.GenderOther},
		{name: "Absent code", code: nil, expected: model.GenderOther},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, importer.MapGender(tc.code))
		})
	}
}
