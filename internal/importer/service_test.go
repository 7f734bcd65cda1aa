package importer_test

import (
	"context"
	"errors"
	"testing"

	"github.com/smghasemi/membersync/internal/importer"
	"github.com/smghasemi/membersync/internal/model"
	"github.com/smghasemi/membersync/internal/shared/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// fakeSource serves canned rows and records which tables were read, so
// tests can assert on ordering and on the abort point of a failed run.
type fakeSource struct {
	shifts          []importer.ShiftRow
	roles           []importer.RoleRow
	membershipTypes []importer.MembershipTypeRow
	users           []importer.UserRow
	people          []importer.PersonRow
	members         []importer.MemberRow

	peopleErr error

	reads  []string
	closed bool
}

func (f *fakeSource) Shifts(ctx context.Context) ([]importer.ShiftRow, error) {
	f.reads = append(f.reads, "shift")
	return f.shifts, nil
}

func (f *fakeSource) Roles(ctx context.Context) ([]importer.RoleRow, error) {
	f.reads = append(f.reads, "role")
	return f.roles, nil
}

func (f *fakeSource) MembershipTypes(ctx context.Context) ([]importer.MembershipTypeRow, error) {
	f.reads = append(f.reads, "membership_type")
	return f.membershipTypes, nil
}

func (f *fakeSource) Users(ctx context.Context) ([]importer.UserRow, error) {
	f.reads = append(f.reads, "user")
	return f.users, nil
}

func (f *fakeSource) People(ctx context.Context) ([]importer.PersonRow, error) {
	f.reads = append(f.reads, "person")
	if f.peopleErr != nil {
		return nil, f.peopleErr
	}
	return f.people, nil
}

func (f *fakeSource) Members(ctx context.Context) ([]importer.MemberRow, error) {
	f.reads = append(f.reads, "member")
	return f.members, nil
}

func (f *fakeSource) Close() error {
	f.closed = true
	return nil
}

// fullSource returns one row per table, with the member referencing the
// shift, role, and user rows imported earlier in the same run.
func fullSource() *fakeSource {
	return &fakeSource{
		shifts:          []importer.ShiftRow{{ShiftID: 10, ShiftDesc: strp("Morning")}},
		roles:           []importer.RoleRow{{RoleID: 20, RoleDesc: strp("Athlete")}},
		membershipTypes: []importer.MembershipTypeRow{{MembershipTypeID: 30, MembershipTypeDesc: strp("Monthly")}},
		users: []importer.UserRow{{
			UserID:       40,
			PersonID:     i64p(50),
			UserName:     strp("reception"),
			UPassword:    strp("secret"),
			IsActive:     true,
			CreationDate: strp("2024-01-02"),
			CreationTime: strp("09:00:00"),
		}},
		people: []importer.PersonRow{{
			PersonID:  50,
			FirstName: strp("Sara"),
			Gender:    i64p(0),
			UserID:    i64p(40),
		}},
		members: []importer.MemberRow{{
			MemberID: 60,
			CardNo:   strp("A-100"),
			PersonID: i64p(50),
			RoleID:   i64p(20),
			UserID:   i64p(40),
			ShiftID:  i64p(10),
		}},
	}
}

func setupImportService(t *testing.T, src importer.Source, factoryErr error) (*importer.ImportService, *gorm.DB, *int) {
	t.Helper()

	db := testutil.SetupTestDB(t)
	t.Cleanup(func() {
		testutil.CleanupTestDB(t, db)
	})

	factoryCalls := 0
	factory := func(ctx context.Context, server, database string) (importer.Source, error) {
		factoryCalls++
		if factoryErr != nil {
			return nil, factoryErr
		}
		return src, nil
	}

	service := importer.NewImportService(db, importer.NewStore(), factory)
	return service, db, &factoryCalls
}

func TestImportService_Run_Success(t *testing.T) {
	src := fullSource()
	service, db, _ := setupImportService(t, src, nil)

	report, err := service.Run(context.Background(), "legacy-host", "AccessControl")
	require.NoError(t, err)

	// Tables are processed in dependency order, one result per table.
	expected := []importer.TableResult{
		{Table: "shift", Rows: 1},
		{Table: "role", Rows: 1},
		{Table: "membership_type", Rows: 1},
		{Table: "user", Rows: 1},
		{Table: "person", Rows: 1},
		{Table: "member", Rows: 1},
	}
	assert.Equal(t, expected, report.Tables)
	assert.Equal(t, []string{"shift", "role", "membership_type", "user", "person", "member"}, src.reads)
	assert.True(t, src.closed)

	// The member row carries resolved references.
	var member model.Member
	require.NoError(t, db.Where("member_id = ?", 60).First(&member).Error)
	require.NotNil(t, member.RoleID)
	assert.Equal(t, int64(20), *member.RoleID)
	require.NotNil(t, member.UserID)
	assert.Equal(t, int64(40), *member.UserID)
	require.NotNil(t, member.ShiftID)
	assert.Equal(t, int64(10), *member.ShiftID)
	require.NotNil(t, member.PersonID)
	assert.Equal(t, int64(50), *member.PersonID)

	// Normalized fields survived the pipeline.
	var user model.User
	require.NoError(t, db.Where("user_id = ?", 40).First(&user).Error)
	require.NotNil(t, user.CreationDatetime)
	assert.Equal(t, "2024-01-02 09:00:00", *user.CreationDatetime)

	var person model.Person
	require.NoError(t, db.Where("person_id = ?", 50).First(&person).Error)
	assert.Equal(t, model.GenderFemale, person.Gender)
}

func TestImportService_Run_Idempotent(t *testing.T) {
	src := fullSource()
	service, db, _ := setupImportService(t, src, nil)

	_, err := service.Run(context.Background(), "legacy-host", "AccessControl")
	require.NoError(t, err)

	// Re-running the same snapshot updates in place instead of duplicating.
	report, err := service.Run(context.Background(), "legacy-host", "AccessControl")
	require.NoError(t, err)
	assert.Len(t, report.Tables, 6)

	var shiftCount, memberCount int64
	require.NoError(t, db.Model(&model.Shift{}).Count(&shiftCount).Error)
	require.NoError(t, db.Model(&model.Member{}).Count(&memberCount).Error)
	assert.Equal(t, int64(1), shiftCount)
	assert.Equal(t, int64(1), memberCount)
}

func TestImportService_Run_MissingInput(t *testing.T) {
	service, _, factoryCalls := setupImportService(t, fullSource(), nil)

	_, err := service.Run(context.Background(), "", "AccessControl")
	assert.ErrorIs(t, err, importer.ErrMissingInput)

	_, err = service.Run(context.Background(), "legacy-host", "")
	assert.ErrorIs(t, err, importer.ErrMissingInput)

	// Validation happens before any connection attempt.
	assert.Equal(t, 0, *factoryCalls)
}

func TestImportService_Run_SourceConnectionFailure(t *testing.T) {
	connErr := errors.Join(errors.New("dial tcp: refused"), importer.ErrSourceConnection)
	service, db, _ := setupImportService(t, nil, connErr)

	_, err := service.Run(context.Background(), "legacy-host", "AccessControl")
	assert.ErrorIs(t, err, importer.ErrSourceConnection)

	var shiftCount int64
	require.NoError(t, db.Model(&model.Shift{}).Count(&shiftCount).Error)
	assert.Equal(t, int64(0), shiftCount)
}

func TestImportService_Run_ReadFailureAborts(t *testing.T) {
	src := fullSource()
	src.peopleErr = errors.New("connection reset")
	service, db, _ := setupImportService(t, src, nil)

	_, err := service.Run(context.Background(), "legacy-host", "AccessControl")
	assert.ErrorIs(t, err, importer.ErrSourceConnection)

	// Later tables are never read.
	assert.NotContains(t, src.reads, "member")
	assert.True(t, src.closed)

	// Tables written before the failure stay written; there is no rollback.
	var shiftCount, memberCount int64
	require.NoError(t, db.Model(&model.Shift{}).Count(&shiftCount).Error)
	require.NoError(t, db.Model(&model.Member{}).Count(&memberCount).Error)
	assert.Equal(t, int64(1), shiftCount)
	assert.Equal(t, int64(0), memberCount)
}

func TestImportService_Run_UnresolvedRoleReference(t *testing.T) {
	src := fullSource()
	src.members[0].RoleID = i64p(999) // no such role
	service, db, _ := setupImportService(t, src, nil)

	_, err := service.Run(context.Background(), "legacy-host", "AccessControl")
	assert.ErrorIs(t, err, importer.ErrReferenceResolution)

	var memberCount int64
	require.NoError(t, db.Model(&model.Member{}).Count(&memberCount).Error)
	assert.Equal(t, int64(0), memberCount)

	// The five tables before the failing one are already persisted.
	var personCount int64
	require.NoError(t, db.Model(&model.Person{}).Count(&personCount).Error)
	assert.Equal(t, int64(1), personCount)
}

func TestImportService_Run_AbsentShiftReference(t *testing.T) {
	src := fullSource()
	src.members[0].ShiftID = nil
	service, _, _ := setupImportService(t, src, nil)

	_, err := service.Run(context.Background(), "legacy-host", "AccessControl")
	assert.ErrorIs(t, err, importer.ErrReferenceResolution)
}
