package importer

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/smghasemi/membersync/internal/config"

	_ "github.com/microsoft/go-mssqldb"
)

// Row types mirror the declared column order of each legacy table. Nullable
// columns are pointers; absent booleans collapse to false, matching how the
// legacy application reads them.

type ShiftRow struct {
	ShiftID   int64
	ShiftDesc *string
}

type RoleRow struct {
	RoleID   int64
	RoleDesc *string
}

type MembershipTypeRow struct {
	MembershipTypeID   int64
	MembershipTypeDesc *string
}

type UserRow struct {
	UserID       int64
	PersonID     *int64
	UserName     *string
	UPassword    *string
	IsAdmin      bool
	ShiftID      *int64
	IsActive     bool
	CreationDate *string
	CreationTime *string
}

type PersonRow struct {
	PersonID         int64
	FirstName        *string
	LastName         *string
	FullName         *string
	FatherName       *string
	Gender           *int64
	NationalCode     *string
	NIdentity        *string
	PersonImage      any // raw binary or hex string, normalized by Transcode
	ThumbnailImage   any
	BirthDate        *string
	Tel              *string
	Mobile           *string
	Email            *string
	Education        *string
	Job              *string
	HasInsurance     bool
	InsuranceNo      *string
	InsStartDate     *string
	InsEndDate       *string
	PAddress         *string
	HasParent        bool
	TeamName         *string
	ShiftID          *int64
	UserID           *int64
	CreationDate     *string
	CreationTime     *string
	Modifier         *string
	ModificationTime *string
}

type MemberRow struct {
	MemberID         int64
	CardNo           *string
	PersonID         *int64
	RoleID           *int64
	UserID           *int64
	ShiftID          *int64
	IsBlackList      bool
	BoxNo            *int64
	HasFinger        bool
	MembershipDate   *string
	MembershipTime   *string
	Modifier         *string
	ModificationTime *string
	IsFamily         bool
	MaxDebit         *float64
	Minutiae         []byte
	Minutiae2        []byte
	Minutiae3        []byte
	Salary           *float64
	FaceTemplate1    []byte
	FaceTemplate2    []byte
	FaceTemplate3    []byte
	FaceTemplate4    []byte
	FaceTemplate5    []byte
}

// Source reads full-table snapshots from the legacy access-control database.
// Each method performs one scan with no incremental cursor.
type Source interface {
	Shifts(ctx context.Context) ([]ShiftRow, error)
	Roles(ctx context.Context) ([]RoleRow, error)
	MembershipTypes(ctx context.Context) ([]MembershipTypeRow, error)
	Users(ctx context.Context) ([]UserRow, error)
	People(ctx context.Context) ([]PersonRow, error)
	Members(ctx context.Context) ([]MemberRow, error)
	Close() error
}

// SourceFactory opens a source for one import run. The returned Source is
// closed unconditionally when the run finishes.
type SourceFactory func(ctx context.Context, server, database string) (Source, error)

// Date/time columns are converted to text server-side (style 23 is
// yyyy-mm-dd, style 108 is hh:mm:ss) so the normalization stays textual.
const (
	queryShifts          = `SELECT ShiftID, ShiftDesc FROM Gen_Shift`
	queryRoles           = `SELECT RoleID, RoleDesc FROM Gen_PersonRole`
	queryMembershipTypes = `SELECT MembershipTypeID, MembershipTypeDesc FROM Gen_MembershipType`

	queryUsers = `SELECT UserID, PersonID, UserName, UPassword, IsAdmin, ShiftID,
		IsActive, CONVERT(varchar(10), CreationDate, 23), CONVERT(varchar(8), CreationTime, 108)
		FROM Sec_Users`

	queryPeople = `SELECT PersonID, FirstName, LastName, FullName, FatherName, Gender, NationalCode,
		Nidentity, PersonImage, ThumbnailImage, CONVERT(varchar(10), BirthDate, 23), Tel, Mobile, Email,
		Education, Job, HasInsurance, InsuranceNo, CONVERT(varchar(10), InsStartDate, 23),
		CONVERT(varchar(10), InsEndDate, 23), PAddress, HasParrent, TeamName, ShiftID, UserID,
		CONVERT(varchar(10), CreationDate, 23), CONVERT(varchar(8), CreationTime, 108), Modifier,
		CONVERT(varchar(19), ModificationTime, 120)
		FROM Gen_Person`

	queryMembers = `SELECT MemberID, CardNo, PersonID, RoleID, UserID, ShiftID,
		IsBlackList, BoxRadifNo, HasFinger, CONVERT(varchar(10), MembershipDate, 23),
		CONVERT(varchar(8), MembershipTime, 108), Modifier, CONVERT(varchar(19), Modificationtime, 120),
		IsFamily, MaxDebit, Minutiae, Minutiae2, Minutiae3, Salary, FaceTmpl1, FaceTmpl2, FaceTmpl3,
		FaceTmpl4, FaceTmpl5
		FROM Gen_Members`
)

// mssqlSource is the production Source backed by the go-mssqldb driver.
type mssqlSource struct {
	db *sql.DB
}

// NewMSSQLSourceFactory returns a factory that dials the given SQL Server
// with a trusted connection, the way the legacy importer did.
func NewMSSQLSourceFactory(cfg config.SourceConfig) SourceFactory {
	return func(ctx context.Context, server, database string) (Source, error) {
		dsn := fmt.Sprintf("server=%s;database=%s;trusted_connection=yes", server, database)

		db, err := sql.Open("sqlserver", dsn)
		if err != nil {
			return nil, fmt.Errorf("open source connection: %v: %w", err, ErrSourceConnection)
		}

		pingCtx, cancel := context.WithTimeout(ctx, cfg.ConnectTimeout)
		defer cancel()

		if err := db.PingContext(pingCtx); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("ping source %q database %q: %v: %w", server, database, err, ErrSourceConnection)
		}

		return &mssqlSource{db: db}, nil
	}
}

// newSourceFromDB wraps an existing handle; used by tests with sqlmock.
func newSourceFromDB(db *sql.DB) *mssqlSource {
	return &mssqlSource{db: db}
}

func (s *mssqlSource) Close() error {
	return s.db.Close()
}

func (s *mssqlSource) Shifts(ctx context.Context) ([]ShiftRow, error) {
	rows, err := s.db.QueryContext(ctx, queryShifts)
	if err != nil {
		return nil, fmt.Errorf("query shifts: %w", err)
	}
	defer rows.Close()

	var out []ShiftRow
	for rows.Next() {
		var (
			r    ShiftRow
			desc sql.NullString
		)
		if err := rows.Scan(&r.ShiftID, &desc); err != nil {
			return nil, fmt.Errorf("scan shift row: %w", err)
		}
		r.ShiftDesc = strPtr(desc)
		out = append(out, r)
	}
	return out, rows.Err()
}

func (s *mssqlSource) Roles(ctx context.Context) ([]RoleRow, error) {
	rows, err := s.db.QueryContext(ctx, queryRoles)
	if err != nil {
		return nil, fmt.Errorf("query roles: %w", err)
	}
	defer rows.Close()

	var out []RoleRow
	for rows.Next() {
		var (
			r    RoleRow
			desc sql.NullString
		)
		if err := rows.Scan(&r.RoleID, &desc); err != nil {
			return nil, fmt.Errorf("scan role row: %w", err)
		}
		r.RoleDesc = strPtr(desc)
		out = append(out, r)
	}
	return out, rows.Err()
}

func (s *mssqlSource) MembershipTypes(ctx context.Context) ([]MembershipTypeRow, error) {
	rows, err := s.db.QueryContext(ctx, queryMembershipTypes)
	if err != nil {
		return nil, fmt.Errorf("query membership types: %w", err)
	}
	defer rows.Close()

	var out []MembershipTypeRow
	for rows.Next() {
		var (
			r    MembershipTypeRow
			desc sql.NullString
		)
		if err := rows.Scan(&r.MembershipTypeID, &desc); err != nil {
			return nil, fmt.Errorf("scan membership type row: %w", err)
		}
		r.MembershipTypeDesc = strPtr(desc)
		out = append(out, r)
	}
	return out, rows.Err()
}

func (s *mssqlSource) Users(ctx context.Context) ([]UserRow, error) {
	rows, err := s.db.QueryContext(ctx, queryUsers)
	if err != nil {
		return nil, fmt.Errorf("query users: %w", err)
	}
	defer rows.Close()

	var out []UserRow
	for rows.Next() {
		var (
			r                    UserRow
			personID, shiftID    sql.NullInt64
			username, password   sql.NullString
			isAdmin, isActive    sql.NullBool
			creationD, creationT sql.NullString
		)
		if err := rows.Scan(&r.UserID, &personID, &username, &password, &isAdmin,
			&shiftID, &isActive, &creationD, &creationT); err != nil {
			return nil, fmt.Errorf("scan user row: %w", err)
		}
		r.PersonID = i64Ptr(personID)
		r.UserName = strPtr(username)
		r.UPassword = strPtr(password)
		r.IsAdmin = isAdmin.Valid && isAdmin.Bool
		r.ShiftID = i64Ptr(shiftID)
		r.IsActive = isActive.Valid && isActive.Bool
		r.CreationDate = strPtr(creationD)
		r.CreationTime = strPtr(creationT)
		out = append(out, r)
	}
	return out, rows.Err()
}

func (s *mssqlSource) People(ctx context.Context) ([]PersonRow, error) {
	rows, err := s.db.QueryContext(ctx, queryPeople)
	if err != nil {
		return nil, fmt.Errorf("query people: %w", err)
	}
	defer rows.Close()

	var out []PersonRow
	for rows.Next() {
		var (
			r PersonRow

			firstName, lastName, fullName, fatherName sql.NullString
			gender                                    sql.NullInt64
			nationalCode, nIdentity                   sql.NullString
			birthDate, tel, mobile, email             sql.NullString
			education, job                            sql.NullString
			hasInsurance, hasParent                   sql.NullBool
			insuranceNo, insStart, insEnd             sql.NullString
			pAddress, teamName                        sql.NullString
			shiftID, userID                           sql.NullInt64
			creationD, creationT                      sql.NullString
			modifier, modificationT                   sql.NullString
		)
		if err := rows.Scan(&r.PersonID, &firstName, &lastName, &fullName, &fatherName,
			&gender, &nationalCode, &nIdentity, &r.PersonImage, &r.ThumbnailImage,
			&birthDate, &tel, &mobile, &email, &education, &job, &hasInsurance,
			&insuranceNo, &insStart, &insEnd, &pAddress, &hasParent, &teamName,
			&shiftID, &userID, &creationD, &creationT, &modifier, &modificationT); err != nil {
			return nil, fmt.Errorf("scan person row: %w", err)
		}
		r.FirstName = strPtr(firstName)
		r.LastName = strPtr(lastName)
		r.FullName = strPtr(fullName)
		r.FatherName = strPtr(fatherName)
		r.Gender = i64Ptr(gender)
		r.NationalCode = strPtr(nationalCode)
		r.NIdentity = strPtr(nIdentity)
		r.BirthDate = strPtr(birthDate)
		r.Tel = strPtr(tel)
		r.Mobile = strPtr(mobile)
		r.Email = strPtr(email)
		r.Education = strPtr(education)
		r.Job = strPtr(job)
		r.HasInsurance = hasInsurance.Valid && hasInsurance.Bool
		r.InsuranceNo = strPtr(insuranceNo)
		r.InsStartDate = strPtr(insStart)
		r.InsEndDate = strPtr(insEnd)
		r.PAddress = strPtr(pAddress)
		r.HasParent = hasParent.Valid && hasParent.Bool
		r.TeamName = strPtr(teamName)
		r.ShiftID = i64Ptr(shiftID)
		r.UserID = i64Ptr(userID)
		r.CreationDate = strPtr(creationD)
		r.CreationTime = strPtr(creationT)
		r.Modifier = strPtr(modifier)
		r.ModificationTime = strPtr(modificationT)
		out = append(out, r)
	}
	return out, rows.Err()
}

func (s *mssqlSource) Members(ctx context.Context) ([]MemberRow, error) {
	rows, err := s.db.QueryContext(ctx, queryMembers)
	if err != nil {
		return nil, fmt.Errorf("query members: %w", err)
	}
	defer rows.Close()

	var out []MemberRow
	for rows.Next() {
		var (
			r MemberRow

			cardNo                           sql.NullString
			personID, roleID, userID         sql.NullInt64
			shiftID, boxNo                   sql.NullInt64
			isBlackList, hasFinger, isFamily sql.NullBool
			membershipD, membershipT         sql.NullString
			modifier, modificationT          sql.NullString
			maxDebit, salary                 sql.NullFloat64
		)
		if err := rows.Scan(&r.MemberID, &cardNo, &personID, &roleID, &userID, &shiftID,
			&isBlackList, &boxNo, &hasFinger, &membershipD, &membershipT, &modifier,
			&modificationT, &isFamily, &maxDebit, &r.Minutiae, &r.Minutiae2, &r.Minutiae3,
			&salary, &r.FaceTemplate1, &r.FaceTemplate2, &r.FaceTemplate3,
			&r.FaceTemplate4, &r.FaceTemplate5); err != nil {
			return nil, fmt.Errorf("scan member row: %w", err)
		}
		r.CardNo = strPtr(cardNo)
		r.PersonID = i64Ptr(personID)
		r.RoleID = i64Ptr(roleID)
		r.UserID = i64Ptr(userID)
		r.ShiftID = i64Ptr(shiftID)
		r.IsBlackList = isBlackList.Valid && isBlackList.Bool
		r.BoxNo = i64Ptr(boxNo)
		r.HasFinger = hasFinger.Valid && hasFinger.Bool
		r.MembershipDate = strPtr(membershipD)
		r.MembershipTime = strPtr(membershipT)
		r.Modifier = strPtr(modifier)
		r.ModificationTime = strPtr(modificationT)
		r.IsFamily = isFamily.Valid && isFamily.Bool
		r.MaxDebit = f64Ptr(maxDebit)
		r.Salary = f64Ptr(salary)
		out = append(out, r)
	}
	return out, rows.Err()
}

func strPtr(v sql.NullString) *string {
	if !v.Valid {
		return nil
	}
	s := v.String
	return &s
}

func i64Ptr(v sql.NullInt64) *int64 {
	if !v.Valid {
		return nil
	}
	n := v.Int64
	return &n
}

func f64Ptr(v sql.NullFloat64) *float64 {
	if !v.Valid {
		return nil
	}
	f := v.Float64
	return &f
}
