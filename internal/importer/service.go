package importer

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/smghasemi/membersync/internal/model"
	"github.com/smghasemi/membersync/internal/shared/logger"
	"gorm.io/gorm"
)

// ImportService drives a full synchronization run: six legacy tables,
// processed strictly in dependency order so that every hard reference a
// member row carries already exists when the row is written.
//
// Failure policy follows the legacy importer: the first unresolved
// reference or failed write aborts the remainder of the run, and tables
// written before that point stay written. There is no run-level rollback.
type ImportService struct {
	db        *gorm.DB
	store     *Store
	newSource SourceFactory

	// Serializes runs in-process; two concurrent imports against the same
	// destination keys would otherwise interleave their writes.
	mu sync.Mutex
}

func NewImportService(db *gorm.DB, store *Store, newSource SourceFactory) *ImportService {
	return &ImportService{
		db:        db,
		store:     store,
		newSource: newSource,
	}
}

// Run executes one synchronous import against the given source server and
// database. Both identifiers are required; their absence is reported before
// any connection is attempted.
func (s *ImportService) Run(ctx context.Context, server, database string) (*Report, error) {
	log := logger.FromContext(ctx)

	if server == "" || database == "" {
		return nil, fmt.Errorf("server and database are required: %w", ErrMissingInput)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	src, err := s.newSource(ctx, server, database)
	if err != nil {
		log.Error("import aborted: source connection failed", "server", server, "database", database, "error", err)
		return nil, err
	}
	defer func() {
		if err := src.Close(); err != nil {
			log.Warn("failed to close source connection", "error", err)
		}
	}()

	log.Info("import run started", "server", server, "database", database)

	report := &Report{}
	steps := []struct {
		table string
		run   func(context.Context, Source) (int, error)
	}{
		{"shift", s.importShifts},
		{"role", s.importRoles},
		{"membership_type", s.importMembershipTypes},
		{"user", s.importUsers},
		{"person", s.importPeople},
		{"member", s.importMembers},
	}

	for _, step := range steps {
		n, err := step.run(ctx, src)
		if err != nil {
			log.Error("import aborted", "table", step.table, "error", err)
			return nil, fmt.Errorf("import table %s: %w", step.table, err)
		}
		report.Tables = append(report.Tables, TableResult{Table: step.table, Rows: n})
		log.Info("table synchronized", "table", step.table, "rows", n)
	}

	log.Info("import run completed", "server", server, "database", database)
	return report, nil
}

func (s *ImportService) importShifts(ctx context.Context, src Source) (int, error) {
	rows, err := src.Shifts(ctx)
	if err != nil {
		return 0, fmt.Errorf("read source: %v: %w", err, ErrSourceConnection)
	}

	for _, row := range rows {
		if err := s.store.UpsertShift(ctx, s.db, shiftFromRow(row)); err != nil {
			return 0, fmt.Errorf("shift %d: %v: %w", row.ShiftID, err, ErrPersistence)
		}
	}
	return len(rows), nil
}

func (s *ImportService) importRoles(ctx context.Context, src Source) (int, error) {
	rows, err := src.Roles(ctx)
	if err != nil {
		return 0, fmt.Errorf("read source: %v: %w", err, ErrSourceConnection)
	}

	for _, row := range rows {
		if err := s.store.UpsertRole(ctx, s.db, roleFromRow(row)); err != nil {
			return 0, fmt.Errorf("role %d: %v: %w", row.RoleID, err, ErrPersistence)
		}
	}
	return len(rows), nil
}

func (s *ImportService) importMembershipTypes(ctx context.Context, src Source) (int, error) {
	rows, err := src.MembershipTypes(ctx)
	if err != nil {
		return 0, fmt.Errorf("read source: %v: %w", err, ErrSourceConnection)
	}

	for _, row := range rows {
		if err := s.store.UpsertMembershipType(ctx, s.db, membershipTypeFromRow(row)); err != nil {
			return 0, fmt.Errorf("membership type %d: %v: %w", row.MembershipTypeID, err, ErrPersistence)
		}
	}
	return len(rows), nil
}

func (s *ImportService) importUsers(ctx context.Context, src Source) (int, error) {
	rows, err := src.Users(ctx)
	if err != nil {
		return 0, fmt.Errorf("read source: %v: %w", err, ErrSourceConnection)
	}

	for _, row := range rows {
		if err := s.store.UpsertUser(ctx, s.db, userFromRow(row)); err != nil {
			return 0, fmt.Errorf("user %d: %v: %w", row.UserID, err, ErrPersistence)
		}
	}
	return len(rows), nil
}

func (s *ImportService) importPeople(ctx context.Context, src Source) (int, error) {
	rows, err := src.People(ctx)
	if err != nil {
		return 0, fmt.Errorf("read source: %v: %w", err, ErrSourceConnection)
	}

	for _, row := range rows {
		if err := s.store.UpsertPerson(ctx, s.db, personFromRow(row)); err != nil {
			return 0, fmt.Errorf("person %d: %v: %w", row.PersonID, err, ErrPersistence)
		}
	}
	return len(rows), nil
}

func (s *ImportService) importMembers(ctx context.Context, src Source) (int, error) {
	rows, err := src.Members(ctx)
	if err != nil {
		return 0, fmt.Errorf("read source: %v: %w", err, ErrSourceConnection)
	}

	for _, row := range rows {
		member, err := s.resolveMember(ctx, row)
		if err != nil {
			return 0, err
		}
		if err := s.store.UpsertMember(ctx, s.db, member); err != nil {
			return 0, fmt.Errorf("member %d: %v: %w", row.MemberID, err, ErrPersistence)
		}
	}
	return len(rows), nil
}

// resolveMember maps a source member row to the destination model,
// resolving the three hard references against rows imported earlier in this
// run (or a prior one). A missing reference fails the member row and, by
// policy, the whole run. PersonID is intentionally left as a raw id.
func (s *ImportService) resolveMember(ctx context.Context, row MemberRow) (*model.Member, error) {
	role, err := s.resolveRole(ctx, row)
	if err != nil {
		return nil, err
	}
	user, err := s.resolveUser(ctx, row)
	if err != nil {
		return nil, err
	}
	shift, err := s.resolveShift(ctx, row)
	if err != nil {
		return nil, err
	}

	m := memberFromRow(row)
	m.RoleID = &role.RoleID
	m.UserID = &user.UserID
	m.ShiftID = &shift.ShiftID
	return m, nil
}

func (s *ImportService) resolveRole(ctx context.Context, row MemberRow) (*model.PersonRole, error) {
	if row.RoleID == nil {
		return nil, fmt.Errorf("member %d: role reference is absent: %w", row.MemberID, ErrReferenceResolution)
	}
	role, err := s.store.GetRole(ctx, s.db, *row.RoleID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("member %d: role %d not found: %w", row.MemberID, *row.RoleID, ErrReferenceResolution)
		}
		return nil, fmt.Errorf("member %d: look up role %d: %v: %w", row.MemberID, *row.RoleID, err, ErrPersistence)
	}
	return role, nil
}

func (s *ImportService) resolveUser(ctx context.Context, row MemberRow) (*model.User, error) {
	if row.UserID == nil {
		return nil, fmt.Errorf("member %d: user reference is absent: %w", row.MemberID, ErrReferenceResolution)
	}
	user, err := s.store.GetUser(ctx, s.db, *row.UserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("member %d: user %d not found: %w", row.MemberID, *row.UserID, ErrReferenceResolution)
		}
		return nil, fmt.Errorf("member %d: look up user %d: %v: %w", row.MemberID, *row.UserID, err, ErrPersistence)
	}
	return user, nil
}

func (s *ImportService) resolveShift(ctx context.Context, row MemberRow) (*model.Shift, error) {
	if row.ShiftID == nil {
		return nil, fmt.Errorf("member %d: shift reference is absent: %w", row.MemberID, ErrReferenceResolution)
	}
	shift, err := s.store.GetShift(ctx, s.db, *row.ShiftID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("member %d: shift %d not found: %w", row.MemberID, *row.ShiftID, ErrReferenceResolution)
		}
		return nil, fmt.Errorf("member %d: look up shift %d: %v: %w", row.MemberID, *row.ShiftID, err, ErrPersistence)
	}
	return shift, nil
}
