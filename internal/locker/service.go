package locker

import (
	"context"
	"errors"
	"fmt"

	"github.com/smghasemi/membersync/internal/model"
	"github.com/smghasemi/membersync/internal/shared/database"
	"gorm.io/gorm"
)

type LockerService struct {
	db               *gorm.DB
	lockerRepository *LockerRepository
}

func NewLockerService(db *gorm.DB, lockerRepository *LockerRepository) *LockerService {
	return &LockerService{
		db:               db,
		lockerRepository: lockerRepository,
	}
}

func (s *LockerService) Get(ctx context.Context, id int64) (*LockerResponse, error) {
	locker, err := s.lockerRepository.FindByID(ctx, s.db, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("locker %d: %w", id, ErrLockerNotFound)
		}
		return nil, fmt.Errorf("find locker: %w", err)
	}
	return toResponse(locker), nil
}

func (s *LockerService) List(ctx context.Context, filters ListFilters) ([]LockerResponse, error) {
	lockers, err := s.lockerRepository.List(ctx, s.db, filters)
	if err != nil {
		return nil, fmt.Errorf("list lockers: %w", err)
	}

	responses := make([]LockerResponse, len(lockers))
	for i := range lockers {
		responses[i] = *toResponse(&lockers[i])
	}
	return responses, nil
}

func (s *LockerService) Create(ctx context.Context, request *CreateLockerRequest) (*LockerResponse, error) {
	locker := &model.Locker{
		IsVIP:    request.IsVIP,
		IsOpen:   request.IsOpen,
		UserID:   request.UserID,
		FullName: request.FullName,
	}

	if err := s.lockerRepository.Create(ctx, s.db, locker); err != nil {
		return nil, fmt.Errorf("create locker: %w", err)
	}
	return toResponse(locker), nil
}

func (s *LockerService) Patch(ctx context.Context, id int64, request *UpdateLockerRequest) (*LockerResponse, error) {
	var response *LockerResponse

	err := database.WithTransaction(ctx, s.db, func(tx *gorm.DB) error {
		locker, err := s.lockerRepository.FindByID(ctx, tx, id)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("locker %d: %w", id, ErrLockerNotFound)
			}
			return fmt.Errorf("find locker: %w", err)
		}

		if request.IsVIP != nil {
			locker.IsVIP = *request.IsVIP
		}
		if request.IsOpen != nil {
			locker.IsOpen = *request.IsOpen
		}
		if request.UserID != nil {
			locker.UserID = request.UserID
		}
		if request.FullName != nil {
			locker.FullName = request.FullName
		}

		if err := s.lockerRepository.Save(ctx, tx, locker); err != nil {
			return fmt.Errorf("save locker: %w", err)
		}

		response = toResponse(locker)
		return nil
	})

	if err != nil {
		return nil, err
	}
	return response, nil
}

func (s *LockerService) Delete(ctx context.Context, id int64) error {
	affected, err := s.lockerRepository.Delete(ctx, s.db, id)
	if err != nil {
		return fmt.Errorf("delete locker: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("locker %d: %w", id, ErrLockerNotFound)
	}
	return nil
}

func toResponse(locker *model.Locker) *LockerResponse {
	return &LockerResponse{
		ID:       locker.ID,
		IsVIP:    locker.IsVIP,
		IsOpen:   locker.IsOpen,
		UserID:   locker.UserID,
		FullName: locker.FullName,
	}
}
