package auth

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/smghasemi/membersync/internal/model"
	"github.com/smghasemi/membersync/internal/shared/logger"
	"github.com/smghasemi/membersync/internal/shared/token"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type AuthService struct {
	db             *gorm.DB
	userRepository *UserRepository
	tokenManager   token.Manager
}

func NewAuthService(db *gorm.DB, userRepository *UserRepository, tokenManager token.Manager) *AuthService {
	return &AuthService{
		db:             db,
		userRepository: userRepository,
		tokenManager:   tokenManager,
	}
}

// Login verifies the credentials and issues an access/refresh token pair.
//
// Imported accounts carry their password exactly as the legacy system stored
// it, which may be plaintext rather than a bcrypt hash. Those accounts are
// verified with a constant-time compare and upgraded to bcrypt on their first
// successful login.
func (s *AuthService) Login(ctx context.Context, request *LoginRequest) (*LoginResponse, error) {
	user, err := s.userRepository.FindByUsername(ctx, s.db, request.Username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("login %s: %w", logger.MaskUsername(request.Username), ErrIncorrectCredentials)
		}
		return nil, fmt.Errorf("find user by username: %w", err)
	}

	if !s.verifyPassword(ctx, user, request.Password) {
		return nil, fmt.Errorf("login %s: %w", logger.MaskUsername(request.Username), ErrIncorrectCredentials)
	}

	if !user.IsActive {
		return nil, fmt.Errorf("login %s: %w", logger.MaskUsername(request.Username), ErrUserInactive)
	}

	userID := strconv.FormatInt(user.UserID, 10)

	accessToken, err := s.tokenManager.GenerateAccessToken(userID, user.Username)
	if err != nil {
		return nil, fmt.Errorf("generate access token: %w", err)
	}

	refreshToken, err := s.tokenManager.GenerateRefreshToken(userID, user.Username)
	if err != nil {
		return nil, fmt.Errorf("generate refresh token: %w", err)
	}

	return &LoginResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}

func (s *AuthService) verifyPassword(ctx context.Context, user *model.User, password string) bool {
	if strings.HasPrefix(user.Password, "$2") {
		return bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)) == nil
	}

	// Legacy plaintext password imported from the source system.
	if subtle.ConstantTimeCompare([]byte(user.Password), []byte(password)) != 1 {
		return false
	}

	s.upgradePassword(ctx, user, password)
	return true
}

// upgradePassword re-hashes a legacy plaintext password with bcrypt. Failure
// is logged and ignored: the login itself already succeeded.
func (s *AuthService) upgradePassword(ctx context.Context, user *model.User, password string) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		logger.FromContext(ctx).Warn("[AUTH] failed to hash legacy password",
			"user_id", user.UserID,
			"error", err,
		)
		return
	}

	if err := s.userRepository.UpdatePassword(ctx, s.db, user.UserID, string(hashed)); err != nil {
		logger.FromContext(ctx).Warn("[AUTH] failed to upgrade legacy password",
			"user_id", user.UserID,
			"error", err,
		)
		return
	}
	user.Password = string(hashed)
}
