package service

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"faculty-schedule/backend/internal/dto"
	"faculty-schedule/backend/internal/model"
	"faculty-schedule/backend/internal/repository"
	"faculty-schedule/backend/pkg/jwt"
	"faculty-schedule/backend/pkg/redis"
)

var (
	ErrInvalidCredentials = errors.New("nom d'utilisateur ou mot de passe incorrect")
	ErrUsernameTaken      = errors.New("ce nom d'utilisateur est déjà pris")
	ErrEmailTaken         = errors.New("cette adresse email est déjà utilisée")
	ErrUserNotFound       = errors.New("user not found")
	ErrNotRefreshToken    = errors.New("token invalide")
)

// roleRedirects maps a role to its landing route after login.
var roleRedirects = map[string]string{
	"admin":   "/admin/dashboard",
	"teacher": "/teacher/schedule",
	"student": "/student/schedule",
}

// AuthService — registration, login, token refresh and logout.
type AuthService struct {
	repo   *repository.Repository
	jwt    *jwt.Manager
	redis  *redis.Client
	logger *zap.Logger
}

func NewAuthService(repo *repository.Repository, jwtManager *jwt.Manager, redisClient *redis.Client, logger *zap.Logger) *AuthService {
	return &AuthService{repo: repo, jwt: jwtManager, redis: redisClient, logger: logger}
}

// Register creates a student account bound to a program/year cohort.
// Admin and teacher accounts are provisioned by an administrator, never
// through self-registration.
func (s *AuthService) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.TokenResponse, error) {
	if _, err := s.repo.User.GetByUsername(ctx, req.Username); err == nil {
		return nil, ErrUsernameTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	if _, err := s.repo.User.GetByEmail(ctx, req.Email); err == nil {
		return nil, ErrEmailTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	if _, err := s.repo.Program.GetByID(ctx, req.ProgramID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProgramNotFound
		}
		return nil, err
	}

	user := &model.User{
		Username:  req.Username,
		Email:     req.Email,
		Role:      "student",
		ProgramID: &req.ProgramID,
		Year:      &req.Year,
	}
	if err := user.SetPassword(req.Password); err != nil {
		return nil, err
	}
	if err := s.repo.User.Create(ctx, user); err != nil {
		return nil, err
	}

	s.logger.Info("student registered",
		zap.Uint("user_id", user.ID),
		zap.String("username", user.Username))

	return s.issueTokens(user)
}

// Login verifies credentials and issues a token pair.
func (s *AuthService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.TokenResponse, error) {
	user, err := s.repo.User.GetByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if !user.CheckPassword(req.Password) {
		return nil, ErrInvalidCredentials
	}

	s.logger.Info("user logged in",
		zap.Uint("user_id", user.ID),
		zap.String("role", user.Role))

	return s.issueTokens(user)
}

// Refresh exchanges a valid refresh token for a new pair. The used refresh
// token is blacklisted so it cannot be replayed.
func (s *AuthService) Refresh(ctx context.Context, req *dto.RefreshRequest) (*dto.TokenResponse, error) {
	claims, err := s.jwt.ParseToken(req.RefreshToken)
	if err != nil {
		return nil, err
	}
	if claims.TokenType != "refresh" {
		return nil, ErrNotRefreshToken
	}
	if s.redis != nil {
		revoked, err := s.redis.IsBlacklisted(ctx, claims.ID)
		if err != nil {
			s.logger.Warn("blacklist check failed", zap.Error(err))
		} else if revoked {
			return nil, jwt.ErrTokenInvalid
		}
	}

	user, err := s.repo.User.GetByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	if s.redis != nil && claims.ExpiresAt != nil {
		ttl := time.Until(claims.ExpiresAt.Time)
		if err := s.redis.BlacklistToken(ctx, claims.ID, ttl); err != nil {
			s.logger.Warn("failed to blacklist refresh token", zap.Error(err))
		}
	}

	return s.issueTokens(user)
}

// Logout revokes the presented access token for its remaining lifetime.
// Without Redis revocation degrades to expiry-only.
func (s *AuthService) Logout(ctx context.Context, claims *jwt.Claims) error {
	if s.redis == nil || claims.ExpiresAt == nil {
		return nil
	}
	ttl := time.Until(claims.ExpiresAt.Time)
	if err := s.redis.BlacklistToken(ctx, claims.ID, ttl); err != nil {
		s.logger.Warn("failed to blacklist token", zap.Error(err))
		return err
	}
	s.logger.Info("user logged out", zap.Uint("user_id", claims.UserID))
	return nil
}

// Me returns the sanitized account of the authenticated user.
func (s *AuthService) Me(ctx context.Context, userID uint) (*dto.UserResponse, error) {
	user, err := s.repo.User.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	resp := toUserResponse(user)
	return &resp, nil
}

func (s *AuthService) issueTokens(user *model.User) (*dto.TokenResponse, error) {
	access, err := s.jwt.GenerateAccessToken(user.ID, user.Role)
	if err != nil {
		return nil, err
	}
	refresh, err := s.jwt.GenerateRefreshToken(user.ID, user.Role)
	if err != nil {
		return nil, err
	}
	return &dto.TokenResponse{
		AccessToken:  access,
		RefreshToken: refresh,
		ExpiresIn:    int(s.jwt.AccessTokenTTL().Seconds()),
		RedirectTo:   roleRedirects[user.Role],
		User:         toUserResponse(user),
	}, nil
}

func toUserResponse(user *model.User) dto.UserResponse {
	return dto.UserResponse{
		ID:        user.ID,
		Username:  user.Username,
		Email:     user.Email,
		Role:      user.Role,
		ProgramID: user.ProgramID,
		Year:      user.Year,
	}
}
