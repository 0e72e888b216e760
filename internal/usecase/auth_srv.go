package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"movie-review/internal/data/entity"
	"movie-review/internal/data/repository"
	"movie-review/internal/dto/request"
	"movie-review/internal/dto/response"
	"movie-review/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type AuthService interface {
	Register(ctx context.Context, req *request.RegisterRequest) (*response.AuthResponse, error)
	Login(ctx context.Context, req *request.LoginRequest) (*response.AuthResponse, error)
	// VerifyToken is pure: it checks signature and expiry and touches no store.
	VerifyToken(token string) (string, error)
	Me(ctx context.Context, userID string) (*response.UserResponse, error)
}

type authService struct {
	users  repository.UserRepository
	tokens *utils.TokenManager
	log    *zap.Logger
	now    func() time.Time
}

func NewAuthService(
	users repository.UserRepository,
	tokens *utils.TokenManager,
	log *zap.Logger,
) AuthService {
	return &authService{
		users:  users,
		tokens: tokens,
		log:    log.With(zap.String("service", "auth")),
		now:    time.Now,
	}
}

func (s *authService) Register(ctx context.Context, req *request.RegisterRequest) (*response.AuthResponse, error) {
	// 1. Validasi input
	req.Normalize()
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Register validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("%w: %s", ErrValidation, utils.FormatValidationErrors(errs))
	}

	// 2. Cek email sudah terdaftar
	existingUser, err := s.users.FindByEmail(ctx, req.Email)
	if err != nil {
		return nil, fmt.Errorf("check email: %w", err)
	}
	if existingUser != nil {
		s.log.Warn("Register with taken email", zap.String("email", req.Email))
		return nil, fmt.Errorf("email %w", ErrConflict)
	}

	// 3. Hash password
	hashedPassword, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	// 4. Save user; the store's unique index settles concurrent registrations
	now := s.now().UTC().Truncate(time.Millisecond)
	user := &entity.User{
		Base: entity.Base{
			ID:        uuid.NewString(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: hashedPassword,
	}

	if err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicateKey) {
			s.log.Warn("Register lost race on email", zap.String("email", req.Email))
			return nil, fmt.Errorf("email %w", ErrConflict)
		}
		return nil, fmt.Errorf("create user: %w", err)
	}

	// 5. Auto login setelah register
	token, expiresAt, err := s.tokens.Generate(user.ID)
	if err != nil {
		return nil, fmt.Errorf("issue token: %w", err)
	}

	s.log.Info("User registered",
		zap.String("user_id", user.ID),
		zap.String("email", user.Email))

	resp := response.AuthToResponse(user, token, expiresAt)
	return &resp, nil
}

func (s *authService) Login(ctx context.Context, req *request.LoginRequest) (*response.AuthResponse, error) {
	req.Normalize()
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Login validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("%w: %s", ErrValidation, utils.FormatValidationErrors(errs))
	}

	user, err := s.users.FindByEmail(ctx, req.Email)
	if err != nil {
		return nil, fmt.Errorf("find user: %w", err)
	}

	// Unknown email and wrong password must be indistinguishable to the caller.
	if user == nil {
		utils.BurnPasswordCheck(req.Password)
		s.log.Warn("Login failed", zap.String("reason", "unknown_email"))
		return nil, ErrInvalidCredentials
	}

	if !utils.CheckPasswordHash(req.Password, user.PasswordHash) {
		s.log.Warn("Login failed",
			zap.String("reason", "password_mismatch"),
			zap.String("user_id", user.ID))
		return nil, ErrInvalidCredentials
	}

	token, expiresAt, err := s.tokens.Generate(user.ID)
	if err != nil {
		return nil, fmt.Errorf("issue token: %w", err)
	}

	s.log.Info("User logged in", zap.String("user_id", user.ID))

	resp := response.AuthToResponse(user, token, expiresAt)
	return &resp, nil
}

func (s *authService) VerifyToken(token string) (string, error) {
	userID, err := s.tokens.Verify(token)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}
	return userID, nil
}

func (s *authService) Me(ctx context.Context, userID string) (*response.UserResponse, error) {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("find user: %w", err)
	}
	if user == nil {
		return nil, fmt.Errorf("user %s %w", userID, ErrNotFound)
	}

	resp := response.UserToResponse(user)
	return &resp, nil
}
