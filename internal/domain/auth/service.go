package auth

import (
	"context"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"comercio/internal/core/apperror"
	"comercio/internal/core/tx"
	"comercio/internal/domain"
	"comercio/pkg/logger"
)

// ServiceConfig holds auth service configuration.
type ServiceConfig struct {
	PasswordMinLength int
}

// DefaultServiceConfig returns default configuration.
func DefaultServiceConfig() ServiceConfig {
	return ServiceConfig{
		PasswordMinLength: 8,
	}
}

// EmployeeResolver finds the sales employee linked to a login account.
type EmployeeResolver interface {
	ResolveByUserID(ctx context.Context, userID int) (code int, name string, err error)
}

// Service provides authentication and user account management.
type Service struct {
	userRepo   UserRepository
	employees  EmployeeResolver
	txManager  tx.Manager
	jwtService *JWTService
	config     ServiceConfig
}

// NewService creates a new auth service.
func NewService(
	userRepo UserRepository,
	employees EmployeeResolver,
	txManager tx.Manager,
	jwtService *JWTService,
	config ServiceConfig,
) *Service {
	return &Service{
		userRepo:   userRepo,
		employees:  employees,
		txManager:  txManager,
		jwtService: jwtService,
		config:     config,
	}
}

// Login authenticates user and returns a signed token.
// When the account is linked to a sales employee, the result carries
// the employee code and name for the client to default documents to.
func (s *Service) Login(ctx context.Context, creds Credentials) (*LoginResult, error) {
	user, err := s.userRepo.GetByUsername(ctx, creds.Username)
	if err != nil {
		// Only a missing account means bad credentials; store failures
		// must surface as such, not as a 401.
		if apperror.IsNotFound(err) {
			return nil, apperror.NewUnauthorized("invalid credentials")
		}
		return nil, fmt.Errorf("load user: %w", err)
	}
	if err := user.CanLogin(); err != nil {
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(creds.Password)); err != nil {
		return nil, apperror.NewUnauthorized("invalid credentials")
	}

	result := &LoginResult{
		UserID:   user.ID,
		Username: user.Username,
		Role:     user.Role,
	}

	if code, name, err := s.employees.ResolveByUserID(ctx, user.ID); err == nil {
		result.EmployeeCode = code
		result.EmployeeName = name
	} else if !apperror.IsNotFound(err) {
		return nil, fmt.Errorf("resolve employee: %w", err)
	}

	token, expiresAt, err := s.jwtService.GenerateAccessToken(user.ID, user.Username, user.Role, result.EmployeeCode)
	if err != nil {
		return nil, fmt.Errorf("generate access token: %w", err)
	}
	result.Token = token
	result.ExpiresAt = expiresAt

	logger.Info(ctx, "user logged in",
		"user_id", user.ID,
		"username", user.Username)

	return result, nil
}

// CreateUser creates a new login account with a hashed password.
func (s *Service) CreateUser(ctx context.Context, username, password, role string) (*User, error) {
	if err := s.validatePassword(password); err != nil {
		return nil, err
	}

	exists, err := s.userRepo.ExistsByUsername(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("check username exists: %w", err)
	}
	if exists {
		return nil, apperror.NewDuplicate("user", "username", username)
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := NewUser(username, string(passwordHash), role)
	if err := user.Validate(ctx); err != nil {
		return nil, err
	}

	err = s.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		if err := s.userRepo.Create(ctx, user); err != nil {
			return fmt.Errorf("create user: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.Info(ctx, "user created",
		"user_id", user.ID,
		"username", user.Username)

	return user, nil
}

// UpdateUser updates an account. An empty password keeps the stored hash.
func (s *Service) UpdateUser(ctx context.Context, id int, username, password, role string, active bool) (*User, error) {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	user.Username = username
	user.Role = role
	user.Active = active

	if password != "" {
		if err := s.validatePassword(password); err != nil {
			return nil, err
		}
		passwordHash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
		if err != nil {
			return nil, fmt.Errorf("hash password: %w", err)
		}
		user.PasswordHash = string(passwordHash)
	}

	if err := user.Validate(ctx); err != nil {
		return nil, err
	}

	err = s.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		if err := s.userRepo.Update(ctx, user); err != nil {
			return fmt.Errorf("update user: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return user, nil
}

// GetUserByID retrieves a user account.
func (s *Service) GetUserByID(ctx context.Context, id int) (*User, error) {
	return s.userRepo.GetByID(ctx, id)
}

// DeleteUser removes a user account.
func (s *Service) DeleteUser(ctx context.Context, id int) error {
	return s.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		return s.userRepo.Delete(ctx, id)
	})
}

// ListUsers lists accounts with filtering.
func (s *Service) ListUsers(ctx context.Context, filter domain.ListFilter) (domain.ListResult[*User], error) {
	return s.userRepo.List(ctx, filter)
}

func (s *Service) validatePassword(password string) error {
	if len(password) < s.config.PasswordMinLength {
		return apperror.NewValidation(
			fmt.Sprintf("password must be at least %d characters", s.config.PasswordMinLength),
		).WithDetail("field", "password")
	}
	return nil
}
