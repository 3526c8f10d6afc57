package services

import (
	"context"
	"errors"

	"stock-backend/internal/apperrors"
	"stock-backend/internal/auth"
	"stock-backend/internal/models"
	"stock-backend/internal/repositories"
)

// ErrInvalidCredentials is deliberately vague: callers can't tell a missing
// account from a wrong password.
var ErrInvalidCredentials = errors.New("invalid username or password")

type UserService struct {
	Repo       *repositories.UserRepository
	JWTManager *auth.JWTManager
}

func NewUserService(repo *repositories.UserRepository, jwtManager *auth.JWTManager) *UserService {
	return &UserService{Repo: repo, JWTManager: jwtManager}
}

func (s *UserService) CreateUser(ctx context.Context, req *models.CreateUserRequest) (*models.UserAccount, error) {
	if req.Username == "" {
		return nil, apperrors.Invalidf("username is required")
	}
	if req.Password == "" {
		return nil, apperrors.Invalidf("password is required")
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user := &models.UserAccount{
		Username:      req.Username,
		PasswordHash:  hash,
		IsStaff:       true,
		IsAdmin:       req.IsAdmin,
		CanEncode:     req.CanEncode,
		Firstname:     req.Firstname,
		MiddleInitial: req.MiddleInitial,
		Lastname:      req.Lastname,
		Gender:        req.Gender,
		Position:      req.Position,
	}
	if req.IsStaff != nil {
		user.IsStaff = *req.IsStaff
	}

	if err := s.Repo.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Login verifies credentials and issues a signed token. Suspended accounts
// cannot log in even with the right password.
func (s *UserService) Login(ctx context.Context, req *models.LoginRequest) (*models.AuthResponse, error) {
	user, err := s.Repo.GetByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if !auth.VerifyPassword(user.PasswordHash, req.Password) {
		return nil, ErrInvalidCredentials
	}

	if !user.IsActive {
		return nil, apperrors.Invalidf("account is suspended")
	}

	token, err := s.JWTManager.GenerateToken(user)
	if err != nil {
		return nil, err
	}

	return &models.AuthResponse{Token: token, User: user}, nil
}

func (s *UserService) GetUser(ctx context.Context, id int) (*models.UserAccount, error) {
	return s.Repo.Get(ctx, id)
}

func (s *UserService) ListUsers(ctx context.Context) ([]*models.UserAccount, error) {
	return s.Repo.List(ctx)
}

func (s *UserService) UpdateUser(ctx context.Context, id int, req *models.UpdateUserRequest) (*models.UserAccount, error) {
	user, err := s.Repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Password != "" {
		hash, err := auth.HashPassword(req.Password)
		if err != nil {
			return nil, err
		}
		user.PasswordHash = hash
	}
	if req.IsStaff != nil {
		user.IsStaff = *req.IsStaff
	}
	if req.IsAdmin != nil {
		user.IsAdmin = *req.IsAdmin
	}
	if req.CanEncode != nil {
		user.CanEncode = *req.CanEncode
	}
	user.Firstname = req.Firstname
	user.MiddleInitial = req.MiddleInitial
	user.Lastname = req.Lastname
	user.Gender = req.Gender
	user.Position = req.Position

	if err := s.Repo.Update(ctx, user); err != nil {
		return nil, err
	}
	return s.Repo.Get(ctx, id)
}

// ToggleUserActive flips the suspension flag
func (s *UserService) ToggleUserActive(ctx context.Context, id int) (*models.UserAccount, error) {
	if err := s.Repo.ToggleActive(ctx, id); err != nil {
		return nil, err
	}
	return s.Repo.Get(ctx, id)
}
