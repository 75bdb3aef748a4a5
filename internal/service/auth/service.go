package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/sunshine-dental/clinic-backend-go/internal/domain/auth"
	"github.com/sunshine-dental/clinic-backend-go/internal/domain/staff"
	"github.com/sunshine-dental/clinic-backend-go/internal/pkg/jwt"
	"golang.org/x/crypto/bcrypt"
)

// AuthServiceImpl implements auth.Service
type AuthServiceImpl struct {
	staffRepo staff.StaffRepository
	jwt       jwt.Service
}

// NewAuthService creates a new auth service instance
func NewAuthService(staffRepo staff.StaffRepository, jwtService jwt.Service) auth.Service {
	return &AuthServiceImpl{
		staffRepo: staffRepo,
		jwt:       jwtService,
	}
}

func (s *AuthServiceImpl) Login(ctx context.Context, req auth.LoginRequest) (auth.LoginResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.LoginResponse{}, err
	}

	member, err := s.staffRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return auth.LoginResponse{}, auth.ErrInvalidCredentials
		}
		return auth.LoginResponse{}, fmt.Errorf("failed to get staff by email: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(member.PasswordHash), []byte(req.Password)); err != nil {
		return auth.LoginResponse{}, auth.ErrInvalidCredentials
	}

	if !member.IsActive {
		return auth.LoginResponse{}, auth.ErrStaffInactive
	}

	token, expiresAt, err := s.jwt.GenerateAccessToken(member.ID, member.ClinicID, member.Email, member.Role)
	if err != nil {
		return auth.LoginResponse{}, fmt.Errorf("failed to create access token: %w", err)
	}

	return auth.LoginResponse{
		AccessToken: token,
		ExpiresAt:   expiresAt,
		StaffID:     member.ID,
		ClinicID:    member.ClinicID,
		Role:        string(member.Role),
	}, nil
}
