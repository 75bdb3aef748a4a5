package auth

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/sunshine-dental/clinic-backend-go/internal/domain/auth"
	"github.com/sunshine-dental/clinic-backend-go/internal/domain/staff"
	"github.com/sunshine-dental/clinic-backend-go/internal/pkg/jwt"
	"github.com/sunshine-dental/clinic-backend-go/internal/repository/inmemory"
	"golang.org/x/crypto/bcrypt"
)

func newAuthService(t *testing.T, members ...staff.Staff) auth.Service {
	t.Helper()
	return NewAuthService(
		inmemory.NewStaffRepository(members...),
		jwt.NewJWTService("test-secret", "1h"),
	)
}

func testStaff(t *testing.T) staff.Staff {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("correct-horse"), bcrypt.MinCost)
	require.NoError(t, err)
	return staff.Staff{
		ID:           "staff-1",
		ClinicID:     "clinic-1",
		FullName:     "Dr. Lan Pham",
		Email:        "lan@example.com",
		PasswordHash: string(hash),
		Role:         staff.RoleDoctor,
		IsActive:     true,
	}
}

func TestLogin_Success(t *testing.T) {
	t.Parallel()
	svc := newAuthService(t, testStaff(t))

	resp, err := svc.Login(context.Background(), auth.LoginRequest{
		Email:    "lan@example.com",
		Password: "correct-horse",
	})

	require.NoError(t, err)
	assert.NotEmpty(t, resp.AccessToken)
	assert.Equal(t, "staff-1", resp.StaffID)
	assert.Equal(t, "clinic-1", resp.ClinicID)
	assert.Equal(t, string(staff.RoleDoctor), resp.Role)
}

func TestLogin_WrongPassword(t *testing.T) {
	t.Parallel()
	svc := newAuthService(t, testStaff(t))

	_, err := svc.Login(context.Background(), auth.LoginRequest{
		Email:    "lan@example.com",
		Password: "wrong",
	})
	require.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestLogin_UnknownEmail(t *testing.T) {
	t.Parallel()
	svc := newAuthService(t)

	_, err := svc.Login(context.Background(), auth.LoginRequest{
		Email:    "nobody@example.com",
		Password: "whatever",
	})
	require.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestLogin_InactiveStaff(t *testing.T) {
	t.Parallel()
	member := testStaff(t)
	member.IsActive = false
	svc := newAuthService(t, member)

	_, err := svc.Login(context.Background(), auth.LoginRequest{
		Email:    "lan@example.com",
		Password: "correct-horse",
	})
	require.ErrorIs(t, err, auth.ErrStaffInactive)
}
