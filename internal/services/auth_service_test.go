package services

import (
	"testing"
	"time"

	"github.com/Amitkumarsahu1/Task-Management-System/internal/config"
	"github.com/Amitkumarsahu1/Task-Management-System/internal/dto"
	"github.com/Amitkumarsahu1/Task-Management-System/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func testAuthConfig() *config.Config {
	return &config.Config{
		JWTSecret:        "test-secret",
		JWTAccessExpiry:  15 * time.Minute,
		JWTRefreshExpiry: 168 * time.Hour,
		AdminInviteToken: "let-me-in",
	}
}

func newAuthService(t *testing.T) (*AuthService, *gorm.DB) {
	db := setupTestDB(t)
	return NewAuthService(db, testAuthConfig()), db
}

func TestAuthService_SignUpDefaultsToMember(t *testing.T) {
	svc, _ := newAuthService(t)

	resp, err := svc.SignUp(&dto.SignUpRequest{
		Name:     "Alice",
		Email:    "alice@example.com",
		Password: "supersecret",
	})
	require.NoError(t, err)

	assert.Equal(t, models.RoleMember, resp.User.Role)
	assert.NotEmpty(t, resp.AccessToken)
	assert.NotEmpty(t, resp.RefreshToken)
}

func TestAuthService_SignUpWithAdminJoinCode(t *testing.T) {
	svc, _ := newAuthService(t)

	resp, err := svc.SignUp(&dto.SignUpRequest{
		Name:          "Boss",
		Email:         "boss@example.com",
		Password:      "supersecret",
		AdminJoinCode: "let-me-in",
	})
	require.NoError(t, err)
	assert.Equal(t, models.RoleAdmin, resp.User.Role)

	// A wrong code silently falls back to member.
	resp, err = svc.SignUp(&dto.SignUpRequest{
		Name:          "Pretender",
		Email:         "pretender@example.com",
		Password:      "supersecret",
		AdminJoinCode: "wrong",
	})
	require.NoError(t, err)
	assert.Equal(t, models.RoleMember, resp.User.Role)
}

func TestAuthService_SignUpValidation(t *testing.T) {
	svc, _ := newAuthService(t)

	_, err := svc.SignUp(&dto.SignUpRequest{Email: "x@example.com", Password: "supersecret"})
	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "name", ve.Field)

	_, err = svc.SignUp(&dto.SignUpRequest{Name: "X", Email: "x@example.com", Password: "short"})
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "password", ve.Field)
}

func TestAuthService_SignUpRejectsDuplicateEmail(t *testing.T) {
	svc, _ := newAuthService(t)

	req := &dto.SignUpRequest{Name: "Alice", Email: "alice@example.com", Password: "supersecret"}
	_, err := svc.SignUp(req)
	require.NoError(t, err)

	_, err = svc.SignUp(req)
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestAuthService_Login(t *testing.T) {
	svc, _ := newAuthService(t)

	_, err := svc.SignUp(&dto.SignUpRequest{Name: "Alice", Email: "alice@example.com", Password: "supersecret"})
	require.NoError(t, err)

	resp, err := svc.Login(&dto.LoginRequest{Email: "alice@example.com", Password: "supersecret"})
	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", resp.User.Email)

	_, err = svc.Login(&dto.LoginRequest{Email: "alice@example.com", Password: "wrong"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Login(&dto.LoginRequest{Email: "nobody@example.com", Password: "supersecret"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuthService_RefreshRotatesToken(t *testing.T) {
	svc, _ := newAuthService(t)

	signup, err := svc.SignUp(&dto.SignUpRequest{Name: "Alice", Email: "alice@example.com", Password: "supersecret"})
	require.NoError(t, err)

	refreshed, err := svc.Refresh(&dto.RefreshRequest{RefreshToken: signup.RefreshToken})
	require.NoError(t, err)
	assert.NotEqual(t, signup.RefreshToken, refreshed.RefreshToken)

	// The old token was revoked by the rotation.
	_, err = svc.Refresh(&dto.RefreshRequest{RefreshToken: signup.RefreshToken})
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestAuthService_LogoutRevokesToken(t *testing.T) {
	svc, _ := newAuthService(t)

	signup, err := svc.SignUp(&dto.SignUpRequest{Name: "Alice", Email: "alice@example.com", Password: "supersecret"})
	require.NoError(t, err)

	require.NoError(t, svc.Logout(&dto.LogoutRequest{RefreshToken: signup.RefreshToken}))

	_, err = svc.Refresh(&dto.RefreshRequest{RefreshToken: signup.RefreshToken})
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestAuthService_Profile(t *testing.T) {
	svc, db := newAuthService(t)

	alice := createTestUser(t, db, "Alice", "alice@example.com", models.RoleMember)

	profile, err := svc.Profile(alice.ID)
	require.NoError(t, err)
	assert.Equal(t, "Alice", profile.Name)
	assert.Equal(t, models.RoleMember, profile.Role)
}
