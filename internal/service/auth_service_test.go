package service

import (
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"hoa-be-svc/internal/repository"
)

func newTestAuthService(t *testing.T) (AuthService, repository.UserRepository, repository.HouseRepository) {
	t.Helper()

	db := setupTestDB(t)
	userRepo := repository.NewUserRepository(db)
	houseRepo := repository.NewHouseRepository(db)
	return NewAuthService(userRepo, houseRepo, testJWTConfig(), testLogger()), userRepo, houseRepo
}

func TestRegisterCreatesUser(t *testing.T) {
	svc, userRepo, _ := newTestAuthService(t)

	user, err := svc.Register(RegisterInput{
		Email:      "Juan.DelaCruz@Example.COM",
		Name:       "Juan dela Cruz",
		ContactNo:  "09171234567",
		ResidentID: "R-0001",
		Password:   "s3cret-pass",
		Password2:  "s3cret-pass",
	})
	require.NoError(t, err)

	assert.Equal(t, "juan.delacruz@example.com", user.Email)
	assert.Equal(t, user.Email, user.Username)
	assert.NotEqual(t, "s3cret-pass", user.PasswordHash)

	stored, err := userRepo.GetByEmail("juan.delacruz@example.com")
	require.NoError(t, err)
	assert.Equal(t, "R-0001", stored.ResidentNo)
}

func TestRegisterPasswordMismatch(t *testing.T) {
	svc, userRepo, _ := newTestAuthService(t)

	_, err := svc.Register(RegisterInput{
		Email:      "mismatch@example.com",
		Name:       "Mismatch",
		ContactNo:  "09170000000",
		ResidentID: "R-0002",
		Password:   "s3cret-pass",
		Password2:  "different-pass",
	})

	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "password", vErr.Field)

	// Nothing may be persisted for a failed registration.
	_, err = userRepo.GetByEmail("mismatch@example.com")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestRegisterPasswordPolicy(t *testing.T) {
	svc, _, _ := newTestAuthService(t)

	tests := []struct {
		name     string
		password string
	}{
		{"too short", "short"},
		{"entirely numeric", "12345678901"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Register(RegisterInput{
				Email:      "policy@example.com",
				Name:       "Policy",
				ContactNo:  "09170000000",
				ResidentID: "R-0003",
				Password:   tt.password,
				Password2:  tt.password,
			})

			var vErr *ValidationError
			require.ErrorAs(t, err, &vErr)
			assert.Equal(t, "password", vErr.Field)
		})
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc, _, _ := newTestAuthService(t)
	registerTestUser(t, svc, "dup@example.com", "R-0010")

	_, err := svc.Register(RegisterInput{
		Email:      "dup@example.com",
		Name:       "Second",
		ContactNo:  "09170000000",
		ResidentID: "R-0011",
		Password:   "s3cret-pass",
		Password2:  "s3cret-pass",
	})

	var cErr *ConflictError
	require.ErrorAs(t, err, &cErr)
	assert.Equal(t, "email", cErr.Field)
}

func TestRegisterDuplicateResidentID(t *testing.T) {
	svc, _, _ := newTestAuthService(t)
	registerTestUser(t, svc, "first@example.com", "R-0020")

	_, err := svc.Register(RegisterInput{
		Email:      "second@example.com",
		Name:       "Second",
		ContactNo:  "09170000000",
		ResidentID: "R-0020",
		Password:   "s3cret-pass",
		Password2:  "s3cret-pass",
	})

	var cErr *ConflictError
	require.ErrorAs(t, err, &cErr)
	assert.Equal(t, "resident_id", cErr.Field)
}

func TestRegisterUnknownHouse(t *testing.T) {
	svc, _, _ := newTestAuthService(t)

	houseID := uint(999)
	_, err := svc.Register(RegisterInput{
		Email:      "nohouse@example.com",
		Name:       "No House",
		ContactNo:  "09170000000",
		ResidentID: "R-0030",
		HouseID:    &houseID,
		Password:   "s3cret-pass",
		Password2:  "s3cret-pass",
	})

	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "house", vErr.Field)
}

func TestLoginIssuesTokenPairWithClaims(t *testing.T) {
	svc, _, _ := newTestAuthService(t)
	user := registerTestUser(t, svc, "login@example.com", "R-0040")

	pair, err := svc.Login("login@example.com", "s3cret-pass")
	require.NoError(t, err)

	assert.Equal(t, user.Name, pair.Name)
	assert.Equal(t, user.ResidentNo, pair.ResidentID)
	assert.Equal(t, user.Email, pair.Email)

	claims := parseTestToken(t, pair.Access)
	assert.Equal(t, user.ID, claims.UserID)
	assert.Equal(t, user.Name, claims.Name)
	assert.Equal(t, user.ResidentNo, claims.ResidentID)
	assert.Equal(t, user.Email, claims.Email)
	assert.Equal(t, TokenTypeAccess, claims.TokenType)

	refreshClaims := parseTestToken(t, pair.Refresh)
	assert.Equal(t, TokenTypeRefresh, refreshClaims.TokenType)
}

func TestLoginInvalidCredentials(t *testing.T) {
	svc, _, _ := newTestAuthService(t)
	registerTestUser(t, svc, "wrongpass@example.com", "R-0050")

	_, err := svc.Login("wrongpass@example.com", "not-the-password")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Login("nobody@example.com", "s3cret-pass")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestRefreshIssuesNewAccessToken(t *testing.T) {
	svc, _, _ := newTestAuthService(t)
	user := registerTestUser(t, svc, "refresh@example.com", "R-0060")

	pair, err := svc.Login("refresh@example.com", "s3cret-pass")
	require.NoError(t, err)

	access, err := svc.Refresh(pair.Refresh)
	require.NoError(t, err)

	claims, err := svc.ValidateAccessToken(access)
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)
	assert.Equal(t, TokenTypeAccess, claims.TokenType)
}

func TestRefreshRejectsAccessToken(t *testing.T) {
	svc, _, _ := newTestAuthService(t)
	registerTestUser(t, svc, "swapped@example.com", "R-0070")

	pair, err := svc.Login("swapped@example.com", "s3cret-pass")
	require.NoError(t, err)

	_, err = svc.Refresh(pair.Access)
	assert.Error(t, err)
}

func TestValidateAccessTokenRejectsRefreshToken(t *testing.T) {
	svc, _, _ := newTestAuthService(t)
	registerTestUser(t, svc, "astoken@example.com", "R-0080")

	pair, err := svc.Login("astoken@example.com", "s3cret-pass")
	require.NoError(t, err)

	_, err = svc.ValidateAccessToken(pair.Refresh)
	assert.Error(t, err)
}

func TestValidateAccessTokenRejectsForgedToken(t *testing.T) {
	svc, _, _ := newTestAuthService(t)

	forged := jwt.NewWithClaims(jwt.SigningMethodHS256, &Claims{
		UserID:    1,
		TokenType: TokenTypeAccess,
	})
	signed, err := forged.SignedString([]byte("wrong-secret"))
	require.NoError(t, err)

	_, err = svc.ValidateAccessToken(signed)
	assert.Error(t, err)
}

func parseTestToken(t *testing.T, tokenString string) *Claims {
	t.Helper()

	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		return []byte(testJWTConfig().Secret), nil
	})
	require.NoError(t, err)
	claims, ok := token.Claims.(*Claims)
	require.True(t, ok)
	return claims
}
