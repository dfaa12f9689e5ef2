package auth

import (
	"context"
	"fmt"
	"testing"

	"tendorai/internal/domain/tier"
	"tendorai/internal/domain/vendor"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	_ "modernc.org/sqlite"
)

type fakeJWT struct{}

func (fakeJWT) GenerateToken(userID int64, role string) (string, error) {
	return fmt.Sprintf("token-%d-%s", userID, role), nil
}

func setupAuth(t *testing.T) (*Service, *gorm.DB) {
	t.Helper()
	db, err := gorm.Open(sqlite.New(sqlite.Config{DriverName: "sqlite", DSN: ":memory:"}), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	if err != nil {
		t.Fatalf("failed to open sqlite db: %v", err)
	}
	if err := db.AutoMigrate(&User{}, &vendor.Vendor{}); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}
	return NewService(NewRepository(db), fakeJWT{}), db
}

func registerReq() *RegisterVendorRequest {
	return &RegisterVendorRequest{
		Email:       "Owner@Apex.Example",
		Password:    "s3cret-pass",
		Name:        "Sam Lee",
		CompanyName: "Apex Copiers",
		City:        "Manchester",
		Services:    []string{"photocopiers"},
	}
}

func TestRegisterVendor(t *testing.T) {
	svc, db := setupAuth(t)
	ctx := context.Background()

	user, v, err := svc.RegisterVendor(ctx, registerReq())
	require.NoError(t, err)

	assert.Equal(t, "owner@apex.example", user.Email)
	assert.Equal(t, RoleVendor, user.Role)
	assert.Empty(t, user.PasswordHash)

	assert.Equal(t, user.ID, v.UserID)
	assert.Equal(t, tier.RawFree, v.Tier)
	assert.Equal(t, vendor.StatusPending, v.Status)

	// both rows landed
	var users, vendors int64
	db.Model(&User{}).Count(&users)
	db.Model(&vendor.Vendor{}).Count(&vendors)
	assert.Equal(t, int64(1), users)
	assert.Equal(t, int64(1), vendors)
}

func TestRegisterVendorDuplicateEmail(t *testing.T) {
	svc, _ := setupAuth(t)
	ctx := context.Background()

	_, _, err := svc.RegisterVendor(ctx, registerReq())
	require.NoError(t, err)

	_, _, err = svc.RegisterVendor(ctx, registerReq())
	assert.ErrorIs(t, err, ErrEmailAlreadyExists)
}

func TestLogin(t *testing.T) {
	svc, _ := setupAuth(t)
	ctx := context.Background()

	_, _, err := svc.RegisterVendor(ctx, registerReq())
	require.NoError(t, err)

	result, err := svc.Login(ctx, &LoginRequest{Email: "owner@apex.example", Password: "s3cret-pass"})
	require.NoError(t, err)
	assert.NotEmpty(t, result.AccessToken)
	assert.Empty(t, result.User.PasswordHash)

	_, err = svc.Login(ctx, &LoginRequest{Email: "owner@apex.example", Password: "wrong"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Login(ctx, &LoginRequest{Email: "nobody@apex.example", Password: "s3cret-pass"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLoginLockout(t *testing.T) {
	svc, _ := setupAuth(t)
	ctx := context.Background()

	_, _, err := svc.RegisterVendor(ctx, registerReq())
	require.NoError(t, err)

	for i := 0; i < maxFailedLoginAttempts-1; i++ {
		_, err := svc.Login(ctx, &LoginRequest{Email: "owner@apex.example", Password: "wrong"})
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	}

	// the attempt that crosses the threshold locks the account
	_, err = svc.Login(ctx, &LoginRequest{Email: "owner@apex.example", Password: "wrong"})
	assert.ErrorIs(t, err, ErrAccountLocked)

	// even with the right password while locked
	_, err = svc.Login(ctx, &LoginRequest{Email: "owner@apex.example", Password: "s3cret-pass"})
	assert.ErrorIs(t, err, ErrAccountLocked)
}

func TestChangePassword(t *testing.T) {
	svc, _ := setupAuth(t)
	ctx := context.Background()

	user, _, err := svc.RegisterVendor(ctx, registerReq())
	require.NoError(t, err)

	err = svc.ChangePassword(ctx, user.ID, &ChangePasswordRequest{
		CurrentPassword: "wrong", NewPassword: "new-password-1",
	})
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	err = svc.ChangePassword(ctx, user.ID, &ChangePasswordRequest{
		CurrentPassword: "s3cret-pass", NewPassword: "new-password-1",
	})
	require.NoError(t, err)

	_, err = svc.Login(ctx, &LoginRequest{Email: "owner@apex.example", Password: "new-password-1"})
	assert.NoError(t, err)
}
