package services

import (
	"gin-sweetshop/constants"
	"gin-sweetshop/models"
	"gin-sweetshop/repositories"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupAuthService(t *testing.T) (IAuthService, *gorm.DB) {
	t.Helper()
	t.Setenv("SECRET_KEY", "test-secret")

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.User{}))

	tokenDB, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, tokenDB.AutoMigrate(&models.BlacklistedToken{}))

	authRepository := repositories.NewAuthRepository(db)
	tokenRepository := repositories.NewTokenRepository(tokenDB)
	return NewAuthService(authRepository, tokenRepository), db
}

func TestAuthServiceSignup(t *testing.T) {
	service, db := setupAuthService(t)

	user, token, err := service.Signup("test@example.com", "password123", "")
	require.NoError(t, err)
	require.NotNil(t, token)
	assert.NotEmpty(t, *token)
	assert.Equal(t, "test@example.com", user.Email)
	assert.Equal(t, constants.RoleCustomer, user.Role)

	// パスワードは平文で保存されない
	var stored models.User
	require.NoError(t, db.First(&stored, "email = ?", "test@example.com").Error)
	assert.NotEqual(t, "password123", stored.Password)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.Password), []byte("password123")))
}

func TestAuthServiceSignupWithAdminRole(t *testing.T) {
	service, _ := setupAuthService(t)

	user, _, err := service.Signup("admin@example.com", "password123", constants.RoleAdmin)
	require.NoError(t, err)
	assert.Equal(t, constants.RoleAdmin, user.Role)
}

func TestAuthServiceSignupDuplicateEmail(t *testing.T) {
	service, _ := setupAuthService(t)

	_, _, err := service.Signup("test@example.com", "password123", "")
	require.NoError(t, err)

	_, _, err = service.Signup("test@example.com", "otherpassword", "")
	require.Error(t, err)
	assert.Equal(t, constants.ErrUserExists, err.Error())
}

func TestAuthServiceLogin(t *testing.T) {
	service, _ := setupAuthService(t)

	_, _, err := service.Signup("test@example.com", "password123", "")
	require.NoError(t, err)

	user, token, err := service.Login("test@example.com", "password123")
	require.NoError(t, err)
	require.NotNil(t, token)
	assert.Equal(t, "test@example.com", user.Email)
}

func TestAuthServiceLoginFailuresAreIndistinguishable(t *testing.T) {
	service, _ := setupAuthService(t)

	_, _, err := service.Signup("test@example.com", "password123", "")
	require.NoError(t, err)

	// 未登録メールとパスワード誤りで同じエラーを返す
	_, _, unknownErr := service.Login("unknown@example.com", "password123")
	require.Error(t, unknownErr)
	_, _, wrongErr := service.Login("test@example.com", "wrongpassword")
	require.Error(t, wrongErr)
	assert.Equal(t, unknownErr.Error(), wrongErr.Error())
	assert.Equal(t, constants.ErrInvalidCredentials, unknownErr.Error())
}

func TestAuthServiceTokenClaims(t *testing.T) {
	service, _ := setupAuthService(t)

	user, token, err := service.Signup("claims@example.com", "password123", constants.RoleAdmin)
	require.NoError(t, err)

	parsed, err := jwt.Parse(*token, func(token *jwt.Token) (interface{}, error) {
		return []byte("test-secret"), nil
	})
	require.NoError(t, err)
	claims, ok := parsed.Claims.(jwt.MapClaims)
	require.True(t, ok)
	assert.Equal(t, float64(user.ID), claims["sub"])
	assert.Equal(t, "claims@example.com", claims["email"])
	assert.Equal(t, constants.RoleAdmin, claims["role"])

	// 有効期限は発行から24時間
	exp := int64(claims["exp"].(float64))
	expected := time.Now().Add(24 * time.Hour).Unix()
	assert.InDelta(t, expected, exp, 60)
}

func TestAuthServiceGetUserFromToken(t *testing.T) {
	service, _ := setupAuthService(t)

	_, token, err := service.Signup("test@example.com", "password123", "")
	require.NoError(t, err)

	user, err := service.GetUserFromToken(*token)
	require.NoError(t, err)
	assert.Equal(t, "test@example.com", user.Email)
	assert.Equal(t, constants.RoleCustomer, user.Role)
}

func TestAuthServiceGetUserFromInvalidToken(t *testing.T) {
	service, _ := setupAuthService(t)

	_, err := service.GetUserFromToken("not-a-token")
	require.Error(t, err)

	// 別の鍵で署名されたトークンは拒否される
	forged := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":   uint(1),
		"email": "test@example.com",
		"role":  constants.RoleAdmin,
		"exp":   time.Now().Add(24 * time.Hour).Unix(),
	})
	forgedString, err := forged.SignedString([]byte("wrong-secret"))
	require.NoError(t, err)

	_, err = service.GetUserFromToken(forgedString)
	require.Error(t, err)
}

func TestAuthServiceLogoutBlacklistsToken(t *testing.T) {
	service, _ := setupAuthService(t)

	_, token, err := service.Signup("test@example.com", "password123", "")
	require.NoError(t, err)

	_, err = service.GetUserFromToken(*token)
	require.NoError(t, err)

	require.NoError(t, service.Logout(*token))

	_, err = service.GetUserFromToken(*token)
	require.Error(t, err)
}
