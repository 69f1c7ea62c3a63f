package services

import (
	"errors"
	"fmt"
	"gin-sweetshop/constants"
	"gin-sweetshop/models"
	"gin-sweetshop/repositories"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

type IAuthService interface {
	Signup(email string, password string, role string) (*models.User, *string, error)
	Login(email string, password string) (*models.User, *string, error)
	GetUserFromToken(tokenString string) (*models.User, error)
	Logout(tokenString string) error
}

type AuthService struct {
	repository      repositories.IAuthRepository
	tokenRepository repositories.ITokenRepository
}

func NewAuthService(repository repositories.IAuthRepository, tokenRepository repositories.ITokenRepository) IAuthService {
	return &AuthService{
		repository:      repository,
		tokenRepository: tokenRepository,
	}
}

func (s *AuthService) Signup(email string, password string, role string) (*models.User, *string, error) {
	exists, err := s.repository.ExistsUser(email)
	if err != nil {
		return nil, nil, err
	}
	if exists {
		return nil, nil, errors.New(constants.ErrUserExists)
	}

	if role == "" {
		role = constants.RoleCustomer
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, nil, err
	}

	user := models.User{
		Email:    email,
		Password: string(hashedPassword),
		Role:     role,
	}
	createdUser, err := s.repository.CreateUser(user)
	if err != nil {
		return nil, nil, err
	}

	token, err := CreateToken(createdUser.ID, createdUser.Email, createdUser.Role)
	if err != nil {
		return nil, nil, err
	}
	return createdUser, token, nil
}

func (s *AuthService) Login(email string, password string) (*models.User, *string, error) {
	foundUser, err := s.repository.FindUser(email)
	if err != nil {
		// ユーザーの存在有無を応答から推測させない
		return nil, nil, errors.New(constants.ErrInvalidCredentials)
	}

	err = bcrypt.CompareHashAndPassword([]byte(foundUser.Password), []byte(password))
	if err != nil {
		return nil, nil, errors.New(constants.ErrInvalidCredentials)
	}

	token, err := CreateToken(foundUser.ID, foundUser.Email, foundUser.Role)
	if err != nil {
		return nil, nil, err
	}
	return foundUser, token, nil
}

func CreateToken(userID uint, email string, role string) (*string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":   userID,
		"email": email,
		"role":  role,
		"exp":   time.Now().Add(24 * time.Hour).Unix(),
	})

	tokenString, err := token.SignedString(secretKey())
	if err != nil {
		return nil, err
	}
	return &tokenString, nil
}

// secretKey SECRET_KEY未設定の場合は開発用のフォールバック値を使う
// 本番環境では必ずSECRET_KEYを設定すること
func secretKey() []byte {
	secret := os.Getenv("SECRET_KEY")
	if secret == "" {
		secret = "default-secret"
	}
	return []byte(secret)
}

func (s *AuthService) GetUserFromToken(tokenString string) (*models.User, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected method: %v", token.Header["alg"])
		}
		return secretKey(), nil
	})
	if err != nil {
		return nil, err
	}

	var user *models.User
	if claims, ok := token.Claims.(jwt.MapClaims); ok {
		if float64(time.Now().Unix()) > claims["exp"].(float64) {
			return nil, jwt.ErrTokenExpired
		}

		// トークンがブラックリストに含まれているかチェック
		isBlacklisted, err := s.tokenRepository.IsTokenBlacklisted(tokenString)
		if err != nil {
			return nil, err
		}
		if isBlacklisted {
			return nil, fmt.Errorf("token is blacklisted")
		}

		user, err = s.repository.FindUser(claims["email"].(string))
		if err != nil {
			return nil, err
		}
	}
	return user, nil
}

func (s *AuthService) Logout(tokenString string) error {
	// トークンをパースして有効期限を取得
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected method: %v", token.Header["alg"])
		}
		return secretKey(), nil
	})
	if err != nil {
		return err
	}

	var expiresAt int64
	if claims, ok := token.Claims.(jwt.MapClaims); ok {
		if exp, ok := claims["exp"].(float64); ok {
			expiresAt = int64(exp)
		} else {
			expiresAt = time.Now().Add(24 * time.Hour).Unix()
		}
	} else {
		expiresAt = time.Now().Add(24 * time.Hour).Unix()
	}

	// トークンをブラックリストに追加
	return s.tokenRepository.AddBlacklistedToken(tokenString, expiresAt)
}
