package jwt

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Типизированные причины отказа верификации
// Наружу (в HTTP) все они превращаются в один и тот же 401,
// но логи и тесты различают их
var (
	// ErrTokenMalformed токен не распарсился
	ErrTokenMalformed = errors.New("token malformed")
	// ErrTokenInvalid подпись не сошлась или алгоритм не тот
	ErrTokenInvalid = errors.New("token invalid")
	// ErrTokenExpired срок действия истек
	ErrTokenExpired = errors.New("token expired")
)

// DefaultTokenTTL срок жизни токена по умолчанию
const DefaultTokenTTL = 7 * 24 * time.Hour

// Claims представляет полезную нагрузку токена
type Claims struct {
	Username string `json:"username"`
	jwt.RegisteredClaims
}

// Service подписывает и проверяет bearer токены
// Секрет фиксируется на старте процесса и не ротируется
type Service struct {
	secret   []byte
	tokenTTL time.Duration
}

// NewService создает новый сервис токенов
// secret должен быть криптографически случайной строкой
func NewService(secret string, tokenTTL time.Duration) *Service {
	if tokenTTL <= 0 {
		tokenTTL = DefaultTokenTTL
	}
	return &Service{
		secret:   []byte(secret),
		tokenTTL: tokenTTL,
	}
}

// Issue создает подписанный токен с username и сроком действия now + TTL
func (s *Service) Issue(username string) (string, error) {
	now := time.Now()

	claims := Claims{
		Username: username,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(s.tokenTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    "favkeeper",
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	return tokenString, nil
}

// Verify валидирует токен и возвращает claims
// Возвращает ErrTokenMalformed, ErrTokenExpired или ErrTokenInvalid
func (s *Service) Verify(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		// Принимаем только HMAC, иначе секрет можно обойти подменой алгоритма
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	})

	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenMalformed):
			return nil, fmt.Errorf("%w: %w", ErrTokenMalformed, err)
		case errors.Is(err, jwt.ErrTokenExpired):
			return nil, fmt.Errorf("%w: %w", ErrTokenExpired, err)
		default:
			return nil, fmt.Errorf("%w: %w", ErrTokenInvalid, err)
		}
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrTokenInvalid
	}

	return claims, nil
}
