package auth

import (
	"context"
	"fmt"
	"presence-lab/domain"
	"presence-lab/errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// CustomClaims defines the structure of the data stored inside the JWT.
// The user id travels in the registered "sub" claim.
type CustomClaims struct {
	Nickname string `json:"nickname"`
	jwt.RegisteredClaims
}

// TokenService issues and verifies HS256 access tokens.
type TokenService struct {
	secret   []byte
	issuer   string
	duration time.Duration
}

func NewTokenService(secret, issuer string, duration time.Duration) *TokenService {
	return &TokenService{secret: []byte(secret), issuer: issuer, duration: duration}
}

// GenerateToken creates a signed access token for a user.
func (s *TokenService) GenerateToken(userID uuid.UUID, nickname string) (string, error) {
	now := time.Now()
	claims := &CustomClaims{
		Nickname: nickname,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID.String(),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.duration)),
			IssuedAt:  jwt.NewNumericDate(now),
			Issuer:    s.issuer,
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// Verify parses the token, checks signature, expiration and issuer,
// and returns the identity it carries.
func (s *TokenService) Verify(ctx context.Context, tokenString string) (domain.Identity, error) {
	if err := ctx.Err(); err != nil {
		return domain.Identity{}, err
	}

	token, err := jwt.ParseWithClaims(tokenString, &CustomClaims{},
		func(token *jwt.Token) (interface{}, error) {
			return s.secret, nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(s.issuer),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return domain.Identity{}, fmt.Errorf("%w: %v", errors.ErrInvalidToken, err)
	}

	claims, ok := token.Claims.(*CustomClaims)
	if !ok || !token.Valid {
		return domain.Identity{}, errors.ErrInvalidToken
	}

	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return domain.Identity{}, fmt.Errorf("%w: subject is not a user id", errors.ErrInvalidToken)
	}

	identity := domain.Identity{UserID: userID, Nickname: claims.Nickname}
	if err = ValidateIdentity(identity); err != nil {
		return domain.Identity{}, fmt.Errorf("%w: %v", errors.ErrInvalidToken, err)
	}
	return identity, nil
}
