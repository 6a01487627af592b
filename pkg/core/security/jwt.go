package security

import (
	"context"
	"time"

	"storyhub/pkg/core/consts"
	errorc "storyhub/pkg/core/err"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

type JwtClient struct {
	secret     []byte
	issuer     string
	expireTime time.Duration
}

// UserClaims 身份令牌声明，sub 为用户ID
type UserClaims struct {
	jwt.RegisteredClaims
	Username string `json:"username,omitempty"`
	IsAdmin  bool   `json:"isAdmin,omitempty"`
}

func NewJwtClient(secret []byte, issuer string, expireTime time.Duration) *JwtClient {
	if expireTime <= 0 {
		expireTime = 24 * time.Hour
	}
	return &JwtClient{
		secret:     secret,
		issuer:     issuer,
		expireTime: expireTime,
	}
}

func (c *JwtClient) CreateToken(claims *UserClaims) (string, int64, error) {
	now := time.Now()
	claims.ExpiresAt = jwt.NewNumericDate(now.Add(c.expireTime))
	claims.IssuedAt = jwt.NewNumericDate(now)
	if claims.Issuer == "" {
		claims.Issuer = c.issuer
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signedString, err := token.SignedString(c.secret)
	return signedString, claims.ExpiresAt.Unix(), err
}

func (c *JwtClient) ParseToken(tokenString string) (*UserClaims, error) {
	opts := []jwt.ParserOption{jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()})}
	if c.issuer != "" {
		opts = append(opts, jwt.WithIssuer(c.issuer))
	}

	token, err := jwt.ParseWithClaims(tokenString, &UserClaims{}, func(token *jwt.Token) (interface{}, error) {
		return c.secret, nil
	}, opts...)
	if err != nil {
		return nil, errorc.New("invalid token", err).NoAuth()
	}

	claims, ok := token.Claims.(*UserClaims)
	if !ok || !token.Valid || claims.Subject == "" {
		return nil, errorc.New("invalid token", nil).NoAuth()
	}
	return claims, nil
}

func (c *JwtClient) SaveToContext(ctx *fiber.Ctx, claims *UserClaims) {
	ctx.Locals(consts.UserIDKey, claims.Subject)

	userCtx := context.WithValue(ctx.UserContext(), claimsKey{}, claims)
	ctx.SetUserContext(userCtx)
}
