package security

import (
	"context"
	"strings"
	"time"

	"storyhub/pkg/core/config"
	"storyhub/pkg/core/consts"
	errorc "storyhub/pkg/core/err"

	"github.com/gofiber/fiber/v2"
)

type UserAuth struct {
	jwtClient *JwtClient
}

// claimsKey 用户声明在 context 中的键
type claimsKey struct{}

func NewUserAuth(cfg config.JwtConfig) *UserAuth {
	return &UserAuth{
		jwtClient: NewJwtClient([]byte(cfg.Secret), cfg.Issuer, time.Duration(cfg.ExpireTime)*time.Hour),
	}
}

// CreateSimpleToken 签发用户令牌
func (a *UserAuth) CreateSimpleToken(userID, username string, isAdmin bool) (string, error) {
	claims := &UserClaims{Username: username, IsAdmin: isAdmin}
	claims.Subject = userID
	token, _, err := a.jwtClient.CreateToken(claims)
	return token, err
}

func (a *UserAuth) CreateToken(claims *UserClaims) (string, int64, error) {
	return a.jwtClient.CreateToken(claims)
}

// ParseToken 解析用户令牌（供外部使用）
func (a *UserAuth) ParseToken(token string) (*UserClaims, error) {
	return a.jwtClient.ParseToken(token)
}

func bearer(c *fiber.Ctx) (string, bool) {
	auth := c.Get(fiber.HeaderAuthorization)
	if auth == "" || !strings.HasPrefix(auth, "Bearer ") {
		return "", false
	}
	token := strings.TrimSpace(strings.TrimPrefix(auth, "Bearer "))
	return token, token != ""
}

// OptionalAuth 可选校验，有token则验证并保存身份，token无效时按匿名处理
func (a *UserAuth) OptionalAuth() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if token, ok := bearer(c); ok {
			if claims, err := a.jwtClient.ParseToken(token); err == nil {
				a.jwtClient.SaveToContext(c, claims)
			}
		}
		return c.Next()
	}
}

// RequireAuth 必须通过校验，并保存身份
func (a *UserAuth) RequireAuth() fiber.Handler {
	return func(c *fiber.Ctx) error {
		token, ok := bearer(c)
		if !ok {
			return errorc.New("authorization header is required", nil).NoAuth()
		}

		claims, err := a.jwtClient.ParseToken(token)
		if err != nil {
			return err
		}

		a.jwtClient.SaveToContext(c, claims)
		return c.Next()
	}
}

// RequireAdmin 必须持有 isAdmin 声明
func (a *UserAuth) RequireAdmin() fiber.Handler {
	return func(c *fiber.Ctx) error {
		token, ok := bearer(c)
		if !ok {
			return errorc.New("authorization header is required", nil).NoAuth()
		}

		claims, err := a.jwtClient.ParseToken(token)
		if err != nil {
			return err
		}
		a.jwtClient.SaveToContext(c, claims)

		if !claims.IsAdmin {
			return errorc.New("permission denied", nil).Forbidden()
		}
		return c.Next()
	}
}

// GetUserID 从上下文中获取用户ID
func GetUserID(c *fiber.Ctx) (string, error) {
	if c == nil {
		return "", errorc.New("fiber context is nil", nil).WithCode(errorc.ErrorCodeInternal)
	}
	id, ok := c.Locals(consts.UserIDKey).(string)
	if !ok || id == "" {
		return "", errorc.New("user id not found or invalid", nil).NoAuth()
	}
	return id, nil
}

// OptionalUserID 匿名请求返回空串
func OptionalUserID(c *fiber.Ctx) string {
	id, _ := c.Locals(consts.UserIDKey).(string)
	return id
}

// GetUsername 未登录时返回空串
func GetUsername(c *fiber.Ctx) string {
	claims, err := GetUserClaimsByCtx(c.UserContext())
	if err != nil {
		return ""
	}
	return claims.Username
}

// IsAdmin 当前请求是否为管理员
func IsAdmin(c *fiber.Ctx) bool {
	if c == nil {
		return false
	}
	claims, err := GetUserClaimsByCtx(c.UserContext())
	return err == nil && claims.IsAdmin
}

// GetUserClaimsByCtx 经过鉴权中间件的请求上下文中取用户声明
func GetUserClaimsByCtx(ctx context.Context) (*UserClaims, error) {
	claims, ok := ctx.Value(claimsKey{}).(*UserClaims)
	if !ok {
		return nil, errorc.New("user claims not found or invalid", nil).NoAuth()
	}
	return claims, nil
}
