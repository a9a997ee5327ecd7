package middleware

import (
	"net/http"
	"strings"

	"microblog/pkg/response"
	"microblog/pkg/utils"

	"github.com/gin-gonic/gin"
)

const userIDKey = "userID"

// Auth JWT认证中间件，凭证缺失或无效直接拒绝
func Auth(jwtMgr *utils.JWTManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, ok := bearerToken(c)
		if !ok {
			response.Error(c, http.StatusUnauthorized, "missing authorization token")
			c.Abort()
			return
		}

		claims, err := jwtMgr.Parse(tokenString)
		if err != nil {
			response.Error(c, http.StatusUnauthorized, "invalid or expired token")
			c.Abort()
			return
		}

		c.Set(userIDKey, claims.UserID)
		c.Next()
	}
}

// OptionalAuth 可选认证中间件
// 带有效凭证时记录访问者身份（用于计算 liked 标记），否则匿名放行
func OptionalAuth(jwtMgr *utils.JWTManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		if tokenString, ok := bearerToken(c); ok {
			if claims, err := jwtMgr.Parse(tokenString); err == nil {
				c.Set(userIDKey, claims.UserID)
			}
		}
		c.Next()
	}
}

// CurrentUserID 从上下文取当前用户ID，匿名请求返回空串
func CurrentUserID(c *gin.Context) string {
	val, _ := c.Get(userIDKey)
	if str, ok := val.(string); ok {
		return str
	}
	return ""
}

// bearerToken 解析 "Bearer <token>" 请求头
func bearerToken(c *gin.Context) (string, bool) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return "", false
	}
	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		return "", false
	}
	return parts[1], true
}
