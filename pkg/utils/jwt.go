package utils

import (
	"time"

	"microblog/internal/pkg/config"

	"github.com/golang-jwt/jwt/v5"
)

// Claims 自定义JWT Claims
type Claims struct {
	UserID string `json:"user_id"`
	jwt.RegisteredClaims
}

// JWTManager 持有签名密钥和有效期，由构造方注入而非读取全局配置
type JWTManager struct {
	secret []byte
	expire time.Duration
}

// NewJWTManager 创建 JWT 管理器
func NewJWTManager(cfg config.JWTConfig) *JWTManager {
	expire := time.Duration(cfg.Expire) * time.Hour
	if expire <= 0 {
		expire = 168 * time.Hour // 默认 7 天
	}
	return &JWTManager{
		secret: []byte(cfg.Secret),
		expire: expire,
	}
}

// Generate 生成JWT Token
func (m *JWTManager) Generate(userID string) (string, error) {
	now := time.Now()
	claims := Claims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.expire)),
			Issuer:    "microblog",
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(m.secret)
}

// Parse 验证JWT Token
func (m *JWTManager) Parse(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return m.secret, nil
	})

	if err != nil {
		return nil, err
	}

	if claims, ok := token.Claims.(*Claims); ok && token.Valid {
		return claims, nil
	}

	return nil, jwt.ErrTokenInvalidClaims
}
