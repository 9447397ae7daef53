package jwt

import (
	"errors"
	"fmt"

	"github.com/golang-jwt/jwt/v5"
)

// JWT 无状态登录凭证的签发与校验，仅依赖签名和过期时间，不回查数据库
type JWT struct {
	key []byte
}

// Claims 凭证中携带的管理员信息，绝不包含密码哈希
type Claims struct {
	ID      uint
	Email   string
	Name    string
	Surname string
	Expires int64 // Unix second
}

func New(key string) (*JWT, error) {
	if len(key) == 0 {
		return nil, errors.New("key is empty")
	}

	return &JWT{key: []byte(key)}, nil
}

// SignToken 签发 HS256 令牌
func (j *JWT) SignToken(claims *Claims) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"id":      claims.ID,
		"email":   claims.Email,
		"name":    claims.Name,
		"surname": claims.Surname,
		"exp":     claims.Expires,
	})

	return token.SignedString(j.key)
}

// ParseClaims 校验签名与有效期并还原管理员信息
func (j *JWT) ParseClaims(tokenString string) (*Claims, error) {
	if len(tokenString) == 0 {
		return nil, errors.New("token string is empty")
	}

	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return j.key, nil
	})
	if err != nil {
		return nil, fmt.Errorf("parse jwt failed: %w", err)
	}

	mapClaims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token")
	}

	claims := &Claims{}
	if id, ok := mapClaims["id"].(float64); ok {
		claims.ID = uint(id)
	} else {
		return nil, errors.New("invalid token claims")
	}
	if email, ok := mapClaims["email"].(string); ok {
		claims.Email = email
	}
	if name, ok := mapClaims["name"].(string); ok {
		claims.Name = name
	}
	if surname, ok := mapClaims["surname"].(string); ok {
		claims.Surname = surname
	}
	if exp, ok := mapClaims["exp"].(float64); ok {
		claims.Expires = int64(exp)
	}

	return claims, nil
}
