package service

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/alexedwards/argon2id"
	"k8s.io/klog/v2"

	"github.com/restaurantcms/backend/internal/model"
	"github.com/restaurantcms/backend/internal/pkg/jwt"
	"github.com/restaurantcms/backend/internal/repository"
)

const (
	// AuthTokenDuration 登录凭证有效期
	AuthTokenDuration = 24 * time.Hour
	// ResetTokenDuration 重置令牌有效期
	ResetTokenDuration = time.Hour
	// resetTokenBytes 重置令牌熵长度
	resetTokenBytes = 32
)

var (
	// ErrInvalidCredentials 邮箱不存在或密码不匹配，对外不区分两种情况
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrAccountInactive 账号已停用
	ErrAccountInactive = errors.New("account inactive")
	// ErrInvalidToken 令牌不存在、已使用或在并发核销中落败
	ErrInvalidToken = errors.New("invalid or expired token")
	// ErrTokenExpired 令牌已过有效期
	ErrTokenExpired = errors.New("token has expired")
	// ErrEmailTaken 邮箱已被其他管理员占用
	ErrEmailTaken = errors.New("email already taken")
)

// AuthService 登录与密码重置。
// 登录凭证是无状态 JWT，只验签名和有效期；重置令牌是一次性能力，
// 必须走数据库的原子核销，两套失效语义互不混用。
type AuthService struct {
	adminRepo repository.AdministratorRepository
	tokenRepo repository.ResetTokenRepository
	jwt       *jwt.JWT
}

func NewAuthService(adminRepo repository.AdministratorRepository, tokenRepo repository.ResetTokenRepository, j *jwt.JWT) *AuthService {
	return &AuthService{
		adminRepo: adminRepo,
		tokenRepo: tokenRepo,
		jwt:       j,
	}
}

// LoginResult 登录成功后的凭证与管理员信息
type LoginResult struct {
	Token string              `json:"token"`
	User  model.Administrator `json:"user"`
}

// Login 邮箱不存在与密码不匹配返回同一个错误，不暴露邮箱是否注册
func (s *AuthService) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	admin, err := s.adminRepo.GetByEmail(email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if !admin.IsActive {
		return nil, ErrAccountInactive
	}

	match, err := argon2id.ComparePasswordAndHash(password, admin.Password)
	if err != nil {
		return nil, fmt.Errorf("校验密码失败: %w", err)
	}
	if !match {
		return nil, ErrInvalidCredentials
	}

	expires := time.Now().Add(AuthTokenDuration)
	token, err := s.jwt.SignToken(&jwt.Claims{
		ID:      admin.ID,
		Email:   admin.Email,
		Name:    admin.Name,
		Surname: admin.Surname,
		Expires: expires.Unix(),
	})
	if err != nil {
		return nil, fmt.Errorf("签发登录凭证失败: %w", err)
	}

	return &LoginResult{Token: token, User: *admin}, nil
}

// RequestReset 申请密码重置。无论邮箱是否存在都静默成功，
// 只有邮箱真实存在且账号可用时才生成并持久化令牌。
// 返回的令牌值仅供调试模式回显，生产环境应只经带外渠道送达。
func (s *AuthService) RequestReset(ctx context.Context, email string) (string, error) {
	admin, err := s.adminRepo.GetByEmail(email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			klog.V(6).Infof("重置申请的邮箱不存在，静默处理")
			return "", nil
		}
		return "", err
	}
	if !admin.IsActive {
		klog.V(6).Infof("重置申请的账号已停用，静默处理: id=%d", admin.ID)
		return "", nil
	}

	raw := make([]byte, resetTokenBytes)
	if _, err := rand.Read(raw); err != nil {
		return "", fmt.Errorf("生成重置令牌失败: %w", err)
	}
	token := hex.EncodeToString(raw)

	row := model.PasswordResetToken{
		AdministratorID: admin.ID,
		Token:           token,
		ExpiresAt:       time.Now().Add(ResetTokenDuration),
	}
	if err := s.tokenRepo.Create(&row); err != nil {
		return "", fmt.Errorf("持久化重置令牌失败: %w", err)
	}

	return token, nil
}

// ConsumeReset 核销令牌并设置新密码。过期令牌不消耗；
// 核销本身是数据库里的条件更新，同一个令牌绝不会成功两次。
func (s *AuthService) ConsumeReset(ctx context.Context, token, newPassword string) error {
	if len(newPassword) < 8 {
		return fmt.Errorf("%w: password must be at least 8 characters", ErrValidation)
	}

	row, err := s.tokenRepo.GetByToken(token)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrInvalidToken
		}
		return err
	}
	if row.Used {
		return ErrInvalidToken
	}
	if time.Now().After(row.ExpiresAt) {
		return ErrTokenExpired
	}

	hash, err := argon2id.CreateHash(newPassword, argon2id.DefaultParams)
	if err != nil {
		return fmt.Errorf("生成密码哈希失败: %w", err)
	}

	if err := s.tokenRepo.Consume(row.ID, row.AdministratorID, hash); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			// 并发请求抢先核销了同一个令牌
			return ErrInvalidToken
		}
		return err
	}
	return nil
}

type AdministratorRequest struct {
	Name     string `json:"name" binding:"required"`
	Surname  string `json:"surname" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password"`
	IsActive *bool  `json:"is_active"`
}

func (s *AuthService) validateAdministrator(req *AdministratorRequest, requirePassword bool) error {
	if strings.TrimSpace(req.Name) == "" {
		return fmt.Errorf("%w: administrator name is required", ErrValidation)
	}
	if strings.TrimSpace(req.Surname) == "" {
		return fmt.Errorf("%w: administrator surname is required", ErrValidation)
	}
	if strings.TrimSpace(req.Email) == "" {
		return fmt.Errorf("%w: administrator email is required", ErrValidation)
	}
	if requirePassword && len(req.Password) < 8 {
		return fmt.Errorf("%w: password must be at least 8 characters", ErrValidation)
	}
	if !requirePassword && req.Password != "" && len(req.Password) < 8 {
		return fmt.Errorf("%w: password must be at least 8 characters", ErrValidation)
	}
	return nil
}

// ListAdministrators 管理员列表，密码哈希不随响应序列化
func (s *AuthService) ListAdministrators(ctx context.Context) ([]model.Administrator, error) {
	return s.adminRepo.List()
}

// CreateAdministrator 创建管理员，密码即时散列入库
func (s *AuthService) CreateAdministrator(ctx context.Context, req *AdministratorRequest) (*model.Administrator, error) {
	if err := s.validateAdministrator(req, true); err != nil {
		return nil, err
	}
	if _, err := s.adminRepo.GetByEmail(req.Email); err == nil {
		return nil, ErrEmailTaken
	} else if !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}

	hash, err := argon2id.CreateHash(req.Password, argon2id.DefaultParams)
	if err != nil {
		return nil, fmt.Errorf("生成密码哈希失败: %w", err)
	}

	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}
	admin := model.Administrator{
		Name:     req.Name,
		Surname:  req.Surname,
		Email:    req.Email,
		Password: hash,
		IsActive: isActive,
	}
	if err := s.adminRepo.Create(&admin); err != nil {
		return nil, fmt.Errorf("创建管理员失败: %w", err)
	}
	return &admin, nil
}

// UpdateAdministrator 更新管理员，密码仅在提供时更换
func (s *AuthService) UpdateAdministrator(ctx context.Context, id uint, req *AdministratorRequest) (*model.Administrator, error) {
	if err := s.validateAdministrator(req, false); err != nil {
		return nil, err
	}

	admin, err := s.adminRepo.Get(id)
	if err != nil {
		return nil, err
	}

	if req.Email != admin.Email {
		if _, err := s.adminRepo.GetByEmail(req.Email); err == nil {
			return nil, ErrEmailTaken
		} else if !errors.Is(err, repository.ErrNotFound) {
			return nil, err
		}
	}

	admin.Name = req.Name
	admin.Surname = req.Surname
	admin.Email = req.Email
	if req.IsActive != nil {
		admin.IsActive = *req.IsActive
	}
	if req.Password != "" {
		hash, err := argon2id.CreateHash(req.Password, argon2id.DefaultParams)
		if err != nil {
			return nil, fmt.Errorf("生成密码哈希失败: %w", err)
		}
		admin.Password = hash
	}

	if err := s.adminRepo.Save(admin); err != nil {
		return nil, fmt.Errorf("更新管理员失败: %w", err)
	}
	return admin, nil
}

// DeleteAdministrator 删除管理员及其遗留的重置令牌
func (s *AuthService) DeleteAdministrator(ctx context.Context, id uint) error {
	return s.adminRepo.Delete(id)
}
