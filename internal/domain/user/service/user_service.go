package service

import (
	"errors"

	"microblog/internal/domain/user/model"
	"microblog/internal/domain/user/repository"
	"microblog/pkg/apperr"
	"microblog/pkg/pagination"
	"microblog/pkg/utils"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// 资料字段边界
const (
	usernameMinLength    = 3
	usernameMaxLength    = 30
	passwordMinLength    = 8
	displayNameMaxLength = 50
	bioMaxLength         = 160
)

// RegisterInput 注册参数
type RegisterInput struct {
	Email       string
	Username    string
	DisplayName string
	Password    string
}

// ProfileUpdate 资料更新参数，nil 字段保持不变
type ProfileUpdate struct {
	DisplayName *string
	Bio         *string
}

// UserService 用户服务接口
type UserService interface {
	Register(input RegisterInput) (*model.User, string, error)
	Login(email, password string) (*model.User, string, error)
	GetUser(id string) (*model.User, error)
	GetByUsername(username string) (*model.User, error)
	GetUsers(p pagination.Params) ([]model.User, int64, error)
	UpdateProfile(userID string, update ProfileUpdate) (*model.User, error)
	UpdateAvatar(userID, avatarURL string) (*model.User, string, error)
}

// userService 实现
type userService struct {
	repo repository.UserRepository
	jwt  *utils.JWTManager
	log  *zap.Logger
}

// NewUserService 创建用户服务
func NewUserService(repo repository.UserRepository, jwt *utils.JWTManager, log *zap.Logger) UserService {
	return &userService{repo: repo, jwt: jwt, log: log}
}

// Register 注册新用户并签发 Token
func (s *userService) Register(input RegisterInput) (*model.User, string, error) {
	if err := validateRegisterInput(input); err != nil {
		return nil, "", err
	}

	exists, err := s.repo.ExistsByEmailOrUsername(input.Email, input.Username)
	if err != nil {
		return nil, "", err
	}
	if exists {
		return nil, "", apperr.New(apperr.KindInvalidInput, "email or username already exists")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", err
	}

	user := &model.User{
		Email:       input.Email,
		Username:    input.Username,
		DisplayName: input.DisplayName,
		Password:    string(hashed),
	}
	if err := s.repo.Create(user); err != nil {
		return nil, "", err
	}

	token, err := s.jwt.Generate(user.ID)
	if err != nil {
		return nil, "", err
	}

	s.log.Info("user registered", zap.String("userID", user.ID), zap.String("username", user.Username))
	return user, token, nil
}

// Login 邮箱密码登录
// 用户不存在和密码错误返回同一提示，避免暴露账号存在性
func (s *userService) Login(email, password string) (*model.User, string, error) {
	user, err := s.repo.GetByEmail(email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", apperr.New(apperr.KindUnauthorized, "invalid email or password")
		}
		return nil, "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, "", apperr.New(apperr.KindUnauthorized, "invalid email or password")
	}

	token, err := s.jwt.Generate(user.ID)
	if err != nil {
		return nil, "", err
	}

	s.log.Info("user logged in", zap.String("userID", user.ID))
	return user, token, nil
}

// GetUser 获取单个用户
func (s *userService) GetUser(id string) (*model.User, error) {
	user, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.New(apperr.KindNotFound, "user not found")
		}
		return nil, err
	}
	return user, nil
}

// GetByUsername 根据用户名获取用户
func (s *userService) GetByUsername(username string) (*model.User, error) {
	user, err := s.repo.GetByUsername(username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.New(apperr.KindNotFound, "user not found")
		}
		return nil, err
	}
	return user, nil
}

// GetUsers 获取用户列表（分页）
func (s *userService) GetUsers(p pagination.Params) ([]model.User, int64, error) {
	if err := p.Validate(); err != nil {
		return nil, 0, err
	}
	return s.repo.GetList(p.Offset(), p.Limit)
}

// UpdateProfile 更新资料，仅允许本人操作（userID 取自凭证）
func (s *userService) UpdateProfile(userID string, update ProfileUpdate) (*model.User, error) {
	user, err := s.GetUser(userID)
	if err != nil {
		return nil, err
	}

	if update.DisplayName != nil {
		name := *update.DisplayName
		if name == "" || len(name) > displayNameMaxLength {
			return nil, apperr.Newf(apperr.KindInvalidInput, "display name must be 1-%d characters", displayNameMaxLength)
		}
		user.DisplayName = name
	}
	if update.Bio != nil {
		if len(*update.Bio) > bioMaxLength {
			return nil, apperr.Newf(apperr.KindInvalidInput, "bio cannot exceed %d characters", bioMaxLength)
		}
		user.Bio = *update.Bio
	}

	if err := s.repo.Update(user); err != nil {
		return nil, err
	}

	s.log.Info("user updated", zap.String("userID", userID))
	return user, nil
}

// UpdateAvatar 更新头像，返回被替换的旧头像 URL 供异步清理
func (s *userService) UpdateAvatar(userID, avatarURL string) (*model.User, string, error) {
	user, err := s.GetUser(userID)
	if err != nil {
		return nil, "", err
	}

	old := user.Avatar
	user.Avatar = avatarURL
	if err := s.repo.Update(user); err != nil {
		return nil, "", err
	}

	s.log.Info("avatar updated", zap.String("userID", userID))
	return user, old, nil
}

func validateRegisterInput(input RegisterInput) error {
	if input.Email == "" {
		return apperr.New(apperr.KindInvalidInput, "email is required")
	}
	if len(input.Username) < usernameMinLength || len(input.Username) > usernameMaxLength {
		return apperr.Newf(apperr.KindInvalidInput, "username must be %d-%d characters", usernameMinLength, usernameMaxLength)
	}
	if input.DisplayName == "" || len(input.DisplayName) > displayNameMaxLength {
		return apperr.Newf(apperr.KindInvalidInput, "display name must be 1-%d characters", displayNameMaxLength)
	}
	if len(input.Password) < passwordMinLength {
		return apperr.Newf(apperr.KindInvalidInput, "password must be at least %d characters long", passwordMinLength)
	}
	return nil
}
