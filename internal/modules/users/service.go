package users

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/go-sql-driver/mysql"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrBadCredentials = errors.New("invalid email or password")
	ErrBlocked        = errors.New("user is blocked")
	ErrUnknownRole    = errors.New("unknown role")
	ErrEmailTaken     = errors.New("email already registered")
)

type Service struct{ db *gorm.DB }

func NewService(db *gorm.DB) *Service { return &Service{db: db} }

type ListParams struct {
	Q        string // email substring
	Role     string
	Page     int
	PageSize int
}

type ListResult struct {
	Items []User
	Total int64
}

func (s *Service) List(ctx context.Context, in ListParams) (ListResult, error) {
	page := in.Page
	if page < 1 {
		page = 1
	}
	size := in.PageSize
	if size < 1 || size > 100 {
		size = 30
	}

	base := s.db.WithContext(ctx).Model(&User{})
	if q := strings.TrimSpace(in.Q); q != "" {
		base = base.Where("email LIKE ?", "%"+q+"%")
	}
	if in.Role != "" {
		base = base.Where("role = ?", in.Role)
	}

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return ListResult{}, err
	}

	var items []User
	if err := base.
		Order("created_at DESC").
		Limit(size).
		Offset((page - 1) * size).
		Find(&items).Error; err != nil {
		return ListResult{}, err
	}

	return ListResult{Items: items, Total: total}, nil
}

func (s *Service) Get(ctx context.Context, id string) (User, error) {
	var u User
	err := s.db.WithContext(ctx).First(&u, "id = ?", id).Error
	return u, err
}

func (s *Service) Create(ctx context.Context, email, password, role string) (User, error) {
	if role != RoleAdmin && role != RoleCustomer {
		return User{}, ErrUnknownRole
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return User{}, err
	}

	u := User{
		ID:           uuid.NewString(),
		Email:        strings.ToLower(strings.TrimSpace(email)),
		PasswordHash: hash,
		Role:         role,
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}
	if err := s.db.WithContext(ctx).Create(&u).Error; err != nil {
		if isDuplicateKey(err) {
			return User{}, ErrEmailTaken
		}
		return User{}, err
	}
	return u, nil
}

func isDuplicateKey(err error) bool {
	var me *mysql.MySQLError
	return errors.As(err, &me) && me.Number == 1062
}

func (s *Service) SetRole(ctx context.Context, id, role string) error {
	if role != RoleAdmin && role != RoleCustomer {
		return ErrUnknownRole
	}
	return s.db.WithContext(ctx).Model(&User{}).
		Where("id = ?", id).
		Updates(map[string]any{"role": role, "updated_at": time.Now()}).Error
}

func (s *Service) SetBlocked(ctx context.Context, id string, blocked bool) error {
	return s.db.WithContext(ctx).Model(&User{}).
		Where("id = ?", id).
		Updates(map[string]any{"blocked": blocked, "updated_at": time.Now()}).Error
}

func (s *Service) SetPassword(ctx context.Context, id, password string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	return s.db.WithContext(ctx).Model(&User{}).
		Where("id = ?", id).
		Updates(map[string]any{"password_hash": hash, "updated_at": time.Now()}).Error
}

// Authenticate verifies credentials for the console login.
func (s *Service) Authenticate(ctx context.Context, email, password string) (User, error) {
	var u User
	err := s.db.WithContext(ctx).
		First(&u, "email = ?", strings.ToLower(strings.TrimSpace(email))).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return User{}, ErrBadCredentials
		}
		return User{}, err
	}
	if u.Blocked {
		return User{}, ErrBlocked
	}
	if bcrypt.CompareHashAndPassword(u.PasswordHash, []byte(password)) != nil {
		return User{}, ErrBadCredentials
	}
	return u, nil
}
