package service

import (
	"context"
	"errors"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"StoreFront/internal/model"
	"StoreFront/internal/repo"
)

// Ошибки бизнес-уровня для регистрации/входа покупателя.
var (
	ErrEmailTaken         = errors.New("email already in use")
	ErrInvalidCredentials = errors.New("invalid email or password")
)

// CustomerService отвечает за регистрацию и вход покупателей.
type CustomerService struct {
	repo repo.CustomerRepository
}

func NewCustomerService(r repo.CustomerRepository) *CustomerService {
	return &CustomerService{repo: r}
}

// Register создаёт покупателя с bcrypt-хешем пароля.
// Возвращает ErrEmailTaken, если email уже занят.
func (s *CustomerService) Register(ctx context.Context, email, password string) (*model.Customer, error) {
	existing, err := s.repo.GetByEmail(ctx, email)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	return s.repo.CreateCustomer(ctx, &model.Customer{Email: email, Password: string(hash)})
}

// Login проверяет email и пароль. Любая ошибка сопоставления даёт
// ErrInvalidCredentials, чтобы не раскрывать, что именно не совпало.
func (s *CustomerService) Login(ctx context.Context, email, password string) (*model.Customer, error) {
	c, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if bcrypt.CompareHashAndPassword([]byte(c.Password), []byte(password)) != nil {
		return nil, ErrInvalidCredentials
	}
	return c, nil
}
