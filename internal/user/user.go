package user

import (
	"time"

	types "farmtrade-main/internal/types/user"
)

const (
	RoleFarmer   = "FARMER"
	RoleRetailer = "RETAILER"
	RoleAdmin    = "ADMIN"
)

// ValidRole проверяет, что строка является известной ролью
func ValidRole(role string) bool {
	switch role {
	case RoleFarmer, RoleRetailer, RoleAdmin:
		return true
	}
	return false
}

// User структура пользователя
type User struct {
	ID               string    `json:"user_id"` // uuid
	Name             string    `json:"name"`
	Email            string    `json:"email"`
	PhoneNumber      string    `json:"phone_number"`
	Role             string    `json:"role"`
	RegistrationDate time.Time `json:"registration_date"`
	PasswordHash     string    `json:"-"`
}

// UserRepo интерфейс удовлетворяющий методам сущности пользователя
//
//go:generate mockgen -source=user.go -destination=../mocks/mock_user_repo.go -package=mocks
type UserRepo interface {
	// CheckUser - проверяет пользователя по почте и паролю
	CheckUser(email, password string) (*User, error)
	// CreateUser создает пользователя
	CreateUser(u types.CreateUser) (*User, error)
	// Info возвращает информацию о пользователе
	Info(userID string) (*User, error)
	// ChangeProfile меняет поля пользователя с userID по updateUser
	ChangeProfile(userID string, updateUser types.ChangeUser) (*User, error)
	// GetAll возвращает всех пользователей (админка)
	GetAll() ([]User, error)
}
