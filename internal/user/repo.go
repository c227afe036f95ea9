package user

import (
	"database/sql"
	"errors"
	"strconv"
	"strings"
	"time"

	myErr "farmtrade-main/internal/types/errors"
	types "farmtrade-main/internal/types/user"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

type UserDBRepository struct {
	DB     *sql.DB
	Logger *zap.SugaredLogger
}

func NewUserDBRepository(db *sql.DB, l *zap.SugaredLogger) *UserDBRepository {
	return &UserDBRepository{
		DB:     db,
		Logger: l,
	}
}

func (ur *UserDBRepository) CreateUser(u types.CreateUser) (*User, error) {
	// Сначала проверяем, что пользователь с такой почтой не существует
	if _, err := ur.getByEmail(u.Email); err == nil {
		return nil, myErr.ErrAlreadyExists
	} else if !errors.Is(err, myErr.ErrNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(u.Password), bcrypt.DefaultCost)
	if err != nil {
		ur.Logger.Errorf("Ошибка при хешировании пароля: %v", err)
		return nil, myErr.ErrDBInternal
	}

	newUser := &User{
		ID:               uuid.New().String(),
		Name:             u.Name,
		Email:            u.Email,
		PhoneNumber:      u.PhoneNumber,
		Role:             u.Role,
		RegistrationDate: time.Now(),
		PasswordHash:     string(hash),
	}

	query := `
	INSERT INTO users (id, name, email, phone_number, role, registration_date, password_hash)
	VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err = ur.DB.Exec(
		query,
		newUser.ID,
		newUser.Name,
		newUser.Email,
		newUser.PhoneNumber,
		newUser.Role,
		newUser.RegistrationDate,
		newUser.PasswordHash,
	)
	if err != nil {
		ur.Logger.Errorf("Ошибка при создании пользователя: %v", err)
		return nil, myErr.ErrDBInternal
	}

	return newUser, nil
}

func (ur *UserDBRepository) CheckUser(email, password string) (*User, error) {
	u, err := ur.getByEmail(email)
	if err != nil {
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		return nil, myErr.ErrBadPassword
	}

	return u, nil
}

func (ur *UserDBRepository) Info(userID string) (*User, error) {
	query := `
	SELECT id, name, email, phone_number, role, registration_date
	FROM users
	WHERE id = $1
	`

	u := &User{}
	err := ur.DB.QueryRow(query, userID).
		Scan(&u.ID, &u.Name, &u.Email, &u.PhoneNumber, &u.Role, &u.RegistrationDate)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, myErr.ErrNotFound
		}
		ur.Logger.Warnf("Ошибка при получении информации о пользователе: %v", err)
		return nil, myErr.ErrDBInternal
	}

	return u, nil
}

func (ur *UserDBRepository) ChangeProfile(userID string, updateUser types.ChangeUser) (*User, error) {
	fields := []string{}
	args := []interface{}{}
	argID := 1

	// Динамически добавляем поля в обновление
	if updateUser.Name != "" {
		fields = append(fields, "name = $"+strconv.Itoa(argID))
		args = append(args, updateUser.Name)
		argID++
	}
	if updateUser.Email != "" {
		fields = append(fields, "email = $"+strconv.Itoa(argID))
		args = append(args, updateUser.Email)
		argID++
	}
	if updateUser.PhoneNumber != "" {
		fields = append(fields, "phone_number = $"+strconv.Itoa(argID))
		args = append(args, updateUser.PhoneNumber)
		argID++
	}

	if len(fields) == 0 {
		return ur.Info(userID) // Если ничего не обновляется, просто вернуть текущие данные
	}

	query := "UPDATE users SET " + strings.Join(fields, ", ") + " WHERE id = $" + strconv.Itoa(argID) // nolint:gosec
	args = append(args, userID)

	res, err := ur.DB.Exec(query, args...)
	if err != nil {
		ur.Logger.Warnf("Ошибка при обновлении профиля: %v", err)
		return nil, myErr.ErrDBInternal
	}

	rowsAffected, err := res.RowsAffected()
	if err != nil {
		ur.Logger.Warnf("Не удалось получить количество обновлённых строк: %v", err)
		return nil, myErr.ErrDBInternal
	}

	if rowsAffected == 0 {
		return nil, myErr.ErrNotFound
	}

	return ur.Info(userID) // Возвращаем обновлённые данные пользователя
}

func (ur *UserDBRepository) GetAll() ([]User, error) {
	query := `
	SELECT id, name, email, phone_number, role, registration_date
	FROM users
	ORDER BY registration_date DESC
	`

	rows, err := ur.DB.Query(query)
	if err != nil {
		ur.Logger.Errorf("Ошибка при получении списка пользователей: %v", err)
		return nil, myErr.ErrDBInternal
	}
	defer rows.Close()

	var users []User
	for rows.Next() {
		var u User
		if err := rows.Scan(&u.ID, &u.Name, &u.Email, &u.PhoneNumber, &u.Role, &u.RegistrationDate); err != nil {
			return nil, myErr.ErrDBInternal
		}
		users = append(users, u)
	}

	return users, nil
}

func (ur *UserDBRepository) getByEmail(email string) (*User, error) {
	query := `
	SELECT id, name, email, phone_number, role, registration_date, password_hash
	FROM users
	WHERE email = $1
	`

	u := &User{}
	err := ur.DB.QueryRow(query, email).
		Scan(&u.ID, &u.Name, &u.Email, &u.PhoneNumber, &u.Role, &u.RegistrationDate, &u.PasswordHash)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, myErr.ErrNotFound
		}
		ur.Logger.Errorf("Ошибка при поиске пользователя по почте: %v", err)
		return nil, myErr.ErrDBInternal
	}

	return u, nil
}
