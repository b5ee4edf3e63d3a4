package validation

import "errors"

// Ошибки валидации учетных данных
var (
	ErrUsernameRequired = errors.New("username is required")
	ErrPasswordRequired = errors.New("password is required")
)

// ValidateCredentials проверяет обязательность полей при регистрации
// Формат не ограничивается: username и идентификаторы — непрозрачные строки
func ValidateCredentials(username, password string) error {
	if username == "" {
		return ErrUsernameRequired
	}
	if password == "" {
		return ErrPasswordRequired
	}
	return nil
}
