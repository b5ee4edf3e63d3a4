package crypto

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// BcryptCost фиксированная стоимость bcrypt
// Значение унаследовано от исходного деплоя, менять только вместе с пересевом admin
const BcryptCost = 7

// HashPassword хеширует пароль через bcrypt со случайной солью
// Повторные вызовы для одного пароля дают разные строки
func HashPassword(password string) (string, error) {
	if password == "" {
		return "", fmt.Errorf("password cannot be empty")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), BcryptCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}

	return string(hash), nil
}

// VerifyPassword проверяет, соответствует ли пароль сохраненному хешу
// Сравнение выполняет bcrypt, оно устойчиво к раннему выходу по префиксу
func VerifyPassword(password, passwordHash string) error {
	if err := bcrypt.CompareHashAndPassword([]byte(passwordHash), []byte(password)); err != nil {
		return fmt.Errorf("invalid password: %w", err)
	}
	return nil
}
