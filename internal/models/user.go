package models

// User представляет пользователя в системе
// Username является уникальным ключом, сравнение точное, с учетом регистра
type User struct {
	Username     string   `json:"username"`
	PasswordHash string   `json:"password_hash"` // bcrypt хеш пароля
	Favorites    []string `json:"favorites"`     // идентификаторы без дубликатов, порядок вставки
}
