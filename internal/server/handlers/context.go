package handlers

import "context"

// contextKey тип для ключей контекста
type contextKey string

// UsernameKey ключ для хранения аутентифицированного username в контексте
// Значение кладет auth middleware после успешной верификации токена
const UsernameKey contextKey = "username"

// GetUsername извлекает username из контекста запроса
func GetUsername(ctx context.Context) (string, bool) {
	username, ok := ctx.Value(UsernameKey).(string)
	return username, ok
}
