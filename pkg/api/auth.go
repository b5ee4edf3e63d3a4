package api

// RegisterRequest представляет запрос на регистрацию нового пользователя
type RegisterRequest struct {
	Username string `json:"username"` // уникальный username
	Password string `json:"password"` // пароль в открытом виде
}

// LoginRequest представляет запрос на аутентификацию
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// TokenResponse представляет ответ с токеном доступа
type TokenResponse struct {
	Token string `json:"token"` // подписанный JWT
}

// MessageResponse представляет информационный ответ
// Та же форма используется для всех ошибок: {"message": "..."}
type MessageResponse struct {
	Message string `json:"message"`
}
