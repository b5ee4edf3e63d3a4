package api

// FavoritesResponse представляет список избранного пользователя
type FavoritesResponse struct {
	Favs []string `json:"favs"` // идентификаторы в порядке добавления
}

// HealthResponse представляет ответ health check
type HealthResponse struct {
	Status  string `json:"status"`
	Version string `json:"version,omitempty"`
}
