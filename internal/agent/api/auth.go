// В этом файле описаны методы клиента для работы
// с эндпоинтами аутентификации: регистрация и вход.
package api

// UserInfo описывает публичные поля пользователя в ответах сервера.
type UserInfo struct {
	ID    int64  `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name,omitempty"`
}

// SignupRequest описывает тело запроса регистрации пользователя.
//
// Email, Password и (опционально) Name передаются в JSON формате
// в эндпоинт /api/auth/signup.
type SignupRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name,omitempty"`
}

// LoginRequest описывает тело запроса входа пользователя.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthResponse описывает ответ сервера при успешной регистрации или входе.
//
// Token используется для авторизации запросов к защищённым эндпоинтам.
type AuthResponse struct {
	User  UserInfo `json:"user"`
	Token string   `json:"token"`
}

// Signup выполняет регистрацию пользователя на сервере.
//
// Метод отправляет POST запрос на /api/auth/signup и возвращает AuthResponse
// с данными пользователя и свежим токеном. В случае ошибки возвращает
// непустую ошибку и пустой ответ.
func (c *Client) Signup(email, password, name string) (AuthResponse, error) {
	var resp AuthResponse
	err := c.PostJSON("/api/auth/signup", SignupRequest{Email: email, Password: password, Name: name}, &resp, "")
	return resp, err
}

// Login выполняет вход пользователя и получает токен.
//
// Метод отправляет POST запрос на /api/auth/login и возвращает AuthResponse.
// В случае ошибки возвращает непустую ошибку и пустой ответ.
func (c *Client) Login(email, password string) (AuthResponse, error) {
	var resp AuthResponse
	err := c.PostJSON("/api/auth/login", LoginRequest{Email: email, Password: password}, &resp, "")
	return resp, err
}
