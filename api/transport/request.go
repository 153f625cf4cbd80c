package transport

type SignupRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type CreateUserActivityRequest struct {
	UserID     string `json:"user_id"`
	ActivityID string `json:"activity_id"`
	Status     string `json:"status"`
}

type UpdateUserActivityStatusRequest struct {
	Status string `json:"status"`
}
