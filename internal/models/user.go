package models

// User is the mock signed-in shopper. Only the username is tracked and it
// lives in a browser cookie.
type User struct {
	Username string `json:"username"`
}

type LoginParams struct {
	Username string `json:"username" validate:"min=3"`
	Password string `json:"password" validate:"min=6"`
}

type RegisterParams struct {
	Username        string `json:"username" validate:"min=3"`
	Password        string `json:"password" validate:"min=6"`
	ConfirmPassword string `json:"confirmPassword" validate:"eqfield=Password"`
}
