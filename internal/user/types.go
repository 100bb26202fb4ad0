package user

import (
	"time"

	"echonote/internal/model"
)

type SignUpInput struct {
	Username string
	Password string
}

type SignUpOutput struct {
	User model.User
}

type LoginInput struct {
	Username string
	Password string
}

type LoginOutput struct {
	Token     string
	ExpiresAt time.Time
	User      model.User
}
