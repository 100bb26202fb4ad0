package http

import (
	"time"

	"echonote/internal/user"
)

// --- Request DTOs ---

type signUpReq struct {
	Username string `json:"username" binding:"required,min=3,max=64"`
	Password string `json:"password" binding:"required,min=6,max=128"`
}

func (r signUpReq) toInput() user.SignUpInput {
	return user.SignUpInput{Username: r.Username, Password: r.Password}
}

type loginReq struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func (r loginReq) toInput() user.LoginInput {
	return user.LoginInput{Username: r.Username, Password: r.Password}
}

// --- Response DTOs ---

type userResp struct {
	ID       string `json:"id"`
	Username string `json:"username"`
}

type signUpResp struct {
	User userResp `json:"user"`
}

func (h *handler) newSignUpResp(out user.SignUpOutput) signUpResp {
	return signUpResp{User: userResp{ID: out.User.ID, Username: out.User.Username}}
}

type loginResp struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
	User      userResp  `json:"user"`
}

func (h *handler) newLoginResp(out user.LoginOutput) loginResp {
	return loginResp{
		Token:     out.Token,
		ExpiresAt: out.ExpiresAt,
		User:      userResp{ID: out.User.ID, Username: out.User.Username},
	}
}
