package http

import (
	"github.com/gin-gonic/gin"

	"echonote/internal/middleware"
	"echonote/pkg/response"
)

// SignUp godoc
// @Summary     Register a new account
// @Description Creates a new account. Passwords are stored bcrypt-hashed.
// @Tags        Auth
// @Accept      json
// @Produce     json
// @Param       body body signUpReq true "Credentials"
// @Success     200 {object} signUpResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     409 {object} response.Resp "Username already taken"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/auth/sign-up [POST]
func (h *handler) SignUp(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processSignUpReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.SignUp(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.SignUp: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, h.newSignUpResp(output))
}

// Login godoc
// @Summary     Log in
// @Description Verifies credentials and returns a Bearer session token.
// @Tags        Auth
// @Accept      json
// @Produce     json
// @Param       body body loginReq true "Credentials"
// @Success     200 {object} loginResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     401 {object} response.Resp "Invalid username or password"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/auth/login [POST]
func (h *handler) Login(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processLoginReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Login(ctx, req.toInput())
	if err != nil {
		h.respondError(c, err)
		return
	}

	response.OK(c, h.newLoginResp(output))
}

// Logout godoc
// @Summary     Log out
// @Description Revokes the caller's session token.
// @Tags        Auth
// @Accept      json
// @Produce     json
// @Success     200 {object} response.Resp "OK"
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/auth/logout [POST]
// @Security    BearerAuth
func (h *handler) Logout(c *gin.Context) {
	ctx := c.Request.Context()

	token := middleware.GetToken(c)
	if err := h.uc.Logout(ctx, token); err != nil {
		h.l.Errorf(ctx, "uc.Logout: %v", err)
		h.respondError(c, err)
		return
	}
	if h.invalidate != nil {
		h.invalidate(token)
	}

	response.OK(c, nil)
}
