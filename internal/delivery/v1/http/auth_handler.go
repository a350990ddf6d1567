package http

import (
	"net/http"
	"time"

	"github.com/DRSN-tech/catalog-backend/internal/usecase"
	"github.com/DRSN-tech/catalog-backend/pkg/e"
	"github.com/DRSN-tech/catalog-backend/pkg/logger"
)

type AuthHandler struct {
	authUsecase usecase.AuthUC
	logger      logger.Logger
}

func NewAuthHandler(authUsecase usecase.AuthUC, logger logger.Logger) *AuthHandler {
	return &AuthHandler{authUsecase: authUsecase, logger: logger}
}

type registerRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	FullName string `json:"fullName"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type authResponse struct {
	Token     string       `json:"token"`
	User      userResponse `json:"user"`
	ExpiresAt time.Time    `json:"expiresAt"`
}

func toAuthResponse(res *usecase.AuthRes) authResponse {
	return authResponse{
		Token:     res.Token,
		User:      toUserResponse(&res.User),
		ExpiresAt: res.ExpiresAt,
	}
}

func (a *AuthHandler) register(w http.ResponseWriter, r *http.Request) {
	var body registerRequest
	if err := decodeJSON(r, &body); err != nil {
		WriteError(w, err)
		return
	}

	info, err := a.authUsecase.Register(r.Context(), &usecase.RegisterReq{
		Email:    body.Email,
		Password: body.Password,
		FullName: body.FullName,
	})
	if err != nil {
		a.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusCreated, toUserResponse(info))
}

func (a *AuthHandler) login(w http.ResponseWriter, r *http.Request) {
	var body loginRequest
	if err := decodeJSON(r, &body); err != nil {
		WriteError(w, err)
		return
	}

	res, err := a.authUsecase.Login(r.Context(), &usecase.LoginReq{
		Email:    body.Email,
		Password: body.Password,
	})
	if err != nil {
		a.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, toAuthResponse(res))
}

func (a *AuthHandler) getUsers(w http.ResponseWriter, r *http.Request) {
	infos, err := a.authUsecase.GetUsers(r.Context())
	if err != nil {
		a.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	result := make([]userResponse, 0, len(infos))
	for i := range infos {
		result = append(result, toUserResponse(&infos[i]))
	}

	WriteSuccess(w, http.StatusOK, result)
}

func (a *AuthHandler) getProfile(w http.ResponseWriter, r *http.Request) {
	claims, ok := ClaimsFromCtx(r.Context())
	if !ok {
		WriteError(w, e.ErrMissingToken)
		return
	}

	info, err := a.authUsecase.GetProfile(r.Context(), claims.UserID)
	if err != nil {
		a.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, toUserResponse(info))
}
