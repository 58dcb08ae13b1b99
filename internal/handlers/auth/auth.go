package auth

import (
	"context"
	"errors"
	"net/http"

	"github.com/mkorsun/storefront/internal/domain"
	"github.com/mkorsun/storefront/internal/dto"
	authservice "github.com/mkorsun/storefront/internal/service/authservice"
	pkgauth "github.com/mkorsun/storefront/pkg/auth"
	"github.com/mkorsun/storefront/pkg/utils"
)

//go:generate mockgen -source=auth.go -destination=auth_mock.go -package=auth
type Service interface {
	Register(ctx context.Context, username, password string) (*domain.User, error)
	Authenticate(ctx context.Context, username, password string) (*domain.User, error)
	CreateSession(ctx context.Context, userID int) (string, error)
}

type AuthHandler struct {
	authService Service
}

func New(authService Service) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

// Register godoc
//
//	@Summary		Register a new user
//	@Description	Create a customer account. The first account registered becomes the shop administrator.
//	@Tags			Auth
//	@Accept			x-www-form-urlencoded
//	@Produce		json
//	@Param			username	formData	string	true	"Username"
//	@Param			password	formData	string	true	"Password"
//	@Success		200			{object}	dto.MessageResponseDTO
//	@Failure		400			{object}	utils.Response	"Missing fields"
//	@Failure		409			{object}	utils.Response	"Username already taken"
//	@Failure		500			{object}	utils.Response	"Internal server error"
//	@Router			/register [post]
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "missing fields")
		return
	}
	username := r.PostFormValue("username")
	password := r.PostFormValue("password")
	if username == "" || password == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "missing fields")
		return
	}

	_, err := h.authService.Register(r.Context(), username, password)
	if err != nil {
		switch {
		case errors.Is(err, authservice.ErrUsernameTaken):
			utils.RespondWithError(w, http.StatusConflict, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.MessageResponseDTO{Message: "registered"})
}

// Login godoc
//
//	@Summary		Authenticate user
//	@Description	Log in and receive a session cookie.
//	@Tags			Auth
//	@Accept			x-www-form-urlencoded
//	@Produce		json
//	@Param			username	formData	string	true	"Username"
//	@Param			password	formData	string	true	"Password"
//	@Success		200			{object}	dto.MessageResponseDTO
//	@Failure		401			{object}	utils.Response	"Invalid credentials"
//	@Failure		500			{object}	utils.Response	"Internal server error"
//	@Router			/login [post]
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		utils.RespondWithError(w, http.StatusUnauthorized, "invalid credentials")
		return
	}
	username := r.PostFormValue("username")
	password := r.PostFormValue("password")

	user, err := h.authService.Authenticate(r.Context(), username, password)
	if err != nil {
		utils.RespondWithError(w, http.StatusUnauthorized, "invalid credentials")
		return
	}
	token, err := h.authService.CreateSession(r.Context(), user.ID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     pkgauth.SessionCookie,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
	})
	utils.RespondWithJSON(w, http.StatusOK, dto.MessageResponseDTO{Message: "logged in"})
}
