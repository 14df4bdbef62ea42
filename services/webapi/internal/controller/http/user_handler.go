package http

import (
	"net/http"

	"blog-api/pkg/logger"
	"blog-api/services/webapi/internal/usecase"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	authUseCase usecase.AuthUseCase
	userUseCase usecase.UserUseCase
	logger      *logger.Logger
}

func NewUserHandler(authUseCase usecase.AuthUseCase, userUseCase usecase.UserUseCase, logger *logger.Logger) *UserHandler {
	return &UserHandler{
		authUseCase: authUseCase,
		userUseCase: userUseCase,
		logger:      logger,
	}
}

type RegisterRequest struct {
	Username    string `json:"username" binding:"required"`
	Email       string `json:"email" binding:"required,email"`
	Password    string `json:"password" binding:"required,min=6"`
	FirstName   string `json:"firstName" binding:"max=100"`
	LastName    string `json:"lastName" binding:"max=100"`
	Biography   string `json:"biography" binding:"max=2000"`
	URLFacebook string `json:"urlFacebook" binding:"omitempty,url"`
	URLLinkedIn string `json:"urlLinkedIn" binding:"omitempty,url"`
	URLTwitter  string `json:"urlTwitter" binding:"omitempty,url"`
}

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type EditPersonalDataRequest struct {
	FirstName   string `json:"firstName" binding:"max=100"`
	LastName    string `json:"lastName" binding:"max=100"`
	Biography   string `json:"biography" binding:"max=2000"`
	URLFacebook string `json:"urlFacebook" binding:"omitempty,url"`
	URLLinkedIn string `json:"urlLinkedIn" binding:"omitempty,url"`
	URLTwitter  string `json:"urlTwitter" binding:"omitempty,url"`
}

type ChangePasswordRequest struct {
	OldPassword string `json:"oldPassword" binding:"required"`
	NewPassword string `json:"newPassword" binding:"required,min=6"`
}

// Register godoc
// @Summary      Register a new blogger
// @Tags         user
// @Accept       json
// @Produce      json
// @Param        request body RegisterRequest true "Registration data"
// @Success      201  {object}  entity.Profile
// @Failure      400  {object}  ErrorResponse
// @Failure      409  {object}  ErrorResponse
// @Router       /user/register [post]
func (h *UserHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	user, err := h.authUseCase.Register(c.Request.Context(), usecase.RegisterInput{
		Username:    req.Username,
		Email:       req.Email,
		Password:    req.Password,
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		Biography:   req.Biography,
		URLFacebook: req.URLFacebook,
		URLLinkedIn: req.URLLinkedIn,
		URLTwitter:  req.URLTwitter,
	})
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	respondCreated(c, "/api/user/"+user.ID, user.Profile())
}

// Login godoc
// @Summary      Log in and receive a bearer token
// @Tags         user
// @Accept       json
// @Produce      json
// @Param        request body LoginRequest true "Credentials"
// @Success      200  {object}  usecase.LoginResult
// @Failure      400  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Failure      409  {object}  ErrorResponse
// @Router       /user/login [post]
func (h *UserHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	result, err := h.authUseCase.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// Logout godoc
// @Summary      Revoke the current bearer token
// @Tags         user
// @Security     BearerAuth
// @Success      204
// @Failure      401  {object}  ErrorResponse
// @Router       /user/logout [post]
func (h *UserHandler) Logout(c *gin.Context) {
	tokenID, expiresAt := tokenFrom(c)
	if err := h.authUseCase.Logout(c.Request.Context(), tokenID, expiresAt); err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// ListUsers godoc
// @Summary      List users
// @Tags         user
// @Produce      json
// @Security     BearerAuth
// @Param        numberOfItems query int false "Page size (1-100)"
// @Param        pageNumber query int false "Page number (1-based)"
// @Param        searchQuery query string false "Matches username or email"
// @Success      200  {array}   entity.User
// @Failure      400  {object}  ErrorResponse
// @Failure      403  {object}  ErrorResponse
// @Router       /user [get]
func (h *UserHandler) ListUsers(c *gin.Context) {
	page, ok := bindPage(c)
	if !ok {
		return
	}

	users, total, err := h.userUseCase.ListUsers(c.Request.Context(), callerFrom(c), page)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	respondPage(c, users, total)
}

// GetUser godoc
// @Summary      Get a public user profile
// @Tags         user
// @Produce      json
// @Param        id path string true "User ID"
// @Success      200  {object}  entity.Profile
// @Failure      404  {object}  ErrorResponse
// @Router       /user/{id} [get]
func (h *UserHandler) GetUser(c *gin.Context) {
	profile, err := h.userUseCase.GetUser(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, profile)
}

// UsernameAvailable godoc
// @Summary      Check whether a username is free
// @Tags         user
// @Produce      json
// @Param        name path string true "Username"
// @Success      200  {boolean}  bool
// @Router       /user/checkusernameavailability/{name} [get]
func (h *UserHandler) UsernameAvailable(c *gin.Context) {
	available, err := h.userUseCase.UsernameAvailable(c.Request.Context(), c.Param("name"))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, available)
}

// EditPersonalData godoc
// @Summary      Edit the caller's profile
// @Tags         user
// @Accept       json
// @Security     BearerAuth
// @Param        id path string true "User ID"
// @Param        request body EditPersonalDataRequest true "Profile fields"
// @Success      204
// @Failure      400  {object}  ErrorResponse
// @Failure      403  {object}  ErrorResponse
// @Router       /user/editpersonaldata/{id} [patch]
func (h *UserHandler) EditPersonalData(c *gin.Context) {
	var req EditPersonalDataRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	err := h.userUseCase.EditPersonalData(c.Request.Context(), callerFrom(c), c.Param("id"), usecase.PersonalDataInput{
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		Biography:   req.Biography,
		URLFacebook: req.URLFacebook,
		URLLinkedIn: req.URLLinkedIn,
		URLTwitter:  req.URLTwitter,
	})
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// ChangePassword godoc
// @Summary      Change the caller's password
// @Tags         user
// @Accept       json
// @Security     BearerAuth
// @Param        id path string true "User ID"
// @Param        request body ChangePasswordRequest true "Old and new password"
// @Success      204
// @Failure      400  {object}  ErrorResponse
// @Failure      403  {object}  ErrorResponse
// @Failure      409  {object}  ErrorResponse
// @Router       /user/changepassword/{id} [patch]
func (h *UserHandler) ChangePassword(c *gin.Context) {
	var req ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	err := h.userUseCase.ChangePassword(c.Request.Context(), callerFrom(c), c.Param("id"), req.OldPassword, req.NewPassword)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// DeleteUser godoc
// @Summary      Delete a user and their content
// @Tags         user
// @Security     BearerAuth
// @Param        id path string true "User ID"
// @Success      204
// @Failure      400  {object}  ErrorResponse
// @Failure      403  {object}  ErrorResponse
// @Router       /user/{id} [delete]
func (h *UserHandler) DeleteUser(c *gin.Context) {
	if err := h.userUseCase.DeleteUser(c.Request.Context(), callerFrom(c), c.Param("id")); err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// BanUser godoc
// @Summary      Lock a user out
// @Tags         user
// @Security     BearerAuth
// @Param        id path string true "User ID"
// @Success      204
// @Failure      400  {object}  ErrorResponse
// @Failure      403  {object}  ErrorResponse
// @Router       /user/ban/{id} [patch]
func (h *UserHandler) BanUser(c *gin.Context) {
	if err := h.userUseCase.BanUser(c.Request.Context(), callerFrom(c), c.Param("id")); err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// UnbanUser godoc
// @Summary      Lift a user's lockout
// @Tags         user
// @Security     BearerAuth
// @Param        id path string true "User ID"
// @Success      204
// @Failure      400  {object}  ErrorResponse
// @Failure      403  {object}  ErrorResponse
// @Router       /user/unban/{id} [patch]
func (h *UserHandler) UnbanUser(c *gin.Context) {
	if err := h.userUseCase.UnbanUser(c.Request.Context(), callerFrom(c), c.Param("id")); err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.Status(http.StatusNoContent)
}
