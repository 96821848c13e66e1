package handler

import (
	"errors"
	"fmt"
	"mime/multipart"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/nyayasetu/portal-api/internal/core/ports"
)

const photoField = "photo"

type AuthHandler struct {
	authService ports.AuthService
	cookies     SessionCookies
}

func NewAuthHandler(authService ports.AuthService, cookies SessionCookies) *AuthHandler {
	return &AuthHandler{authService: authService, cookies: cookies}
}

// Signup registers a new user and logs them in.
//
// @Summary      Register a new user
// @Tags         auth
// @Accept       multipart/form-data
// @Produce      json
// @Param        email           formData  string  true   "Email"
// @Param        password        formData  string  true   "Password"
// @Param        fullname        formData  string  false  "Full name"
// @Param        role            formData  string  false  "User or Advocate"
// @Param        photo           formData  file    false  "Profile photo"
// @Success      200   {object}  authResponse
// @Failure      400   {object}  errorResponse
// @Failure      500   {object}  errorResponse
// @Router       /signup [post]
func (h *AuthHandler) Signup(c echo.Context) error {
	var req signupRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload").SetInternal(err)
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	input := ports.RegisterInput{
		Email:          req.Email,
		Password:       req.Password,
		Fullname:       req.Fullname,
		Mobile:         req.Mobile,
		City:           req.City,
		State:          req.State,
		Pincode:        req.Pincode,
		Role:           req.Role,
		BarID:          req.BarID,
		Specialization: req.Specialization,
		Experience:     req.Experience,
	}

	photo, closePhoto, err := formPhoto(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid photo upload").SetInternal(err)
	}
	defer closePhoto()
	input.Photo = photo

	res, err := h.authService.Register(c.Request().Context(), input)
	if err != nil {
		return err
	}
	if err := h.cookies.Issue(c, res.Session); err != nil {
		return fmt.Errorf("signup: issue cookie: %w", err)
	}

	return c.JSON(http.StatusOK, authResponse{Success: true, User: res.User})
}

// Login authenticates a user and opens a session.
//
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      200   {object}  authResponse
// @Failure      400   {object}  errorResponse
// @Failure      500   {object}  errorResponse
// @Router       /login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload").SetInternal(err)
	}

	res, err := h.authService.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return err
	}
	if err := h.cookies.Issue(c, res.Session); err != nil {
		return fmt.Errorf("login: issue cookie: %w", err)
	}

	return c.JSON(http.StatusOK, authResponse{Success: true, User: res.User})
}

// formPhoto opens the optional photo part. Non-multipart requests and forms
// without the part yield no attachment.
func formPhoto(c echo.Context) (*ports.Attachment, func(), error) {
	noop := func() {}

	fh, err := c.FormFile(photoField)
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) || errors.Is(err, http.ErrNotMultipart) {
			return nil, noop, nil
		}
		return nil, noop, err
	}

	f, err := fh.Open()
	if err != nil {
		return nil, noop, err
	}
	return &ports.Attachment{
		Filename:    fh.Filename,
		ContentType: contentType(fh),
		Body:        f,
	}, func() { _ = f.Close() }, nil
}

func contentType(fh *multipart.FileHeader) string {
	if ct := fh.Header.Get(echo.HeaderContentType); ct != "" {
		return ct
	}
	return "application/octet-stream"
}
