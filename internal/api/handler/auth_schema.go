package handler

import "github.com/nyayasetu/portal-api/internal/core/domain"

// signupRequest binds both multipart/urlencoded forms and JSON bodies.
type signupRequest struct {
	Fullname       string `form:"fullname"       json:"fullname"`
	Email          string `form:"email"          json:"email"          validate:"required,email"`
	Password       string `form:"password"       json:"password"       validate:"required"`
	Mobile         string `form:"mobile"         json:"mobile"`
	City           string `form:"city"           json:"city"`
	State          string `form:"state"          json:"state"`
	Pincode        string `form:"pincode"        json:"pincode"`
	Role           string `form:"role"           json:"role"           validate:"omitempty,role"`
	BarID          string `form:"barid"          json:"barid"`
	Specialization string `form:"specialization" json:"specialization"`
	Experience     string `form:"experience"     json:"experience"`
}

type loginRequest struct {
	Email    string `json:"email"    form:"email"`
	Password string `json:"password" form:"password"`
}

// authResponse is the success envelope for signup and login.
type authResponse struct {
	Success bool               `json:"success"`
	User    domain.UserSummary `json:"user"`
}

type successResponse struct {
	Success bool `json:"success"`
}

type errorResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

type newsErrorResponse struct {
	Error string `json:"error"`
}
