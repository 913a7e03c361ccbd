package httpapi

import (
	"errors"
	"net/http"

	"github.com/mpetrovs/newsbrief/internal/common"
	"github.com/mpetrovs/newsbrief/internal/server/models"
)

// userDTO is the account shape on the wire.
type userDTO struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Avatar string `json:"avatar,omitempty"`
	Bio    string `json:"bio,omitempty"`
}

func toUserDTO(u *models.User) userDTO {
	return userDTO{ID: u.ID, Name: u.Name, Email: u.Email, Avatar: u.Avatar, Bio: u.Bio}
}

type signupRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (rt *Router) handleSignup(w http.ResponseWriter, r *http.Request) {
	var req signupRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Name == "" || req.Email == "" || req.Password == "" {
		writeError(w, http.StatusBadRequest, "Please fill in all fields")
		return
	}

	err := rt.users.SignUp(r.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, common.ErrorAlreadyExists) {
			writeError(w, http.StatusBadRequest, "User already exists")
			return
		}
		rt.logger.Error(r.Context(), "signup", "error", err)
		writeError(w, http.StatusInternalServerError, "Server error")
		return
	}

	writeMsg(w, http.StatusCreated, "OTP sent to your email")
}

type verifyRequest struct {
	Email string `json:"email"`
	OTP   string `json:"otp"`
}

func (rt *Router) handleVerifySignup(w http.ResponseWriter, r *http.Request) {
	var req verifyRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	err := rt.users.VerifySignup(r.Context(), req.Email, req.OTP)
	if err != nil {
		switch {
		case errors.Is(err, common.ErrorNotFound):
			writeError(w, http.StatusNotFound, "User not found")
		case errors.Is(err, common.ErrOTPExpired):
			writeError(w, http.StatusBadRequest, "OTP has expired")
		case errors.Is(err, common.ErrOTPInvalid):
			writeError(w, http.StatusBadRequest, "Invalid OTP")
		default:
			rt.logger.Error(r.Context(), "verify signup", "error", err)
			writeError(w, http.StatusInternalServerError, "Server error")
		}
		return
	}

	writeMsg(w, http.StatusOK, "Account verified successfully")
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	User  userDTO `json:"user"`
	Token string  `json:"token"`
}

func (rt *Router) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	user, token, err := rt.users.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, common.ErrorUnauthorized) {
			writeError(w, http.StatusBadRequest, "Invalid credentials")
			return
		}
		rt.logger.Error(r.Context(), "login", "error", err)
		writeError(w, http.StatusInternalServerError, "Server error")
		return
	}

	writeJSON(w, http.StatusOK, loginResponse{User: toUserDTO(user), Token: token})
}

type forgotPasswordRequest struct {
	Email string `json:"email"`
}

func (rt *Router) handleForgotPassword(w http.ResponseWriter, r *http.Request) {
	var req forgotPasswordRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	err := rt.users.ForgotPassword(r.Context(), req.Email)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			writeError(w, http.StatusNotFound, "User not found")
			return
		}
		rt.logger.Error(r.Context(), "forgot password", "error", err)
		writeError(w, http.StatusInternalServerError, "Server error")
		return
	}

	writeMsg(w, http.StatusOK, "OTP sent to your email")
}

func (rt *Router) handleVerifyResetOTP(w http.ResponseWriter, r *http.Request) {
	var req verifyRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	err := rt.users.VerifyResetOTP(r.Context(), req.Email, req.OTP)
	if err != nil {
		switch {
		case errors.Is(err, common.ErrorNotFound):
			writeError(w, http.StatusNotFound, "User not found")
		case errors.Is(err, common.ErrOTPExpired):
			writeError(w, http.StatusBadRequest, "OTP has expired")
		case errors.Is(err, common.ErrOTPInvalid):
			writeError(w, http.StatusBadRequest, "Invalid or expired OTP")
		default:
			rt.logger.Error(r.Context(), "verify reset otp", "error", err)
			writeError(w, http.StatusInternalServerError, "Server error")
		}
		return
	}

	writeMsg(w, http.StatusOK, "OTP verified")
}

type resetPasswordRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (rt *Router) handleResetPassword(w http.ResponseWriter, r *http.Request) {
	var req resetPasswordRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Password == "" {
		writeError(w, http.StatusBadRequest, "Please fill in all fields")
		return
	}

	err := rt.users.ResetPassword(r.Context(), req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, common.ErrorNotFound):
			writeError(w, http.StatusNotFound, "User not found")
		case errors.Is(err, common.ErrOTPExpired):
			writeError(w, http.StatusBadRequest, "OTP has expired")
		case errors.Is(err, common.ErrOTPInvalid):
			writeError(w, http.StatusBadRequest, "Invalid or expired OTP")
		default:
			rt.logger.Error(r.Context(), "reset password", "error", err)
			writeError(w, http.StatusInternalServerError, "Server error")
		}
		return
	}

	writeMsg(w, http.StatusOK, "Password reset successfully")
}
