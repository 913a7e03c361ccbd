package httpapi

import (
	"errors"
	"net/http"
	"strings"

	"github.com/mpetrovs/newsbrief/internal/common"
)

func (rt *Router) handleMe(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "Token is not valid")
		return
	}

	user, err := rt.users.Me(r.Context(), userID)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			writeError(w, http.StatusNotFound, "User not found")
			return
		}
		rt.logger.Error(r.Context(), "me", "error", err)
		writeError(w, http.StatusInternalServerError, "Server error")
		return
	}

	writeJSON(w, http.StatusOK, toUserDTO(user))
}

type updateProfileRequest struct {
	Name string `json:"name"`
}

func (rt *Router) handleUpdateProfile(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "Token is not valid")
		return
	}

	var req updateProfileRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if strings.TrimSpace(req.Name) == "" {
		writeError(w, http.StatusBadRequest, "Name is required")
		return
	}

	user, err := rt.users.UpdateName(r.Context(), userID, req.Name)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			writeError(w, http.StatusNotFound, "User not found")
			return
		}
		rt.logger.Error(r.Context(), "update profile", "error", err)
		writeError(w, http.StatusInternalServerError, "Server error")
		return
	}

	writeJSON(w, http.StatusOK, toUserDTO(user))
}

func (rt *Router) handleDeleteAccount(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "Token is not valid")
		return
	}

	if err := rt.users.DeleteAccount(r.Context(), userID); err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			writeError(w, http.StatusNotFound, "User not found")
			return
		}
		rt.logger.Error(r.Context(), "delete account", "error", err)
		writeError(w, http.StatusInternalServerError, "Server error")
		return
	}

	writeMsg(w, http.StatusOK, "Account deleted successfully")
}

type avatarUploadURLResponse struct {
	UploadURL string `json:"uploadUrl"`
	PublicURL string `json:"publicUrl"`
}

// handleAvatarUploadURL presigns an upload slot and records its public URL
// as the user's avatar.
func (rt *Router) handleAvatarUploadURL(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "Token is not valid")
		return
	}

	uploadURL, publicURL, err := rt.avatars.PresignedAvatarPutURL(r.Context(), userID)
	if err != nil {
		rt.logger.Error(r.Context(), "presign avatar upload", "error", err)
		writeError(w, http.StatusInternalServerError, "Server error")
		return
	}

	if err := rt.users.SetAvatar(r.Context(), userID, publicURL); err != nil {
		rt.logger.Error(r.Context(), "store avatar url", "error", err)
		writeError(w, http.StatusInternalServerError, "Server error")
		return
	}

	writeJSON(w, http.StatusOK, avatarUploadURLResponse{UploadURL: uploadURL, PublicURL: publicURL})
}
