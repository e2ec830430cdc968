package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/uvcaspaces/booking-portal/internal/httperr"
	"github.com/uvcaspaces/booking-portal/internal/media"
	"github.com/uvcaspaces/booking-portal/internal/middleware"
	"github.com/uvcaspaces/booking-portal/internal/store"
)

// maxAvatarUpload caps the accepted multipart image size.
const maxAvatarUpload = 5 << 20

type ProfileHandler struct {
	users    *store.UserStore
	uploader *media.Uploader
}

func NewProfileHandler(users *store.UserStore, uploader *media.Uploader) *ProfileHandler {
	return &ProfileHandler{users: users, uploader: uploader}
}

// Update merges the allow-listed profile fields. Role and password are not
// part of the payload and cannot be smuggled through it.
func (h *ProfileHandler) Update(c *gin.Context) {
	userID, _ := middleware.Identity(c)

	var req store.ProfileUpdate
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.WriteErr(c, http.StatusBadRequest, "invalid_request", "Malformed profile payload.", err)
		return
	}

	user, err := h.users.UpdateProfile(c.Request.Context(), userID, req)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			httperr.NotFound(c, "user_not_found", "Account no longer exists.")
			return
		}
		httperr.WriteErr(c, http.StatusInternalServerError, "failed_to_update_profile", "Could not update the profile.", err)
		return
	}

	c.JSON(http.StatusOK, user)
}

// UploadAvatar stores a new profile image and saves its URL on the account.
func (h *ProfileHandler) UploadAvatar(c *gin.Context) {
	userID, _ := middleware.Identity(c)

	if h.uploader == nil {
		httperr.Internal(c, "uploads_not_configured", "Image uploads are not available.")
		return
	}

	fileHeader, err := c.FormFile("image")
	if err != nil {
		httperr.BadRequest(c, "missing_image", "Attach the image under the \"image\" field.")
		return
	}
	if fileHeader.Size > maxAvatarUpload {
		httperr.BadRequest(c, "image_too_large", "Images are limited to 5 MB.")
		return
	}

	f, err := fileHeader.Open()
	if err != nil {
		httperr.WriteErr(c, http.StatusBadRequest, "unreadable_image", "Could not read the uploaded file.", err)
		return
	}
	defer f.Close()

	url, err := h.uploader.UploadAvatar(c.Request.Context(), f)
	if err != nil {
		httperr.WriteErr(c, http.StatusInternalServerError, "failed_to_upload", "Could not store the image.", err)
		return
	}

	user, err := h.users.UpdateProfile(c.Request.Context(), userID, store.ProfileUpdate{
		ProfileImage: &url,
	})
	if err != nil {
		httperr.WriteErr(c, http.StatusInternalServerError, "failed_to_update_profile", "Image stored but the profile update failed.", err)
		return
	}

	c.JSON(http.StatusOK, user)
}
