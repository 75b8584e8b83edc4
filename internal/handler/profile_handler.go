package handler

import (
	"net/http"
	"path/filepath"

	"fittrack/backend/internal/database"
	"fittrack/backend/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const maxProfilePictureSize = 5 * 1024 * 1024 // 5MB

var allowedImageTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/gif":  true,
	"image/webp": true,
	"image/bmp":  true,
	"image/tiff": true,
}

// ProfileResponse is the authenticated user's own profile.
type ProfileResponse struct {
	FirstName      string  `json:"firstName"`
	LastName       string  `json:"lastName"`
	Email          string  `json:"email"`
	Course         string  `json:"course"`
	Height         float64 `json:"height"`
	Weight         float64 `json:"weight"`
	Gender         string  `json:"gender"`
	Age            int     `json:"age"`
	PhoneNumber    string  `json:"phoneNumber"`
	ProfilePicture string  `json:"profilePicture"`
	IsPrivate      bool    `json:"isPrivate"`
}

// UpdateNameInput defines the structure for a name change.
type UpdateNameInput struct {
	FirstName string `json:"firstName" binding:"required"`
	LastName  string `json:"lastName" binding:"required"`
}

// UpdateInfoInput defines the structure for a full profile update.
type UpdateInfoInput struct {
	FirstName   string  `json:"firstName" binding:"required"`
	LastName    string  `json:"lastName" binding:"required"`
	Course      string  `json:"course" binding:"required"`
	Height      float64 `json:"height" binding:"required"`
	Weight      float64 `json:"weight" binding:"required"`
	Gender      string  `json:"gender" binding:"required"`
	Age         int     `json:"age" binding:"required"`
	PhoneNumber string  `json:"phoneNumber" binding:"required"`
}

func newProfileResponse(user models.User) ProfileResponse {
	return ProfileResponse{
		FirstName:      user.FirstName,
		LastName:       user.LastName,
		Email:          user.Email,
		Course:         user.Course,
		Height:         user.Height,
		Weight:         user.Weight,
		Gender:         user.Gender,
		Age:            user.Age,
		PhoneNumber:    user.PhoneNumber,
		ProfilePicture: user.ProfilePicture,
		IsPrivate:      user.IsPrivate,
	}
}

// GetProfile godoc
// @Summary      Get own profile
// @Description  Retrieves the profile of the authenticated user.
// @Tags         profile
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  ProfileResponse
// @Failure      401  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /profile [get]
func GetProfile(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, newProfileResponse(user))
}

// UpdateName godoc
// @Summary      Update name
// @Description  Updates the authenticated user's first and last name.
// @Tags         profile
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        input body UpdateNameInput true "New Name"
// @Success      200  {object}  map[string]string
// @Failure      400  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /profile/update-name [put]
func UpdateName(c *gin.Context) {
	var input UpdateNameInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, ok := currentUser(c)
	if !ok {
		return
	}

	updates := map[string]interface{}{"first_name": input.FirstName, "last_name": input.LastName}
	if err := database.DB.Model(&user).Updates(updates).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update name"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"firstName": input.FirstName, "lastName": input.LastName})
}

// UpdateInfo godoc
// @Summary      Update profile info
// @Description  Updates the authenticated user's profile attributes with full re-validation.
// @Tags         profile
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        input body UpdateInfoInput true "New Profile Info"
// @Success      200  {object}  ProfileResponse
// @Failure      400  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /profile/update-info [put]
func UpdateInfo(c *gin.Context) {
	var input UpdateInfoInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, ok := currentUser(c)
	if !ok {
		return
	}

	// Reject a phone number already registered to another user.
	if input.PhoneNumber != user.PhoneNumber {
		var existing models.User
		err := database.DB.Where("phone_number = ? AND id <> ?", input.PhoneNumber, user.ID).First(&existing).Error
		if err == nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Phone number already registered to another user"})
			return
		}
	}

	updated := user
	updated.FirstName = input.FirstName
	updated.LastName = input.LastName
	updated.Course = input.Course
	updated.Height = input.Height
	updated.Weight = input.Weight
	updated.Gender = input.Gender
	updated.Age = input.Age
	updated.PhoneNumber = input.PhoneNumber
	if err := updated.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := database.DB.Save(&updated).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update profile"})
		return
	}

	c.JSON(http.StatusOK, newProfileResponse(updated))
}

// TogglePrivacy godoc
// @Summary      Toggle profile privacy
// @Description  Flips the authenticated user's private-profile flag.
// @Tags         profile
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  map[string]interface{}
// @Failure      404  {object}  ErrorResponse
// @Router       /profile/toggle-privacy [put]
func TogglePrivacy(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	newValue := !user.IsPrivate
	if err := database.DB.Model(&user).Update("is_private", newValue).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update privacy"})
		return
	}

	visibility := "public"
	if newValue {
		visibility = "private"
	}
	c.JSON(http.StatusOK, gin.H{
		"isPrivate": newValue,
		"message":   "Profile is now " + visibility,
	})
}

// UploadProfilePicture godoc
// @Summary      Upload profile picture
// @Description  Uploads an image (max 5MB) to the object store and saves its URL on the profile.
// @Tags         profile
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        profilePicture formData file true "Image file"
// @Success      200  {object}  map[string]string
// @Failure      400  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /profile/upload-picture [post]
func UploadProfilePicture(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	fileHeader, err := c.FormFile("profilePicture")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No file uploaded"})
		return
	}
	if fileHeader.Size > maxProfilePictureSize {
		c.JSON(http.StatusBadRequest, gin.H{"error": "File exceeds the 5MB limit"})
		return
	}
	if !allowedImageTypes[fileHeader.Header.Get("Content-Type")] {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Only images and GIF files are allowed. Supported formats: JPG, PNG, GIF, WebP, BMP, TIFF"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to read uploaded file"})
		return
	}
	defer file.Close()

	key := "profile-pictures/" + uuid.NewString() + filepath.Ext(fileHeader.Filename)
	url, err := Images.Save(c.Request.Context(), key, file)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to store profile picture"})
		return
	}

	if err := database.DB.Model(&user).Update("profile_picture", url).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save profile picture"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":        "Profile picture updated",
		"profilePicture": url,
	})
}

// DeleteProfilePicture godoc
// @Summary      Delete profile picture
// @Description  Removes the stored image and clears the profile picture URL.
// @Tags         profile
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  map[string]string
// @Failure      404  {object}  ErrorResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /profile/delete-picture [delete]
func DeleteProfilePicture(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}
	if user.ProfilePicture == "" {
		c.JSON(http.StatusNotFound, gin.H{"error": "No profile picture found"})
		return
	}

	key := Images.KeyFromURL(user.ProfilePicture)
	if err := Images.Delete(c.Request.Context(), key); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete profile picture"})
		return
	}

	if err := database.DB.Model(&user).Update("profile_picture", "").Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update profile"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Profile picture removed", "profilePicture": ""})
}

// SearchProfile godoc
// @Summary      Search a profile by email
// @Description  Returns a user's public profile. Private profiles expose only identity fields.
// @Tags         profile
// @Produce      json
// @Param        email path string true "User Email"
// @Success      200  {object}  map[string]interface{}
// @Failure      404  {object}  ErrorResponse
// @Router       /profile/search/{email} [get]
func SearchProfile(c *gin.Context) {
	var user models.User
	if err := database.DB.Where("email = ?", c.Param("email")).First(&user).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	publicData := gin.H{
		"id":             user.ID,
		"firstName":      user.FirstName,
		"lastName":       user.LastName,
		"email":          user.Email,
		"profilePicture": user.ProfilePicture,
		"isPrivate":      user.IsPrivate,
	}

	if !user.IsPrivate {
		publicData["course"] = user.Course
		publicData["height"] = user.Height
		publicData["weight"] = user.Weight
		publicData["gender"] = user.Gender
		publicData["age"] = user.Age
	}

	c.JSON(http.StatusOK, publicData)
}
