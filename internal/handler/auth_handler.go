package handler

import (
	"errors"
	"log"
	"net/http"

	"fittrack/backend/internal/database"
	"fittrack/backend/internal/models"
	"fittrack/backend/pkg/jwt"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// SignupInput defines the structure for user registration.
type SignupInput struct {
	FirstName   string  `json:"firstName" binding:"required" example:"Juan"`
	LastName    string  `json:"lastName" binding:"required" example:"Dela Cruz"`
	Email       string  `json:"email" binding:"required" example:"juan@example.com"`
	Password    string  `json:"password" binding:"required,min=8" example:"password123"`
	Course      string  `json:"course" binding:"required" example:"BSCS"`
	Height      float64 `json:"height" binding:"required" example:"170"`
	Weight      float64 `json:"weight" binding:"required" example:"70"`
	Gender      string  `json:"gender" binding:"required" example:"Male"`
	Age         int     `json:"age" binding:"required" example:"21"`
	PhoneNumber string  `json:"phoneNumber" binding:"required" example:"+639171234567"`
}

// SigninInput defines the structure for user login.
type SigninInput struct {
	Email    string `json:"email" binding:"required,email" example:"juan@example.com"`
	Password string `json:"password" binding:"required" example:"password123"`
}

// SignoutInput defines the structure for user logout.
type SignoutInput struct {
	Email string `json:"email" binding:"required,email"`
}

// Signup godoc
// @Summary      Register a new user
// @Description  Creates a new account with profile attributes and body metrics.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        input body SignupInput true "Registration Info"
// @Success      201  {object}  map[string]string "{"message": "User registered successfully"}"
// @Failure      400  {object}  ErrorResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /auth/signup [post]
func Signup(c *gin.Context) {
	var input SignupInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user := models.User{
		FirstName:     input.FirstName,
		LastName:      input.LastName,
		Email:         input.Email,
		Course:        input.Course,
		Height:        input.Height,
		Weight:        input.Weight,
		InitialWeight: input.Weight,
		Gender:        input.Gender,
		Age:           input.Age,
		PhoneNumber:   input.PhoneNumber,
	}
	if err := user.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var existing models.User
	if err := database.DB.Where("email = ?", input.Email).First(&existing).Error; err == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Email already registered"})
		return
	}
	if err := database.DB.Where("phone_number = ?", input.PhoneNumber).First(&existing).Error; err == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Phone number already registered"})
		return
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to hash password"})
		return
	}
	user.PasswordHash = string(hashedPassword)

	if err := database.DB.Create(&user).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create user"})
		return
	}

	log.Printf("User signed up: %s", user.Email)
	c.JSON(http.StatusCreated, gin.H{"message": "User registered successfully"})
}

// Signin godoc
// @Summary      Log in a user
// @Description  Authenticates a user with email and password, and returns a token.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        input body SigninInput true "Login Info"
// @Success      200  {object}  map[string]interface{} "{"token": "...", "user": {...}}"
// @Failure      400  {object}  ErrorResponse "Invalid credentials"
// @Failure      500  {object}  ErrorResponse
// @Router       /auth/signin [post]
func Signin(c *gin.Context) {
	var input SigninInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var user models.User
	if err := database.DB.Where("email = ?", input.Email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid credentials"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to look up user"})
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.Password)); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid credentials"})
		return
	}

	token, err := jwt.GenerateToken(user.ID, user.Email)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token": token,
		"user": gin.H{
			"id":        user.ID,
			"firstName": user.FirstName,
			"lastName":  user.LastName,
			"email":     user.Email,
		},
	})
}

// Signout godoc
// @Summary      Log out a user
// @Description  Acknowledges a sign-out. Tokens are stateless; the client discards its copy.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        input body SignoutInput true "Signout Info"
// @Success      200  {object}  map[string]string "{"message": "User signed out successfully"}"
// @Failure      400  {object}  ErrorResponse
// @Router       /auth/signout [post]
func Signout(c *gin.Context) {
	var input SignoutInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Email is required for signout"})
		return
	}

	log.Printf("User signed out: %s", input.Email)
	c.JSON(http.StatusOK, gin.H{"message": "User signed out successfully"})
}
