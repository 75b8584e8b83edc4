package handler

import (
	"errors"
	"net/http"
	"time"

	"fittrack/backend/internal/database"
	"fittrack/backend/internal/friends"
	"fittrack/backend/internal/models"

	"github.com/gin-gonic/gin"
)

// FriendRequestInput carries the peer email for request/cancel operations.
type FriendRequestInput struct {
	ReceiverEmail string `json:"receiverEmail" binding:"required,email"`
}

// FriendDecisionInput carries the edge id for accept/reject operations.
type FriendDecisionInput struct {
	RequestID uint `json:"requestId" binding:"required"`
}

// RemoveFriendInput carries the peer email for removal.
type RemoveFriendInput struct {
	FriendEmail string `json:"friendEmail" binding:"required,email"`
}

// PendingRequestResponse is one inbound or outbound pending request.
type PendingRequestResponse struct {
	ID        uint         `json:"id"`
	Sender    *UserSummary `json:"sender,omitempty"`
	Receiver  *UserSummary `json:"receiver,omitempty"`
	CreatedAt time.Time    `json:"createdAt"`
}

// FriendResponse is one entry of the accepted-friends list.
type FriendResponse struct {
	ID             uint    `json:"id"`
	Email          string  `json:"email"`
	FirstName      string  `json:"firstName"`
	LastName       string  `json:"lastName"`
	Weight         float64 `json:"weight"`
	Height         float64 `json:"height"`
	Age            int     `json:"age"`
	Gender         string  `json:"gender"`
	Course         string  `json:"course"`
	PhoneNumber    string  `json:"phoneNumber"`
	ProfilePicture string  `json:"profilePicture"`
	IsPrivate      bool    `json:"isPrivate"`
}

// SendFriendRequest godoc
// @Summary      Send a friend request
// @Description  Creates a pending edge on both participants' adjacency lists. A rejected edge between the pair is purged first.
// @Tags         friends
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        input body FriendRequestInput true "Receiver"
// @Success      201  {object}  map[string]string
// @Failure      400  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse "Receiver not found"
// @Failure      500  {object}  ErrorResponse
// @Router       /friends/request [post]
func SendFriendRequest(c *gin.Context) {
	var input FriendRequestInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	senderEmail := c.GetString("userEmail")

	var receiver models.User
	if err := database.DB.Where("email = ?", input.ReceiverEmail).First(&receiver).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	err := FriendService.SendRequest(c.Request.Context(), senderEmail, input.ReceiverEmail)
	switch {
	case errors.Is(err, friends.ErrSelfRequest):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Cannot send friend request to yourself"})
	case errors.Is(err, friends.ErrAlreadyExists):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Friend request already exists"})
	case err != nil:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to send friend request"})
	default:
		c.JSON(http.StatusCreated, gin.H{"message": "Friend request sent successfully"})
	}
}

// GetFriendRequests godoc
// @Summary      List incoming friend requests
// @Description  Lists pending requests initiated by other users, with sender profiles.
// @Tags         friends
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   PendingRequestResponse
// @Failure      401  {object}  ErrorResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /friends/requests [get]
func GetFriendRequests(c *gin.Context) {
	userEmail := c.GetString("userEmail")

	pending, err := FriendService.IncomingRequests(c.Request.Context(), userEmail)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch friend requests"})
		return
	}

	requests := []PendingRequestResponse{}
	for _, edge := range pending {
		var sender models.User
		if err := database.DB.Where("email = ?", edge.FriendEmail).First(&sender).Error; err != nil {
			continue
		}
		summary := newUserSummary(sender)
		requests = append(requests, PendingRequestResponse{
			ID:        edge.ID,
			Sender:    &summary,
			CreatedAt: edge.CreatedAt,
		})
	}

	c.JSON(http.StatusOK, requests)
}

// GetSentRequests godoc
// @Summary      List outgoing friend requests
// @Description  Lists pending requests initiated by the caller, with receiver profiles.
// @Tags         friends
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   PendingRequestResponse
// @Failure      401  {object}  ErrorResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /friends/sent-requests [get]
func GetSentRequests(c *gin.Context) {
	userEmail := c.GetString("userEmail")

	pending, err := FriendService.OutgoingRequests(c.Request.Context(), userEmail)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch sent requests"})
		return
	}

	requests := []PendingRequestResponse{}
	for _, edge := range pending {
		var receiver models.User
		if err := database.DB.Where("email = ?", edge.FriendEmail).First(&receiver).Error; err != nil {
			continue
		}
		summary := newUserSummary(receiver)
		requests = append(requests, PendingRequestResponse{
			ID:        edge.ID,
			Receiver:  &summary,
			CreatedAt: edge.CreatedAt,
		})
	}

	c.JSON(http.StatusOK, requests)
}

// AcceptFriendRequest godoc
// @Summary      Accept a friend request
// @Description  Marks the edge and its mirror as accepted.
// @Tags         friends
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        input body FriendDecisionInput true "Request ID"
// @Success      200  {object}  map[string]string
// @Failure      400  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse "Friend request not found"
// @Failure      500  {object}  ErrorResponse
// @Router       /friends/accept [post]
func AcceptFriendRequest(c *gin.Context) {
	var input FriendDecisionInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	userEmail := c.GetString("userEmail")
	err := FriendService.Accept(c.Request.Context(), userEmail, input.RequestID)
	switch {
	case errors.Is(err, friends.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Friend request not found"})
	case err != nil:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to accept request"})
	default:
		c.JSON(http.StatusOK, gin.H{"message": "Friend request accepted"})
	}
}

// RejectFriendRequest godoc
// @Summary      Reject a friend request
// @Description  Marks the edge and its mirror as rejected.
// @Tags         friends
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        input body FriendDecisionInput true "Request ID"
// @Success      200  {object}  map[string]string
// @Failure      400  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse "Friend request not found"
// @Failure      500  {object}  ErrorResponse
// @Router       /friends/reject [post]
func RejectFriendRequest(c *gin.Context) {
	var input FriendDecisionInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	userEmail := c.GetString("userEmail")
	err := FriendService.Reject(c.Request.Context(), userEmail, input.RequestID)
	switch {
	case errors.Is(err, friends.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Friend request not found"})
	case err != nil:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to reject request"})
	default:
		c.JSON(http.StatusOK, gin.H{"message": "Friend request rejected"})
	}
}

// RemoveFriend godoc
// @Summary      Remove a friend
// @Description  Deletes the edge from both adjacency lists regardless of status.
// @Tags         friends
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        input body RemoveFriendInput true "Friend"
// @Success      200  {object}  map[string]string
// @Failure      400  {object}  ErrorResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /friends/remove [post]
func RemoveFriend(c *gin.Context) {
	var input RemoveFriendInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	userEmail := c.GetString("userEmail")
	if err := FriendService.Remove(c.Request.Context(), userEmail, input.FriendEmail); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to remove friend"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Friend removed successfully"})
}

// CancelFriendRequest godoc
// @Summary      Cancel an outgoing friend request
// @Description  Deletes the pending edge from both adjacency lists.
// @Tags         friends
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        input body FriendRequestInput true "Receiver"
// @Success      200  {object}  map[string]string
// @Failure      400  {object}  ErrorResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /friends/cancel-request [post]
func CancelFriendRequest(c *gin.Context) {
	var input FriendRequestInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	userEmail := c.GetString("userEmail")
	if err := FriendService.Cancel(c.Request.Context(), userEmail, input.ReceiverEmail); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to cancel friend request"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Friend request cancelled successfully"})
}

// GetFriendsList godoc
// @Summary      List accepted friends
// @Description  Lists accepted friends with their profile fields, skipping dangling references.
// @Tags         friends
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   FriendResponse
// @Failure      401  {object}  ErrorResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /friends/list [get]
func GetFriendsList(c *gin.Context) {
	userEmail := c.GetString("userEmail")

	accepted, err := FriendService.Friends(c.Request.Context(), userEmail)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch friends list"})
		return
	}

	friendsList := []FriendResponse{}
	for _, edge := range accepted {
		var friend models.User
		if err := database.DB.Where("email = ?", edge.FriendEmail).First(&friend).Error; err != nil {
			// Dangling reference: the peer account no longer exists.
			continue
		}
		friendsList = append(friendsList, FriendResponse{
			ID:             edge.ID,
			Email:          friend.Email,
			FirstName:      friend.FirstName,
			LastName:       friend.LastName,
			Weight:         friend.Weight,
			Height:         friend.Height,
			Age:            friend.Age,
			Gender:         friend.Gender,
			Course:         friend.Course,
			PhoneNumber:    friend.PhoneNumber,
			ProfilePicture: friend.ProfilePicture,
			IsPrivate:      friend.IsPrivate,
		})
	}

	c.JSON(http.StatusOK, friendsList)
}

// SearchFriend godoc
// @Summary      Search a user by email
// @Description  Returns a user's profile together with the caller's friendship status toward them.
// @Tags         friends
// @Produce      json
// @Security     BearerAuth
// @Param        email query string true "Email to search"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse "User not found"
// @Failure      500  {object}  ErrorResponse
// @Router       /friends/search [get]
func SearchFriend(c *gin.Context) {
	email := c.Query("email")
	if email == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Email is required"})
		return
	}

	var user models.User
	if err := database.DB.Where("email = ?", email).First(&user).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	userEmail := c.GetString("userEmail")
	status, err := FriendService.StatusBetween(c.Request.Context(), userEmail, email)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error searching for user"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"email":            user.Email,
		"firstName":        user.FirstName,
		"lastName":         user.LastName,
		"profilePicture":   user.ProfilePicture,
		"course":           user.Course,
		"gender":           user.Gender,
		"phoneNumber":      user.PhoneNumber,
		"isPrivate":        user.IsPrivate,
		"friendshipStatus": status,
	})
}
