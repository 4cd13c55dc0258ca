package controllers

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/Syed-Bipul-Rahman/call-server/services"

	"github.com/gin-gonic/gin"
)

type CallController struct {
	Push *services.PushService
}

func NewCallController(push *services.PushService) *CallController {
	return &CallController{Push: push}
}

type SendCallInput struct {
	FCMToken string `json:"fcmToken" binding:"required"`
	Title    string `json:"title" binding:"required"`
	Body     string `json:"body" binding:"required"`
	CallerID any    `json:"callerId" binding:"required"`
	CallType string `json:"callType"`
	RoomID   any    `json:"roomId" binding:"required"`
}

// callerId and roomId may arrive as JSON numbers; the push channel
// only carries string data values.
func stringify(v any) string {
	switch val := v.(type) {
	case string:
		return val
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case nil:
		return ""
	default:
		return ""
	}
}

func (cc *CallController) SendCall(c *gin.Context) {
	var input SendCallInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Missing required notification parameters"})
		return
	}

	invite := services.CallInvite{
		DeviceToken: input.FCMToken,
		Title:       input.Title,
		Body:        input.Body,
		CallerID:    stringify(input.CallerID),
		CallType:    input.CallType,
		RoomID:      stringify(input.RoomID),
	}

	ack, err := cc.Push.SendCallInvite(c.Request.Context(), invite)
	switch {
	case err == nil:
		c.JSON(http.StatusOK, gin.H{
			"message":          "Notification sent successfully",
			"dispatchResponse": ack,
		})
	case errors.Is(err, services.ErrValidation):
		c.JSON(http.StatusBadRequest, gin.H{"message": "Missing required notification parameters"})
	default:
		log.Printf("Error sending notification: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to send notification"})
	}
}
