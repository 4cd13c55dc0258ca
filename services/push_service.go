package services

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"firebase.google.com/go/v4/messaging"
)

// overridable in tests
var now = time.Now

// Dispatcher delivers a built message to a device and returns the
// backend's delivery acknowledgment. *messaging.Client satisfies it.
type Dispatcher interface {
	Send(ctx context.Context, message *messaging.Message) (string, error)
}

type CallInvite struct {
	DeviceToken string
	Title       string
	Body        string
	CallerID    string
	CallType    string // defaults to "video"
	RoomID      string
}

type PushService struct {
	dispatcher Dispatcher
}

func NewPushService(dispatcher Dispatcher) *PushService {
	return &PushService{dispatcher: dispatcher}
}

// BuildCallInvite shapes the push message for an incoming call.
// Data values must all be strings; the delivery channel rejects
// anything else.
func BuildCallInvite(invite CallInvite) (*messaging.Message, error) {
	if invite.DeviceToken == "" || invite.Title == "" || invite.Body == "" ||
		invite.CallerID == "" || invite.RoomID == "" {
		return nil, ErrValidation
	}

	callType := invite.CallType
	if callType == "" {
		callType = "video"
	}

	badge := 1
	return &messaging.Message{
		Token: invite.DeviceToken,
		Notification: &messaging.Notification{
			Title: invite.Title,
			Body:  invite.Body,
		},
		Data: map[string]string{
			"type":      "call",
			"callerId":  invite.CallerID,
			"callType":  callType,
			"roomId":    invite.RoomID,
			"timestamp": strconv.FormatInt(now().UnixMilli(), 10),
		},
		Android: &messaging.AndroidConfig{
			Priority: "high",
			Notification: &messaging.AndroidNotification{
				Sound: "default",
			},
		},
		APNS: &messaging.APNSConfig{
			Payload: &messaging.APNSPayload{
				Aps: &messaging.Aps{
					Sound:            "default",
					ContentAvailable: true,
					Badge:            &badge,
				},
			},
		},
	}, nil
}

// SendCallInvite builds the payload and hands it to the dispatcher.
// Any delivery failure maps to ErrDelivery; no retry is attempted here.
func (p *PushService) SendCallInvite(ctx context.Context, invite CallInvite) (string, error) {
	message, err := BuildCallInvite(invite)
	if err != nil {
		return "", err
	}

	ack, err := p.dispatcher.Send(ctx, message)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrDelivery, err)
	}
	return ack, nil
}
