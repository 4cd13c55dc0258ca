package services

import (
	"context"
	"errors"
	"strconv"
	"testing"
	"time"

	"firebase.google.com/go/v4/messaging"
)

type fakeDispatcher struct {
	sent []*messaging.Message
	ack  string
	err  error
}

func (f *fakeDispatcher) Send(_ context.Context, message *messaging.Message) (string, error) {
	f.sent = append(f.sent, message)
	return f.ack, f.err
}

func TestBuildCallInvite_DefaultsToVideo(t *testing.T) {
	fixed := time.UnixMilli(1700000000000)
	orig := now
	now = func() time.Time { return fixed }
	defer func() { now = orig }()

	msg, err := BuildCallInvite(CallInvite{
		DeviceToken: "d1",
		Title:       "Call",
		Body:        "Incoming",
		CallerID:    "u1",
		RoomID:      "r1",
	})
	if err != nil {
		t.Fatalf("BuildCallInvite error: %v", err)
	}

	if msg.Token != "d1" {
		t.Errorf("Token = %q, want d1", msg.Token)
	}
	if msg.Notification.Title != "Call" || msg.Notification.Body != "Incoming" {
		t.Errorf("notification = %q/%q", msg.Notification.Title, msg.Notification.Body)
	}

	wantData := map[string]string{
		"type":      "call",
		"callerId":  "u1",
		"callType":  "video",
		"roomId":    "r1",
		"timestamp": strconv.FormatInt(fixed.UnixMilli(), 10),
	}
	for k, want := range wantData {
		if got := msg.Data[k]; got != want {
			t.Errorf("Data[%q] = %q, want %q", k, got, want)
		}
	}
	if len(msg.Data) != len(wantData) {
		t.Errorf("Data has %d keys, want %d", len(msg.Data), len(wantData))
	}
}

func TestBuildCallInvite_PlatformHints(t *testing.T) {
	t.Parallel()

	msg, err := BuildCallInvite(CallInvite{
		DeviceToken: "d1", Title: "Call", Body: "Incoming",
		CallerID: "u1", CallType: "audio", RoomID: "r1",
	})
	if err != nil {
		t.Fatalf("BuildCallInvite error: %v", err)
	}

	if msg.Data["callType"] != "audio" {
		t.Errorf("callType = %q, want audio", msg.Data["callType"])
	}
	if msg.Android.Priority != "high" {
		t.Errorf("android priority = %q, want high", msg.Android.Priority)
	}
	if msg.Android.Notification.Sound != "default" {
		t.Errorf("android sound = %q, want default", msg.Android.Notification.Sound)
	}

	aps := msg.APNS.Payload.Aps
	if aps.Sound != "default" {
		t.Errorf("aps sound = %q, want default", aps.Sound)
	}
	if !aps.ContentAvailable {
		t.Error("aps content-available not set")
	}
	if aps.Badge == nil || *aps.Badge != 1 {
		t.Errorf("aps badge = %v, want 1", aps.Badge)
	}
}

func TestBuildCallInvite_MissingRequiredField(t *testing.T) {
	t.Parallel()

	cases := []CallInvite{
		{Title: "Call", Body: "Incoming", CallerID: "u1", RoomID: "r1"},
		{DeviceToken: "d1", Body: "Incoming", CallerID: "u1", RoomID: "r1"},
		{DeviceToken: "d1", Title: "Call", CallerID: "u1", RoomID: "r1"},
		{DeviceToken: "d1", Title: "Call", Body: "Incoming", RoomID: "r1"},
		{DeviceToken: "d1", Title: "Call", Body: "Incoming", CallerID: "u1"},
	}
	for i, c := range cases {
		if _, err := BuildCallInvite(c); !errors.Is(err, ErrValidation) {
			t.Errorf("case %d: err = %v, want ErrValidation", i, err)
		}
	}
}

func TestSendCallInvite_ReturnsAckVerbatim(t *testing.T) {
	t.Parallel()

	dispatcher := &fakeDispatcher{ack: "projects/p/messages/123"}
	svc := NewPushService(dispatcher)

	ack, err := svc.SendCallInvite(context.Background(), CallInvite{
		DeviceToken: "d1", Title: "Call", Body: "Incoming",
		CallerID: "u1", RoomID: "r1",
	})
	if err != nil {
		t.Fatalf("SendCallInvite error: %v", err)
	}
	if ack != "projects/p/messages/123" {
		t.Errorf("ack = %q", ack)
	}
	if len(dispatcher.sent) != 1 {
		t.Fatalf("dispatcher received %d messages, want 1", len(dispatcher.sent))
	}
}

func TestSendCallInvite_MapsFailureToDeliveryError(t *testing.T) {
	t.Parallel()

	dispatcher := &fakeDispatcher{err: errors.New("registration-token-not-registered")}
	svc := NewPushService(dispatcher)

	_, err := svc.SendCallInvite(context.Background(), CallInvite{
		DeviceToken: "d1", Title: "Call", Body: "Incoming",
		CallerID: "u1", RoomID: "r1",
	})
	if !errors.Is(err, ErrDelivery) {
		t.Fatalf("err = %v, want ErrDelivery", err)
	}
}

func TestSendCallInvite_NoDispatchOnInvalidInput(t *testing.T) {
	t.Parallel()

	dispatcher := &fakeDispatcher{}
	svc := NewPushService(dispatcher)

	if _, err := svc.SendCallInvite(context.Background(), CallInvite{}); !errors.Is(err, ErrValidation) {
		t.Fatalf("err = %v, want ErrValidation", err)
	}
	if len(dispatcher.sent) != 0 {
		t.Errorf("dispatcher called %d times on invalid input", len(dispatcher.sent))
	}
}
