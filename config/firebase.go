package config

import (
	"context"
	"os"
	"sync"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
	"google.golang.org/api/option"
)

var (
	fcmOnce   sync.Once
	fcmClient *messaging.Client
	fcmErr    error
)

// InitFCM initializes the process-wide FCM messaging client once;
// repeated calls return the same client.
func InitFCM(ctx context.Context) (*messaging.Client, error) {
	fcmOnce.Do(func() {
		var opts []option.ClientOption
		if path := os.Getenv("FIREBASE_CREDENTIALS"); path != "" {
			opts = append(opts, option.WithCredentialsFile(path))
		}

		app, err := firebase.NewApp(ctx, nil, opts...)
		if err != nil {
			fcmErr = err
			return
		}
		fcmClient, fcmErr = app.Messaging(ctx)
	})
	return fcmClient, fcmErr
}
