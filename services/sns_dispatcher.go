package services

import (
	"context"
	"encoding/json"
	"os"

	"firebase.google.com/go/v4/messaging"
	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	awssns "github.com/aws/aws-sdk-go-v2/service/sns"
)

// SNSDispatcher publishes call invites through an SNS platform
// endpoint instead of FCM directly. The device token is expected to
// be the endpoint ARN. Selected with PUSH_BACKEND=sns.
type SNSDispatcher struct {
	sns *awssns.Client
}

func NewSNSDispatcher(ctx context.Context) (*SNSDispatcher, error) {
	region := os.Getenv("AWS_REGION")
	if region == "" {
		region = "ap-south-1"
	}
	cfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(region))
	if err != nil {
		return nil, err
	}
	return &SNSDispatcher{sns: awssns.NewFromConfig(cfg)}, nil
}

func (d *SNSDispatcher) Send(ctx context.Context, message *messaging.Message) (string, error) {
	wrapped := map[string]any{
		"default": message.Notification.Body,
		"GCM": map[string]any{
			"notification": map[string]string{
				"title": message.Notification.Title,
				"body":  message.Notification.Body,
			},
			"data": message.Data,
		},
	}

	raw, err := json.Marshal(wrapped)
	if err != nil {
		return "", err
	}

	out, err := d.sns.Publish(ctx, &awssns.PublishInput{
		MessageStructure: aws.String("json"),
		Message:          aws.String(string(raw)),
		TargetArn:        aws.String(message.Token),
	})
	if err != nil {
		return "", err
	}
	return aws.ToString(out.MessageId), nil
}
