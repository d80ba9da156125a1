package services

import (
	"context"
	"fmt"
	"log"
	"os"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
	"google.golang.org/api/option"
)

// FCMService delivers push notifications through Firebase Cloud Messaging.
type FCMService struct {
	client *messaging.Client
}

// NewFCMService creates an FCM sender. Credentials come from
// FIREBASE_CREDENTIALS_FILE, falling back to application-default
// credentials (GOOGLE_APPLICATION_CREDENTIALS).
func NewFCMService(ctx context.Context) (*FCMService, error) {
	var opts []option.ClientOption
	if file := os.Getenv("FIREBASE_CREDENTIALS_FILE"); file != "" {
		opts = append(opts, option.WithCredentialsFile(file))
	}

	app, err := firebase.NewApp(ctx, nil, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize firebase app: %w", err)
	}
	client, err := app.Messaging(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize FCM client: %w", err)
	}
	return &FCMService{client: client}, nil
}

// Send pushes one message to one device token.
func (f *FCMService) Send(token, title, body string, data map[string]string) error {
	msg := &messaging.Message{
		Token: token,
		Notification: &messaging.Notification{
			Title: title,
			Body:  body,
		},
		Data: data,
	}

	id, err := f.client.Send(context.Background(), msg)
	if err != nil {
		return err
	}
	log.Printf("push sent, message id: %s", id)
	return nil
}
