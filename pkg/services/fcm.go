package services

import (
	"context"
	"errors"
	"fmt"

	firebase "firebase.google.com/go"
	"firebase.google.com/go/messaging"
	"google.golang.org/api/option"
)

// TopicPublisher pushes notifications to every device subscribed to one FCM topic
type TopicPublisher struct {
	client *messaging.Client
	topic  string
}

// NewTopicPublisher initializes Firebase Cloud Messaging
func NewTopicPublisher(ctx context.Context, credentialsFile, topic string) (*TopicPublisher, error) {
	if topic == "" {
		return nil, errors.New("FCM topic not set")
	}

	var opts []option.ClientOption
	if credentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(credentialsFile))
	}
	app, err := firebase.NewApp(ctx, nil, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Firebase app: %w", err)
	}

	client, err := app.Messaging(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize FCM client: %w", err)
	}

	return &TopicPublisher{client: client, topic: topic}, nil
}

// Publish sends one message to the configured topic and returns the message id
func (p *TopicPublisher) Publish(ctx context.Context, title, body string, data map[string]string) (string, error) {
	id, err := p.client.Send(ctx, topicMessage(p.topic, title, body, data))
	if err != nil {
		return "", fmt.Errorf("failed to send notification: %w", err)
	}
	return id, nil
}

func topicMessage(topic, title, body string, data map[string]string) *messaging.Message {
	return &messaging.Message{
		Topic: topic,
		Notification: &messaging.Notification{
			Title: title,
			Body:  body,
		},
		Data: data,
	}
}
