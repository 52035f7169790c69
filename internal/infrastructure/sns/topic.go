package sns

import (
	"context"
	"fmt"

	"github.com/andreyxaxa/Image-Gallery/internal/entity"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sns"
	"github.com/aws/aws-sdk-go-v2/service/sns/types"
)

const (
	ExtensionAttribute = "Extension"
	emailProtocol      = "email"
)

type API interface {
	Publish(ctx context.Context, params *sns.PublishInput, optFns ...func(*sns.Options)) (*sns.PublishOutput, error)
	Subscribe(ctx context.Context, params *sns.SubscribeInput, optFns ...func(*sns.Options)) (*sns.SubscribeOutput, error)
	Unsubscribe(ctx context.Context, params *sns.UnsubscribeInput, optFns ...func(*sns.Options)) (*sns.UnsubscribeOutput, error)
}

// Topic wraps a single SNS topic.
type Topic struct {
	client   API
	topicARN string
}

func NewTopic(client API, topicARN string) *Topic {
	return &Topic{
		client:   client,
		topicARN: topicARN,
	}
}

// Publish returns the provider message id.
func (t *Topic) Publish(ctx context.Context, n entity.Notification) (string, error) {
	input := &sns.PublishInput{
		TopicArn: aws.String(t.topicARN),
		Subject:  aws.String(n.Subject),
		Message:  aws.String(n.Message),
	}

	if n.Extension != "" {
		input.MessageAttributes = map[string]types.MessageAttributeValue{
			ExtensionAttribute: {
				DataType:    aws.String("String"),
				StringValue: aws.String(n.Extension),
			},
		}
	}

	out, err := t.client.Publish(ctx, input)
	if err != nil {
		return "", fmt.Errorf("Topic - Publish - t.client.Publish: %w", err)
	}

	return aws.ToString(out.MessageId), nil
}

// Subscribe registers an email endpoint and returns the subscription ARN.
// Until the recipient confirms, SNS reports "pending confirmation" as the ARN.
func (t *Topic) Subscribe(ctx context.Context, email string) (string, error) {
	out, err := t.client.Subscribe(ctx, &sns.SubscribeInput{
		TopicArn:              aws.String(t.topicARN),
		Protocol:              aws.String(emailProtocol),
		Endpoint:              aws.String(email),
		ReturnSubscriptionArn: true,
	})
	if err != nil {
		return "", fmt.Errorf("Topic - Subscribe - t.client.Subscribe: %w", err)
	}

	return aws.ToString(out.SubscriptionArn), nil
}

func (t *Topic) Unsubscribe(ctx context.Context, subscriptionARN string) error {
	_, err := t.client.Unsubscribe(ctx, &sns.UnsubscribeInput{
		SubscriptionArn: aws.String(subscriptionARN),
	})
	if err != nil {
		return fmt.Errorf("Topic - Unsubscribe - t.client.Unsubscribe: %w", err)
	}

	return nil
}
