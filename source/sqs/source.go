package sqs

import (
	"context"
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
	"go.uber.org/zap"

	"github.com/AirHelp/geostat/helper"
	"github.com/AirHelp/geostat/stat"
)

const (
	defaultMaxMessages = 1000
	receiveBatchSize   = 10
)

//go:generate mockgen -destination=mocks/sqs_client_mock.go -package sqsMock github.com/AirHelp/geostat/source/sqs SqsClient
type SqsClient interface {
	GetQueueUrl(context.Context, *sqs.GetQueueUrlInput, ...func(*sqs.Options)) (*sqs.GetQueueUrlOutput, error)
	ReceiveMessage(context.Context, *sqs.ReceiveMessageInput, ...func(*sqs.Options)) (*sqs.ReceiveMessageOutput, error)
}

type SQSService struct {
	Client SqsClient
}

func NewSQSService(ctx context.Context) (*SQSService, error) {
	cfg, err := awsconfig.LoadDefaultConfig(ctx)
	if err != nil {
		return nil, err
	}

	return &SQSService{
		Client: sqs.NewFromConfig(cfg),
	}, nil
}

type Config struct {
	Queues      []string `yaml:"queues"`
	MaxMessages int      `yaml:"max_messages"`
}

type queue struct {
	name string
	url  string
}

// Source drains up to maxMessages from every queue, one sample per queue. Messages are
// left on the queue and become visible again once their visibility timeout passes.
type Source struct {
	queues      []queue
	maxMessages int
	client      SqsClient
}

var ErrNoQueueSpecified = errors.New("no queues provided")

func New(ctx context.Context, config *Config, svc *SQSService) (*Source, error) {
	if len(config.Queues) == 0 {
		return &Source{}, ErrNoQueueSpecified
	}

	maxMessages := config.MaxMessages

	if maxMessages <= 0 {
		maxMessages = defaultMaxMessages
	}

	var queues []queue

	for _, name := range config.Queues {
		res, err := svc.Client.GetQueueUrl(ctx, &sqs.GetQueueUrlInput{
			QueueName: aws.String(name),
		})

		if err != nil {
			return &Source{}, err
		}

		queues = append(queues, queue{name: name, url: aws.ToString(res.QueueUrl)})
	}

	return &Source{
		queues:      queues,
		maxMessages: maxMessages,
		client:      svc.Client,
	}, nil
}

func (s *Source) Kind() string {
	return "sqs"
}

func (s *Source) Load(ctx context.Context) (*stat.NamedSamples, error) {
	named := stat.NewNamedSamples()

	for _, q := range s.queues {
		sample, err := s.drain(ctx, q)
		if err != nil {
			return nil, fmt.Errorf("%v: %w", q.name, err)
		}

		zap.S().With("queue", q.name).Debugf("received %d values", len(sample))
		named.Add(q.name, sample)
	}

	return named, nil
}

func (s *Source) drain(ctx context.Context, q queue) ([]float64, error) {
	sample := []float64{}
	received := 0

	for received < s.maxMessages {
		output, err := s.client.ReceiveMessage(ctx, &sqs.ReceiveMessageInput{
			QueueUrl:            aws.String(q.url),
			MaxNumberOfMessages: int32(min(receiveBatchSize, s.maxMessages-received)),
		})

		if err != nil {
			return nil, err
		}

		if len(output.Messages) == 0 {
			break
		}

		for _, msg := range output.Messages {
			values, err := helper.ParseFloats(aws.ToString(msg.Body))
			if err != nil {
				return nil, fmt.Errorf("message %v: %w", aws.ToString(msg.MessageId), err)
			}

			sample = append(sample, values...)
		}

		received += len(output.Messages)
	}

	return sample, nil
}
