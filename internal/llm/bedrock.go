package llm

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/bedrockruntime"
	"github.com/aws/aws-sdk-go-v2/service/bedrockruntime/types"
)

// DefaultBedrockModel is the foundation model used when none is configured.
const DefaultBedrockModel = "amazon.nova-pro-v1:0"

// DefaultBedrockRegion is used when no region is configured.
const DefaultBedrockRegion = "us-east-1"

// Bedrock calls a foundation model through the AWS Bedrock converse API.
type Bedrock struct {
	client *bedrockruntime.Client
	model  string
}

// NewBedrock builds a Bedrock generator with static credentials.
func NewBedrock(ctx context.Context, cfg Config) (*Bedrock, error) {
	region := cfg.Region
	if region == "" {
		region = DefaultBedrockRegion
	}
	model := cfg.Model
	if model == "" {
		model = DefaultBedrockModel
	}
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(region),
		awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("load AWS config: %w", err)
	}
	return &Bedrock{
		client: bedrockruntime.NewFromConfig(awsCfg),
		model:  model,
	}, nil
}

// Generate sends a single-turn conversation and returns the first text block
// of the model's reply.
func (b *Bedrock) Generate(ctx context.Context, systemPrompt, userMessage string) (string, error) {
	out, err := b.client.Converse(ctx, &bedrockruntime.ConverseInput{
		ModelId: aws.String(b.model),
		Messages: []types.Message{
			{
				Role: types.ConversationRoleUser,
				Content: []types.ContentBlock{
					&types.ContentBlockMemberText{Value: composeMessage(systemPrompt, userMessage)},
				},
			},
		},
	})
	if err != nil {
		return "", fmt.Errorf("%w: converse: %v", ErrUnavailable, err)
	}

	msg, ok := out.Output.(*types.ConverseOutputMemberMessage)
	if !ok {
		return "", fmt.Errorf("%w: unexpected output type %T", ErrInvalidResponse, out.Output)
	}
	if len(msg.Value.Content) == 0 {
		return "", fmt.Errorf("%w: empty message content", ErrInvalidResponse)
	}
	text, ok := msg.Value.Content[0].(*types.ContentBlockMemberText)
	if !ok {
		return "", fmt.Errorf("%w: first content block is %T, not text", ErrInvalidResponse, msg.Value.Content[0])
	}
	return text.Value, nil
}
