package gohook

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
)

// LoadAwsConfig initializes the AWS SDK configuration used by the SQS
// poller source and the SNS topic helper. An empty profile loads the
// default credential chain.
func LoadAwsConfig(ctx context.Context, profile string) (aws.Config, error) {
	var opts []func(*config.LoadOptions) error
	if profile != "" {
		opts = append(opts, config.WithSharedConfigProfile(profile))
	}

	cfg, err := config.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return aws.Config{}, fmt.Errorf("config.LoadDefaultConfig: %w", err)
	}
	return cfg, nil
}

// LoadAwsConfigFromStatic initializes the AWS SDK configuration with
// static credentials, for environments without a shared config file.
func LoadAwsConfigFromStatic(ctx context.Context, accessKeyId, secretKey, stsToken string) (aws.Config, error) {
	cfg, err := config.LoadDefaultConfig(
		ctx,
		config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			accessKeyId, secretKey, stsToken,
		)),
	)
	if err != nil {
		return aws.Config{}, fmt.Errorf("config.LoadDefaultConfig: %w", err)
	}
	return cfg, nil
}
