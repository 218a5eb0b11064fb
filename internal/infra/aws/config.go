package aws

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"

	"hospital-admin/pkg/resource"
)

// LoadConfig builds the AWS config from app.cloud.*. Without static keys the default
// credential chain (environment, shared profile, IAM role) is used.
func LoadConfig(ctx context.Context) (aws.Config, error) {
	opts := []func(*config.LoadOptions) error{
		config.WithRegion(resource.GetStringOrDefault("app.cloud.aws-region", "us-east-1")),
	}

	accessKey := resource.GetString("app.cloud.aws-access-key-id")
	secretKey := resource.GetString("app.cloud.aws-secret-access-key")
	if accessKey != "" && secretKey != "" {
		opts = append(opts, config.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(accessKey, secretKey, "")))
	}

	cfg, err := config.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return aws.Config{}, fmt.Errorf("failed to load AWS config: %w", err)
	}
	return cfg, nil
}

// endpoint returns the LocalStack style endpoint override, if any.
func endpoint() *string {
	if value := resource.GetString("app.cloud.aws-endpoint"); value != "" {
		return aws.String(value)
	}
	return nil
}
