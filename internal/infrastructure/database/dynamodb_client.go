package database

import (
	"context"
	"os"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

// DynamoDBOptions selects the region and, for dynamodb-local, the endpoint.
type DynamoDBOptions struct {
	Region   string
	Endpoint string
}

// ConnectDynamoDB creates a DynamoDB client.
//
// Credentials come from the default chain. When an endpoint is set (dynamodb-local) and
// the environment carries no keys, static "local" credentials are used:
//   - AWS_ACCESS_KEY_ID (default: local)
//   - AWS_SECRET_ACCESS_KEY (default: local)
func ConnectDynamoDB(ctx context.Context, opts DynamoDBOptions) (*dynamodb.Client, error) {
	cfg, err := NewDynamoDBConfig(ctx, opts)
	if err != nil {
		return nil, err
	}
	return dynamodb.NewFromConfig(cfg, func(o *dynamodb.Options) {
		if opts.Endpoint != "" {
			o.BaseEndpoint = aws.String(opts.Endpoint)
		}
	}), nil
}

func NewDynamoDBConfig(ctx context.Context, opts DynamoDBOptions) (aws.Config, error) {
	region := opts.Region
	if region == "" {
		region = "us-east-1"
	}
	loadOpts := []func(*config.LoadOptions) error{
		config.WithRegion(region),
	}

	if opts.Endpoint != "" {
		// Local DynamoDB does not validate credentials, but the AWS SDK requires them.
		creds := credentials.NewStaticCredentialsProvider(
			getenvDefault("AWS_ACCESS_KEY_ID", "local"),
			getenvDefault("AWS_SECRET_ACCESS_KEY", "local"),
			"",
		)
		loadOpts = append(loadOpts, config.WithCredentialsProvider(creds))
	}

	return config.LoadDefaultConfig(ctx, loadOpts...)
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
