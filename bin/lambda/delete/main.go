package main

import (
	"context"
	"fmt"

	"github.com/30Piraten/asg-alarms/config"
	"github.com/30Piraten/asg-alarms/handler"
	"github.com/30Piraten/asg-alarms/log"
	"github.com/aws/aws-lambda-go/lambda"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/autoscaling"
	"github.com/aws/aws-sdk-go-v2/service/cloudwatch"
	"go.uber.org/zap"
)

var deleter *handler.Deleter

// Clients are built once per execution environment and reused across invocations.
func init() {
	if err := config.Load(".env"); err != nil {
		panic(fmt.Sprintf("failed to load .env: %v", err))
	}
	settings := config.FromEnv()
	if err := log.Init(settings.LogLevel); err != nil {
		panic(fmt.Sprintf("failed to init logger: %v", err))
	}

	cfg, err := awsconfig.LoadDefaultConfig(context.TODO())
	if err != nil {
		log.Get().Fatal("failed to load AWS config", zap.Error(err))
	}

	deleter, err = handler.NewDeleter(handler.Config{
		CloudWatch:  cloudwatch.NewFromConfig(cfg),
		AutoScaling: autoscaling.NewFromConfig(cfg),
	})
	if err != nil {
		log.Get().Fatal("failed to create handler", zap.Error(err))
	}
}

func main() {
	defer log.Get().Sync() //nolint:errcheck
	lambda.Start(deleter.Handle)
}
