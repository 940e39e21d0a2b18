package main

import (
	"fmt"
	"path/filepath"
	"runtime"

	"github.com/30Piraten/asg-alarms/config"
	"github.com/aws/aws-cdk-go/awscdk/v2"
	"github.com/aws/aws-cdk-go/awscdk/v2/awscloudwatch"
	"github.com/aws/aws-cdk-go/awscdk/v2/awsiam"
	"github.com/aws/aws-cdk-go/awscdk/v2/awslambda"
	"github.com/aws/aws-cdk-go/awscdk/v2/awss3assets"
	"github.com/aws/aws-cdk-go/awscdk/v2/awssqs"
	"github.com/aws/jsii-runtime-go"
)

// Lambda related resources
func createLambdaResources(resources *AlarmResources) (creator awslambda.Function, deleter awslambda.Function) {
	// Create DLQ
	deadLetterQueue := createDeadLetterQueue(resources.stack)
	alarm(resources.stack, "AlarmFunctionsDLQAlarm", "Lifecycle notifications failed to reach the alarm functions",
		deadLetterQueue.MetricApproximateNumberOfMessagesVisible(&awscloudwatch.MetricOptions{
			Period: awscdk.Duration_Minutes(jsii.Number(5)),
		}), resources.mediumTopic)

	// Create Lambda functions
	creator = createLambdaFunction(resources, "alarmCreator", "create", deadLetterQueue)
	deleter = createLambdaFunction(resources, "alarmDeleter", "delete", deadLetterQueue)

	// Configure Lambda IAM
	configureCreatorIAM(resources, creator)
	configureDeleterIAM(deleter)

	createLambdaErrorAlarm(resources, creator)
	createLambdaErrorAlarm(resources, deleter)

	return creator, deleter
}

func createDeadLetterQueue(stack awscdk.Stack) awssqs.IQueue {
	return awssqs.NewQueue(stack, jsii.String("LambdaDLQ"), &awssqs.QueueProps{
		QueueName:       jsii.String("asg-alarms-dlq"),
		RetentionPeriod: awscdk.Duration_Days(jsii.Number(7)),
	})
}

func createLambdaFunction(resources *AlarmResources, id, dir string, dlq awssqs.IQueue) awslambda.Function {
	_, filename, _, ok := runtime.Caller(0)
	if !ok {
		panic("Could not get file name")
	}
	// the functions import packages from the whole module
	moduleDir := filepath.Dir(filepath.Dir(filename))

	return awslambda.NewFunction(resources.stack, jsii.String(id), &awslambda.FunctionProps{
		// a completion report must not be sent twice
		RetryAttempts:   jsii.Number(0),
		Runtime:         awslambda.Runtime_PROVIDED_AL2023(),
		Handler:         jsii.String("bootstrap"),
		MemorySize:      jsii.Number(128),
		Timeout:         awscdk.Duration_Minutes(jsii.Number(1)),
		Architecture:    awslambda.Architecture_ARM_64(),
		DeadLetterQueue: dlq,
		Code:            awslambda.Code_FromAsset(jsii.String(moduleDir), bundleOptions(dir)),
		Environment: &map[string]*string{
			config.EnvLogLevel:        jsii.String("info"),
			config.EnvParameterPrefix: jsii.String(resources.props.ParameterPrefix),
		},
		Tracing: awslambda.Tracing_ACTIVE,
	})
}

// bundleOptions builds the bootstrap binary of bin/lambda/<dir> for the
// provided.al2023 arm64 runtime inside a Go container.
func bundleOptions(dir string) *awss3assets.AssetOptions {
	return &awss3assets.AssetOptions{
		AssetHashType: awscdk.AssetHashType_OUTPUT,
		Exclude:       jsii.Strings("_examples", "cdk.out", ".git", "*.md"),
		Bundling: &awscdk.BundlingOptions{
			Image:   awscdk.DockerImage_FromRegistry(jsii.String(buildImage)),
			Command: jsii.Strings("sh", "-c", bundleCommand(dir)),
			Environment: &map[string]*string{
				"CGO_ENABLED": jsii.String("0"),
				"GOOS":        jsii.String("linux"),
				"GOARCH":      jsii.String("arm64"),
				"GOCACHE":     jsii.String("/tmp/go-cache"),
				"GOPATH":      jsii.String("/tmp/go"),
			},
		},
	}
}

func bundleCommand(dir string) string {
	return fmt.Sprintf("go build -tags lambda.norpc -trimpath -ldflags='-s -w' -o /asset-output/bootstrap ./bin/lambda/%s", dir)
}

const buildImage = "golang:1.23"

func createLambdaErrorAlarm(resources *AlarmResources, fn awslambda.Function) awscloudwatch.Alarm {
	name := fmt.Sprintf("%s-errors", *fn.Node().Id())
	return alarm(resources.stack, name, "Alarm for Lambda errors",
		fn.MetricErrors(&awscloudwatch.MetricOptions{
			Period: awscdk.Duration_Minutes(jsii.Number(1)),
		}), resources.mediumTopic)
}

func configureCreatorIAM(resources *AlarmResources, fn awslambda.Function) {
	for _, p := range resources.parameters {
		p.GrantRead(fn)
	}

	fn.AddToRolePolicy(awsiam.NewPolicyStatement(&awsiam.PolicyStatementProps{
		Effect: awsiam.Effect_ALLOW,
		Actions: jsii.Strings(
			"cloudwatch:PutMetricAlarm",
			"autoscaling:CompleteLifecycleAction",
		),
		Resources: jsii.Strings("*"),
	}))
}

func configureDeleterIAM(fn awslambda.Function) {
	fn.AddToRolePolicy(awsiam.NewPolicyStatement(&awsiam.PolicyStatementProps{
		Effect: awsiam.Effect_ALLOW,
		Actions: jsii.Strings(
			"cloudwatch:DeleteAlarms",
			"autoscaling:CompleteLifecycleAction",
		),
		Resources: jsii.Strings("*"),
	}))
}
