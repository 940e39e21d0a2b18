package main

import (
	"github.com/aws/aws-cdk-go/awscdk/v2"
	"github.com/aws/constructs-go/constructs/v10"
	"github.com/aws/jsii-runtime-go"
)

func initializeStack(scope constructs.Construct, id string, props *AlarmStackProps) awscdk.Stack {
	var sprops awscdk.StackProps
	if props != nil {
		sprops = props.StackProps
	}

	// Configure stack synthesizer
	sprops.Synthesizer = awscdk.NewDefaultStackSynthesizer(&awscdk.DefaultStackSynthesizerProps{
		Qualifier: jsii.String("asgalarms"),
	})

	stack := awscdk.NewStack(scope, &id, &sprops)
	if props != nil {
		awscdk.Tags_Of(stack).Add(jsii.String("asg"), jsii.String(props.GroupName), nil)
	}

	return stack
}
