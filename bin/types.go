package main

import (
	"github.com/aws/aws-cdk-go/awscdk/v2"
	"github.com/aws/aws-cdk-go/awscdk/v2/awssns"
	"github.com/aws/aws-cdk-go/awscdk/v2/awsssm"
)

type AlarmStackProps struct {
	awscdk.StackProps
	// GroupName is the existing Auto Scaling group the hooks attach to
	GroupName string
	// ParameterPrefix is published as hook metadata and prefixes the SSM parameters
	ParameterPrefix string
}

type AlarmResources struct {
	stack       awscdk.Stack
	props       *AlarmStackProps
	mediumTopic awssns.ITopic
	highTopic   awssns.ITopic
	parameters  []awsssm.IStringParameter
}
