package main

import (
	"github.com/aws/aws-cdk-go/awscdk/v2"
	"github.com/aws/aws-cdk-go/awscdk/v2/awsautoscaling"
	"github.com/aws/aws-cdk-go/awscdk/v2/awslambda"
	"github.com/aws/jsii-runtime-go"
)

func createStackOutputs(resources *AlarmResources, creator, deleter awslambda.Function,
	launch, terminate awsautoscaling.CfnLifecycleHook) {
	awscdk.NewCfnOutput(resources.stack, jsii.String("AlarmCreatorFunctionOutput"), &awscdk.CfnOutputProps{
		Value: creator.FunctionName(),
	})

	awscdk.NewCfnOutput(resources.stack, jsii.String("AlarmDeleterFunctionOutput"), &awscdk.CfnOutputProps{
		Value: deleter.FunctionName(),
	})

	awscdk.NewCfnOutput(resources.stack, jsii.String("LaunchHookOutput"), &awscdk.CfnOutputProps{
		Value: launch.Ref(),
	})

	awscdk.NewCfnOutput(resources.stack, jsii.String("TerminateHookOutput"), &awscdk.CfnOutputProps{
		Value: terminate.Ref(),
	})

	awscdk.NewCfnOutput(resources.stack, jsii.String("MediumPriorityTopicOutput"), &awscdk.CfnOutputProps{
		Value: resources.mediumTopic.TopicArn(),
	})

	awscdk.NewCfnOutput(resources.stack, jsii.String("HighPriorityTopicOutput"), &awscdk.CfnOutputProps{
		Value: resources.highTopic.TopicArn(),
	})
}
