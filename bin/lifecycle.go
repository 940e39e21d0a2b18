package main

import (
	"github.com/30Piraten/asg-alarms/lifecycle"
	"github.com/aws/aws-cdk-go/awscdk/v2/awsautoscaling"
	"github.com/aws/aws-cdk-go/awscdk/v2/awsiam"
	"github.com/aws/aws-cdk-go/awscdk/v2/awslambda"
	"github.com/aws/aws-cdk-go/awscdk/v2/awssns"
	"github.com/aws/aws-cdk-go/awscdk/v2/awssnssubscriptions"
	"github.com/aws/jsii-runtime-go"
)

// heartbeatTimeout bounds how long an instance waits for a completion report, in seconds
const heartbeatTimeout = 300

// Lifecycle hook related resources
func createLifecycleResources(resources *AlarmResources, creator, deleter awslambda.Function) (launch, terminate awsautoscaling.CfnLifecycleHook) {
	// Role assumed by Auto Scaling to publish hook notifications
	hookRole := awsiam.NewRole(resources.stack, jsii.String("LifecycleHookRole"), &awsiam.RoleProps{
		AssumedBy: awsiam.NewServicePrincipal(jsii.String("autoscaling.amazonaws.com"), nil),
	})

	launch = createLifecycleHook(resources, hookRole, creator, "Launch", lifecycle.InstanceLaunching, "ABANDON")
	terminate = createLifecycleHook(resources, hookRole, deleter, "Terminate", lifecycle.InstanceTerminating, "CONTINUE")
	return launch, terminate
}

func createLifecycleHook(resources *AlarmResources, role awsiam.IRole, fn awslambda.Function,
	name, transition, defaultResult string) awsautoscaling.CfnLifecycleHook {
	topic := awssns.NewTopic(resources.stack, jsii.String(name+"LifecycleTopic"), &awssns.TopicProps{
		DisplayName: jsii.String(name + " lifecycle notifications"),
	})
	topic.GrantPublish(role)
	topic.AddSubscription(awssnssubscriptions.NewLambdaSubscription(fn, &awssnssubscriptions.LambdaSubscriptionProps{}))

	hook := awsautoscaling.NewCfnLifecycleHook(resources.stack, jsii.String(name+"LifecycleHook"), &awsautoscaling.CfnLifecycleHookProps{
		AutoScalingGroupName:  jsii.String(resources.props.GroupName),
		LifecycleHookName:     jsii.String(resources.props.ParameterPrefix + "-alarms-" + name),
		LifecycleTransition:   jsii.String(transition),
		DefaultResult:         jsii.String(defaultResult),
		HeartbeatTimeout:      jsii.Number(heartbeatTimeout),
		NotificationMetadata:  jsii.String(resources.props.ParameterPrefix),
		NotificationTargetArn: topic.TopicArn(),
		RoleArn:               role.RoleArn(),
	})
	// The subscription must exist before Auto Scaling sends its test notification
	hook.Node().AddDependency(topic)

	return hook
}
