package main

import (
	"github.com/30Piraten/asg-alarms/config"
	"github.com/30Piraten/asg-alarms/log"
	"github.com/aws/aws-cdk-go/awscdk/v2"
	"github.com/aws/constructs-go/constructs/v10"
	"github.com/aws/jsii-runtime-go"
	"go.uber.org/zap"
)

func NewAlarmStack(scope constructs.Construct, id string, props *AlarmStackProps) awscdk.Stack {
	resources := &AlarmResources{
		stack: initializeStack(scope, id, props),
		props: props,
	}

	resources.mediumTopic, resources.highTopic = createAlarmTopics(resources.stack, props.ParameterPrefix)
	resources.parameters = createParameters(resources)

	creator, deleter := createLambdaResources(resources)
	launch, terminate := createLifecycleResources(resources, creator, deleter)

	createStackOutputs(resources, creator, deleter, launch, terminate)

	return resources.stack
}

func main() {
	defer jsii.Close()

	if err := log.Init("info"); err != nil {
		panic(err)
	}

	// Load .env variables one time
	if err := config.Load(".env"); err != nil {
		log.Get().Fatal(".env file could not be loaded", zap.Error(err))
	}

	app := awscdk.NewApp(nil)
	NewAlarmStack(app, "AsgAlarmsStack", &AlarmStackProps{
		StackProps: awscdk.StackProps{
			Env: env(),
		},
		GroupName:       config.CheckEnv("ASG_NAME"),
		ParameterPrefix: config.CheckEnv(config.EnvParameterPrefix),
	})

	app.Synth(nil)
}

func env() *awscdk.Environment {
	return &awscdk.Environment{
		Account: jsii.String(config.CheckEnv("ACCOUNT_ID")),
		Region:  jsii.String(config.CheckEnv("ACCOUNT_REGION")),
	}
}
