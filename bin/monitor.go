package main

import (
	"github.com/aws/aws-cdk-go/awscdk/v2"
	"github.com/aws/aws-cdk-go/awscdk/v2/awssns"
	"github.com/aws/jsii-runtime-go"
)

// Alarm notification topics
func createAlarmTopics(stack awscdk.Stack, prefix string) (medium awssns.ITopic, high awssns.ITopic) {
	medium = awssns.NewTopic(stack, jsii.String("MediumPriorityAlarmTopic"), &awssns.TopicProps{
		TopicName:   jsii.String(prefix + "-medium-priority-alarms"),
		DisplayName: jsii.String("Medium Priority Alarms"),
	})
	high = awssns.NewTopic(stack, jsii.String("HighPriorityAlarmTopic"), &awssns.TopicProps{
		TopicName:   jsii.String(prefix + "-high-priority-alarms"),
		DisplayName: jsii.String("High Priority Alarms"),
	})
	return medium, high
}
