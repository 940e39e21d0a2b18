package main

import (
	"github.com/30Piraten/asg-alarms/parameters"
	"github.com/aws/aws-cdk-go/awscdk/v2/awsssm"
	"github.com/aws/jsii-runtime-go"
)

// Parameters read by the alarm creator, keyed by the hook metadata.
func createParameters(resources *AlarmResources) []awsssm.IStringParameter {
	prefix := resources.props.ParameterPrefix
	values := []struct {
		id     string
		suffix string
		value  *string
	}{
		{"MediumTopicParameter", parameters.MediumTopicSuffix, resources.mediumTopic.TopicArn()},
		{"HighTopicParameter", parameters.HighTopicSuffix, resources.highTopic.TopicArn()},
		{"GroupNameParameter", parameters.GroupNameSuffix, jsii.String(resources.props.GroupName)},
	}

	var out []awsssm.IStringParameter
	for _, v := range values {
		out = append(out, awsssm.NewStringParameter(resources.stack, jsii.String(v.id), &awsssm.StringParameterProps{
			ParameterName: jsii.String(parameters.Key(prefix, v.suffix)),
			StringValue:   v.value,
			Description:   jsii.String("Read by the alarm creator on instance launch"),
		}))
	}
	return out
}
