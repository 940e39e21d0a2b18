package parameters

import (
	"context"

	"github.com/30Piraten/asg-alarms/alarms"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ssm"
	"github.com/pkg/errors"
)

// Key suffixes appended to the notification metadata.
const (
	MediumTopicSuffix = "MediumPriorityAlarmTopicArn"
	HighTopicSuffix   = "HighPriorityAlarmTopicArn"
	GroupNameSuffix   = "CoralASGName"
)

// SSM is the subset of the Systems Manager API used to read parameters.
type SSM interface {
	GetParameter(context.Context, *ssm.GetParameterInput, ...func(*ssm.Options)) (*ssm.GetParameterOutput, error)
}

// Store reads alarm targets from the parameter store.
type Store struct {
	Client SSM
}

// Key returns the parameter name for suffix under prefix.
func Key(prefix, suffix string) string {
	return prefix + "-" + suffix
}

// Get returns the value of a single parameter.
func (s *Store) Get(ctx context.Context, name string) (string, error) {
	out, err := s.Client.GetParameter(ctx, &ssm.GetParameterInput{
		Name: aws.String(name),
	})
	if err != nil {
		return "", errors.Wrapf(err, "get parameter %s", name)
	}
	if out.Parameter == nil || aws.ToString(out.Parameter.Value) == "" {
		return "", errors.Errorf("parameter %s has no value", name)
	}
	return aws.ToString(out.Parameter.Value), nil
}

// Targets resolves the medium topic, the high topic and the group name, in that order.
// The first failed lookup is returned.
func (s *Store) Targets(ctx context.Context, prefix string) (*alarms.Targets, error) {
	medium, err := s.Get(ctx, Key(prefix, MediumTopicSuffix))
	if err != nil {
		return nil, err
	}
	high, err := s.Get(ctx, Key(prefix, HighTopicSuffix))
	if err != nil {
		return nil, err
	}
	group, err := s.Get(ctx, Key(prefix, GroupNameSuffix))
	if err != nil {
		return nil, err
	}
	return &alarms.Targets{
		MediumTopicARN: medium,
		HighTopicARN:   high,
		GroupName:      group,
	}, nil
}
