package lifecycle

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/autoscaling"
	"github.com/pkg/errors"
)

// Result is the outcome reported for a lifecycle action.
type Result string

const (
	// Continue lets the instance transition proceed
	Continue Result = "CONTINUE"
	// Abandon halts the transition
	Abandon Result = "ABANDON"
)

// AutoScaling is the subset of the Auto Scaling API used to complete actions.
type AutoScaling interface {
	CompleteLifecycleAction(context.Context, *autoscaling.CompleteLifecycleActionInput, ...func(*autoscaling.Options)) (*autoscaling.CompleteLifecycleActionOutput, error)
}

// Reporter completes lifecycle actions.
type Reporter struct {
	Client AutoScaling
}

// Input returns the completion request for n with result r.
func Input(n Notification, r Result) *autoscaling.CompleteLifecycleActionInput {
	in := &autoscaling.CompleteLifecycleActionInput{
		AutoScalingGroupName:  aws.String(n.AutoScalingGroupName),
		LifecycleHookName:     aws.String(n.LifecycleHookName),
		LifecycleActionToken:  aws.String(n.LifecycleActionToken),
		LifecycleActionResult: aws.String(string(r)),
	}
	if n.InstanceID != "" {
		in.InstanceId = aws.String(n.InstanceID)
	}
	return in
}

// Complete reports r for the action described by n.
func (r *Reporter) Complete(ctx context.Context, n Notification, result Result) error {
	_, err := r.Client.CompleteLifecycleAction(ctx, Input(n, result))
	if err != nil {
		return errors.Wrapf(err, "complete lifecycle action %s with %s", n.LifecycleHookName, result)
	}
	return nil
}
