// Package handler implements the Lambda handlers that keep per instance
// CloudWatch alarms in step with Auto Scaling lifecycle hooks.
//
// The creator answers launch hooks: it resolves the alarm topics and group
// name from the parameter store, upserts every alarm for the instance and
// completes the action with CONTINUE. The deleter answers terminate hooks by
// deleting the same alarm names in one batch. Any failed AWS call completes
// the action with ABANDON instead, and no call is retried.
package handler

import (
	"context"

	"github.com/30Piraten/asg-alarms/lifecycle"
	"github.com/30Piraten/asg-alarms/log"
	"github.com/30Piraten/asg-alarms/parameters"
	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambdacontext"
	"github.com/aws/smithy-go"
	"github.com/pkg/errors"
	"go.uber.org/multierr"
	"go.uber.org/zap"
)

// Config holds the AWS clients shared by both handlers.
type Config struct {
	// CloudWatch manages the alarms
	CloudWatch CloudWatch
	// SSM reads alarm targets, only the creator needs it
	SSM parameters.SSM
	// AutoScaling completes lifecycle actions
	AutoScaling lifecycle.AutoScaling
	// ParameterPrefix is used when a notification has no metadata
	ParameterPrefix string
}

// CheckAndSetDefaults checks that the clients every handler needs are set.
func (c *Config) CheckAndSetDefaults() error {
	if c.CloudWatch == nil {
		return errors.New("missing parameter CloudWatch")
	}
	if c.AutoScaling == nil {
		return errors.New("missing parameter AutoScaling")
	}
	return nil
}

// processor handles a single lifecycle notification.
type processor func(ctx context.Context, logger *zap.Logger, n lifecycle.Notification) error

// dispatch runs process for every lifecycle notification in event that
// belongs to transition. Records are handled one at a time, in order.
func dispatch(ctx context.Context, event events.SNSEvent, transition string, r *lifecycle.Reporter, process processor) error {
	var errs error
	for _, record := range event.Records {
		n, err := lifecycle.Parse(record)
		if err != nil {
			log.Get().Error("failed to parse lifecycle notification", zap.Error(err))
			errs = multierr.Append(errs, err)
			continue
		}

		logger := recordLogger(ctx, *n)
		switch {
		case n.IsTest():
			logger.Info("skipping test notification")
			continue
		case n.LifecycleTransition != "" && n.LifecycleTransition != transition:
			logger.Warn("skipping notification for another transition",
				zap.String("transition", n.LifecycleTransition))
			continue
		}
		if err := n.Check(); err != nil {
			logger.Error("invalid lifecycle notification", zap.Error(err))
			errs = multierr.Append(errs, err)
			if n.Completable() {
				errs = multierr.Append(errs, complete(ctx, logger, r, *n, lifecycle.Abandon))
			}
			continue
		}

		errs = multierr.Append(errs, process(ctx, logger, *n))
	}
	return errs
}

// complete reports result and logs the outcome. Only a failed report is returned.
func complete(ctx context.Context, logger *zap.Logger, r *lifecycle.Reporter, n lifecycle.Notification, result lifecycle.Result) error {
	if err := r.Complete(ctx, n, result); err != nil {
		logger.Error("failed to complete lifecycle action",
			zap.String("result", string(result)),
			zap.String("code", errorCode(err)),
			zap.Error(err))
		return err
	}
	logger.Info("completed lifecycle action", zap.String("result", string(result)))
	return nil
}

func recordLogger(ctx context.Context, n lifecycle.Notification) *zap.Logger {
	fields := []zap.Field{
		zap.String("instance_id", n.InstanceID),
		zap.String("asg_name", n.AutoScalingGroupName),
		zap.String("hook", n.LifecycleHookName),
	}
	if n.RequestID != "" {
		fields = append(fields, zap.String("lifecycle_request_id", n.RequestID))
	}
	if n.AccountID != "" {
		fields = append(fields, zap.String("account_id", n.AccountID))
	}
	if lc, ok := lambdacontext.FromContext(ctx); ok {
		fields = append(fields, zap.String("request_id", lc.AwsRequestID))
	}
	return log.Get().With(fields...)
}

// errorCode returns the AWS error code of err, if it carries one.
func errorCode(err error) string {
	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		return apiErr.ErrorCode()
	}
	return ""
}
