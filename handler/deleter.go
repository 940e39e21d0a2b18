package handler

import (
	"context"

	"github.com/30Piraten/asg-alarms/alarms"
	"github.com/30Piraten/asg-alarms/lifecycle"
	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-sdk-go-v2/service/cloudwatch"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// Deleter removes the alarms of terminating instances.
type Deleter struct {
	Config
	reporter *lifecycle.Reporter
}

// NewDeleter returns a terminate hook handler. It needs no parameter store
// client since alarms are deleted by name.
func NewDeleter(cfg Config) (*Deleter, error) {
	if err := cfg.CheckAndSetDefaults(); err != nil {
		return nil, errors.WithStack(err)
	}
	return &Deleter{
		Config:   cfg,
		reporter: &lifecycle.Reporter{Client: cfg.AutoScaling},
	}, nil
}

// Handle is the Lambda entry point.
func (d *Deleter) Handle(ctx context.Context, event events.SNSEvent) error {
	return dispatch(ctx, event, lifecycle.InstanceTerminating, d.reporter, d.process)
}

func (d *Deleter) process(ctx context.Context, logger *zap.Logger, n lifecycle.Notification) error {
	names := alarms.Names(n.InstanceID)
	logger.Info("deleting alarms", zap.Strings("alarms", names))

	// unknown names are ignored by DeleteAlarms
	_, err := d.CloudWatch.DeleteAlarms(ctx, &cloudwatch.DeleteAlarmsInput{AlarmNames: names})
	if err != nil {
		logger.Error("failed to delete alarms",
			zap.String("code", errorCode(err)),
			zap.Error(err))
		return complete(ctx, logger, d.reporter, n, lifecycle.Abandon)
	}
	logger.Info("deleted alarms", zap.Int("count", len(names)))

	return complete(ctx, logger, d.reporter, n, lifecycle.Continue)
}
