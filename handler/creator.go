package handler

import (
	"context"

	"github.com/30Piraten/asg-alarms/alarms"
	"github.com/30Piraten/asg-alarms/lifecycle"
	"github.com/30Piraten/asg-alarms/parameters"
	"github.com/aws/aws-lambda-go/events"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// Creator creates the alarms of launching instances.
type Creator struct {
	Config
	store    *parameters.Store
	reporter *lifecycle.Reporter
}

// NewCreator returns a launch hook handler.
func NewCreator(cfg Config) (*Creator, error) {
	if err := cfg.CheckAndSetDefaults(); err != nil {
		return nil, errors.WithStack(err)
	}
	if cfg.SSM == nil {
		return nil, errors.New("missing parameter SSM")
	}
	return &Creator{
		Config:   cfg,
		store:    &parameters.Store{Client: cfg.SSM},
		reporter: &lifecycle.Reporter{Client: cfg.AutoScaling},
	}, nil
}

// Handle is the Lambda entry point.
func (c *Creator) Handle(ctx context.Context, event events.SNSEvent) error {
	return dispatch(ctx, event, lifecycle.InstanceLaunching, c.reporter, c.process)
}

func (c *Creator) process(ctx context.Context, logger *zap.Logger, n lifecycle.Notification) error {
	prefix := n.Metadata
	if prefix == "" {
		prefix = c.ParameterPrefix
	}
	if prefix == "" {
		logger.Error("notification has no metadata and no parameter prefix is configured")
		return complete(ctx, logger, c.reporter, n, lifecycle.Abandon)
	}

	targets, err := c.store.Targets(ctx, prefix)
	if err != nil {
		logger.Error("failed to read alarm targets",
			zap.String("prefix", prefix),
			zap.String("code", errorCode(err)),
			zap.Error(err))
		return complete(ctx, logger, c.reporter, n, lifecycle.Abandon)
	}
	logger.Debug("resolved alarm targets",
		zap.String("medium_topic", targets.MediumTopicARN),
		zap.String("high_topic", targets.HighTopicARN),
		zap.String("group", targets.GroupName))

	specs := alarms.Build(n.InstanceID, *targets)
	for i, spec := range specs {
		logger.Debug("creating alarm", zap.String("alarm", spec.Name), zap.Any("spec", spec))
		if _, err := c.CloudWatch.PutMetricAlarm(ctx, spec.Input()); err != nil {
			// the remaining alarms are skipped, the action is abandoned once
			logger.Error("failed to create alarm",
				zap.String("alarm", spec.Name),
				zap.Int("created", i),
				zap.Int("skipped", len(specs)-i-1),
				zap.String("code", errorCode(err)),
				zap.Error(err))
			return complete(ctx, logger, c.reporter, n, lifecycle.Abandon)
		}
	}
	logger.Info("created alarms", zap.Int("count", len(specs)))

	return complete(ctx, logger, c.reporter, n, lifecycle.Continue)
}
