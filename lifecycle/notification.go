package lifecycle

import (
	"encoding/json"

	"github.com/aws/aws-lambda-go/events"
	"github.com/pkg/errors"
)

const (
	// InstanceLaunching is the transition of an instance entering the group
	InstanceLaunching = "autoscaling:EC2_INSTANCE_LAUNCHING"
	// InstanceTerminating is the transition of an instance leaving the group
	InstanceTerminating = "autoscaling:EC2_INSTANCE_TERMINATING"
	// TestNotification is published once when a hook's notification target is set up
	TestNotification = "autoscaling:TEST_NOTIFICATION"
)

// Notification is the lifecycle hook message Auto Scaling publishes to SNS.
//
//	{
//	  "AutoScalingGroupName": "my-asg",
//	  "Service": "AWS Auto Scaling",
//	  "Time": "2026-10-19T05:34:00.000Z",
//	  "AccountId": "123456789012",
//	  "LifecycleTransition": "autoscaling:EC2_INSTANCE_LAUNCHING",
//	  "RequestId": "c8a1e2b4-...",
//	  "LifecycleActionToken": "87654321-...",
//	  "EC2InstanceId": "i-1234567890abcdef0",
//	  "LifecycleHookName": "my-hook",
//	  "NotificationMetadata": "coral-prod"
//	}
type Notification struct {
	AutoScalingGroupName string `json:"AutoScalingGroupName"`
	LifecycleHookName    string `json:"LifecycleHookName"`
	LifecycleActionToken string `json:"LifecycleActionToken"`
	LifecycleTransition  string `json:"LifecycleTransition"`
	InstanceID           string `json:"EC2InstanceId"`
	// Metadata prefixes the parameter store keys the creator reads
	Metadata  string `json:"NotificationMetadata"`
	AccountID string `json:"AccountId"`
	RequestID string `json:"RequestId"`
	// Event is only set on test notifications
	Event string `json:"Event"`
}

// IsTest reports whether n is the test message sent when a hook is created.
func (n Notification) IsTest() bool {
	return n.Event == TestNotification
}

// Check returns an error when a field needed to complete the action is missing.
func (n Notification) Check() error {
	switch {
	case n.InstanceID == "":
		return errors.New("missing EC2InstanceId")
	case n.AutoScalingGroupName == "":
		return errors.New("missing AutoScalingGroupName")
	case n.LifecycleHookName == "":
		return errors.New("missing LifecycleHookName")
	case n.LifecycleActionToken == "":
		return errors.New("missing LifecycleActionToken")
	}
	return nil
}

// Completable reports whether n identifies a lifecycle action that can be completed,
// even when other fields are missing.
func (n Notification) Completable() bool {
	return n.AutoScalingGroupName != "" && n.LifecycleHookName != "" && n.LifecycleActionToken != ""
}

// Parse decodes the lifecycle message carried by an SNS record.
func Parse(record events.SNSEventRecord) (*Notification, error) {
	var n Notification
	if err := json.Unmarshal([]byte(record.SNS.Message), &n); err != nil {
		return nil, errors.Wrapf(err, "decode lifecycle message %s", record.SNS.MessageID)
	}
	return &n, nil
}
