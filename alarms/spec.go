package alarms

import (
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/cloudwatch"
	"github.com/aws/aws-sdk-go-v2/service/cloudwatch/types"
)

const (
	// Period is the metric period of every alarm, in seconds
	Period = 300
	// EvaluationPeriods is the number of breaching periods before an alarm fires
	EvaluationPeriods = 3

	agentNamespace = "CWAgent"
	ec2Namespace   = "AWS/EC2"

	memoryMetric      = "procstat_memory_rss"
	diskUsedMetric    = "Partition disk usage %"
	diskFreeMetric    = "Partition disk free space"
	cpuMetric         = "CPUUtilization"
	pidFileDir        = "/opt/coral/pids"
	diskFilesystem    = "xfs"
	cpuThresholdPct   = 90
	diskUsedHighPct   = 90
	diskUsedMediumPct = 80

	gib = 1 << 30
)

// Memory thresholds in bytes.
const (
	DefaultMemoryThreshold = 1 * gib
	ReefMemoryThreshold    = 4 * gib
)

// Free space thresholds in bytes.
const (
	LowSpaceHighThreshold   = 2 * gib
	LowSpaceMediumThreshold = 5 * gib
)

// Priority selects the notification topic of an alarm.
type Priority int

const (
	Medium Priority = iota
	High
)

func (p Priority) String() string {
	if p == High {
		return "high"
	}
	return "medium"
}

// Targets are the per deployment values an alarm points at.
type Targets struct {
	// MediumTopicARN receives medium priority alarm actions
	MediumTopicARN string
	// HighTopicARN receives high priority alarm actions
	HighTopicARN string
	// GroupName is the AutoScalingGroupName metric dimension
	GroupName string
}

// Topic returns the topic ARN for p.
func (t Targets) Topic(p Priority) string {
	if p == High {
		return t.HighTopicARN
	}
	return t.MediumTopicARN
}

type Dimension struct {
	Name  string
	Value string
}

// Spec is a complete PutMetricAlarm request for one alarm.
type Spec struct {
	Name               string
	Topic              string
	Description        string
	MetricName         string
	Namespace          string
	Dimensions         []Dimension
	Period             int32
	EvaluationPeriods  int32
	Statistic          types.Statistic
	Threshold          float64
	ComparisonOperator types.ComparisonOperator
	ActionsEnabled     bool
}

// Dimension returns the value of the named dimension and whether it is set.
func (s Spec) Dimension(name string) (string, bool) {
	for _, d := range s.Dimensions {
		if d.Name == name {
			return d.Value, true
		}
	}
	return "", false
}

// Input converts the spec into the CloudWatch request.
func (s Spec) Input() *cloudwatch.PutMetricAlarmInput {
	dims := make([]types.Dimension, 0, len(s.Dimensions))
	for _, d := range s.Dimensions {
		dims = append(dims, types.Dimension{
			Name:  aws.String(d.Name),
			Value: aws.String(d.Value),
		})
	}
	return &cloudwatch.PutMetricAlarmInput{
		AlarmName:          aws.String(s.Name),
		AlarmActions:       []string{s.Topic},
		AlarmDescription:   aws.String(s.Description),
		MetricName:         aws.String(s.MetricName),
		Namespace:          aws.String(s.Namespace),
		Dimensions:         dims,
		Period:             aws.Int32(s.Period),
		EvaluationPeriods:  aws.Int32(s.EvaluationPeriods),
		Statistic:          s.Statistic,
		Threshold:          aws.Float64(s.Threshold),
		ComparisonOperator: s.ComparisonOperator,
		ActionsEnabled:     aws.Bool(s.ActionsEnabled),
	}
}

func newSpec(name string) Spec {
	return Spec{
		Name:              name,
		Period:            Period,
		EvaluationPeriods: EvaluationPeriods,
		Statistic:         types.StatisticAverage,
		ActionsEnabled:    true,
	}
}

// ProcessName maps a memory key to the process_name dimension it is reported under.
func ProcessName(key string) string {
	if key == "sponge" {
		return "java"
	}
	return key
}

// MemoryThreshold returns the resident set limit in bytes for a memory key.
func MemoryThreshold(key string) float64 {
	if key == "reef" {
		return ReefMemoryThreshold
	}
	return DefaultMemoryThreshold
}

// Memory builds the resident set memory alarm for one process.
func Memory(key, instanceID string, t Targets) Spec {
	s := newSpec(MemoryAlarmName(key, instanceID))
	s.Topic = t.Topic(Medium)
	s.Description = fmt.Sprintf("%s - high resident set memory usage (bytes) - %s", instanceID, key)
	s.MetricName = memoryMetric
	s.Namespace = agentNamespace
	s.Dimensions = []Dimension{
		{Name: "AutoScalingGroupName", Value: t.GroupName},
		{Name: "InstanceId", Value: instanceID},
		{Name: "pidfile", Value: fmt.Sprintf("%s/%s.pid", pidFileDir, key)},
		{Name: "process_name", Value: ProcessName(key)},
	}
	s.Threshold = MemoryThreshold(key)
	s.ComparisonOperator = types.ComparisonOperatorGreaterThanOrEqualToThreshold
	return s
}

// DiskCheck is the decoded form of a disk key.
type DiskCheck struct {
	Path     string
	Device   string
	LowSpace bool
	Priority Priority
}

// ParseDiskKey decodes the mount, metric and priority a disk key encodes.
func ParseDiskKey(key string) DiskCheck {
	c := DiskCheck{Path: "/", Device: "nvme0n1p1"}
	switch {
	case strings.HasPrefix(key, "var"):
		c.Path, c.Device = "/var", "nvme1n1p1"
	case strings.HasPrefix(key, "opt"):
		c.Path, c.Device = "/opt", "nvme2n1p1"
	}
	c.LowSpace = strings.Contains(key, "DiskLowAvaliableSpace")
	if strings.HasSuffix(key, "HighPriority") {
		c.Priority = High
	}
	return c
}

// Disk builds the disk usage or free space alarm for one disk key.
func Disk(key, instanceID string, t Targets) Spec {
	c := ParseDiskKey(key)

	s := newSpec(DiskAlarmName(key, instanceID))
	s.Topic = t.Topic(c.Priority)
	s.Namespace = agentNamespace
	s.Dimensions = []Dimension{
		{Name: "AutoScalingGroupName", Value: t.GroupName},
		{Name: "InstanceId", Value: instanceID},
		{Name: "path", Value: c.Path},
		{Name: "device", Value: c.Device},
		{Name: "fstype", Value: diskFilesystem},
	}

	if c.LowSpace {
		s.MetricName = diskFreeMetric
		s.ComparisonOperator = types.ComparisonOperatorLessThanOrEqualToThreshold
		s.Threshold = LowSpaceMediumThreshold
		if c.Priority == High {
			s.Threshold = LowSpaceHighThreshold
		}
		s.Description = fmt.Sprintf("%s - low disk available space < %dGB in %s",
			instanceID, int64(s.Threshold)/gib, c.Path)
		return s
	}

	s.MetricName = diskUsedMetric
	s.ComparisonOperator = types.ComparisonOperatorGreaterThanOrEqualToThreshold
	s.Threshold = diskUsedMediumPct
	if c.Priority == High {
		s.Threshold = diskUsedHighPct
	}
	s.Description = fmt.Sprintf("%s - high disk usage %d%% in %s", instanceID, int(s.Threshold), c.Path)
	return s
}

// CPU builds the instance level CPU utilization alarm.
func CPU(instanceID string, t Targets) Spec {
	s := newSpec(CPUAlarmName(instanceID))
	s.Topic = t.Topic(Medium)
	s.Description = fmt.Sprintf("%s - high CPU usage %d%% at system level", instanceID, cpuThresholdPct)
	s.MetricName = cpuMetric
	s.Namespace = ec2Namespace
	s.Dimensions = []Dimension{{Name: "InstanceId", Value: instanceID}}
	s.Threshold = cpuThresholdPct
	s.ComparisonOperator = types.ComparisonOperatorGreaterThanOrEqualToThreshold
	return s
}

// Build returns the specs of every alarm for instanceID: memory, then disk, then CPU.
func Build(instanceID string, t Targets) []Spec {
	specs := make([]Spec, 0, Count)
	for _, k := range memoryKeys {
		specs = append(specs, Memory(k, instanceID, t))
	}
	for _, k := range diskKeys {
		specs = append(specs, Disk(k, instanceID, t))
	}
	return append(specs, CPU(instanceID, t))
}
