package alarms

import (
	"strings"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/cloudwatch/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testTargets = Targets{
	MediumTopicARN: "arn:aws:sns:us-east-1:123456789012:medium",
	HighTopicARN:   "arn:aws:sns:us-east-1:123456789012:high",
	GroupName:      "coral-asg",
}

func TestBuildMatchesNames(t *testing.T) {
	for _, id := range []string{"i-abc", "i-0123456789abcdef0", ""} {
		specs := Build(id, testTargets)
		require.Len(t, specs, Count)

		names := make([]string, 0, len(specs))
		for _, s := range specs {
			names = append(names, s.Name)
		}
		assert.Equal(t, Names(id), names)
	}
}

func TestBuildIsDeterministic(t *testing.T) {
	assert.Equal(t, Build("i-abc", testTargets), Build("i-abc", testTargets))
}

func TestMemoryDeviations(t *testing.T) {
	for _, key := range MemoryKeys() {
		s := Memory(key, "i-abc", testTargets)

		process, ok := s.Dimension("process_name")
		require.True(t, ok)
		pidfile, _ := s.Dimension("pidfile")
		assert.Equal(t, "/opt/coral/pids/"+key+".pid", pidfile)

		switch key {
		case "sponge":
			assert.Equal(t, "java", process)
			assert.Equal(t, float64(DefaultMemoryThreshold), s.Threshold)
		case "reef":
			assert.Equal(t, "reef", process)
			assert.Equal(t, float64(4294967296), s.Threshold)
		default:
			assert.Equal(t, key, process)
			assert.Equal(t, float64(1073741824), s.Threshold)
		}
		assert.Equal(t, testTargets.MediumTopicARN, s.Topic)
		assert.Equal(t, types.ComparisonOperatorGreaterThanOrEqualToThreshold, s.ComparisonOperator)
	}
}

func TestReefMemoryAlarm(t *testing.T) {
	s := Memory("reef", "i-abc", testTargets)
	assert.Equal(t, "reef-memory-alarm-i-abc", s.Name)
	assert.Equal(t, float64(4294967296), s.Threshold)
	assert.Equal(t, types.ComparisonOperatorGreaterThanOrEqualToThreshold, s.ComparisonOperator)
	assert.Equal(t, "procstat_memory_rss", s.MetricName)
	assert.Equal(t, "CWAgent", s.Namespace)
}

func TestDiskDistribution(t *testing.T) {
	paths := map[string]int{}
	high := 0
	for _, key := range DiskKeys() {
		s := Disk(key, "i-abc", testTargets)
		path, ok := s.Dimension("path")
		require.True(t, ok)
		paths[path]++
		if s.Topic == testTargets.HighTopicARN {
			high++
			assert.Equal(t, High, ParseDiskKey(key).Priority)
		}
	}
	assert.Equal(t, map[string]int{"/": 4, "/var": 4, "/opt": 4}, paths)
	assert.Equal(t, 6, high)
}

func TestDiskThresholds(t *testing.T) {
	tests := []struct {
		key       string
		path      string
		device    string
		metric    string
		threshold float64
		op        types.ComparisonOperator
		topic     string
	}{
		{
			key:       "varDiskLowAvaliableSpaceHighPriority",
			path:      "/var",
			device:    "nvme1n1p1",
			metric:    "Partition disk free space",
			threshold: 2147483648,
			op:        types.ComparisonOperatorLessThanOrEqualToThreshold,
			topic:     testTargets.HighTopicARN,
		},
		{
			key:       "optDiskLowAvaliableSpaceMediumPriority",
			path:      "/opt",
			device:    "nvme2n1p1",
			metric:    "Partition disk free space",
			threshold: 5368709120,
			op:        types.ComparisonOperatorLessThanOrEqualToThreshold,
			topic:     testTargets.MediumTopicARN,
		},
		{
			key:       "systemLevelDiskUsedPercentHighPriority",
			path:      "/",
			device:    "nvme0n1p1",
			metric:    "Partition disk usage %",
			threshold: 90,
			op:        types.ComparisonOperatorGreaterThanOrEqualToThreshold,
			topic:     testTargets.HighTopicARN,
		},
		{
			key:       "systemLevelDiskUsedPercentMediumPriority",
			path:      "/",
			device:    "nvme0n1p1",
			metric:    "Partition disk usage %",
			threshold: 80,
			op:        types.ComparisonOperatorGreaterThanOrEqualToThreshold,
			topic:     testTargets.MediumTopicARN,
		},
	}
	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			s := Disk(tt.key, "i-abc", testTargets)
			assert.Equal(t, tt.key+"-disk-alarm-i-abc", s.Name)
			path, _ := s.Dimension("path")
			device, _ := s.Dimension("device")
			fstype, _ := s.Dimension("fstype")
			assert.Equal(t, tt.path, path)
			assert.Equal(t, tt.device, device)
			assert.Equal(t, "xfs", fstype)
			assert.Equal(t, tt.metric, s.MetricName)
			assert.Equal(t, tt.threshold, s.Threshold)
			assert.Equal(t, tt.op, s.ComparisonOperator)
			assert.Equal(t, tt.topic, s.Topic)
		})
	}
}

func TestDiskDescriptions(t *testing.T) {
	assert.Equal(t, "i-abc - low disk available space < 2GB in /var",
		Disk("varDiskLowAvaliableSpaceHighPriority", "i-abc", testTargets).Description)
	assert.Equal(t, "i-abc - high disk usage 80% in /opt",
		Disk("optDiskUsedPercentMediumPriority", "i-abc", testTargets).Description)
}

func TestCPUAlarm(t *testing.T) {
	s := CPU("i-abc", testTargets)
	assert.Equal(t, "systemLevelMediumPriority-cpu-alarm-i-abc", s.Name)
	assert.Equal(t, "AWS/EC2", s.Namespace)
	assert.Equal(t, "CPUUtilization", s.MetricName)
	assert.Equal(t, []Dimension{{Name: "InstanceId", Value: "i-abc"}}, s.Dimensions)
	assert.Equal(t, float64(90), s.Threshold)
	assert.Equal(t, testTargets.MediumTopicARN, s.Topic)
}

func TestSharedSettings(t *testing.T) {
	for _, s := range Build("i-abc", testTargets) {
		assert.EqualValues(t, 300, s.Period, s.Name)
		assert.EqualValues(t, 3, s.EvaluationPeriods, s.Name)
		assert.Equal(t, types.StatisticAverage, s.Statistic, s.Name)
		assert.True(t, s.ActionsEnabled, s.Name)
		assert.True(t, strings.HasSuffix(s.Name, "-i-abc"), s.Name)
	}
}

func TestInput(t *testing.T) {
	in := Memory("sponge", "i-abc", testTargets).Input()
	assert.Equal(t, "sponge-memory-alarm-i-abc", aws.ToString(in.AlarmName))
	assert.Equal(t, []string{testTargets.MediumTopicARN}, in.AlarmActions)
	assert.Equal(t, int32(300), aws.ToInt32(in.Period))
	assert.Equal(t, int32(3), aws.ToInt32(in.EvaluationPeriods))
	assert.Equal(t, float64(DefaultMemoryThreshold), aws.ToFloat64(in.Threshold))
	assert.True(t, aws.ToBool(in.ActionsEnabled))
	require.Len(t, in.Dimensions, 4)
	assert.Equal(t, "process_name", aws.ToString(in.Dimensions[3].Name))
	assert.Equal(t, "java", aws.ToString(in.Dimensions[3].Value))
}
