package alarms

import "fmt"

// memoryKeys are the processes watched for resident set growth, in creation order.
var memoryKeys = [...]string{
	"agentstatus",
	"cod",
	"loggerhead",
	"manta",
	"nautilus",
	"oyster",
	"piranha",
	"reef",
	"sponge",
	"urchin",
	"iceflow",
}

// diskKeys encode mount, metric and priority of each disk check. The
// "Avaliable" spelling is part of the deployed alarm names and must not change.
var diskKeys = [...]string{
	"systemLevelDiskUsedPercentHighPriority",
	"varDiskUsedPercentHighPriority",
	"optDiskUsedPercentHighPriority",
	"systemLevelDiskUsedPercentMediumPriority",
	"varDiskUsedPercentMediumPriority",
	"optDiskUsedPercentMediumPriority",
	"systemLevelDiskLowAvaliableSpaceHighPriority",
	"varDiskLowAvaliableSpaceHighPriority",
	"optDiskLowAvaliableSpaceHighPriority",
	"systemLevelDiskLowAvaliableSpaceMediumPriority",
	"varDiskLowAvaliableSpaceMediumPriority",
	"optDiskLowAvaliableSpaceMediumPriority",
}

// cpuKey prefixes the single instance level CPU alarm.
const cpuKey = "systemLevelMediumPriority"

// Count is the number of alarms kept per instance.
const Count = len(memoryKeys) + len(diskKeys) + 1

// MemoryKeys returns a copy of the memory alarm keys.
func MemoryKeys() []string {
	return append([]string(nil), memoryKeys[:]...)
}

// DiskKeys returns a copy of the disk alarm keys.
func DiskKeys() []string {
	return append([]string(nil), diskKeys[:]...)
}

func MemoryAlarmName(key, instanceID string) string {
	return fmt.Sprintf("%s-memory-alarm-%s", key, instanceID)
}

func DiskAlarmName(key, instanceID string) string {
	return fmt.Sprintf("%s-disk-alarm-%s", key, instanceID)
}

func CPUAlarmName(instanceID string) string {
	return fmt.Sprintf("%s-cpu-alarm-%s", cpuKey, instanceID)
}

// Names returns every alarm name owned by instanceID, in creation order.
// Both the creator and the deleter go through here so the two never drift.
func Names(instanceID string) []string {
	names := make([]string, 0, Count)
	for _, k := range memoryKeys {
		names = append(names, MemoryAlarmName(k, instanceID))
	}
	for _, k := range diskKeys {
		names = append(names, DiskAlarmName(k, instanceID))
	}
	return append(names, CPUAlarmName(instanceID))
}
