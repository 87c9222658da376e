// Code generated by ent, DO NOT EDIT.

package ent

import (
	"github.com/parallax-dev/parallax/ent/schedule"
	"github.com/parallax-dev/parallax/ent/schema"
	"github.com/parallax-dev/parallax/ent/trigger"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	scheduleFields := schema.Schedule{}.Fields()
	_ = scheduleFields
	// scheduleDescName is the schema descriptor for name field.
	scheduleDescName := scheduleFields[1].Descriptor()
	// schedule.NameValidator is a validator for the "name" field. It is called by the builders before save.
	schedule.NameValidator = scheduleDescName.Validators[0].(func(string) error)
	// scheduleDescPatternName is the schema descriptor for pattern_name field.
	scheduleDescPatternName := scheduleFields[3].Descriptor()
	// schedule.PatternNameValidator is a validator for the "pattern_name" field. It is called by the builders before save.
	schedule.PatternNameValidator = scheduleDescPatternName.Validators[0].(func(string) error)
	// scheduleDescTimezone is the schema descriptor for timezone field.
	scheduleDescTimezone := scheduleFields[7].Descriptor()
	// schedule.DefaultTimezone holds the default value on creation for the timezone field.
	schedule.DefaultTimezone = scheduleDescTimezone.Default.(string)
	// scheduleDescEnabled is the schema descriptor for enabled field.
	scheduleDescEnabled := scheduleFields[8].Descriptor()
	// schedule.DefaultEnabled holds the default value on creation for the enabled field.
	schedule.DefaultEnabled = scheduleDescEnabled.Default.(bool)
	// scheduleDescRunCount is the schema descriptor for run_count field.
	scheduleDescRunCount := scheduleFields[12].Descriptor()
	// schedule.DefaultRunCount holds the default value on creation for the run_count field.
	schedule.DefaultRunCount = scheduleDescRunCount.Default.(int)
	// scheduleDescCompleted is the schema descriptor for completed field.
	scheduleDescCompleted := scheduleFields[16].Descriptor()
	// schedule.DefaultCompleted holds the default value on creation for the completed field.
	schedule.DefaultCompleted = scheduleDescCompleted.Default.(bool)
	schedulerunFields := schema.ScheduleRun{}.Fields()
	_ = schedulerunFields
	triggerFields := schema.Trigger{}.Fields()
	_ = triggerFields
	// triggerDescName is the schema descriptor for name field.
	triggerDescName := triggerFields[1].Descriptor()
	// trigger.NameValidator is a validator for the "name" field. It is called by the builders before save.
	trigger.NameValidator = triggerDescName.Validators[0].(func(string) error)
	// triggerDescPatternName is the schema descriptor for pattern_name field.
	triggerDescPatternName := triggerFields[4].Descriptor()
	// trigger.PatternNameValidator is a validator for the "pattern_name" field. It is called by the builders before save.
	trigger.PatternNameValidator = triggerDescPatternName.Validators[0].(func(string) error)
	// triggerDescEnabled is the schema descriptor for enabled field.
	triggerDescEnabled := triggerFields[5].Descriptor()
	// trigger.DefaultEnabled holds the default value on creation for the enabled field.
	trigger.DefaultEnabled = triggerDescEnabled.Default.(bool)
	// triggerDescFireCount is the schema descriptor for fire_count field.
	triggerDescFireCount := triggerFields[11].Descriptor()
	// trigger.DefaultFireCount holds the default value on creation for the fire_count field.
	trigger.DefaultFireCount = triggerDescFireCount.Default.(int)
}
