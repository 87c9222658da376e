// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Schedule is the predicate function for schedule builders.
type Schedule func(*sql.Selector)

// ScheduleRun is the predicate function for schedulerun builders.
type ScheduleRun func(*sql.Selector)

// Trigger is the predicate function for trigger builders.
type Trigger func(*sql.Selector)
