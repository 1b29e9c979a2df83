package md5

// Exported aliases for testing internal tables and helpers
// from the md5_test package.

// SinesForTest exposes the additive constant table.
var SinesForTest = sines

// ScheduleForTest exposes the message word schedule.
var ScheduleForTest = schedule

// ShiftsForTest exposes the rotation table.
var ShiftsForTest = shifts

// PadLenForTest exposes padLen.
var PadLenForTest = padLen
