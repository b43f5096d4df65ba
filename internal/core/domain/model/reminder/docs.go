// Package reminder contains the collection-reminder aggregate of the laundry
// platform.
//
// Each uncollected ready order has at most one Reminder tracking which
// escalation tier (7_days through disposal_eligible) is currently due and
// whether its message went out. The daily sweep creates reminders, escalates
// their tiers as thresholds elapse, and hands the messages to the
// notification outbox.
package reminder
