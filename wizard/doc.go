// Package wizard holds the line-based console prompts: numbered menus,
// free-form questions, confirmations and acknowledgement pauses.
package wizard
