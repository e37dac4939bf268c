// Package ops implements the commands that act on the config document: init,
// list, clear, get, set and remove. Each operation writes its normal output
// to the given writer and returns an error instead of exiting; translating
// errors to exit codes is the caller's job.
package ops
