// Package srs implements the SM-2 spaced repetition scheduler. All functions
// are pure: callers pass the prior card state, the confirmed quality rating and
// the current time, and receive a new state. Persistence is the caller's job.
package srs
