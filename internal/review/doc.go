// Package review runs the per-answer flow: it evaluates a learner's
// response, suggests a quality rating, and once the learner confirms a
// rating it reschedules the card and emits the session event that storage
// collaborators record.
package review
