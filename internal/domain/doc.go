// Package domain contains the core value types of the review engine: card
// scheduling state, quality ratings, evaluation and inference results, and the
// session event handed to storage collaborators. It has no dependencies on
// infrastructure or delivery mechanisms.
package domain
