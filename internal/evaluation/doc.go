// Package evaluation scores a learner's free-text answer against a card's
// accepted answers.
//
// Evaluate is pure and never fails. EvaluateAsync additionally consults an
// optional SemanticJudge for answers that string matching cannot settle and
// silently keeps the string-match result when the judge cannot help.
package evaluation
