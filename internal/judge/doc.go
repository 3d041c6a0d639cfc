// Package judge implements evaluation.SemanticJudge on top of an LLM
// provider, with an optional Redis-backed verdict cache so repeated
// response/answer pairs do not cost another model call.
package judge
