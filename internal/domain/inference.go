package domain

// InferenceResult is the difficulty inferencer's advisory suggestion.
type InferenceResult struct {
	Quality    Quality `json:"quality"`
	Confidence float64 `json:"confidence"` // 0..1
	Reasoning  string  `json:"reasoning"`
}
