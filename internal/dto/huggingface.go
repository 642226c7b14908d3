package dto

type HuggingFaceRequest struct {
	Inputs string `json:"inputs"`
}

// HuggingFaceLabelScore is one candidate label from a text-classification
// model, e.g. {"label":"POSITIVE","score":0.98}.
type HuggingFaceLabelScore struct {
	Label string  `json:"label"`
	Score float64 `json:"score"`
}

// HuggingFaceResponse is the inference API payload for a single input:
// a list of candidate lists, one per input.
type HuggingFaceResponse [][]HuggingFaceLabelScore
