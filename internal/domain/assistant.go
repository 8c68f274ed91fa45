package domain

// CompletionRequest is a single-turn text prompt sent to a chat model.
type CompletionRequest struct {
	System      string
	Prompt      string
	Temperature float64
}

// ImageAnalysisRequest asks a vision model to describe an image.
type ImageAnalysisRequest struct {
	System      string
	Prompt      string
	Image       []byte
	MIMEType    string
	Temperature float64
}
