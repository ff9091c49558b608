package port

import "context"

// ClassifyInput carries the document handed to the external classifier.
type ClassifyInput struct {
	FileBytes   []byte
	ContentType string
}

// ClassifyOutput is the untrusted raw text returned by a classifier call. The
// text is expected to hold one JSON verdict but may be fenced, partial or
// unparsable; interpreting it is the normalizer's job.
type ClassifyOutput struct {
	RawText    string
	ModelUsed  string
	PromptUsed string

	// Populated in dual classify mode when the secondary provider also answered.
	SecondaryRawText string
	SecondaryModel   string
}

// DocumentClassifier abstracts the multimodal model that inspects a document.
type DocumentClassifier interface {
	Classify(ctx context.Context, input ClassifyInput) (*ClassifyOutput, error)
}
