package service

import "fmt"

// RetrievalStep names a stage of the retrieval pipeline.
type RetrievalStep string

const (
	StepAssetInfo RetrievalStep = "asset_info"
	StepMetadata  RetrievalStep = "metadata"
	StepKey       RetrievalStep = "key"
	StepContent   RetrievalStep = "content"
	StepDecrypt   RetrievalStep = "decrypt"
)

// RetrievalError reports the stage at which a retrieval stopped. The
// underlying error is kept so errors.Is matches models.ErrUnauthorized,
// crypto.ErrDecryption and the adapter errors.
type RetrievalError struct {
	AssetID int64
	Step    RetrievalStep
	Err     error
}

func (e *RetrievalError) Error() string {
	return fmt.Sprintf("retrieve asset %d: %s: %v", e.AssetID, e.Step, e.Err)
}

func (e *RetrievalError) Unwrap() error {
	return e.Err
}
