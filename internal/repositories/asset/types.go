package asset

import "io"

type GetAssetInput struct {
	// QuestionID is the asset reference, e.g. "tiger1.jpg"
	QuestionID string
}

type GetAssetOutput struct {
	// Name is the file name to present for the attachment
	Name string

	// Reader streams the image contents
	Reader io.ReadCloser
}
