package aws

import (
	"errors"
	"fmt"

	"github.com/aws/smithy-go"

	"github.com/diillson/aws-s3-inventory-go/internal/domain/entity"
)

// ClassifyError reports whether err was rejected by the AWS API (throttling,
// auth failure, access denied and similar) or failed for any other reason,
// together with the message to show for it. API errors are rendered as
// "<ErrorCode>: <ErrorMessage>" instead of the full operation chain.
func ClassifyError(err error) (entity.ErrorKind, string) {
	if err == nil {
		return entity.ErrorKindNone, ""
	}
	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		if apiErr.ErrorMessage() == "" {
			return entity.ErrorKindProvider, apiErr.ErrorCode()
		}
		return entity.ErrorKindProvider, fmt.Sprintf("%s: %s", apiErr.ErrorCode(), apiErr.ErrorMessage())
	}
	return entity.ErrorKindUnexpected, err.Error()
}

// ClassifyError implementa o método do AWSRepository.
func (r *AWSRepositoryImpl) ClassifyError(err error) (entity.ErrorKind, string) {
	return ClassifyError(err)
}
