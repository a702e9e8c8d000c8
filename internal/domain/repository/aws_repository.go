package repository

import (
	"context"

	"github.com/diillson/aws-s3-inventory-go/internal/domain/entity"
)

// AWSRepository defines the interface for AWS API interactions.
type AWSRepository interface {
	// Profile Operations
	GetAWSProfiles() []string
	GetAccountID(ctx context.Context, profile string) (string, error)

	// S3 Operations
	ListBuckets(ctx context.Context, profile string) ([]string, error)

	// ClassifyError separa erros estruturados do provedor de falhas inesperadas
	// e devolve a mensagem a exibir para o erro.
	ClassifyError(err error) (entity.ErrorKind, string)
}
