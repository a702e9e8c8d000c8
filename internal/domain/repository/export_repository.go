package repository

import (
	"github.com/diillson/aws-s3-inventory-go/internal/domain/entity"
)

type ExportRepository interface {
	ExportToCSV(table *entity.ReportTable, filename string, outputDir string) (string, error)
}
