package export

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"

	"github.com/diillson/aws-s3-inventory-go/internal/domain/entity"
	"github.com/diillson/aws-s3-inventory-go/internal/domain/repository"
	"github.com/diillson/aws-s3-inventory-go/internal/shared/types"
)

// DefaultFilename é o nome fixo do relatório gerado a cada execução.
const DefaultFilename = "aws_s3_buckets_inventory.csv"

// ExportRepositoryImpl implementa o ExportRepository.
type ExportRepositoryImpl struct{}

// NewExportRepository cria uma nova implementação do ExportRepository.
func NewExportRepository() repository.ExportRepository {
	return &ExportRepositoryImpl{}
}

// ExportToCSV writes the table to outputDir/filename, replacing any previous
// file of that name, and returns the absolute path. An empty table writes
// nothing and returns types.ErrNoData.
func (r *ExportRepositoryImpl) ExportToCSV(table *entity.ReportTable, filename, outputDir string) (string, error) {
	if table.Len() == 0 {
		return "", types.ErrNoData
	}

	outputFilename, err := resolveOutputPath(filename, outputDir)
	if err != nil {
		return "", err
	}

	file, err := os.Create(outputFilename)
	if err != nil {
		return "", fmt.Errorf("error creating CSV file: %w", err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	if err := writer.Write(table.Header()); err != nil {
		return "", fmt.Errorf("error writing CSV header: %w", err)
	}
	if err := writer.WriteAll(table.Rows()); err != nil {
		return "", fmt.Errorf("error writing CSV rows: %w", err)
	}

	if err := file.Close(); err != nil {
		return "", fmt.Errorf("error closing CSV file: %w", err)
	}

	return filepath.Abs(outputFilename)
}

// --- Funções Auxiliares ---

// resolveOutputPath monta o caminho do relatório e garante que o diretório exista.
func resolveOutputPath(filename, dir string) (string, error) {
	if filename == "" {
		filename = DefaultFilename
	}
	if dir == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("could not get current working directory: %w", err)
		}
		dir = cwd
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("error creating output directory '%s': %w", dir, err)
	}
	return filepath.Join(dir, filename), nil
}
