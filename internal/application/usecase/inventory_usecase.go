package usecase

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/diillson/aws-s3-inventory-go/internal/domain/entity"
	"github.com/diillson/aws-s3-inventory-go/internal/domain/repository"
	"github.com/diillson/aws-s3-inventory-go/internal/shared/types"
	"github.com/diillson/aws-s3-inventory-go/pkg/console"
)

// InventoryUseCase resolves profiles, scans each account and writes the bucket report.
type InventoryUseCase struct {
	awsRepo    repository.AWSRepository
	exportRepo repository.ExportRepository
	console    types.ConsoleInterface
}

// NewInventoryUseCase creates a new inventory use case.
func NewInventoryUseCase(
	awsRepo repository.AWSRepository,
	exportRepo repository.ExportRepository,
	consoleImpl types.ConsoleInterface,
) *InventoryUseCase {
	return &InventoryUseCase{
		awsRepo:    awsRepo,
		exportRepo: exportRepo,
		console:    consoleImpl,
	}
}

// ResolveProfiles returns the explicit comma-separated profiles, trimmed and in
// the given order, or the profiles discovered in the shared config file when
// explicit is empty.
func (uc *InventoryUseCase) ResolveProfiles(explicit string) []string {
	if strings.TrimSpace(explicit) == "" {
		return uc.awsRepo.GetAWSProfiles()
	}

	profiles := []string{}
	for _, p := range strings.Split(explicit, ",") {
		// Entradas vazias ("a,,b") selecionariam a cadeia padrão do SDK.
		if p = strings.TrimSpace(p); p != "" {
			profiles = append(profiles, p)
		}
	}
	return profiles
}

// ScanProfile resolves the account behind profile and lists its buckets.
// Failures are logged and returned as an unsuccessful result with no records.
func (uc *InventoryUseCase) ScanProfile(ctx context.Context, profile string, verbose bool) (result entity.ProfileResult) {
	result = entity.ProfileResult{Profile: profile}

	defer func() {
		if r := recover(); r != nil {
			result = uc.failProfile(result, entity.ErrorKindUnexpected, fmt.Sprintf("panic: %v", r))
		}
	}()

	// Etapa 1: identidade da conta
	result.Stage = entity.StageIdentity
	accountID, err := uc.awsRepo.GetAccountID(ctx, profile)
	if err != nil {
		kind, msg := uc.awsRepo.ClassifyError(err)
		return uc.failProfile(result, kind, msg)
	}
	result.AccountID = accountID

	if verbose {
		uc.console.LogInfo("Querying profile %s (Account ID: %s)", profile, accountID)
	}

	// Etapa 2: listagem de buckets
	result.Stage = entity.StageListing
	names, err := uc.awsRepo.ListBuckets(ctx, profile)
	if err != nil {
		kind, msg := uc.awsRepo.ClassifyError(err)
		return uc.failProfile(result, kind, msg)
	}

	result.Stage = ""
	result.Records = entity.NewBucketRecords(entity.Identity{Profile: profile, AccountID: accountID}, names)
	result.Success = true
	return result
}

// failProfile registra o erro do perfil e descarta quaisquer registros parciais.
func (uc *InventoryUseCase) failProfile(result entity.ProfileResult, kind entity.ErrorKind, msg string) entity.ProfileResult {
	if kind != entity.ErrorKindProvider {
		kind = entity.ErrorKindUnexpected
	}

	result.Success = false
	result.Records = nil
	result.ErrorKind = kind
	result.Error = msg

	if kind == entity.ErrorKindProvider {
		uc.console.LogError("Error with profile %s: %s", result.Profile, result.Error)
	} else {
		uc.console.LogError("Unexpected error with profile %s: %s", result.Profile, result.Error)
	}
	return result
}

// BuildReport scans every profile in order and accumulates the records of the
// successful ones. Scanning stops early only if ctx is cancelled.
func (uc *InventoryUseCase) BuildReport(ctx context.Context, profiles []string, verbose bool) (*entity.ReportTable, []entity.ProfileResult) {
	table := entity.NewReportTable()
	results := make([]entity.ProfileResult, 0, len(profiles))

	for i, profile := range profiles {
		if err := ctx.Err(); err != nil {
			uc.console.LogWarning("Interrupted, skipping %d remaining profile(s): %v", len(profiles)-i, err)
			break
		}

		result := uc.ScanProfile(ctx, profile, verbose)
		if result.Success {
			table.Append(result.Records...)
		}
		results = append(results, result)
	}

	return table, results
}

// RunInventory executes the full inventory for the given arguments. Profile
// failures never produce an error; only setup or write failures do.
func (uc *InventoryUseCase) RunInventory(ctx context.Context, args *types.CLIArgs) error {
	profiles := uc.ResolveProfiles(args.Profiles)

	if args.Verbose {
		uc.console.LogInfo("Using profiles: [%s]", strings.Join(profiles, ", "))
	}

	table, results := uc.BuildReport(ctx, profiles, args.Verbose)

	if args.Verbose && len(results) > 0 {
		uc.printSummary(results)
	}

	path, err := uc.exportRepo.ExportToCSV(table, args.Output, args.Dir)
	if errors.Is(err, types.ErrNoData) {
		uc.console.LogWarning("No data to write.")
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to export inventory: %w", err)
	}

	uc.console.LogSuccess("CSV file '%s' created successfully.", filepath.Base(path))
	return nil
}

func (uc *InventoryUseCase) printSummary(results []entity.ProfileResult) {
	table := uc.console.CreateTable()
	table.AddColumn("Profile")
	table.AddColumn("Account ID")
	table.AddColumn("Buckets")
	table.AddColumn("Status")

	for _, r := range results {
		status := console.BrightGreen("OK")
		if !r.Success {
			status = console.BoldRed(fmt.Sprintf("%s error (%s)", r.ErrorKind, r.Stage))
		}
		table.AddRow(console.BrightCyan(r.Profile), r.AccountID, len(r.Records), status)
	}

	uc.console.PrintTable(table)
}
