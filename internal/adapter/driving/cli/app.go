package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/diillson/aws-s3-inventory-go/internal/adapter/driven/aws"
	"github.com/diillson/aws-s3-inventory-go/internal/adapter/driven/export"
	"github.com/diillson/aws-s3-inventory-go/internal/application/usecase"
	"github.com/diillson/aws-s3-inventory-go/internal/domain/repository"
	"github.com/diillson/aws-s3-inventory-go/internal/shared/types"
	"github.com/diillson/aws-s3-inventory-go/pkg/version"
)

// UseCaseFactory monta o caso de uso depois que os argumentos são conhecidos,
// já que a sessão AWS depende da região e do arquivo de configuração escolhidos.
type UseCaseFactory func(args *types.CLIArgs) *usecase.InventoryUseCase

// CLIApp represents the command-line interface application.
type CLIApp struct {
	rootCmd        *cobra.Command
	configRepo     repository.ConfigRepository
	useCaseFactory UseCaseFactory
	version        string
	diag           io.Writer
}

// NewCLIApp cria uma nova aplicação CLI.
func NewCLIApp(versionStr string) *CLIApp {
	app := &CLIApp{
		version: versionStr,
		diag:    os.Stderr,
	}

	rootCmd := &cobra.Command{
		Use:           "aws-s3-inventory",
		Short:         "Inventory of S3 buckets across AWS profiles",
		Long:          "Lists the S3 buckets of every account reachable through your AWS profiles and writes them to a CSV report.",
		Version:       version.FormatVersion(),
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          app.runCommand,
	}

	rootCmd.SetVersionTemplate(`{{printf "AWS S3 Inventory version: %s\n" .Version}}`)

	rootCmd.PersistentFlags().StringP("config-file", "C", "", "Path to a TOML, YAML, or JSON configuration file")
	rootCmd.PersistentFlags().StringP("profiles", "p", "", "Comma-separated AWS profiles to use (default: every 'profile' section of the AWS config file)")
	rootCmd.PersistentFlags().Bool("verbose", true, "Print progress and a per-profile summary to stderr")
	rootCmd.PersistentFlags().StringP("output", "o", export.DefaultFilename, "Name of the CSV report file")
	rootCmd.PersistentFlags().StringP("dir", "d", "", "Directory to save the report file (default: current directory)")
	rootCmd.PersistentFlags().StringP("region", "r", aws.DefaultControlPlaneRegion, "Region used for the account-wide ListBuckets call")

	app.rootCmd = rootCmd
	return app
}

// Execute runs the CLI application.
func (app *CLIApp) Execute() error {
	return app.ExecuteContext(context.Background())
}

// ExecuteContext runs the CLI application with a cancellable context.
func (app *CLIApp) ExecuteContext(ctx context.Context) error {
	return app.rootCmd.ExecuteContext(ctx)
}

// SetArgs substitui os argumentos da linha de comando (usado em testes).
func (app *CLIApp) SetArgs(args []string) {
	app.rootCmd.SetArgs(args)
}

// SetConfigRepository sets the repository used to read --config-file.
func (app *CLIApp) SetConfigRepository(configRepo repository.ConfigRepository) {
	app.configRepo = configRepo
}

// SetUseCaseFactory sets how the inventory use case is built for a run.
func (app *CLIApp) SetUseCaseFactory(factory UseCaseFactory) {
	app.useCaseFactory = factory
}

// SetDiagnosticOutput redireciona o banner (padrão: stderr).
func (app *CLIApp) SetDiagnosticOutput(w io.Writer) {
	app.diag = w
}

// parseArgs parses command-line arguments into a CLIArgs struct, applying the
// config file underneath any flag set explicitly.
func (app *CLIApp) parseArgs() (*types.CLIArgs, error) {
	flags := app.rootCmd.Flags()

	configFile, _ := flags.GetString("config-file")
	profiles, _ := flags.GetString("profiles")
	verbose, _ := flags.GetBool("verbose")
	output, _ := flags.GetString("output")
	dir, _ := flags.GetString("dir")
	region, _ := flags.GetString("region")

	args := &types.CLIArgs{
		ConfigFile: configFile,
		Profiles:   profiles,
		Verbose:    verbose,
		Output:     output,
		Dir:        dir,
		Region:     region,
	}

	if configFile != "" {
		if app.configRepo == nil {
			return nil, fmt.Errorf("no config repository configured to read %s", configFile)
		}
		cfg, err := app.configRepo.LoadConfigFile(configFile)
		if err != nil {
			return nil, err
		}
		mergeConfig(args, cfg, flags.Changed)
	}

	if args.Dir != "" {
		absDir, err := filepath.Abs(args.Dir)
		if err != nil {
			return nil, err
		}
		args.Dir = absDir
	}

	return args, nil
}

// mergeConfig aplica valores do arquivo de configuração apenas onde a flag
// correspondente não foi informada na linha de comando.
func mergeConfig(args *types.CLIArgs, cfg *types.Config, changed func(name string) bool) {
	if !changed("profiles") && len(cfg.Profiles) > 0 {
		args.Profiles = strings.Join(cfg.Profiles, ",")
	}
	if !changed("verbose") && cfg.Verbose != nil {
		args.Verbose = *cfg.Verbose
	}
	if !changed("output") && cfg.Output != "" {
		args.Output = cfg.Output
	}
	if !changed("dir") && cfg.Dir != "" {
		args.Dir = cfg.Dir
	}
	if !changed("region") && cfg.Region != "" {
		args.Region = cfg.Region
	}
	if cfg.AWSConfigFile != "" {
		args.AWSConfigFile = cfg.AWSConfigFile
	}
}

// runCommand é o ponto de entrada principal para o comando CLI.
func (app *CLIApp) runCommand(cmd *cobra.Command, _ []string) error {
	cliArgs, err := app.parseArgs()
	if err != nil {
		return err
	}

	if cliArgs.Verbose {
		displayWelcomeBanner(app.diag, app.version)
	}

	if app.useCaseFactory == nil {
		return fmt.Errorf("inventory use case not configured")
	}

	return app.useCaseFactory(cliArgs).RunInventory(cmd.Context(), cliArgs)
}
