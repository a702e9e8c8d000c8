package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/diillson/aws-s3-inventory-go/internal/adapter/driven/aws"
	"github.com/diillson/aws-s3-inventory-go/internal/adapter/driven/config"
	"github.com/diillson/aws-s3-inventory-go/internal/adapter/driven/export"
	"github.com/diillson/aws-s3-inventory-go/internal/adapter/driving/cli"
	"github.com/diillson/aws-s3-inventory-go/internal/application/usecase"
	"github.com/diillson/aws-s3-inventory-go/internal/shared/types"
	"github.com/diillson/aws-s3-inventory-go/pkg/console"
	"github.com/diillson/aws-s3-inventory-go/pkg/version"
)

func main() {
	// Inicializa o aplicativo CLI
	app := cli.NewCLIApp(version.Version)

	// Inicializa os repositórios que não dependem dos argumentos
	exportRepo := export.NewExportRepository()
	configRepo := config.NewConfigRepository()
	consoleImpl := console.NewConsole()

	app.SetConfigRepository(configRepo)

	// O repositório AWS depende da região e do arquivo de configuração escolhidos
	app.SetUseCaseFactory(func(args *types.CLIArgs) *usecase.InventoryUseCase {
		awsRepo := aws.NewAWSRepository(
			aws.WithControlPlaneRegion(args.Region),
			aws.WithConfigFile(args.AWSConfigFile),
		)
		return usecase.NewInventoryUseCase(awsRepo, exportRepo, consoleImpl)
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Executa o aplicativo
	if err := app.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		stop()
		os.Exit(1)
	}
}
