package cli

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/diillson/aws-s3-inventory-go/pkg/version"
)

// displayWelcomeBanner exibe o banner de boas-vindas com informações de versão.
func displayWelcomeBanner(w io.Writer, versionStr string) {
	banner := `
   ____ _____   ___                      _
  / ___|___ /  |_ _|_ ____   _____ _ __ | |_ ___  _ __ _   _
  \___ \ |_ \   | || '_ \ \ / / _ \ '_ \| __/ _ \| '__| | | |
   ___) |__) |  | || | | \ V /  __/ | | | || (_) | |  | |_| |
  |____/____/  |___|_| |_|\_/ \___|_| |_|\__\___/|_|   \__, |
                                                       |___/
`
	red := color.New(color.FgRed, color.Bold).SprintFunc()
	blue := color.New(color.FgBlue, color.Bold).SprintFunc()

	fmt.Fprintln(w, red(banner))

	if versionStr == "" {
		versionStr = version.FormatVersion()
	}
	fmt.Fprintln(w, blue(fmt.Sprintf("AWS S3 Inventory CLI (v%s)", versionStr)))
}
