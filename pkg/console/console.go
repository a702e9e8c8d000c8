package console

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/pterm/pterm"

	"github.com/diillson/aws-s3-inventory-go/internal/shared/types"
)

// Console é uma implementação do ConsoleInterface.
// Mensagens de log vão para o fluxo de diagnóstico; resultados vão para a saída padrão.
type Console struct {
	diag io.Writer

	info    *pterm.PrefixPrinter
	warning *pterm.PrefixPrinter
	errorP  *pterm.PrefixPrinter
	success *pterm.PrefixPrinter
}

// NewConsole cria um novo Console escrevendo em stdout e stderr.
func NewConsole() *Console {
	return NewConsoleWithWriters(os.Stdout, os.Stderr)
}

// NewConsoleWithWriters cria um Console com destinos explícitos.
func NewConsoleWithWriters(out, diag io.Writer) *Console {
	return &Console{
		diag:    diag,
		info:    pterm.Info.WithWriter(diag),
		warning: pterm.Warning.WithWriter(diag),
		errorP:  pterm.Error.WithWriter(diag),
		success: pterm.Success.WithWriter(out),
	}
}

// Cores predefinidas para uso consistente
var (
	BoldRed     = color.New(color.FgRed, color.Bold).SprintFunc()
	BrightGreen = color.New(color.FgGreen, color.Bold).SprintFunc()
	BrightCyan  = color.New(color.FgCyan, color.Bold).SprintFunc()
)

// LogInfo registra uma mensagem de informação.
func (c *Console) LogInfo(format string, a ...interface{}) {
	c.info.Printfln(format, a...)
}

// LogWarning registra uma mensagem de aviso.
func (c *Console) LogWarning(format string, a ...interface{}) {
	c.warning.Printfln(format, a...)
}

// LogError registra uma mensagem de erro.
func (c *Console) LogError(format string, a ...interface{}) {
	c.errorP.Printfln(format, a...)
}

// LogSuccess registra uma mensagem de sucesso.
func (c *Console) LogSuccess(format string, a ...interface{}) {
	c.success.Printfln(format, a...)
}

// Table é uma implementação do TableInterface.
type Table struct {
	columns []string
	rows    [][]string
}

// CreateTable cria uma nova tabela.
func (c *Console) CreateTable() types.TableInterface {
	return &Table{
		columns: []string{},
		rows:    [][]string{},
	}
}

// PrintTable escreve a tabela no fluxo de diagnóstico.
func (c *Console) PrintTable(table types.TableInterface) {
	fmt.Fprintln(c.diag, table.Render())
}

// AddColumn adiciona uma coluna à tabela.
func (t *Table) AddColumn(name string, options ...interface{}) {
	t.columns = append(t.columns, name)
}

// AddRow adiciona uma linha à tabela.
func (t *Table) AddRow(cells ...interface{}) {
	processedCells := make([]string, len(cells))
	for i, cell := range cells {
		processedCells[i] = fmt.Sprint(cell)
	}
	t.rows = append(t.rows, processedCells)
}

// Render renderiza a tabela como uma string.
func (t *Table) Render() string {
	tableData := pterm.TableData{t.columns}
	for _, row := range t.rows {
		tableData = append(tableData, row)
	}

	table := pterm.DefaultTable.
		WithHasHeader().
		WithBoxed().
		WithHeaderStyle(pterm.NewStyle(pterm.FgLightCyan)).
		WithData(tableData)

	renderedTable, _ := table.Srender()
	return renderedTable
}
