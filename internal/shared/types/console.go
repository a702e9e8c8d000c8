package types

// ConsoleInterface define a interface para saída no console.
type ConsoleInterface interface {
	LogInfo(format string, a ...interface{})
	LogWarning(format string, a ...interface{})
	LogError(format string, a ...interface{})
	LogSuccess(format string, a ...interface{})

	CreateTable() TableInterface
	// PrintTable escreve a tabela renderizada no fluxo de diagnóstico.
	PrintTable(table TableInterface)
}

// TableInterface define a interface para criar e manipular tabelas.
type TableInterface interface {
	AddColumn(name string, options ...interface{})
	AddRow(cells ...interface{})
	Render() string
}
