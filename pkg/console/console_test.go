package console

import (
	"bytes"
	"testing"

	"github.com/pterm/pterm"
	"github.com/stretchr/testify/assert"
)

func newTestConsole(t *testing.T) (*Console, *bytes.Buffer, *bytes.Buffer) {
	t.Helper()
	pterm.DisableStyling()
	t.Cleanup(pterm.EnableStyling)

	var out, diag bytes.Buffer
	return NewConsoleWithWriters(&out, &diag), &out, &diag
}

func TestLogsGoToDiagnosticStream(t *testing.T) {
	c, out, diag := newTestConsole(t)

	c.LogInfo("Querying profile %s", "dev")
	c.LogWarning("careful with %s", "prod")
	c.LogError("Error with profile %s: %s", "ops", "AccessDenied")

	assert.Empty(t, out.String())
	assert.Contains(t, diag.String(), "Querying profile dev")
	assert.Contains(t, diag.String(), "careful with prod")
	assert.Contains(t, diag.String(), "Error with profile ops: AccessDenied")
}

func TestSuccessGoesToStdout(t *testing.T) {
	c, out, diag := newTestConsole(t)

	c.LogSuccess("CSV file '%s' created successfully.", "inventory.csv")

	assert.Empty(t, diag.String())
	assert.Contains(t, out.String(), "CSV file 'inventory.csv' created successfully.")
}

func TestTableRender(t *testing.T) {
	c, out, diag := newTestConsole(t)

	table := c.CreateTable()
	table.AddColumn("Profile")
	table.AddColumn("Buckets")
	table.AddRow("dev", 2)
	table.AddRow("prod", 0)
	c.PrintTable(table)

	assert.Empty(t, out.String())
	rendered := diag.String()
	for _, want := range []string{"Profile", "Buckets", "dev", "2", "prod", "0"} {
		assert.Contains(t, rendered, want)
	}
}
