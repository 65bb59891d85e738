package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitStatements(t *testing.T) {
	script := `CREATE TABLE t (
    id VARCHAR2(26) PRIMARY KEY
)
/
CREATE INDEX idx_t ON t (id)
/
`
	statements := splitStatements(script)
	require.Len(t, statements, 2)
	assert.Contains(t, statements[0], "CREATE TABLE t")
	assert.Contains(t, statements[1], "CREATE INDEX idx_t")
}

func TestSplitStatementsTrailingWithoutSlash(t *testing.T) {
	statements := splitStatements("DROP TABLE t")
	require.Len(t, statements, 1)
	assert.Equal(t, "DROP TABLE t", statements[0])
}

func TestSplitStatementsEmpty(t *testing.T) {
	assert.Empty(t, splitStatements("\n/\n"))
}
