package parser

import (
	"fmt"
	"strings"

	"github.com/dshills/quantaplan/internal/sql/types"
	"github.com/dshills/quantaplan/internal/storage"
)

// Statement is a parsed SQL statement. SELECT statements are returned as
// *ir.SelectStmt; the others are the statement types of this package.
type Statement interface {
	String() string
}

// InsertStmt is an INSERT with unresolved table and column names.
type InsertStmt struct {
	Table   string
	Columns []string
	Rows    [][]types.Value
}

func (s *InsertStmt) String() string {
	var sb strings.Builder
	sb.WriteString("INSERT INTO ")
	sb.WriteString(s.Table)
	if len(s.Columns) > 0 {
		sb.WriteString(" (")
		sb.WriteString(strings.Join(s.Columns, ", "))
		sb.WriteString(")")
	}
	fmt.Fprintf(&sb, " VALUES <%d rows>", len(s.Rows))
	return sb.String()
}

// CreateTableStmt is a CREATE TABLE statement.
type CreateTableStmt struct {
	Table   string
	Columns []storage.Column
}

func (s *CreateTableStmt) String() string {
	cols := make([]string, len(s.Columns))
	for i, col := range s.Columns {
		cols[i] = col.Name + " " + col.Type.Name()
		if !col.Nullable {
			cols[i] += " NOT NULL"
		}
	}
	return fmt.Sprintf("CREATE TABLE %s (%s)", s.Table, strings.Join(cols, ", "))
}

// DropTableStmt is a DROP TABLE statement.
type DropTableStmt struct {
	Table    string
	IfExists bool
}

func (s *DropTableStmt) String() string {
	if s.IfExists {
		return "DROP TABLE IF EXISTS " + s.Table
	}
	return "DROP TABLE " + s.Table
}
