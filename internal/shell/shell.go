// Package shell is the interactive SQL front end.
package shell

import (
	"fmt"
	"io"
	"strings"

	"github.com/chzyer/readline"
	crdberrors "github.com/cockroachdb/errors"

	"github.com/dshills/quantaplan/internal/catalog"
	"github.com/dshills/quantaplan/internal/config"
	"github.com/dshills/quantaplan/internal/errors"
	"github.com/dshills/quantaplan/internal/log"
	"github.com/dshills/quantaplan/internal/sql/executor"
	"github.com/dshills/quantaplan/internal/sql/ir"
	"github.com/dshills/quantaplan/internal/sql/parser"
	"github.com/dshills/quantaplan/internal/sql/planner"
)

// Shell executes SQL statements against one schema and prints the results.
type Shell struct {
	schema *catalog.Schema
	cfg    config.ShellConfig
	out    io.Writer
	logger log.Logger
}

// New creates a shell writing its results to out.
func New(schema *catalog.Schema, cfg config.ShellConfig, out io.Writer, logger log.Logger) *Shell {
	if logger == nil {
		logger = log.Default()
	}
	return &Shell{
		schema: schema,
		cfg:    cfg,
		out:    out,
		logger: logger.With(log.String("component", "shell")),
	}
}

// Exec runs one statement or meta command and prints its result.
func (sh *Shell) Exec(line string) error {
	sql := strings.TrimSpace(line)
	sql = strings.TrimSpace(strings.TrimSuffix(sql, ";"))
	if sql == "" {
		return nil
	}
	if strings.HasPrefix(sql, `\`) {
		return sh.meta(sql)
	}

	stmt, err := parser.Parse(sql)
	if err != nil {
		return err
	}

	switch s := stmt.(type) {
	case *ir.SelectStmt:
		return sh.execSelect(s)
	case *parser.InsertStmt:
		return sh.execInsert(s)
	case *parser.CreateTableStmt:
		if _, err := sh.schema.CreateTable(s.Table, s.Columns); err != nil {
			return err
		}
		fmt.Fprintln(sh.out, "CREATE TABLE")
		return nil
	case *parser.DropTableStmt:
		err := sh.schema.DropTable(s.Table)
		skipped := s.IfExists && errors.IsError(err, errors.UndefinedTable)
		if err != nil && !skipped {
			return err
		}
		sh.logger.Debug("drop table", log.String("table", s.Table), log.Bool("skipped", skipped))
		if skipped {
			fmt.Fprintf(sh.out, "NOTICE: table %q does not exist, skipping\n", s.Table)
		}
		fmt.Fprintln(sh.out, "DROP TABLE")
		return nil
	default:
		return errors.InternalErrorf("unhandled statement %T", stmt)
	}
}

func (sh *Shell) execSelect(stmt *ir.SelectStmt) error {
	rs, err := planner.BuildSelectPlan(stmt, sh.schema)
	if err != nil {
		return err
	}
	header, err := rs.Columns(sh.schema)
	if err != nil {
		return err
	}
	rows, err := executor.Drain(rs, sh.schema)
	if err != nil {
		return err
	}

	cells := make([][]string, len(rows))
	for i, row := range rows {
		cells[i] = make([]string, len(row.Values))
		for j, v := range row.Values {
			cells[i][j] = v.String()
		}
	}
	writeTable(sh.out, header, cells)
	fmt.Fprintln(sh.out, rowsTag(len(rows)))
	return nil
}

func (sh *Shell) execInsert(stmt *parser.InsertStmt) error {
	inserts, err := parser.BindInsert(stmt, sh.schema)
	if err != nil {
		return err
	}
	plan, err := planner.BuildBatchInsertPlan(inserts, sh.schema)
	if err != nil {
		return err
	}
	n, err := plan.Run(sh.schema)
	if err != nil {
		if n > 0 {
			return crdberrors.WithDetailf(err, "%d rows were inserted before the failure", n)
		}
		return err
	}
	fmt.Fprintf(sh.out, "INSERT 0 %d\n", n)
	return nil
}

func (sh *Shell) meta(cmd string) error {
	switch strings.Fields(cmd)[0] {
	case `\dt`:
		names := sh.schema.ListTables()
		cells := make([][]string, len(names))
		for i, name := range names {
			cells[i] = []string{name}
		}
		writeTable(sh.out, []string{"table"}, cells)
		fmt.Fprintln(sh.out, rowsTag(len(names)))
		return nil
	default:
		return errors.SyntaxErrorf("invalid command %s", cmd)
	}
}

// Run reads statements from the terminal until exit, quit or EOF.
func (sh *Shell) Run() error {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          sh.cfg.Prompt,
		HistoryFile:     sh.cfg.HistoryFile,
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
	if err != nil {
		return crdberrors.Wrap(err, "open terminal")
	}
	defer rl.Close()

	for {
		line, err := rl.Readline()
		if crdberrors.Is(err, readline.ErrInterrupt) {
			continue
		}
		if err != nil {
			break
		}

		trimmed := strings.TrimSpace(line)
		if trimmed == "exit" || trimmed == "quit" || trimmed == `\q` {
			break
		}

		if err := sh.Exec(trimmed); err != nil {
			sh.Report(err)
		}
	}

	fmt.Fprintln(sh.out, "Bye!")
	return nil
}

// Report prints a statement failure for the user.
func (sh *Shell) Report(err error) {
	sh.logger.Debug("statement failed", log.Err(err), log.String("sqlstate", errors.Code(err)))

	fmt.Fprintf(sh.out, "ERROR: %s\n", errors.GetError(err).Error())
	for _, detail := range crdberrors.GetAllDetails(err) {
		fmt.Fprintf(sh.out, "DETAIL: %s\n", detail)
	}
}
