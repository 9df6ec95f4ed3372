package parser

import (
	"strconv"
	"strings"

	"github.com/xwb1989/sqlparser"

	"github.com/dshills/quantaplan/internal/errors"
	"github.com/dshills/quantaplan/internal/sql/ir"
	"github.com/dshills/quantaplan/internal/sql/types"
	"github.com/dshills/quantaplan/internal/storage"
)

// Parse parses one SQL statement.
func Parse(sql string) (Statement, error) {
	stmt, err := sqlparser.ParseStrictDDL(sql)
	if err != nil {
		return nil, errors.SyntaxErrorf("%s", err.Error())
	}

	switch s := stmt.(type) {
	case *sqlparser.Select:
		return buildSelect(s)
	case *sqlparser.Insert:
		return buildInsert(s)
	case *sqlparser.DDL:
		return buildDDL(s)
	case *sqlparser.Union, *sqlparser.ParenSelect:
		return nil, errors.FeatureNotSupportedError("UNION")
	case *sqlparser.Update:
		return nil, errors.FeatureNotSupportedError("UPDATE")
	case *sqlparser.Delete:
		return nil, errors.FeatureNotSupportedError("DELETE")
	default:
		return nil, errors.FeatureNotSupportedError(sqlparser.String(stmt))
	}
}

func buildSelect(sel *sqlparser.Select) (*ir.SelectStmt, error) {
	if len(sel.SelectExprs) != 1 {
		return nil, errors.FeatureNotSupportedError("column projection")
	}
	if _, ok := sel.SelectExprs[0].(*sqlparser.StarExpr); !ok {
		return nil, errors.FeatureNotSupportedError("column projection")
	}
	switch {
	case sel.Where != nil:
		return nil, errors.FeatureNotSupportedError("WHERE")
	case len(sel.GroupBy) > 0 || sel.Having != nil:
		return nil, errors.FeatureNotSupportedError("GROUP BY")
	case len(sel.OrderBy) > 0:
		return nil, errors.FeatureNotSupportedError("ORDER BY")
	case sel.Limit != nil:
		return nil, errors.FeatureNotSupportedError("LIMIT")
	case sel.Distinct != "":
		return nil, errors.FeatureNotSupportedError("DISTINCT")
	}

	out := &ir.SelectStmt{}
	for _, expr := range sel.From {
		item, err := buildFromItem(expr)
		if err != nil {
			return nil, err
		}
		out.From = append(out.From, item)
	}
	return out, nil
}

// buildFromItem maps joins and subqueries to their IR forms so the planner
// can report them.
func buildFromItem(expr sqlparser.TableExpr) (ir.FromItem, error) {
	switch te := expr.(type) {
	case *sqlparser.AliasedTableExpr:
		switch inner := te.Expr.(type) {
		case sqlparser.TableName:
			return &ir.NamedTable{Name: inner.Name.String()}, nil
		case *sqlparser.Subquery:
			sub, ok := inner.Select.(*sqlparser.Select)
			if !ok {
				return nil, errors.FeatureNotSupportedError("UNION")
			}
			sel, err := buildSelect(sub)
			if err != nil {
				return nil, err
			}
			return &ir.Subquery{Select: sel}, nil
		}
	case *sqlparser.JoinTableExpr:
		left, err := buildFromItem(te.LeftExpr)
		if err != nil {
			return nil, err
		}
		right, err := buildFromItem(te.RightExpr)
		if err != nil {
			return nil, err
		}
		return &ir.JoinedTables{Left: left, Right: right}, nil
	case *sqlparser.ParenTableExpr:
		if len(te.Exprs) == 1 {
			return buildFromItem(te.Exprs[0])
		}
		return nil, errors.FeatureNotSupportedError("parenthesized FROM list")
	}
	return nil, errors.FeatureNotSupportedError(sqlparser.String(expr))
}

func buildInsert(ins *sqlparser.Insert) (*InsertStmt, error) {
	if ins.Action != sqlparser.InsertStr {
		return nil, errors.FeatureNotSupportedError("REPLACE")
	}
	if len(ins.OnDup) > 0 {
		return nil, errors.FeatureNotSupportedError("ON DUPLICATE KEY UPDATE")
	}

	values, ok := ins.Rows.(sqlparser.Values)
	if !ok {
		return nil, errors.FeatureNotSupportedError("INSERT ... SELECT")
	}

	out := &InsertStmt{Table: ins.Table.Name.String()}
	for _, col := range ins.Columns {
		out.Columns = append(out.Columns, col.String())
	}
	for _, tuple := range values {
		row := make([]types.Value, len(tuple))
		for i, expr := range tuple {
			v, err := literal(expr)
			if err != nil {
				return nil, err
			}
			row[i] = v
		}
		out.Rows = append(out.Rows, row)
	}
	return out, nil
}

// literal converts a constant expression to a value.
func literal(expr sqlparser.Expr) (types.Value, error) {
	switch e := expr.(type) {
	case *sqlparser.NullVal:
		return types.NewNullValue(), nil
	case sqlparser.BoolVal:
		return types.NewBooleanValue(bool(e)), nil
	case *sqlparser.SQLVal:
		return sqlVal(e, false)
	case *sqlparser.UnaryExpr:
		if v, ok := e.Expr.(*sqlparser.SQLVal); ok {
			switch e.Operator {
			case sqlparser.UMinusStr:
				return sqlVal(v, true)
			case sqlparser.UPlusStr:
				return sqlVal(v, false)
			}
		}
	case *sqlparser.ParenExpr:
		return literal(e.Expr)
	}
	return types.Value{}, errors.FeatureNotSupportedError("expression " + sqlparser.String(expr))
}

func sqlVal(v *sqlparser.SQLVal, negate bool) (types.Value, error) {
	text := string(v.Val)
	if negate {
		text = "-" + text
	}

	switch v.Type {
	case sqlparser.StrVal:
		if negate {
			return types.Value{}, errors.DataTypeMismatchError("numeric", "text")
		}
		return types.NewTextValue(text), nil
	case sqlparser.IntVal:
		n, err := strconv.ParseInt(text, 10, 64)
		if err != nil {
			return types.Value{}, errors.Newf(errors.InvalidParameterValue, "integer out of range: %s", text)
		}
		return types.NewIntegerValue(n), nil
	case sqlparser.FloatVal:
		f, err := strconv.ParseFloat(text, 64)
		if err != nil {
			return types.Value{}, errors.Newf(errors.InvalidParameterValue, "invalid number: %s", text)
		}
		return types.NewDoubleValue(f), nil
	}
	return types.Value{}, errors.FeatureNotSupportedError("literal " + sqlparser.String(v))
}

func buildDDL(ddl *sqlparser.DDL) (Statement, error) {
	switch ddl.Action {
	case sqlparser.CreateStr:
		return buildCreateTable(ddl)
	case sqlparser.DropStr:
		return &DropTableStmt{Table: ddl.Table.Name.String(), IfExists: ddl.IfExists}, nil
	default:
		return nil, errors.FeatureNotSupportedError(ddl.Action + " TABLE")
	}
}

func buildCreateTable(ddl *sqlparser.DDL) (*CreateTableStmt, error) {
	name := ddl.NewName.Name.String()
	if name == "" {
		return nil, errors.SyntaxErrorf("CREATE TABLE without a table name")
	}
	if ddl.TableSpec == nil || len(ddl.TableSpec.Columns) == 0 {
		return nil, errors.InvalidTableDefinitionError(name, "a table must have at least one column")
	}
	switch {
	case len(ddl.TableSpec.Indexes) > 0:
		return nil, errors.FeatureNotSupportedError("table keys and indexes").WithTable(name)
	case strings.TrimSpace(ddl.TableSpec.Options) != "":
		return nil, errors.FeatureNotSupportedError("table options").WithTable(name)
	}

	out := &CreateTableStmt{Table: name}
	for _, def := range ddl.TableSpec.Columns {
		col := def.Name.String()
		if feature := columnFeature(def.Type); feature != "" {
			return nil, errors.FeatureNotSupportedError(feature).
				WithTable(name).
				WithColumn(col)
		}
		typ, err := columnType(def.Type)
		if err != nil {
			return nil, errors.FeatureNotSupportedError("column type " + def.Type.Type).
				WithTable(name).
				WithColumn(col)
		}
		out.Columns = append(out.Columns, storage.Column{
			Name:     col,
			Type:     typ,
			Nullable: !bool(def.Type.NotNull),
		})
	}
	return out, nil
}

// columnType maps a declared column type to a data type. The parser has no
// BOOLEAN keyword, so BIT and TINYINT(1) stand in for it.
func columnType(ct sqlparser.ColumnType) (types.DataType, error) {
	switch strings.ToUpper(ct.Type) {
	case "BIT":
		return types.Boolean, nil
	case "TINYINT":
		if ct.Length != nil && string(ct.Length.Val) == "1" {
			return types.Boolean, nil
		}
		return types.Integer, nil
	}
	return types.ParseTypeName(ct.Type)
}

// columnFeature names the first column option a table cannot store.
func columnFeature(ct sqlparser.ColumnType) string {
	switch {
	case ct.Default != nil && !defaultsToNull(ct.Default):
		return "column DEFAULT"
	case bool(ct.Autoincrement):
		return "AUTO_INCREMENT"
	case ct.OnUpdate != nil:
		return "ON UPDATE"
	case ct.KeyOpt != 0:
		return "column keys"
	}
	return ""
}

func defaultsToNull(v *sqlparser.SQLVal) bool {
	return v.Type == sqlparser.ValArg && strings.EqualFold(string(v.Val), "null")
}
