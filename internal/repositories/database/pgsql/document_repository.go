package pgsql

import (
	"context"
	"fmt"

	"github.com/Yousifhashim249/ERP-project/internal/apperrors"
)

// documentTable describes where one document type is stored. Names are
// constants of this package and never come from input.
type documentTable struct {
	table      string
	dateColumn string
	childTable string // empty when the document has no child rows
	childFK    string
	resource   string

	// Filter columns; empty when the document does not carry them.
	vendorColumn     string
	departmentColumn string
}

func (t documentTable) name(id int64) string {
	return fmt.Sprintf("%s %d", t.resource, id)
}

// attachEntry sets the entry reference of a document that has none yet.
// Posted documents are immutable, so a second attach is a conflict.
func attachEntry(ctx context.Context, db querier, t documentTable, docID, entryID int64) error {
	query := fmt.Sprintf(`UPDATE %s SET journal_entry_id = $2 WHERE id = $1 AND journal_entry_id IS NULL`, t.table)
	tag, err := db.Exec(ctx, query, docID, entryID)
	if err != nil {
		return mapError(err, t.name(docID))
	}
	if tag.RowsAffected() == 1 {
		return nil
	}

	var exists bool
	existsQuery := fmt.Sprintf(`SELECT EXISTS (SELECT 1 FROM %s WHERE id = $1)`, t.table)
	if err := db.QueryRow(ctx, existsQuery, docID).Scan(&exists); err != nil {
		return mapError(err, t.name(docID))
	}
	if !exists {
		return apperrors.NewNotFoundError(t.name(docID))
	}
	return fmt.Errorf("%w: %s is already posted", apperrors.ErrConflict, t.name(docID))
}

// deleteDocument removes child rows and then the document row.
func deleteDocument(ctx context.Context, db querier, t documentTable, docID int64) error {
	if t.childTable != "" {
		query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`, t.childTable, t.childFK)
		if _, err := db.Exec(ctx, query, docID); err != nil {
			return mapDeleteError(err, t.name(docID))
		}
	}
	tag, err := db.Exec(ctx, fmt.Sprintf(`DELETE FROM %s WHERE id = $1`, t.table), docID)
	if err != nil {
		return mapDeleteError(err, t.name(docID))
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError(t.name(docID))
	}
	return nil
}

// pageQuery builds the keyset list query of a document table. The selected
// columns must start with the table's own columns; $1..$5 are the cursor date,
// cursor id, row count, vendor id and department id (see pageCursor.args).
func pageQuery(t documentTable, columns string) string {
	return fmt.Sprintf(`
		SELECT %[1]s
		FROM %[2]s
		WHERE ($1::date IS NULL OR (%[3]s, id) < ($1::date, $2::bigint))
		  AND %[4]s
		  AND %[5]s
		ORDER BY %[3]s DESC, id DESC
		LIMIT $3`, columns, t.table, t.dateColumn,
		filterClause(t.vendorColumn, "$4"), filterClause(t.departmentColumn, "$5"))
}

// filterClause matches column against an optional parameter. A table without
// the column matches only when the parameter is unset.
func filterClause(column, param string) string {
	if column == "" {
		return fmt.Sprintf("%s::bigint IS NULL", param)
	}
	return fmt.Sprintf("(%[2]s::bigint IS NULL OR %[1]s = %[2]s)", column, param)
}
