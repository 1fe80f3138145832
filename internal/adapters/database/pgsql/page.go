package pgsql

import (
	"strconv"

	"github.com/SscSPs/receipts_ledger/internal/apperrors"
	"github.com/SscSPs/receipts_ledger/internal/utils/pagination"
)

// keysetPage appends the cursor condition and LIMIT for a (created_at, seq) DESC listing.
// alias qualifies the columns. It fetches one extra row to detect a next page.
func keysetPage(alias string, args []any, limit int, nextToken *string) (string, []any, error) {
	clause := ""
	if nextToken != nil && *nextToken != "" {
		cursor, err := pagination.DecodeToken(*nextToken)
		if err != nil {
			return "", nil, apperrors.NewAppError(400, "invalid nextToken", err)
		}
		args = append(args, cursor.CreatedAt, cursor.Seq)
		clause = ` AND (` + alias + `.created_at, ` + alias + `.seq) < ($` + strconv.Itoa(len(args)-1) + `, $` + strconv.Itoa(len(args)) + `)`
	}
	args = append(args, limit+1)
	clause += ` ORDER BY ` + alias + `.created_at DESC, ` + alias + `.seq DESC LIMIT $` + strconv.Itoa(len(args))
	return clause, args, nil
}

// trimPage drops the extra row fetched by keysetPage and returns the token for the next page.
func trimPage[T any](items []T, limit int, cursor func(T) pagination.Cursor) ([]T, *string) {
	if len(items) <= limit {
		return items, nil
	}
	token := pagination.EncodeToken(cursor(items[limit-1]))
	return items[:limit], &token
}
