package postgres

import (
	"errors"
	"strings"

	"github.com/jackc/pgerrcode"
	"github.com/lib/pq"
)

func pqCode(err error) string {
	var perr *pq.Error
	if errors.As(err, &perr) {
		return string(perr.Code)
	}
	return ""
}

func isUniqueViolation(err error) bool {
	return pqCode(err) == pgerrcode.UniqueViolation
}

func isForeignKeyViolation(err error) bool {
	return pqCode(err) == pgerrcode.ForeignKeyViolation
}

// isUserForeignKeyViolation reports a foreign key violation on a user_id column.
// It relies on the default "<table>_user_id_fkey" constraint names.
func isUserForeignKeyViolation(err error) bool {
	var perr *pq.Error
	if !errors.As(err, &perr) || string(perr.Code) != pgerrcode.ForeignKeyViolation {
		return false
	}
	return strings.HasSuffix(perr.Constraint, "_user_id_fkey")
}
