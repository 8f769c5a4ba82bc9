package mysqlerr

import (
	"errors"

	"github.com/go-sql-driver/mysql"
)

const (
	codeDuplicateEntry  = 1062
	codeLockWaitTimeout = 1205
	codeDeadlock        = 1213
	codeRowIsReferenced = 1451
	codeNoReferencedRow = 1452
)

// IsDuplicate reports whether err is a MySQL duplicate-key violation.
func IsDuplicate(err error) bool {
	return hasNumber(err, codeDuplicateEntry)
}

// IsLockConflict reports whether err is a deadlock or lock-wait timeout,
// both of which are safe to retry.
func IsLockConflict(err error) bool {
	return hasNumber(err, codeDeadlock) || hasNumber(err, codeLockWaitTimeout)
}

// IsForeignKeyViolation reports whether err is a restricting foreign-key
// failure, either on delete (row still referenced) or on insert/update
// (referenced row missing).
func IsForeignKeyViolation(err error) bool {
	return hasNumber(err, codeRowIsReferenced) || hasNumber(err, codeNoReferencedRow)
}

func hasNumber(err error, number uint16) bool {
	var me *mysql.MySQLError
	if errors.As(err, &me) {
		return me.Number == number
	}
	return false
}
