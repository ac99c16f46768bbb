package repository

import (
	"smart-parking/internal/infra"
	"smart-parking/internal/pkg/pgconv"
)

// wrapPgErr maps postgres constraint violations onto repository error kinds.
// The violated constraint, when postgres names one, is appended to msg.
func wrapPgErr(msg string, err error) error {
	if name := pgconv.ConstraintName(err); name != "" {
		msg += " (" + name + ")"
	}

	switch pgconv.PgErrorCode(err) {
	case pgconv.CodeUniqueViolation:
		return infra.WrapRepoErr(msg, err, infra.KindDuplicateKey)
	case pgconv.CodeForeignKeyViolation:
		return infra.WrapRepoErr(msg, err, infra.KindForeignKeyViolated)
	case pgconv.CodeCheckViolation:
		return infra.WrapRepoErr(msg, err, infra.KindCheckViolated)
	}
	if pgconv.IsNoRows(err) {
		return infra.WrapRepoErr(msg, err, infra.KindNotFound)
	}
	return infra.WrapRepoErr(msg, err)
}
