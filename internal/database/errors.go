package database

import (
	"errors"
	"fmt"
	"strings"

	"student-api/internal/apperror"

	"github.com/go-sql-driver/mysql"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// MySQL server error numbers that signal an integrity constraint violation.
var mysqlConstraintErrors = map[uint16]bool{
	1048: true, // column cannot be null
	1062: true, // duplicate entry
	1216: true, // child row: foreign key fails
	1217: true, // parent row: foreign key fails
	1364: true, // field has no default value
	1451: true, // cannot delete or update a parent row
	1452: true, // cannot add or update a child row
}

// Classify turns a raw persistence error into an *apperror.Error when the store reported
// a constraint violation. Other errors are returned unchanged.
func Classify(err error) error {
	if err == nil {
		return nil
	}
	if _, ok := apperror.As(err); ok {
		return err
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		// SQLSTATE class 23: integrity constraint violation
		if strings.HasPrefix(pgErr.Code, "23") {
			msg := pgErr.Message
			if pgErr.Detail != "" {
				msg += " (" + pgErr.Detail + ")"
			}
			return apperror.Constraint(err, violation(pgErr.Code, msg))
		}
		return err
	}

	var myErr *mysql.MySQLError
	if errors.As(err, &myErr) {
		if mysqlConstraintErrors[myErr.Number] {
			return apperror.Constraint(err, violation(fmt.Sprint(myErr.Number), myErr.Message))
		}
		return err
	}

	switch {
	case errors.Is(err, gorm.ErrDuplicatedKey),
		errors.Is(err, gorm.ErrForeignKeyViolated),
		errors.Is(err, gorm.ErrCheckConstraintViolated):
		return apperror.Constraint(err, "Message: "+err.Error())
	}

	return err
}

func violation(code, message string) string {
	return fmt.Sprintf("Error Number: %s, Message: %s", code, message)
}
