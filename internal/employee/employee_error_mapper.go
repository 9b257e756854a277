package employee

import (
	"errors"
	"strings"

	employeeerrors "employee-management/internal/employee/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

const (
	uniqueViolation       = "23505"
	employeeEmailUniqueIx = "uq_employee_email"
)

// mapRepositoryError turns a unique email violation raised by the store into
// a conflict. Any other error is returned unchanged.
func mapRepositoryError(err error, email string) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return employeeerrors.EmployeeAlreadyExists(email)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if pgErr.Code == uniqueViolation && pgErr.ConstraintName == employeeEmailUniqueIx {
			return employeeerrors.EmployeeAlreadyExists(email)
		}
	}

	errMsg := strings.ToLower(err.Error())
	if strings.Contains(errMsg, "duplicate key value") && strings.Contains(errMsg, employeeEmailUniqueIx) {
		return employeeerrors.EmployeeAlreadyExists(email)
	}

	return err
}
