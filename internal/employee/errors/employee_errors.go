package employeeerrors

import (
	"employee-management/internal/shared/apperror"
)

// ErrEmployeeNotFound matches every employee not-found failure via errors.Is.
var ErrEmployeeNotFound = apperror.ErrNotFound

func EmployeeNotFound(id int64) *apperror.AppError {
	return apperror.NotFound("Employee not found with Id:%d", id)
}

func EmployeesNotFound() *apperror.AppError {
	return apperror.NotFound("Employees Does not Exists")
}

func EmployeeAlreadyExists(email string) *apperror.AppError {
	return apperror.Conflict("Employee already exists with Email:%s", email)
}

func InvalidEmployeeID(raw string) *apperror.AppError {
	return apperror.Validation("Id must be a positive integer, got \"" + raw + "\"")
}
