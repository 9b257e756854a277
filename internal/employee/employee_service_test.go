package employee_test

import (
	"context"
	"errors"
	"testing"

	"employee-management/internal/employee"
	employeeerrors "employee-management/internal/employee/errors"
	employeeMock "employee-management/internal/employee/mock"
	"employee-management/internal/shared/apperror"
	"employee-management/internal/shared/contextutil"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

type serviceDeps struct {
	service employee.Service
	repo    *employeeMock.MockRepository
}

func setupServiceTest(t *testing.T) *serviceDeps {
	ctrl := gomock.NewController(t)
	repo := employeeMock.NewMockRepository(ctrl)

	return &serviceDeps{
		service: employee.NewService(repo),
		repo:    repo,
	}
}

func ptr[T any](v T) *T { return &v }

func TestEmployeeService_GetByID(t *testing.T) {
	ctx := context.Background()
	id := int64(7)

	t.Run("success", func(t *testing.T) {
		deps := setupServiceTest(t)
		deps.repo.EXPECT().
			FindByID(ctx, id).
			Return(&employee.Employee{ID: id, Name: "arun", Email: "arun@x.com", Age: 26, Salary: 1000}, nil).
			Times(1)

		resp, err := deps.service.GetByID(ctx, id)

		assert.NoError(t, err)
		assert.Equal(t, employee.EmployeeResponse{ID: id, Name: "arun", Email: "arun@x.com", Age: 26, Salary: 1000}, resp)
	})

	t.Run("not found", func(t *testing.T) {
		deps := setupServiceTest(t)
		deps.repo.EXPECT().FindByID(ctx, id).Return(nil, nil)

		resp, err := deps.service.GetByID(ctx, id)

		assert.Empty(t, resp.ID)
		assert.ErrorIs(t, err, apperror.ErrNotFound)
		assert.EqualError(t, err, "Employee not found with Id:7")
	})

	t.Run("store error stays unclassified", func(t *testing.T) {
		deps := setupServiceTest(t)
		deps.repo.EXPECT().FindByID(ctx, id).Return(nil, errors.New("connection reset"))

		_, err := deps.service.GetByID(ctx, id)

		assert.EqualError(t, err, "connection reset")
		assert.Equal(t, 500, apperror.ToHTTP(err).Status)
	})
}

func TestEmployeeService_GetAll(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		deps := setupServiceTest(t)
		deps.repo.EXPECT().
			FindAll(ctx).
			Return([]employee.Employee{
				{ID: 1, Name: "Andi", Email: "andi@comp.com"},
				{ID: 2, Name: "Budi", Email: "budi@comp.com"},
			}, nil)

		resp, err := deps.service.GetAll(ctx)

		assert.NoError(t, err)
		assert.Len(t, resp, 2)
		assert.Equal(t, "Andi", resp[0].Name)
		assert.Equal(t, int64(2), resp[1].ID)
	})

	t.Run("empty store is not found", func(t *testing.T) {
		deps := setupServiceTest(t)
		deps.repo.EXPECT().FindAll(ctx).Return([]employee.Employee{}, nil)

		resp, err := deps.service.GetAll(ctx)

		assert.Nil(t, resp)
		assert.ErrorIs(t, err, employeeerrors.ErrEmployeeNotFound)
		assert.EqualError(t, err, "Employees Does not Exists")
	})

	t.Run("error repository", func(t *testing.T) {
		deps := setupServiceTest(t)
		deps.repo.EXPECT().FindAll(ctx).Return(nil, errors.New("db error"))

		resp, err := deps.service.GetAll(ctx)

		assert.Error(t, err)
		assert.Nil(t, resp)
	})
}

func TestEmployeeService_Create(t *testing.T) {
	ctx := contextutil.WithRequestID(context.Background(), "REQ-123")
	req := employee.EmployeeRequest{Name: "arun", Email: "arun@x.com", Age: 26, Salary: 1000.0}

	t.Run("success", func(t *testing.T) {
		deps := setupServiceTest(t)
		gomock.InOrder(
			deps.repo.EXPECT().FindByEmail(ctx, req.Email).Return(nil, nil),
			deps.repo.EXPECT().
				Save(ctx, gomock.Any()).
				DoAndReturn(func(ctx context.Context, e *employee.Employee) error {
					assert.Zero(t, e.ID)
					assert.Equal(t, req.Name, e.Name)
					assert.Equal(t, req.Email, e.Email)
					assert.Equal(t, req.Age, e.Age)
					assert.Equal(t, req.Salary, e.Salary)
					e.ID = 42
					return nil
				}).
				Times(1),
		)

		resp, err := deps.service.Create(ctx, req)

		assert.NoError(t, err)
		assert.Equal(t, employee.EmployeeResponse{ID: 42, Name: "arun", Email: "arun@x.com", Age: 26, Salary: 1000.0}, resp)
	})

	t.Run("email exists -> conflict without insert", func(t *testing.T) {
		deps := setupServiceTest(t)
		deps.repo.EXPECT().
			FindByEmail(ctx, req.Email).
			Return(&employee.Employee{ID: 1, Email: req.Email}, nil)
		deps.repo.EXPECT().Save(gomock.Any(), gomock.Any()).Times(0)

		_, err := deps.service.Create(ctx, req)

		assert.ErrorIs(t, err, apperror.ErrConflict)
		assert.EqualError(t, err, "Employee already exists with Email:arun@x.com")
	})

	t.Run("unique violation from store -> conflict", func(t *testing.T) {
		deps := setupServiceTest(t)
		deps.repo.EXPECT().FindByEmail(ctx, req.Email).Return(nil, nil)
		deps.repo.EXPECT().
			Save(ctx, gomock.Any()).
			Return(&pgconn.PgError{Code: "23505", ConstraintName: "uq_employee_email"})

		_, err := deps.service.Create(ctx, req)

		assert.ErrorIs(t, err, apperror.ErrConflict)
		assert.Equal(t, 409, apperror.ToHTTP(err).Status)
	})

	t.Run("lookup error", func(t *testing.T) {
		deps := setupServiceTest(t)
		deps.repo.EXPECT().FindByEmail(ctx, req.Email).Return(nil, errors.New("db error"))

		_, err := deps.service.Create(ctx, req)

		assert.EqualError(t, err, "db error")
	})
}

func TestEmployeeService_Update(t *testing.T) {
	ctx := context.Background()
	id := int64(3)
	req := employee.EmployeeRequest{Name: "new", Email: "new@x.com", Age: 30, Salary: 2000.0}

	t.Run("success overwrites every field", func(t *testing.T) {
		deps := setupServiceTest(t)
		existing := &employee.Employee{ID: id, Name: "old", Email: "old@x.com", Age: 20, Salary: 500}
		deps.repo.EXPECT().FindByID(ctx, id).Return(existing, nil)
		deps.repo.EXPECT().
			Save(ctx, gomock.Any()).
			DoAndReturn(func(ctx context.Context, e *employee.Employee) error {
				assert.Equal(t, employee.Employee{ID: id, Name: "new", Email: "new@x.com", Age: 30, Salary: 2000.0}, *e)
				return nil
			})

		resp, err := deps.service.Update(ctx, id, req)

		assert.NoError(t, err)
		assert.Equal(t, employee.EmployeeResponse{ID: id, Name: "new", Email: "new@x.com", Age: 30, Salary: 2000.0}, resp)
	})

	t.Run("same request twice yields same result", func(t *testing.T) {
		deps := setupServiceTest(t)
		stored := &employee.Employee{ID: id, Name: "old", Email: "old@x.com"}
		deps.repo.EXPECT().FindByID(ctx, id).Return(stored, nil).Times(2)
		deps.repo.EXPECT().Save(ctx, stored).Return(nil).Times(2)

		first, err := deps.service.Update(ctx, id, req)
		assert.NoError(t, err)
		second, err := deps.service.Update(ctx, id, req)
		assert.NoError(t, err)

		assert.Equal(t, first, second)
	})

	t.Run("does not re-check email uniqueness", func(t *testing.T) {
		deps := setupServiceTest(t)
		deps.repo.EXPECT().FindByID(ctx, id).Return(&employee.Employee{ID: id}, nil)
		deps.repo.EXPECT().FindByEmail(gomock.Any(), gomock.Any()).Times(0)
		deps.repo.EXPECT().Save(ctx, gomock.Any()).Return(nil)

		_, err := deps.service.Update(ctx, id, req)

		assert.NoError(t, err)
	})

	t.Run("not found", func(t *testing.T) {
		deps := setupServiceTest(t)
		deps.repo.EXPECT().FindByID(ctx, id).Return(nil, nil)
		deps.repo.EXPECT().Save(gomock.Any(), gomock.Any()).Times(0)

		resp, err := deps.service.Update(ctx, id, req)

		assert.Empty(t, resp.ID)
		assert.ErrorIs(t, err, apperror.ErrNotFound)
	})

	t.Run("update failed", func(t *testing.T) {
		deps := setupServiceTest(t)
		deps.repo.EXPECT().FindByID(ctx, id).Return(&employee.Employee{ID: id}, nil)
		deps.repo.EXPECT().Save(ctx, gomock.Any()).Return(errors.New("db connection error"))

		_, err := deps.service.Update(ctx, id, req)

		assert.EqualError(t, err, "db connection error")
	})
}

func TestEmployeeService_Delete(t *testing.T) {
	ctx := context.Background()
	id := int64(9)

	t.Run("success", func(t *testing.T) {
		deps := setupServiceTest(t)
		gomock.InOrder(
			deps.repo.EXPECT().ExistsByID(ctx, id).Return(true, nil),
			deps.repo.EXPECT().DeleteByID(ctx, id).Return(nil),
		)

		deleted, err := deps.service.Delete(ctx, id)

		assert.NoError(t, err)
		assert.True(t, deleted)
	})

	t.Run("not found", func(t *testing.T) {
		deps := setupServiceTest(t)
		deps.repo.EXPECT().ExistsByID(ctx, id).Return(false, nil)
		deps.repo.EXPECT().DeleteByID(gomock.Any(), gomock.Any()).Times(0)

		deleted, err := deps.service.Delete(ctx, id)

		assert.False(t, deleted)
		assert.ErrorIs(t, err, apperror.ErrNotFound)
		assert.EqualError(t, err, "Employee not found with Id:9")
	})

	t.Run("failure - db error", func(t *testing.T) {
		deps := setupServiceTest(t)
		deps.repo.EXPECT().ExistsByID(ctx, id).Return(true, nil)
		deps.repo.EXPECT().DeleteByID(ctx, id).Return(errors.New("db error"))

		deleted, err := deps.service.Delete(ctx, id)

		assert.False(t, deleted)
		assert.Error(t, err)
	})
}

func TestEmployeeService_Patch(t *testing.T) {
	ctx := context.Background()
	id := int64(5)

	t.Run("applies only supplied fields", func(t *testing.T) {
		deps := setupServiceTest(t)
		deps.repo.EXPECT().
			FindByID(ctx, id).
			Return(&employee.Employee{ID: id, Name: "arun", Email: "arun@x.com", Age: 26, Salary: 1000}, nil)
		deps.repo.EXPECT().
			Save(ctx, gomock.Any()).
			DoAndReturn(func(ctx context.Context, e *employee.Employee) error {
				assert.Equal(t, "patched@x.com", e.Email)
				return nil
			})

		resp, err := deps.service.Patch(ctx, id, employee.EmployeePatch{Email: ptr("patched@x.com")})

		assert.NoError(t, err)
		assert.Equal(t, employee.EmployeeResponse{ID: id, Name: "arun", Email: "patched@x.com", Age: 26, Salary: 1000}, resp)
	})

	t.Run("empty patch returns record without writing", func(t *testing.T) {
		deps := setupServiceTest(t)
		deps.repo.EXPECT().
			FindByID(ctx, id).
			Return(&employee.Employee{ID: id, Name: "arun", Email: "arun@x.com", Age: 26, Salary: 1000}, nil)
		deps.repo.EXPECT().Save(gomock.Any(), gomock.Any()).Times(0)

		resp, err := deps.service.Patch(ctx, id, employee.EmployeePatch{})

		assert.NoError(t, err)
		assert.Equal(t, employee.EmployeeResponse{ID: id, Name: "arun", Email: "arun@x.com", Age: 26, Salary: 1000}, resp)
	})

	t.Run("not found", func(t *testing.T) {
		deps := setupServiceTest(t)
		deps.repo.EXPECT().FindByID(ctx, id).Return(nil, nil)

		_, err := deps.service.Patch(ctx, id, employee.EmployeePatch{Age: ptr(40)})

		assert.ErrorIs(t, err, apperror.ErrNotFound)
	})

	t.Run("patched email colliding with another record -> conflict", func(t *testing.T) {
		deps := setupServiceTest(t)
		deps.repo.EXPECT().FindByID(ctx, id).Return(&employee.Employee{ID: id}, nil)
		deps.repo.EXPECT().
			Save(ctx, gomock.Any()).
			Return(errors.New(`ERROR: duplicate key value violates unique constraint "uq_employee_email" (SQLSTATE 23505)`))

		_, err := deps.service.Patch(ctx, id, employee.EmployeePatch{Email: ptr("taken@x.com")})

		assert.ErrorIs(t, err, apperror.ErrConflict)
		assert.EqualError(t, err, "Employee already exists with Email:taken@x.com")
	})
}
