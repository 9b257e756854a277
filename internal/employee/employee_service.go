package employee

import (
	"context"

	employeeerrors "employee-management/internal/employee/errors"
	"employee-management/internal/shared/contextutil"

	"go.uber.org/zap"
)

type Service interface {
	GetByID(ctx context.Context, id int64) (EmployeeResponse, error)
	GetAll(ctx context.Context) ([]EmployeeResponse, error)
	Create(ctx context.Context, req EmployeeRequest) (EmployeeResponse, error)
	Update(ctx context.Context, id int64, req EmployeeRequest) (EmployeeResponse, error)
	Delete(ctx context.Context, id int64) (bool, error)
	Patch(ctx context.Context, id int64, patch EmployeePatch) (EmployeeResponse, error)
}

type service struct {
	repo   Repository
	logger *zap.Logger
}

func NewService(repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("employee.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("employee.service")
	}
	return &service{repo: repo, logger: l}
}

func (s *service) GetByID(ctx context.Context, id int64) (EmployeeResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("get employee by id requested",
		zap.String("request_id", rid),
		zap.Int64("employee_id", id),
	)

	empl, err := s.findExisting(ctx, id)
	if err != nil {
		return EmployeeResponse{}, err
	}

	return mapToResponse(*empl), nil
}

func (s *service) GetAll(ctx context.Context) ([]EmployeeResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("get all employees requested", zap.String("request_id", rid))

	empls, err := s.repo.FindAll(ctx)
	if err != nil {
		s.logger.Error("get all employees failed", zap.String("request_id", rid), zap.Error(err))
		return nil, err
	}
	// An empty table is reported as not found, not as an empty list.
	if len(empls) == 0 {
		s.logger.Warn("no employees stored", zap.String("request_id", rid))
		return nil, employeeerrors.EmployeesNotFound()
	}

	return mapToListResponse(empls), nil
}

func (s *service) Create(ctx context.Context, req EmployeeRequest) (EmployeeResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("create employee requested",
		zap.String("request_id", rid),
		zap.String("email", req.Email),
	)

	existing, err := s.repo.FindByEmail(ctx, req.Email)
	if err != nil {
		s.logger.Error("create employee email lookup failed", zap.String("request_id", rid), zap.Error(err))
		return EmployeeResponse{}, err
	}
	if existing != nil {
		s.logger.Warn("create employee email already exists",
			zap.String("request_id", rid),
			zap.String("email", req.Email),
		)
		return EmployeeResponse{}, employeeerrors.EmployeeAlreadyExists(req.Email)
	}

	empl := mapToEntity(req)
	// A concurrent insert with the same email can still pass the lookup
	// above; the unique constraint rejects it and the mapper turns that into
	// a conflict.
	if err := s.repo.Save(ctx, empl); err != nil {
		s.logger.Error("create employee persist failed", zap.String("request_id", rid), zap.Error(err))
		return EmployeeResponse{}, mapRepositoryError(err, req.Email)
	}

	s.logger.Info("create employee success",
		zap.String("request_id", rid),
		zap.Int64("employee_id", empl.ID),
	)
	return mapToResponse(*empl), nil
}

func (s *service) Update(ctx context.Context, id int64, req EmployeeRequest) (EmployeeResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("update employee requested",
		zap.String("request_id", rid),
		zap.Int64("employee_id", id),
	)

	empl, err := s.findExisting(ctx, id)
	if err != nil {
		return EmployeeResponse{}, err
	}

	applyRequest(empl, req)

	if err := s.repo.Save(ctx, empl); err != nil {
		s.logger.Error("update employee persist failed", zap.String("request_id", rid), zap.Error(err))
		return EmployeeResponse{}, mapRepositoryError(err, req.Email)
	}

	s.logger.Info("update employee success", zap.String("request_id", rid), zap.Int64("employee_id", id))
	return mapToResponse(*empl), nil
}

func (s *service) Delete(ctx context.Context, id int64) (bool, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("delete employee requested",
		zap.String("request_id", rid),
		zap.Int64("employee_id", id),
	)

	exists, err := s.repo.ExistsByID(ctx, id)
	if err != nil {
		s.logger.Error("delete employee existence check failed", zap.String("request_id", rid), zap.Error(err))
		return false, err
	}
	if !exists {
		s.logger.Warn("delete employee not found", zap.String("request_id", rid), zap.Int64("employee_id", id))
		return false, employeeerrors.EmployeeNotFound(id)
	}

	if err := s.repo.DeleteByID(ctx, id); err != nil {
		s.logger.Error("delete employee failed", zap.String("request_id", rid), zap.Error(err))
		return false, err
	}

	s.logger.Info("delete employee success", zap.String("request_id", rid), zap.Int64("employee_id", id))
	return true, nil
}

func (s *service) Patch(ctx context.Context, id int64, patch EmployeePatch) (EmployeeResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("patch employee requested",
		zap.String("request_id", rid),
		zap.Int64("employee_id", id),
	)

	empl, err := s.findExisting(ctx, id)
	if err != nil {
		return EmployeeResponse{}, err
	}

	if patch.IsEmpty() {
		return mapToResponse(*empl), nil
	}

	patch.Apply(empl)

	if err := s.repo.Save(ctx, empl); err != nil {
		s.logger.Error("patch employee persist failed", zap.String("request_id", rid), zap.Error(err))
		return EmployeeResponse{}, mapRepositoryError(err, empl.Email)
	}

	s.logger.Info("patch employee success", zap.String("request_id", rid), zap.Int64("employee_id", id))
	return mapToResponse(*empl), nil
}

func (s *service) findExisting(ctx context.Context, id int64) (*Employee, error) {
	rid := contextutil.GetRequestID(ctx)
	empl, err := s.repo.FindByID(ctx, id)
	if err != nil {
		s.logger.Error("find employee by id failed", zap.String("request_id", rid), zap.Error(err))
		return nil, err
	}
	if empl == nil {
		s.logger.Warn("employee not found", zap.String("request_id", rid), zap.Int64("employee_id", id))
		return nil, employeeerrors.EmployeeNotFound(id)
	}
	return empl, nil
}
