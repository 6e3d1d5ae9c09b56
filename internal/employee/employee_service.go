package employee

import (
	"context"
	"encoding/json"
	"time"

	employeeerrors "go-finboard/internal/employee/errors"
	"go-finboard/internal/shared/contextutil"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
	"gorm.io/gorm"
)

const EmployeeOptionsKeyPrefix = "employees:options:"

func GetEmployeeOptionsKey(brandID string) string {
	return EmployeeOptionsKeyPrefix + brandID
}

//go:generate mockgen -source=employee_service.go -destination=mock/employee_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, brandID string, req CreateEmployeeRequest) (EmployeeResponse, error)
	GetAll(ctx context.Context, brandID string) ([]EmployeeResponse, error)
	GetOptions(ctx context.Context, brandID string) ([]EmployeeResponse, error)
	GetByID(ctx context.Context, brandID, id string) (EmployeeResponse, error)
	Update(ctx context.Context, brandID, id string, req UpdateEmployeeRequest) (EmployeeResponse, error)
	Delete(ctx context.Context, brandID, id string) error
}

type service struct {
	db     *gorm.DB
	repo   Repository
	rdb    *redis.Client
	sf     *singleflight.Group
	logger *zap.Logger
}

func NewService(db *gorm.DB, repo Repository, rdb *redis.Client, logger ...*zap.Logger) Service {
	l := zap.L().Named("employee.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("employee.service")
	}
	return &service{
		db:     db,
		repo:   repo,
		rdb:    rdb,
		sf:     &singleflight.Group{},
		logger: l,
	}
}

func (s *service) Create(ctx context.Context, brandID string, req CreateEmployeeRequest) (EmployeeResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("create employee requested",
		zap.String("request_id", rid),
		zap.String("brand_id", brandID),
		zap.String("full_name", req.FullName),
	)

	brandUUID, err := uuid.Parse(brandID)
	if err != nil {
		return EmployeeResponse{}, employeeerrors.ErrInvalidBrandID
	}

	salary, err := decimal.NewFromString(req.MonthlySalary)
	if err != nil || !salary.IsPositive() {
		return EmployeeResponse{}, employeeerrors.ErrInvalidSalary
	}

	startDate, err := time.Parse("2006-01-02", req.StartDate)
	if err != nil {
		return EmployeeResponse{}, employeeerrors.ErrInvalidStartDate
	}

	endDate, err := parseEndDate(req.EndDate, startDate)
	if err != nil {
		return EmployeeResponse{}, err
	}

	e := &Employee{
		ID:            uuid.New(),
		BrandID:       brandUUID,
		FullName:      req.FullName,
		Position:      req.Position,
		MonthlySalary: salary,
		StartDate:     startDate,
		EndDate:       endDate,
		Active:        true,
		AutoPayment:   req.AutoPayment,
	}

	if err := s.repo.Create(ctx, e); err != nil {
		s.logger.Error("create employee persist failed", zap.String("request_id", rid), zap.Error(err))
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	s.invalidateOptionsCache(ctx, brandID)

	s.logger.Info("create employee success",
		zap.String("request_id", rid),
		zap.String("employee_id", e.ID.String()),
	)
	return mapToResponse(*e), nil
}

func (s *service) GetAll(ctx context.Context, brandID string) ([]EmployeeResponse, error) {
	employees, err := s.repo.FindAllByBrand(ctx, brandID)
	if err != nil {
		s.logger.Error("get all employees failed", zap.Error(err))
		return nil, mapRepositoryError(err)
	}
	return mapToListResponse(employees), nil
}

func (s *service) GetOptions(ctx context.Context, brandID string) ([]EmployeeResponse, error) {
	cacheKey := GetEmployeeOptionsKey(brandID)

	if s.rdb != nil {
		if cached, err := s.rdb.Get(ctx, cacheKey).Result(); err == nil {
			var resp []EmployeeResponse
			if json.Unmarshal([]byte(cached), &resp) == nil {
				return resp, nil
			}
		}
	}

	// singleflight collapses concurrent cache misses into one query
	v, err, _ := s.sf.Do(cacheKey, func() (interface{}, error) {
		employees, err := s.repo.FindOptionsByBrand(ctx, brandID)
		if err != nil {
			return nil, mapRepositoryError(err)
		}

		resp := mapToListResponse(employees)

		if s.rdb != nil {
			if jsonData, err := json.Marshal(resp); err == nil {
				s.rdb.Set(ctx, cacheKey, jsonData, 1*time.Hour)
			}
		}
		return resp, nil
	})
	if err != nil {
		return nil, err
	}

	return v.([]EmployeeResponse), nil
}

func (s *service) GetByID(ctx context.Context, brandID, id string) (EmployeeResponse, error) {
	e, err := s.repo.FindByIDAndBrand(ctx, brandID, id)
	if err != nil {
		return EmployeeResponse{}, mapRepositoryError(err)
	}
	return mapToResponse(*e), nil
}

func (s *service) Update(ctx context.Context, brandID, id string, req UpdateEmployeeRequest) (EmployeeResponse, error) {
	salary, err := decimal.NewFromString(req.MonthlySalary)
	if err != nil || !salary.IsPositive() {
		return EmployeeResponse{}, employeeerrors.ErrInvalidSalary
	}

	startDate, err := time.Parse("2006-01-02", req.StartDate)
	if err != nil {
		return EmployeeResponse{}, employeeerrors.ErrInvalidStartDate
	}

	endDate, err := parseEndDate(req.EndDate, startDate)
	if err != nil {
		return EmployeeResponse{}, err
	}

	e, err := s.repo.FindByIDAndBrand(ctx, brandID, id)
	if err != nil {
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	e.FullName = req.FullName
	e.Position = req.Position
	e.MonthlySalary = salary
	e.StartDate = startDate
	e.EndDate = endDate
	e.Active = req.Active
	e.AutoPayment = req.AutoPayment

	if err := s.repo.Update(ctx, e); err != nil {
		s.logger.Error("update employee persist failed", zap.String("employee_id", id), zap.Error(err))
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	s.invalidateOptionsCache(ctx, brandID)

	s.logger.Info("update employee success", zap.String("employee_id", id))
	return mapToResponse(*e), nil
}

func (s *service) Delete(ctx context.Context, brandID, id string) error {
	if err := s.repo.Delete(ctx, brandID, id); err != nil {
		s.logger.Error("delete employee failed", zap.String("employee_id", id), zap.Error(err))
		return mapRepositoryError(err)
	}

	s.invalidateOptionsCache(ctx, brandID)

	s.logger.Info("delete employee success", zap.String("employee_id", id))
	return nil
}

func (s *service) invalidateOptionsCache(ctx context.Context, brandID string) {
	if s.rdb == nil {
		return
	}
	cacheKey := GetEmployeeOptionsKey(brandID)
	if err := s.rdb.Del(ctx, cacheKey).Err(); err != nil {
		s.logger.Error("failed to invalidate employee options cache",
			zap.Error(err),
			zap.String("key", cacheKey),
		)
	}
}

func parseEndDate(raw *string, startDate time.Time) (*time.Time, error) {
	if raw == nil || *raw == "" {
		return nil, nil
	}
	endDate, err := time.Parse("2006-01-02", *raw)
	if err != nil || endDate.Before(startDate) {
		return nil, employeeerrors.ErrInvalidEndDate
	}
	return &endDate, nil
}

func mapToResponse(e Employee) EmployeeResponse {
	resp := EmployeeResponse{
		ID:            e.ID.String(),
		BrandID:       e.BrandID.String(),
		FullName:      e.FullName,
		Position:      e.Position,
		MonthlySalary: e.MonthlySalary.StringFixed(2),
		StartDate:     e.StartDate.Format("2006-01-02"),
		Active:        e.Active,
		AutoPayment:   e.AutoPayment,
	}
	if e.EndDate != nil {
		v := e.EndDate.Format("2006-01-02")
		resp.EndDate = &v
	}
	return resp
}

func mapToListResponse(employees []Employee) []EmployeeResponse {
	res := make([]EmployeeResponse, len(employees))
	for i, e := range employees {
		res[i] = mapToResponse(e)
	}
	return res
}
