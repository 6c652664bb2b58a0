package employee

import (
	"context"
	"database/sql"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	employeeerrors "insuregate/internal/employee/errors"
	"insuregate/internal/events"
	"insuregate/internal/messaging/kafka"
	"insuregate/internal/shared/contextutil"
	"insuregate/internal/shared/counter"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

const (
	employeeCodeCounter = "employee_code"
	optionsCacheTTL     = 5 * time.Minute
	dateLayout          = "2006-01-02"
)

type Service interface {
	Create(ctx context.Context, organizationID string, req CreateEmployeeRequest) (*EmployeeResponse, error)
	List(ctx context.Context, organizationID string, status string) ([]EmployeeResponse, error)
	Get(ctx context.Context, organizationID, id string) (*EmployeeResponse, error)
	Update(ctx context.Context, organizationID, id string, req UpdateEmployeeRequest) (*EmployeeResponse, error)
	Deactivate(ctx context.Context, organizationID, id string) error
	ListOptions(ctx context.Context, organizationID string) ([]EmployeeOption, error)
	ImportRoster(ctx context.Context, organizationID string, r io.Reader) (*ImportRosterResult, error)
}

type service struct {
	repo        Repository
	counterRepo counter.Repository
	outboxRepo  kafka.OutboxRepository
	sqlDB       *sql.DB
	redisClient *redis.Client
	sf          singleflight.Group
	logger      *zap.Logger
}

func NewService(
	repo Repository,
	counterRepo counter.Repository,
	outboxRepo kafka.OutboxRepository,
	sqlDB *sql.DB,
	redisClient *redis.Client,
) Service {
	return &service{
		repo:        repo,
		counterRepo: counterRepo,
		outboxRepo:  outboxRepo,
		sqlDB:       sqlDB,
		redisClient: redisClient,
		logger:      zap.L().Named("employee_service"),
	}
}

func (s *service) Create(ctx context.Context, organizationID string, req CreateEmployeeRequest) (*EmployeeResponse, error) {
	orgID, err := uuid.Parse(organizationID)
	if err != nil {
		return nil, employeeerrors.ErrEmployeeNotFound
	}

	code, err := s.nextEmployeeCode(ctx, organizationID)
	if err != nil {
		return nil, mapRepoError(err)
	}

	emp := &Employee{
		ID:             uuid.New(),
		OrganizationID: orgID,
		EmployeeCode:   code,
		Name:           req.Name,
		Email:          strings.ToLower(strings.TrimSpace(req.Email)),
		Phone:          req.Phone,
		Salary:         req.Salary,
		Department:     req.Department,
		Designation:    req.Designation,
		DateOfJoining:  parseDate(req.DateOfJoining),
		DateOfBirth:    parseDate(req.DateOfBirth),
		Status:         StatusActive,
	}

	if err := s.repo.Create(ctx, emp); err != nil {
		return nil, mapRepoError(err)
	}

	s.invalidateOptionsCache(ctx, organizationID)

	s.logger.Info("employee created",
		zap.String("organization_id", organizationID),
		zap.String("employee_code", emp.EmployeeCode),
	)

	return toResponse(emp), nil
}

func (s *service) List(ctx context.Context, organizationID string, status string) ([]EmployeeResponse, error) {
	emps, err := s.repo.FindAll(ctx, organizationID, status)
	if err != nil {
		return nil, mapRepoError(err)
	}

	resp := make([]EmployeeResponse, 0, len(emps))
	for i := range emps {
		resp = append(resp, *toResponse(&emps[i]))
	}
	return resp, nil
}

func (s *service) Get(ctx context.Context, organizationID, id string) (*EmployeeResponse, error) {
	emp, err := s.repo.FindByID(ctx, organizationID, id)
	if err != nil {
		return nil, mapRepoError(err)
	}
	return toResponse(emp), nil
}

func (s *service) Update(ctx context.Context, organizationID, id string, req UpdateEmployeeRequest) (*EmployeeResponse, error) {
	emp, err := s.repo.FindByID(ctx, organizationID, id)
	if err != nil {
		return nil, mapRepoError(err)
	}

	emp.Name = req.Name
	emp.Phone = req.Phone
	emp.Salary = req.Salary
	emp.Department = req.Department
	emp.Designation = req.Designation

	if err := s.repo.Update(ctx, emp); err != nil {
		return nil, mapRepoError(err)
	}

	s.invalidateOptionsCache(ctx, organizationID)

	return toResponse(emp), nil
}

// Deactivate flips the employee to inactive. Employees are never deleted so
// historical premium schedules keep a valid owner.
func (s *service) Deactivate(ctx context.Context, organizationID, id string) error {
	affected, err := s.repo.UpdateStatus(ctx, organizationID, id, StatusInactive)
	if err != nil {
		return mapRepoError(err)
	}
	if affected == 0 {
		return employeeerrors.ErrEmployeeNotFound
	}

	s.invalidateOptionsCache(ctx, organizationID)

	s.logger.Info("employee deactivated",
		zap.String("organization_id", organizationID),
		zap.String("employee_id", id),
	)
	return nil
}

func (s *service) ListOptions(ctx context.Context, organizationID string) ([]EmployeeOption, error) {
	cacheKey := optionsCacheKey(organizationID)

	if cached, err := s.redisClient.Get(ctx, cacheKey).Result(); err == nil {
		var options []EmployeeOption
		if err := json.Unmarshal([]byte(cached), &options); err == nil {
			return options, nil
		}
	}

	// singleflight collapses a cache-miss stampede into one DB query per org
	v, err, _ := s.sf.Do(cacheKey, func() (interface{}, error) {
		emps, err := s.repo.FindAll(ctx, organizationID, StatusActive)
		if err != nil {
			return nil, err
		}

		options := make([]EmployeeOption, 0, len(emps))
		for i := range emps {
			options = append(options, EmployeeOption{
				ID:           emps[i].ID.String(),
				EmployeeCode: emps[i].EmployeeCode,
				Name:         emps[i].Name,
			})
		}

		if payload, err := json.Marshal(options); err == nil {
			if err := s.redisClient.Set(ctx, cacheKey, payload, optionsCacheTTL).Err(); err != nil {
				s.logger.Warn("failed to cache employee options", zap.Error(err))
			}
		}

		return options, nil
	})
	if err != nil {
		return nil, mapRepoError(err)
	}

	return v.([]EmployeeOption), nil
}

// rosterColumns maps recognized CSV headers to row indices
type rosterColumns struct {
	employeeCode  int
	name          int
	email         int
	salary        int
	phone         int
	department    int
	designation   int
	dateOfJoining int
	dateOfBirth   int
}

func (s *service) ImportRoster(ctx context.Context, organizationID string, r io.Reader) (*ImportRosterResult, error) {
	orgID, err := uuid.Parse(organizationID)
	if err != nil {
		return nil, employeeerrors.ErrEmployeeNotFound
	}

	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return nil, employeeerrors.ErrEmptyRoster
	}

	cols, ok := resolveColumns(header)
	if !ok {
		return nil, employeeerrors.ErrInvalidRosterHeader
	}

	tx, err := s.sqlDB.BeginTx(ctx, nil)
	if err != nil {
		return nil, mapRepoError(err)
	}
	defer tx.Rollback()

	txRepo := s.repo.WithTx(tx)

	result := &ImportRosterResult{}
	row := 1
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		row++
		if err != nil {
			result.SkippedCount++
			result.Errors = append(result.Errors, fmt.Sprintf("row %d: malformed record", row))
			continue
		}

		emp, rowErr := s.buildRosterEmployee(ctx, orgID, cols, record)
		if rowErr != "" {
			result.SkippedCount++
			result.Errors = append(result.Errors, fmt.Sprintf("row %d: %s", row, rowErr))
			continue
		}

		inserted, err := txRepo.CreateIgnoreDuplicate(ctx, emp)
		if err != nil {
			return nil, mapRepoError(err)
		}
		if !inserted {
			result.SkippedCount++
			result.Errors = append(result.Errors, fmt.Sprintf("row %d: email %s already registered", row, emp.Email))
			continue
		}
		result.ImportedCount++
	}

	if result.ImportedCount == 0 && result.SkippedCount == 0 {
		return nil, employeeerrors.ErrEmptyRoster
	}

	if err := s.enqueueRosterImported(ctx, tx, organizationID, result); err != nil {
		return nil, mapRepoError(err)
	}

	if err := tx.Commit(); err != nil {
		return nil, mapRepoError(err)
	}

	s.invalidateOptionsCache(ctx, organizationID)

	s.logger.Info("roster imported",
		zap.String("organization_id", organizationID),
		zap.Int("imported", result.ImportedCount),
		zap.Int("skipped", result.SkippedCount),
	)

	return result, nil
}

func (s *service) buildRosterEmployee(ctx context.Context, orgID uuid.UUID, cols rosterColumns, record []string) (*Employee, string) {
	field := func(idx int) string {
		if idx < 0 || idx >= len(record) {
			return ""
		}
		return strings.TrimSpace(record[idx])
	}

	name := field(cols.name)
	email := strings.ToLower(field(cols.email))
	if name == "" || email == "" {
		return nil, "name and email are required"
	}

	// Row handling follows the roster boundary contract in DESIGN.md: an
	// unparseable salary is taken as 0, not a rejected row (a zero salary
	// still resolves against a band starting at 0), and a blank code is
	// allocated from the org counter instead of dropping the row.
	salary, err := strconv.ParseFloat(field(cols.salary), 64)
	if err != nil || salary < 0 {
		salary = 0
	}

	code := field(cols.employeeCode)
	if code == "" {
		code, err = s.nextEmployeeCode(ctx, orgID.String())
		if err != nil {
			return nil, "failed to allocate employee code"
		}
	}

	return &Employee{
		ID:             uuid.New(),
		OrganizationID: orgID,
		EmployeeCode:   code,
		Name:           name,
		Email:          email,
		Phone:          field(cols.phone),
		Salary:         salary,
		Department:     field(cols.department),
		Designation:    field(cols.designation),
		DateOfJoining:  parseDate(field(cols.dateOfJoining)),
		DateOfBirth:    parseDate(field(cols.dateOfBirth)),
		Status:         StatusActive,
	}, ""
}

func (s *service) enqueueRosterImported(ctx context.Context, tx *sql.Tx, organizationID string, result *ImportRosterResult) error {
	event := events.RosterImportedEvent{
		EventType:      "employee.roster.imported",
		RequestID:      contextutil.GetRequestID(ctx),
		OrganizationID: organizationID,
		ImportedCount:  result.ImportedCount,
		SkippedCount:   result.SkippedCount,
		OccurredAt:     time.Now().UTC(),
	}

	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}

	return s.outboxRepo.WithTx(tx).Create(ctx, kafka.OutboxEvent{
		ID:            uuid.NewString(),
		RequestID:     event.RequestID,
		AggregateType: "employee_roster",
		AggregateID:   organizationID,
		EventType:     event.EventType,
		Topic:         events.RosterImportedTopic,
		Payload:       payload,
		Status:        kafka.OutboxStatusPending,
	})
}

func (s *service) nextEmployeeCode(ctx context.Context, organizationID string) (string, error) {
	next, err := s.counterRepo.GetNextValue(ctx, organizationID, employeeCodeCounter)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("EMP-%06d", next), nil
}

func (s *service) invalidateOptionsCache(ctx context.Context, organizationID string) {
	if err := s.redisClient.Del(ctx, optionsCacheKey(organizationID)).Err(); err != nil {
		s.logger.Warn("failed to invalidate employee options cache", zap.Error(err))
	}
}

func optionsCacheKey(organizationID string) string {
	return "employees:options:" + organizationID
}

func resolveColumns(header []string) (rosterColumns, bool) {
	cols := rosterColumns{
		employeeCode: -1, name: -1, email: -1, salary: -1, phone: -1,
		department: -1, designation: -1, dateOfJoining: -1, dateOfBirth: -1,
	}

	for i, h := range header {
		switch strings.ToLower(strings.TrimSpace(h)) {
		case "employee_code":
			cols.employeeCode = i
		case "name":
			cols.name = i
		case "email":
			cols.email = i
		case "salary":
			cols.salary = i
		case "phone":
			cols.phone = i
		case "department":
			cols.department = i
		case "designation":
			cols.designation = i
		case "date_of_joining":
			cols.dateOfJoining = i
		case "date_of_birth":
			cols.dateOfBirth = i
		}
	}

	ok := cols.name >= 0 && cols.email >= 0 && cols.salary >= 0
	return cols, ok
}

func parseDate(s string) *time.Time {
	if s == "" {
		return nil
	}
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return nil
	}
	return &t
}

func toResponse(emp *Employee) *EmployeeResponse {
	resp := &EmployeeResponse{
		ID:           emp.ID.String(),
		EmployeeCode: emp.EmployeeCode,
		Name:         emp.Name,
		Email:        emp.Email,
		Phone:        emp.Phone,
		Salary:       emp.Salary,
		Department:   emp.Department,
		Designation:  emp.Designation,
		Status:       emp.Status,
	}
	if emp.DateOfJoining != nil {
		resp.DateOfJoining = emp.DateOfJoining.Format(dateLayout)
	}
	if emp.DateOfBirth != nil {
		resp.DateOfBirth = emp.DateOfBirth.Format(dateLayout)
	}
	return resp
}
