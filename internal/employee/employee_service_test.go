package employee_test

import (
	"context"
	"database/sql"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"insuregate/internal/employee"
	employeeerrors "insuregate/internal/employee/errors"
	"insuregate/internal/events"
	"insuregate/internal/messaging/kafka"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
)

type fakeEmployeeRepository struct {
	withTxFn                func(tx *sql.Tx) employee.Repository
	createFn                func(ctx context.Context, emp *employee.Employee) error
	createIgnoreDuplicateFn func(ctx context.Context, emp *employee.Employee) (bool, error)
	findAllFn               func(ctx context.Context, organizationID string, status string) ([]employee.Employee, error)
	findByIDFn              func(ctx context.Context, organizationID, id string) (*employee.Employee, error)
	findByEmailFn           func(ctx context.Context, email string) (*employee.Employee, error)
	updateFn                func(ctx context.Context, emp *employee.Employee) error
	updateStatusFn          func(ctx context.Context, organizationID, id, status string) (int64, error)
}

func (f *fakeEmployeeRepository) WithTx(tx *sql.Tx) employee.Repository {
	if f.withTxFn != nil {
		return f.withTxFn(tx)
	}
	return f
}

func (f *fakeEmployeeRepository) Create(ctx context.Context, emp *employee.Employee) error {
	if f.createFn != nil {
		return f.createFn(ctx, emp)
	}
	return nil
}

func (f *fakeEmployeeRepository) CreateIgnoreDuplicate(ctx context.Context, emp *employee.Employee) (bool, error) {
	if f.createIgnoreDuplicateFn != nil {
		return f.createIgnoreDuplicateFn(ctx, emp)
	}
	return true, nil
}

func (f *fakeEmployeeRepository) FindAll(ctx context.Context, organizationID string, status string) ([]employee.Employee, error) {
	if f.findAllFn != nil {
		return f.findAllFn(ctx, organizationID, status)
	}
	return nil, nil
}

func (f *fakeEmployeeRepository) FindByID(ctx context.Context, organizationID, id string) (*employee.Employee, error) {
	if f.findByIDFn != nil {
		return f.findByIDFn(ctx, organizationID, id)
	}
	return &employee.Employee{}, nil
}

func (f *fakeEmployeeRepository) FindByEmail(ctx context.Context, email string) (*employee.Employee, error) {
	if f.findByEmailFn != nil {
		return f.findByEmailFn(ctx, email)
	}
	return &employee.Employee{}, nil
}

func (f *fakeEmployeeRepository) Update(ctx context.Context, emp *employee.Employee) error {
	if f.updateFn != nil {
		return f.updateFn(ctx, emp)
	}
	return nil
}

func (f *fakeEmployeeRepository) UpdateStatus(ctx context.Context, organizationID, id, status string) (int64, error) {
	if f.updateStatusFn != nil {
		return f.updateStatusFn(ctx, organizationID, id, status)
	}
	return 1, nil
}

type fakeCounterRepository struct {
	next int64
}

func (f *fakeCounterRepository) GetNextValue(ctx context.Context, organizationID string, counterType string) (int64, error) {
	f.next++
	return f.next, nil
}

type fakeOutboxRepository struct {
	created []kafka.OutboxEvent
}

func (f *fakeOutboxRepository) WithTx(tx *sql.Tx) kafka.OutboxRepository { return f }

func (f *fakeOutboxRepository) Create(ctx context.Context, event kafka.OutboxEvent) error {
	f.created = append(f.created, event)
	return nil
}

func (f *fakeOutboxRepository) ListPending(ctx context.Context, limit int) ([]kafka.OutboxEvent, error) {
	return nil, nil
}

func (f *fakeOutboxRepository) MarkSent(ctx context.Context, id string) error { return nil }

func (f *fakeOutboxRepository) MarkFailed(ctx context.Context, id string, reason string) error {
	return nil
}

const testOrgID = "7b9f2a6e-1df2-4b3a-8f25-52a4d6c2ff01"

type employeeServiceDeps struct {
	service   employee.Service
	repo      *fakeEmployeeRepository
	outbox    *fakeOutboxRepository
	sqlMock   sqlmock.Sqlmock
	redisMock redismock.ClientMock
}

func setupEmployeeServiceTest(t *testing.T, repo *fakeEmployeeRepository) *employeeServiceDeps {
	t.Helper()

	db, sqlMock, err := sqlmock.New()
	assert.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	rdb, redisMock := redismock.NewClientMock()
	outbox := &fakeOutboxRepository{}

	service := employee.NewService(repo, &fakeCounterRepository{}, outbox, db, rdb)

	return &employeeServiceDeps{
		service:   service,
		repo:      repo,
		outbox:    outbox,
		sqlMock:   sqlMock,
		redisMock: redisMock,
	}
}

func TestImportRoster_RejectsMissingHeaderColumns(t *testing.T) {
	deps := setupEmployeeServiceTest(t, &fakeEmployeeRepository{})

	csv := "name,phone\nAlice,123\n"
	_, err := deps.service.ImportRoster(context.Background(), testOrgID, strings.NewReader(csv))

	assert.ErrorIs(t, err, employeeerrors.ErrInvalidRosterHeader)
}

func TestImportRoster_ImportsGoodRowsAndSkipsBadOnes(t *testing.T) {
	var inserted []*employee.Employee
	repo := &fakeEmployeeRepository{
		createIgnoreDuplicateFn: func(ctx context.Context, emp *employee.Employee) (bool, error) {
			if emp.Email == "dupe@acme.test" {
				return false, nil
			}
			inserted = append(inserted, emp)
			return true, nil
		},
	}
	deps := setupEmployeeServiceTest(t, repo)

	deps.sqlMock.ExpectBegin()
	deps.sqlMock.ExpectCommit()
	deps.redisMock.ExpectDel("employees:options:" + testOrgID).SetVal(1)

	csv := strings.Join([]string{
		"employee_code,name,email,salary,department",
		"E-100,Alice,alice@acme.test,45000,Engineering",
		",Bob,bob@acme.test,not-a-number,Sales",
		"E-102,Carol,dupe@acme.test,52000,Finance",
		"E-103,,missing-name@acme.test,30000,Ops",
		",Dave,dave@acme.test,61000,Engineering",
	}, "\n") + "\n"

	result, err := deps.service.ImportRoster(context.Background(), testOrgID, strings.NewReader(csv))

	assert.NoError(t, err)
	assert.Equal(t, 3, result.ImportedCount)
	assert.Equal(t, 2, result.SkippedCount)
	assert.Len(t, result.Errors, 2)

	assert.Len(t, inserted, 3)
	assert.Equal(t, "E-100", inserted[0].EmployeeCode)
	assert.Equal(t, "alice@acme.test", inserted[0].Email)
	assert.Equal(t, 45000.0, inserted[0].Salary)
	assert.Equal(t, employee.StatusActive, inserted[0].Status)

	// a blank code falls back to the org counter, an unparseable salary to 0
	assert.Equal(t, "EMP-000001", inserted[1].EmployeeCode)
	assert.Equal(t, 0.0, inserted[1].Salary)
	assert.Equal(t, "EMP-000002", inserted[2].EmployeeCode)

	assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
}

func TestImportRoster_EmitsRosterImportedEvent(t *testing.T) {
	deps := setupEmployeeServiceTest(t, &fakeEmployeeRepository{})

	deps.sqlMock.ExpectBegin()
	deps.sqlMock.ExpectCommit()
	deps.redisMock.ExpectDel("employees:options:" + testOrgID).SetVal(1)

	csv := "name,email,salary\nAlice,alice@acme.test,45000\n"
	_, err := deps.service.ImportRoster(context.Background(), testOrgID, strings.NewReader(csv))

	assert.NoError(t, err)
	assert.Len(t, deps.outbox.created, 1)
	assert.Equal(t, events.RosterImportedTopic, deps.outbox.created[0].Topic)

	var payload events.RosterImportedEvent
	assert.NoError(t, json.Unmarshal(deps.outbox.created[0].Payload, &payload))
	assert.Equal(t, 1, payload.ImportedCount)
	assert.Equal(t, 0, payload.SkippedCount)
	assert.Equal(t, testOrgID, payload.OrganizationID)
}

func TestDeactivate_NotFound(t *testing.T) {
	repo := &fakeEmployeeRepository{
		updateStatusFn: func(ctx context.Context, organizationID, id, status string) (int64, error) {
			return 0, nil
		},
	}
	deps := setupEmployeeServiceTest(t, repo)

	err := deps.service.Deactivate(context.Background(), testOrgID, "missing")
	assert.ErrorIs(t, err, employeeerrors.ErrEmployeeNotFound)
}

func TestListOptions_CacheMissFillsCache(t *testing.T) {
	emps := []employee.Employee{
		{EmployeeCode: "EMP-000001", Name: "Alice"},
		{EmployeeCode: "EMP-000002", Name: "Bob"},
	}
	repo := &fakeEmployeeRepository{
		findAllFn: func(ctx context.Context, organizationID string, status string) ([]employee.Employee, error) {
			assert.Equal(t, employee.StatusActive, status)
			return emps, nil
		},
	}
	deps := setupEmployeeServiceTest(t, repo)

	expected := []employee.EmployeeOption{
		{ID: emps[0].ID.String(), EmployeeCode: "EMP-000001", Name: "Alice"},
		{ID: emps[1].ID.String(), EmployeeCode: "EMP-000002", Name: "Bob"},
	}
	payload, err := json.Marshal(expected)
	assert.NoError(t, err)

	cacheKey := "employees:options:" + testOrgID
	deps.redisMock.ExpectGet(cacheKey).RedisNil()
	deps.redisMock.ExpectSet(cacheKey, payload, 5*time.Minute).SetVal("OK")

	options, err := deps.service.ListOptions(context.Background(), testOrgID)

	assert.NoError(t, err)
	assert.Equal(t, expected, options)
	assert.NoError(t, deps.redisMock.ExpectationsWereMet())
}

func TestListOptions_CacheHitSkipsRepo(t *testing.T) {
	repo := &fakeEmployeeRepository{
		findAllFn: func(ctx context.Context, organizationID string, status string) ([]employee.Employee, error) {
			t.Fatal("repo must not be hit on a cache hit")
			return nil, nil
		},
	}
	deps := setupEmployeeServiceTest(t, repo)

	cached := []employee.EmployeeOption{{EmployeeCode: "EMP-000001", Name: "Alice"}}
	payload, err := json.Marshal(cached)
	assert.NoError(t, err)

	deps.redisMock.ExpectGet("employees:options:" + testOrgID).SetVal(string(payload))

	options, err := deps.service.ListOptions(context.Background(), testOrgID)

	assert.NoError(t, err)
	assert.Equal(t, cached, options)
}
