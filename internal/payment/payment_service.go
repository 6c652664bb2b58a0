package payment

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"
	"time"

	"insuregate/internal/events"
	"insuregate/internal/messaging/kafka"
	paymenterrors "insuregate/internal/payment/errors"
	"insuregate/internal/premium"
	"insuregate/internal/shared/apperror"
	"insuregate/internal/shared/contextutil"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const (
	OutcomeSuccess = "success"
	OutcomeFailure = "failure"
)

type Service interface {
	// CreateSession claims every unclaimed pending premium of the period
	// atomically; a period with nothing to pay is rejected
	CreateSession(ctx context.Context, organizationID string, req CreateSessionRequest) (*SessionResponse, error)
	Initiate(ctx context.Context, organizationID, id string) (*SessionResponse, error)
	Get(ctx context.Context, organizationID, id string) (*SessionResponse, error)
	List(ctx context.Context, organizationID string) ([]SessionResponse, error)
	// Resolve settles the session and all its claimed entries in one
	// transaction. Replays surface ErrAlreadyResolved.
	Resolve(ctx context.Context, sessionID, outcome string) (*SessionResponse, error)
}

type service struct {
	repo       Repository
	outboxRepo kafka.OutboxRepository
	sqlDB      *sql.DB
	logger     *zap.Logger
}

func NewService(repo Repository, outboxRepo kafka.OutboxRepository, sqlDB *sql.DB) Service {
	return &service{
		repo:       repo,
		outboxRepo: outboxRepo,
		sqlDB:      sqlDB,
		logger:     zap.L().Named("payment_service"),
	}
}

func (s *service) CreateSession(ctx context.Context, organizationID string, req CreateSessionRequest) (*SessionResponse, error) {
	month, ok := premium.NormalizePeriod(req.Month, req.Year)
	if !ok {
		return nil, apperror.New(apperror.CodeInvalidInput, "Period must be an English month name and a four digit year", http.StatusBadRequest)
	}

	orgID, err := uuid.Parse(organizationID)
	if err != nil {
		return nil, paymenterrors.ErrSessionNotFound
	}

	session := &PaymentSession{
		ID:             uuid.New(),
		OrganizationID: orgID,
		Month:          month,
		Year:           req.Year,
		Status:         StatusCreated,
	}

	tx, err := s.sqlDB.BeginTx(ctx, nil)
	if err != nil {
		return nil, mapRepoError(err)
	}
	defer tx.Rollback()

	txRepo := s.repo.WithTx(tx)

	if err := txRepo.CreateSession(ctx, session); err != nil {
		return nil, mapRepoError(err)
	}

	total, count, err := txRepo.ClaimPending(ctx, session.ID.String(), organizationID, month, req.Year)
	if err != nil {
		return nil, mapRepoError(err)
	}
	if count == 0 {
		return nil, paymenterrors.ErrNoPendingPremiums
	}

	session.TotalAmount = total
	session.EmployeeCount = count
	session.PaymentURL = checkoutURL(session.ID.String())

	if err := txRepo.SetTotals(ctx, session.ID.String(), total, count, session.PaymentURL); err != nil {
		return nil, mapRepoError(err)
	}

	if err := tx.Commit(); err != nil {
		return nil, mapRepoError(err)
	}

	s.logger.Info("payment session created",
		zap.String("organization_id", organizationID),
		zap.String("session_id", session.ID.String()),
		zap.Int64("total_amount", total),
		zap.Int("employee_count", count),
	)

	return toResponse(session), nil
}

func (s *service) Initiate(ctx context.Context, organizationID, id string) (*SessionResponse, error) {
	affected, err := s.repo.MarkInitiated(ctx, organizationID, id)
	if err != nil {
		return nil, mapRepoError(err)
	}
	if affected == 0 {
		// Either the session does not exist here or it already left 'created'
		if _, err := s.repo.FindByID(ctx, organizationID, id); err != nil {
			return nil, mapRepoError(err)
		}
		return nil, paymenterrors.ErrSessionNotInitiable
	}

	session, err := s.repo.FindByID(ctx, organizationID, id)
	if err != nil {
		return nil, mapRepoError(err)
	}

	s.logger.Info("payment session initiated",
		zap.String("organization_id", organizationID),
		zap.String("session_id", id),
	)

	return toResponse(session), nil
}

func (s *service) Get(ctx context.Context, organizationID, id string) (*SessionResponse, error) {
	session, err := s.repo.FindByID(ctx, organizationID, id)
	if err != nil {
		return nil, mapRepoError(err)
	}
	return toResponse(session), nil
}

func (s *service) List(ctx context.Context, organizationID string) ([]SessionResponse, error) {
	sessions, err := s.repo.List(ctx, organizationID)
	if err != nil {
		return nil, mapRepoError(err)
	}

	resp := make([]SessionResponse, 0, len(sessions))
	for i := range sessions {
		resp = append(resp, *toResponse(&sessions[i]))
	}
	return resp, nil
}

func (s *service) Resolve(ctx context.Context, sessionID, outcome string) (*SessionResponse, error) {
	var sessionStatus, entryStatus string
	switch outcome {
	case OutcomeSuccess:
		sessionStatus, entryStatus = StatusCompleted, "paid"
	case OutcomeFailure:
		sessionStatus, entryStatus = StatusFailed, "failed"
	default:
		return nil, paymenterrors.ErrInvalidOutcome
	}

	session, err := s.repo.FindByIDAny(ctx, sessionID)
	if err != nil {
		return nil, mapRepoError(err)
	}

	tx, err := s.sqlDB.BeginTx(ctx, nil)
	if err != nil {
		return nil, mapRepoError(err)
	}
	defer tx.Rollback()

	txRepo := s.repo.WithTx(tx)

	affected, err := txRepo.ResolveSession(ctx, sessionID, sessionStatus)
	if err != nil {
		return nil, mapRepoError(err)
	}
	if affected == 0 {
		return nil, paymenterrors.ErrAlreadyResolved
	}

	settled, err := txRepo.SettleEntries(ctx, sessionID, entryStatus)
	if err != nil {
		return nil, mapRepoError(err)
	}

	if err := s.enqueueSettled(ctx, tx, session, outcome); err != nil {
		return nil, mapRepoError(err)
	}

	if err := tx.Commit(); err != nil {
		return nil, mapRepoError(err)
	}

	s.logger.Info("payment session resolved",
		zap.String("session_id", sessionID),
		zap.String("outcome", outcome),
		zap.Int64("entries_settled", settled),
	)

	resolved, err := s.repo.FindByIDAny(ctx, sessionID)
	if err != nil {
		return nil, mapRepoError(err)
	}
	return toResponse(resolved), nil
}

func (s *service) enqueueSettled(ctx context.Context, tx *sql.Tx, session *PaymentSession, outcome string) error {
	event := events.PaymentSettledEvent{
		EventType:      "payment.session.settled",
		RequestID:      contextutil.GetRequestID(ctx),
		SessionID:      session.ID.String(),
		OrganizationID: session.OrganizationID.String(),
		Outcome:        outcome,
		TotalAmount:    session.TotalAmount,
		EmployeeCount:  session.EmployeeCount,
		OccurredAt:     time.Now().UTC(),
	}

	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}

	return s.outboxRepo.WithTx(tx).Create(ctx, kafka.OutboxEvent{
		ID:            uuid.NewString(),
		RequestID:     event.RequestID,
		AggregateType: "payment_session",
		AggregateID:   session.ID.String(),
		EventType:     event.EventType,
		Topic:         events.PaymentSettledTopic,
		Payload:       payload,
		Status:        kafka.OutboxStatusPending,
	})
}

func checkoutURL(sessionID string) string {
	base := os.Getenv("PAYMENT_GATEWAY_BASE_URL")
	if base == "" {
		base = "https://pay.insuregate.local"
	}
	return fmt.Sprintf("%s/checkout/%s", base, sessionID)
}

func toResponse(session *PaymentSession) *SessionResponse {
	resp := &SessionResponse{
		ID:            session.ID.String(),
		Month:         session.Month,
		Year:          session.Year,
		TotalAmount:   session.TotalAmount,
		EmployeeCount: session.EmployeeCount,
		Status:        session.Status,
		PaymentURL:    session.PaymentURL,
	}
	if session.ResolvedAt != nil {
		resp.ResolvedAt = session.ResolvedAt.Format("2006-01-02 15:04:05")
	}
	return resp
}

func mapRepoError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) || errors.Is(err, sql.ErrNoRows) {
		return paymenterrors.ErrSessionNotFound
	}
	return apperror.Wrap(err, apperror.CodeInternalError, "Database operation failed", http.StatusInternalServerError)
}
