package position

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/peopledesk/payroll-backend-go/internal/domain/company"
	"github.com/peopledesk/payroll-backend-go/internal/domain/position"
	"github.com/peopledesk/payroll-backend-go/internal/pkg/eventbus"
	"github.com/peopledesk/payroll-backend-go/internal/pkg/workcal"
)

type PositionServiceImpl struct {
	log          *slog.Logger
	bus          *eventbus.Bus
	positionRepo position.PositionRepository
	companyRepo  company.CompanyRepository
}

func NewPositionService(
	log *slog.Logger,
	bus *eventbus.Bus,
	positionRepo position.PositionRepository,
	companyRepo company.CompanyRepository,
) position.PositionService {
	return &PositionServiceImpl{
		log:          log,
		bus:          bus,
		positionRepo: positionRepo,
		companyRepo:  companyRepo,
	}
}

// ListByCompany implements position.PositionService.
func (s *PositionServiceImpl) ListByCompany(ctx context.Context, companyID string) ([]position.PositionResponse, error) {
	positions, err := s.positionRepo.ListByCompany(ctx, companyID)
	if err != nil {
		return nil, fmt.Errorf("failed to list positions: %w", err)
	}
	out := make([]position.PositionResponse, 0, len(positions))
	for _, p := range positions {
		out = append(out, position.ToResponse(p))
	}
	return out, nil
}

// Create implements position.PositionService. The personnel card number is
// allocated when the request does not carry one.
func (s *PositionServiceImpl) Create(ctx context.Context, userID string, req position.CreatePositionRequest) (position.PositionResponse, error) {
	if err := req.Validate(); err != nil {
		return position.PositionResponse{}, err
	}
	if _, err := s.companyRepo.GetByID(ctx, req.CompanyID); err != nil {
		return position.PositionResponse{}, err
	}

	cardNumber := ""
	if req.CardNumber != nil {
		cardNumber = *req.CardNumber
	} else {
		n, err := s.positionRepo.NextCardNumber(ctx, req.CompanyID)
		if err != nil {
			return position.PositionResponse{}, fmt.Errorf("failed to allocate card number: %w", err)
		}
		cardNumber = n
	}

	dateFrom, _ := time.Parse("2006-01-02", req.DateFrom)
	dateTo, _ := time.Parse("2006-01-02", req.DateTo)

	created, err := s.positionRepo.Create(ctx, position.Position{
		CompanyID:  req.CompanyID,
		CardNumber: cardNumber,
		PersonID:   req.PersonID,
		DateFrom:   workcal.DateUTC(dateFrom),
		DateTo:     workcal.DateUTC(dateTo),
	})
	if err != nil {
		return position.PositionResponse{}, fmt.Errorf("failed to create position: %w", err)
	}

	s.log.InfoContext(ctx, "position created",
		slog.String("user_id", userID),
		slog.String("position_id", created.ID),
		slog.String("company_id", created.CompanyID))
	s.bus.Publish(ctx, position.CreatedEvent{
		UserID:     userID,
		PositionID: created.ID,
		CompanyID:  created.CompanyID,
	})

	return position.ToResponse(created), nil
}

// GetByID implements position.PositionService.
func (s *PositionServiceImpl) GetByID(ctx context.Context, userID, id string) (position.PositionResponse, error) {
	p, err := s.positionRepo.GetByID(ctx, id)
	if err != nil {
		return position.PositionResponse{}, err
	}
	return position.ToResponse(p), nil
}

// Update implements position.PositionService.
func (s *PositionServiceImpl) Update(ctx context.Context, userID, id string, req position.UpdatePositionRequest) (position.PositionResponse, error) {
	if err := req.Validate(); err != nil {
		return position.PositionResponse{}, err
	}
	if err := s.positionRepo.Update(ctx, id, req); err != nil {
		return position.PositionResponse{}, err
	}
	updated, err := s.positionRepo.GetByID(ctx, id)
	if err != nil {
		return position.PositionResponse{}, err
	}

	s.bus.Publish(ctx, position.UpdatedEvent{
		UserID:     userID,
		PositionID: updated.ID,
		CompanyID:  updated.CompanyID,
	})

	return position.ToResponse(updated), nil
}

// Delete implements position.PositionService.
func (s *PositionServiceImpl) Delete(ctx context.Context, userID, id string) error {
	p, err := s.positionRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.positionRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete position: %w", err)
	}

	s.bus.Publish(ctx, position.DeletedEvent{
		UserID:     userID,
		PositionID: id,
		CompanyID:  p.CompanyID,
	})

	return nil
}
