package generate_slots

import (
	"context"
)

// UseCase generates the booking data (day window plus session slots) for
// one wizard run. Pure with respect to its inputs: the only ambient input
// is the TimeProvider anchoring the day window.
type UseCase struct {
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase creates the slot generation use case
func NewUseCase(logger Logger) *UseCase {
	return &UseCase{
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// NewUseCaseWithTimeProvider creates the use case with an injected clock
func NewUseCaseWithTimeProvider(tp TimeProvider, logger Logger) *UseCase {
	return &UseCase{
		timeProvider: tp,
		logger:       logger,
	}
}

// Execute runs one generation pass
func (uc *UseCase) Execute(_ context.Context, req *Request) (*Response, error) {
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GenerateSlots: validation failed: %v", err)
		return nil, err
	}

	return uc.run(req)
}

func (uc *UseCase) run(req *Request) (*Response, error) {
	resp := &Response{}

	for _, win := range req.Sessions {
		sessionSlots, err := generateSessionSlots(win, req.DurationMinutes, req.Capacity)
		if err != nil {
			uc.logger.Error("GenerateSlots: session %s: %v", win.Session, err)
			return nil, err
		}
		resp.Slots = append(resp.Slots, sessionSlots...)
	}

	availablePerDay := 0
	for _, s := range resp.Slots {
		availablePerDay += s.Available
	}

	resp.Days = generateDays(uc.timeProvider.Now(), req.VisibleDays, availablePerDay)

	uc.logger.Info("GenerateSlots: generated %d slots across %d sessions, %d visible days",
		len(resp.Slots), len(req.Sessions), len(resp.Days))

	return resp, nil
}
