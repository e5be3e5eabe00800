package applications

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/kamrujjamanali/mosip-pre-reg-mockup/internal/domain"
	appRepo "github.com/kamrujjamanali/mosip-pre-reg-mockup/internal/infra/storage/applications"
)

// Service serves the dashboard application list: search, status filter,
// sort and the delete/select behavior of the portal.
type Service struct {
	store  ApplicationStore
	logger Logger
}

// NewService creates the applications service
func NewService(store ApplicationStore, logger Logger) *Service {
	return &Service{store: store, logger: logger}
}

// List returns the applications matching the filter.
// Search matches id, name and languages case-insensitively. Sort by id
// stands in for recency, as the portal's ids are chronological.
func (s *Service) List(ctx context.Context, filter domain.ApplicationFilter) ([]domain.ApplicationItem, error) {
	if filter.Status != nil && !domain.IsValidApplicationStatus(*filter.Status) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidStatus, *filter.Status)
	}

	sortMode := filter.Sort
	if sortMode == "" {
		sortMode = domain.SortNewest
	}
	switch sortMode {
	case domain.SortNewest, domain.SortOldest, domain.SortNameAsc, domain.SortNameDesc:
	default:
		return nil, fmt.Errorf("%w: %q", ErrInvalidSort, sortMode)
	}

	list := s.store.List(ctx)

	if filter.Status != nil {
		filtered := list[:0]
		for _, a := range list {
			if a.Status == *filter.Status {
				filtered = append(filtered, a)
			}
		}
		list = filtered
	}

	if q := strings.ToLower(strings.TrimSpace(filter.Search)); q != "" {
		filtered := list[:0]
		for _, a := range list {
			if strings.Contains(strings.ToLower(a.ID), q) ||
				strings.Contains(strings.ToLower(a.Name), q) ||
				strings.Contains(strings.ToLower(a.Languages), q) {
				filtered = append(filtered, a)
			}
		}
		list = filtered
	}

	sort.SliceStable(list, func(i, j int) bool {
		switch sortMode {
		case domain.SortNameAsc:
			return list[i].Name < list[j].Name
		case domain.SortNameDesc:
			return list[i].Name > list[j].Name
		case domain.SortOldest:
			return list[i].ID < list[j].ID
		default: // NEWEST
			return list[i].ID > list[j].ID
		}
	})

	s.logger.Info("List: %d applications (search=%q, status=%v, sort=%s)",
		len(list), filter.Search, filter.Status, sortMode)
	return list, nil
}

// Select marks one application selected, deselecting the others
func (s *Service) Select(ctx context.Context, id string) error {
	if err := s.store.Select(ctx, id); err != nil {
		if errors.Is(err, appRepo.ErrApplicationNotFound) {
			return ErrApplicationNotFound
		}
		return err
	}
	s.logger.Info("Select: application=%s", id)
	return nil
}

// Delete removes an application; the store moves selection to a
// neighbour when the removed item was selected
func (s *Service) Delete(ctx context.Context, id string) error {
	if err := s.store.Remove(ctx, id); err != nil {
		if errors.Is(err, appRepo.ErrApplicationNotFound) {
			s.logger.Warn("Delete: application=%s not found", id)
			return ErrApplicationNotFound
		}
		return err
	}
	s.logger.Info("Delete: application=%s removed", id)
	return nil
}
