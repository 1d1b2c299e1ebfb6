package services

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/SscSPs/bizdash/internal/apperrors"
	"github.com/SscSPs/bizdash/internal/core/domain"
	portssvc "github.com/SscSPs/bizdash/internal/core/ports/services"
	"github.com/SscSPs/bizdash/internal/dto"
	"github.com/SscSPs/bizdash/internal/observability/metrics"
	"go.uber.org/zap"
)

// DefaultSettleDelay is how long the locator waits before re-listing.
const DefaultSettleDelay = time.Second

// Resolution strategies, also used as metric labels.
const (
	StrategyResponse   = "response"
	StrategyExactMatch = "exact_match"
	StrategyNameMatch  = "name_match"
	StrategyMostRecent = "most_recent"
	StrategyNotFound   = "not_found"
)

// BusinessLocator recovers the id of a business whose creation response did
// not carry one. Every path after the response check is a heuristic: another
// session creating a same-named business at the same time can win the match.
type BusinessLocator struct {
	BaseService
	businesses portssvc.BusinessReaderSvc
	settle     time.Duration
	sleep      func(ctx context.Context, d time.Duration) error
}

// NewBusinessLocator creates a locator that waits settle before re-listing.
func NewBusinessLocator(businesses portssvc.BusinessReaderSvc, settle time.Duration) *BusinessLocator {
	return &BusinessLocator{businesses: businesses, settle: settle, sleep: sleepCtx}
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

// Resolve returns created when it has an id. Otherwise it waits, re-lists
// businesses and picks, in order: the most recent exact match on names and
// any supplied tax/register numbers, the most recent match on names, or the
// most recent business overall.
func (l *BusinessLocator) Resolve(ctx context.Context, submitted domain.BusinessForm, created domain.Business) (domain.Business, error) {
	if created.ID != 0 {
		metrics.ObserveLocatorResolution(StrategyResponse)
		return created, nil
	}

	log := l.GetLogger(ctx).With(zap.String("name_en", submitted.NameEn))
	log.Warn("Business created without an id, falling back to best-effort lookup")

	if err := l.sleep(ctx, l.settle); err != nil {
		return domain.Business{}, fmt.Errorf("locate created business: %w", err)
	}
	list, err := l.businesses.FetchBusinesses(ctx, dto.ListParams{})
	if err != nil {
		return domain.Business{}, fmt.Errorf("locate created business: %w", err)
	}

	b, strategy := locate(submitted, list)
	metrics.ObserveLocatorResolution(strategy)
	if strategy == StrategyNotFound {
		log.Error("Could not locate created business", zap.Int("candidates", len(list)))
		return domain.Business{}, apperrors.ErrBusinessNotLocated
	}
	log.Warn("Resolved created business heuristically",
		zap.String("strategy", strategy),
		zap.Int64("business_id", int64(b.ID)))
	return b, nil
}

// locate runs the matching chain over list.
func locate(submitted domain.BusinessForm, list []domain.Business) (domain.Business, string) {
	candidates := make([]domain.Business, 0, len(list))
	for _, b := range list {
		if b.ID != 0 {
			candidates = append(candidates, b)
		}
	}
	if len(candidates) == 0 {
		return domain.Business{}, StrategyNotFound
	}
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].CreatedAt.After(candidates[j].CreatedAt)
	})

	nameEn := strings.TrimSpace(submitted.NameEn)
	nameAr := strings.TrimSpace(submitted.NameAr)
	tax := strings.TrimSpace(submitted.TaxNumber)
	crn := strings.TrimSpace(submitted.CommercialRegisterNumber)

	for _, b := range candidates {
		if b.NameEn == nameEn && b.NameAr == nameAr &&
			(tax == "" || b.TaxNumber == tax) &&
			(crn == "" || b.CommercialRegisterNumber == crn) {
			return b, StrategyExactMatch
		}
	}
	for _, b := range candidates {
		if b.NameEn == nameEn && (nameAr == "" || b.NameAr == nameAr) {
			return b, StrategyNameMatch
		}
	}
	return candidates[0], StrategyMostRecent
}
