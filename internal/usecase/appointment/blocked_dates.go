package appointment

import (
	"context"
	"fmt"
	"sort"

	"github.com/BruksfildServices01/lahermandad/internal/audit"
	domain "github.com/BruksfildServices01/lahermandad/internal/domain/appointment"
	"github.com/BruksfildServices01/lahermandad/internal/httperr"
)

type DayToggle struct {
	Day     string `json:"date"`
	Blocked bool   `json:"blocked"`
}

type ToggleResult struct {
	Toggled     []DayToggle `json:"toggled"`
	BlockedDays []string    `json:"blocked_days"`
}

var ErrNoDaysSelected = httperr.ErrBusinessMsg("no_days_selected", "Selecione os dias.")

type ToggleBlockedDates struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewToggleBlockedDates(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *ToggleBlockedDates {
	return &ToggleBlockedDates{
		repo:  repo,
		audit: audit,
	}
}

// Execute flips every selected day independently. Days are applied in
// order; a backend failure stops the batch and earlier flips stay applied.
// On failure the returned result lists the days already flipped (and those
// are audited) alongside the error.
func (uc *ToggleBlockedDates) Execute(
	ctx context.Context,
	userID uint,
	rawDays []string,
) (*ToggleResult, error) {

	days, err := normalizeDays(rawDays)
	if err != nil {
		return nil, err
	}
	if len(days) == 0 {
		return nil, ErrNoDaysSelected
	}

	res := &ToggleResult{Toggled: make([]DayToggle, 0, len(days))}
	var toggleErr error
	for _, day := range days {
		blocked, err := uc.repo.ToggleBlockedDay(ctx, day)
		if err != nil {
			toggleErr = fmt.Errorf("toggle %s: %w", day, err)
			break
		}
		res.Toggled = append(res.Toggled, DayToggle{Day: day, Blocked: blocked})
	}

	if len(res.Toggled) > 0 {
		uc.audit.Dispatch(audit.Event{
			UserID:   &userID,
			Action:   audit.ActionBlockedDateToggled,
			Entity:   "blocked_date",
			Metadata: res.Toggled,
		})
	}
	if toggleErr != nil {
		return res, toggleErr
	}

	res.BlockedDays, err = uc.repo.ListBlockedDays(ctx)
	if err != nil {
		return res, err
	}
	if res.BlockedDays == nil {
		res.BlockedDays = []string{}
	}
	return res, nil
}

// TogglePreview is what the toggle button would do for a selection.
type TogglePreview struct {
	Label       string   `json:"label"`
	BlockedDays []string `json:"blocked_days"`
}

// Preview returns the toggle button caption and the blocked days that
// would result from applying it.
func (uc *ToggleBlockedDates) Preview(ctx context.Context, rawDays []string) (*TogglePreview, error) {
	days, err := normalizeDays(rawDays)
	if err != nil {
		return nil, err
	}
	blocked, err := uc.repo.ListBlockedDays(ctx)
	if err != nil {
		return nil, err
	}

	after := append([]string{}, blocked...)
	for _, day := range days {
		after, _ = domain.ToggleSet(after, day)
	}
	sort.Strings(after)

	return &TogglePreview{
		Label:       domain.ToggleLabel(days, blocked),
		BlockedDays: after,
	}, nil
}

// normalizeDays canonicalises keys and drops duplicates so a day selected
// twice is not flipped back.
func normalizeDays(raw []string) ([]string, error) {
	seen := make(map[string]struct{}, len(raw))
	out := make([]string, 0, len(raw))
	for _, r := range raw {
		day, err := domain.ParseDayKey(r)
		if err != nil {
			return nil, err
		}
		if _, ok := seen[day]; ok {
			continue
		}
		seen[day] = struct{}{}
		out = append(out, day)
	}
	return out, nil
}
