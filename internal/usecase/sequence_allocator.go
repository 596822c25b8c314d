package usecase

import (
	"context"
	"time"

	"arclean_orcamentos/internal/domain/entities"
	"arclean_orcamentos/internal/domain/quoting"
	"arclean_orcamentos/internal/usecase/interfaces"
)

// SequenceAllocator hands out OS numbers from Settings.NextOsSequence.
//
// Preview never writes: two drafts opened from the same counter state get the
// same number. Only Commit, called after the quote is stored, advances the counter.
type SequenceAllocator struct {
	settings interfaces.ISettingsRepository
	now      func() time.Time
}

func NewSequenceAllocator(settings interfaces.ISettingsRepository, now func() time.Time) *SequenceAllocator {
	if now == nil {
		now = time.Now
	}
	return &SequenceAllocator{settings: settings, now: now}
}

// Preview formats the number the next saved quote will carry.
func (a *SequenceAllocator) Preview(s entities.Settings) string {
	return quoting.FormatOSNumber(s.NextOsSequence, a.now().Year())
}

// Current reads the stored counter (defaults when absent) and previews from it.
func (a *SequenceAllocator) Current(ctx context.Context) (string, error) {
	s, err := a.settings.GetSettings(ctx, entities.DefaultSettings())
	if err != nil {
		return "", err
	}
	return a.Preview(s), nil
}

// Commit advances the stored counter by exactly one and returns the new settings.
func (a *SequenceAllocator) Commit(ctx context.Context) (entities.Settings, error) {
	s, err := a.settings.GetSettings(ctx, entities.DefaultSettings())
	if err != nil {
		return entities.Settings{}, err
	}
	s.NextOsSequence++
	if err := a.settings.PutSettings(ctx, s); err != nil {
		return entities.Settings{}, err
	}
	return s, nil
}
