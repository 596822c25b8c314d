package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"arclean_orcamentos/internal/domain/entities"
	mock_interfaces "arclean_orcamentos/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func fixedClock(year int) func() time.Time {
	return func() time.Time { return time.Date(year, time.June, 15, 10, 0, 0, 0, time.UTC) }
}

func TestSequenceAllocator_Preview(t *testing.T) {
	a := NewSequenceAllocator(nil, fixedClock(2025))
	if got := a.Preview(entities.Settings{NextOsSequence: 1}); got != "OS-2025-0001" {
		t.Fatalf("expected OS-2025-0001, got %s", got)
	}
	if got := a.Preview(entities.Settings{NextOsSequence: 37}); got != "OS-2025-0037" {
		t.Fatalf("expected OS-2025-0037, got %s", got)
	}
}

func TestSequenceAllocator_Commit(t *testing.T) {
	t.Run("advances by one", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockISettingsRepository(ctrl)
		a := NewSequenceAllocator(repo, fixedClock(2025))

		stored := entities.Settings{Currency: "BRL", NextOsSequence: 5, PDFTemplate: "detailed"}
		gomock.InOrder(
			repo.EXPECT().GetSettings(gomock.Any(), entities.DefaultSettings()).Return(stored, nil),
			repo.EXPECT().PutSettings(gomock.Any(), entities.Settings{Currency: "BRL", NextOsSequence: 6, PDFTemplate: "detailed"}).Return(nil),
		)

		got, err := a.Commit(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.NextOsSequence != 6 {
			t.Fatalf("expected 6, got %d", got.NextOsSequence)
		}
	})

	t.Run("read error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockISettingsRepository(ctrl)
		a := NewSequenceAllocator(repo, fixedClock(2025))

		repo.EXPECT().GetSettings(gomock.Any(), gomock.Any()).Return(entities.Settings{}, errors.New("db"))

		if _, err := a.Commit(context.Background()); err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})

	t.Run("write error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockISettingsRepository(ctrl)
		a := NewSequenceAllocator(repo, fixedClock(2025))

		repo.EXPECT().GetSettings(gomock.Any(), gomock.Any()).Return(entities.DefaultSettings(), nil)
		repo.EXPECT().PutSettings(gomock.Any(), gomock.Any()).Return(errors.New("disk full"))

		if _, err := a.Commit(context.Background()); err == nil {
			t.Fatalf("expected error")
		}
	})
}

func TestSequenceAllocator_Current(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockISettingsRepository(ctrl)
	a := NewSequenceAllocator(repo, fixedClock(2026))

	repo.EXPECT().GetSettings(gomock.Any(), gomock.Any()).Return(entities.Settings{NextOsSequence: 12}, nil)

	got, err := a.Current(context.Background())
	if err != nil || got != "OS-2026-0012" {
		t.Fatalf("unexpected preview %q %v", got, err)
	}
}
