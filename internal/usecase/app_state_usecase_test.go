package usecase

import (
	"context"
	"errors"
	"fmt"
	"io"
	"testing"

	"arclean_orcamentos/internal/adapter/persistence/repository"
	"arclean_orcamentos/internal/domain/entities"
	"arclean_orcamentos/internal/domain/quoting"
	"arclean_orcamentos/internal/usecase/interfaces"
	mock_interfaces "arclean_orcamentos/internal/usecase/interfaces/mocks"

	"github.com/sirupsen/logrus"
	"go.uber.org/mock/gomock"
)

func quietLog() *logrus.Entry {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return logrus.NewEntry(l)
}

func sequentialIDs() func() string {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("id-%03d", n)
	}
}

func newReadyState(t *testing.T, store interfaces.IRecordStore) *AppState {
	t.Helper()
	a := NewAppState(store, quietLog(), WithClock(fixedClock(2025)), WithIDGenerator(sequentialIDs()))
	if err := a.Init(context.Background()); err != nil {
		t.Fatalf("init: %v", err)
	}
	return a
}

func draftWithItem(a *AppState, client string) entities.Quote {
	q := a.NewQuoteDraft()
	q.Client.Name = client
	quoting.AddItem(&q, entities.LineItem{ServiceName: "Limpeza", Unit: "unidade", Qty: 2, UnitPrice: 50})
	return q
}

func TestAppState_Init(t *testing.T) {
	t.Run("seeds an empty store", func(t *testing.T) {
		a := newReadyState(t, repository.NewMemoryRecordStore())

		if a.State() != StateReady || a.Degraded() {
			t.Fatalf("unexpected state %s degraded=%v", a.State(), a.Degraded())
		}
		catalog := a.ListCatalog()
		if len(catalog) != 59 || catalog[0].ID != "svc-0001" {
			t.Fatalf("expected 59 seeded entries starting at svc-0001, got %d (%s)", len(catalog), catalog[0].ID)
		}
		if a.GetSettings().NextOsSequence != 1 || a.GetCompany().Name != "ArClean" {
			t.Fatalf("unexpected singletons %+v %+v", a.GetSettings(), a.GetCompany())
		}
	})

	t.Run("second init changes nothing", func(t *testing.T) {
		store := repository.NewMemoryRecordStore()
		newReadyState(t, store)
		a := newReadyState(t, store)
		if n := len(a.ListCatalog()); n != 59 {
			t.Fatalf("expected 59 entries after reinit, got %d", n)
		}
	})

	t.Run("failure degrades to defaults", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		store := mock_interfaces.NewMockIRecordStore(ctrl)
		store.EXPECT().SeedIfEmpty(gomock.Any(), gomock.Any()).Return(false, interfaces.ErrStoreUnavailable)

		a := NewAppState(store, quietLog())
		var events []Event
		a.Subscribe(func(ev Event) { events = append(events, ev) })

		err := a.Init(context.Background())
		if !errors.Is(err, interfaces.ErrStoreUnavailable) {
			t.Fatalf("expected ErrStoreUnavailable, got %v", err)
		}
		if a.State() != StateReady || !a.Degraded() {
			t.Fatalf("expected ready and degraded, got %s %v", a.State(), a.Degraded())
		}
		if len(a.ListCatalog()) != 0 || len(a.ListQuotes()) != 0 {
			t.Fatalf("expected empty collections")
		}
		if a.GetSettings() != entities.DefaultSettings() || a.GetCompany() != entities.DefaultCompany() {
			t.Fatalf("expected default singletons")
		}
		if len(events) != 1 || events[0].Op != OpInit || events[0].Err == nil {
			t.Fatalf("expected one failed init event, got %+v", events)
		}
	})

	t.Run("mutations before init", func(t *testing.T) {
		a := NewAppState(repository.NewMemoryRecordStore(), quietLog())
		if _, err := a.AddQuote(context.Background(), entities.Quote{}); !errors.Is(err, ErrStateNotReady) {
			t.Fatalf("expected ErrStateNotReady, got %v", err)
		}
	})
}

func TestAppState_AddQuote(t *testing.T) {
	t.Run("first quote of the year", func(t *testing.T) {
		a := newReadyState(t, repository.NewMemoryRecordStore())

		draft := draftWithItem(a, "Maria")
		if draft.OSNumber != "OS-2025-0001" {
			t.Fatalf("unexpected preview %s", draft.OSNumber)
		}
		if a.GetSettings().NextOsSequence != 1 {
			t.Fatalf("preview must not advance the counter")
		}

		saved, err := a.AddQuote(context.Background(), draft)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if saved.OSNumber != "OS-2025-0001" || a.GetSettings().NextOsSequence != 2 {
			t.Fatalf("unexpected result %s / next %d", saved.OSNumber, a.GetSettings().NextOsSequence)
		}
		if saved.Subtotal != 100 || saved.Total != 100 || saved.Items[0].Subtotal != 100 {
			t.Fatalf("totals not computed: %+v", saved)
		}
		if got, err := a.GetQuote(saved.ID); err != nil || got.ID != saved.ID {
			t.Fatalf("quote not cached: %v", err)
		}
	})

	t.Run("sequence monotonicity", func(t *testing.T) {
		store := repository.NewMemoryRecordStore()
		a := newReadyState(t, store)
		if _, err := a.SetSettings(context.Background(), entities.Settings{NextOsSequence: 40}); err != nil {
			t.Fatalf("set settings: %v", err)
		}

		const n = 3
		var last entities.Quote
		for i := 0; i < n; i++ {
			q := draftWithItem(a, "Cliente")
			q.OSNumber = ""
			saved, err := a.AddQuote(context.Background(), q)
			if err != nil {
				t.Fatalf("add %d: %v", i, err)
			}
			last = saved
		}
		if got := a.GetSettings().NextOsSequence; got != 40+n {
			t.Fatalf("expected counter %d, got %d", 40+n, got)
		}
		if _, seq, ok := quoting.ParseOSNumber(last.OSNumber); !ok || seq != 40+n-1 {
			t.Fatalf("unexpected last number %s", last.OSNumber)
		}
	})

	t.Run("insert then counter", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		store := mock_interfaces.NewMockIRecordStore(ctrl)

		settings := entities.Settings{Currency: "BRL", NextOsSequence: 7, PDFTemplate: "detailed"}
		gomock.InOrder(
			store.EXPECT().SeedIfEmpty(gomock.Any(), gomock.Any()).Return(false, nil),
			store.EXPECT().ListCatalog(gomock.Any()).Return([]entities.CatalogEntry{}, nil),
			store.EXPECT().ListQuotes(gomock.Any()).Return([]entities.Quote{}, nil),
			store.EXPECT().GetCompany(gomock.Any(), gomock.Any()).Return(entities.DefaultCompany(), nil),
			store.EXPECT().GetSettings(gomock.Any(), gomock.Any()).Return(settings, nil),

			store.EXPECT().InsertQuote(gomock.Any(), gomock.AssignableToTypeOf(entities.Quote{})).DoAndReturn(
				func(_ context.Context, q entities.Quote) error {
					if q.OSNumber != "OS-2025-0007" || q.Status != entities.QuoteStatusDraft {
						t.Fatalf("unexpected quote %+v", q)
					}
					return nil
				},
			),
			store.EXPECT().GetSettings(gomock.Any(), gomock.Any()).Return(settings, nil),
			store.EXPECT().PutSettings(gomock.Any(), entities.Settings{Currency: "BRL", NextOsSequence: 8, PDFTemplate: "detailed"}).Return(nil),
			store.EXPECT().ListQuotes(gomock.Any()).Return([]entities.Quote{}, nil),
			store.EXPECT().GetCompany(gomock.Any(), gomock.Any()).Return(entities.DefaultCompany(), nil),
			store.EXPECT().GetSettings(gomock.Any(), gomock.Any()).Return(entities.Settings{NextOsSequence: 8}, nil),
		)

		a := newReadyState(t, store)
		q := draftWithItem(a, "Maria")
		if _, err := a.AddQuote(context.Background(), q); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("failed insert keeps the counter", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		store := mock_interfaces.NewMockIRecordStore(ctrl)
		metrics := mock_interfaces.NewMockIMetrics(ctrl)

		store.EXPECT().SeedIfEmpty(gomock.Any(), gomock.Any()).Return(false, nil)
		store.EXPECT().ListCatalog(gomock.Any()).Return([]entities.CatalogEntry{}, nil)
		store.EXPECT().ListQuotes(gomock.Any()).Return([]entities.Quote{}, nil)
		store.EXPECT().GetCompany(gomock.Any(), gomock.Any()).Return(entities.DefaultCompany(), nil)
		store.EXPECT().GetSettings(gomock.Any(), gomock.Any()).Return(entities.DefaultSettings(), nil)
		store.EXPECT().InsertQuote(gomock.Any(), gomock.Any()).Return(interfaces.ErrDuplicateKey)
		store.EXPECT().PutSettings(gomock.Any(), gomock.Any()).Times(0)

		metrics.EXPECT().SetCollectionSize(gomock.Any(), 0).Times(2)
		metrics.EXPECT().ObserveMutation(string(OpInit), gomock.Any(), nil)
		metrics.EXPECT().ObserveMutation(string(OpAddQuote), gomock.Any(), interfaces.ErrDuplicateKey)

		a := NewAppState(store, quietLog(), WithClock(fixedClock(2025)), WithMetrics(metrics))
		if err := a.Init(context.Background()); err != nil {
			t.Fatalf("init: %v", err)
		}
		q := draftWithItem(a, "Maria")
		if _, err := a.AddQuote(context.Background(), q); !errors.Is(err, interfaces.ErrDuplicateKey) {
			t.Fatalf("expected ErrDuplicateKey, got %v", err)
		}
	})

	t.Run("finalized on add must be valid", func(t *testing.T) {
		a := newReadyState(t, repository.NewMemoryRecordStore())
		q := a.NewQuoteDraft()
		q.Status = entities.QuoteStatusFinalized

		_, err := a.AddQuote(context.Background(), q)
		var verr *quoting.ValidationError
		if !errors.As(err, &verr) || verr.Field != "client.name" {
			t.Fatalf("expected client.name validation error, got %v", err)
		}
		if a.GetSettings().NextOsSequence != 1 {
			t.Fatalf("rejected quote must not advance the counter")
		}
	})
}

func TestAppState_UpdateAndFinalize(t *testing.T) {
	ctx := context.Background()
	a := newReadyState(t, repository.NewMemoryRecordStore())

	var events []Event
	unsubscribe := a.Subscribe(func(ev Event) { events = append(events, ev) })
	defer unsubscribe()

	saved, err := a.AddQuote(ctx, a.NewQuoteDraft())
	if err != nil {
		t.Fatalf("empty drafts may be saved: %v", err)
	}

	if _, err := a.FinalizeQuote(ctx, saved.ID); !errors.Is(err, quoting.ErrQuoteInvalid) {
		t.Fatalf("expected ErrQuoteInvalid, got %v", err)
	}

	saved.Client.Name = "João"
	quoting.AddItem(&saved, entities.LineItem{ServiceName: "Instalação", Qty: 1, UnitPrice: 400})
	quoting.SetDiscount(&saved, 50, entities.DiscountAbsolute)
	saved.Total = 0 // stale totals are recomputed on write
	updated, err := a.UpdateQuote(ctx, saved)
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Total != 350 || updated.OSNumber != saved.OSNumber {
		t.Fatalf("unexpected update result %+v", updated)
	}

	final, err := a.FinalizeQuote(ctx, saved.ID)
	if err != nil || !final.IsFinalized() {
		t.Fatalf("finalize: %+v %v", final, err)
	}
	again, err := a.FinalizeQuote(ctx, saved.ID)
	if err != nil || again.Total != final.Total {
		t.Fatalf("finalize must be idempotent: %v", err)
	}

	// Status is one-way.
	final.Status = entities.QuoteStatusDraft
	reverted, err := a.UpdateQuote(ctx, final)
	if err != nil || !reverted.IsFinalized() {
		t.Fatalf("finalized quote must stay finalized: %+v %v", reverted, err)
	}

	if _, err := a.UpdateQuote(ctx, entities.Quote{ID: "missing"}); !errors.Is(err, ErrQuoteNotFound) {
		t.Fatalf("expected ErrQuoteNotFound, got %v", err)
	}
	if _, err := a.FinalizeQuote(ctx, "missing"); !errors.Is(err, ErrQuoteNotFound) {
		t.Fatalf("expected ErrQuoteNotFound, got %v", err)
	}

	if err := a.DeleteQuote(ctx, saved.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := a.GetQuote(saved.ID); !errors.Is(err, ErrQuoteNotFound) {
		t.Fatalf("expected deleted quote to be gone, got %v", err)
	}

	wantOps := []EventOp{OpAddQuote, OpFinalizeQuote, OpUpdateQuote, OpFinalizeQuote, OpFinalizeQuote, OpUpdateQuote, OpUpdateQuote, OpFinalizeQuote, OpDeleteQuote}
	if len(events) != len(wantOps) {
		t.Fatalf("expected %d events, got %d: %+v", len(wantOps), len(events), events)
	}
	for i, op := range wantOps {
		if events[i].Op != op {
			t.Fatalf("event %d: expected %s, got %s", i, op, events[i].Op)
		}
	}
	if events[1].Err == nil || events[2].Err != nil {
		t.Fatalf("event errors not reported: %+v", events[:3])
	}
}

func TestAppState_Catalog(t *testing.T) {
	ctx := context.Background()
	a := newReadyState(t, repository.NewMemoryRecordStore())

	if _, err := a.AddCatalogEntry(ctx, entities.CatalogEntry{Name: "  "}); !errors.Is(err, ErrInvalidCatalogEntry) {
		t.Fatalf("expected ErrInvalidCatalogEntry, got %v", err)
	}
	if _, err := a.AddCatalogEntry(ctx, entities.CatalogEntry{Name: "x", DefaultPrice: -1}); !errors.Is(err, ErrInvalidCatalogEntry) {
		t.Fatalf("expected ErrInvalidCatalogEntry, got %v", err)
	}

	e, err := a.AddCatalogEntry(ctx, entities.CatalogEntry{Name: "Limpeza de coifa", Category: "Especiais", DefaultPrice: 900})
	if err != nil || e.ID == "" {
		t.Fatalf("add: %+v %v", e, err)
	}
	if _, err := a.AddCatalogEntry(ctx, e); !errors.Is(err, interfaces.ErrDuplicateKey) {
		t.Fatalf("expected ErrDuplicateKey, got %v", err)
	}
	if n := len(a.ListCatalog()); n != 60 {
		t.Fatalf("expected 60 entries, got %d", n)
	}

	e.DefaultPrice = 950
	if _, err := a.UpdateCatalogEntry(ctx, e); err != nil {
		t.Fatalf("update: %v", err)
	}
	if got, _ := a.GetCatalogEntry(e.ID); got.DefaultPrice != 950 {
		t.Fatalf("update not reloaded: %+v", got)
	}
	if _, err := a.UpdateCatalogEntry(ctx, entities.CatalogEntry{ID: "nope", Name: "x"}); !errors.Is(err, ErrCatalogEntryNotFound) {
		t.Fatalf("expected ErrCatalogEntryNotFound, got %v", err)
	}

	if found := a.SearchCatalog("COIFA"); len(found) != 1 || found[0].ID != e.ID {
		t.Fatalf("unexpected search result %+v", found)
	}
	byCat, err := a.CatalogByCategory(ctx, "Especiais")
	if err != nil || len(byCat) != 1 {
		t.Fatalf("unexpected category lookup %v %v", byCat, err)
	}

	if err := a.DeleteCatalogEntry(ctx, e.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := a.GetCatalogEntry(e.ID); !errors.Is(err, ErrCatalogEntryNotFound) {
		t.Fatalf("expected entry to be gone, got %v", err)
	}
}

func TestAppState_Singletons(t *testing.T) {
	ctx := context.Background()
	a := newReadyState(t, repository.NewMemoryRecordStore())

	c := entities.Company{Name: "ArClean Climatização", Owner: "Allan", LogoDataURL: "data:image/png;base64,AAAA"}
	if _, err := a.SetCompany(ctx, c); err != nil {
		t.Fatalf("set company: %v", err)
	}
	if a.GetCompany() != c {
		t.Fatalf("company not reloaded: %+v", a.GetCompany())
	}

	if _, err := a.SetSettings(ctx, entities.Settings{NextOsSequence: 0}); !errors.Is(err, ErrInvalidSettings) {
		t.Fatalf("expected ErrInvalidSettings, got %v", err)
	}
	s, err := a.SetSettings(ctx, entities.Settings{NextOsSequence: 9})
	if err != nil || s.Currency != "BRL" || s.PDFTemplate != "detailed" {
		t.Fatalf("unexpected settings %+v %v", s, err)
	}
	if a.NewQuoteDraft().OSNumber != "OS-2025-0009" {
		t.Fatalf("draft must preview the new counter")
	}
}

func TestAppState_Backup(t *testing.T) {
	ctx := context.Background()

	t.Run("import of export is identity", func(t *testing.T) {
		a := newReadyState(t, repository.NewMemoryRecordStore())
		for _, name := range []string{"Ana", "Bruno"} {
			if _, err := a.AddQuote(ctx, draftWithItem(a, name)); err != nil {
				t.Fatalf("add: %v", err)
			}
		}
		beforeCatalog, beforeQuotes := a.ListCatalog(), a.ListQuotes()
		beforeCompany, beforeSettings := a.GetCompany(), a.GetSettings()

		data, err := a.ExportBackup(ctx)
		if err != nil {
			t.Fatalf("export: %v", err)
		}
		raw, err := EncodeBackup(data)
		if err != nil {
			t.Fatalf("encode: %v", err)
		}
		decoded, err := DecodeBackup(raw)
		if err != nil {
			t.Fatalf("decode: %v", err)
		}

		b := newReadyState(t, repository.NewMemoryRecordStore())
		if err := b.ImportBackup(ctx, decoded); err != nil {
			t.Fatalf("import: %v", err)
		}

		assertSameIDs(t, beforeCatalog, b.ListCatalog())
		afterQuotes := b.ListQuotes()
		if len(afterQuotes) != len(beforeQuotes) {
			t.Fatalf("expected %d quotes, got %d", len(beforeQuotes), len(afterQuotes))
		}
		for i := range beforeQuotes {
			if beforeQuotes[i].ID != afterQuotes[i].ID || beforeQuotes[i].Total != afterQuotes[i].Total {
				t.Fatalf("quote %d differs: %+v vs %+v", i, beforeQuotes[i], afterQuotes[i])
			}
		}
		if b.GetCompany() != beforeCompany || b.GetSettings() != beforeSettings {
			t.Fatalf("singletons differ")
		}
	})

	t.Run("missing quotes leaves data unchanged", func(t *testing.T) {
		a := newReadyState(t, repository.NewMemoryRecordStore())
		if _, err := a.AddQuote(ctx, draftWithItem(a, "Ana")); err != nil {
			t.Fatalf("add: %v", err)
		}
		before := a.ListQuotes()

		bad := entities.AppData{
			Company:  entities.DefaultCompany(),
			Settings: entities.DefaultSettings(),
			Services: []entities.CatalogEntry{},
		}
		if err := a.ImportBackup(ctx, bad); !errors.Is(err, ErrImportMalformed) {
			t.Fatalf("expected ErrImportMalformed, got %v", err)
		}
		after := a.ListQuotes()
		if len(after) != len(before) || after[0].ID != before[0].ID {
			t.Fatalf("quotes changed after a failed import")
		}
		if n := len(a.ListCatalog()); n != 59 {
			t.Fatalf("catalog changed after a failed import: %d", n)
		}
	})
}

func TestAppState_Dashboard(t *testing.T) {
	ctx := context.Background()
	a := newReadyState(t, repository.NewMemoryRecordStore())

	for i := 0; i < 6; i++ {
		q := draftWithItem(a, fmt.Sprintf("Cliente %d", i))
		q.Date = fmt.Sprintf("2025-01-%02d", i+1)
		saved, err := a.AddQuote(ctx, q)
		if err != nil {
			t.Fatalf("add: %v", err)
		}
		if i%2 == 0 {
			if _, err := a.FinalizeQuote(ctx, saved.ID); err != nil {
				t.Fatalf("finalize: %v", err)
			}
		}
	}

	d := a.Dashboard()
	if d.TotalQuotes != 6 || d.FinalizedQuotes != 3 || d.DraftQuotes != 3 || d.Revenue != 300 {
		t.Fatalf("unexpected dashboard %+v", d)
	}
	if len(d.Recent) != 5 || d.Recent[0].Date != "2025-01-06" {
		t.Fatalf("unexpected recent quotes %+v", d.Recent)
	}

	if found := a.SearchQuotes("cliente 3"); len(found) != 1 {
		t.Fatalf("unexpected search result %+v", found)
	}
	if found := a.SearchQuotes("os-2025-000"); len(found) != 6 {
		t.Fatalf("expected 6 OS matches, got %d", len(found))
	}
	finalized, err := a.QuotesByStatus(ctx, entities.QuoteStatusFinalized)
	if err != nil || len(finalized) != 3 || finalized[0].Date != "2025-01-05" {
		t.Fatalf("unexpected status lookup %+v %v", finalized, err)
	}
}

func assertSameIDs(t *testing.T, want, got []entities.CatalogEntry) {
	t.Helper()
	if len(want) != len(got) {
		t.Fatalf("expected %d entries, got %d", len(want), len(got))
	}
	ids := make(map[string]entities.CatalogEntry, len(want))
	for _, e := range want {
		ids[e.ID] = e
	}
	for _, e := range got {
		if ids[e.ID] != e {
			t.Fatalf("entry %s differs", e.ID)
		}
	}
}

func TestAppState_EditQuote(t *testing.T) {
	ctx := context.Background()
	a := newReadyState(t, repository.NewMemoryRecordStore())

	saved, err := a.AddQuote(ctx, draftWithItem(a, "Maria"))
	if err != nil {
		t.Fatalf("add: %v", err)
	}

	var events []Event
	unsubscribe := a.Subscribe(func(ev Event) { events = append(events, ev) })
	defer unsubscribe()

	edited, err := a.EditQuote(ctx, saved.ID, func(q *entities.Quote) error {
		quoting.AddItem(q, entities.LineItem{ServiceName: "Visita", Qty: 1, UnitPrice: 80})
		if _, err := quoting.SetQty(q, 0, 3); err != nil {
			return err
		}
		quoting.SetTravelFee(q, 20)
		q.OSNumber = "OS-1999-0001"
		return nil
	})
	if err != nil {
		t.Fatalf("edit: %v", err)
	}
	// 3 x 50 + 80 = 230, plus 20.
	if edited.Subtotal != 230 || edited.Total != 250 || edited.OSNumber != saved.OSNumber {
		t.Fatalf("unexpected edit result %+v", edited)
	}
	if cached, _ := a.GetQuote(saved.ID); cached.Total != 250 || len(cached.Items) != 2 {
		t.Fatalf("cache not reloaded: %+v", cached)
	}

	t.Run("failing edit leaves the quote untouched", func(t *testing.T) {
		_, err := a.EditQuote(ctx, saved.ID, func(q *entities.Quote) error {
			quoting.SetTaxes(q, 99)
			_, err := quoting.RemoveItem(q, 7)
			return err
		})
		if !errors.Is(err, quoting.ErrItemIndex) {
			t.Fatalf("expected ErrItemIndex, got %v", err)
		}
		if cached, _ := a.GetQuote(saved.ID); cached.Taxes != 0 || cached.Total != 250 {
			t.Fatalf("quote changed by a failed edit: %+v", cached)
		}
	})

	t.Run("finalized quotes stay valid", func(t *testing.T) {
		if _, err := a.FinalizeQuote(ctx, saved.ID); err != nil {
			t.Fatalf("finalize: %v", err)
		}
		_, err := a.EditQuote(ctx, saved.ID, func(q *entities.Quote) error {
			_, err := quoting.SetQty(q, 1, 0)
			return err
		})
		var verr *quoting.ValidationError
		if !errors.As(err, &verr) || verr.Field != "items[1].qty" {
			t.Fatalf("expected a qty validation error, got %v", err)
		}
	})

	t.Run("missing quote", func(t *testing.T) {
		noop := func(q *entities.Quote) error { return nil }
		if _, err := a.EditQuote(ctx, "missing", noop); !errors.Is(err, ErrQuoteNotFound) {
			t.Fatalf("expected ErrQuoteNotFound, got %v", err)
		}
	})

	if len(events) == 0 || events[0].Op != OpEditQuote || events[0].Err != nil {
		t.Fatalf("unexpected events %+v", events)
	}
}
