package usecase

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"
	"time"

	"arclean_orcamentos/internal/domain/entities"
	"arclean_orcamentos/internal/domain/quoting"
	"arclean_orcamentos/internal/usecase/interfaces"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

var (
	ErrStateNotReady        = errors.New("application state not ready")
	ErrQuoteNotFound        = errors.New("quote not found")
	ErrCatalogEntryNotFound = errors.New("catalog entry not found")
	ErrInvalidQuoteID       = errors.New("invalid quote id")
	ErrInvalidCatalogEntry  = errors.New("invalid catalog entry")
	ErrInvalidSettings      = errors.New("invalid settings")
)

// DefaultValidityDays is the validity of a fresh draft.
const DefaultValidityDays = 7

const recentQuotes = 5

type State string

const (
	StateUninitialized State = "uninitialized"
	StateLoading       State = "loading"
	StateReady         State = "ready"
)

// EventOp names the mutation an Event reports.
type EventOp string

const (
	OpInit               EventOp = "init"
	OpAddCatalogEntry    EventOp = "catalog.add"
	OpUpdateCatalogEntry EventOp = "catalog.update"
	OpDeleteCatalogEntry EventOp = "catalog.delete"
	OpAddQuote           EventOp = "quote.add"
	OpUpdateQuote        EventOp = "quote.update"
	OpEditQuote          EventOp = "quote.edit"
	OpDeleteQuote        EventOp = "quote.delete"
	OpFinalizeQuote      EventOp = "quote.finalize"
	OpSetCompany         EventOp = "company.set"
	OpSetSettings        EventOp = "settings.set"
	OpImportBackup       EventOp = "backup.import"
)

// Event is delivered to observers after every mutation; Err is nil on success.
type Event struct {
	Op  EventOp
	ID  string
	Err error
}

type Observer func(Event)

// QuoteEdit changes a stored quote in place through the quoting editor
// functions. Returning an error discards the edit.
type QuoteEdit func(q *entities.Quote) error

// Dashboard summarizes the cached quotes.
type Dashboard struct {
	TotalQuotes     int              `json:"totalQuotes"`
	FinalizedQuotes int              `json:"finalizedQuotes"`
	DraftQuotes     int              `json:"draftQuotes"`
	Revenue         float64          `json:"revenue"`
	Recent          []entities.Quote `json:"recent"`
}

// IAppStateUseCase is the collaborator contract of the data layer.
//
// Reads are served from the last loaded snapshot. Mutations write through to the
// record store, reload the affected slice and notify observers.
type IAppStateUseCase interface {
	Init(ctx context.Context) error
	State() State
	Degraded() bool
	Subscribe(o Observer) (unsubscribe func())

	ListCatalog() []entities.CatalogEntry
	GetCatalogEntry(id string) (entities.CatalogEntry, error)
	SearchCatalog(term string) []entities.CatalogEntry
	CatalogByCategory(ctx context.Context, category string) ([]entities.CatalogEntry, error)
	AddCatalogEntry(ctx context.Context, e entities.CatalogEntry) (entities.CatalogEntry, error)
	UpdateCatalogEntry(ctx context.Context, e entities.CatalogEntry) (entities.CatalogEntry, error)
	DeleteCatalogEntry(ctx context.Context, id string) error

	ListQuotes() []entities.Quote
	GetQuote(id string) (entities.Quote, error)
	SearchQuotes(term string) []entities.Quote
	QuotesByStatus(ctx context.Context, status entities.QuoteStatus) ([]entities.Quote, error)
	NewQuoteDraft() entities.Quote
	AddQuote(ctx context.Context, q entities.Quote) (entities.Quote, error)
	UpdateQuote(ctx context.Context, q entities.Quote) (entities.Quote, error)
	EditQuote(ctx context.Context, id string, edit QuoteEdit) (entities.Quote, error)
	FinalizeQuote(ctx context.Context, id string) (entities.Quote, error)
	DeleteQuote(ctx context.Context, id string) error

	GetCompany() entities.Company
	SetCompany(ctx context.Context, c entities.Company) (entities.Company, error)
	GetSettings() entities.Settings
	SetSettings(ctx context.Context, s entities.Settings) (entities.Settings, error)

	Dashboard() Dashboard
	ExportBackup(ctx context.Context) (entities.AppData, error)
	ImportBackup(ctx context.Context, data entities.AppData) error
	BackupFileName() string
}

type snapshot struct {
	company  entities.Company
	settings entities.Settings
	catalog  []entities.CatalogEntry
	quotes   []entities.Quote
}

func defaultSnapshot() snapshot {
	return snapshot{
		company:  entities.DefaultCompany(),
		settings: entities.DefaultSettings(),
		catalog:  []entities.CatalogEntry{},
		quotes:   []entities.Quote{},
	}
}

// AppState is the process-wide cache over the record store.
type AppState struct {
	store   interfaces.IRecordStore
	seq     *SequenceAllocator
	backup  *BackupUseCase
	log     *logrus.Entry
	metrics interfaces.IMetrics
	now     func() time.Time
	newID   func() string

	// mutating serializes mutations so a reload never interleaves with a write.
	mutating sync.Mutex

	mu       sync.RWMutex
	state    State
	degraded bool
	snap     snapshot

	obsMu     sync.Mutex
	nextObsID int
	observers map[int]Observer
}

var _ IAppStateUseCase = (*AppState)(nil)

type AppStateOption func(*AppState)

func WithClock(now func() time.Time) AppStateOption {
	return func(a *AppState) { a.now = now }
}

func WithIDGenerator(newID func() string) AppStateOption {
	return func(a *AppState) { a.newID = newID }
}

func WithMetrics(m interfaces.IMetrics) AppStateOption {
	return func(a *AppState) { a.metrics = m }
}

func NewAppState(store interfaces.IRecordStore, log *logrus.Entry, opts ...AppStateOption) *AppState {
	a := &AppState{
		store:     store,
		log:       log,
		now:       time.Now,
		newID:     uuid.NewString,
		state:     StateUninitialized,
		snap:      defaultSnapshot(),
		observers: map[int]Observer{},
	}
	for _, opt := range opts {
		opt(a)
	}
	a.seq = NewSequenceAllocator(store, a.now)
	a.backup = NewBackupUseCase(store, a.now)
	return a
}

/* Lifecycle */

// Init seeds an empty store and loads every collection. On failure the state
// still becomes ready, serving defaults, and Degraded reports true.
func (a *AppState) Init(ctx context.Context) error {
	a.mutating.Lock()
	defer a.mutating.Unlock()

	a.setState(StateLoading)
	start := a.now()

	err := a.load(ctx)
	if err != nil {
		a.log.WithError(err).Error("initial load failed; serving defaults")
		a.mu.Lock()
		a.snap = defaultSnapshot()
		a.degraded = true
		a.mu.Unlock()
	}
	a.setState(StateReady)
	a.observe(OpInit, start, err)
	a.notify(Event{Op: OpInit, Err: err})
	return err
}

func (a *AppState) load(ctx context.Context) error {
	seeded, err := a.store.SeedIfEmpty(ctx, entities.DefaultAppData())
	if err != nil {
		return err
	}
	if seeded {
		a.log.Info("store seeded with the built-in catalog")
	}
	return a.reloadAll(ctx)
}

func (a *AppState) State() State {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.state
}

func (a *AppState) Degraded() bool {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.degraded
}

func (a *AppState) setState(s State) {
	a.mu.Lock()
	a.state = s
	a.mu.Unlock()
}

// Subscribe registers o for every subsequent Event.
func (a *AppState) Subscribe(o Observer) func() {
	a.obsMu.Lock()
	defer a.obsMu.Unlock()
	id := a.nextObsID
	a.nextObsID++
	a.observers[id] = o
	return func() {
		a.obsMu.Lock()
		delete(a.observers, id)
		a.obsMu.Unlock()
	}
}

func (a *AppState) notify(ev Event) {
	a.obsMu.Lock()
	observers := make([]Observer, 0, len(a.observers))
	for _, o := range a.observers {
		observers = append(observers, o)
	}
	a.obsMu.Unlock()

	for _, o := range observers {
		o(ev)
	}
}

func (a *AppState) observe(op EventOp, start time.Time, err error) {
	if a.metrics != nil {
		a.metrics.ObserveMutation(string(op), a.now().Sub(start), err)
	}
}

// mutate runs fn as one logged, measured and observed mutation.
func (a *AppState) mutate(ctx context.Context, op EventOp, id string, fn func(ctx context.Context) error) error {
	if a.State() != StateReady {
		return ErrStateNotReady
	}

	a.mutating.Lock()
	defer a.mutating.Unlock()

	entry := a.log.WithField("op", op)
	if id != "" {
		entry = entry.WithField("id", id)
	}
	entry.Debug("mutation started")

	start := a.now()
	err := fn(ctx)
	if err != nil {
		entry.WithError(err).Error("mutation failed")
	}
	a.observe(op, start, err)
	a.notify(Event{Op: op, ID: id, Err: err})
	return err
}

/* Reload */

func (a *AppState) reloadAll(ctx context.Context) error {
	if err := a.reloadCatalog(ctx); err != nil {
		return err
	}
	if err := a.reloadQuotes(ctx); err != nil {
		return err
	}
	return a.reloadSingletons(ctx)
}

func (a *AppState) reloadCatalog(ctx context.Context) error {
	catalog, err := a.store.ListCatalog(ctx)
	if err != nil {
		return err
	}
	sort.Slice(catalog, func(i, j int) bool { return catalog[i].ID < catalog[j].ID })

	a.mu.Lock()
	a.snap.catalog = catalog
	a.mu.Unlock()
	a.setSize("catalog", len(catalog))
	return nil
}

func (a *AppState) reloadQuotes(ctx context.Context) error {
	quotes, err := a.store.ListQuotes(ctx)
	if err != nil {
		return err
	}
	quotes = sortQuotes(quotes)

	a.mu.Lock()
	a.snap.quotes = quotes
	a.mu.Unlock()
	a.setSize("quotes", len(quotes))
	return nil
}

func (a *AppState) reloadSingletons(ctx context.Context) error {
	company, err := a.store.GetCompany(ctx, entities.DefaultCompany())
	if err != nil {
		return err
	}
	settings, err := a.store.GetSettings(ctx, entities.DefaultSettings())
	if err != nil {
		return err
	}

	a.mu.Lock()
	a.snap.company = company
	a.snap.settings = settings
	a.mu.Unlock()
	return nil
}

func (a *AppState) setSize(collection string, n int) {
	if a.metrics != nil {
		a.metrics.SetCollectionSize(collection, n)
	}
}

// sortQuotes orders newest first; equal dates fall back to the OS number.
func sortQuotes(quotes []entities.Quote) []entities.Quote {
	if quotes == nil {
		return []entities.Quote{}
	}
	sort.SliceStable(quotes, func(i, j int) bool {
		if quotes[i].Date != quotes[j].Date {
			return quotes[i].Date > quotes[j].Date
		}
		return quotes[i].OSNumber > quotes[j].OSNumber
	})
	return quotes
}

/* Catalog */

func (a *AppState) ListCatalog() []entities.CatalogEntry {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return append([]entities.CatalogEntry{}, a.snap.catalog...)
}

func (a *AppState) GetCatalogEntry(id string) (entities.CatalogEntry, error) {
	id = strings.TrimSpace(id)
	a.mu.RLock()
	defer a.mu.RUnlock()
	for _, e := range a.snap.catalog {
		if e.ID == id {
			return e, nil
		}
	}
	return entities.CatalogEntry{}, ErrCatalogEntryNotFound
}

// SearchCatalog matches term case-insensitively against name, category and subcategory.
func (a *AppState) SearchCatalog(term string) []entities.CatalogEntry {
	term = strings.ToLower(strings.TrimSpace(term))
	all := a.ListCatalog()
	if term == "" {
		return all
	}
	out := make([]entities.CatalogEntry, 0, len(all))
	for _, e := range all {
		if containsFold(term, e.Name, e.Category, e.Subcategory) {
			out = append(out, e)
		}
	}
	return out
}

func (a *AppState) CatalogByCategory(ctx context.Context, category string) ([]entities.CatalogEntry, error) {
	entries, err := a.store.ListCatalogByCategory(ctx, category)
	if err != nil {
		return nil, err
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].ID < entries[j].ID })
	return entries, nil
}

func (a *AppState) AddCatalogEntry(ctx context.Context, e entities.CatalogEntry) (entities.CatalogEntry, error) {
	e = normalizeCatalogEntry(e)
	if e.ID == "" {
		e.ID = a.newID()
	}
	if err := validateCatalogEntry(e); err != nil {
		return entities.CatalogEntry{}, err
	}

	err := a.mutate(ctx, OpAddCatalogEntry, e.ID, func(ctx context.Context) error {
		if err := a.store.InsertCatalogEntry(ctx, e); err != nil {
			return err
		}
		return a.reloadCatalog(ctx)
	})
	if err != nil {
		return entities.CatalogEntry{}, err
	}
	return e, nil
}

func (a *AppState) UpdateCatalogEntry(ctx context.Context, e entities.CatalogEntry) (entities.CatalogEntry, error) {
	e = normalizeCatalogEntry(e)
	if e.ID == "" {
		return entities.CatalogEntry{}, ErrCatalogEntryNotFound
	}
	if err := validateCatalogEntry(e); err != nil {
		return entities.CatalogEntry{}, err
	}

	err := a.mutate(ctx, OpUpdateCatalogEntry, e.ID, func(ctx context.Context) error {
		existing, err := a.store.GetCatalogEntry(ctx, e.ID)
		if err != nil {
			return err
		}
		if existing.ID == "" {
			return ErrCatalogEntryNotFound
		}
		if err := a.store.UpsertCatalogEntry(ctx, e); err != nil {
			return err
		}
		return a.reloadCatalog(ctx)
	})
	if err != nil {
		return entities.CatalogEntry{}, err
	}
	return e, nil
}

// DeleteCatalogEntry removes id. Quotes keep their snapshot of the entry.
func (a *AppState) DeleteCatalogEntry(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	return a.mutate(ctx, OpDeleteCatalogEntry, id, func(ctx context.Context) error {
		if err := a.store.RemoveCatalogEntry(ctx, id); err != nil {
			return err
		}
		return a.reloadCatalog(ctx)
	})
}

func normalizeCatalogEntry(e entities.CatalogEntry) entities.CatalogEntry {
	e.ID = strings.TrimSpace(e.ID)
	e.Name = strings.TrimSpace(e.Name)
	e.Category = strings.TrimSpace(e.Category)
	e.Subcategory = strings.TrimSpace(e.Subcategory)
	e.Unit = strings.TrimSpace(e.Unit)
	return e
}

func validateCatalogEntry(e entities.CatalogEntry) error {
	if e.Name == "" || e.DefaultPrice < 0 {
		return ErrInvalidCatalogEntry
	}
	return nil
}

/* Quotes */

// ListQuotes returns the cached quotes, newest first.
func (a *AppState) ListQuotes() []entities.Quote {
	a.mu.RLock()
	defer a.mu.RUnlock()
	out := make([]entities.Quote, len(a.snap.quotes))
	for i, q := range a.snap.quotes {
		out[i] = q.Clone()
	}
	return out
}

func (a *AppState) GetQuote(id string) (entities.Quote, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Quote{}, ErrInvalidQuoteID
	}
	a.mu.RLock()
	defer a.mu.RUnlock()
	for _, q := range a.snap.quotes {
		if q.ID == id {
			return q.Clone(), nil
		}
	}
	return entities.Quote{}, ErrQuoteNotFound
}

// SearchQuotes matches term case-insensitively against the OS number and client name.
func (a *AppState) SearchQuotes(term string) []entities.Quote {
	term = strings.ToLower(strings.TrimSpace(term))
	all := a.ListQuotes()
	if term == "" {
		return all
	}
	out := make([]entities.Quote, 0, len(all))
	for _, q := range all {
		if containsFold(term, q.OSNumber, q.Client.Name) {
			out = append(out, q)
		}
	}
	return out
}

func (a *AppState) QuotesByStatus(ctx context.Context, status entities.QuoteStatus) ([]entities.Quote, error) {
	quotes, err := a.store.ListQuotesByStatus(ctx, status)
	if err != nil {
		return nil, err
	}
	return sortQuotes(quotes), nil
}

// NewQuoteDraft returns an unsaved draft numbered from the cached counter.
// It does not advance the counter.
func (a *AppState) NewQuoteDraft() entities.Quote {
	settings := a.GetSettings()
	return entities.Quote{
		ID:           a.newID(),
		OSNumber:     a.seq.Preview(settings),
		Date:         quoting.Today(a.now()),
		Items:        []entities.LineItem{},
		Validity:     DefaultValidityDays,
		DiscountType: entities.DiscountAbsolute,
		Status:       entities.QuoteStatusDraft,
	}
}

// AddQuote stores q and then advances the OS counter. Missing id, number, date
// and status are filled in, and totals are recomputed before the write.
//
// If the counter write fails the quote is kept and the counter stays one behind.
func (a *AppState) AddQuote(ctx context.Context, q entities.Quote) (entities.Quote, error) {
	q = a.prepareQuote(q)
	if q.ID == "" {
		q.ID = a.newID()
	}

	err := a.mutate(ctx, OpAddQuote, q.ID, func(ctx context.Context) error {
		if q.OSNumber == "" {
			number, err := a.seq.Current(ctx)
			if err != nil {
				return err
			}
			q.OSNumber = number
		}
		if q.IsFinalized() {
			if err := quoting.ValidateForFinalize(q); err != nil {
				return err
			}
		}

		if err := a.store.InsertQuote(ctx, q); err != nil {
			return err
		}
		_, commitErr := a.seq.Commit(ctx)

		reloadErr := a.reloadQuotes(ctx)
		if err := a.reloadSingletons(ctx); reloadErr == nil {
			reloadErr = err
		}
		if commitErr != nil {
			return commitErr
		}
		return reloadErr
	})
	if err != nil {
		return entities.Quote{}, err
	}
	return q, nil
}

// UpdateQuote replaces a stored quote. A finalized quote stays finalized and
// must keep passing finalize validation.
func (a *AppState) UpdateQuote(ctx context.Context, q entities.Quote) (entities.Quote, error) {
	q = a.prepareQuote(q)
	if q.ID == "" {
		return entities.Quote{}, ErrInvalidQuoteID
	}

	err := a.mutate(ctx, OpUpdateQuote, q.ID, func(ctx context.Context) error {
		existing, err := a.store.GetQuote(ctx, q.ID)
		if err != nil {
			return err
		}
		if existing.ID == "" {
			return ErrQuoteNotFound
		}
		if existing.IsFinalized() {
			q.Status = entities.QuoteStatusFinalized
		}
		if q.OSNumber == "" {
			q.OSNumber = existing.OSNumber
		}
		if q.IsFinalized() {
			if err := quoting.ValidateForFinalize(q); err != nil {
				return err
			}
		}
		if err := a.store.UpsertQuote(ctx, q); err != nil {
			return err
		}
		return a.reloadQuotes(ctx)
	})
	if err != nil {
		return entities.Quote{}, err
	}
	return q, nil
}

// EditQuote applies edit to the stored quote and writes it back with fresh
// totals. A finalized quote must still pass finalize validation afterwards.
func (a *AppState) EditQuote(ctx context.Context, id string, edit QuoteEdit) (entities.Quote, error) {
	id = strings.TrimSpace(id)
	if id == "" || edit == nil {
		return entities.Quote{}, ErrInvalidQuoteID
	}

	var out entities.Quote
	err := a.mutate(ctx, OpEditQuote, id, func(ctx context.Context) error {
		existing, err := a.store.GetQuote(ctx, id)
		if err != nil {
			return err
		}
		if existing.ID == "" {
			return ErrQuoteNotFound
		}

		q := existing.Clone()
		if err := edit(&q); err != nil {
			return err
		}
		q.ID, q.OSNumber, q.Status = existing.ID, existing.OSNumber, existing.Status
		quoting.Recalculate(&q)
		if q.IsFinalized() {
			if err := quoting.ValidateForFinalize(q); err != nil {
				return err
			}
		}
		if err := a.store.UpsertQuote(ctx, q); err != nil {
			return err
		}
		out = q
		return a.reloadQuotes(ctx)
	})
	if err != nil {
		return entities.Quote{}, err
	}
	return out, nil
}

// FinalizeQuote validates the stored quote and moves it from draft to finalized.
// Finalizing an already finalized quote returns it unchanged.
func (a *AppState) FinalizeQuote(ctx context.Context, id string) (entities.Quote, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Quote{}, ErrInvalidQuoteID
	}

	var out entities.Quote
	err := a.mutate(ctx, OpFinalizeQuote, id, func(ctx context.Context) error {
		q, err := a.store.GetQuote(ctx, id)
		if err != nil {
			return err
		}
		if q.ID == "" {
			return ErrQuoteNotFound
		}
		if q.IsFinalized() {
			out = q
			return nil
		}

		quoting.Recalculate(&q)
		if err := quoting.ValidateForFinalize(q); err != nil {
			return err
		}
		q.Status = entities.QuoteStatusFinalized
		if err := a.store.UpsertQuote(ctx, q); err != nil {
			return err
		}
		out = q
		return a.reloadQuotes(ctx)
	})
	if err != nil {
		return entities.Quote{}, err
	}
	return out, nil
}

func (a *AppState) DeleteQuote(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidQuoteID
	}
	return a.mutate(ctx, OpDeleteQuote, id, func(ctx context.Context) error {
		if err := a.store.RemoveQuote(ctx, id); err != nil {
			return err
		}
		return a.reloadQuotes(ctx)
	})
}

// prepareQuote fills defaults and recomputes totals; it never touches the store.
func (a *AppState) prepareQuote(q entities.Quote) entities.Quote {
	q = q.Clone()
	q.ID = strings.TrimSpace(q.ID)
	q.OSNumber = strings.TrimSpace(q.OSNumber)
	if q.Items == nil {
		q.Items = []entities.LineItem{}
	}
	if strings.TrimSpace(q.Date) == "" {
		q.Date = quoting.Today(a.now())
	}
	if q.Status == "" {
		q.Status = entities.QuoteStatusDraft
	}
	if q.DiscountType == "" {
		q.DiscountType = entities.DiscountAbsolute
	}
	if q.Validity <= 0 {
		q.Validity = DefaultValidityDays
	}
	quoting.Recalculate(&q)
	return q
}

/* Singletons */

func (a *AppState) GetCompany() entities.Company {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.snap.company
}

// SetCompany overwrites the company profile wholesale.
func (a *AppState) SetCompany(ctx context.Context, c entities.Company) (entities.Company, error) {
	err := a.mutate(ctx, OpSetCompany, entities.CompanyKey, func(ctx context.Context) error {
		if err := a.store.PutCompany(ctx, c); err != nil {
			return err
		}
		return a.reloadSingletons(ctx)
	})
	if err != nil {
		return entities.Company{}, err
	}
	return c, nil
}

func (a *AppState) GetSettings() entities.Settings {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.snap.settings
}

func (a *AppState) SetSettings(ctx context.Context, s entities.Settings) (entities.Settings, error) {
	if s.NextOsSequence < 1 {
		return entities.Settings{}, ErrInvalidSettings
	}
	if strings.TrimSpace(s.Currency) == "" {
		s.Currency = entities.DefaultSettings().Currency
	}
	if strings.TrimSpace(s.PDFTemplate) == "" {
		s.PDFTemplate = entities.DefaultSettings().PDFTemplate
	}

	err := a.mutate(ctx, OpSetSettings, entities.SettingsKey, func(ctx context.Context) error {
		if err := a.store.PutSettings(ctx, s); err != nil {
			return err
		}
		return a.reloadSingletons(ctx)
	})
	if err != nil {
		return entities.Settings{}, err
	}
	return s, nil
}

/* Dashboard and backup */

func (a *AppState) Dashboard() Dashboard {
	quotes := a.ListQuotes()
	d := Dashboard{TotalQuotes: len(quotes), Recent: []entities.Quote{}}
	for _, q := range quotes {
		if q.IsFinalized() {
			d.FinalizedQuotes++
			d.Revenue += q.Total
		} else {
			d.DraftQuotes++
		}
	}
	if len(quotes) > recentQuotes {
		quotes = quotes[:recentQuotes]
	}
	d.Recent = append(d.Recent, quotes...)
	return d
}

func (a *AppState) ExportBackup(ctx context.Context) (entities.AppData, error) {
	return a.backup.Export(ctx)
}

// ImportBackup replaces the store contents and reloads every collection.
// A malformed document leaves store and cache untouched.
func (a *AppState) ImportBackup(ctx context.Context, data entities.AppData) error {
	return a.mutate(ctx, OpImportBackup, "", func(ctx context.Context) error {
		if err := a.backup.Import(ctx, data); err != nil {
			return err
		}
		if err := a.reloadAll(ctx); err != nil {
			return err
		}
		a.mu.Lock()
		a.degraded = false
		a.mu.Unlock()
		return nil
	})
}

func (a *AppState) BackupFileName() string {
	return a.backup.BackupFileName()
}

func containsFold(term string, fields ...string) bool {
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), term) {
			return true
		}
	}
	return false
}
