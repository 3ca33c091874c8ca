package service

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/mvpathlete/athlete/internal/catalog"
	"github.com/mvpathlete/athlete/internal/ledger"
	"github.com/mvpathlete/athlete/internal/model"
	"github.com/mvpathlete/athlete/internal/store"
)

// Storage keys, one ledger each.
const (
	KeyWeightLogs  = "weightLogs"
	KeyFoodLogs    = "foodLogs"
	KeyRollJournal = "rollJournal"
)

var LedgerKeys = []string{KeyWeightLogs, KeyFoodLogs, KeyRollJournal}

// Tracker owns the three ledgers and the nutrition catalog for one session.
type Tracker struct {
	Weights *ledger.Ledger[model.WeightRecord]
	Foods   *ledger.Ledger[model.FoodRecord]
	Rolls   *ledger.Ledger[model.RollRecord]

	catalog *catalog.Holder
	log     zerolog.Logger
	now     func() time.Time
	newID   func() string
}

type Option func(*Tracker)

func WithClock(now func() time.Time) Option {
	return func(t *Tracker) { t.now = now }
}

func WithIDs(newID func() string) Option {
	return func(t *Tracker) { t.newID = newID }
}

// NewTracker loads every ledger from kv. holder may still be loading.
func NewTracker(kv store.KV, holder *catalog.Holder, log zerolog.Logger, opts ...Option) *Tracker {
	if holder == nil {
		holder = catalog.ReadyHolder(catalog.Empty())
	}
	t := &Tracker{
		Weights: ledger.Open[model.WeightRecord](kv, KeyWeightLogs, log),
		Foods:   ledger.Open[model.FoodRecord](kv, KeyFoodLogs, log),
		Rolls:   ledger.Open[model.RollRecord](kv, KeyRollJournal, log),
		catalog: holder,
		log:     log,
		now:     time.Now,
		newID:   uuid.NewString,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

func (t *Tracker) Today() string {
	return FormatDate(t.now())
}

// Catalog is the current nutrition table; empty while loading or after a
// failed load.
func (t *Tracker) Catalog() *catalog.Catalog {
	return t.catalog.Catalog()
}

func (t *Tracker) CatalogState() catalog.State {
	return t.catalog.State()
}

func (t *Tracker) AddWeight(weightText, notes string) (model.WeightRecord, error) {
	w, err := parsePositiveNumber("weight", weightText)
	if err != nil {
		return model.WeightRecord{}, err
	}
	rec := model.WeightRecord{
		ID:        t.newID(),
		Date:      t.Today(),
		WeightLbs: w,
		Notes:     strings.TrimSpace(notes),
	}
	_, err = t.Weights.Append(rec)
	return rec, t.storageWarning(err)
}

func (t *Tracker) AddFood(name, quantityText, notes string) (model.FoodRecord, error) {
	rec, err := ComputeFoodEntry(name, quantityText, notes, t.Catalog(), t.Today())
	if err != nil {
		if errors.Is(err, ErrNotFound) && t.CatalogState() != catalog.StateReady {
			t.log.Warn().Str("catalog_state", t.CatalogState().String()).Msg("nutrition catalog not available; food lookups will miss")
		}
		return model.FoodRecord{}, err
	}
	rec.ID = t.newID()
	_, err = t.Foods.Append(rec)
	return rec, t.storageWarning(err)
}

func (t *Tracker) AddRoll(partner, durationText, focus, notes string) (model.RollRecord, error) {
	partner = strings.TrimSpace(partner)
	if partner == "" {
		return model.RollRecord{}, invalid("partner", "is required")
	}
	minutes, err := parseOptionalMinutes("duration", durationText)
	if err != nil {
		return model.RollRecord{}, err
	}
	rec := model.RollRecord{
		ID:              t.newID(),
		Date:            t.Today(),
		Partner:         partner,
		DurationMinutes: minutes,
		Focus:           strings.TrimSpace(focus),
		Notes:           strings.TrimSpace(notes),
	}
	_, err = t.Rolls.Append(rec)
	return rec, t.storageWarning(err)
}

// ClearLogs empties the weight and food ledgers. The roll journal is kept.
func (t *Tracker) ClearLogs() error {
	err := errors.Join(t.Weights.Clear(), t.Foods.Clear())
	return t.storageWarning(err)
}

func (t *Tracker) Suggest(query string, limit int) []string {
	return t.Catalog().Suggest(query, limit)
}

func (t *Tracker) Lookup(name string) (model.NutritionFact, error) {
	fact, ok := t.Catalog().Lookup(name)
	if !ok {
		return model.NutritionFact{}, ErrNotFound
	}
	return fact, nil
}

// TodayStatus reports today's food entries and their macro totals.
func (t *Tracker) TodayStatus() TodayStatus {
	date := t.Today()
	foods := t.Foods.Items()
	return TodayStatus{
		Date:    date,
		Totals:  TotalsFor(date, foods),
		Entries: foodsOn(date, foods),
	}
}

func (t *Tracker) storageWarning(err error) error {
	if err == nil {
		return nil
	}
	t.log.Warn().Err(err).Msg("could not persist ledger; keeping in-memory state")
	return err
}
