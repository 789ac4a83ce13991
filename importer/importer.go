// Package importer normalizes tabular files into dashboard records.
//
// A file is decoded into rows (CSV or XLSX), each row is coerced by the Schema of its kind
// and rows rejected by a rule are dropped silently. Only the number of accepted rows, or
// ErrNoValidRows, is reported.
package importer

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/etnz/wealthguard"
	"github.com/etnz/wealthguard/period"
	"github.com/rs/zerolog"
)

var (
	// ErrNoProperty is returned by income and expense imports when no property is registered.
	ErrNoProperty = errors.New("no property registered")
	// ErrNoValidRows is returned when every row was rejected.
	ErrNoValidRows = errors.New("no valid rows found")
	// ErrProcessing wraps decoding failures.
	ErrProcessing = errors.New("processing failed")
)

// Result holds the accepted records of an import.
type Result[T any] struct {
	Accepted int `json:"accepted"`
	Records  []T `json:"-"`
}

// Properties gives access to the property that incomes and expenses are stamped with.
type Properties interface {
	ActiveProperty() (wealthguard.Property, bool)
}

// Importer normalizes files against a set of instruments.
type Importer struct {
	Instruments wealthguard.Instruments
	// Now is the clock used to date transactions without fecha. Defaults to time.Now.
	Now    func() time.Time
	Logger zerolog.Logger
}

// New returns an importer for instruments.
func New(instruments wealthguard.Instruments, logger zerolog.Logger) *Importer {
	return &Importer{
		Instruments: instruments,
		Now:         time.Now,
		Logger:      logger.With().Str("component", "importer").Logger(),
	}
}

func (im *Importer) now() time.Time {
	if im.Now == nil {
		return time.Now()
	}
	return im.Now()
}

// apply decodes the payload and returns the coerced values of every accepted row.
func (im *Importer) apply(schema Schema, name string, r io.Reader) ([]Values, error) {
	rows, err := Decode(name, r)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %w", ErrProcessing, name, err)
	}
	var accepted []Values
	for i, row := range rows {
		values, ok := schema.Apply(row, im.Instruments)
		if !ok {
			im.Logger.Debug().Str("file", name).Int("row", i+2).Msg("row rejected")
			continue
		}
		accepted = append(accepted, values)
	}
	if len(accepted) == 0 {
		return nil, fmt.Errorf("%q: %w", name, ErrNoValidRows)
	}
	im.Logger.Info().Str("file", name).Str("kind", string(schema.Kind)).
		Int("rows", len(rows)).Int("accepted", len(accepted)).Msg("file normalized")
	return accepted, nil
}

// Transactions normalizes a transaction file. Rows without a known instrument or without
// an amount are dropped.
func (im *Importer) Transactions(name string, r io.Reader) (Result[wealthguard.Transaction], error) {
	values, err := im.apply(TransactionSchema, name, r)
	if err != nil {
		return Result[wealthguard.Transaction]{}, err
	}
	month := period.Key(im.now())
	txs := make([]wealthguard.Transaction, 0, len(values))
	for _, v := range values {
		date := v["fecha"].Text
		if date == "" {
			date = month
		}
		txs = append(txs, wealthguard.Transaction{
			Date:   date,
			ETF:    v["etf"].Text,
			Amount: v["cantidad"].Number,
			Shares: v["participaciones"].Number,
			Price:  v["precio"].Number,
		})
	}
	return Result[wealthguard.Transaction]{Accepted: len(txs), Records: txs}, nil
}

// Incomes normalizes an income file for the active property of props.
func (im *Importer) Incomes(props Properties, name string, r io.Reader) (Result[wealthguard.PropertyIncome], error) {
	p, ok := props.ActiveProperty()
	if !ok {
		return Result[wealthguard.PropertyIncome]{}, ErrNoProperty
	}
	values, err := im.apply(IncomeSchema, name, r)
	if err != nil {
		return Result[wealthguard.PropertyIncome]{}, err
	}
	incomes := make([]wealthguard.PropertyIncome, 0, len(values))
	for _, v := range values {
		incomes = append(incomes, wealthguard.PropertyIncome{
			PropertyID: p.ID,
			Date:       v["fecha"].Text,
			Amount:     v["monto"].Number,
			Concept:    v["concepto"].Text,
			Tenant:     v["inquilino"].Text,
		})
	}
	return Result[wealthguard.PropertyIncome]{Accepted: len(incomes), Records: incomes}, nil
}

// Expenses normalizes an expense file for the active property of props.
func (im *Importer) Expenses(props Properties, name string, r io.Reader) (Result[wealthguard.PropertyExpense], error) {
	p, ok := props.ActiveProperty()
	if !ok {
		return Result[wealthguard.PropertyExpense]{}, ErrNoProperty
	}
	values, err := im.apply(ExpenseSchema, name, r)
	if err != nil {
		return Result[wealthguard.PropertyExpense]{}, err
	}
	expenses := make([]wealthguard.PropertyExpense, 0, len(values))
	for _, v := range values {
		expenses = append(expenses, wealthguard.PropertyExpense{
			PropertyID: p.ID,
			Date:       v["fecha"].Text,
			Amount:     v["monto"].Number,
			Category:   wealthguard.ExpenseCategory(v["categoria"].Text),
			Concept:    v["concepto"].Text,
		})
	}
	return Result[wealthguard.PropertyExpense]{Accepted: len(expenses), Records: expenses}, nil
}

// Store is where ImportInto appends the normalized records.
type Store interface {
	Properties
	AddTransactions(ctx context.Context, txs []wealthguard.Transaction) ([]wealthguard.Transaction, error)
	AddIncomes(ctx context.Context, incomes []wealthguard.PropertyIncome) ([]wealthguard.PropertyIncome, error)
	AddExpenses(ctx context.Context, expenses []wealthguard.PropertyExpense) ([]wealthguard.PropertyExpense, error)
}

// ParseKind returns the kind named s.
func ParseKind(s string) (Kind, error) {
	switch k := Kind(s); k {
	case TransactionKind, IncomeKind, ExpenseKind:
		return k, nil
	}
	return "", fmt.Errorf("unknown import kind %q, want one of %s, %s or %s", s, TransactionKind, IncomeKind, ExpenseKind)
}

// ImportInto normalizes the file and appends the records to st. It returns the number of
// records appended.
func (im *Importer) ImportInto(ctx context.Context, st Store, kind Kind, name string, r io.Reader) (int, error) {
	switch kind {
	case TransactionKind:
		res, err := im.Transactions(name, r)
		if err != nil {
			return 0, err
		}
		if _, err := st.AddTransactions(ctx, res.Records); err != nil {
			return 0, err
		}
		return res.Accepted, nil
	case IncomeKind:
		res, err := im.Incomes(st, name, r)
		if err != nil {
			return 0, err
		}
		if _, err := st.AddIncomes(ctx, res.Records); err != nil {
			return 0, err
		}
		return res.Accepted, nil
	case ExpenseKind:
		res, err := im.Expenses(st, name, r)
		if err != nil {
			return 0, err
		}
		if _, err := st.AddExpenses(ctx, res.Records); err != nil {
			return 0, err
		}
		return res.Accepted, nil
	default:
		return 0, fmt.Errorf("unknown import kind %q", kind)
	}
}
