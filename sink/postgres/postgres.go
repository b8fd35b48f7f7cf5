// Package postgres persists an efd.Result's three output tables to
// PostgreSQL, grounded in library.Library's pgxpool connection-holder
// shape and data/eod.go's batched upsert-by-natural-key pattern.
package postgres

import (
	"context"
	"embed"
	"fmt"

	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog/log"

	"github.com/efdtools/efd-pis-cofins/aggregate"
	"github.com/efdtools/efd-pis-cofins/efd"
	"github.com/efdtools/efd-pis-cofins/fiscal"
)

//go:embed migrations/*
var migrationFS embed.FS

// Sink holds the connection pool used to persist ingestion results.
type Sink struct {
	Pool *pgxpool.Pool
}

// Connect opens a pool against dbURL. Callers own Close.
func Connect(ctx context.Context, dbURL string) (*Sink, error) {
	pool, err := pgxpool.New(ctx, dbURL)
	if err != nil {
		return nil, err
	}
	return &Sink{Pool: pool}, nil
}

func (s *Sink) Close() {
	s.Pool.Close()
}

// Migrate applies every embedded migration to the database at dbURL.
func Migrate(dbURL string) error {
	dir, err := iofs.New(migrationFS, "migrations")
	if err != nil {
		return err
	}
	m, err := migrate.NewWithSourceInstance("iofs", dir, dbURL)
	if err != nil {
		return err
	}
	if err := m.Up(); err != nil && err != migrate.ErrNoChange {
		return err
	}
	return nil
}

// Save upserts every table in result, each in its own batched transaction.
func (s *Sink) Save(ctx context.Context, result *efd.Result) error {
	if err := s.saveLines(ctx, result.Lines); err != nil {
		return fmt.Errorf("saving fiscal lines: %w", err)
	}
	if err := s.saveCredit(ctx, result.Credit); err != nil {
		return fmt.Errorf("saving credit reduction: %w", err)
	}
	if err := s.saveRevenue(ctx, result.Revenue); err != nil {
		return fmt.Errorf("saving revenue segregation: %w", err)
	}
	return nil
}

func (s *Sink) saveLines(ctx context.Context, lines []*fiscal.Line) error {
	batch := &pgx.Batch{}
	const sql = `INSERT INTO fiscal_line (
		cnpj, year, quarter, month, operation_type, cst, cfop, nature,
		credit_type, registro, valor_item, valor_bc, valor_pis, valor_cofins,
		file, file_line
	) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16)
	ON CONFLICT ON CONSTRAINT fiscal_line_pkey DO UPDATE SET
		valor_item = EXCLUDED.valor_item, valor_bc = EXCLUDED.valor_bc,
		valor_pis = EXCLUDED.valor_pis, valor_cofins = EXCLUDED.valor_cofins`

	for _, l := range lines {
		batch.Queue(sql,
			l.EstabelecimentoCNPJ, l.Year, l.Quarter, l.Month, l.OperationType,
			l.CST, l.CFOP, l.Nature, l.CreditType, l.Registro,
			l.ValorItem.String(), l.ValorBC.String(), l.ValorPIS.String(), l.ValorCOFINS.String(),
			l.File, l.FileLine)
	}
	return s.runBatch(ctx, batch)
}

func (s *Sink) saveCredit(ctx context.Context, rows []aggregate.Row) error {
	batch := &pgx.Batch{}
	const sql = `INSERT INTO credit_reduction (
		cnpj_base, year, quarter, month, operation_type, credit_type, cst,
		cfop, nature, valor_item, valor_bc, rbnc_trib, rbnc_ntrib, rbnc_exp, rb_cum
	) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15)
	ON CONFLICT ON CONSTRAINT credit_reduction_pkey DO UPDATE SET
		valor_item = EXCLUDED.valor_item, valor_bc = EXCLUDED.valor_bc,
		rbnc_trib = EXCLUDED.rbnc_trib, rbnc_ntrib = EXCLUDED.rbnc_ntrib,
		rbnc_exp = EXCLUDED.rbnc_exp, rb_cum = EXCLUDED.rb_cum`

	for _, r := range rows {
		batch.Queue(sql,
			r.Key.CNPJBase, r.Key.Year, r.Key.Quarter, r.Key.Month, r.Key.OperationType,
			r.Key.CreditType, r.Key.CST, r.Key.CFOP, r.Key.Nature,
			r.Value.ValorItem.String(), r.Value.ValorBC.String(), r.Value.RBNCTrib.String(),
			r.Value.RBNCNTrib.String(), r.Value.RBNCExp.String(), r.Value.RBCum.String())
	}
	return s.runBatch(ctx, batch)
}

func (s *Sink) saveRevenue(ctx context.Context, revenue map[aggregate.PeriodKey]aggregate.RevenueValue) error {
	batch := &pgx.Batch{}
	const sql = `INSERT INTO revenue_segregation (
		cnpj_base, year, quarter, month, bucket, value, percentage
	) VALUES ($1,$2,$3,$4,$5,$6,$7)
	ON CONFLICT ON CONSTRAINT revenue_segregation_pkey DO UPDATE SET
		value = EXCLUDED.value, percentage = EXCLUDED.percentage`

	for k, v := range revenue {
		batch.Queue(sql, k.CNPJBase, k.Year, k.Quarter, k.Month, int(k.Bucket), v.Value.String(), v.Percentage.String())
	}
	return s.runBatch(ctx, batch)
}

func (s *Sink) runBatch(ctx context.Context, batch *pgx.Batch) error {
	if batch.Len() == 0 {
		return nil
	}
	br := s.Pool.SendBatch(ctx, batch)
	defer br.Close()

	for i := 0; i < batch.Len(); i++ {
		if _, err := br.Exec(); err != nil {
			log.Error().Err(err).Int("BatchIndex", i).Msg("batch insert failed")
			return err
		}
	}
	return nil
}

// CreditSummaryRow is one row of LoadCreditSummary's report: the total
// credit base already persisted for one CNPJ base and month. Nothing in
// cmd/efd calls LoadCreditSummary.
type CreditSummaryRow struct {
	CNPJBase string `db:"cnpj_base"`
	Year     int    `db:"year"`
	Quarter  int    `db:"quarter"`
	Month    int    `db:"month"`
	ValorBC  string `db:"valor_bc"`
}

// LoadCreditSummary reads back the persisted credit-reduction rows for one
// CNPJ base and year, summing valor_bc per quarter and month.
func (s *Sink) LoadCreditSummary(ctx context.Context, cnpjBase string, year int) ([]CreditSummaryRow, error) {
	var rows []CreditSummaryRow
	err := pgxscan.Select(ctx, s.Pool, &rows,
		`SELECT cnpj_base, year, quarter, month, SUM(valor_bc)::text AS valor_bc
		 FROM credit_reduction
		 WHERE cnpj_base = $1 AND year = $2
		 GROUP BY cnpj_base, year, quarter, month
		 ORDER BY quarter, month`,
		cnpjBase, year)
	return rows, err
}
