package sim

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/demmerichs/trading-strategies/internal/market"
	"github.com/demmerichs/trading-strategies/internal/strategy"
)

func flatMarket(t *testing.T) *Market {
	t.Helper()
	m, err := New(
		[]strategy.Strategy{strategy.PassiveHolder{}, strategy.FullyInvested{}},
		mustSchedule(t, 500, 5, 5),
		market.IdentityModel{},
		4,
	)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return m
}

func TestRunnerYearlyLedger(t *testing.T) {
	runner, err := NewRunner(flatMarket(t), 5)
	if err != nil {
		t.Fatalf("NewRunner: %v", err)
	}

	rows := runner.Run(3)
	if len(rows) != 3 {
		t.Fatalf("got %d rows, want 3", len(rows))
	}
	if runner.Market().TickCount() != 15 {
		t.Fatalf("tick count = %d, want 15", runner.Market().TickCount())
	}

	for i, row := range rows {
		if row.Year != i+1 {
			t.Fatalf("row %d year = %d, want %d", i, row.Year, i+1)
		}
		if row.MeanMarketValue != 1 {
			t.Fatalf("year %d market value = %v, want 1", row.Year, row.MeanMarketValue)
		}
		if len(row.Agents) != 2 {
			t.Fatalf("year %d has %d agents, want 2", row.Year, len(row.Agents))
		}
		if len(row.Pairwise) != 1 {
			t.Fatalf("year %d has %d pairwise entries, want 1", row.Year, len(row.Pairwise))
		}

		wantCash := 500.0 * float64(i+1)
		passive := row.Agents[0]
		if passive.Strategy != "passive-holder" || passive.Portfolio.Cash != wantCash {
			t.Fatalf("year %d passive snapshot = %+v", row.Year, passive)
		}
	}
}

func TestRunnerSummarize(t *testing.T) {
	runner, err := NewRunner(flatMarket(t), 5)
	if err != nil {
		t.Fatalf("NewRunner: %v", err)
	}
	ledger := runner.Run(2)
	res := runner.Summarize(ledger)

	if res.FinalMeanMarketValue != 1 {
		t.Fatalf("final market value = %v, want 1", res.FinalMeanMarketValue)
	}
	if len(res.FinalPortfolios) != 2 || len(res.Rankings) != 2 || len(res.Distributions) != 2 {
		t.Fatalf("unexpected summary shape: %+v", res)
	}
	// Flat market: both strategies end with the same total value per lane,
	// so all pairwise lanes are ties.
	if w := res.Pairwise[0]; w.AWins != 0 || w.BWins != 0 {
		t.Fatalf("expected all ties, got %+v", w)
	}
}

func TestRunnerRejectsBadInputs(t *testing.T) {
	if _, err := NewRunner(nil, 5); err == nil {
		t.Fatalf("expected error for nil market")
	}
	if _, err := NewRunner(flatMarket(t), 0); err == nil {
		t.Fatalf("expected error for zero ticksPerYear")
	}
}

func TestWriteLedgerCSV(t *testing.T) {
	runner, err := NewRunner(flatMarket(t), 5)
	if err != nil {
		t.Fatalf("NewRunner: %v", err)
	}
	rows := runner.Run(2)

	path := filepath.Join(t.TempDir(), "ledger.csv")
	if err := WriteLedgerCSV(path, rows); err != nil {
		t.Fatalf("WriteLedgerCSV: %v", err)
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(string(raw)), "\n")
	// Header plus one row per (year, agent): 1 + 2*2.
	if len(lines) != 5 {
		t.Fatalf("got %d lines, want 5", len(lines))
	}
	if lines[0] != "year,mean_market_value,strategy,cash,depot,total_value" {
		t.Fatalf("unexpected header: %s", lines[0])
	}
	if !strings.HasPrefix(lines[1], "1,") || !strings.Contains(lines[1], "passive-holder") {
		t.Fatalf("unexpected first row: %s", lines[1])
	}
}
