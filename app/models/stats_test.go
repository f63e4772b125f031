package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStudentUnpaid(t *testing.T) {
	s := &Student{
		TotalFee: 1000,
		Payments: []Payment{{Amount: 300}, {Amount: 200}},
	}
	assert.Equal(t, 500.0, s.Unpaid())
}

func TestStudentUnpaidNoPayments(t *testing.T) {
	s := &Student{TotalFee: 750}
	assert.Equal(t, 750.0, s.Unpaid())
}

func TestStudentUnpaidOverpaymentNotClamped(t *testing.T) {
	s := &Student{
		TotalFee: 100,
		Payments: []Payment{{Amount: 150}},
	}
	assert.Equal(t, -50.0, s.Unpaid())
}

func TestBuildClassStats(t *testing.T) {
	students := []*Student{
		{Name: "A", Class: "5", TotalFee: 1000, Payments: []Payment{{Amount: 400}}},
		{Name: "B", Class: "5", TotalFee: 500, Payments: []Payment{{Amount: 500}}},
		{Name: "C", Class: "6", TotalFee: 800},
	}

	stats := BuildClassStats(students)

	assert.Len(t, stats, 2)
	assert.Equal(t, "5", stats[0].Class)
	assert.Equal(t, 1500.0, stats[0].ClassTotal)
	assert.Equal(t, 900.0, stats[0].Collected)
	assert.Equal(t, 600.0, stats[0].Outstanding)
	assert.Equal(t, 2, stats[0].StudentsCount)

	assert.Equal(t, "6", stats[1].Class)
	assert.Equal(t, 0.0, stats[1].Collected)
	assert.Equal(t, 800.0, stats[1].Outstanding)
	assert.Equal(t, 1, stats[1].StudentsCount)
}

// Global collected must equal the sum of per-class collected values no
// matter how students are partitioned into classes.
func TestTotalsMatchPerClassSums(t *testing.T) {
	students := []*Student{
		{Class: "5", TotalFee: 1000, Payments: []Payment{{Amount: 300}, {Amount: 200}}},
		{Class: "6", TotalFee: 500, Payments: []Payment{{Amount: 600}}},
		{Class: "5", TotalFee: 200},
		{Class: "7", TotalFee: 0, Payments: []Payment{{Amount: 50}}},
		{Class: "6", TotalFee: 900, Payments: []Payment{{Amount: 900}}},
	}

	stats := BuildClassStats(students)
	collected, outstanding := Totals(stats)

	var wantCollected, wantOutstanding float64
	for _, cs := range stats {
		wantCollected += cs.Collected
		wantOutstanding += cs.Outstanding
	}
	assert.Equal(t, wantCollected, collected)
	assert.Equal(t, wantOutstanding, outstanding)

	var paidSum, unpaidSum float64
	for _, s := range students {
		paidSum += s.Paid()
		unpaidSum += s.Unpaid()
	}
	assert.InDelta(t, paidSum, collected, 1e-9)
	assert.InDelta(t, unpaidSum, outstanding, 1e-9)
}

func TestBuildClassSeries(t *testing.T) {
	stats := []ClassStats{
		{Class: "5", Collected: 900, Outstanding: 600},
		{Class: "6", Collected: 100, Outstanding: 700},
	}

	series := BuildClassSeries(stats)

	assert.Equal(t, []string{"5", "6"}, series.Labels)
	assert.Equal(t, []float64{900, 100}, series.Collected)
	assert.Equal(t, []float64{600, 700}, series.Outstanding)
}

func TestBuildClassStatsEmpty(t *testing.T) {
	stats := BuildClassStats(nil)
	assert.Empty(t, stats)

	collected, outstanding := Totals(stats)
	assert.Zero(t, collected)
	assert.Zero(t, outstanding)
}
