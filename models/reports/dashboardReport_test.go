package reports

import (
	"testing"
	"time"

	"github.com/aakashreddy12/CRMA/models"
	"github.com/shopspring/decimal"
)

func dashProject(id int, name, customer, status, stage string, proposal int64, start time.Time) *models.Project {
	s := start
	return &models.Project{
		ID:             id,
		Name:           name,
		CustomerName:   customer,
		Status:         status,
		CurrentStage:   stage,
		ProposalAmount: decimal.NewFromInt(proposal),
		StartDate:      &s,
		CreatedAt:      s,
	}
}

func TestComputeDashboard_StatsGlobalTableYearFiltered(t *testing.T) {
	now := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	projects := []*models.Project{
		dashProject(1, "P1", "Alice", "Active", "Proposal", 100, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)),
		dashProject(2, "P2", "Bob", "completed", "Completed", 200, time.Date(2023, 12, 1, 0, 0, 0, 0, time.UTC)),
	}

	resp := ComputeDashboard(projects, 2024, models.SortByDate, models.SortOrderAsc, now)

	if resp.Stats.ActiveProjects != 1 {
		t.Fatalf("active count expected 1, got %d", resp.Stats.ActiveProjects)
	}
	if resp.Stats.CompletedProjects != 1 {
		t.Fatalf("completed count expected 1, got %d", resp.Stats.CompletedProjects)
	}
	if !resp.Stats.TotalRevenue.Equal(decimal.NewFromInt(300)) {
		t.Fatalf("total revenue expected 300, got %s", resp.Stats.TotalRevenue)
	}
	if resp.Stats.UniqueCustomers != 2 {
		t.Fatalf("unique customers expected 2, got %d", resp.Stats.UniqueCustomers)
	}
	if len(resp.Projects) != 1 || resp.Projects[0].ID != 1 {
		t.Fatalf("year-filtered table expected only project 1, got %+v", resp.Projects)
	}
	// March bucket of the trend picks up the active 2024 project.
	if resp.MonthlyTrend[2] != 1 {
		t.Fatalf("march trend bucket expected 1, got %d", resp.MonthlyTrend[2])
	}
}

func TestComputeDashboard_UniqueCustomersCaseInsensitive(t *testing.T) {
	now := time.Now()
	projects := []*models.Project{
		dashProject(1, "P1", "Alice", "Active", "Proposal", 10, now),
		dashProject(2, "P2", "ALICE", "Active", "Proposal", 10, now),
		dashProject(3, "P3", " alice ", "Active", "Proposal", 10, now),
	}
	resp := ComputeDashboard(projects, now.Year(), models.SortByDate, models.SortOrderAsc, now)
	if resp.Stats.UniqueCustomers != 1 {
		t.Fatalf("unique customers expected 1, got %d", resp.Stats.UniqueCustomers)
	}
}

func TestComputeDashboard_BlankCustomerNameNotCounted(t *testing.T) {
	now := time.Now()
	projects := []*models.Project{
		dashProject(1, "P1", "Alice", "Active", "Proposal", 10, now),
		dashProject(2, "P2", "", "Active", "Proposal", 10, now),
		dashProject(3, "P3", "   ", "Active", "Proposal", 10, now),
	}
	resp := ComputeDashboard(projects, now.Year(), models.SortByDate, models.SortOrderAsc, now)
	if resp.Stats.UniqueCustomers != 1 {
		t.Fatalf("unique customers expected 1, got %d", resp.Stats.UniqueCustomers)
	}
}

func TestComputeDashboard_SortContract(t *testing.T) {
	now := time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC)
	projects := []*models.Project{
		dashProject(1, "P1", "A", "Active", "Installation", 300, time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)),
		dashProject(2, "P2", "B", "Active", "Mystery Stage", 100, time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)),
		dashProject(3, "P3", "C", "Active", "Proposal", 200, time.Date(2024, 8, 1, 0, 0, 0, 0, time.UTC)),
	}

	// Date ascending: oldest first.
	resp := ComputeDashboard(projects, 2024, models.SortByDate, models.SortOrderAsc, now)
	if resp.Projects[0].ID != 2 || resp.Projects[2].ID != 3 {
		t.Fatalf("date asc expected [2 1 3], got [%d %d %d]",
			resp.Projects[0].ID, resp.Projects[1].ID, resp.Projects[2].ID)
	}

	// Amount descending.
	resp = ComputeDashboard(projects, 2024, models.SortByAmount, models.SortOrderDesc, now)
	if resp.Projects[0].ID != 1 || resp.Projects[2].ID != 2 {
		t.Fatalf("amount desc expected [1 3 2], got [%d %d %d]",
			resp.Projects[0].ID, resp.Projects[1].ID, resp.Projects[2].ID)
	}

	// Stage ascending: unknown stage (index -1) sorts before every known one.
	resp = ComputeDashboard(projects, 2024, models.SortByStage, models.SortOrderAsc, now)
	if resp.Projects[0].ID != 2 {
		t.Fatalf("stage asc expected unknown stage first, got project %d", resp.Projects[0].ID)
	}
	if resp.Projects[1].ID != 3 || resp.Projects[2].ID != 1 {
		t.Fatalf("stage asc expected [2 3 1], got [%d %d %d]",
			resp.Projects[0].ID, resp.Projects[1].ID, resp.Projects[2].ID)
	}
}

func TestComputeDashboard_DeletedNotCounted(t *testing.T) {
	// Callers filter deleted rows before aggregation; a deleted status string
	// still must not count as active or completed.
	now := time.Now()
	projects := []*models.Project{
		dashProject(1, "P1", "A", models.ProjectStatusDeleted, "Proposal", 50, now),
	}
	resp := ComputeDashboard(projects, now.Year(), models.SortByDate, models.SortOrderAsc, now)
	if resp.Stats.ActiveProjects != 0 || resp.Stats.CompletedProjects != 0 {
		t.Fatalf("deleted project counted: %+v", resp.Stats)
	}
	if len(resp.Projects) != 0 {
		t.Fatalf("deleted project appeared in table")
	}
}

func TestComputeDashboard_KwhAndBalance(t *testing.T) {
	now := time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC)
	p := dashProject(1, "P1", "A", "Active", "Proposal", 500000, time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC))
	p.AdvancePayment = decimal.NewFromInt(100000)
	p.PaidAmount = decimal.NewFromInt(150000)
	p.Kwh = decimal.NewFromFloat(5.4)

	resp := ComputeDashboard([]*models.Project{p}, 2024, models.SortByDate, models.SortOrderAsc, now)
	if !resp.Stats.TotalKwh.Equal(decimal.NewFromFloat(5.4)) {
		t.Fatalf("total kwh expected 5.4, got %s", resp.Stats.TotalKwh)
	}
	row := resp.Projects[0]
	if !row.BalanceAmount.Equal(decimal.NewFromInt(250000)) {
		t.Fatalf("balance expected 250000, got %s", row.BalanceAmount)
	}
	if row.Duration == "" || row.Duration == "N/A" {
		t.Fatalf("expected a rendered duration, got %q", row.Duration)
	}
}

func TestComputeDashboard_OverCollectedBalanceGoesNegative(t *testing.T) {
	now := time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC)
	p := dashProject(1, "P1", "A", "Active", "Proposal", 100000, time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC))
	p.AdvancePayment = decimal.NewFromInt(50000)
	p.PaidAmount = decimal.NewFromInt(80000)

	resp := ComputeDashboard([]*models.Project{p}, 2024, models.SortByDate, models.SortOrderAsc, now)
	if !resp.Projects[0].BalanceAmount.Equal(decimal.NewFromInt(-30000)) {
		t.Fatalf("balance expected -30000, got %s", resp.Projects[0].BalanceAmount)
	}
}
