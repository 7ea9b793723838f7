package reports

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/aakashreddy12/CRMA/config"
	"github.com/aakashreddy12/CRMA/models"
	"github.com/aakashreddy12/CRMA/utils"
	_ "github.com/go-sql-driver/mysql"
	"github.com/shopspring/decimal"
)

type DashboardStats struct {
	UniqueCustomers   int             `json:"unique_customers"`
	ActiveProjects    int             `json:"active_projects"`
	CompletedProjects int             `json:"completed_projects"`
	TotalRevenue      decimal.Decimal `json:"total_revenue"`
	TotalKwh          decimal.Decimal `json:"total_kwh"`
	RevenueHidden     bool            `json:"revenue_hidden"`
}

type ProjectRow struct {
	ID             int             `json:"id"`
	Name           string          `json:"name"`
	CustomerName   string          `json:"customer_name"`
	CurrentStage   string          `json:"current_stage"`
	StageProgress  float64         `json:"stage_progress"`
	ProposalAmount decimal.Decimal `json:"proposal_amount"`
	PaidAmount     decimal.Decimal `json:"paid_amount"`
	BalanceAmount  decimal.Decimal `json:"balance_amount"`
	Kwh            decimal.Decimal `json:"kwh"`
	Date           time.Time       `json:"date"`
	Duration       string          `json:"duration"`
}

type DashboardResponse struct {
	Stats        DashboardStats   `json:"stats"`
	MonthlyTrend [12]int          `json:"monthly_trend"`
	Projects     []*ProjectRow    `json:"projects"`
	Year         int              `json:"year"`
	SortBy       models.SortBy    `json:"sort_by"`
	SortOrder    models.SortOrder `json:"sort_order"`
}

// projectDate is the date a project is filed under for year filtering, the
// trend and date sorting: start_date, falling back to created_at.
func projectDate(p *models.Project) time.Time {
	if start := utils.DereferencePtr(p.StartDate); !start.IsZero() {
		return start
	}
	return p.CreatedAt
}

// ComputeDashboard derives the full dashboard view from the non-deleted
// project set. Headline stats span ALL projects; the trend and the table are
// restricted to active projects filed under the selected year. Sorting by
// stage places unrecognized stages first when ascending.
func ComputeDashboard(projects []*models.Project, year int, sortBy models.SortBy, sortOrder models.SortOrder, now time.Time) *DashboardResponse {
	resp := DashboardResponse{
		Year:      year,
		SortBy:    sortBy,
		SortOrder: sortOrder,
	}
	resp.Stats.TotalRevenue = decimal.Zero
	resp.Stats.TotalKwh = decimal.Zero

	var customers []string
	for _, p := range projects {
		if name := strings.ToLower(strings.TrimSpace(p.CustomerName)); name != "" {
			customers = append(customers, name)
		}
		switch strings.ToLower(p.Status) {
		case "active":
			resp.Stats.ActiveProjects++
		case "completed":
			resp.Stats.CompletedProjects++
		}
		resp.Stats.TotalRevenue = resp.Stats.TotalRevenue.Add(p.ProposalAmount)
		resp.Stats.TotalKwh = resp.Stats.TotalKwh.Add(p.Kwh)
	}
	resp.Stats.UniqueCustomers = len(utils.UniqueSlice(customers))

	for _, p := range projects {
		if !strings.EqualFold(p.Status, "active") {
			continue
		}
		if projectDate(p).Year() != year {
			continue
		}
		resp.MonthlyTrend[int(p.CreatedAt.Month())-1]++

		balance := p.ProposalAmount.Sub(p.AdvancePayment.Add(p.PaidAmount))
		date := projectDate(p)
		resp.Projects = append(resp.Projects, &ProjectRow{
			ID:             p.ID,
			Name:           p.Name,
			CustomerName:   p.CustomerName,
			CurrentStage:   p.CurrentStage,
			StageProgress:  models.StageProgress(p.CurrentStage),
			ProposalAmount: p.ProposalAmount,
			PaidAmount:     p.PaidAmount,
			BalanceAmount:  balance,
			Kwh:            p.Kwh,
			Date:           date,
			Duration:       utils.ElapsedDuration(date, now),
		})
	}

	sortRows(resp.Projects, sortBy, sortOrder)
	return &resp
}

func sortRows(rows []*ProjectRow, sortBy models.SortBy, sortOrder models.SortOrder) {
	less := func(i, j int) bool { return rows[i].Date.Before(rows[j].Date) }
	switch sortBy {
	case models.SortByAmount:
		less = func(i, j int) bool {
			return rows[i].ProposalAmount.LessThan(rows[j].ProposalAmount)
		}
	case models.SortByStage:
		less = func(i, j int) bool {
			return models.StageIndex(rows[i].CurrentStage) < models.StageIndex(rows[j].CurrentStage)
		}
	}
	if sortOrder == models.SortOrderDesc {
		inner := less
		less = func(i, j int) bool { return inner(j, i) }
	}
	sort.SliceStable(rows, less)
}

// GetDashboardReport loads the non-deleted project set and aggregates it.
// Revenue is blanked for accounts configured as revenue-hidden.
func GetDashboardReport(ctx context.Context, year int, sortBy models.SortBy, sortOrder models.SortOrder) (*DashboardResponse, error) {
	db := config.GetDB()

	var projects []*models.Project
	err := db.WithContext(ctx).
		Where("status <> ?", models.ProjectStatusDeleted).
		Find(&projects).Error
	if err != nil {
		return nil, err
	}

	resp := ComputeDashboard(projects, year, sortBy, sortOrder, time.Now())

	if username, ok := utils.GetUsernameFromContext(ctx); ok {
		if user, err := models.GetUserByUsername(ctx, username); err == nil {
			if config.RevenueHiddenFor(user.Email) {
				resp.Stats.TotalRevenue = decimal.Zero
				resp.Stats.RevenueHidden = true
			}
		}
	}
	return resp, nil
}
