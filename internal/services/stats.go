package services

import (
	"gorm.io/gorm"

	"github.com/opticode/backend/internal/models"
)

// DashboardStats feeds the admin landing page.
type DashboardStats struct {
	TotalTickets      int64
	StatusCounts      map[string]int64
	TotalLeads        int64
	ActiveSubscribers int64
	RecentTickets     []models.Ticket
	RecentLeads       []models.Lead
}

// LoadDashboardStats gathers the per-status ticket counts in a single
// GROUP BY instead of one COUNT per status.
func LoadDashboardStats(conn *gorm.DB) (*DashboardStats, error) {
	st := &DashboardStats{StatusCounts: make(map[string]int64)}

	type statusRow struct {
		Status string
		N      int64
	}
	var rows []statusRow
	if err := conn.Model(&models.Ticket{}).
		Select("status, COUNT(*) AS n").
		Group("status").
		Scan(&rows).Error; err != nil {
		return nil, err
	}
	for _, row := range rows {
		st.StatusCounts[row.Status] = row.N
		st.TotalTickets += row.N
	}

	if err := conn.Model(&models.Lead{}).Count(&st.TotalLeads).Error; err != nil {
		return nil, err
	}
	if err := conn.Model(&models.Subscriber{}).
		Where("is_active = ?", true).
		Count(&st.ActiveSubscribers).Error; err != nil {
		return nil, err
	}

	if err := conn.Order("created_at desc").Limit(5).Find(&st.RecentTickets).Error; err != nil {
		return nil, err
	}
	if err := conn.Order("created_at desc").Limit(5).Find(&st.RecentLeads).Error; err != nil {
		return nil, err
	}
	return st, nil
}
