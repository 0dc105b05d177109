package service

import (
	"coachdesk/internal/domain"
	"coachdesk/internal/repository"
	"context"
	"sort"
	"time"
)

const (
	upcomingWindow    = 7 * 24 * time.Hour
	recentWindow      = 7 * 24 * time.Hour
	upcomingListLimit = 5
	recentClientLimit = 4
)

// DashboardStats are the headline aggregates shown on the dashboard.
type DashboardStats struct {
	TotalClients          int `json:"totalClients"`
	ActiveGoals           int `json:"activeGoals"`
	UpcomingCheckIns      int `json:"upcomingCheckIns"`      // next 7 days
	RecentProgressUpdates int `json:"recentProgressUpdates"` // last 7 days
}

// UpcomingCheckIn is one row of the dashboard's next-scheduled-reviews list.
type UpcomingCheckIn struct {
	ClientID    string    `json:"clientId"`
	ClientName  string    `json:"clientName"`
	PrimaryGoal string    `json:"primaryGoal"`
	Date        time.Time `json:"date"`
}

// DashboardService projects the client store into the dashboard's aggregates
// and lists. All computations are pure over the store contents and the
// injected clock.
type DashboardService interface {
	Stats(ctx context.Context) (*DashboardStats, error)
	UpcomingCheckIns(ctx context.Context) ([]UpcomingCheckIn, error)
	RecentClients(ctx context.Context) ([]domain.Client, error)
}

// dashboardService implements the DashboardService interface.
type dashboardService struct {
	clientRepo repository.ClientRepository
	now        func() time.Time
}

// NewDashboardService creates a new instance of dashboardService.
func NewDashboardService(clientRepo repository.ClientRepository) DashboardService {
	return &dashboardService{
		clientRepo: clientRepo,
		now:        time.Now,
	}
}

// Stats computes the headline aggregates.
func (s *dashboardService) Stats(ctx context.Context) (*DashboardStats, error) {
	clients, err := s.clientRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	stats := ComputeStats(clients, s.now())
	return &stats, nil
}

// ComputeStats counts clients, in-progress goals, check-ins in [now, now+7d]
// (inclusive both ends) and progress entries dated within the last 7 days.
func ComputeStats(clients []domain.Client, now time.Time) DashboardStats {
	stats := DashboardStats{TotalClients: len(clients)}
	windowEnd := now.Add(upcomingWindow)
	recentCutoff := now.Add(-recentWindow)

	for _, c := range clients {
		for _, g := range c.Goals {
			if g.Status == domain.GoalInProgress {
				stats.ActiveGoals++
			}
		}
		if c.NextCheckIn != nil && !c.NextCheckIn.Before(now) && !c.NextCheckIn.After(windowEnd) {
			stats.UpcomingCheckIns++
		}
		for _, p := range c.ProgressEntries {
			if !p.Date.Before(recentCutoff) {
				stats.RecentProgressUpdates++
			}
		}
	}
	return stats
}

// UpcomingCheckIns lists clients with a next check-in at or after now,
// ascending by that date, truncated to the first five.
func (s *dashboardService) UpcomingCheckIns(ctx context.Context) ([]UpcomingCheckIn, error) {
	clients, err := s.clientRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	return ComputeUpcomingCheckIns(clients, s.now()), nil
}

// ComputeUpcomingCheckIns is the pure projection behind UpcomingCheckIns.
func ComputeUpcomingCheckIns(clients []domain.Client, now time.Time) []UpcomingCheckIn {
	upcoming := make([]domain.Client, 0, len(clients))
	for _, c := range clients {
		if c.NextCheckIn != nil && !c.NextCheckIn.Before(now) {
			upcoming = append(upcoming, c)
		}
	}
	sort.SliceStable(upcoming, func(i, j int) bool {
		return upcoming[i].NextCheckIn.Before(*upcoming[j].NextCheckIn)
	})
	if len(upcoming) > upcomingListLimit {
		upcoming = upcoming[:upcomingListLimit]
	}

	rows := make([]UpcomingCheckIn, len(upcoming))
	for i, c := range upcoming {
		primaryGoal := "No goal set"
		if len(c.Goals) > 0 {
			primaryGoal = string(c.Goals[0].Type)
		}
		rows[i] = UpcomingCheckIn{
			ClientID:    c.ID,
			ClientName:  c.FullName(),
			PrimaryGoal: primaryGoal,
			Date:        *c.NextCheckIn,
		}
	}
	return rows
}

// RecentClients returns the most recently joined clients, newest first,
// truncated to the first four.
func (s *dashboardService) RecentClients(ctx context.Context) ([]domain.Client, error) {
	clients, err := s.clientRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	return ComputeRecentClients(clients), nil
}

// ComputeRecentClients is the pure projection behind RecentClients.
func ComputeRecentClients(clients []domain.Client) []domain.Client {
	out := make([]domain.Client, len(clients))
	copy(out, clients)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].JoinDate.After(out[j].JoinDate)
	})
	if len(out) > recentClientLimit {
		out = out[:recentClientLimit]
	}
	return out
}
