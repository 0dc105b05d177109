package service

import (
	"coachdesk/internal/domain"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tp(t time.Time) *time.Time { return &t }

func TestComputeStats(t *testing.T) {
	now := testNow

	clients := []domain.Client{
		{
			ID: "1",
			Goals: []domain.Goal{
				{Status: domain.GoalInProgress},
				{Status: domain.GoalCompleted},
				{Status: domain.GoalInProgress},
			},
			NextCheckIn: tp(now.AddDate(0, 0, 3)),
			ProgressEntries: []domain.ProgressEntry{
				{Date: now.AddDate(0, 0, -3)}, // within the last week
				{Date: now.AddDate(0, 0, -10)},
			},
		},
		{
			ID:          "2",
			Goals:       []domain.Goal{{Status: domain.GoalNotStarted}},
			NextCheckIn: tp(now.AddDate(0, 0, 9)), // beyond the window
		},
		{
			ID:          "3",
			NextCheckIn: tp(now.AddDate(0, 0, -1)), // already passed
		},
	}

	stats := ComputeStats(clients, now)
	assert.Equal(t, 3, stats.TotalClients)
	assert.Equal(t, 2, stats.ActiveGoals, "only In Progress goals count")
	assert.Equal(t, 1, stats.UpcomingCheckIns)
	assert.Equal(t, 1, stats.RecentProgressUpdates)
}

func TestComputeStatsWindowBoundaries(t *testing.T) {
	now := testNow

	// A check-in exactly now and one exactly seven days out are both inside
	// the window.
	clients := []domain.Client{
		{ID: "1", NextCheckIn: tp(now)},
		{ID: "2", NextCheckIn: tp(now.Add(7 * 24 * time.Hour))},
		{ID: "3", NextCheckIn: tp(now.Add(7*24*time.Hour + time.Second))},
	}
	stats := ComputeStats(clients, now)
	assert.Equal(t, 2, stats.UpcomingCheckIns)

	// A progress entry exactly seven days old still counts as recent.
	clients = []domain.Client{{
		ID: "1",
		ProgressEntries: []domain.ProgressEntry{
			{Date: now.Add(-7 * 24 * time.Hour)},
			{Date: now.Add(-7*24*time.Hour - time.Second)},
		},
	}}
	stats = ComputeStats(clients, now)
	assert.Equal(t, 1, stats.RecentProgressUpdates)
}

func TestComputeUpcomingCheckIns(t *testing.T) {
	now := testNow

	clients := []domain.Client{
		{ID: "late", FirstName: "Late", LastName: "Client", NextCheckIn: tp(now.AddDate(0, 0, 20)),
			Goals: []domain.Goal{{Type: domain.GoalEndurance}}},
		{ID: "soon", FirstName: "Soon", LastName: "Client", NextCheckIn: tp(now.AddDate(0, 0, 1))},
		{ID: "past", FirstName: "Past", LastName: "Client", NextCheckIn: tp(now.AddDate(0, 0, -1))},
		{ID: "none", FirstName: "No", LastName: "CheckIn"},
	}

	rows := ComputeUpcomingCheckIns(clients, now)
	require.Len(t, rows, 2, "past and unscheduled clients are excluded")
	assert.Equal(t, "soon", rows[0].ClientID, "rows are ascending by date")
	assert.Equal(t, "No goal set", rows[0].PrimaryGoal)
	assert.Equal(t, "late", rows[1].ClientID)
	assert.Equal(t, string(domain.GoalEndurance), rows[1].PrimaryGoal)
	assert.Equal(t, "Late Client", rows[1].ClientName)
}

func TestComputeUpcomingCheckInsTruncatesToFive(t *testing.T) {
	now := testNow

	clients := make([]domain.Client, 8)
	for i := range clients {
		clients[i] = domain.Client{
			ID:          fmt.Sprintf("c%d", i),
			NextCheckIn: tp(now.AddDate(0, 0, 8-i)),
		}
	}

	rows := ComputeUpcomingCheckIns(clients, now)
	require.Len(t, rows, 5)
	assert.Equal(t, "c7", rows[0].ClientID, "closest check-in comes first")
}

func TestComputeRecentClients(t *testing.T) {
	now := testNow

	clients := make([]domain.Client, 6)
	for i := range clients {
		clients[i] = domain.Client{
			ID:       fmt.Sprintf("c%d", i),
			JoinDate: now.AddDate(0, 0, -i),
		}
	}

	recent := ComputeRecentClients(clients)
	require.Len(t, recent, 4)
	assert.Equal(t, "c0", recent[0].ID, "newest join first")
	assert.Equal(t, "c3", recent[3].ID)

	// The input slice order is untouched.
	assert.Equal(t, "c0", clients[0].ID)
	assert.Equal(t, "c5", clients[5].ID)
}
