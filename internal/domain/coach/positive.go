package coach

import (
	"context"

	"gymdesk/internal/pkg/clock"
)

// DetectAchievements flags active clients with at most one positive signal,
// chosen by priority: constancia, racha, regreso, nuevo, meta. Clients with
// no attendance in the trailing 30 days are skipped entirely.
func (d *Detector) DetectAchievements(ctx context.Context, gymID int64) ([]Achievement, error) {
	clients, err := d.clients.ListActiveByGym(ctx, gymID)
	if err != nil {
		return nil, err
	}

	today := clock.Today(d.clk)
	windowStart := today.AddDate(0, 0, -29)
	weekStart := today.AddDate(0, 0, -6)

	rows, err := d.attendance.ListSince(ctx, gymID, windowStart)
	if err != nil {
		return nil, err
	}

	// days-with-attendance per client, plus raw row counts for the
	// week/month frequencies
	daysByClient := make(map[int64]map[string]bool)
	monthCount := make(map[int64]int)
	weekCount := make(map[int64]int)
	for _, a := range rows {
		day := clock.DateOf(a.Date)
		set := daysByClient[a.ClientID]
		if set == nil {
			set = make(map[string]bool)
			daysByClient[a.ClientID] = set
		}
		set[day.Format("2006-01-02")] = true
		monthCount[a.ClientID]++
		if !day.Before(weekStart) {
			weekCount[a.ClientID]++
		}
	}

	// lifetime totals fetched once and reused for both the milestone check
	// and the payload
	lifetime, err := d.attendance.LifetimeCountByClient(ctx, gymID)
	if err != nil {
		return nil, err
	}

	var achievements []Achievement
	for _, cl := range clients {
		days := daysByClient[cl.ID]
		if len(days) == 0 {
			continue
		}

		consecutive := 0
		for i := 0; i < 30; i++ {
			day := today.AddDate(0, 0, -i).Format("2006-01-02")
			if !days[day] {
				break
			}
			consecutive++
		}

		attendedToday := days[today.Format("2006-01-02")]
		isNew := clock.DaysBetween(today, cl.CreatedAt) < 30

		var category AchievementCategory
		switch {
		case consecutive >= 4:
			category = AchievementConstancy
		case weekCount[cl.ID] >= 5:
			category = AchievementStreak
		case monthCount[cl.ID] >= 8 && consecutive >= 3:
			category = AchievementComeback
		case isNew && monthCount[cl.ID] >= 6:
			category = AchievementNewcomer
		case attendedToday && milestones[lifetime[cl.ID]]:
			category = AchievementMilestone
		default:
			continue
		}

		achievements = append(achievements, Achievement{
			ClientID:        cl.ID,
			ClientName:      cl.Name,
			Category:        category,
			ConsecutiveDays: consecutive,
			WeekCount:       weekCount[cl.ID],
			MonthCount:      monthCount[cl.ID],
			LifetimeTotal:   lifetime[cl.ID],
			IsNewClient:     isNew,
		})
	}

	return achievements, nil
}
