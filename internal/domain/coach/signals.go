package coach

import "time"

// Kind of generated content
type Kind string

const (
	KindProblem     Kind = "problem"
	KindAchievement Kind = "achievement"
)

// ProblemCategory labels why a client needs attention. A client gets at most
// one label per run; the category names match the front desk vocabulary.
type ProblemCategory string

const (
	ProblemPlanExpired ProblemCategory = "plan_expired"
	ProblemInactive    ProblemCategory = "cliente_inactivo"
	ProblemAbsence     ProblemCategory = "ausencia"
)

// AchievementCategory labels a positive engagement signal.
type AchievementCategory string

const (
	AchievementConstancy AchievementCategory = "constancia"
	AchievementStreak    AchievementCategory = "racha"
	AchievementComeback  AchievementCategory = "regreso"
	AchievementNewcomer  AchievementCategory = "nuevo"
	AchievementMilestone AchievementCategory = "meta"
)

// Lifetime visit counts that earn a milestone post. The count must land
// exactly on a milestone on the day the client attends.
var milestones = map[int]bool{
	10: true, 25: true, 50: true, 100: true, 200: true, 365: true, 500: true, 1000: true,
}

// noVisitSentinel stands in for "never visited" when computing absence days.
const noVisitSentinel = 30

// ProblemReport flags one client with exactly one problem.
type ProblemReport struct {
	ClientID           int64           `json:"client_id"`
	ClientName         string          `json:"client_name"`
	Category           ProblemCategory `json:"category"`
	DaysSinceLastVisit int             `json:"days_since_last_visit"`
	LastVisit          *time.Time      `json:"last_visit,omitempty"`
}

// Achievement flags one client with exactly one positive signal plus the
// numbers behind it.
type Achievement struct {
	ClientID        int64               `json:"client_id"`
	ClientName      string              `json:"client_name"`
	Category        AchievementCategory `json:"category"`
	ConsecutiveDays int                 `json:"consecutive_days"`
	WeekCount       int                 `json:"week_count"`
	MonthCount      int                 `json:"month_count"`
	LifetimeTotal   int                 `json:"lifetime_total"`
	IsNewClient     bool                `json:"is_new_client"`
}
