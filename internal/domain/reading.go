package domain

import "time"

// DateLayout is the calendar-date form used for daily-reading bookkeeping.
// Streak comparisons are date-only; time of day never participates.
const DateLayout = "2006-01-02"

// Reading is a completed, saved reading. Immutable except for the favorite
// flag, which the user may toggle later.
type Reading struct {
	ID             string      `json:"id"`
	SpreadType     SpreadType  `json:"spread_type"`
	Question       string      `json:"question,omitempty"`
	Cards          []DrawnCard `json:"cards"`
	Interpretation string      `json:"interpretation,omitempty"`
	CreatedAt      time.Time   `json:"created_at"`
	Favorite       bool        `json:"favorite"`
}

// IsDaily reports whether the reading counts toward the daily streak.
// Only the single-card spread does.
func (r Reading) IsDaily() bool {
	return r.SpreadType == SpreadSingle
}

// StreakState is the persisted daily-reading bookkeeping: which reading is
// today's, the calendar date it was recorded, and the run of consecutive
// days with a daily reading.
type StreakState struct {
	DailyReadingID string `json:"daily_reading_id"`
	LastDailyDate  string `json:"last_daily_date"`
	Streak         int    `json:"streak"`
}

// AdvanceStreak folds a newly saved daily reading into the streak state.
// A reading on the day after the last one extends the streak; a reading
// after a gap restarts it at 1; a second reading on the same day leaves the
// count untouched so repeat readings cannot inflate it.
func AdvanceStreak(st StreakState, readingID string, now time.Time) StreakState {
	today := now.Format(DateLayout)
	yesterday := now.AddDate(0, 0, -1).Format(DateLayout)

	next := st
	switch {
	case st.LastDailyDate == yesterday:
		next.Streak++
	case st.LastDailyDate != today:
		next.Streak = 1
	}
	next.DailyReadingID = readingID
	next.LastDailyDate = today
	return next
}

// CardStats aggregates card appearances across the reading history.
type CardStats struct {
	TotalReadings int            `json:"total_readings"`
	CardCounts    map[string]int `json:"card_counts"`
	MostDrawnCard string         `json:"most_drawn_card,omitempty"`
}
