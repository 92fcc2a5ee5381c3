package controllers

import (
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"moodtrack/models"
	"moodtrack/utils"
)

// StatsController provides aggregate statistics over the check-in history.
type StatsController struct {
	db *gorm.DB
}

// NewStatsController creates a new StatsController instance.
func NewStatsController(db *gorm.DB) *StatsController {
	return &StatsController{db: db}
}

type questionStat struct {
	QuestionID string  `gorm:"column:question_id" json:"questionId"`
	Count      int64   `gorm:"column:cnt" json:"count"`
	Average    float64 `gorm:"column:avg_answer" json:"average"`
	Min        int     `gorm:"column:min_answer" json:"min"`
	Max        int     `gorm:"column:max_answer" json:"max"`
}

// GetStats returns per-question aggregates for the last ?days=N days
// (default 30) plus the number of fully answered days in the window.
func (s *StatsController) GetStats(ctx *gin.Context) {
	days := parseDays(ctx.Query("days"), 30)
	startDate := time.Now().UTC().AddDate(0, 0, -days)

	stats := []questionStat{}
	if err := s.db.Model(&models.CheckIn{}).
		Select("question_id, COUNT(*) AS cnt, AVG(answer) AS avg_answer, MIN(answer) AS min_answer, MAX(answer) AS max_answer").
		Where("date >= ?", startDate).
		Group("question_id").
		Order("question_id ASC").
		Scan(&stats).Error; err != nil {
		utils.Error(ctx, 500, 50020, "failed to compute stats")
		return
	}

	// A complete day has an answer for every question in the fixed set.
	var completeDays int64
	if err := s.db.Raw(
		"SELECT COUNT(*) FROM (SELECT day FROM check_ins WHERE date >= ? GROUP BY day HAVING COUNT(DISTINCT question_id) >= ?) complete",
		startDate, len(models.QuestionIDs),
	).Scan(&completeDays).Error; err != nil {
		completeDays = 0
	}

	utils.Success(ctx, gin.H{
		"days":          days,
		"questions":     stats,
		"complete_days": completeDays,
	})
}
