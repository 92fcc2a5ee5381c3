package controllers

import (
	"errors"
	"fmt"
	"math/rand"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"moodtrack/models"
	"moodtrack/utils"
)

// Literal validation messages; the client matches on these exact strings.
const (
	msgAnswerOutOfRange  = "Answer must be between -3 and 3"
	msgQuestionIDMissing = "QuestionId is required"
)

const checkInCachePrefix = "cache:checkins:"

// CheckInController handles listing, submitting and seeding of daily check-ins.
type CheckInController struct {
	db *gorm.DB
}

// NewCheckInController creates a new controller instance.
func NewCheckInController(db *gorm.DB) *CheckInController {
	return &CheckInController{db: db}
}

// ListCheckIns returns all check-ins from the last ?days=N days (default 30),
// newest first, ties broken by question id.
func (c *CheckInController) ListCheckIns(ctx *gin.Context) {
	days := parseDays(ctx.Query("days"), 30)

	cacheKey := fmt.Sprintf("%slist:days=%d", checkInCachePrefix, days)
	if b, ok := utils.CacheGetBytes(cacheKey); ok {
		ctx.Data(http.StatusOK, "application/json", b)
		return
	}

	startDate := time.Now().UTC().AddDate(0, 0, -days)

	checkIns := []models.CheckIn{}
	if err := c.db.
		Where("date >= ?", startDate).
		Order("date DESC, question_id ASC").
		Find(&checkIns).Error; err != nil {
		utils.Error(ctx, http.StatusInternalServerError, 50010, "failed to list check-ins")
		return
	}

	ctx.JSON(http.StatusOK, checkIns)
	utils.CacheSetJSON(cacheKey, checkIns, 0)
}

// SubmitCheckIn validates and upserts one answer, keyed by the UTC calendar
// day of the supplied date and the question id. Resubmitting for the same day
// overwrites the stored answer and timestamp instead of creating a duplicate.
func (c *CheckInController) SubmitCheckIn(ctx *gin.Context) {
	var candidate models.CheckIn
	if err := ctx.ShouldBindJSON(&candidate); err != nil {
		utils.Error(ctx, http.StatusBadRequest, 40010, "invalid request payload")
		return
	}

	if candidate.Answer < models.AnswerMin || candidate.Answer > models.AnswerMax {
		ctx.String(http.StatusBadRequest, msgAnswerOutOfRange)
		return
	}
	if strings.TrimSpace(candidate.QuestionID) == "" {
		ctx.String(http.StatusBadRequest, msgQuestionIDMissing)
		return
	}
	if candidate.Date.IsZero() {
		candidate.Date = time.Now()
	}
	// Store instants in UTC so range comparisons behave the same on every driver.
	candidate.Date = candidate.Date.UTC()

	saved, created, err := c.upsert(&candidate)
	if err != nil {
		utils.Error(ctx, http.StatusInternalServerError, 50011, "failed to save check-in")
		return
	}

	utils.InvalidateByPrefix(checkInCachePrefix)

	if created {
		ctx.Header("Location", "/api/checkins")
		ctx.JSON(http.StatusCreated, saved)
		return
	}
	ctx.JSON(http.StatusOK, saved)
}

// upsert performs the check-then-act write. Concurrent inserts for the same
// (day, question) are arbitrated by the unique index: the loser sees a
// duplicate-key error and retries as an update of the winner's row.
func (c *CheckInController) upsert(candidate *models.CheckIn) (*models.CheckIn, bool, error) {
	day := models.DayOf(candidate.Date)
	nextDay := day.AddDate(0, 0, 1)
	questionID := strings.TrimSpace(candidate.QuestionID)

	var existing models.CheckIn
	err := c.db.
		Where("question_id = ? AND date >= ? AND date < ?", questionID, day, nextDay).
		First(&existing).Error

	switch {
	case err == nil:
		return c.overwrite(&existing, candidate)
	case errors.Is(err, gorm.ErrRecordNotFound):
		record := models.CheckIn{
			Date:       candidate.Date,
			Day:        day,
			QuestionID: questionID,
			Answer:     candidate.Answer,
		}
		if err := c.db.Create(&record).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return c.updateRaceWinner(day, questionID, candidate)
			}
			return nil, false, err
		}
		return &record, true, nil
	default:
		return nil, false, err
	}
}

func (c *CheckInController) overwrite(existing *models.CheckIn, candidate *models.CheckIn) (*models.CheckIn, bool, error) {
	existing.Answer = candidate.Answer
	existing.Date = candidate.Date
	if err := c.db.Save(existing).Error; err != nil {
		return nil, false, err
	}
	return existing, false, nil
}

func (c *CheckInController) updateRaceWinner(day time.Time, questionID string, candidate *models.CheckIn) (*models.CheckIn, bool, error) {
	var winner models.CheckIn
	if err := c.db.
		Where("question_id = ? AND day = ?", questionID, day).
		First(&winner).Error; err != nil {
		return nil, false, err
	}
	return c.overwrite(&winner, candidate)
}

// SeedRandomData fills the last ?days=N days (default 30) with uniformly
// random answers for every question that has no row yet. Already-seeded
// days are left untouched.
func (c *CheckInController) SeedRandomData(ctx *gin.Context) {
	days := parseDays(ctx.Query("days"), 30)
	today := models.DayOf(time.Now())

	for i := 0; i < days; i++ {
		day := today.AddDate(0, 0, -i)

		for _, questionID := range models.QuestionIDs {
			var count int64
			if err := c.db.Model(&models.CheckIn{}).
				Where("question_id = ? AND day = ?", questionID, day).
				Count(&count).Error; err != nil {
				utils.Error(ctx, http.StatusInternalServerError, 50012, "failed to seed data")
				return
			}
			if count > 0 {
				continue
			}

			record := models.CheckIn{
				Date:       day,
				Day:        day,
				QuestionID: questionID,
				Answer:     rand.Intn(models.AnswerMax-models.AnswerMin+1) + models.AnswerMin,
			}
			if err := c.db.Create(&record).Error; err != nil && !errors.Is(err, gorm.ErrDuplicatedKey) {
				utils.Error(ctx, http.StatusInternalServerError, 50012, "failed to seed data")
				return
			}
		}
	}

	utils.InvalidateByPrefix(checkInCachePrefix)
	ctx.JSON(http.StatusOK, gin.H{"message": fmt.Sprintf("Seeded data for %d days", days)})
}

// parseDays parses a days query parameter, falling back to def when absent
// or not an integer.
func parseDays(raw string, def int) int {
	if raw == "" {
		return def
	}
	days, err := strconv.Atoi(raw)
	if err != nil {
		return def
	}
	return days
}
