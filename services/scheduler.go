// services/scheduler.go
package services

import (
	"log"
	"time"

	"sports-community-system/models"

	"github.com/go-co-op/gocron/v2"
)

// StartReviewDigest periodically surfaces the size and age of the
// pending review queue so proposals do not sit unnoticed.
func (s *EventService) StartReviewDigest() {
	sched, _ := gocron.NewScheduler()
	sched.Start()

	_, _ = sched.NewJob(
		gocron.DurationJob(10*time.Minute),
		gocron.NewTask(func() {
			var pending int64
			if err := s.DB.Model(&models.Event{}).
				Where("status = ?", models.EventStatusPending).
				Count(&pending).Error; err != nil {
				log.Printf("[ReviewDigest] DB error: %v", err)
				return
			}
			if pending == 0 {
				return
			}

			var oldest models.Event
			err := s.DB.Where("status = ?", models.EventStatusPending).
				Order("created_at ASC").
				First(&oldest).Error
			if err != nil {
				log.Printf("[ReviewDigest] DB error: %v", err)
				return
			}
			log.Printf("[ReviewDigest] %d event(s) awaiting review, oldest %q since %s",
				pending, oldest.Title, oldest.CreatedAt.Format(time.RFC3339))
		}),
	)
}
