package models

import "time"

// AIRecommendation is the transient output of the recommendation parser.
// It is never persisted: ingestion converts it into Milestone and Resource
// records and discards it.
type AIRecommendation struct {
	Title       string
	Description string
	GradeLevel  int
	Category    MilestoneCategory
	DueDate     *time.Time
	Resources   []Resource
}
