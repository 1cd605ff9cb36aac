package production

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// ScheduleEntry pairs a recipe with how many batches of it the week calls for.
type ScheduleEntry struct {
	RecipeID   uuid.UUID `json:"recipe_id" binding:"required"`
	BatchCount int       `json:"batch_count"`
}

type ProductionSchedule struct {
	ID           uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	WeekStart    time.Time      `gorm:"not null;index" json:"week_start"`
	ScheduleData datatypes.JSON `gorm:"type:jsonb" json:"schedule_data"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (ProductionSchedule) TableName() string { return "production_schedules" }

// Entries decodes the stored jsonb entries, preserving their order.
func (s *ProductionSchedule) Entries() ([]ScheduleEntry, error) {
	if len(s.ScheduleData) == 0 {
		return []ScheduleEntry{}, nil
	}
	var entries []ScheduleEntry
	if err := json.Unmarshal(s.ScheduleData, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

func (s *ProductionSchedule) SetEntries(entries []ScheduleEntry) error {
	raw, err := json.Marshal(entries)
	if err != nil {
		return err
	}
	s.ScheduleData = datatypes.JSON(raw)
	return nil
}
