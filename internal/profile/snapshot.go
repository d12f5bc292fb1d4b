package profile

import (
	"time"

	"github.com/Jaron-S/body-fat-calculator/internal/bodyfat"
)

// Snapshot holds one stored calculation.
type Snapshot struct {
	ID         string         `json:"id"`
	RecordedAt time.Time      `json:"recorded_at"`
	Input      bodyfat.Input  `json:"input"`
	Result     bodyfat.Result `json:"result"`
}
