package fine

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestForDays(t *testing.T) {
	tests := []struct {
		name string
		days int
		want int64
	}{
		{"not overdue", 0, 0},
		{"negative days", -1, 0},
		{"first day", 1, 100},
		{"top of first bracket", 5, 500},
		{"into second bracket", 6, 700},
		{"top of second bracket", 10, 1500},
		{"into third bracket", 11, 2000},
		{"deep into third bracket", 15, 4000},
		{"twelve days", 12, 2500},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ForDays(tt.days))
		})
	}
}

func TestDaysOverdue(t *testing.T) {
	due := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)

	t.Run("returned on time", func(t *testing.T) {
		assert.Equal(t, 0, DaysOverdue(due, due))
	})

	t.Run("returned early", func(t *testing.T) {
		assert.Equal(t, 0, DaysOverdue(due, due.AddDate(0, 0, -3)))
	})

	t.Run("returned late", func(t *testing.T) {
		assert.Equal(t, 12, DaysOverdue(due, due.AddDate(0, 0, 12)))
	})

	t.Run("ignores time of day", func(t *testing.T) {
		lateEvening := time.Date(2025, 3, 11, 23, 59, 0, 0, time.UTC)
		assert.Equal(t, 1, DaysOverdue(due, lateEvening))
	})
}

func TestCalculate(t *testing.T) {
	due := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)

	t.Run("twelve days late", func(t *testing.T) {
		// 5*100 + 5*200 + 2*500
		got := Calculate(due, due.AddDate(0, 0, 12))
		assert.Equal(t, int64(2500), got)
	})

	t.Run("due date in the future", func(t *testing.T) {
		assert.Equal(t, int64(0), Calculate(due, due.AddDate(0, 0, -1)))
	})
}
