package checklist

import (
	"testing"

	"github.com/Amitkumarsahu1/Task-Management-System/internal/models"
	"github.com/stretchr/testify/assert"
)

func items(completed ...bool) []models.ChecklistItem {
	list := make([]models.ChecklistItem, len(completed))
	for i, done := range completed {
		list[i] = models.ChecklistItem{Text: "item", Completed: done}
	}
	return list
}

func TestEvaluate(t *testing.T) {
	tests := []struct {
		name         string
		items        []models.ChecklistItem
		wantProgress int
		wantStatus   string
	}{
		{"empty checklist", nil, 0, models.StatusPending},
		{"nothing completed", items(false, false, false), 0, models.StatusPending},
		{"single item completed", items(true), 100, models.StatusCompleted},
		{"all completed", items(true, true, true, true), 100, models.StatusCompleted},
		{"half completed", items(true, false, true, false), 50, models.StatusInProgress},
		{"one of three truncates to 33", items(true, false, false), 33, models.StatusInProgress},
		{"two of three truncates to 66", items(true, true, false), 66, models.StatusInProgress},
		{"five of six truncates to 83", items(true, true, true, true, true, false), 83, models.StatusInProgress},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			progress, status := Evaluate(tt.items)
			assert.Equal(t, tt.wantProgress, progress)
			assert.Equal(t, tt.wantStatus, status)
		})
	}
}

func TestEvaluateIsDeterministic(t *testing.T) {
	list := items(true, false, true)
	p1, s1 := Evaluate(list)
	p2, s2 := Evaluate(list)
	assert.Equal(t, p1, p2)
	assert.Equal(t, s1, s2)
}

func TestCompletedCount(t *testing.T) {
	assert.Equal(t, 0, CompletedCount(nil))
	assert.Equal(t, 2, CompletedCount(items(true, false, true)))
	assert.Equal(t, 4, CompletedCount(items(true, true, true, true)))
}
