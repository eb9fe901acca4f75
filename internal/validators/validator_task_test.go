package validators

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jasonyi-dev/ganttrack/models"
)

func validTaskDraft() models.TaskDraft {
	return models.TaskDraft{
		Type:      models.TaskTypeTask,
		Name:      "design review",
		StartDate: 1_700_000_000,
		EndDate:   1_700_259_200,
		Colour:    "#e07a5f",
	}
}

// TestTaskValidator_Draft verifies the field rules applied on task
// creation.
func TestTaskValidator_Draft(t *testing.T) {
	v := NewTaskValidator()

	tests := []struct {
		name    string
		mutate  func(*models.TaskDraft)
		wantErr error
	}{
		{"valid task", func(*models.TaskDraft) {}, nil},
		{"valid milestone", func(d *models.TaskDraft) { d.Type = models.TaskTypeMilestone }, nil},
		{"unknown type", func(d *models.TaskDraft) { d.Type = "epic" }, ErrInvalidTaskType},
		{"empty name", func(d *models.TaskDraft) { d.Name = "" }, ErrEmptyTaskName},
		{"name at limit", func(d *models.TaskDraft) { d.Name = strings.Repeat("n", 20) }, nil},
		{"name too long", func(d *models.TaskDraft) { d.Name = strings.Repeat("n", 21) }, ErrTaskNameTooLong},
		{"description too long", func(d *models.TaskDraft) { d.Description = strings.Repeat("d", 1025) }, ErrDescriptionTooLong},
		{"uppercase hex colour", func(d *models.TaskDraft) { d.Colour = "#E07A5F" }, nil},
		{"colour missing hash", func(d *models.TaskDraft) { d.Colour = "e07a5f1" }, ErrInvalidColour},
		{"colour too short", func(d *models.TaskDraft) { d.Colour = "#fff" }, ErrInvalidColour},
		{"colour non-hex", func(d *models.TaskDraft) { d.Colour = "#gggggg" }, ErrInvalidColour},
		{"empty colour", func(d *models.TaskDraft) { d.Colour = "" }, ErrInvalidColour},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			draft := validTaskDraft()
			tt.mutate(&draft)

			err := v.Validate(context.Background(), draft)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

// TestTaskValidator_FullTask verifies the identity and placement rules
// applied on update.
func TestTaskValidator_FullTask(t *testing.T) {
	v := NewTaskValidator()

	taskUUID := "99999999-8888-7777-6666-555555555555"
	projectUUID := "11111111-2222-3333-4444-555555555555"

	valid := func() models.Task {
		draft := validTaskDraft()
		return models.Task{
			ID:          taskUUID + ":" + projectUUID,
			TaskUUID:    taskUUID,
			ProjectUUID: projectUUID,
			Type:        draft.Type,
			Name:        draft.Name,
			StartDate:   draft.StartDate,
			EndDate:     draft.EndDate,
			Colour:      draft.Colour,
		}
	}

	tests := []struct {
		name    string
		mutate  func(*models.Task)
		wantErr error
	}{
		{"valid", func(*models.Task) {}, nil},
		{"short task uuid", func(task *models.Task) { task.TaskUUID = "abc" }, ErrInvalidTaskUUID},
		{"short project uuid", func(task *models.Task) { task.ProjectUUID = "abc" }, ErrInvalidTaskUUID},
		{"mismatched id", func(task *models.Task) { task.ID = "forged:" + projectUUID }, ErrInvalidTaskID},
		{"negative row", func(task *models.Task) { task.Row = -1 }, ErrNegativeRow},
		{"draft rules still apply", func(task *models.Task) { task.Colour = "blue" }, ErrInvalidColour},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			task := valid()
			tt.mutate(&task)

			err := v.Validate(context.Background(), task)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
