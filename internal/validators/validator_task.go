package validators

import (
	"context"
	"strings"

	"github.com/jasonyi-dev/ganttrack/models"
)

const (
	maxTaskNameLength    = 20
	maxDescriptionLength = 1024
	colourLength         = 7 // "#RRGGBB"
	uuidLength           = 36
)

// TaskValidator enforces the task field rules shared by create and update
// requests. A [models.TaskDraft] is checked on creation; a full
// [models.Task] is checked on update, which additionally covers the
// identity and placement fields.
type TaskValidator struct {
}

func NewTaskValidator() Validator {
	return &TaskValidator{}
}

func (v *TaskValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.TaskDraft:
		return v.validateDraft(value)
	case *models.TaskDraft:
		return v.validateDraft(*value)

	case models.Task:
		return v.validateTask(value)
	case *models.Task:
		return v.validateTask(*value)

	default:
		return ErrUnsupportedType
	}
}

func (v *TaskValidator) validateDraft(draft models.TaskDraft) error {
	if draft.Type != models.TaskTypeTask && draft.Type != models.TaskTypeMilestone {
		return ErrInvalidTaskType
	}

	nameLen := len([]rune(draft.Name))
	switch {
	case nameLen == 0:
		return ErrEmptyTaskName
	case nameLen > maxTaskNameLength:
		return ErrTaskNameTooLong
	}

	if len([]rune(draft.Description)) > maxDescriptionLength {
		return ErrDescriptionTooLong
	}

	if err := validateColour(draft.Colour); err != nil {
		return err
	}

	return nil
}

func (v *TaskValidator) validateTask(task models.Task) error {
	if err := v.validateDraft(models.TaskDraft{
		Type:         task.Type,
		Name:         task.Name,
		Description:  task.Description,
		StartDate:    task.StartDate,
		EndDate:      task.EndDate,
		Completed:    task.Completed,
		Colour:       task.Colour,
		Dependencies: task.Dependencies,
	}); err != nil {
		return err
	}

	if len(task.TaskUUID) != uuidLength || len(task.ProjectUUID) != uuidLength {
		return ErrInvalidTaskUUID
	}

	if task.ID != task.TaskUUID+":"+task.ProjectUUID {
		return ErrInvalidTaskID
	}

	if task.Row < 0 {
		return ErrNegativeRow
	}

	return nil
}

func validateColour(colour string) error {
	if len(colour) != colourLength || !strings.HasPrefix(colour, "#") {
		return ErrInvalidColour
	}

	for _, r := range colour[1:] {
		isHex := (r >= '0' && r <= '9') || (r >= 'a' && r <= 'f') || (r >= 'A' && r <= 'F')
		if !isHex {
			return ErrInvalidColour
		}
	}

	return nil
}
