package models

// Task type discriminators. Milestones render as a single point on the
// timeline; tasks span start to end date.
const (
	TaskTypeTask      = "task"
	TaskTypeMilestone = "milestone"
)

// Task is a single bar or milestone on a project timeline, stored in the
// projects/tasks collection. The document id is "<task_uuid>:<project_uuid>"
// so a task uuid may repeat across projects without colliding.
//
// Row is the zero-based display row inside the project's timeline grid.
// Rows are kept dense: deleting a task shifts every later row up by one.
// StartDate and EndDate are unix timestamps in seconds. Colour is a
// "#RRGGBB" string. Dependencies holds task uuids within the same project
// that this task depends on.
type Task struct {
	ID           string   `json:"_id" bson:"_id"`
	TaskUUID     string   `json:"task_uuid" bson:"task_uuid"`
	ProjectUUID  string   `json:"project_uuid" bson:"project_uuid"`
	Type         string   `json:"task_type" bson:"task_type"`
	Row          int      `json:"row" bson:"row"`
	Name         string   `json:"name" bson:"name"`
	Description  string   `json:"description" bson:"description"`
	StartDate    int64    `json:"start_date" bson:"start_date"`
	EndDate      int64    `json:"end_date" bson:"end_date"`
	Completed    bool     `json:"completed" bson:"completed"`
	Colour       string   `json:"colour" bson:"colour"`
	Dependencies []string `json:"dependencies" bson:"dependencies"`
}

// TaskDraft carries the user-editable task fields of a create request.
// Identity and placement fields (uuid, project, row) are assigned
// server-side.
type TaskDraft struct {
	Type         string   `json:"task_type"`
	Name         string   `json:"name"`
	Description  string   `json:"description"`
	StartDate    int64    `json:"start_date"`
	EndDate      int64    `json:"end_date"`
	Completed    bool     `json:"completed"`
	Colour       string   `json:"colour"`
	Dependencies []string `json:"dependencies"`
}
