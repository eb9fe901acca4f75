package models

// Project is a Gantt chart owned by an admin user and shared with invitees.
// The document id is a UUIDv4 string assigned at creation. CreatedAt and
// UpdatedAt are unix timestamps in seconds; UpdatedAt moves on every project
// or task mutation so clients can detect collaborators' changes cheaply.
type Project struct {
	UUID      string   `json:"_id" bson:"_id"`
	Name      string   `json:"name" bson:"name"`
	Admin     string   `json:"admin" bson:"admin"`
	CreatedAt float64  `json:"created_at" bson:"created_at"`
	UpdatedAt float64  `json:"updated_at" bson:"updated_at"`
	Invitees  []string `json:"invitees" bson:"invitees"`
}

// HasAccess reports whether username may read or modify the project.
// Only the admin may rename, delete, or invite.
func (p Project) HasAccess(username string) bool {
	if p.Admin == username {
		return true
	}
	for _, invitee := range p.Invitees {
		if invitee == username {
			return true
		}
	}
	return false
}
