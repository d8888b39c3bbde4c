package entity

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"
)

// DateLayout is the wire format for feature dates.
const DateLayout = "2006-01-02"

// Development statuses, in Kanban lane order.
const (
	StatusNotStarted = "Not Started"
	StatusDesign     = "Design Phase"
	StatusPrototype  = "Prototype"
	StatusWorking    = "Working on it"
	StatusStuck      = "Stuck"
	StatusDone       = "Done"
	StatusObsolete   = "Obsoleta"
)

// KanbanLanes is the fixed lane order of the Kanban projection. A feature
// whose status is not in this list is invisible in that view.
var KanbanLanes = []string{
	StatusNotStarted,
	StatusDesign,
	StatusPrototype,
	StatusWorking,
	StatusStuck,
	StatusDone,
	StatusObsolete,
}

const (
	// AssigneeNone marks a feature nobody owns yet.
	AssigneeNone = "Sin Asignar"
	// AssigneeAll is the wildcard value of the assignee filter.
	AssigneeAll = "Todos"

	// CategoryIdea is assigned to features created through the idea intake.
	CategoryIdea = "Idea"
)

// Eisenhower quadrants. A nil Feature.Eisenhower means unclassified.
const (
	QuadrantDoNow    = 1
	QuadrantPlan     = 2
	QuadrantDelegate = 3
	QuadrantDrop     = 4
)

// Project is the unit of persistence: settings and roadmap travel as one
// document and are replaced wholesale on every mutation. Revision increments
// on each write and backs the optimistic concurrency check.
type Project struct {
	ID        string      `json:"id" gorm:"primaryKey;size:32"`
	Name      string      `json:"name" gorm:"size:128;not null"`
	Settings  SettingsDoc `json:"settings" gorm:"type:jsonb"`
	Roadmap   RoadmapDoc  `json:"roadmap" gorm:"type:jsonb"`
	Revision  int64       `json:"revision" gorm:"not null;default:1"`
	CreatedBy string      `json:"created_by" gorm:"size:32"`
	CreatedAt time.Time   `json:"created_at"`
	UpdatedAt time.Time   `json:"updated_at"`
	DeletedAt *time.Time  `json:"deleted_at,omitempty" gorm:"index"`
}

func (Project) TableName() string {
	return "projects"
}

// CostCategory is one named line item of a cost pool.
type CostCategory struct {
	ID     string  `json:"id"`
	Name   string  `json:"name"`
	Amount float64 `json:"amount"`
}

// Settings holds a project's financial configuration. The daily OPEX rate and
// the base COGS are derived from the category lists on every read, never
// stored.
type Settings struct {
	OpexCategories []CostCategory `json:"opexCategories"`
	CogsCategories []CostCategory `json:"cogsCategories"`
	CogsMultiplier float64        `json:"cogsMultiplier"`
}

// Version is a roadmap bucket: a release milestone with an effort capacity in
// days. Order within the roadmap is significant; the last version is the
// landing bucket for new ideas.
type Version struct {
	ID       string    `json:"id"`
	Name     string    `json:"name"`
	Color    string    `json:"color"`
	Limit    int       `json:"limit"`
	Features []Feature `json:"features"`
}

// Feature is a roadmap card. It belongs to exactly one version at a time.
type Feature struct {
	ID         string `json:"id"`
	Title      string `json:"title"`
	EffortMin  int    `json:"effortMin"`
	EffortMax  int    `json:"effortMax"`
	Impact     int    `json:"impact"`
	Complexity int    `json:"complexity"`
	Category   string `json:"category"`
	DevStatus  string `json:"devStatus"`
	Assignee   string `json:"assignee"`
	Eisenhower *int   `json:"eisenhower"`
	StartDate  string `json:"startDate"`
	EndDate    string `json:"endDate"`
}

// Roadmap is the ordered version list of one project.
type Roadmap []Version

// SettingsDoc maps Settings onto a Postgres jsonb column.
type SettingsDoc Settings

func (d SettingsDoc) Value() (driver.Value, error) {
	return json.Marshal(Settings(d))
}

func (d *SettingsDoc) Scan(value interface{}) error {
	if value == nil {
		*d = SettingsDoc{}
		return nil
	}
	bytes, ok := value.([]byte)
	if !ok {
		if s, ok := value.(string); ok {
			bytes = []byte(s)
		} else {
			return errors.New("settings document: unsupported scan source")
		}
	}
	return json.Unmarshal(bytes, (*Settings)(d))
}

// RoadmapDoc maps a Roadmap onto a Postgres jsonb column.
type RoadmapDoc Roadmap

func (d RoadmapDoc) Value() (driver.Value, error) {
	if d == nil {
		return json.Marshal(Roadmap{})
	}
	return json.Marshal(Roadmap(d))
}

func (d *RoadmapDoc) Scan(value interface{}) error {
	if value == nil {
		*d = nil
		return nil
	}
	bytes, ok := value.([]byte)
	if !ok {
		if s, ok := value.(string); ok {
			bytes = []byte(s)
		} else {
			return errors.New("roadmap document: unsupported scan source")
		}
	}
	return json.Unmarshal(bytes, (*Roadmap)(d))
}
