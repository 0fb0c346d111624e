// Package model contains typed records exchanged with the academic-events API.
package model

// Roles recognized by the listing and delete permission checks.
const (
	RoleAdmin   = "administrador"
	RoleTeacher = "maestro"
	RoleStudent = "alumno"
)

// Audience tags accepted by the event form checkboxes.
const (
	AudienceStudents = "Estudiantes"
	AudienceTeachers = "Profesores"
	AudienceGeneral  = "Público general"
)

// EventTypes lists the selectable event categories.
var EventTypes = []string{
	"Conferencia",
	"Taller",
	"Seminario",
	"Concurso",
}

// Programs lists the selectable education programs. The field is only
// required when the audience includes students.
var Programs = []string{
	"Ingeniería en Ciencias de la Computación",
	"Licenciatura en Ciencias de la Computación",
	"Ingeniería en Tecnologías de la Información",
}

// Event is an academic event as sent to and received from the API.
// JSON tags carry the wire field names; unknown fields in responses are
// ignored by decoding into this struct.
type Event struct {
	ID          int      `json:"id,omitempty"`
	Name        string   `json:"nombre_evento"`
	Type        string   `json:"tipo_evento"`
	Date        string   `json:"fecha"` // YYYY-MM-DD
	StartTime   string   `json:"hora_inicio"`
	EndTime     string   `json:"hora_final"`
	Venue       string   `json:"lugar"`
	Audience    []string `json:"publico_objetivo"`
	Program     string   `json:"programa_educativo"`
	Responsable int      `json:"responsable"`
	Description string   `json:"descripcion"`
	Capacity    int      `json:"cupo_maximo"`
}

// NewEvent returns the empty schema used to seed the creation form.
func NewEvent() Event {
	return Event{
		Audience: []string{},
	}
}

// HasAudience reports whether the event targets the given audience tag.
func (e Event) HasAudience(tag string) bool {
	for _, a := range e.Audience {
		if a == tag {
			return true
		}
	}
	return false
}

// Responsable is a person who can be accountable for an event, merged
// client-side from the teacher and administrator lists.
type Responsable struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
	Tipo string `json:"tipo"` // "Maestro" or "Administrador"
}

// UserTotals holds the aggregate role counts used by the report charts.
type UserTotals struct {
	Admins   int `json:"admins"`
	Teachers int `json:"maestros"`
	Students int `json:"alumnos"`
}
