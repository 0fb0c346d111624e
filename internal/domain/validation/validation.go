// Package validation checks candidate events field by field before they are
// submitted to the API. It owns no transport or rendering concerns.
package validation

import (
	"regexp"
	"strconv"
	"time"

	"github.com/escolarhq/eventos-admin/internal/domain/horario"
	"github.com/escolarhq/eventos-admin/internal/domain/model"
)

// Allow-listed character classes. Names and venues accept letters, digits,
// spaces and Spanish diacritics; descriptions additionally accept a small
// punctuation set.
var (
	alphanumeric = regexp.MustCompile(`^[a-zA-Z0-9\sáéíóúÁÉÍÓÚñÑ]+$`)
	description  = regexp.MustCompile(`^[a-zA-Z0-9\sáéíóúÁÉÍÓÚñÑ.,;:¿?¡!()"-]+$`)
	capacity     = regexp.MustCompile(`^[1-9]\d{0,2}$`)
)

const maxDescriptionLen = 300

// Errors maps a wire field name to a human-readable message. An empty map
// means the event is acceptable.
type Errors map[string]string

// Validate checks every field independently and returns one message per
// failing field. The editing flag is part of the contract but currently
// alters no rule.
func Validate(e model.Event, editing bool) Errors {
	errs := Errors{}

	if e.Name == "" {
		errs["nombre_evento"] = "El nombre del evento es requerido"
	} else if !alphanumeric.MatchString(e.Name) {
		errs["nombre_evento"] = "El nombre solo puede contener letras, números y espacios"
	}

	if e.Type == "" {
		errs["tipo_evento"] = "El tipo de evento es requerido"
	}

	if e.Date == "" {
		errs["fecha"] = "La fecha de realización es requerida"
	} else if d, err := time.ParseInLocation("2006-01-02", e.Date, time.Local); err == nil {
		now := time.Now()
		today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.Local)
		if d.Before(today) {
			errs["fecha"] = "No se pueden seleccionar fechas anteriores al día actual"
		}
	}

	// Only comparable when both ends are present.
	if e.StartTime != "" && e.EndTime != "" {
		if horario.ToMinutes(e.EndTime) <= horario.ToMinutes(e.StartTime) {
			errs["hora_final"] = "La hora final debe ser mayor que la hora de inicio"
		}
	}

	if e.Venue == "" {
		errs["lugar"] = "El lugar es requerido"
	} else if !alphanumeric.MatchString(e.Venue) {
		errs["lugar"] = "El lugar solo puede contener caracteres alfanuméricos y espacios"
	}

	if len(e.Audience) == 0 {
		errs["publico_objetivo"] = "Debe seleccionar al menos un público objetivo"
	}

	if e.HasAudience(model.AudienceStudents) && e.Program == "" {
		errs["programa_educativo"] = "El programa educativo es requerido cuando el público objetivo incluye estudiantes"
	}

	if e.Responsable == 0 {
		errs["responsable"] = "El responsable del evento es requerido"
	}

	if e.Description == "" {
		errs["descripcion"] = "La descripción es requerida"
	} else if len([]rune(e.Description)) > maxDescriptionLen {
		errs["descripcion"] = "La descripción no puede exceder 300 caracteres"
	} else if !description.MatchString(e.Description) {
		errs["descripcion"] = "La descripción solo puede contener letras, números y signos de puntuación básicos"
	}

	if e.Capacity == 0 {
		errs["cupo_maximo"] = "El cupo máximo es requerido"
	} else if !capacity.MatchString(strconv.Itoa(e.Capacity)) {
		errs["cupo_maximo"] = "El cupo máximo debe ser un número entero positivo de máximo 3 dígitos"
	}

	return errs
}
