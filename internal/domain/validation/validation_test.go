package validation_test

import (
	"strings"
	"testing"
	"time"

	"github.com/escolarhq/eventos-admin/internal/domain/model"
	"github.com/escolarhq/eventos-admin/internal/domain/validation"
	. "github.com/smartystreets/goconvey/convey"
)

// validEvent returns an event that passes every check, dated tomorrow.
func validEvent() model.Event {
	return model.Event{
		Name:        "Congreso de Computación",
		Type:        "Conferencia",
		Date:        time.Now().AddDate(0, 0, 1).Format("2006-01-02"),
		StartTime:   "10:00 AM",
		EndTime:     "12:00 PM",
		Venue:       "Auditorio Central",
		Audience:    []string{model.AudienceTeachers},
		Responsable: 7,
		Description: "Charlas sobre avances recientes en computación.",
		Capacity:    120,
	}
}

func TestValidateValidEvent(t *testing.T) {
	Convey("Given a fully populated valid event", t, func() {
		errs := validation.Validate(validEvent(), false)

		Convey("Then the error map is empty", func() {
			So(errs, ShouldBeEmpty)
		})
	})
}

func TestValidateName(t *testing.T) {
	Convey("Given events with name problems", t, func() {
		Convey("When the name is missing", func() {
			e := validEvent()
			e.Name = ""
			errs := validation.Validate(e, false)

			Convey("Then only nombre_evento is reported", func() {
				So(errs, ShouldContainKey, "nombre_evento")
				So(errs, ShouldHaveLength, 1)
			})
		})

		Convey("When the name carries disallowed characters", func() {
			e := validEvent()
			e.Name = "Taller <script>"
			errs := validation.Validate(e, false)

			So(errs["nombre_evento"], ShouldEqual, "El nombre solo puede contener letras, números y espacios")
		})

		Convey("When the name uses Spanish diacritics", func() {
			e := validEvent()
			e.Name = "Seminario de Programación Ñandú"
			errs := validation.Validate(e, false)

			So(errs, ShouldNotContainKey, "nombre_evento")
		})
	})
}

func TestValidateDate(t *testing.T) {
	Convey("Given events with date problems", t, func() {
		Convey("When the date is missing", func() {
			e := validEvent()
			e.Date = ""
			errs := validation.Validate(e, false)

			So(errs["fecha"], ShouldEqual, "La fecha de realización es requerida")
		})

		Convey("When the date is before today", func() {
			e := validEvent()
			e.Date = time.Now().AddDate(0, 0, -1).Format("2006-01-02")
			errs := validation.Validate(e, false)

			So(errs["fecha"], ShouldEqual, "No se pueden seleccionar fechas anteriores al día actual")
		})

		Convey("When the date is today", func() {
			e := validEvent()
			e.Date = time.Now().Format("2006-01-02")
			errs := validation.Validate(e, false)

			So(errs, ShouldNotContainKey, "fecha")
		})

		Convey("When editing, the past-date rule still applies", func() {
			e := validEvent()
			e.Date = time.Now().AddDate(0, 0, -1).Format("2006-01-02")
			errs := validation.Validate(e, true)

			So(errs, ShouldContainKey, "fecha")
		})
	})
}

func TestValidateTimes(t *testing.T) {
	Convey("Given events with time ordering problems", t, func() {
		Convey("When the end time is before the start time", func() {
			e := validEvent()
			e.StartTime = "10:00 AM"
			e.EndTime = "9:00 AM"
			errs := validation.Validate(e, false)

			So(errs["hora_final"], ShouldEqual, "La hora final debe ser mayor que la hora de inicio")
		})

		Convey("When the times are swapped back into order", func() {
			e := validEvent()
			e.StartTime = "9:00 AM"
			e.EndTime = "10:00 AM"
			errs := validation.Validate(e, false)

			So(errs, ShouldNotContainKey, "hora_final")
		})

		Convey("When the end equals the start", func() {
			e := validEvent()
			e.StartTime = "10:00 AM"
			e.EndTime = "10:00 AM"
			errs := validation.Validate(e, false)

			So(errs, ShouldContainKey, "hora_final")
		})

		Convey("When mixing 24-hour and 12-hour forms", func() {
			e := validEvent()
			e.StartTime = "14:00"
			e.EndTime = "3:00 PM"
			errs := validation.Validate(e, false)

			So(errs, ShouldNotContainKey, "hora_final")
		})

		Convey("When one of the times is empty the rule does not fire", func() {
			e := validEvent()
			e.EndTime = ""
			errs := validation.Validate(e, false)

			So(errs, ShouldNotContainKey, "hora_final")
		})
	})
}

func TestValidateAudienceAndProgram(t *testing.T) {
	Convey("Given events with audience problems", t, func() {
		Convey("When no audience is selected", func() {
			e := validEvent()
			e.Audience = []string{}
			errs := validation.Validate(e, false)

			So(errs["publico_objetivo"], ShouldEqual, "Debe seleccionar al menos un público objetivo")
		})

		Convey("When students are targeted without a program", func() {
			e := validEvent()
			e.Audience = []string{model.AudienceStudents}
			e.Program = ""
			errs := validation.Validate(e, false)

			So(errs, ShouldContainKey, "programa_educativo")
		})

		Convey("When only teachers are targeted, no program is needed", func() {
			e := validEvent()
			e.Audience = []string{model.AudienceTeachers}
			e.Program = ""
			errs := validation.Validate(e, false)

			So(errs, ShouldNotContainKey, "programa_educativo")
		})

		Convey("When students are targeted with a program", func() {
			e := validEvent()
			e.Audience = []string{model.AudienceStudents}
			e.Program = model.Programs[0]
			errs := validation.Validate(e, false)

			So(errs, ShouldNotContainKey, "programa_educativo")
		})
	})
}

func TestValidateDescription(t *testing.T) {
	Convey("Given events with description problems", t, func() {
		Convey("When the description is missing", func() {
			e := validEvent()
			e.Description = ""
			errs := validation.Validate(e, false)

			So(errs["descripcion"], ShouldEqual, "La descripción es requerida")
		})

		Convey("When the description exceeds 300 characters", func() {
			e := validEvent()
			e.Description = strings.Repeat("a", 301)
			errs := validation.Validate(e, false)

			So(errs["descripcion"], ShouldEqual, "La descripción no puede exceder 300 caracteres")
		})

		Convey("When the description uses the allowed punctuation", func() {
			e := validEvent()
			e.Description = "¿Qué hay de nuevo? Charlas, talleres; más (detalles) \"aquí\" - ¡ven!"
			errs := validation.Validate(e, false)

			So(errs, ShouldNotContainKey, "descripcion")
		})

		Convey("When the description uses disallowed characters", func() {
			e := validEvent()
			e.Description = "precio: $100"
			errs := validation.Validate(e, false)

			So(errs, ShouldContainKey, "descripcion")
		})
	})
}

func TestValidateCapacityAndResponsable(t *testing.T) {
	Convey("Given events with capacity or responsible problems", t, func() {
		Convey("When capacity has four digits", func() {
			e := validEvent()
			e.Capacity = 1000
			errs := validation.Validate(e, false)

			So(errs, ShouldContainKey, "cupo_maximo")
		})

		Convey("When capacity has up to three digits", func() {
			e := validEvent()
			e.Capacity = 120
			errs := validation.Validate(e, false)

			So(errs, ShouldNotContainKey, "cupo_maximo")
		})

		Convey("When capacity is zero it is reported as required", func() {
			e := validEvent()
			e.Capacity = 0
			errs := validation.Validate(e, false)

			So(errs["cupo_maximo"], ShouldEqual, "El cupo máximo es requerido")
		})

		Convey("When capacity is negative", func() {
			e := validEvent()
			e.Capacity = -5
			errs := validation.Validate(e, false)

			So(errs, ShouldContainKey, "cupo_maximo")
		})

		Convey("When no responsible party is set", func() {
			e := validEvent()
			e.Responsable = 0
			errs := validation.Validate(e, false)

			So(errs["responsable"], ShouldEqual, "El responsable del evento es requerido")
		})
	})
}

func TestValidateReportsAllFailingFields(t *testing.T) {
	Convey("Given an entirely empty event", t, func() {
		errs := validation.Validate(model.NewEvent(), false)

		Convey("Then every required field appears independently", func() {
			for _, field := range []string{
				"nombre_evento", "tipo_evento", "fecha", "lugar",
				"publico_objetivo", "responsable", "descripcion", "cupo_maximo",
			} {
				So(errs, ShouldContainKey, field)
			}
		})

		Convey("Then fields with no applicable rule stay absent", func() {
			So(errs, ShouldNotContainKey, "hora_final")
			So(errs, ShouldNotContainKey, "programa_educativo")
		})
	})
}
