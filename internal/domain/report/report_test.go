package report_test

import (
	"testing"

	"github.com/escolarhq/eventos-admin/internal/domain/model"
	"github.com/escolarhq/eventos-admin/internal/domain/report"
	. "github.com/smartystreets/goconvey/convey"
)

func TestCountByType(t *testing.T) {
	Convey("Given events of several types", t, func() {
		events := []model.Event{
			{Type: "Taller"},
			{Type: "Conferencia"},
			{Type: "Taller"},
			{Type: ""},
		}

		ds := report.CountByType(events)

		Convey("Then labels keep first-seen order", func() {
			So(ds.Labels, ShouldResemble, []string{"Taller", "Conferencia", "Sin Tipo"})
		})

		Convey("Then counts line up with their labels", func() {
			So(ds.Data, ShouldResemble, []int{2, 1, 1})
		})
	})

	Convey("Given no events", t, func() {
		ds := report.CountByType(nil)

		Convey("Then the dataset is empty", func() {
			So(ds.Labels, ShouldBeEmpty)
			So(ds.Data, ShouldBeEmpty)
		})
	})
}

func TestCountByMonth(t *testing.T) {
	Convey("Given events across the year", t, func() {
		events := []model.Event{
			{Date: "2026-01-10"},
			{Date: "2026-01-25"},
			{Date: "2026-09-01"},
			{Date: "not-a-date"},
			{Date: ""},
		}

		ds := report.CountByMonth(events)

		Convey("Then each month is labelled in Spanish", func() {
			So(ds.Labels, ShouldHaveLength, 12)
			So(ds.Labels[0], ShouldEqual, "Enero")
			So(ds.Labels[11], ShouldEqual, "Diciembre")
		})

		Convey("Then counts land in the right month", func() {
			So(ds.Data[0], ShouldEqual, 2)
			So(ds.Data[8], ShouldEqual, 1)
		})

		Convey("Then unparseable dates are skipped, not counted", func() {
			total := 0
			for _, n := range ds.Data {
				total += n
			}
			So(total, ShouldEqual, 3)
		})
	})
}

func TestUserDataset(t *testing.T) {
	Convey("Given aggregate user totals", t, func() {
		ds := report.UserDataset(model.UserTotals{Admins: 89, Teachers: 34, Students: 43})

		Convey("Then the chart order is admins, teachers, students", func() {
			So(ds.Labels, ShouldResemble, []string{"Administradores", "Maestros", "Alumnos"})
			So(ds.Data, ShouldResemble, []int{89, 34, 43})
		})
	})
}
