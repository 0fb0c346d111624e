package app_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/escolarhq/eventos-admin/internal/adapters/api"
	"github.com/escolarhq/eventos-admin/internal/app"
	"github.com/escolarhq/eventos-admin/internal/domain/model"
	. "github.com/smartystreets/goconvey/convey"
)

func TestReportEventCharts(t *testing.T) {
	Convey("Given an API with dated and typed events", t, func() {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_ = json.NewEncoder(w).Encode([]model.Event{
				{Type: "Taller", Date: "2026-03-12"},
				{Type: "Taller", Date: "2026-03-20"},
				{Type: "Conferencia", Date: "fecha-rota"},
			})
		}))
		defer srv.Close()

		rc := app.NewReportController(api.NewClient(srv.URL))

		Convey("When assembling the event charts", func() {
			byType, byMonth, err := rc.EventCharts(context.Background())

			Convey("Then types count in first-seen order", func() {
				So(err, ShouldBeNil)
				So(byType.Labels, ShouldResemble, []string{"Taller", "Conferencia"})
				So(byType.Data, ShouldResemble, []int{2, 1})
			})

			Convey("Then the broken date is skipped from the monthly counts", func() {
				So(byMonth.Data[2], ShouldEqual, 2)
				total := 0
				for _, n := range byMonth.Data {
					total += n
				}
				So(total, ShouldEqual, 2)
			})
		})
	})
}

func TestReportUserChart(t *testing.T) {
	Convey("Given an API with user totals", t, func() {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_ = json.NewEncoder(w).Encode(model.UserTotals{Admins: 12, Teachers: 30, Students: 200})
		}))
		defer srv.Close()

		rc := app.NewReportController(api.NewClient(srv.URL))

		Convey("When assembling the user chart", func() {
			ds, err := rc.UserChart(context.Background())

			So(err, ShouldBeNil)
			So(ds.Labels, ShouldResemble, []string{"Administradores", "Maestros", "Alumnos"})
			So(ds.Data, ShouldResemble, []int{12, 30, 200})
		})
	})

	Convey("Given an API that fails", t, func() {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
		}))
		defer srv.Close()

		rc := app.NewReportController(api.NewClient(srv.URL))
		_, err := rc.UserChart(context.Background())

		So(err, ShouldWrap, api.ErrStatus)
	})
}
