// Package report aggregates event lists into chart-ready datasets. Chart
// rendering itself lives outside this module.
package report

import (
	"time"

	"github.com/escolarhq/eventos-admin/internal/domain/model"
)

// Months are the line-chart labels, January first.
var Months = []string{
	"Enero", "Febrero", "Marzo", "Abril", "Mayo", "Junio",
	"Julio", "Agosto", "Septiembre", "Octubre", "Noviembre", "Diciembre",
}

// Dataset pairs chart labels with their counts.
type Dataset struct {
	Labels []string
	Data   []int
}

// CountByType counts events per event type, labels in first-seen order.
// Events without a type fall under "Sin Tipo".
func CountByType(events []model.Event) Dataset {
	counts := map[string]int{}
	labels := []string{}
	for _, e := range events {
		tipo := e.Type
		if tipo == "" {
			tipo = "Sin Tipo"
		}
		if _, seen := counts[tipo]; !seen {
			labels = append(labels, tipo)
		}
		counts[tipo]++
	}
	data := make([]int, len(labels))
	for i, l := range labels {
		data[i] = counts[l]
	}
	return Dataset{Labels: labels, Data: data}
}

// CountByMonth counts events per calendar month of their date. Events with
// unparseable dates are skipped rather than reported.
func CountByMonth(events []model.Event) Dataset {
	data := make([]int, len(Months))
	for _, e := range events {
		d, err := time.Parse("2006-01-02", e.Date)
		if err != nil {
			continue
		}
		data[d.Month()-1]++
	}
	return Dataset{Labels: Months, Data: data}
}

// UserDataset lays out the role totals in the order the pie and doughnut
// charts expect.
func UserDataset(t model.UserTotals) Dataset {
	return Dataset{
		Labels: []string{"Administradores", "Maestros", "Alumnos"},
		Data:   []int{t.Admins, t.Teachers, t.Students},
	}
}
