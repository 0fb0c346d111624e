// Package visibility narrows event listings to what a given role may see.
package visibility

import (
	"strings"

	"github.com/escolarhq/eventos-admin/internal/domain/model"
)

// VisibleTo filters events by role. Administrators see everything in the
// original order; teachers and students see events whose joined audience
// tags mention their group; any other role sees nothing.
//
// Matching is substring containment over the space-joined audience list,
// not exact set membership. That is the behavior the rest of the product
// depends on and it is kept as-is.
func VisibleTo(role string, events []model.Event) []model.Event {
	if role == model.RoleAdmin {
		return events
	}

	visible := []model.Event{}
	for _, e := range events {
		audience := strings.Join(e.Audience, " ")
		switch role {
		case model.RoleTeacher:
			if strings.Contains(audience, model.AudienceTeachers) ||
				(strings.Contains(audience, model.AudienceGeneral) && strings.Contains(audience, model.AudienceTeachers)) {
				visible = append(visible, e)
			}
		case model.RoleStudent:
			if strings.Contains(audience, model.AudienceStudents) ||
				(strings.Contains(audience, model.AudienceGeneral) && strings.Contains(audience, model.AudienceStudents)) {
				visible = append(visible, e)
			}
		}
	}
	return visible
}

// MatchesSearch reports whether the event matches a case-insensitive
// substring query over its name and type.
func MatchesSearch(e model.Event, query string) bool {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return true
	}
	return strings.Contains(strings.ToLower(e.Name), q) ||
		strings.Contains(strings.ToLower(e.Type), q)
}
