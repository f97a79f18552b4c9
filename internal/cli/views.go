package cli

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/plannerhub/internal/cli/formatter"
	"github.com/alexanderramin/plannerhub/internal/domain"
	"github.com/alexanderramin/plannerhub/internal/routes"
	"github.com/alexanderramin/plannerhub/internal/scheduler"
	"github.com/alexanderramin/plannerhub/internal/service"
)

const identificationHint = "Sign in with `plannerhub login USERNAME` to open the planner."

// renderRoute renders the screen a resolved route leads to.
func renderRoute(app *App, route routes.Route) (string, error) {
	switch {
	case route.IsIdentification():
		return formatter.Header("Identification") + "\n" + identificationHint + "\n", nil
	case route.ItemID == "":
		cards, err := app.Dashboard.Build(app.now())
		if err != nil {
			return "", err
		}
		return formatter.FormatDashboard(cards, app.now()), nil
	}

	doc := app.State.Current()
	if doc == nil {
		return "", service.ErrNotLoaded
	}
	item, ok := doc.FindItem(route.ItemID)
	if !ok {
		return "", fmt.Errorf("%w: %s", service.ErrItemNotFound, route.ItemID)
	}
	return renderItem(item, route.Feature, app), nil
}

func renderItem(item domain.MenuItem, feature domain.Feature, app *App) string {
	var b strings.Builder
	b.WriteString(formatter.Header(item.Title) + "\n")
	if item.Description != "" {
		b.WriteString(formatter.Dim(item.Description) + "\n")
	}
	b.WriteString("\n")

	switch feature {
	case domain.FeatureTodo:
		b.WriteString(formatter.FormatTodoSections(item.Content, ""))
	case domain.FeatureNotes:
		b.WriteString(formatter.FormatNotes(item.Content))
	case domain.FeatureSchedule:
		b.WriteString(formatter.FormatSchedule(scheduler.Sorted(scheduler.ScheduleEntries(item)), app.now()))
	default:
		if !item.HasContent() {
			b.WriteString(formatter.Dim("No content.") + "\n")
			break
		}
		for _, s := range item.Content {
			b.WriteString(formatter.StyleHeader.Render(s.Title) + "\n")
			b.WriteString(formatter.FormatEntries(s.Entries))
		}
	}
	return b.String()
}
