package service

import (
	"time"

	"github.com/alexanderramin/plannerhub/internal/domain"
	"github.com/alexanderramin/plannerhub/internal/scheduler"
)

// Card is one dashboard tile. Exactly one of the preview fields is filled,
// chosen by Feature.
type Card struct {
	ItemID      string
	Title       string
	Description string
	Path        string
	Feature     domain.Feature
	Todos       []domain.TodoEntry
	Note        *domain.NoteEntry
	Schedule    []domain.ScheduleEntry
	Entries     []domain.Entry
}

// Empty reports whether the card has nothing to preview.
func (c Card) Empty() bool {
	return len(c.Todos) == 0 && c.Note == nil && len(c.Schedule) == 0 && len(c.Entries) == 0
}

type dashboardService struct {
	state StateManager
}

func NewDashboardService(state StateManager) DashboardService {
	return &dashboardService{state: state}
}

// Build returns a card for every item flagged for the dashboard that carries
// a section list, in menu order.
func (s *dashboardService) Build(now time.Time) ([]Card, error) {
	doc := s.state.Current()
	if doc == nil {
		return nil, ErrNotLoaded
	}

	var cards []Card
	for _, item := range doc.Menu.Items {
		if !bool(item.ShowOnDashboard) || !item.HasContent() || item.ID == domain.IndexItemID {
			continue
		}
		cards = append(cards, buildCard(item, now))
	}
	return cards, nil
}

func buildCard(item domain.MenuItem, now time.Time) Card {
	card := Card{
		ItemID:      item.ID,
		Title:       item.Title,
		Description: item.Description,
		Path:        "/" + item.ID,
		Feature:     item.Feature(),
	}
	switch card.Feature {
	case domain.FeatureTodo:
		card.Todos = scheduler.TodoPreview(item, now, scheduler.PreviewLimit)
	case domain.FeatureNotes:
		if note, ok := scheduler.LatestNote(item); ok {
			card.Note = &note
		}
	case domain.FeatureSchedule:
		card.Schedule = scheduler.SchedulePreview(scheduler.ScheduleEntries(item), now)
	default:
		card.Entries = scheduler.GenericPreview(item, scheduler.PreviewLimit)
	}
	return card
}
