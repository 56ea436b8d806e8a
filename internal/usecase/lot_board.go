package usecase

import (
	"context"
	"strings"

	"paintshop_lots/internal/domain/entities"
)

// BoardFilter narrows the board. Empty tri-state values and Station 0 mean "any".
// Station only narrows the scheduled column.
type BoardFilter struct {
	Search      string
	Payment     entities.TriState
	Measurement entities.TriState
	Invoice     entities.TriState
	Station     int
}

type BoardStats struct {
	Total     int `json:"total"`
	Received  int `json:"received"`
	Scheduled int `json:"scheduled"`
	Painted   int `json:"painted"`
}

// Board is the production board: one column per stage.
type Board struct {
	Received  []entities.Lot `json:"received"`
	Scheduled []entities.Lot `json:"scheduled"`
	Painted   []entities.Lot `json:"painted"`
	Stats     BoardStats     `json:"stats"`
}

func (f BoardFilter) matches(l entities.Lot) bool {
	if q := strings.ToLower(strings.TrimSpace(f.Search)); q != "" {
		if !strings.Contains(strings.ToLower(l.Client), q) && !strings.Contains(strings.ToLower(l.Color), q) {
			return false
		}
	}
	if f.Payment != "" && l.Payment != f.Payment {
		return false
	}
	if f.Measurement != "" && l.Measurement != f.Measurement {
		return false
	}
	if f.Invoice != "" && l.Invoice != f.Invoice {
		return false
	}
	if f.Station != 0 && l.Scheduled && (l.Station == nil || *l.Station != f.Station) {
		return false
	}
	return true
}

// Board splits the active lots into stage columns. Stats count every active
// lot regardless of the filter.
func (u *LotUseCase) Board(ctx context.Context, f BoardFilter) (Board, error) {
	all, err := u.lots.List(ctx)
	if err != nil {
		return Board{}, err
	}

	b := Board{
		Received:  []entities.Lot{},
		Scheduled: []entities.Lot{},
		Painted:   []entities.Lot{},
	}
	b.Stats.Total = len(all)
	for _, l := range SortForDisplay(all) {
		stage := l.Stage()
		switch stage {
		case entities.StagePainted:
			b.Stats.Painted++
		case entities.StageScheduled:
			b.Stats.Scheduled++
		default:
			b.Stats.Received++
		}
		if !f.matches(l) {
			continue
		}
		switch stage {
		case entities.StagePainted:
			b.Painted = append(b.Painted, l)
		case entities.StageScheduled:
			b.Scheduled = append(b.Scheduled, l)
		default:
			b.Received = append(b.Received, l)
		}
	}
	return b, nil
}
