package response

import (
	"time"

	"paintshop_lots/internal/domain/entities"
	"paintshop_lots/internal/usecase"
)

type LotResponse struct {
	ID              string     `json:"id"`
	Client          string     `json:"client"`
	Color           string     `json:"color"`
	Quantity        int        `json:"quantity"`
	Photo           string     `json:"photo,omitempty"`
	DeliveryDue     *time.Time `json:"delivery_due,omitempty"`
	PaymentMethod   string     `json:"payment_method,omitempty"`
	Note            string     `json:"note,omitempty"`
	RequiresInvoice bool       `json:"requires_invoice"`

	Payment     string `json:"payment"`
	Measurement string `json:"measurement"`
	Invoice     string `json:"invoice"`

	Scheduled  bool   `json:"scheduled"`
	Painted    bool   `json:"painted"`
	Promised   bool   `json:"promised"`
	Station    *int   `json:"station,omitempty"`
	PaintOrder *int   `json:"paint_order,omitempty"`
	Stage      string `json:"stage"`
	CanDeliver bool   `json:"can_deliver"`

	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
	PaintedAt *time.Time `json:"painted_at,omitempty"`
	Version   int64      `json:"version"`
}

func FromLot(l entities.Lot) LotResponse {
	return LotResponse{
		ID:              l.ID,
		Client:          l.Client,
		Color:           l.Color,
		Quantity:        l.Quantity,
		Photo:           l.Photo,
		DeliveryDue:     l.DeliveryDue,
		PaymentMethod:   l.PaymentMethod,
		Note:            l.Note,
		RequiresInvoice: l.RequiresInvoice,
		Payment:         string(l.Payment),
		Measurement:     string(l.Measurement),
		Invoice:         string(l.Invoice),
		Scheduled:       l.Scheduled,
		Painted:         l.Painted,
		Promised:        l.Promised,
		Station:         l.Station,
		PaintOrder:      l.PaintOrder,
		Stage:           string(l.Stage()),
		CanDeliver:      l.CanDeliver(),
		CreatedAt:       l.CreatedAt,
		UpdatedAt:       l.UpdatedAt,
		PaintedAt:       l.PaintedAt,
		Version:         l.Version,
	}
}

func FromLots(lots []entities.Lot) []LotResponse {
	out := make([]LotResponse, 0, len(lots))
	for _, l := range lots {
		out = append(out, FromLot(l))
	}
	return out
}

// ToggleResponse carries the settlement prompt when the toggle opened one.
type ToggleResponse struct {
	Lot    LotResponse                `json:"lot"`
	Prompt *entities.SettlementPrompt `json:"settlement_prompt,omitempty"`
}

type ScanResponse struct {
	Lot     LotResponse `json:"lot"`
	Changed bool        `json:"changed"`
}

type DeliverableResponse struct {
	LotID      string `json:"lot_id"`
	CanDeliver bool   `json:"can_deliver"`
}

type BoardResponse struct {
	Received  []LotResponse      `json:"received"`
	Scheduled []LotResponse      `json:"scheduled"`
	Painted   []LotResponse      `json:"painted"`
	Stats     usecase.BoardStats `json:"stats"`
}

func FromBoard(b usecase.Board) BoardResponse {
	return BoardResponse{
		Received:  FromLots(b.Received),
		Scheduled: FromLots(b.Scheduled),
		Painted:   FromLots(b.Painted),
		Stats:     b.Stats,
	}
}

type StationQueueResponse struct {
	Station int           `json:"station"`
	Lots    []LotResponse `json:"lots"`
}

type HistoryEntryResponse struct {
	LotResponse
	DeliveredAt time.Time `json:"delivered_at"`
}

func FromHistoryEntry(h entities.HistoryEntry) HistoryEntryResponse {
	return HistoryEntryResponse{LotResponse: FromLot(h.Lot), DeliveredAt: h.DeliveredAt}
}

func FromHistoryEntries(hs []entities.HistoryEntry) []HistoryEntryResponse {
	out := make([]HistoryEntryResponse, 0, len(hs))
	for _, h := range hs {
		out = append(out, FromHistoryEntry(h))
	}
	return out
}

type HistoryMonthResponse struct {
	Month   string                 `json:"month"`
	Entries []HistoryEntryResponse `json:"entries"`
}

func FromHistoryMonths(ms []usecase.HistoryMonth) []HistoryMonthResponse {
	out := make([]HistoryMonthResponse, 0, len(ms))
	for _, m := range ms {
		out = append(out, HistoryMonthResponse{Month: m.Month, Entries: FromHistoryEntries(m.Entries)})
	}
	return out
}
