package notify

import (
	"context"

	"tendorai/internal/domain/lead"
)

// Sender pushes lead events to vendor dashboards over the hub
type Sender struct {
	hub *Hub
}

func NewSender(hub *Hub) *Sender {
	return &Sender{hub: hub}
}

func (s *Sender) NotifyLeadCreated(_ context.Context, vendorUserID int64, l *lead.Lead) {
	s.hub.SendToUser(vendorUserID, &Event{
		Type: EventLeadCreated,
		Payload: map[string]any{
			"lead_id":      l.ID,
			"company_name": l.CompanyName,
			"category":     l.Category,
			"created_at":   l.CreatedAt,
		},
	})
}

func (s *Sender) NotifyLeadStatusChanged(_ context.Context, vendorUserID int64, l *lead.Lead) {
	s.hub.SendToUser(vendorUserID, &Event{
		Type: EventLeadStatusChanged,
		Payload: map[string]any{
			"lead_id": l.ID,
			"status":  l.Status,
		},
	})
}
