package models

import "time"

// ChatSummary is the latest message exchanged with one conversation partner.
type ChatSummary struct {
	PartnerID   int       `json:"partner_id"`
	PartnerName *string   `json:"partner_name"`
	Message     string    `json:"message"`
	Timestamp   time.Time `json:"timestamp"`
}
