package entity

import "time"

// QueueTicket is the slip handed to a patient waiting for a counter.
type QueueTicket struct {
	Number      string    `json:"number"`
	Service     string    `json:"service"`
	PatientName string    `json:"patientName,omitempty"`
	Counter     string    `json:"counter,omitempty"`
	IssuedAt    time.Time `json:"issuedAt"`
}

// MaxPrintCopies bounds PrintJob.Copies, matching the queue ticket form limit.
const MaxPrintCopies = 5

// PrintJob is the message published for the ticket printer.
type PrintJob struct {
	ID          string      `json:"id"`
	Ticket      QueueTicket `json:"ticket"`
	Copies      int         `json:"copies"`
	RequestedAt time.Time   `json:"requestedAt"`
}
