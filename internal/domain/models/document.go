package models

// MinutesRef points at one meeting-minutes document on the source site.
type MinutesRef struct {
	DocumentID string `json:"document_id"` // meeting date, e.g. 2024-10-11
	Title      string `json:"title"`
	PDFURL     string `json:"pdf_url"`
}

// Document is a meeting-minutes text ready for scoring.
type Document struct {
	DocumentID string `json:"document_id"`
	Text       string `json:"text"`
}
