package models

// Requests for analysis HTTP endpoints. Defined in domain for consistency and reuse.

type ToneRequest struct {
	DocumentID string `json:"document_id" validate:"required"`
	Text       string `json:"text"`
}

type BacktestRequest struct {
	StartIndex int `query:"start" json:"start" default:"10" validate:"gte=1,lte=1000"`
	ChunkSize  int `query:"chunk" json:"chunk" default:"5" validate:"gte=1,lte=100"`
}

type LexiconStatsRequest struct {
	Polarity string `query:"polarity" json:"polarity" default:"all" validate:"oneof=all hawkish dovish"`
}
