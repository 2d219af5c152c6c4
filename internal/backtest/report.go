package backtest

import "PolicyTone/internal/domain/models"

const defaultChunkSize = 5

// BuildReport aggregates an ordered record sequence into overall
// accuracy, an expanding-window cumulative accuracy curve, and a
// fixed-size chunked accuracy summary. The final chunk keeps its true
// (possibly smaller) size.
func BuildReport(records []models.BacktestRecord, chunkSize int) models.BacktestReport {
	if chunkSize < 1 {
		chunkSize = defaultChunkSize
	}

	report := models.BacktestReport{
		Total:              len(records),
		CumulativeAccuracy: make([]float64, 0, len(records)),
		Records:            records,
	}

	correct := 0
	for i, rec := range records {
		if rec.IsCorrect {
			correct++
		}
		report.CumulativeAccuracy = append(report.CumulativeAccuracy, float64(correct)/float64(i+1))
	}
	report.Correct = correct
	if report.Total > 0 {
		report.Accuracy = float64(correct) / float64(report.Total)
	}

	for start := 0; start < len(records); start += chunkSize {
		end := start + chunkSize
		if end > len(records) {
			end = len(records)
		}
		chunk := records[start:end]
		hits := 0
		for _, rec := range chunk {
			if rec.IsCorrect {
				hits++
			}
		}
		report.Chunks = append(report.Chunks, models.ChunkAccuracy{
			StartDate: chunk[0].Date,
			EndDate:   chunk[len(chunk)-1].Date,
			Size:      len(chunk),
			Correct:   hits,
			Accuracy:  float64(hits) / float64(len(chunk)),
		})
	}
	return report
}
