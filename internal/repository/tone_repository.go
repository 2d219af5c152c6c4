package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"PolicyTone/internal/domain/models"
	"PolicyTone/internal/domain/repository"
	pkgkafka "PolicyTone/pkg/kafka"
	"PolicyTone/pkg/util"
)

// ClickHouseToneStore implements Storage for ClickHouse.
type ClickHouseToneStore struct {
	db            *sql.DB
	table         string
	backtestTable string
}

// NewClickHouseToneStore creates ClickHouse tone storage.
func NewClickHouseToneStore(db *sql.DB, table, backtestTable string) repository.Storage {
	return &ClickHouseToneStore{db: db, table: table, backtestTable: backtestTable}
}

func (s *ClickHouseToneStore) Init(ctx context.Context) error {
	stmts := []string{
		fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %s (
			doc_date Date,
			document_id String,
			tone_index Float64,
			hawkish_score Float64,
			dovish_score Float64,
			matched_terms String,
			inserted_at DateTime DEFAULT now()
		) ENGINE = ReplacingMergeTree(inserted_at)
		ORDER BY (doc_date, document_id)`, s.table),
		fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %s (
			run_id String,
			doc_date Date,
			document_id String,
			actual String,
			predicted String,
			is_correct UInt8,
			confidence Float64,
			tone_index Float64,
			inserted_at DateTime DEFAULT now()
		) ENGINE = MergeTree()
		ORDER BY (run_id, doc_date)`, s.backtestTable),
	}
	for _, stmt := range stmts {
		if _, err := s.db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("init schema: %w", err)
		}
	}
	return nil
}

func (s *ClickHouseToneStore) Store(ctx context.Context, rec *models.ToneRecord) error {
	return s.StoreBatch(ctx, []*models.ToneRecord{rec})
}

func (s *ClickHouseToneStore) StoreBatch(ctx context.Context, recs []*models.ToneRecord) error {
	if len(recs) == 0 {
		return nil
	}

	values := make([]string, 0, len(recs))
	args := make([]interface{}, 0, len(recs)*6)
	for _, rec := range recs {
		if rec == nil || rec.DocumentID == "" {
			continue
		}
		terms, err := json.Marshal(rec.MatchedTerms)
		if err != nil {
			return fmt.Errorf("marshal matched terms: %w", err)
		}
		values = append(values, "(?, ?, ?, ?, ?, ?)")
		args = append(args,
			util.ParseMeetingDateDefault(rec.DocumentID, time.Time{}),
			rec.DocumentID,
			rec.ToneIndex,
			rec.HawkishScore,
			rec.DovishScore,
			string(terms),
		)
	}
	if len(values) == 0 {
		return nil
	}

	q := fmt.Sprintf(
		"INSERT INTO %s (doc_date, document_id, tone_index, hawkish_score, dovish_score, matched_terms) VALUES %s",
		s.table, strings.Join(values, ","),
	)
	if _, err := s.db.ExecContext(ctx, q, args...); err != nil {
		return err
	}
	return nil
}

func (s *ClickHouseToneStore) Query(ctx context.Context, from, to time.Time, limit int) ([]*models.ToneRecord, error) {
	q := fmt.Sprintf(
		"SELECT document_id, tone_index, hawkish_score, dovish_score, matched_terms FROM %s WHERE doc_date >= ? AND doc_date <= ? ORDER BY doc_date LIMIT ?",
		s.table,
	)
	rows, err := s.db.QueryContext(ctx, q, from, to, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var recs []*models.ToneRecord
	for rows.Next() {
		var rec models.ToneRecord
		var terms string
		if err := rows.Scan(&rec.DocumentID, &rec.ToneIndex, &rec.HawkishScore, &rec.DovishScore, &terms); err != nil {
			return nil, err
		}
		if terms != "" {
			if err := json.Unmarshal([]byte(terms), &rec.MatchedTerms); err != nil {
				return nil, fmt.Errorf("unmarshal matched terms for %s: %w", rec.DocumentID, err)
			}
		}
		recs = append(recs, &rec)
	}
	return recs, rows.Err()
}

func (s *ClickHouseToneStore) StoreBacktest(ctx context.Context, runID string, recs []models.BacktestRecord) error {
	if len(recs) == 0 {
		return nil
	}

	values := make([]string, 0, len(recs))
	args := make([]interface{}, 0, len(recs)*8)
	for _, rec := range recs {
		isCorrect := uint8(0)
		if rec.IsCorrect {
			isCorrect = 1
		}
		values = append(values, "(?, ?, ?, ?, ?, ?, ?, ?)")
		args = append(args,
			runID,
			util.ParseMeetingDateDefault(rec.Date, time.Time{}),
			rec.Date,
			string(rec.Actual),
			string(rec.Predicted),
			isCorrect,
			rec.Confidence,
			rec.ToneIndex,
		)
	}

	q := fmt.Sprintf(
		"INSERT INTO %s (run_id, doc_date, document_id, actual, predicted, is_correct, confidence, tone_index) VALUES %s",
		s.backtestTable, strings.Join(values, ","),
	)
	if _, err := s.db.ExecContext(ctx, q, args...); err != nil {
		return err
	}
	return nil
}

func (s *ClickHouseToneStore) Health(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

func (s *ClickHouseToneStore) Close() error {
	return nil // Pool is managed by pkg
}

// KafkaTonePublisher implements Publisher for Kafka.
type KafkaTonePublisher struct {
	producer *pkgkafka.Producer
	topic    string
}

// NewKafkaTonePublisher creates Kafka tone publisher.
func NewKafkaTonePublisher(producer *pkgkafka.Producer, topic string) repository.Publisher {
	return &KafkaTonePublisher{producer: producer, topic: topic}
}

func (p *KafkaTonePublisher) Publish(ctx context.Context, rec *models.ToneRecord) error {
	return p.producer.Publish(ctx, p.topic, []byte(rec.DocumentID), rec)
}

func (p *KafkaTonePublisher) PublishBatch(ctx context.Context, recs []*models.ToneRecord) error {
	if len(recs) == 0 {
		return nil
	}
	msgs := make([]pkgkafka.Message, len(recs))
	for i, rec := range recs {
		msgs[i] = pkgkafka.Message{
			Key:   []byte(rec.DocumentID),
			Value: rec,
		}
	}
	return p.producer.PublishBatch(ctx, p.topic, msgs)
}

func (p *KafkaTonePublisher) Close() error {
	if p.producer != nil {
		return p.producer.Close()
	}
	return nil
}
