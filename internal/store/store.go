// Package store persists scored hands to MongoDB, grounded on the
// teacher's MongoManager connection/option handling. Writes are
// fire-and-forget from the scorer's perspective: a store failure is logged
// and never surfaces as a scoring error.
package store

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"mahjong/internal/applog"
	"mahjong/internal/score"
)

// ScoredHandRecord is one persisted scoring result: the request that
// produced it plus its (han, fu, points) breakdown.
type ScoredHandRecord struct {
	RequestID  string    `bson:"requestId"`
	Hand       string    `bson:"hand"`
	Winning    string    `bson:"winningTile"`
	Han        int       `bson:"han"`
	Fu         int       `bson:"fu"`
	Points     int       `bson:"points"`
	Yaku       []string  `bson:"yaku"`
	ScoredAt   time.Time `bson:"scoredAt"`
}

// Store writes ScoredHandRecords to a Mongo collection.
type Store struct {
	client     *mongo.Client
	collection *mongo.Collection
}

// Open connects to uri and selects db/collection, mirroring the
// teacher's pooled-client connect-then-ping sequence.
func Open(uri, db, collection string, minPool, maxPool uint64) (*Store, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	opts := options.Client().ApplyURI(uri)
	if minPool > 0 {
		opts.SetMinPoolSize(minPool)
	}
	if maxPool > 0 {
		opts.SetMaxPoolSize(maxPool)
	}

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, err
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		return nil, err
	}

	return &Store{client: client, collection: client.Database(db).Collection(collection)}, nil
}

func (s *Store) Close() error {
	if s == nil || s.client == nil {
		return nil
	}
	return s.client.Disconnect(context.Background())
}

// Record builds a ScoredHandRecord from a completed Score call and writes
// it. Callers treat any returned error as log-and-continue, never as a
// reason to reject the scoring result already handed to the user.
func (s *Store) Record(ctx context.Context, requestID, hand, winningTile string, result score.Result) error {
	names := make([]string, 0, len(result.Yaku)+len(result.Yakuman))
	for _, y := range result.Yaku {
		names = append(names, y.Name)
	}
	for _, y := range result.Yakuman {
		names = append(names, y.Name)
	}

	record := ScoredHandRecord{
		RequestID: requestID,
		Hand:      hand,
		Winning:   winningTile,
		Han:       result.Han,
		Fu:        result.Fu,
		Points:    result.Points.Total,
		Yaku:      names,
		ScoredAt:  time.Now(),
	}

	_, err := s.collection.InsertOne(ctx, record)
	return err
}

// RecordAsync fires Record in a goroutine and logs failure, per §4.10's
// fire-and-forget contract.
func (s *Store) RecordAsync(requestID, hand, winningTile string, result score.Result) {
	if s == nil {
		return
	}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := s.Record(ctx, requestID, hand, winningTile, result); err != nil {
			applog.Warn("store: failed to persist scored hand %s: %v", requestID, err)
		}
	}()
}
