package repository

import (
	"context"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/primelaser/backend/internal/config"
	"github.com/primelaser/backend/internal/model"
)

const contactsCollection = "contacts"

// Supervisor owns the lifecycle of the document-store connection. It is the
// single writer of the process-wide connectivity state; everything else only
// reads it through State.
//
// Retries are unbounded with fixed delays: RetryInitial after a failed
// connection attempt, RetryReconnect after an established connection drops.
// There is no backoff ceiling — a deliberate simplicity choice, since the
// service keeps serving HTTP with persistence disabled while disconnected.
type Supervisor struct {
	cfg   config.DatabaseConfig
	state atomic.Int32

	mu     sync.RWMutex
	client *mongo.Client
	coll   *mongo.Collection
}

// NewSupervisor creates a Supervisor for the given database settings.
// The initial state is disconnected; call Start to begin connecting.
func NewSupervisor(cfg config.DatabaseConfig) *Supervisor {
	return &Supervisor{cfg: cfg}
}

// State returns the current connectivity state.
func (s *Supervisor) State() model.ConnectivityState {
	return model.ConnectivityState(s.state.Load())
}

// Collection returns the live contacts collection, or ErrUnavailable when
// there is no established connection.
func (s *Supervisor) Collection() (*mongo.Collection, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.State() != model.StateConnected || s.coll == nil {
		return nil, ErrUnavailable
	}
	return s.coll, nil
}

// Start launches the connect/monitor loop in the background. The loop runs
// until ctx is cancelled. Connection failures are never fatal.
func (s *Supervisor) Start(ctx context.Context) {
	go s.run(ctx)
}

func (s *Supervisor) run(ctx context.Context) {
	for {
		s.setState(model.StateConnecting)
		client, err := s.connect(ctx)
		if err != nil {
			s.setState(model.StateDisconnected)
			slog.Error("database connection failed", "error", err, "retry_in", s.cfg.RetryInitial)
			if !sleep(ctx, s.cfg.RetryInitial) {
				return
			}
			continue
		}

		coll := client.Database(s.cfg.Name).Collection(contactsCollection)
		if err := s.ensureIndexes(ctx, coll); err != nil {
			slog.Warn("index setup failed", "error", err)
		}

		s.mu.Lock()
		s.client = client
		s.coll = coll
		s.mu.Unlock()
		s.setState(model.StateConnected)
		slog.Info("database connected", "database", s.cfg.Name)

		if !s.monitor(ctx, client) {
			return
		}

		// Connection dropped: tear down and retry on the shorter delay.
		s.setState(model.StateDisconnected)
		slog.Warn("database disconnected, reconnecting", "retry_in", s.cfg.RetryReconnect)
		s.teardown(client)
		if !sleep(ctx, s.cfg.RetryReconnect) {
			return
		}
	}
}

// monitor pings the server on a fixed interval. It returns false when ctx
// is cancelled and true when the connection is considered lost.
func (s *Supervisor) monitor(ctx context.Context, client *mongo.Client) bool {
	ticker := time.NewTicker(s.cfg.PingInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return false
		case <-ticker.C:
			pingCtx, cancel := context.WithTimeout(ctx, s.cfg.OpTimeout)
			err := client.Ping(pingCtx, nil)
			cancel()
			if err != nil {
				return true
			}
		}
	}
}

func (s *Supervisor) connect(ctx context.Context) (*mongo.Client, error) {
	opts := options.Client().
		ApplyURI(s.cfg.URI).
		SetServerSelectionTimeout(s.cfg.ConnectTimeout).
		SetSocketTimeout(s.cfg.SocketTimeout)

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, err
	}

	pingCtx, cancel := context.WithTimeout(ctx, s.cfg.ConnectTimeout)
	defer cancel()
	if err := client.Ping(pingCtx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, err
	}
	return client, nil
}

// ensureIndexes creates the recency and lookup indexes plus the TTL index
// that implements the retention policy.
func (s *Supervisor) ensureIndexes(ctx context.Context, coll *mongo.Collection) error {
	idxCtx, cancel := context.WithTimeout(ctx, s.cfg.OpTimeout)
	defer cancel()

	_, err := coll.Indexes().CreateMany(idxCtx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "createdAt", Value: -1}}},
		{Keys: bson.D{{Key: "email", Value: 1}, {Key: "createdAt", Value: -1}}},
		{
			Keys:    bson.D{{Key: "createdAt", Value: 1}},
			Options: options.Index().SetExpireAfterSeconds(int32(s.cfg.Retention.Seconds())),
		},
	})
	return err
}

func (s *Supervisor) teardown(client *mongo.Client) {
	s.mu.Lock()
	if s.client == client {
		s.client = nil
		s.coll = nil
	}
	s.mu.Unlock()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_ = client.Disconnect(ctx)
}

// Shutdown closes the current connection, if any. The run loop should be
// stopped first by cancelling the Start context.
func (s *Supervisor) Shutdown(ctx context.Context) {
	s.setState(model.StateDisconnecting)
	s.mu.Lock()
	client := s.client
	s.client = nil
	s.coll = nil
	s.mu.Unlock()
	if client != nil {
		_ = client.Disconnect(ctx)
	}
	s.setState(model.StateDisconnected)
}

func (s *Supervisor) setState(st model.ConnectivityState) {
	s.state.Store(int32(st))
}

// sleep waits for d or until ctx is cancelled; it reports whether the
// caller should keep running.
func sleep(ctx context.Context, d time.Duration) bool {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-timer.C:
		return true
	}
}
