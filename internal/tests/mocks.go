package tests

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"

	"swiftride/internal/domain"
	"swiftride/internal/redis"
	"swiftride/internal/repository"
	"swiftride/internal/service"
)

// ErrMockTimeout simulates a dependency timing out.
var ErrMockTimeout = errors.New("mock timeout")

// ──────────────────────────────────────────────
// MOCK RIDE REPOSITORY
// ──────────────────────────────────────────────

// MockRideRepository is a mock implementation of repository.RideRepository.
// Rides are kept in insertion order; ListByUser returns them newest first,
// mirroring the Postgres ordering.
type MockRideRepository struct {
	mu    sync.RWMutex
	rides map[string]*domain.Ride
	order []string

	// Counters for verification
	CreateCallCount       int32
	UpdateStatusCallCount int32

	// Error injection
	CreateError       error
	ListError         error
	UpdateStatusError error
}

// NewMockRideRepository creates a new mock ride repository.
func NewMockRideRepository() *MockRideRepository {
	return &MockRideRepository{
		rides: make(map[string]*domain.Ride),
	}
}

func (m *MockRideRepository) Create(ctx context.Context, ride *domain.Ride) error {
	atomic.AddInt32(&m.CreateCallCount, 1)
	if m.CreateError != nil {
		return m.CreateError
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	copy := *ride
	m.rides[ride.ID] = &copy
	m.order = append(m.order, ride.ID)
	return nil
}

func (m *MockRideRepository) GetByID(ctx context.Context, id string) (*domain.Ride, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	ride, ok := m.rides[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	// Return a copy to avoid mutation issues.
	copy := *ride
	return &copy, nil
}

func (m *MockRideRepository) ListByUser(ctx context.Context, userID string) ([]*domain.Ride, error) {
	if m.ListError != nil {
		return nil, m.ListError
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	var result []*domain.Ride
	for i := len(m.order) - 1; i >= 0; i-- {
		ride := m.rides[m.order[i]]
		if ride.UserID == userID {
			copy := *ride
			result = append(result, &copy)
		}
	}
	return result, nil
}

func (m *MockRideRepository) UpdateStatus(ctx context.Context, id string, status domain.RideStatus) error {
	atomic.AddInt32(&m.UpdateStatusCallCount, 1)
	if m.UpdateStatusError != nil {
		return m.UpdateStatusError
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	ride, ok := m.rides[id]
	if !ok {
		return repository.ErrNotFound
	}
	ride.Status = status
	return nil
}

// AddRide seeds the repository with a ride.
func (m *MockRideRepository) AddRide(ride *domain.Ride) {
	m.mu.Lock()
	defer m.mu.Unlock()
	copy := *ride
	m.rides[ride.ID] = &copy
	m.order = append(m.order, ride.ID)
}

// GetRide returns the stored ride for assertions, or nil.
func (m *MockRideRepository) GetRide(id string) *domain.Ride {
	m.mu.RLock()
	defer m.mu.RUnlock()
	ride, ok := m.rides[id]
	if !ok {
		return nil
	}
	copy := *ride
	return &copy
}

// ──────────────────────────────────────────────
// MOCK CHECKOUT PROVIDER
// ──────────────────────────────────────────────

// MockCheckoutProvider is a mock implementation of service.CheckoutProvider.
type MockCheckoutProvider struct {
	mu       sync.Mutex
	sessions map[string]*service.CheckoutSession

	// LastCreateRequest records the most recent CreateSession input.
	LastCreateRequest *service.CheckoutRequest

	// Counters for verification
	CreateCallCount int32
	GetCallCount    int32

	// Error injection
	CreateError error
	GetError    error
}

// NewMockCheckoutProvider creates a new mock checkout provider.
func NewMockCheckoutProvider() *MockCheckoutProvider {
	return &MockCheckoutProvider{
		sessions: make(map[string]*service.CheckoutSession),
	}
}

// AddSession seeds a session for retrieval.
func (m *MockCheckoutProvider) AddSession(session *service.CheckoutSession) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessions[session.ID] = session
}

func (m *MockCheckoutProvider) CreateSession(ctx context.Context, req service.CheckoutRequest) (*service.CheckoutSession, error) {
	atomic.AddInt32(&m.CreateCallCount, 1)
	if m.CreateError != nil {
		return nil, m.CreateError
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.LastCreateRequest = &req
	session := &service.CheckoutSession{
		ID:            "cs_test_1",
		URL:           "https://checkout.example.com/cs_test_1",
		PaymentStatus: "unpaid",
	}
	m.sessions[session.ID] = session
	return session, nil
}

func (m *MockCheckoutProvider) GetSession(ctx context.Context, sessionID string) (*service.CheckoutSession, error) {
	atomic.AddInt32(&m.GetCallCount, 1)
	if m.GetError != nil {
		return nil, m.GetError
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	session, ok := m.sessions[sessionID]
	if !ok {
		return nil, errors.New("no such checkout session")
	}
	return session, nil
}

// ──────────────────────────────────────────────
// MOCK COMPLETER
// ──────────────────────────────────────────────

// MockCompleter is a mock implementation of service.Completer.
type MockCompleter struct {
	mu sync.Mutex

	// Completion is returned for every call.
	Completion string

	// LastSystem and LastPrompt record the most recent call.
	LastSystem string
	LastPrompt string

	CallCount int32

	// Error injection
	Err error
}

func (m *MockCompleter) Complete(ctx context.Context, system, prompt string) (string, error) {
	atomic.AddInt32(&m.CallCount, 1)
	if m.Err != nil {
		return "", m.Err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.LastSystem = system
	m.LastPrompt = prompt
	return m.Completion, nil
}

// ──────────────────────────────────────────────
// MOCK HIGHLIGHT STORE
// ──────────────────────────────────────────────

// MockHighlightStore is an in-memory implementation of the highlight store.
// Entries never expire; tests assert on marking, not on TTL.
type MockHighlightStore struct {
	mu     sync.Mutex
	marked map[string][]string // userID -> ride IDs

	MarkError error
	ListError error
}

// NewMockHighlightStore creates a new mock highlight store.
func NewMockHighlightStore() *MockHighlightStore {
	return &MockHighlightStore{marked: make(map[string][]string)}
}

func (m *MockHighlightStore) MarkNew(ctx context.Context, userID, rideID string) error {
	if m.MarkError != nil {
		return m.MarkError
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.marked[userID] = append(m.marked[userID], rideID)
	return nil
}

func (m *MockHighlightStore) IsNew(ctx context.Context, userID, rideID string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, id := range m.marked[userID] {
		if id == rideID {
			return true, nil
		}
	}
	return false, nil
}

func (m *MockHighlightStore) ListNew(ctx context.Context, userID string) ([]string, error) {
	if m.ListError != nil {
		return nil, m.ListError
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.marked[userID]...), nil
}

// ──────────────────────────────────────────────
// MOCK CACHE STORE
// ──────────────────────────────────────────────

// MockCacheStore is an in-memory implementation of the ride cache.
type MockCacheStore struct {
	mu    sync.Mutex
	rides map[string]*domain.Ride

	GetCallCount        int32
	SetCallCount        int32
	InvalidateCallCount int32
}

// NewMockCacheStore creates a new mock cache store.
func NewMockCacheStore() *MockCacheStore {
	return &MockCacheStore{rides: make(map[string]*domain.Ride)}
}

func (m *MockCacheStore) GetRide(ctx context.Context, rideID string) (*domain.Ride, error) {
	atomic.AddInt32(&m.GetCallCount, 1)
	m.mu.Lock()
	defer m.mu.Unlock()
	ride, ok := m.rides[rideID]
	if !ok {
		return nil, nil
	}
	copy := *ride
	return &copy, nil
}

func (m *MockCacheStore) SetRide(ctx context.Context, ride *domain.Ride) error {
	atomic.AddInt32(&m.SetCallCount, 1)
	m.mu.Lock()
	defer m.mu.Unlock()
	copy := *ride
	m.rides[ride.ID] = &copy
	return nil
}

func (m *MockCacheStore) InvalidateRide(ctx context.Context, rideID string) error {
	atomic.AddInt32(&m.InvalidateCallCount, 1)
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.rides, rideID)
	return nil
}

// Ensure mocks satisfy the interfaces they stand in for.
var (
	_ repository.RideRepository     = (*MockRideRepository)(nil)
	_ service.CheckoutProvider      = (*MockCheckoutProvider)(nil)
	_ service.Completer             = (*MockCompleter)(nil)
	_ redis.HighlightStoreInterface = (*MockHighlightStore)(nil)
	_ redis.CacheStoreInterface     = (*MockCacheStore)(nil)
)
