package service

import (
	"context"
	"sync"

	"connectrpc.com/connect"
	"go.opentelemetry.io/otel"

	"github.com/mmynk/dutchie/internal/auth"
	"github.com/mmynk/dutchie/internal/middleware"
	"github.com/mmynk/dutchie/internal/ocr"
	"github.com/mmynk/dutchie/internal/receipt"
	"github.com/mmynk/dutchie/internal/storage"
	"github.com/mmynk/dutchie/pkg/api/apiconnect"
)

var tracer = otel.Tracer("service/ledger")

// Recorder receives business metrics. *observability.Metrics implements it.
type Recorder interface {
	RecordExtraction(strategy string, items int)
	RecordSettlement(transfers int)
	SessionStarted()
	SessionEnded()
}

type nopRecorder struct{}

func (nopRecorder) RecordExtraction(string, int) {}
func (nopRecorder) RecordSettlement(int)         {}
func (nopRecorder) SessionStarted()              {}
func (nopRecorder) SessionEnded()                {}

// LedgerService implements the Connect LedgerService.
type LedgerService struct {
	apiconnect.UnimplementedLedgerServiceHandler

	store      storage.Store
	jwt        *auth.JWTManager
	recognizer ocr.Recognizer
	recorder   Recorder
	classifier receipt.Classifier

	lineTolerance  float64
	ocrConcurrency int

	// locks serializes read-modify-write operations per session.
	locks sync.Map
}

// Option configures a LedgerService.
type Option func(*LedgerService)

// WithRecognizer enables ScanReceipt.
func WithRecognizer(r ocr.Recognizer) Option {
	return func(s *LedgerService) { s.recognizer = r }
}

// WithRecorder reports business metrics to r.
func WithRecorder(r Recorder) Option {
	return func(s *LedgerService) { s.recorder = r }
}

// WithLineTolerance sets the vertical tolerance used when rebuilding lines
// from OCR word positions.
func WithLineTolerance(tol float64) Option {
	return func(s *LedgerService) { s.lineTolerance = tol }
}

// WithOCRConcurrency bounds how many images ScanReceipt recognizes at once.
func WithOCRConcurrency(n int) Option {
	return func(s *LedgerService) { s.ocrConcurrency = n }
}

// WithClassifier replaces the receipt line vocabulary.
func WithClassifier(c receipt.Classifier) Option {
	return func(s *LedgerService) { s.classifier = c }
}

// NewLedgerService creates a LedgerService with the given storage backend
// and token manager.
func NewLedgerService(store storage.Store, jwt *auth.JWTManager, opts ...Option) *LedgerService {
	s := &LedgerService{
		store:          store,
		jwt:            jwt,
		recorder:       nopRecorder{},
		classifier:     receipt.DefaultClassifier,
		lineTolerance:  receipt.DefaultLineTolerance,
		ocrConcurrency: 4,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// PublicProcedures are the procedures callable without a session token.
func PublicProcedures() []string {
	return []string{apiconnect.LedgerServiceStartSessionProcedure}
}

// sessionID returns the caller's session from the context set by
// middleware.RequireSession.
func sessionID(ctx context.Context) (string, error) {
	id := middleware.GetSessionID(ctx)
	if id == "" {
		return "", connect.NewError(connect.CodeUnauthenticated, auth.ErrMissingToken)
	}
	return id, nil
}

// lock serializes work on one session and returns the unlock function.
func (s *LedgerService) lock(sessionID string) func() {
	v, _ := s.locks.LoadOrStore(sessionID, &sync.Mutex{})
	mu := v.(*sync.Mutex)
	mu.Lock()
	return mu.Unlock
}
