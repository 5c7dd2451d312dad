package server

import (
	"time"

	"github.com/google/uuid"

	"github.com/matzehuels/proofgen/pkg/pipeline"
)

// record is a generated result held for later downloads.
type record struct {
	ID        string
	CreatedAt time.Time
	Result    *pipeline.Result
}

func (s *Server) putResult(res *pipeline.Result) *record {
	rec := &record{
		ID:        uuid.NewString(),
		CreatedAt: time.Now().UTC(),
		Result:    res,
	}
	s.results.SetDefault(rec.ID, rec)
	return rec
}

func (s *Server) getResult(id string) (*record, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, notFound("bundle %q not found", id)
	}
	v, ok := s.results.Get(id)
	if !ok {
		return nil, notFound("bundle %q not found or expired", id)
	}
	return v.(*record), nil
}
