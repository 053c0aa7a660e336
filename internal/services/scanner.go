package services

import (
	"bytes"
	"context"
	"fmt"

	clamd "github.com/dutchcoders/go-clamd"
	"github.com/rs/zerolog/log"
)

// ErrInfected marks an upload that failed the malware scan.
type ErrInfected struct {
	Signature string
}

func (e ErrInfected) Error() string {
	return fmt.Sprintf("upload rejected by malware scan: %s", e.Signature)
}

// Scanner checks uploads against a ClamAV daemon before anything is stored.
// A nil scanner skips scanning.
type Scanner struct {
	clam *clamd.Clamd
}

func NewScanner(clamAvURL string) *Scanner {
	return &Scanner{clam: clamd.NewClamd(clamAvURL)}
}

func (s *Scanner) Scan(ctx context.Context, data []byte) error {
	if s == nil || s.clam == nil {
		return nil
	}

	abort := make(chan bool)
	defer close(abort)

	results, err := s.clam.ScanStream(bytes.NewReader(data), abort)
	if err != nil {
		return fmt.Errorf("scan failed: %w", err)
	}

	for res := range results {
		if res.Status == clamd.RES_FOUND {
			log.Warn().Str("signature", res.Description).Msg("virus detected in upload")
			return ErrInfected{Signature: res.Description}
		}
	}
	return nil
}
