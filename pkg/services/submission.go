package services

import (
	"fmt"

	"go.uber.org/zap"

	"interest-form/pkg/form"
	"interest-form/pkg/utils"
)

// SubmissionService defines the interface for handling accepted form records
type SubmissionService interface {
	ProcessSubmission(sessionID string, record form.Record)
}

type submissionServiceImpl struct {
	logger *zap.Logger
}

// NewSubmissionService creates a submission service that reports each
// accepted record as a structured log entry.
func NewSubmissionService(logger *zap.Logger) SubmissionService {
	return &submissionServiceImpl{
		logger: logger.Named("submission"),
	}
}

// ProcessSubmission logs the record. Contact details and the PIN are masked;
// the phone hash correlates repeat submissions without exposing the number.
func (s *submissionServiceImpl) ProcessSubmission(sessionID string, record form.Record) {
	s.logger.Info("form submitted",
		zap.String("session_id", sessionID),
		zap.String("submission_id", utils.SubmissionID(record.Phone)),
		zap.String("price", fmt.Sprintf("$ %.2f", record.Price)),
		zap.String("first_name", record.FirstName),
		zap.String("last_name", record.LastName),
		zap.String("phone", utils.MaskSecret(record.Phone)),
		zap.String("email", utils.MaskEmail(record.Email)),
		zap.String("pin", utils.MaskSecret(record.PIN)),
	)
}

// Sink binds the service to one form session.
func Sink(s SubmissionService, sessionID string) form.Sink {
	return form.SinkFunc(func(record form.Record) {
		s.ProcessSubmission(sessionID, record)
	})
}
