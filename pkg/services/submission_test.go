package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"interest-form/pkg/form"
	"interest-form/pkg/utils"
)

func observedLogger() (*zap.Logger, *observer.ObservedLogs) {
	core, logs := observer.New(zap.DebugLevel)
	return zap.New(core), logs
}

func TestProcessSubmission_LogsMaskedRecord(t *testing.T) {
	l, logs := observedLogger()
	svc := NewSubmissionService(l)

	svc.ProcessSubmission("sess-1", form.Record{
		Price:     79.5,
		FirstName: "Ada",
		LastName:  "Lovelace",
		Phone:     "123-456-7890",
		Email:     "ada@example.com",
		PIN:       "1234-5678-9012-3456",
	})

	entries := logs.FilterMessage("form submitted").All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()

	assert.Equal(t, "sess-1", fields["session_id"])
	assert.Equal(t, utils.SubmissionID("123-456-7890"), fields["submission_id"])
	assert.Equal(t, "$ 79.50", fields["price"])
	assert.Equal(t, "Ada", fields["first_name"])
	assert.Equal(t, "Lovelace", fields["last_name"])
	assert.Equal(t, "***-***-7890", fields["phone"])
	assert.Equal(t, "a*a@example.com", fields["email"])
	assert.Equal(t, "****-****-****-3456", fields["pin"])
}

type capturedSubmission struct {
	sessionID string
	record    form.Record
}

type fakeSubmissions struct {
	got []capturedSubmission
}

func (f *fakeSubmissions) ProcessSubmission(sessionID string, record form.Record) {
	f.got = append(f.got, capturedSubmission{sessionID: sessionID, record: record})
}

func TestSink_BindsSession(t *testing.T) {
	fake := &fakeSubmissions{}
	sink := Sink(fake, "abc")

	sink.Emit(form.Record{FirstName: "Ada"})

	require.Len(t, fake.got, 1)
	assert.Equal(t, "abc", fake.got[0].sessionID)
	assert.Equal(t, "Ada", fake.got[0].record.FirstName)
}
