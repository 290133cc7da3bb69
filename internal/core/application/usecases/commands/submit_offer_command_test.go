package commands_test

import (
	"testing"
	"time"

	"matching/internal/core/application/usecases/commands"
	"matching/internal/core/domain/model/kernel"
	"matching/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSubmitOfferCommand_ValidInput(t *testing.T) {
	offerID := kernel.NewUUID()
	requestID := kernel.NewUUID()
	courierID := kernel.NewUUID()
	terms := validTerms(t)
	validUntil := time.Now().Add(time.Hour)

	cmd, err := commands.NewSubmitOfferCommand(offerID, requestID, courierID, terms, validUntil)
	require.NoError(t, err)
	assert.Equal(t, offerID, cmd.OfferID())
	assert.Equal(t, requestID, cmd.RequestID())
	assert.Equal(t, courierID, cmd.CourierID())
	assert.Equal(t, terms, cmd.Terms())
	assert.Equal(t, validUntil, cmd.ValidUntil())
}

func TestNewSubmitOfferCommand_InvalidCourierID(t *testing.T) {
	_, err := commands.NewSubmitOfferCommand(
		kernel.NewUUID(), kernel.NewUUID(), kernel.UUID{}, validTerms(t),
		time.Now().Add(time.Hour))
	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}

func TestNewSubmitOfferCommand_ZeroDeadline(t *testing.T) {
	_, err := commands.NewSubmitOfferCommand(
		kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), validTerms(t), time.Time{})
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestSubmitOfferCommand_Validate_NotConstructed(t *testing.T) {
	cmd := commands.SubmitOfferCommand{}
	require.ErrorIs(t, cmd.Validate(), commands.ErrSubmitOfferCommandIsNotConstructed)
}
