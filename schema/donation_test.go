package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRequestStatusValid(t *testing.T) {
	assert.True(t, RequestPending.Valid())
	assert.True(t, RequestInProgress.Valid())
	assert.True(t, RequestDone.Valid())
	assert.True(t, RequestCancelled.Valid())
	assert.False(t, RequestStatus("archived").Valid())
	assert.False(t, RequestStatus("").Valid())
}

func TestRequestStatusTransitions(t *testing.T) {
	assert.True(t, RequestPending.CanTransition(RequestInProgress))
	assert.True(t, RequestInProgress.CanTransition(RequestDone))
	assert.True(t, RequestInProgress.CanTransition(RequestCancelled))

	// pending cannot skip straight to a terminal state
	assert.False(t, RequestPending.CanTransition(RequestDone))
	assert.False(t, RequestPending.CanTransition(RequestCancelled))

	// no state may loop back
	assert.False(t, RequestInProgress.CanTransition(RequestPending))
	assert.False(t, RequestDone.CanTransition(RequestPending))
	assert.False(t, RequestCancelled.CanTransition(RequestInProgress))
}

func TestRequestStatusTerminal(t *testing.T) {
	assert.False(t, RequestPending.Terminal())
	assert.False(t, RequestInProgress.Terminal())
	assert.True(t, RequestDone.Terminal())
	assert.True(t, RequestCancelled.Terminal())

	// unknown states are not terminal, they are invalid
	assert.False(t, RequestStatus("archived").Terminal())
}

func TestRoleAndAccountStatusValid(t *testing.T) {
	assert.True(t, RoleDonor.Valid())
	assert.True(t, RoleVolunteer.Valid())
	assert.True(t, RoleAdmin.Valid())
	assert.False(t, Role("superuser").Valid())

	assert.True(t, AccountActive.Valid())
	assert.True(t, AccountBlocked.Valid())
	assert.False(t, AccountStatus("suspended").Valid())
}
