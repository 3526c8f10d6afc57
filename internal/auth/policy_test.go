package auth

import (
	"testing"

	"stock-backend/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestCanAdminAllowsEverything(t *testing.T) {
	admin := &models.UserAccount{IsAdmin: true, IsActive: true}

	for _, action := range []Action{
		ActionManageCatalog, ActionManageParties, ActionManageUsers,
		ActionEncodeArrival, ActionEncodeTransfer, ActionViewReports, ActionViewEvents,
	} {
		assert.True(t, Can(admin, action), "admin should be allowed %s", action)
	}
}

func TestCanNonAdminDeniedRegardlessOfFlags(t *testing.T) {
	// Staff and can_encode flags grant nothing through Can
	user := &models.UserAccount{IsStaff: true, CanEncode: true, IsActive: true}

	for _, action := range []Action{
		ActionManageCatalog, ActionManageUsers, ActionViewReports,
	} {
		assert.False(t, Can(user, action))
	}
}

func TestCanNilAndInactive(t *testing.T) {
	assert.False(t, Can(nil, ActionManageCatalog))

	suspended := &models.UserAccount{IsAdmin: true, IsActive: false}
	assert.False(t, Can(suspended, ActionManageCatalog))
}

func TestCanEncode(t *testing.T) {
	assert.True(t, CanEncode(&models.UserAccount{IsAdmin: true, IsActive: true}))
	assert.True(t, CanEncode(&models.UserAccount{CanEncode: true, IsActive: true}))
	assert.False(t, CanEncode(&models.UserAccount{IsStaff: true, IsActive: true}))
	assert.False(t, CanEncode(&models.UserAccount{CanEncode: true, IsActive: false}))
	assert.False(t, CanEncode(nil))
}
