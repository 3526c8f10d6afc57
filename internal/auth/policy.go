package auth

import "stock-backend/internal/models"

// Action names a capability checked against a user account.
type Action string

const (
	ActionManageCatalog  Action = "catalog.manage"
	ActionManageParties  Action = "parties.manage"
	ActionManageUsers    Action = "users.manage"
	ActionEncodeArrival  Action = "arrival.encode"
	ActionEncodeTransfer Action = "transfer.encode"
	ActionViewReports    Action = "reports.view"
	ActionViewEvents     Action = "events.view"
)

// Can is the single permission check for the whole system: admin accounts
// may do everything, everyone else may do nothing beyond authenticated
// reads. The staff and can_encode flags are descriptive only and grant no
// capability on their own.
func Can(user *models.UserAccount, action Action) bool {
	if user == nil || !user.IsActive {
		return false
	}
	return user.IsAdmin
}

// CanEncode reports whether the user may record ledger documents. Encoding
// is the one capability that extends past admins: accounts flagged
// can_encode may record arrivals and transfers without being admin.
func CanEncode(user *models.UserAccount) bool {
	if user == nil || !user.IsActive {
		return false
	}
	return user.IsAdmin || user.CanEncode
}
