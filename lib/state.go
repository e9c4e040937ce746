package lib

import (
	"inteko-cli/types"
)

// Screen-state transitions applied after a mutating call succeeds. Each
// touches exactly the target entity and leaves every sibling's order and
// state alone.

// ApplyPenaltyPaid flips one penalty to "paid". The flip is optimistic:
// the caller re-fetches afterwards to confirm the server agrees.
func ApplyPenaltyPaid(penalties []*types.Penalty, penaltyId int) {
	for _, p := range penalties {
		if p.Id == penaltyId {
			p.Status = types.PenaltyStatusPaid
			return
		}
	}
}

// MarkNotificationRead flips one notification's read flag. Calling it
// again for the same id is a no-op either way.
func MarkNotificationRead(notifications []*types.Notification, notificationId int) {
	for _, n := range notifications {
		if n.Id == notificationId {
			n.IsRead = true
			return
		}
	}
}

// RemoveNotification drops one notification from the displayed set,
// preserving the order of the rest.
func RemoveNotification(notifications []*types.Notification, notificationId int) []*types.Notification {
	result := notifications[:0]
	for _, n := range notifications {
		if n.Id != notificationId {
			result = append(result, n)
		}
	}
	return result
}

// UnpaidPenalties filters for display of the payable set.
func UnpaidPenalties(penalties []*types.Penalty) []*types.Penalty {
	var unpaid []*types.Penalty
	for _, p := range penalties {
		if !p.IsPaid() {
			unpaid = append(unpaid, p)
		}
	}
	return unpaid
}

// UnreadCount is shown in the notifications header.
func UnreadCount(notifications []*types.Notification) int {
	count := 0
	for _, n := range notifications {
		if !n.IsRead {
			count++
		}
	}
	return count
}
