package lib

import (
	"testing"

	"inteko-cli/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func samplePenalties() []*types.Penalty {
	return []*types.Penalty{
		{Id: 1, Penarity: "5000", Status: types.PenaltyStatusUnpaid},
		{Id: 2, Penarity: "2000", Status: types.PenaltyStatusPaid},
		{Id: 3, Penarity: "1000", Status: types.PenaltyStatusUnpaid},
	}
}

func sampleNotifications() []*types.Notification {
	return []*types.Notification{
		{Id: 10, Title: "Meeting", IsRead: false},
		{Id: 11, Title: "Fine issued", IsRead: true},
		{Id: 12, Title: "Reminder", IsRead: false},
	}
}

func TestApplyPenaltyPaid(t *testing.T) {
	penalties := samplePenalties()

	ApplyPenaltyPaid(penalties, 3)

	assert.Equal(t, types.PenaltyStatusUnpaid, penalties[0].Status, "sibling must not change")
	assert.Equal(t, types.PenaltyStatusPaid, penalties[1].Status)
	assert.Equal(t, types.PenaltyStatusPaid, penalties[2].Status)
}

func TestApplyPenaltyPaidUnknownId(t *testing.T) {
	penalties := samplePenalties()

	ApplyPenaltyPaid(penalties, 99)

	assert.Equal(t, types.PenaltyStatusUnpaid, penalties[0].Status)
	assert.Equal(t, types.PenaltyStatusUnpaid, penalties[2].Status)
}

func TestMarkNotificationRead(t *testing.T) {
	notifications := sampleNotifications()

	MarkNotificationRead(notifications, 10)
	assert.True(t, notifications[0].IsRead)
	assert.False(t, notifications[2].IsRead, "sibling must not change")

	// marking the same one again changes nothing
	MarkNotificationRead(notifications, 10)
	assert.True(t, notifications[0].IsRead)
	assert.Equal(t, 1, UnreadCount(notifications))
}

func TestRemoveNotification(t *testing.T) {
	notifications := sampleNotifications()

	remaining := RemoveNotification(notifications, 11)

	require.Len(t, remaining, 2)
	assert.Equal(t, 10, remaining[0].Id)
	assert.Equal(t, 12, remaining[1].Id)
	assert.False(t, remaining[0].IsRead, "read state of the rest is untouched")
	assert.False(t, remaining[1].IsRead)
}

func TestRemoveNotificationUnknownId(t *testing.T) {
	remaining := RemoveNotification(sampleNotifications(), 99)
	assert.Len(t, remaining, 3)
}

func TestUnpaidPenalties(t *testing.T) {
	unpaid := UnpaidPenalties(samplePenalties())

	require.Len(t, unpaid, 2)
	assert.Equal(t, 1, unpaid[0].Id)
	assert.Equal(t, 3, unpaid[1].Id)
}

func TestUnpaidPenaltiesAllPaid(t *testing.T) {
	penalties := []*types.Penalty{
		{Id: 1, Status: types.PenaltyStatusPaid},
	}
	assert.Empty(t, UnpaidPenalties(penalties))
}

func TestUnreadCount(t *testing.T) {
	assert.Equal(t, 2, UnreadCount(sampleNotifications()))
	assert.Equal(t, 0, UnreadCount(nil))
}
