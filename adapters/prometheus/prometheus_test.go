package prometheus

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewActorMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewActorMetrics(reg)

	require.NotNil(t, m)

	m.MailboxDepth("mbox-1", 10)
	m.MessageDelivered("mbox-1")
	m.MessageHandled("mbox-1", true)
	m.MessageHandled("mbox-1", false)

	timer := m.HandleDuration("mbox-1")
	assert.NotNil(t, timer)
	timer.ObserveDuration()

	mfs, err := reg.Gather()
	require.NoError(t, err)
	assert.NotEmpty(t, mfs)

	names := make(map[string]bool)
	for _, mf := range mfs {
		names[mf.GetName()] = true
	}
	assert.True(t, names["spawn_actor_mailbox_depth"])
	assert.True(t, names["spawn_actor_messages_delivered_total"])
	assert.True(t, names["spawn_actor_handle_duration_seconds"])
}

func TestNewRaceMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewRaceMetrics(reg)

	require.NotNil(t, m)

	m.MemberStarted("worker")
	m.MembersRunning(1)

	timer := m.MemberLifetime("worker")
	assert.NotNil(t, timer)
	timer.ObserveDuration()

	m.MemberFinished("worker", true)
	m.MemberFinished("worker", false)
	m.MembersRunning(0)

	mfs, err := reg.Gather()
	require.NoError(t, err)
	assert.NotEmpty(t, mfs)

	names := make(map[string]bool)
	for _, mf := range mfs {
		names[mf.GetName()] = true
	}
	assert.True(t, names["spawn_race_members_started_total"])
	assert.True(t, names["spawn_race_members_finished_total"])
	assert.True(t, names["spawn_race_members_running"])
	assert.True(t, names["spawn_race_member_lifetime_seconds"])
}

func TestNewCriticalMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewCriticalMetrics(reg)

	require.NotNil(t, m)

	m.Started("worker")
	m.Failed("worker")

	mfs, err := reg.Gather()
	require.NoError(t, err)
	assert.NotEmpty(t, mfs)

	names := make(map[string]bool)
	for _, mf := range mfs {
		names[mf.GetName()] = true
	}
	assert.True(t, names["spawn_critical_started_total"])
	assert.True(t, names["spawn_critical_failed_total"])
}

func TestNewAllMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewAllMetrics(reg)

	require.NotNil(t, m)
	require.NotNil(t, m.Actor)
	require.NotNil(t, m.Race)
	require.NotNil(t, m.Critical)

	m.Actor.MessageDelivered("mbox-1")
	m.Race.MemberStarted("worker")
	m.Critical.Started("worker")

	mfs, err := reg.Gather()
	require.NoError(t, err)
	assert.NotEmpty(t, mfs)
}

func TestBoolToStr(t *testing.T) {
	assert.Equal(t, "true", boolToStr(true))
	assert.Equal(t, "false", boolToStr(false))
}
