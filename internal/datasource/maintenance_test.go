package datasource

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/fleetdesk/internal/models"
)

func TestSearchMaintenance_DecisionTable(t *testing.T) {
	ds := setupDS(t)
	ctx := context.Background()

	for _, m := range []models.MaintenanceRequest{
		{Machine: "Machine A", Issue: "Oil leak", Priority: models.PriorityHigh, Status: models.MaintenanceStatusInProgress},
		{Machine: "Machine B", Issue: "Unusual noise", Priority: models.PriorityHigh, Status: models.MaintenanceStatusPending},
		{Machine: "Crusher", Issue: "Machine overheats", Priority: models.PriorityLow, Status: models.MaintenanceStatusPending},
	} {
		m := m
		require.NoError(t, ds.AddMaintenance(ctx, &m))
	}

	all, err := ds.SearchMaintenance(ctx, "", models.FilterAll)
	require.NoError(t, err)
	assert.Len(t, all, 3)

	pending, err := ds.SearchMaintenance(ctx, "", models.MaintenanceStatusPending)
	require.NoError(t, err)
	assert.Len(t, pending, 2)

	// the term prefixes machine or issue
	byTerm, err := ds.SearchMaintenance(ctx, "machine", models.FilterAll)
	require.NoError(t, err)
	assert.Len(t, byTerm, 3)

	both, err := ds.SearchMaintenance(ctx, "machine", models.MaintenanceStatusPending)
	require.NoError(t, err)
	assert.Len(t, both, 2)
}

func TestMaintenanceRoundTrip(t *testing.T) {
	ds := setupDS(t)
	ctx := context.Background()

	m := models.MaintenanceRequest{
		Date: "2024-07-18", Machine: "Machine B", Issue: "Unusual noise",
		Description: "Loud grinding noise during operation.",
		Priority:    models.PriorityHigh, Status: models.MaintenanceStatusPending,
	}
	require.NoError(t, ds.AddMaintenance(ctx, &m))

	got, err := ds.MaintenanceByUID(ctx, m.UID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, m, *got)

	m.Status = models.MaintenanceStatusCompleted
	require.NoError(t, ds.UpdateMaintenance(ctx, &m))

	got, err = ds.MaintenanceByUID(ctx, m.UID)
	require.NoError(t, err)
	assert.Equal(t, models.MaintenanceStatusCompleted, got.Status)
}
