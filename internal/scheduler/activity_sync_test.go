package scheduler

import (
	"context"
	"testing"
	"time"

	fieldappmocks "github.com/MitriadesVI/dashboard-adulto-mayor-sub001/infrastructure/integrator/fieldapp/mocks"
	"github.com/MitriadesVI/dashboard-adulto-mayor-sub001/infrastructure/repository/mocks"
	"github.com/MitriadesVI/dashboard-adulto-mayor-sub001/internal/config"
	"github.com/MitriadesVI/dashboard-adulto-mayor-sub001/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func syncConfig(enabled bool) *config.Config {
	return &config.Config{
		ActivitySync: config.ActivitySync{
			CronSchedule: "0 3 * * *",
			LookbackDays: 7,
			Enabled:      enabled,
		},
	}
}

func reportedActivity(id string) *domain.Activity {
	date := time.Now().AddDate(0, 0, -1)
	return &domain.Activity{
		ID:         id,
		Date:       &date,
		Contractor: "CUC",
		Type:       domain.ActivityTypePhysical,
		Subtype:    "walkingClub",
		Location:   &domain.Location{Name: "Parque Central", Type: "Parque"},
	}
}

func TestSyncReportedActivities_GuardaLoDescargado(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	activityRepo := mocks.NewMockActivityRepository(ctrl)
	fieldApp := fieldappmocks.NewMockFieldAppIntegrator(ctrl)

	activities := []*domain.Activity{reportedActivity("act-1"), reportedActivity("act-2")}
	fieldApp.EXPECT().GetReportedActivities(gomock.Any(), gomock.Any()).Return(activities, nil)
	activityRepo.EXPECT().SaveOrUpdateActivities(activities).Return(nil)

	service := NewActivitySyncService(activityRepo, fieldApp, nil, syncConfig(true))
	service.syncReportedActivities()

	assert.False(t, service.lastSyncCompletedAt.IsZero())
}

func TestSyncReportedActivities_NoGuardaAnteErrorDeDescarga(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	activityRepo := mocks.NewMockActivityRepository(ctrl)
	fieldApp := fieldappmocks.NewMockFieldAppIntegrator(ctrl)

	fieldApp.EXPECT().GetReportedActivities(gomock.Any(), gomock.Any()).
		Return(nil, assert.AnError)

	service := NewActivitySyncService(activityRepo, fieldApp, nil, syncConfig(true))
	service.syncReportedActivities()

	assert.True(t, service.lastSyncCompletedAt.IsZero())
}

func TestSyncReportedActivities_VentanaSinActividades(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	activityRepo := mocks.NewMockActivityRepository(ctrl)
	fieldApp := fieldappmocks.NewMockFieldAppIntegrator(ctrl)

	fieldApp.EXPECT().GetReportedActivities(gomock.Any(), gomock.Any()).Return(nil, nil)

	service := NewActivitySyncService(activityRepo, fieldApp, nil, syncConfig(true))
	service.syncReportedActivities()
}

func TestStart_DeshabilitadoNoAgenda(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	activityRepo := mocks.NewMockActivityRepository(ctrl)
	fieldApp := fieldappmocks.NewMockFieldAppIntegrator(ctrl)

	service := NewActivitySyncService(activityRepo, fieldApp, nil, syncConfig(false))

	require.NoError(t, service.Start(context.Background()))

	status := service.GetStatus()
	assert.Equal(t, false, status["sync_enabled"])
	assert.Equal(t, "0 3 * * *", status["sync_cron"])
}
