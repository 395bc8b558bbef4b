package reporting

import (
	"testing"
	"time"

	"github.com/MitriadesVI/dashboard-adulto-mayor-sub001/infrastructure/repository/mocks"
	"github.com/MitriadesVI/dashboard-adulto-mayor-sub001/internal/config"
	"github.com/MitriadesVI/dashboard-adulto-mayor-sub001/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func testConfig() *config.Config {
	return &config.Config{
		Dashboard: config.Dashboard{
			TopN:                   10,
			GoalsRefreshDebounceMs: 10,
		},
	}
}

func sampleActivities() []*domain.Activity {
	date := time.Date(2025, time.March, 10, 10, 0, 0, 0, time.Local)
	return []*domain.Activity{
		{
			ID:         "edu-1",
			Date:       &date,
			Contractor: "CUC",
			Type:       domain.ActivityTypeNutrition,
			Subtype:    "workshops",
			Location:   &domain.Location{Name: "CDV Norte", Type: "Centro de Vida"},
			Educational: &domain.EducationalActivity{
				Included: true,
				Type:     domain.ActivityTypeNutrition,
			},
		},
		{
			ID:            "ent-1",
			Date:          &date,
			Contractor:    "CUC",
			Type:          domain.ActivityTypeNutrition,
			Subtype:       "centerRation",
			Location:      &domain.Location{Name: "CDV Norte", Type: "Centro de Vida"},
			Beneficiaries: 80,
			Educational:   &domain.EducationalActivity{Included: false},
		},
		{
			ID:         "edu-2",
			Date:       &date,
			Contractor: "FUNDACARIBE",
			Type:       domain.ActivityTypePhysical,
			Subtype:    "walkingClub",
			Location:   &domain.Location{Name: "Parque Central", Type: "Parque"},
			Educational: &domain.EducationalActivity{
				Included: true,
				Type:     domain.ActivityTypePhysical,
			},
		},
	}
}

func TestGetSummary_FiltraYAgrega(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	activityRepo := mocks.NewMockActivityRepository(ctrl)
	goalsRepo := mocks.NewMockGoalsRepository(ctrl)

	activityRepo.EXPECT().ListActivities().Return(sampleActivities(), nil)

	service := NewService(activityRepo, goalsRepo, testConfig())
	defer service.Close()

	summary, err := service.GetSummary(&domain.FilterCriteria{Contractor: "CUC"})
	require.NoError(t, err)

	assert.Equal(t, 1, summary.TotalActivities)
	assert.Equal(t, 1, summary.TotalDeliveries)
	require.Len(t, summary.Locations, 1)
	assert.Equal(t, "CDV Norte", summary.Locations[0].Name)
}

func TestGetActivities_RangoDeFechasVaALaBase(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	activityRepo := mocks.NewMockActivityRepository(ctrl)
	goalsRepo := mocks.NewMockGoalsRepository(ctrl)

	start := time.Date(2025, time.March, 1, 12, 0, 0, 0, time.Local)
	end := time.Date(2025, time.March, 31, 12, 0, 0, 0, time.Local)

	// El rango completo se resuelve en la base, normalizado a día completo
	activityRepo.EXPECT().
		GetByDateRange(
			time.Date(2025, time.March, 1, 0, 0, 0, 0, time.Local),
			time.Date(2025, time.March, 31, 23, 59, 59, 999000000, time.Local),
		).
		Return(sampleActivities(), nil)

	service := NewService(activityRepo, goalsRepo, testConfig())
	defer service.Close()

	activities, err := service.GetActivities(&domain.FilterCriteria{
		Contractor: "FUNDACARIBE",
		StartDate:  &start,
		EndDate:    &end,
	})
	require.NoError(t, err)
	require.Len(t, activities, 1)
	assert.Equal(t, "edu-2", activities[0].ID)
}

func TestCountsByStrategy_SeparaEducativasDeEntregas(t *testing.T) {
	counts := CountsByStrategy(sampleActivities(), "CUC")

	assert.Equal(t, map[string]map[string]float64{
		domain.ActivityTypeNutrition: {
			"workshops":    1,
			"centerRation": 1,
		},
	}, counts)

	// El contratista sin actividades de una categoría no genera conteos
	counts = CountsByStrategy(sampleActivities(), "FUNDACARIBE")
	assert.Equal(t, map[string]map[string]float64{
		domain.ActivityTypePhysical: {"walkingClub": 1},
	}, counts)
}

func TestGetGoalProgress_ConstruyeSnapshot(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	activityRepo := mocks.NewMockActivityRepository(ctrl)
	goalsRepo := mocks.NewMockGoalsRepository(ctrl)

	goalsRepo.EXPECT().GetGoals("CUC").Return(map[string]map[string]float64{
		domain.ActivityTypeNutrition: {"workshops": 4},
	}, nil)
	activityRepo.EXPECT().ListActivities().Return(sampleActivities(), nil)

	service := NewService(activityRepo, goalsRepo, testConfig())
	defer service.Close()

	progress, err := service.GetGoalProgress("CUC")
	require.NoError(t, err)

	require.Len(t, progress.Categories, 3)
	nutrition := progress.Categories[0]
	require.Len(t, nutrition.Strategies, 1)
	assert.Equal(t, 25.0, nutrition.Strategies[0].Percentage)
	assert.Equal(t, domain.TierLow, nutrition.Strategies[0].Tier)

	// Las entregas aparecen crudas junto a la categoría de nutrición
	require.Len(t, nutrition.Deliveries, 1)
	assert.Equal(t, "centerRation", nutrition.Deliveries[0].Key)
}

func TestGetGoalProgress_ReutilizaSnapshotCacheado(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	activityRepo := mocks.NewMockActivityRepository(ctrl)
	goalsRepo := mocks.NewMockGoalsRepository(ctrl)

	// Una sola reconstrucción aunque se consulte dos veces
	goalsRepo.EXPECT().GetGoals("CUC").Return(nil, nil).Times(1)
	activityRepo.EXPECT().ListActivities().Return(sampleActivities(), nil).Times(1)

	service := NewService(activityRepo, goalsRepo, testConfig())
	defer service.Close()

	_, err := service.GetGoalProgress("CUC")
	require.NoError(t, err)
	_, err = service.GetGoalProgress("CUC")
	require.NoError(t, err)
}

func TestSaveGoal_ValidaCatalogo(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	activityRepo := mocks.NewMockActivityRepository(ctrl)
	goalsRepo := mocks.NewMockGoalsRepository(ctrl)

	service := NewService(activityRepo, goalsRepo, testConfig())
	defer service.Close()

	err := service.SaveGoal("CUC", domain.ActivityTypePhysical, "yoga", 10)
	assert.Error(t, err)

	err = service.SaveGoal("CUC", domain.ActivityTypePhysical, "walkingClub", -1)
	assert.Error(t, err)
}

func TestSaveGoal_ProgramaRecalculoAmortiguado(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	activityRepo := mocks.NewMockActivityRepository(ctrl)
	goalsRepo := mocks.NewMockGoalsRepository(ctrl)

	goalsRepo.EXPECT().SaveGoal("CUC", domain.ActivityTypePhysical, "walkingClub", 10.0).Return(nil)

	// El recálculo amortiguado reconstruye el snapshot de cada contratista
	for _, contractor := range domain.Contractors {
		goalsRepo.EXPECT().GetGoals(contractor).Return(nil, nil)
		activityRepo.EXPECT().ListActivities().Return(sampleActivities(), nil)
	}

	// Ventana larga para que el recálculo sólo corra al forzarlo
	cfg := testConfig()
	cfg.Dashboard.GoalsRefreshDebounceMs = 60000

	service := NewService(activityRepo, goalsRepo, cfg)
	defer service.Close()

	require.NoError(t, service.SaveGoal("CUC", domain.ActivityTypePhysical, "walkingClub", 10))

	// Forzar la ejecución del recálculo pendiente sin esperar la ventana
	service.FlushGoalsRefresh()
}
