// Package fieldapp integra la app de campo de los contratistas: descarga las
// actividades reportadas y las traduce al modelo de dominio del dashboard.
package fieldapp

import (
	"time"

	"github.com/MitriadesVI/dashboard-adulto-mayor-sub001/infrastructure/integrator/fieldapp/fieldappclient"
	"github.com/MitriadesVI/dashboard-adulto-mayor-sub001/internal/config"
	"github.com/MitriadesVI/dashboard-adulto-mayor-sub001/internal/domain"
	"github.com/MitriadesVI/dashboard-adulto-mayor-sub001/pkg/utils"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

type FieldAppIntegrator interface {
	GetReportedActivities(startDate, endDate time.Time) ([]*domain.Activity, error)
	CheckConnection() (bool, error)
}

type FieldAppService struct {
	cfg    *config.Config
	Client fieldappclient.Client
}

func New(cfg *config.Config, client fieldappclient.Client) FieldAppIntegrator {
	return &FieldAppService{
		cfg:    cfg,
		Client: client,
	}
}

// GetReportedActivities descarga las actividades del período y las mapea al
// dominio. Una fecha malformada en un registro no aborta la pasada completa:
// el registro se conserva sin fecha y queda excluido solo de las operaciones
// que dependen de fecha.
func (s *FieldAppService) GetReportedActivities(startDate, endDate time.Time) ([]*domain.Activity, error) {
	params := fieldappclient.ReportConsultationParams{
		StartDate: startDate.Format(time.DateOnly),
		EndDate:   endDate.Format(time.DateOnly),
	}

	reported, err := s.Client.GetReportedActivities(params)
	if err != nil {
		return nil, errors.Wrap(err, "error al consultar actividades en la app de campo")
	}

	activities := make([]*domain.Activity, 0, len(reported))
	for _, record := range reported {
		activities = append(activities, mapActivity(record))
	}

	return activities, nil
}

func (s *FieldAppService) CheckConnection() (bool, error) {
	now := time.Now()
	params := fieldappclient.ReportConsultationParams{
		StartDate: now.AddDate(0, 0, -1).Format(time.DateOnly),
		EndDate:   now.Format(time.DateOnly),
	}

	if _, err := s.Client.GetReportedActivities(params); err != nil {
		return false, err
	}

	return true, nil
}

func mapActivity(record fieldappclient.ReportedActivity) *domain.Activity {
	activity := &domain.Activity{
		ID:            record.ID,
		Contractor:    record.Contractor,
		Type:          record.Type,
		Subtype:       record.Subtype,
		Beneficiaries: record.Beneficiaries,
		Location: &domain.Location{
			Name: record.Location.Name,
			Type: record.Location.Type,
		},
		Educational: &domain.EducationalActivity{
			Included: record.Educational.Included,
			Type:     record.Educational.Type,
		},
	}

	if activity.ID == "" {
		id, err := utils.GenerateID()
		if err == nil {
			activity.ID = id
		}
	}

	if record.Date != "" {
		if date, err := parseReportedDate(record.Date); err == nil {
			activity.Date = &date
		} else {
			logrus.WithFields(logrus.Fields{
				"activity_id": activity.ID,
				"date":        record.Date,
			}).Warn("Fecha malformada en actividad reportada, se conserva sin fecha")
		}
	}

	return activity
}

// parseReportedDate acepta los dos formatos que emite la app de campo
func parseReportedDate(value string) (time.Time, error) {
	if date, err := time.Parse(time.RFC3339, value); err == nil {
		return date, nil
	}
	return time.Parse(time.DateOnly, value)
}
