package business

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/randevuhub/RH-AppointmentService/internal/domain"
	businessRepo "github.com/randevuhub/RH-AppointmentService/internal/infra/storage/business"
	"github.com/randevuhub/RH-AppointmentService/internal/service/business/models"
	"github.com/randevuhub/RH-AppointmentService/pkg/ptr"
	"github.com/randevuhub/RH-AppointmentService/pkg/types"
)

type businessRepoMock struct {
	business *domain.Business
	exists   bool
	created  *domain.Business
	updated  *domain.Business
	wipeLog  *[]string
}

func (m *businessRepoMock) Create(_ context.Context, biz *domain.Business) (*domain.Business, error) {
	biz.ID = 1
	m.created = biz
	return biz, nil
}

func (m *businessRepoMock) GetBySlug(_ context.Context, _ string) (*domain.Business, error) {
	if m.business == nil {
		return nil, businessRepo.ErrBusinessNotFound
	}
	biz := *m.business
	return &biz, nil
}

func (m *businessRepoMock) Exists(_ context.Context) (bool, error) {
	return m.exists, nil
}

func (m *businessRepoMock) GetFirst(_ context.Context) (*domain.Business, error) {
	if m.business == nil {
		return nil, businessRepo.ErrBusinessNotFound
	}
	biz := *m.business
	return &biz, nil
}

func (m *businessRepoMock) Update(_ context.Context, biz *domain.Business) error {
	m.updated = biz
	return nil
}

func (m *businessRepoMock) DeleteAll(_ context.Context) error {
	if m.wipeLog != nil {
		*m.wipeLog = append(*m.wipeLog, "businesses")
	}
	return nil
}

type serviceRepoMock struct {
	active  []*domain.Service
	batches [][]*domain.Service
	deleted []int64
	wipeLog *[]string
}

func (m *serviceRepoMock) CreateBatch(_ context.Context, services []*domain.Service) error {
	m.batches = append(m.batches, services)
	return nil
}

func (m *serviceRepoMock) GetActiveByBusiness(_ context.Context, _ int64) ([]*domain.Service, error) {
	return m.active, nil
}

func (m *serviceRepoMock) DeleteByBusiness(_ context.Context, businessID int64) error {
	m.deleted = append(m.deleted, businessID)
	return nil
}

func (m *serviceRepoMock) DeleteAll(_ context.Context) error {
	if m.wipeLog != nil {
		*m.wipeLog = append(*m.wipeLog, "services")
	}
	return nil
}

type customerRepoMock struct {
	summaries []*domain.CustomerSummary
	wipeLog   *[]string
}

func (m *customerRepoMock) GetSummariesByBusiness(_ context.Context, _ int64) ([]*domain.CustomerSummary, error) {
	return m.summaries, nil
}

func (m *customerRepoMock) DeleteAll(_ context.Context) error {
	if m.wipeLog != nil {
		*m.wipeLog = append(*m.wipeLog, "customers")
	}
	return nil
}

// wipeRepoMock покрывает репозитории, от которых сервису нужен только DeleteAll
type wipeRepoMock struct {
	table   string
	wipeLog *[]string
}

func (m *wipeRepoMock) DeleteAll(_ context.Context) error {
	if m.wipeLog != nil {
		*m.wipeLog = append(*m.wipeLog, m.table)
	}
	return nil
}

type txManagerMock struct{}

func (txManagerMock) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

const adminToken = "gizli-sifre"

func existingBusiness() *domain.Business {
	return &domain.Business{
		ID:                  1,
		Name:                "Elit Berber",
		Slug:                "elit-berber",
		Sector:              "barber",
		AdminPassword:       adminToken,
		WorkingDays:         domain.WorkingDays{1, 2, 3, 4, 5, 6},
		OpenTime:            "09:00",
		CloseTime:           "18:00",
		SlotDurationMinutes: 30,
		IsSetupComplete:     true,
	}
}

func newService(bizRepo *businessRepoMock, svcRepo *serviceRepoMock) *Service {
	return NewService(
		bizRepo,
		svcRepo,
		&customerRepoMock{},
		&wipeRepoMock{table: "appointments"},
		&wipeRepoMock{table: "notifications"},
		&wipeRepoMock{table: "webhooks"},
		txManagerMock{},
		nopLogger{},
	)
}

// newResetService собирает сервис, в котором каждый репозиторий пишет
// свою таблицу в общий журнал очистки
func newResetService(bizRepo *businessRepoMock, wipeLog *[]string) *Service {
	bizRepo.wipeLog = wipeLog
	return NewService(
		bizRepo,
		&serviceRepoMock{wipeLog: wipeLog},
		&customerRepoMock{wipeLog: wipeLog},
		&wipeRepoMock{table: "appointments", wipeLog: wipeLog},
		&wipeRepoMock{table: "notifications", wipeLog: wipeLog},
		&wipeRepoMock{table: "webhooks", wipeLog: wipeLog},
		txManagerMock{},
		nopLogger{},
	)
}

func TestService_Setup(t *testing.T) {
	validReq := func() *models.SetupRequest {
		return &models.SetupRequest{
			Sector:   "barber",
			Name:     "Elit Berber",
			Phone:    "+905551112233",
			Password: adminToken,
		}
	}

	t.Run("creates business with template services and defaults", func(t *testing.T) {
		bizRepo := &businessRepoMock{}
		svcRepo := &serviceRepoMock{}
		s := newService(bizRepo, svcRepo)

		resp, err := s.Setup(context.Background(), validReq())
		require.NoError(t, err)

		assert.Equal(t, "elit-berber", resp.Slug)
		assert.Equal(t, "1,2,3,4,5,6", resp.WorkingDays)
		assert.Equal(t, types.TimeString("09:00"), resp.OpenTime)
		assert.Equal(t, types.TimeString("18:00"), resp.CloseTime)
		assert.Equal(t, 30, resp.SlotDuration)
		assert.True(t, resp.IsSetupComplete)

		// описание по умолчанию берётся из слогана шаблона
		require.NotNil(t, resp.Description)
		assert.Equal(t, domain.SectorTemplates["barber"].Tagline, *resp.Description)

		// стартовые услуги из шаблона
		require.Len(t, svcRepo.batches, 1)
		assert.Len(t, svcRepo.batches[0], len(domain.SectorTemplates["barber"].DefaultServices))
	})

	t.Run("second setup is rejected", func(t *testing.T) {
		bizRepo := &businessRepoMock{exists: true}
		s := newService(bizRepo, &serviceRepoMock{})

		_, err := s.Setup(context.Background(), validReq())
		assert.ErrorIs(t, err, ErrBusinessExists)
	})

	t.Run("unknown sector", func(t *testing.T) {
		s := newService(&businessRepoMock{}, &serviceRepoMock{})

		req := validReq()
		req.Sector = "bakery"

		_, err := s.Setup(context.Background(), req)
		assert.ErrorIs(t, err, ErrUnknownSector)
	})

	t.Run("missing required fields", func(t *testing.T) {
		s := newService(&businessRepoMock{}, &serviceRepoMock{})

		req := validReq()
		req.Password = ""

		_, err := s.Setup(context.Background(), req)
		assert.ErrorIs(t, err, ErrInvalidInput)
	})
}

func TestService_Update(t *testing.T) {
	t.Run("wrong token", func(t *testing.T) {
		s := newService(&businessRepoMock{business: existingBusiness()}, &serviceRepoMock{})

		_, err := s.Update(context.Background(), &models.UpdateBusinessRequest{
			Slug:       "elit-berber",
			AdminToken: "yanlis",
		})
		assert.ErrorIs(t, err, ErrAccessDenied)
	})

	t.Run("open time must stay before close time", func(t *testing.T) {
		s := newService(&businessRepoMock{business: existingBusiness()}, &serviceRepoMock{})

		_, err := s.Update(context.Background(), &models.UpdateBusinessRequest{
			Slug:       "elit-berber",
			AdminToken: adminToken,
			OpenTime:   ptr.Ptr(types.TimeString("19:00")),
		})
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("slot duration must fit into the working day", func(t *testing.T) {
		s := newService(&businessRepoMock{business: existingBusiness()}, &serviceRepoMock{})

		_, err := s.Update(context.Background(), &models.UpdateBusinessRequest{
			Slug:         "elit-berber",
			AdminToken:   adminToken,
			SlotDuration: ptr.Ptr(600),
		})
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("bad working days set", func(t *testing.T) {
		s := newService(&businessRepoMock{business: existingBusiness()}, &serviceRepoMock{})

		_, err := s.Update(context.Background(), &models.UpdateBusinessRequest{
			Slug:        "elit-berber",
			AdminToken:  adminToken,
			WorkingDays: ptr.Ptr("1,2,9"),
		})
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("services replacement", func(t *testing.T) {
		bizRepo := &businessRepoMock{business: existingBusiness()}
		svcRepo := &serviceRepoMock{}
		s := newService(bizRepo, svcRepo)

		_, err := s.Update(context.Background(), &models.UpdateBusinessRequest{
			Slug:       "elit-berber",
			AdminToken: adminToken,
			Services: []models.ServiceInput{
				{Name: "Saç Kesimi", Duration: ptr.Ptr(45)},
				{Name: "Sakal", Price: ptr.Ptr(150.0)},
			},
		})
		require.NoError(t, err)

		assert.Equal(t, []int64{1}, svcRepo.deleted)
		require.Len(t, svcRepo.batches, 1)
		require.Len(t, svcRepo.batches[0], 2)
		assert.Equal(t, 45, svcRepo.batches[0][0].DurationMinutes)
		// длительность по умолчанию, когда не передана
		assert.Equal(t, domain.DefaultServiceDurationMinutes, svcRepo.batches[0][1].DurationMinutes)
	})

	t.Run("password change and profile fields", func(t *testing.T) {
		bizRepo := &businessRepoMock{business: existingBusiness()}
		s := newService(bizRepo, &serviceRepoMock{})

		_, err := s.Update(context.Background(), &models.UpdateBusinessRequest{
			Slug:        "elit-berber",
			AdminToken:  adminToken,
			Name:        ptr.Ptr("Yeni İsim"),
			NewPassword: ptr.Ptr("yeni-sifre"),
		})
		require.NoError(t, err)

		require.NotNil(t, bizRepo.updated)
		assert.Equal(t, "Yeni İsim", bizRepo.updated.Name)
		assert.Equal(t, "yeni-sifre", bizRepo.updated.AdminPassword)
	})

	t.Run("unknown slug", func(t *testing.T) {
		s := newService(&businessRepoMock{}, &serviceRepoMock{})

		_, err := s.Update(context.Background(), &models.UpdateBusinessRequest{
			Slug:       "ghost",
			AdminToken: adminToken,
		})
		assert.ErrorIs(t, err, ErrBusinessNotFound)
	})
}

func TestService_GetBySlug(t *testing.T) {
	t.Run("returns business with active services", func(t *testing.T) {
		svcRepo := &serviceRepoMock{active: []*domain.Service{
			{ID: 1, BusinessID: 1, Name: "Saç Kesimi", DurationMinutes: 30, IsActive: true},
		}}
		s := newService(&businessRepoMock{business: existingBusiness()}, svcRepo)

		resp, err := s.GetBySlug(context.Background(), "elit-berber")
		require.NoError(t, err)
		require.Len(t, resp.Services, 1)
		assert.Equal(t, "Saç Kesimi", resp.Services[0].Name)
	})

	t.Run("unknown slug", func(t *testing.T) {
		s := newService(&businessRepoMock{}, &serviceRepoMock{})

		_, err := s.GetBySlug(context.Background(), "ghost")
		assert.ErrorIs(t, err, ErrBusinessNotFound)
	})
}

func TestService_Reset(t *testing.T) {
	t.Run("wipes all tables respecting foreign keys", func(t *testing.T) {
		var wipeLog []string
		s := newResetService(&businessRepoMock{business: existingBusiness()}, &wipeLog)

		err := s.Reset(context.Background(), adminToken)
		require.NoError(t, err)

		// зависимые таблицы чистятся раньше родительских
		assert.Equal(t, []string{
			"notifications",
			"appointments",
			"services",
			"webhooks",
			"customers",
			"businesses",
		}, wipeLog)
	})

	t.Run("wrong password leaves data intact", func(t *testing.T) {
		var wipeLog []string
		s := newResetService(&businessRepoMock{business: existingBusiness()}, &wipeLog)

		err := s.Reset(context.Background(), "yanlis")
		assert.ErrorIs(t, err, ErrAccessDenied)
		assert.Empty(t, wipeLog)
	})

	t.Run("nothing to reset", func(t *testing.T) {
		var wipeLog []string
		s := newResetService(&businessRepoMock{}, &wipeLog)

		err := s.Reset(context.Background(), adminToken)
		assert.ErrorIs(t, err, ErrBusinessNotFound)
	})

	t.Run("password is required", func(t *testing.T) {
		var wipeLog []string
		s := newResetService(&businessRepoMock{business: existingBusiness()}, &wipeLog)

		err := s.Reset(context.Background(), "")
		assert.ErrorIs(t, err, ErrInvalidInput)
		assert.Empty(t, wipeLog)
	})
}
