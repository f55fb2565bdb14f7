package controller

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	appointmentdomain "github.com/tecnologiawebnetsystem/pet-shop-back/internal/domain/appointment"
	clientdomain "github.com/tecnologiawebnetsystem/pet-shop-back/internal/domain/client"
	petdomain "github.com/tecnologiawebnetsystem/pet-shop-back/internal/domain/pet"
	saledomain "github.com/tecnologiawebnetsystem/pet-shop-back/internal/domain/sale"
	servicedomain "github.com/tecnologiawebnetsystem/pet-shop-back/internal/domain/service"
	staffdomain "github.com/tecnologiawebnetsystem/pet-shop-back/internal/domain/staff"
	userdomain "github.com/tecnologiawebnetsystem/pet-shop-back/internal/domain/user"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func performRequest(r http.Handler, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

// nopLogger descarta os logs durante os testes
type nopLogger struct{}

func (nopLogger) Info(msg string, keysAndValues ...interface{})  {}
func (nopLogger) Error(msg string, keysAndValues ...interface{}) {}
func (nopLogger) Debug(msg string, keysAndValues ...interface{}) {}
func (nopLogger) Warn(msg string, keysAndValues ...interface{})  {}

type sentMail struct {
	To      string
	Subject string
	Body    string
}

// recordingMailer captura os e-mails despachados em segundo plano
type recordingMailer struct {
	sent chan sentMail
}

func newRecordingMailer() *recordingMailer {
	return &recordingMailer{sent: make(chan sentMail, 4)}
}

func (m *recordingMailer) Send(to, subject, htmlBody string) error {
	m.sent <- sentMail{To: to, Subject: subject, Body: htmlBody}
	return nil
}

// wait espera o próximo e-mail despachado
func (m *recordingMailer) wait(t *testing.T) sentMail {
	t.Helper()
	select {
	case s := <-m.sent:
		return s
	case <-time.After(2 * time.Second):
		t.Fatal("nenhum e-mail foi despachado")
		return sentMail{}
	}
}

// assertNone garante que nenhum e-mail foi despachado
func (m *recordingMailer) assertNone(t *testing.T) {
	t.Helper()
	select {
	case s := <-m.sent:
		t.Fatalf("e-mail inesperado: %s", s.Subject)
	case <-time.After(100 * time.Millisecond):
	}
}

type fakeSaleRepo struct {
	findByID func(id string) (*saledomain.Sale, error)
	update   func(s *saledomain.Sale) error
	cancel   func(id string) (*saledomain.Sale, error)
	remove   func(id string) (*saledomain.Sale, error)
}

func (f *fakeSaleRepo) CreateWithItems(ctx context.Context, s *saledomain.Sale, items []saledomain.NewItemInput) error {
	return nil
}

func (f *fakeSaleRepo) FindByID(ctx context.Context, id string) (*saledomain.Sale, error) {
	return f.findByID(id)
}

func (f *fakeSaleRepo) List(ctx context.Context, filter saledomain.Filter, limit, offset int) ([]*saledomain.Sale, error) {
	return nil, nil
}

func (f *fakeSaleRepo) Count(ctx context.Context, filter saledomain.Filter) (int, error) {
	return 0, nil
}

func (f *fakeSaleRepo) Update(ctx context.Context, s *saledomain.Sale) error {
	if f.update != nil {
		return f.update(s)
	}
	return nil
}

func (f *fakeSaleRepo) Cancel(ctx context.Context, id string) (*saledomain.Sale, error) {
	return f.cancel(id)
}

func (f *fakeSaleRepo) Delete(ctx context.Context, id string) (*saledomain.Sale, error) {
	return f.remove(id)
}

func (f *fakeSaleRepo) AddItem(ctx context.Context, saleID string, input saledomain.NewItemInput) (*saledomain.Item, error) {
	return nil, nil
}

func (f *fakeSaleRepo) UpdateItem(ctx context.Context, itemID string, update saledomain.ItemUpdate) (*saledomain.Item, error) {
	return nil, nil
}

func (f *fakeSaleRepo) DeleteItem(ctx context.Context, itemID string) error { return nil }

func (f *fakeSaleRepo) FindItemByID(ctx context.Context, itemID string) (*saledomain.Item, error) {
	return nil, nil
}

func (f *fakeSaleRepo) ListItems(ctx context.Context, filter saledomain.ItemFilter, limit, offset int) ([]*saledomain.Item, error) {
	return nil, nil
}

func (f *fakeSaleRepo) CountItems(ctx context.Context, filter saledomain.ItemFilter) (int, error) {
	return 0, nil
}

type fakeClientRepo struct {
	exists func(id string) (bool, error)
}

func (f *fakeClientRepo) Create(ctx context.Context, c *clientdomain.Client) error { return nil }

func (f *fakeClientRepo) FindByID(ctx context.Context, id string) (*clientdomain.Client, error) {
	return &clientdomain.Client{ID: id}, nil
}

func (f *fakeClientRepo) FindByUserID(ctx context.Context, userID string) (*clientdomain.Client, error) {
	return &clientdomain.Client{UserID: userID}, nil
}

func (f *fakeClientRepo) List(ctx context.Context, filter clientdomain.Filter, limit, offset int) ([]*clientdomain.Client, error) {
	return nil, nil
}

func (f *fakeClientRepo) Count(ctx context.Context, filter clientdomain.Filter) (int, error) {
	return 0, nil
}

func (f *fakeClientRepo) Update(ctx context.Context, c *clientdomain.Client) error { return nil }

func (f *fakeClientRepo) Delete(ctx context.Context, id string) error { return nil }

func (f *fakeClientRepo) Exists(ctx context.Context, id string) (bool, error) {
	if f.exists != nil {
		return f.exists(id)
	}
	return true, nil
}

func (f *fakeClientRepo) ExistsByUserID(ctx context.Context, userID string) (bool, error) {
	return false, nil
}

func (f *fakeClientRepo) ExistsByCPF(ctx context.Context, cpf string) (bool, error) {
	return false, nil
}

type fakeAppointmentRepo struct {
	findByID func(id string) (*appointmentdomain.Appointment, error)
	update   func(a *appointmentdomain.Appointment) error
	remove   func(id string) error
}

func (f *fakeAppointmentRepo) Create(ctx context.Context, a *appointmentdomain.Appointment) error {
	return nil
}

func (f *fakeAppointmentRepo) FindByID(ctx context.Context, id string) (*appointmentdomain.Appointment, error) {
	return f.findByID(id)
}

func (f *fakeAppointmentRepo) List(ctx context.Context, filter appointmentdomain.Filter, limit, offset int) ([]*appointmentdomain.Appointment, error) {
	return nil, nil
}

func (f *fakeAppointmentRepo) Count(ctx context.Context, filter appointmentdomain.Filter) (int, error) {
	return 0, nil
}

func (f *fakeAppointmentRepo) Update(ctx context.Context, a *appointmentdomain.Appointment) error {
	if f.update != nil {
		return f.update(a)
	}
	return nil
}

func (f *fakeAppointmentRepo) Delete(ctx context.Context, id string) error {
	if f.remove != nil {
		return f.remove(id)
	}
	return nil
}

func (f *fakeAppointmentRepo) HasConflict(ctx context.Context, staffID string, date time.Time, start, end time.Time, excludeID string) (bool, error) {
	return false, nil
}

type fakePetRepo struct {
	findByID func(id string) (*petdomain.Pet, error)
}

func (f *fakePetRepo) Create(ctx context.Context, p *petdomain.Pet) error { return nil }

func (f *fakePetRepo) FindByID(ctx context.Context, id string) (*petdomain.Pet, error) {
	return f.findByID(id)
}

func (f *fakePetRepo) FindByClient(ctx context.Context, clientID string) ([]*petdomain.Pet, error) {
	return nil, nil
}

func (f *fakePetRepo) List(ctx context.Context, filter petdomain.Filter, limit, offset int) ([]*petdomain.Pet, error) {
	return nil, nil
}

func (f *fakePetRepo) Count(ctx context.Context, filter petdomain.Filter) (int, error) {
	return 0, nil
}

func (f *fakePetRepo) Update(ctx context.Context, p *petdomain.Pet) error { return nil }

func (f *fakePetRepo) Delete(ctx context.Context, id string) error { return nil }

type fakeServiceRepo struct{}

func (fakeServiceRepo) Create(ctx context.Context, s *servicedomain.Service) error { return nil }

func (fakeServiceRepo) FindByID(ctx context.Context, id string) (*servicedomain.Service, error) {
	return &servicedomain.Service{ID: id, Status: servicedomain.StatusActive}, nil
}

func (fakeServiceRepo) FindByCategory(ctx context.Context, categoryID string, limit, offset int) ([]*servicedomain.Service, error) {
	return nil, nil
}

func (fakeServiceRepo) List(ctx context.Context, filter servicedomain.Filter, limit, offset int) ([]*servicedomain.Service, error) {
	return nil, nil
}

func (fakeServiceRepo) Count(ctx context.Context, filter servicedomain.Filter) (int, error) {
	return 0, nil
}

func (fakeServiceRepo) Update(ctx context.Context, s *servicedomain.Service) error { return nil }

func (fakeServiceRepo) Delete(ctx context.Context, id string) error { return nil }

func (fakeServiceRepo) CountAppointments(ctx context.Context, id string) (int, error) {
	return 0, nil
}

type fakeStaffRepo struct{}

func (fakeStaffRepo) Create(ctx context.Context, s *staffdomain.Staff) error { return nil }

func (fakeStaffRepo) FindByID(ctx context.Context, id string) (*staffdomain.Staff, error) {
	return &staffdomain.Staff{ID: id}, nil
}

func (fakeStaffRepo) FindByUserID(ctx context.Context, userID string) (*staffdomain.Staff, error) {
	return &staffdomain.Staff{UserID: userID}, nil
}

func (fakeStaffRepo) List(ctx context.Context, filter staffdomain.Filter, limit, offset int) ([]*staffdomain.Staff, error) {
	return nil, nil
}

func (fakeStaffRepo) Count(ctx context.Context, filter staffdomain.Filter) (int, error) {
	return 0, nil
}

func (fakeStaffRepo) Update(ctx context.Context, s *staffdomain.Staff) error { return nil }

func (fakeStaffRepo) Delete(ctx context.Context, id string) error { return nil }

func (fakeStaffRepo) Exists(ctx context.Context, id string) (bool, error) { return true, nil }

func (fakeStaffRepo) ExistsByUserID(ctx context.Context, userID string) (bool, error) {
	return false, nil
}

type fakeUserRepo struct {
	findByID func(id string) (*userdomain.User, error)
	update   func(u *userdomain.User) error
}

func (f *fakeUserRepo) Create(ctx context.Context, u *userdomain.User) error { return nil }

func (f *fakeUserRepo) FindByID(ctx context.Context, id string) (*userdomain.User, error) {
	if f.findByID != nil {
		return f.findByID(id)
	}
	return &userdomain.User{ID: id, Status: userdomain.StatusActive}, nil
}

func (f *fakeUserRepo) FindByEmail(ctx context.Context, email string) (*userdomain.User, error) {
	return &userdomain.User{Email: email}, nil
}

func (f *fakeUserRepo) List(ctx context.Context, filter userdomain.Filter, limit, offset int) ([]*userdomain.User, error) {
	return nil, nil
}

func (f *fakeUserRepo) Count(ctx context.Context, filter userdomain.Filter) (int, error) {
	return 0, nil
}

func (f *fakeUserRepo) Update(ctx context.Context, u *userdomain.User) error {
	if f.update != nil {
		return f.update(u)
	}
	return nil
}

func (f *fakeUserRepo) Delete(ctx context.Context, id string) error { return nil }

func (f *fakeUserRepo) UpdatePassword(ctx context.Context, id, hashedPassword string) error {
	return nil
}

func (f *fakeUserRepo) UpdateLastAccess(ctx context.Context, id string) error { return nil }

func (f *fakeUserRepo) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	return false, nil
}
