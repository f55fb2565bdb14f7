package controller

import (
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	appointmentdomain "github.com/tecnologiawebnetsystem/pet-shop-back/internal/domain/appointment"
	petdomain "github.com/tecnologiawebnetsystem/pet-shop-back/internal/domain/pet"
)

func appointmentRouter(c *AppointmentController) *gin.Engine {
	r := gin.New()
	r.PUT("/agendamentos/:id", c.Update)
	r.DELETE("/agendamentos/:id", c.Delete)
	return r
}

func storedAppointment(status appointmentdomain.Status) *appointmentdomain.Appointment {
	date := time.Date(2030, 5, 10, 0, 0, 0, 0, time.UTC)
	return &appointmentdomain.Appointment{
		ID:          "a1",
		ClientID:    "c1",
		PetID:       "p1",
		ServiceID:   "s1",
		Date:        date,
		StartTime:   date.Add(14 * time.Hour),
		EndTime:     date.Add(15 * time.Hour),
		Status:      status,
		ClientName:  "Maria",
		ClientEmail: "maria@example.com",
		PetName:     "Rex",
		ServiceName: "Banho",
	}
}

func ownedPetRepo() *fakePetRepo {
	return &fakePetRepo{findByID: func(id string) (*petdomain.Pet, error) {
		return &petdomain.Pet{ID: id, ClientID: "c1", Name: "Rex", Species: "cachorro"}, nil
	}}
}

func newTestAppointmentController(repo *fakeAppointmentRepo, m *recordingMailer) *AppointmentController {
	return NewAppointmentController(repo, &fakeClientRepo{}, ownedPetRepo(), fakeServiceRepo{}, fakeStaffRepo{}, m, nopLogger{})
}

func TestAppointmentController_Update_CancelDispatchesEmail(t *testing.T) {
	calls := 0
	repo := &fakeAppointmentRepo{
		findByID: func(id string) (*appointmentdomain.Appointment, error) {
			calls++
			if calls == 1 {
				return storedAppointment(appointmentdomain.StatusScheduled), nil
			}
			return storedAppointment(appointmentdomain.StatusCancelled), nil
		},
	}
	m := newRecordingMailer()
	ctrl := newTestAppointmentController(repo, m)

	body := `{"cliente_id":"c1","pet_id":"p1","servico_id":"s1","data":"2030-05-10","hora_inicio":"14:00","hora_fim":"15:00","status":"cancelado"}`
	w := performRequest(appointmentRouter(ctrl), http.MethodPut, "/agendamentos/a1", body)

	assert.Equal(t, http.StatusOK, w.Code)
	mail := m.wait(t)
	assert.Equal(t, "maria@example.com", mail.To)
	assert.Equal(t, "Agendamento cancelado", mail.Subject)
	assert.Contains(t, mail.Body, "Rex")
	assert.Contains(t, mail.Body, "Banho")
}

func TestAppointmentController_Update_CompleteDispatchesEmail(t *testing.T) {
	calls := 0
	repo := &fakeAppointmentRepo{
		findByID: func(id string) (*appointmentdomain.Appointment, error) {
			calls++
			if calls == 1 {
				return storedAppointment(appointmentdomain.StatusConfirmed), nil
			}
			return storedAppointment(appointmentdomain.StatusCompleted), nil
		},
	}
	m := newRecordingMailer()
	ctrl := newTestAppointmentController(repo, m)

	body := `{"cliente_id":"c1","pet_id":"p1","servico_id":"s1","data":"2030-05-10","hora_inicio":"14:00","hora_fim":"15:00","status":"concluido"}`
	w := performRequest(appointmentRouter(ctrl), http.MethodPut, "/agendamentos/a1", body)

	assert.Equal(t, http.StatusOK, w.Code)
	mail := m.wait(t)
	assert.Equal(t, "Agendamento concluído", mail.Subject)
}

func TestAppointmentController_Update_SameStatusNoEmail(t *testing.T) {
	repo := &fakeAppointmentRepo{
		findByID: func(id string) (*appointmentdomain.Appointment, error) {
			return storedAppointment(appointmentdomain.StatusScheduled), nil
		},
	}
	m := newRecordingMailer()
	ctrl := newTestAppointmentController(repo, m)

	body := `{"cliente_id":"c1","pet_id":"p1","servico_id":"s1","data":"2030-05-10","hora_inicio":"14:00","hora_fim":"15:00","status":"agendado"}`
	w := performRequest(appointmentRouter(ctrl), http.MethodPut, "/agendamentos/a1", body)

	assert.Equal(t, http.StatusOK, w.Code)
	m.assertNone(t)
}

func TestAppointmentController_Delete_DispatchesCancellation(t *testing.T) {
	repo := &fakeAppointmentRepo{
		findByID: func(id string) (*appointmentdomain.Appointment, error) {
			return storedAppointment(appointmentdomain.StatusScheduled), nil
		},
	}
	m := newRecordingMailer()
	ctrl := newTestAppointmentController(repo, m)

	w := performRequest(appointmentRouter(ctrl), http.MethodDelete, "/agendamentos/a1", "")

	assert.Equal(t, http.StatusOK, w.Code)
	mail := m.wait(t)
	assert.Equal(t, "maria@example.com", mail.To)
	assert.Equal(t, "Agendamento cancelado", mail.Subject)
}

func TestAppointmentController_Delete_InactiveNoEmail(t *testing.T) {
	repo := &fakeAppointmentRepo{
		findByID: func(id string) (*appointmentdomain.Appointment, error) {
			return storedAppointment(appointmentdomain.StatusCompleted), nil
		},
	}
	m := newRecordingMailer()
	ctrl := newTestAppointmentController(repo, m)

	w := performRequest(appointmentRouter(ctrl), http.MethodDelete, "/agendamentos/a1", "")

	assert.Equal(t, http.StatusOK, w.Code)
	m.assertNone(t)
}
