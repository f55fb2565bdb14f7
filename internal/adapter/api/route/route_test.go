package route

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tecnologiawebnetsystem/pet-shop-back/internal/adapter/api/controller"
	appointmentdomain "github.com/tecnologiawebnetsystem/pet-shop-back/internal/domain/appointment"
	staffdomain "github.com/tecnologiawebnetsystem/pet-shop-back/internal/domain/staff"
	taskdomain "github.com/tecnologiawebnetsystem/pet-shop-back/internal/domain/task"
	userdomain "github.com/tecnologiawebnetsystem/pet-shop-back/internal/domain/user"
	"github.com/tecnologiawebnetsystem/pet-shop-back/pkg/auth"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type nopLogger struct{}

func (nopLogger) Info(msg string, keysAndValues ...interface{})  {}
func (nopLogger) Error(msg string, keysAndValues ...interface{}) {}
func (nopLogger) Debug(msg string, keysAndValues ...interface{}) {}
func (nopLogger) Warn(msg string, keysAndValues ...interface{})  {}

type stubUserRepo struct{}

func (stubUserRepo) Create(ctx context.Context, u *userdomain.User) error { return nil }
func (stubUserRepo) FindByID(ctx context.Context, id string) (*userdomain.User, error) {
	return &userdomain.User{ID: id, Status: userdomain.StatusActive}, nil
}
func (stubUserRepo) FindByEmail(ctx context.Context, email string) (*userdomain.User, error) {
	return &userdomain.User{Email: email}, nil
}
func (stubUserRepo) List(ctx context.Context, filter userdomain.Filter, limit, offset int) ([]*userdomain.User, error) {
	return nil, nil
}
func (stubUserRepo) Count(ctx context.Context, filter userdomain.Filter) (int, error) {
	return 0, nil
}
func (stubUserRepo) Update(ctx context.Context, u *userdomain.User) error { return nil }
func (stubUserRepo) Delete(ctx context.Context, id string) error          { return nil }
func (stubUserRepo) UpdatePassword(ctx context.Context, id, hashedPassword string) error {
	return nil
}
func (stubUserRepo) UpdateLastAccess(ctx context.Context, id string) error { return nil }
func (stubUserRepo) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	return false, nil
}

type stubStaffRepo struct{}

func (stubStaffRepo) Create(ctx context.Context, s *staffdomain.Staff) error { return nil }
func (stubStaffRepo) FindByID(ctx context.Context, id string) (*staffdomain.Staff, error) {
	return &staffdomain.Staff{ID: id}, nil
}
func (stubStaffRepo) FindByUserID(ctx context.Context, userID string) (*staffdomain.Staff, error) {
	return &staffdomain.Staff{UserID: userID}, nil
}
func (stubStaffRepo) List(ctx context.Context, filter staffdomain.Filter, limit, offset int) ([]*staffdomain.Staff, error) {
	return nil, nil
}
func (stubStaffRepo) Count(ctx context.Context, filter staffdomain.Filter) (int, error) {
	return 0, nil
}
func (stubStaffRepo) Update(ctx context.Context, s *staffdomain.Staff) error { return nil }
func (stubStaffRepo) Delete(ctx context.Context, id string) error            { return nil }
func (stubStaffRepo) Exists(ctx context.Context, id string) (bool, error)    { return true, nil }
func (stubStaffRepo) ExistsByUserID(ctx context.Context, userID string) (bool, error) {
	return false, nil
}

type stubAppointmentRepo struct{}

func (stubAppointmentRepo) Create(ctx context.Context, a *appointmentdomain.Appointment) error {
	return nil
}
func (stubAppointmentRepo) FindByID(ctx context.Context, id string) (*appointmentdomain.Appointment, error) {
	return &appointmentdomain.Appointment{ID: id}, nil
}
func (stubAppointmentRepo) List(ctx context.Context, filter appointmentdomain.Filter, limit, offset int) ([]*appointmentdomain.Appointment, error) {
	return nil, nil
}
func (stubAppointmentRepo) Count(ctx context.Context, filter appointmentdomain.Filter) (int, error) {
	return 0, nil
}
func (stubAppointmentRepo) Update(ctx context.Context, a *appointmentdomain.Appointment) error {
	return nil
}
func (stubAppointmentRepo) Delete(ctx context.Context, id string) error { return nil }
func (stubAppointmentRepo) HasConflict(ctx context.Context, staffID string, date time.Time, start, end time.Time, excludeID string) (bool, error) {
	return false, nil
}

type stubTaskRepo struct{}

func (stubTaskRepo) Create(ctx context.Context, t *taskdomain.Task) error { return nil }
func (stubTaskRepo) FindByID(ctx context.Context, id string) (*taskdomain.Task, error) {
	return &taskdomain.Task{ID: id}, nil
}
func (stubTaskRepo) FindByStaff(ctx context.Context, staffID string, limit, offset int) ([]*taskdomain.Task, error) {
	return nil, nil
}
func (stubTaskRepo) List(ctx context.Context, filter taskdomain.Filter, limit, offset int) ([]*taskdomain.Task, error) {
	return nil, nil
}
func (stubTaskRepo) Count(ctx context.Context, filter taskdomain.Filter) (int, error) {
	return 0, nil
}
func (stubTaskRepo) Update(ctx context.Context, t *taskdomain.Task) error { return nil }
func (stubTaskRepo) Delete(ctx context.Context, id string) error          { return nil }

func newTestRouter(t *testing.T) (*gin.Engine, *auth.JWTService) {
	t.Helper()

	jwtService, err := auth.NewJWTService("chave-de-teste", time.Hour)
	require.NoError(t, err)

	userController := controller.NewUserController(stubUserRepo{}, nopLogger{})
	staffController := controller.NewStaffController(stubStaffRepo{}, stubUserRepo{}, stubAppointmentRepo{}, stubTaskRepo{}, nopLogger{})

	r := gin.New()
	api := r.Group("/api/v1")
	RegisterUserRoutes(api, userController, jwtService)
	RegisterStaffRoutes(api, staffController, jwtService)
	return r, jwtService
}

func tokenFor(t *testing.T, jwtService *auth.JWTService, role userdomain.Role) string {
	t.Helper()

	token, err := jwtService.GenerateToken(&userdomain.User{
		ID:     "u-" + string(role),
		Email:  string(role) + "@example.com",
		Role:   role,
		Status: userdomain.StatusActive,
	})
	require.NoError(t, err)
	return token
}

func authRequest(r http.Handler, method, path, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestUserRoutes_ListRequiresAdmin(t *testing.T) {
	r, jwtService := newTestRouter(t)

	w := authRequest(r, http.MethodGet, "/api/v1/usuarios", tokenFor(t, jwtService, userdomain.RoleStaff))
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = authRequest(r, http.MethodGet, "/api/v1/usuarios", tokenFor(t, jwtService, userdomain.RoleAdmin))
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestUserRoutes_ListRequiresToken(t *testing.T) {
	r, _ := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/usuarios", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestStaffRoutes_ListRequiresAdmin(t *testing.T) {
	r, jwtService := newTestRouter(t)

	w := authRequest(r, http.MethodGet, "/api/v1/funcionarios", tokenFor(t, jwtService, userdomain.RoleStaff))
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = authRequest(r, http.MethodGet, "/api/v1/funcionarios", tokenFor(t, jwtService, userdomain.RoleAdmin))
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestStaffRoutes_GetOpenToAuthenticated(t *testing.T) {
	r, jwtService := newTestRouter(t)

	token := tokenFor(t, jwtService, userdomain.RoleStaff)

	w := authRequest(r, http.MethodGet, "/api/v1/funcionarios/f1", token)
	assert.Equal(t, http.StatusOK, w.Code)

	w = authRequest(r, http.MethodGet, "/api/v1/funcionarios/f1/agendamentos", token)
	assert.Equal(t, http.StatusOK, w.Code)

	w = authRequest(r, http.MethodGet, "/api/v1/funcionarios/f1/tarefas", token)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestStaffRoutes_MutationsRequireAdmin(t *testing.T) {
	r, jwtService := newTestRouter(t)

	token := tokenFor(t, jwtService, userdomain.RoleStaff)

	w := authRequest(r, http.MethodPut, "/api/v1/funcionarios/f1", token)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = authRequest(r, http.MethodDelete, "/api/v1/funcionarios/f1", token)
	assert.Equal(t, http.StatusForbidden, w.Code)
}
