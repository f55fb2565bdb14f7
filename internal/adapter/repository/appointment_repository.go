package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/tecnologiawebnetsystem/pet-shop-back/internal/domain/appointment"
)

// ErrAppointmentNotFound indica que o agendamento não existe
var ErrAppointmentNotFound = errors.New("agendamento não encontrado")

// AppointmentRepository implementa a interface appointment.Repository
type AppointmentRepository struct {
	db *pgxpool.Pool
}

// NewAppointmentRepository cria uma nova instância de AppointmentRepository
func NewAppointmentRepository(db *pgxpool.Pool) appointment.Repository {
	return &AppointmentRepository{
		db: db,
	}
}

const appointmentSelect = `SELECT
	a.id, a.cliente_id, a.pet_id, a.servico_id, a.funcionario_id,
	a.data, a.hora_inicio, a.hora_fim, a.status, a.observacoes,
	a.created_at, a.updated_at,
	u.nome, u.email, p.nome, s.nome,
	COALESCE(fu.nome, '')
FROM agendamentos a
JOIN clientes c ON c.id = a.cliente_id
JOIN usuarios u ON u.id = c.usuario_id
JOIN pets p ON p.id = a.pet_id
JOIN servicos s ON s.id = a.servico_id
LEFT JOIN funcionarios f ON f.id = a.funcionario_id
LEFT JOIN usuarios fu ON fu.id = f.usuario_id`

// Agendamentos concluídos ou cancelados nunca bloqueiam um horário
const conflictCondition = `funcionario_id = $1
	AND data = $2
	AND status IN ('agendado', 'confirmado', 'em_andamento')
	AND hora_inicio < $4 AND hora_fim > $3
	AND ($5 = '' OR id <> $5)`

// Create implementa appointment.Repository.Create. O conflito de horário é
// verificado dentro da transação, com a linha do funcionário bloqueada, para
// que duas criações simultâneas no mesmo horário não passem ambas.
func (r *AppointmentRepository) Create(ctx context.Context, a *appointment.Appointment) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("erro ao iniciar transação: %w", err)
	}
	defer tx.Rollback(ctx)

	if a.StaffID != nil && appointment.IsActiveStatus(a.Status) {
		if err := r.checkConflictTx(ctx, tx, *a.StaffID, a.Date, a.StartTime, a.EndTime, ""); err != nil {
			return err
		}
	}

	_, err = tx.Exec(ctx,
		`INSERT INTO agendamentos (
			id, cliente_id, pet_id, servico_id, funcionario_id,
			data, hora_inicio, hora_fim, status, observacoes,
			created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`,
		a.ID, a.ClientID, a.PetID, a.ServiceID, a.StaffID,
		a.Date, a.StartTime, a.EndTime, a.Status, a.Notes,
		a.CreatedAt, a.UpdatedAt)
	if err != nil {
		return fmt.Errorf("erro ao criar agendamento: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("erro ao fazer commit: %w", err)
	}

	return nil
}

// FindByID implementa appointment.Repository.FindByID
func (r *AppointmentRepository) FindByID(ctx context.Context, id string) (*appointment.Appointment, error) {
	row := r.db.QueryRow(ctx, appointmentSelect+" WHERE a.id = $1", id)

	a, err := r.scanAppointment(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrAppointmentNotFound
		}
		return nil, fmt.Errorf("erro ao buscar agendamento: %w", err)
	}

	return a, nil
}

func buildAppointmentWhere(filter appointment.Filter) (string, []interface{}) {
	conditions := make([]string, 0, 7)
	args := make([]interface{}, 0, 7)

	if filter.ClientID != "" {
		args = append(args, filter.ClientID)
		conditions = append(conditions, fmt.Sprintf("a.cliente_id = $%d", len(args)))
	}
	if filter.PetID != "" {
		args = append(args, filter.PetID)
		conditions = append(conditions, fmt.Sprintf("a.pet_id = $%d", len(args)))
	}
	if filter.ServiceID != "" {
		args = append(args, filter.ServiceID)
		conditions = append(conditions, fmt.Sprintf("a.servico_id = $%d", len(args)))
	}
	if filter.StaffID != "" {
		args = append(args, filter.StaffID)
		conditions = append(conditions, fmt.Sprintf("a.funcionario_id = $%d", len(args)))
	}
	if filter.Date != nil {
		args = append(args, *filter.Date)
		conditions = append(conditions, fmt.Sprintf("a.data = $%d", len(args)))
	}
	if filter.DateFrom != nil {
		args = append(args, *filter.DateFrom)
		conditions = append(conditions, fmt.Sprintf("a.data >= $%d", len(args)))
	}
	if filter.DateTo != nil {
		args = append(args, *filter.DateTo)
		conditions = append(conditions, fmt.Sprintf("a.data <= $%d", len(args)))
	}
	if filter.Status != "" {
		args = append(args, filter.Status)
		conditions = append(conditions, fmt.Sprintf("a.status = $%d", len(args)))
	}

	if len(conditions) == 0 {
		return "", args
	}
	return " WHERE " + strings.Join(conditions, " AND "), args
}

// List implementa appointment.Repository.List
func (r *AppointmentRepository) List(ctx context.Context, filter appointment.Filter, limit, offset int) ([]*appointment.Appointment, error) {
	where, args := buildAppointmentWhere(filter)
	args = append(args, limit, offset)

	rows, err := r.db.Query(ctx,
		fmt.Sprintf("%s%s ORDER BY a.data ASC, a.hora_inicio ASC LIMIT $%d OFFSET $%d",
			appointmentSelect, where, len(args)-1, len(args)),
		args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar agendamentos: %w", err)
	}
	defer rows.Close()

	return r.scanAppointmentRows(rows)
}

// Count implementa appointment.Repository.Count
func (r *AppointmentRepository) Count(ctx context.Context, filter appointment.Filter) (int, error) {
	where, args := buildAppointmentWhere(filter)

	var count int
	err := r.db.QueryRow(ctx,
		fmt.Sprintf("SELECT COUNT(*) FROM agendamentos a%s", where),
		args...).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("erro ao contar agendamentos: %w", err)
	}

	return count, nil
}

// Update implementa appointment.Repository.Update, revalidando o conflito de
// horário na mesma transação e ignorando o próprio registro
func (r *AppointmentRepository) Update(ctx context.Context, a *appointment.Appointment) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("erro ao iniciar transação: %w", err)
	}
	defer tx.Rollback(ctx)

	if a.StaffID != nil && appointment.IsActiveStatus(a.Status) {
		if err := r.checkConflictTx(ctx, tx, *a.StaffID, a.Date, a.StartTime, a.EndTime, a.ID); err != nil {
			return err
		}
	}

	result, err := tx.Exec(ctx,
		`UPDATE agendamentos SET
			cliente_id = $1, pet_id = $2, servico_id = $3, funcionario_id = $4,
			data = $5, hora_inicio = $6, hora_fim = $7, status = $8,
			observacoes = $9, updated_at = $10
		WHERE id = $11`,
		a.ClientID, a.PetID, a.ServiceID, a.StaffID, a.Date, a.StartTime,
		a.EndTime, a.Status, a.Notes, a.UpdatedAt, a.ID)
	if err != nil {
		return fmt.Errorf("erro ao atualizar agendamento: %w", err)
	}

	if result.RowsAffected() == 0 {
		return ErrAppointmentNotFound
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("erro ao fazer commit: %w", err)
	}

	return nil
}

// Delete implementa appointment.Repository.Delete
func (r *AppointmentRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.Exec(ctx, "DELETE FROM agendamentos WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("erro ao excluir agendamento: %w", err)
	}

	if result.RowsAffected() == 0 {
		return ErrAppointmentNotFound
	}

	return nil
}

// HasConflict implementa appointment.Repository.HasConflict
func (r *AppointmentRepository) HasConflict(ctx context.Context, staffID string, date time.Time, start, end time.Time, excludeID string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		fmt.Sprintf("SELECT EXISTS(SELECT 1 FROM agendamentos WHERE %s)", conflictCondition),
		staffID, date, start, end, excludeID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("erro ao verificar conflito de horário: %w", err)
	}

	return exists, nil
}

// checkConflictTx bloqueia a linha do funcionário e verifica a sobreposição
// de horário dentro da transação corrente
func (r *AppointmentRepository) checkConflictTx(ctx context.Context, tx pgx.Tx, staffID string, date time.Time, start, end time.Time, excludeID string) error {
	var staffRow string
	err := tx.QueryRow(ctx,
		"SELECT id FROM funcionarios WHERE id = $1 FOR UPDATE",
		staffID).Scan(&staffRow)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrStaffNotFound
		}
		return fmt.Errorf("erro ao bloquear funcionário: %w", err)
	}

	var exists bool
	err = tx.QueryRow(ctx,
		fmt.Sprintf("SELECT EXISTS(SELECT 1 FROM agendamentos WHERE %s)", conflictCondition),
		staffID, date, start, end, excludeID).Scan(&exists)
	if err != nil {
		return fmt.Errorf("erro ao verificar conflito de horário: %w", err)
	}

	if exists {
		return appointment.ErrConflict
	}

	return nil
}

func (r *AppointmentRepository) scanAppointment(row pgx.Row) (*appointment.Appointment, error) {
	var a appointment.Appointment

	err := row.Scan(
		&a.ID, &a.ClientID, &a.PetID, &a.ServiceID, &a.StaffID,
		&a.Date, &a.StartTime, &a.EndTime, &a.Status, &a.Notes,
		&a.CreatedAt, &a.UpdatedAt,
		&a.ClientName, &a.ClientEmail, &a.PetName, &a.ServiceName,
		&a.StaffName)
	if err != nil {
		return nil, err
	}

	return &a, nil
}

// scanAppointmentRows converte as linhas do resultado em entidades
func (r *AppointmentRepository) scanAppointmentRows(rows pgx.Rows) ([]*appointment.Appointment, error) {
	appointments := make([]*appointment.Appointment, 0)

	for rows.Next() {
		a, err := r.scanAppointment(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao ler agendamento: %w", err)
		}
		appointments = append(appointments, a)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro ao percorrer agendamentos: %w", err)
	}

	return appointments, nil
}
