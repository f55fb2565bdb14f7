package repository

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
	"github.com/tecnologiawebnetsystem/pet-shop-back/internal/domain/sale"
)

// Erros específicos do repositório
var (
	ErrSaleNotFound     = errors.New("venda não encontrada")
	ErrSaleItemNotFound = errors.New("item de venda não encontrado")
)

// SaleRepository implementa a interface sale.Repository.
//
// Toda operação que mexe em estoque roda em uma única transação: as linhas
// dos produtos envolvidos são bloqueadas com SELECT ... FOR UPDATE antes da
// verificação de estoque, então duas vendas concorrentes do mesmo produto
// são serializadas e nenhuma consegue vender além do estoque existente.
type SaleRepository struct {
	db *pgxpool.Pool
}

// NewSaleRepository cria uma nova instância de SaleRepository
func NewSaleRepository(db *pgxpool.Pool) sale.Repository {
	return &SaleRepository{
		db: db,
	}
}

const saleSelect = `SELECT
	v.id, v.cliente_id, v.funcionario_id, v.data, v.valor_total, v.desconto,
	v.forma_pagamento, v.status, v.observacoes, v.created_at, v.updated_at,
	u.nome, u.email, COALESCE(fu.nome, '')
FROM vendas v
JOIN clientes c ON c.id = v.cliente_id
JOIN usuarios u ON u.id = c.usuario_id
LEFT JOIN funcionarios f ON f.id = v.funcionario_id
LEFT JOIN usuarios fu ON fu.id = f.usuario_id`

const itemSelect = `SELECT
	i.id, i.venda_id, i.produto_id, i.quantidade, i.valor_unitario,
	i.desconto, i.valor_total, p.nome
FROM itens_venda i
JOIN produtos p ON p.id = i.produto_id`

// lockedProduct guarda o estado do produto bloqueado dentro da transação
type lockedProduct struct {
	Price  decimal.Decimal
	Stock  int
	Status string
}

// lockProduct bloqueia a linha do produto e retorna preço, estoque e status
func lockProduct(ctx context.Context, tx pgx.Tx, productID string) (*lockedProduct, error) {
	var p lockedProduct
	err := tx.QueryRow(ctx,
		"SELECT preco, estoque, status FROM produtos WHERE id = $1 FOR UPDATE",
		productID).Scan(&p.Price, &p.Stock, &p.Status)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, sale.ErrProductNotFound
		}
		return nil, fmt.Errorf("erro ao bloquear produto: %w", err)
	}
	return &p, nil
}

// sortItemsByProduct retorna uma cópia dos itens ordenada por produto_id.
// Toda aquisição de bloqueio de produtos segue essa ordem, a mesma usada em
// restockItemsTx, para que transações concorrentes nunca se bloqueiem em
// ordens invertidas.
func sortItemsByProduct(items []sale.NewItemInput) []sale.NewItemInput {
	sorted := make([]sale.NewItemInput, len(items))
	copy(sorted, items)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].ProductID < sorted[j].ProductID
	})
	return sorted
}

// CreateWithItems implementa sale.Repository.CreateWithItems
func (r *SaleRepository) CreateWithItems(ctx context.Context, s *sale.Sale, items []sale.NewItemInput) error {
	if len(items) == 0 {
		return sale.ErrNoItems
	}

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("erro ao iniciar transação: %w", err)
	}
	defer tx.Rollback(ctx)

	_, err = tx.Exec(ctx,
		`INSERT INTO vendas (
			id, cliente_id, funcionario_id, data, valor_total, desconto,
			forma_pagamento, status, observacoes, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`,
		s.ID, s.ClientID, s.StaffID, s.Date, decimal.Zero, s.Discount,
		s.PaymentMethod, s.Status, s.Notes, s.CreatedAt, s.UpdatedAt)
	if err != nil {
		return fmt.Errorf("erro ao criar venda: %w", err)
	}

	s.Items = nil
	s.Total = decimal.Zero

	for _, input := range sortItemsByProduct(items) {
		if input.Quantity <= 0 {
			return sale.ErrInvalidQuantity
		}

		p, err := lockProduct(ctx, tx, input.ProductID)
		if err != nil {
			return err
		}
		if p.Status != "ativo" {
			return sale.ErrInactiveProduct
		}
		if p.Stock < input.Quantity {
			return sale.ErrInsufficientStock
		}

		unitPrice := p.Price
		if input.UnitPrice != nil {
			unitPrice = *input.UnitPrice
		}

		item, err := sale.NewItem(s.ID, input.ProductID, input.Quantity, unitPrice, input.Discount)
		if err != nil {
			return err
		}

		if err := insertItemTx(ctx, tx, item); err != nil {
			return err
		}

		_, err = tx.Exec(ctx,
			"UPDATE produtos SET estoque = estoque - $1, updated_at = NOW() WHERE id = $2",
			input.Quantity, input.ProductID)
		if err != nil {
			return fmt.Errorf("erro ao baixar estoque: %w", err)
		}

		s.AddItem(item)
	}

	s.ApplyDiscount()

	_, err = tx.Exec(ctx,
		"UPDATE vendas SET valor_total = $1, updated_at = NOW() WHERE id = $2",
		s.Total, s.ID)
	if err != nil {
		return fmt.Errorf("erro ao atualizar total da venda: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("erro ao fazer commit: %w", err)
	}

	return nil
}

// FindByID implementa sale.Repository.FindByID
func (r *SaleRepository) FindByID(ctx context.Context, id string) (*sale.Sale, error) {
	row := r.db.QueryRow(ctx, saleSelect+" WHERE v.id = $1", id)

	s, err := r.scanSale(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrSaleNotFound
		}
		return nil, fmt.Errorf("erro ao buscar venda: %w", err)
	}

	items, err := r.ListItems(ctx, sale.ItemFilter{SaleID: id}, 1000, 0)
	if err != nil {
		return nil, err
	}
	s.Items = items

	return s, nil
}

func buildSaleWhere(filter sale.Filter) (string, []interface{}) {
	conditions := make([]string, 0, 6)
	args := make([]interface{}, 0, 6)

	if filter.ClientID != "" {
		args = append(args, filter.ClientID)
		conditions = append(conditions, fmt.Sprintf("v.cliente_id = $%d", len(args)))
	}
	if filter.StaffID != "" {
		args = append(args, filter.StaffID)
		conditions = append(conditions, fmt.Sprintf("v.funcionario_id = $%d", len(args)))
	}
	if filter.DateFrom != nil {
		args = append(args, *filter.DateFrom)
		conditions = append(conditions, fmt.Sprintf("v.data >= $%d", len(args)))
	}
	if filter.DateTo != nil {
		args = append(args, *filter.DateTo)
		conditions = append(conditions, fmt.Sprintf("v.data <= $%d", len(args)))
	}
	if filter.PaymentMethod != "" {
		args = append(args, filter.PaymentMethod)
		conditions = append(conditions, fmt.Sprintf("v.forma_pagamento = $%d", len(args)))
	}
	if filter.Status != "" {
		args = append(args, filter.Status)
		conditions = append(conditions, fmt.Sprintf("v.status = $%d", len(args)))
	}

	if len(conditions) == 0 {
		return "", args
	}
	return " WHERE " + strings.Join(conditions, " AND "), args
}

// List implementa sale.Repository.List
func (r *SaleRepository) List(ctx context.Context, filter sale.Filter, limit, offset int) ([]*sale.Sale, error) {
	where, args := buildSaleWhere(filter)
	args = append(args, limit, offset)

	rows, err := r.db.Query(ctx,
		fmt.Sprintf("%s%s ORDER BY v.data DESC LIMIT $%d OFFSET $%d",
			saleSelect, where, len(args)-1, len(args)),
		args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar vendas: %w", err)
	}
	defer rows.Close()

	return r.scanSaleRows(rows)
}

// Count implementa sale.Repository.Count
func (r *SaleRepository) Count(ctx context.Context, filter sale.Filter) (int, error) {
	where, args := buildSaleWhere(filter)

	var count int
	err := r.db.QueryRow(ctx,
		fmt.Sprintf("SELECT COUNT(*) FROM vendas v%s", where),
		args...).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("erro ao contar vendas: %w", err)
	}

	return count, nil
}

// Update implementa sale.Repository.Update. Apenas forma de pagamento,
// status e observações são atualizáveis; itens e totais mudam pelas
// operações de item.
func (r *SaleRepository) Update(ctx context.Context, s *sale.Sale) error {
	result, err := r.db.Exec(ctx,
		`UPDATE vendas SET
			forma_pagamento = $1, status = $2, observacoes = $3, updated_at = $4
		WHERE id = $5`,
		s.PaymentMethod, s.Status, s.Notes, time.Now(), s.ID)
	if err != nil {
		return fmt.Errorf("erro ao atualizar venda: %w", err)
	}

	if result.RowsAffected() == 0 {
		return ErrSaleNotFound
	}

	return nil
}

// Cancel implementa sale.Repository.Cancel. A devolução de estoque e a
// mudança de status acontecem na mesma transação; cancelar uma venda já
// cancelada falha antes de tocar no estoque, então não há devolução dupla.
func (r *SaleRepository) Cancel(ctx context.Context, id string) (*sale.Sale, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("erro ao iniciar transação: %w", err)
	}
	defer tx.Rollback(ctx)

	status, err := lockSale(ctx, tx, id)
	if err != nil {
		return nil, err
	}
	if status == string(sale.StatusCancelled) {
		return nil, sale.ErrAlreadyCancelled
	}

	if err := restockItemsTx(ctx, tx, id); err != nil {
		return nil, err
	}

	_, err = tx.Exec(ctx,
		"UPDATE vendas SET status = $1, updated_at = NOW() WHERE id = $2",
		sale.StatusCancelled, id)
	if err != nil {
		return nil, fmt.Errorf("erro ao cancelar venda: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("erro ao fazer commit: %w", err)
	}

	return r.FindByID(ctx, id)
}

// Delete implementa sale.Repository.Delete. Se a venda ainda não estava
// cancelada o estoque é devolvido; vendas canceladas já devolveram o
// estoque no cancelamento.
func (r *SaleRepository) Delete(ctx context.Context, id string) (*sale.Sale, error) {
	s, err := r.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("erro ao iniciar transação: %w", err)
	}
	defer tx.Rollback(ctx)

	status, err := lockSale(ctx, tx, id)
	if err != nil {
		return nil, err
	}

	if status != string(sale.StatusCancelled) {
		if err := restockItemsTx(ctx, tx, id); err != nil {
			return nil, err
		}
	}

	// Os itens caem em cascata pela FK
	_, err = tx.Exec(ctx, "DELETE FROM vendas WHERE id = $1", id)
	if err != nil {
		return nil, fmt.Errorf("erro ao excluir venda: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("erro ao fazer commit: %w", err)
	}

	return s, nil
}

// AddItem implementa sale.Repository.AddItem
func (r *SaleRepository) AddItem(ctx context.Context, saleID string, input sale.NewItemInput) (*sale.Item, error) {
	if input.Quantity <= 0 {
		return nil, sale.ErrInvalidQuantity
	}

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("erro ao iniciar transação: %w", err)
	}
	defer tx.Rollback(ctx)

	status, err := lockSale(ctx, tx, saleID)
	if err != nil {
		return nil, err
	}
	if status == string(sale.StatusCancelled) {
		return nil, sale.ErrItemSaleCancelled
	}

	p, err := lockProduct(ctx, tx, input.ProductID)
	if err != nil {
		return nil, err
	}
	if p.Status != "ativo" {
		return nil, sale.ErrInactiveProduct
	}
	if p.Stock < input.Quantity {
		return nil, sale.ErrInsufficientStock
	}

	unitPrice := p.Price
	if input.UnitPrice != nil {
		unitPrice = *input.UnitPrice
	}

	item, err := sale.NewItem(saleID, input.ProductID, input.Quantity, unitPrice, input.Discount)
	if err != nil {
		return nil, err
	}

	if err := insertItemTx(ctx, tx, item); err != nil {
		return nil, err
	}

	_, err = tx.Exec(ctx,
		"UPDATE produtos SET estoque = estoque - $1, updated_at = NOW() WHERE id = $2",
		input.Quantity, input.ProductID)
	if err != nil {
		return nil, fmt.Errorf("erro ao baixar estoque: %w", err)
	}

	_, err = tx.Exec(ctx,
		"UPDATE vendas SET valor_total = valor_total + $1, updated_at = NOW() WHERE id = $2",
		item.Total, saleID)
	if err != nil {
		return nil, fmt.Errorf("erro ao atualizar total da venda: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("erro ao fazer commit: %w", err)
	}

	return r.FindItemByID(ctx, item.ID)
}

// UpdateItem implementa sale.Repository.UpdateItem. O estoque é ajustado
// pela diferença de quantidade e o total da venda pela diferença de totais.
func (r *SaleRepository) UpdateItem(ctx context.Context, itemID string, update sale.ItemUpdate) (*sale.Item, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("erro ao iniciar transação: %w", err)
	}
	defer tx.Rollback(ctx)

	item, err := findItemTx(ctx, tx, itemID)
	if err != nil {
		return nil, err
	}

	status, err := lockSale(ctx, tx, item.SaleID)
	if err != nil {
		return nil, err
	}
	if status == string(sale.StatusCancelled) {
		return nil, sale.ErrItemSaleCancelled
	}

	p, err := lockProduct(ctx, tx, item.ProductID)
	if err != nil {
		return nil, err
	}

	oldTotal := item.Total
	oldQuantity := item.Quantity

	if update.Quantity != nil {
		if *update.Quantity <= 0 {
			return nil, sale.ErrInvalidQuantity
		}
		item.Quantity = *update.Quantity
	}
	if update.UnitPrice != nil {
		item.UnitPrice = *update.UnitPrice
	}
	if update.Discount != nil {
		if update.Discount.IsNegative() {
			return nil, sale.ErrNegativeDiscount
		}
		item.Discount = *update.Discount
	}
	item.Recalculate()

	deltaQty := item.Quantity - oldQuantity
	if deltaQty > 0 && p.Stock < deltaQty {
		return nil, sale.ErrInsufficientStock
	}

	if deltaQty != 0 {
		_, err = tx.Exec(ctx,
			"UPDATE produtos SET estoque = estoque - $1, updated_at = NOW() WHERE id = $2",
			deltaQty, item.ProductID)
		if err != nil {
			return nil, fmt.Errorf("erro ao ajustar estoque: %w", err)
		}
	}

	_, err = tx.Exec(ctx,
		`UPDATE itens_venda SET
			quantidade = $1, valor_unitario = $2, desconto = $3, valor_total = $4
		WHERE id = $5`,
		item.Quantity, item.UnitPrice, item.Discount, item.Total, item.ID)
	if err != nil {
		return nil, fmt.Errorf("erro ao atualizar item: %w", err)
	}

	_, err = tx.Exec(ctx,
		"UPDATE vendas SET valor_total = valor_total + $1, updated_at = NOW() WHERE id = $2",
		item.Total.Sub(oldTotal), item.SaleID)
	if err != nil {
		return nil, fmt.Errorf("erro ao atualizar total da venda: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("erro ao fazer commit: %w", err)
	}

	return r.FindItemByID(ctx, item.ID)
}

// DeleteItem implementa sale.Repository.DeleteItem
func (r *SaleRepository) DeleteItem(ctx context.Context, itemID string) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("erro ao iniciar transação: %w", err)
	}
	defer tx.Rollback(ctx)

	item, err := findItemTx(ctx, tx, itemID)
	if err != nil {
		return err
	}

	status, err := lockSale(ctx, tx, item.SaleID)
	if err != nil {
		return err
	}
	if status == string(sale.StatusCancelled) {
		return sale.ErrItemSaleCancelled
	}

	if _, err := lockProduct(ctx, tx, item.ProductID); err != nil {
		return err
	}

	_, err = tx.Exec(ctx,
		"UPDATE produtos SET estoque = estoque + $1, updated_at = NOW() WHERE id = $2",
		item.Quantity, item.ProductID)
	if err != nil {
		return fmt.Errorf("erro ao devolver estoque: %w", err)
	}

	_, err = tx.Exec(ctx, "DELETE FROM itens_venda WHERE id = $1", itemID)
	if err != nil {
		return fmt.Errorf("erro ao excluir item: %w", err)
	}

	_, err = tx.Exec(ctx,
		"UPDATE vendas SET valor_total = valor_total - $1, updated_at = NOW() WHERE id = $2",
		item.Total, item.SaleID)
	if err != nil {
		return fmt.Errorf("erro ao atualizar total da venda: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("erro ao fazer commit: %w", err)
	}

	return nil
}

// FindItemByID implementa sale.Repository.FindItemByID
func (r *SaleRepository) FindItemByID(ctx context.Context, itemID string) (*sale.Item, error) {
	row := r.db.QueryRow(ctx, itemSelect+" WHERE i.id = $1", itemID)

	item, err := r.scanItem(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrSaleItemNotFound
		}
		return nil, fmt.Errorf("erro ao buscar item de venda: %w", err)
	}

	return item, nil
}

// ListItems implementa sale.Repository.ListItems
func (r *SaleRepository) ListItems(ctx context.Context, filter sale.ItemFilter, limit, offset int) ([]*sale.Item, error) {
	conditions := make([]string, 0, 2)
	args := make([]interface{}, 0, 2)

	if filter.SaleID != "" {
		args = append(args, filter.SaleID)
		conditions = append(conditions, fmt.Sprintf("i.venda_id = $%d", len(args)))
	}
	if filter.ProductID != "" {
		args = append(args, filter.ProductID)
		conditions = append(conditions, fmt.Sprintf("i.produto_id = $%d", len(args)))
	}

	where := ""
	if len(conditions) > 0 {
		where = " WHERE " + strings.Join(conditions, " AND ")
	}

	args = append(args, limit, offset)

	rows, err := r.db.Query(ctx,
		fmt.Sprintf("%s%s ORDER BY p.nome ASC LIMIT $%d OFFSET $%d",
			itemSelect, where, len(args)-1, len(args)),
		args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar itens de venda: %w", err)
	}
	defer rows.Close()

	items := make([]*sale.Item, 0)
	for rows.Next() {
		item, err := r.scanItem(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao ler item de venda: %w", err)
		}
		items = append(items, item)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro ao percorrer itens de venda: %w", err)
	}

	return items, nil
}

// CountItems implementa sale.Repository.CountItems
func (r *SaleRepository) CountItems(ctx context.Context, filter sale.ItemFilter) (int, error) {
	conditions := make([]string, 0, 2)
	args := make([]interface{}, 0, 2)

	if filter.SaleID != "" {
		args = append(args, filter.SaleID)
		conditions = append(conditions, fmt.Sprintf("venda_id = $%d", len(args)))
	}
	if filter.ProductID != "" {
		args = append(args, filter.ProductID)
		conditions = append(conditions, fmt.Sprintf("produto_id = $%d", len(args)))
	}

	where := ""
	if len(conditions) > 0 {
		where = " WHERE " + strings.Join(conditions, " AND ")
	}

	var count int
	err := r.db.QueryRow(ctx,
		fmt.Sprintf("SELECT COUNT(*) FROM itens_venda%s", where),
		args...).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("erro ao contar itens de venda: %w", err)
	}

	return count, nil
}

// lockSale bloqueia a linha da venda e retorna o status corrente
func lockSale(ctx context.Context, tx pgx.Tx, saleID string) (string, error) {
	var status string
	err := tx.QueryRow(ctx,
		"SELECT status FROM vendas WHERE id = $1 FOR UPDATE",
		saleID).Scan(&status)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", ErrSaleNotFound
		}
		return "", fmt.Errorf("erro ao bloquear venda: %w", err)
	}
	return status, nil
}

// findItemTx busca um item dentro da transação corrente
func findItemTx(ctx context.Context, tx pgx.Tx, itemID string) (*sale.Item, error) {
	var item sale.Item
	err := tx.QueryRow(ctx,
		`SELECT id, venda_id, produto_id, quantidade, valor_unitario,
			desconto, valor_total
		FROM itens_venda WHERE id = $1`,
		itemID).Scan(
		&item.ID, &item.SaleID, &item.ProductID, &item.Quantity,
		&item.UnitPrice, &item.Discount, &item.Total)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrSaleItemNotFound
		}
		return nil, fmt.Errorf("erro ao buscar item de venda: %w", err)
	}
	return &item, nil
}

// insertItemTx insere um item dentro da transação corrente
func insertItemTx(ctx context.Context, tx pgx.Tx, item *sale.Item) error {
	_, err := tx.Exec(ctx,
		`INSERT INTO itens_venda (
			id, venda_id, produto_id, quantidade, valor_unitario,
			desconto, valor_total
		) VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		item.ID, item.SaleID, item.ProductID, item.Quantity, item.UnitPrice,
		item.Discount, item.Total)
	if err != nil {
		return fmt.Errorf("erro ao criar item de venda: %w", err)
	}
	return nil
}

// restockItemsTx devolve ao estoque a quantidade de todos os itens da venda,
// bloqueando cada produto antes do ajuste
func restockItemsTx(ctx context.Context, tx pgx.Tx, saleID string) error {
	rows, err := tx.Query(ctx,
		`SELECT produto_id, quantidade FROM itens_venda
		WHERE venda_id = $1 ORDER BY produto_id`,
		saleID)
	if err != nil {
		return fmt.Errorf("erro ao buscar itens para devolução: %w", err)
	}

	type restock struct {
		productID string
		quantity  int
	}
	restocks := make([]restock, 0)
	for rows.Next() {
		var rs restock
		if err := rows.Scan(&rs.productID, &rs.quantity); err != nil {
			rows.Close()
			return fmt.Errorf("erro ao ler item para devolução: %w", err)
		}
		restocks = append(restocks, rs)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return fmt.Errorf("erro ao percorrer itens para devolução: %w", err)
	}

	for _, rs := range restocks {
		if _, err := lockProduct(ctx, tx, rs.productID); err != nil {
			// Produto removido depois da venda: não há o que devolver
			if errors.Is(err, sale.ErrProductNotFound) {
				continue
			}
			return err
		}
		_, err = tx.Exec(ctx,
			"UPDATE produtos SET estoque = estoque + $1, updated_at = NOW() WHERE id = $2",
			rs.quantity, rs.productID)
		if err != nil {
			return fmt.Errorf("erro ao devolver estoque: %w", err)
		}
	}

	return nil
}

func (r *SaleRepository) scanSale(row pgx.Row) (*sale.Sale, error) {
	var s sale.Sale

	err := row.Scan(
		&s.ID, &s.ClientID, &s.StaffID, &s.Date, &s.Total, &s.Discount,
		&s.PaymentMethod, &s.Status, &s.Notes, &s.CreatedAt, &s.UpdatedAt,
		&s.ClientName, &s.ClientEmail, &s.StaffName)
	if err != nil {
		return nil, err
	}

	return &s, nil
}

// scanSaleRows converte as linhas do resultado em entidades
func (r *SaleRepository) scanSaleRows(rows pgx.Rows) ([]*sale.Sale, error) {
	sales := make([]*sale.Sale, 0)

	for rows.Next() {
		s, err := r.scanSale(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao ler venda: %w", err)
		}
		sales = append(sales, s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro ao percorrer vendas: %w", err)
	}

	return sales, nil
}

func (r *SaleRepository) scanItem(row pgx.Row) (*sale.Item, error) {
	var item sale.Item

	err := row.Scan(
		&item.ID, &item.SaleID, &item.ProductID, &item.Quantity,
		&item.UnitPrice, &item.Discount, &item.Total, &item.ProductName)
	if err != nil {
		return nil, err
	}

	return &item, nil
}
