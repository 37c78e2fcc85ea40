package order

import (
	"context"
	"errors"
	"fmt"

	"launchpizza/internal/entities"
	"launchpizza/internal/repository"
	service "launchpizza/internal/service/order"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
)

const (
	ordersTable = "orders"

	// порядок колонок совпадает с scanOrder
	returningColumns = "id, customer_name, item, quantity, amount_paid, order_status, date"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) Create(ctx context.Context, orderModifyEntity entities.OrderModify) (*entities.Order, error) {
	orderModifyModel := FromDomainModify(&orderModifyEntity)
	query := `INSERT INTO orders (customer_name, item, quantity, amount_paid, order_status)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING ` + returningColumns

	orderModel, err := scanOrder(r.querier.QueryRow(
		ctx,
		query,
		orderModifyModel.CustomerName,
		orderModifyModel.Item,
		orderModifyModel.Quantity,
		orderModifyModel.AmountPaid,
		orderModifyModel.Status,
	))
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrCheckViolation, repository.PgErrNotNullViolation) {
			return nil, fmt.Errorf("%w: %w", service.ErrConstraintViolation, err)
		}
		return nil, fmt.Errorf("unexpected order repository create error: %w", err)
	}

	return ToDomain(orderModel), nil
}

func (r *Repository) GetByID(ctx context.Context, id int64) (*entities.Order, error) {
	query := `SELECT ` + returningColumns + `
		FROM orders
		WHERE id = $1`

	orderModel, err := scanOrder(r.querier.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, service.ErrOrderNotFound
		}
		return nil, fmt.Errorf("unexpected order repository getbyid error: %w", err)
	}

	return ToDomain(orderModel), nil
}

func (r *Repository) GetAllByStatus(ctx context.Context, status entities.OrderStatusType) ([]entities.Order, error) {
	query, args, err := qb.
		Select(returningColumns).
		From(ordersTable).
		Where(sq.Eq{"order_status": status.String()}).
		OrderBy("id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository getallbystatus error: %w", err)
	}

	rows, err := r.querier.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository getallbystatus error: %w", err)
	}
	defer rows.Close()

	orderModels := make([]OrderDB, 0, 8)
	for rows.Next() {
		orderModel, err := scanOrder(rows)
		if err != nil {
			return nil, fmt.Errorf("unexpected order repository getallbystatus error: %w", err)
		}
		orderModels = append(orderModels, *orderModel)
	}

	err = rows.Err()
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository getallbystatus error: %w", err)
	}

	return ToDomainList(orderModels), nil
}

// UpdateStatus меняет только order_status, остальные поля строки не трогаются.
func (r *Repository) UpdateStatus(ctx context.Context, id int64, status entities.OrderStatusType) (*entities.Order, error) {
	query, args, err := qb.
		Update(ordersTable).
		Set("order_status", status.String()).
		Where(sq.Eq{"id": id}).
		Suffix("RETURNING " + returningColumns).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository update error: %w", err)
	}

	orderModel, err := scanOrder(r.querier.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, service.ErrOrderNotFound
		}
		if repository.IsPgErrorWithCode(err, repository.PgErrCheckViolation, repository.PgErrNotNullViolation) {
			return nil, fmt.Errorf("%w: %w", service.ErrConstraintViolation, err)
		}
		return nil, fmt.Errorf("unexpected order repository update error: %w", err)
	}

	return ToDomain(orderModel), nil
}

// Delete удаляет заказ и возвращает его последнее состояние.
func (r *Repository) Delete(ctx context.Context, id int64) (*entities.Order, error) {
	query := `DELETE FROM orders
		WHERE id = $1
		RETURNING ` + returningColumns

	orderModel, err := scanOrder(r.querier.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, service.ErrOrderNotFound
		}
		return nil, fmt.Errorf("unexpected order repository delete error: %w", err)
	}

	return ToDomain(orderModel), nil
}

func (r *Repository) CountByStatus(ctx context.Context) (map[entities.OrderStatusType]int64, error) {
	query, args, err := qb.
		Select("order_status", "COUNT(*)").
		From(ordersTable).
		GroupBy("order_status").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository countbystatus error: %w", err)
	}

	rows, err := r.querier.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository countbystatus error: %w", err)
	}
	defer rows.Close()

	counts := make([]StatusCountDB, 0, 4)
	for rows.Next() {
		var count StatusCountDB
		if err := rows.Scan(&count.Status, &count.Count); err != nil {
			return nil, fmt.Errorf("unexpected order repository countbystatus error: %w", err)
		}
		counts = append(counts, count)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected order repository countbystatus error: %w", err)
	}

	return ToStatusCounts(counts), nil
}

func scanOrder(row pgx.Row) (*OrderDB, error) {
	var orderModel OrderDB
	err := row.Scan(
		&orderModel.ID,
		&orderModel.CustomerName,
		&orderModel.Item,
		&orderModel.Quantity,
		&orderModel.AmountPaid,
		&orderModel.Status,
		&orderModel.Date,
	)
	if err != nil {
		return nil, err
	}
	return &orderModel, nil
}
