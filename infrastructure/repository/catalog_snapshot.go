package repository

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/brcanuto/beautybiz-insights-dashboard/infrastructure/database/postgres"
	"github.com/brcanuto/beautybiz-insights-dashboard/internal/domain"
)

const (
	catalogSnapshotsTable = "catalog_snapshots cs"
)

//go:generate mockgen -source=catalog_snapshot.go -destination=mocks/catalog_snapshot_mock.go -package=mocks

type CatalogSnapshotRepository interface {
	GetLatest() (*domain.CatalogSnapshot, error)
	GetByDay(day time.Time) (*domain.CatalogSnapshot, error)
	SaveOrUpdate(snapshot *domain.CatalogSnapshot) error
	DeleteOlderThan(days int) (int64, error)
}

type catalogSnapshotRepository struct {
	conn *postgres.Connection
}

func NewCatalogSnapshotRepository(conn *postgres.Connection) CatalogSnapshotRepository {
	return &catalogSnapshotRepository{
		conn: conn,
	}
}

// GetLatest retorna a foto de catálogo mais recente, ou nil se não houver nenhuma
func (r *catalogSnapshotRepository) GetLatest() (*domain.CatalogSnapshot, error) {
	query, args, err := squirrel.
		Select("cs.id, cs.day, cs.products, cs.carts, cs.created_at, cs.updated_at").
		From(catalogSnapshotsTable).
		OrderBy("cs.day DESC").
		Limit(1).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	row := r.conn.QueryRow(query, args...)
	snapshot, err := r.scanSnapshot(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear snapshot: %w", err)
	}

	return snapshot, nil
}

// GetByDay retorna a foto de catálogo de um dia específico, ou nil
func (r *catalogSnapshotRepository) GetByDay(day time.Time) (*domain.CatalogSnapshot, error) {
	query, args, err := squirrel.
		Select("cs.id, cs.day, cs.products, cs.carts, cs.created_at, cs.updated_at").
		From(catalogSnapshotsTable).
		Where(squirrel.Eq{"cs.day": day.Format(time.DateOnly)}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	row := r.conn.QueryRow(query, args...)
	snapshot, err := r.scanSnapshot(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear snapshot: %w", err)
	}

	return snapshot, nil
}

// SaveOrUpdate insere ou atualiza a foto de catálogo do dia (upsert por dia)
func (r *catalogSnapshotRepository) SaveOrUpdate(snapshot *domain.CatalogSnapshot) error {
	productsJSON, err := json.Marshal(snapshot.Products)
	if err != nil {
		return fmt.Errorf("erro ao serializar produtos para JSON: %w", err)
	}

	cartsJSON, err := json.Marshal(snapshot.Carts)
	if err != nil {
		return fmt.Errorf("erro ao serializar carrinhos para JSON: %w", err)
	}

	query, args, err := squirrel.StatementBuilder.
		Insert("catalog_snapshots").
		Columns("day", "products", "carts").
		Values(
			snapshot.Day.Format(time.DateOnly),
			productsJSON,
			cartsJSON,
		).
		Suffix(`
			ON CONFLICT (day) DO UPDATE SET
				products = EXCLUDED.products,
				carts = EXCLUDED.carts,
				updated_at = NOW()
		`).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if _, err := r.conn.Exec(query, args...); err != nil {
		return fmt.Errorf("erro ao salvar snapshot: %w", err)
	}

	return nil
}

// DeleteOlderThan remove fotos de catálogo mais antigas que N dias e
// retorna a quantidade de linhas removidas
func (r *catalogSnapshotRepository) DeleteOlderThan(days int) (int64, error) {
	cutoff := time.Now().AddDate(0, 0, -days)

	query, args, err := squirrel.StatementBuilder.
		Delete("catalog_snapshots").
		Where(squirrel.Lt{"day": cutoff.Format(time.DateOnly)}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("erro ao construir a query: %w", err)
	}

	result, err := r.conn.Exec(query, args...)
	if err != nil {
		return 0, fmt.Errorf("erro ao remover snapshots antigos: %w", err)
	}

	return result.RowsAffected()
}

type scanner interface {
	Scan(dest ...any) error
}

// scanSnapshot converte uma linha do banco em CatalogSnapshot
func (r *catalogSnapshotRepository) scanSnapshot(row scanner) (*domain.CatalogSnapshot, error) {
	var (
		snapshot     domain.CatalogSnapshot
		productsJSON []byte
		cartsJSON    []byte
	)

	if err := row.Scan(
		&snapshot.ID,
		&snapshot.Day,
		&productsJSON,
		&cartsJSON,
		&snapshot.CreatedAt,
		&snapshot.UpdatedAt,
	); err != nil {
		return nil, err
	}

	if len(productsJSON) > 0 {
		if err := json.Unmarshal(productsJSON, &snapshot.Products); err != nil {
			return nil, fmt.Errorf("erro ao desserializar produtos: %w", err)
		}
	}

	if len(cartsJSON) > 0 {
		if err := json.Unmarshal(cartsJSON, &snapshot.Carts); err != nil {
			return nil, fmt.Errorf("erro ao desserializar carrinhos: %w", err)
		}
	}

	return &snapshot, nil
}
