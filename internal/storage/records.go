package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/b1443/ClosetManager/internal/model"
	"github.com/b1443/ClosetManager/pkg/garment"
)

// ListFilter narrows the records returned by ListRecords. Zero-value fields
// are ignored.
type ListFilter struct {
	Type     garment.Type
	Material garment.Material
	Color    string
	Season   model.Season
	Tag      string
}

const recordColumns = `id, name, type, material, color, date_added,
	front_image, back_image, brand, size, price, purchase_date,
	store, season, occasion, notes, condition, tags`

// SaveRecord inserts or updates a clothing record.
func (s *SQLiteStorage) SaveRecord(ctx context.Context, rec *model.ClothingRecord) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	rec.Normalize()
	if err := validateRecord(rec); err != nil {
		return err
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO clothing_items (`+recordColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			name = excluded.name,
			type = excluded.type,
			material = excluded.material,
			color = excluded.color,
			front_image = excluded.front_image,
			back_image = excluded.back_image,
			brand = excluded.brand,
			size = excluded.size,
			price = excluded.price,
			purchase_date = excluded.purchase_date,
			store = excluded.store,
			season = excluded.season,
			occasion = excluded.occasion,
			notes = excluded.notes,
			condition = excluded.condition,
			tags = excluded.tags
	`,
		rec.ID, rec.Name, rec.Type.String(), rec.Material.String(), rec.Color, rec.DateAdded,
		rec.FrontImage, rec.BackImage, rec.Brand, string(rec.Size), rec.Price, nullableTime(rec.PurchaseDate),
		rec.Store, string(rec.Season), string(rec.Occasion), rec.Notes, string(rec.Condition), joinTags(rec.Tags))
	if err != nil {
		return fmt.Errorf("failed to save record: %w", err)
	}
	return nil
}

// GetRecord retrieves a record by ID, including image attachments.
func (s *SQLiteStorage) GetRecord(ctx context.Context, id string) (*model.ClothingRecord, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if err := validateString(id, "id"); err != nil {
		return nil, err
	}

	row := s.db.QueryRowContext(ctx, `
		SELECT `+recordColumns+`
		FROM clothing_items
		WHERE id = ?
	`, id)

	rec, err := scanRecord(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get record: %w", err)
	}
	return rec, nil
}

// ListRecords returns records matching the filter, newest first.
func (s *SQLiteStorage) ListRecords(ctx context.Context, filter ListFilter) ([]model.ClothingRecord, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	query := `SELECT ` + recordColumns + ` FROM clothing_items`
	var clauses []string
	var args []any

	if filter.Type != "" {
		clauses = append(clauses, "type = ?")
		args = append(args, filter.Type.String())
	}
	if filter.Material != "" {
		clauses = append(clauses, "material = ?")
		args = append(args, filter.Material.String())
	}
	if filter.Color != "" {
		clauses = append(clauses, "LOWER(color) = LOWER(?)")
		args = append(args, filter.Color)
	}
	if filter.Season != "" {
		clauses = append(clauses, "season = ?")
		args = append(args, string(filter.Season))
	}
	if filter.Tag != "" {
		// Tags are stored ';'-joined; wrap both sides to match whole tags.
		clauses = append(clauses, "';' || tags || ';' LIKE ?")
		args = append(args, "%;"+filter.Tag+";%")
	}

	if len(clauses) > 0 {
		query += " WHERE " + strings.Join(clauses, " AND ")
	}
	query += " ORDER BY date_added DESC"

	return s.queryRecords(ctx, query, args...)
}

// SearchRecords returns records whose name, type, material, or color contains
// the query, case-insensitively. An empty query returns all records.
func (s *SQLiteStorage) SearchRecords(ctx context.Context, query string) ([]model.ClothingRecord, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	q := strings.TrimSpace(query)
	if q == "" {
		return s.ListRecords(ctx, ListFilter{})
	}

	pattern := "%" + strings.ToLower(q) + "%"
	return s.queryRecords(ctx, `
		SELECT `+recordColumns+`
		FROM clothing_items
		WHERE LOWER(name) LIKE ?
		   OR LOWER(type) LIKE ?
		   OR LOWER(material) LIKE ?
		   OR LOWER(color) LIKE ?
		ORDER BY date_added DESC
	`, pattern, pattern, pattern, pattern)
}

// DeleteRecord removes a record by ID.
func (s *SQLiteStorage) DeleteRecord(ctx context.Context, id string) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateString(id, "id"); err != nil {
		return err
	}

	res, err := s.db.ExecContext(ctx, `DELETE FROM clothing_items WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete record: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read delete result: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	return nil
}

// DeleteAllRecords removes every record and returns how many were deleted.
func (s *SQLiteStorage) DeleteAllRecords(ctx context.Context) (int64, error) {
	if err := validateContext(ctx); err != nil {
		return 0, err
	}

	res, err := s.db.ExecContext(ctx, `DELETE FROM clothing_items`)
	if err != nil {
		return 0, fmt.Errorf("failed to delete records: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to read delete result: %w", err)
	}
	return affected, nil
}

// CountRecords returns the total number of cataloged items.
func (s *SQLiteStorage) CountRecords(ctx context.Context) (int, error) {
	if err := validateContext(ctx); err != nil {
		return 0, err
	}

	var count int
	err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM clothing_items`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count records: %w", err)
	}
	return count, nil
}

// Stats summarizes the catalog contents.
type Stats struct {
	ByType     map[string]int
	ByMaterial map[string]int
	ByColor    map[string]int
	TotalItems int
	TotalPrice float64
}

// GetStats computes catalog summary statistics.
func (s *SQLiteStorage) GetStats(ctx context.Context) (*Stats, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	stats := &Stats{
		ByType:     make(map[string]int),
		ByMaterial: make(map[string]int),
		ByColor:    make(map[string]int),
	}

	err := s.db.QueryRowContext(ctx,
		`SELECT COUNT(*), COALESCE(SUM(price), 0) FROM clothing_items`,
	).Scan(&stats.TotalItems, &stats.TotalPrice)
	if err != nil {
		return nil, fmt.Errorf("failed to compute totals: %w", err)
	}

	for column, dest := range map[string]map[string]int{
		"type":     stats.ByType,
		"material": stats.ByMaterial,
		"color":    stats.ByColor,
	} {
		if err := s.countBy(ctx, column, dest); err != nil {
			return nil, err
		}
	}

	return stats, nil
}

func (s *SQLiteStorage) countBy(ctx context.Context, column string, dest map[string]int) error {
	rows, err := s.db.QueryContext(ctx, fmt.Sprintf(
		`SELECT %s, COUNT(*) FROM clothing_items WHERE %s != '' GROUP BY %s`,
		column, column, column))
	if err != nil {
		return fmt.Errorf("failed to group by %s: %w", column, err)
	}
	defer func() { _ = rows.Close() }()

	for rows.Next() {
		var key string
		var count int
		if err := rows.Scan(&key, &count); err != nil {
			return fmt.Errorf("failed to scan %s count: %w", column, err)
		}
		dest[key] = count
	}
	return rows.Err()
}

func (s *SQLiteStorage) queryRecords(ctx context.Context, query string, args ...any) ([]model.ClothingRecord, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query records: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var records []model.ClothingRecord
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan record: %w", err)
		}
		records = append(records, *rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate records: %w", err)
	}
	return records, nil
}

// scanner covers *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanRecord(row scanner) (*model.ClothingRecord, error) {
	var rec model.ClothingRecord
	var typ, material, size, season, occasion, condition, tags string
	var purchaseDate sql.NullTime
	var color, brand, store, notes sql.NullString

	err := row.Scan(
		&rec.ID, &rec.Name, &typ, &material, &color, &rec.DateAdded,
		&rec.FrontImage, &rec.BackImage, &brand, &size, &rec.Price, &purchaseDate,
		&store, &season, &occasion, &notes, &condition, &tags,
	)
	if err != nil {
		return nil, err
	}

	rec.Type = garment.ParseType(typ)
	rec.Material = garment.ParseMaterial(material)
	rec.Color = color.String
	rec.Brand = brand.String
	rec.Size = model.Size(size)
	rec.Store = store.String
	rec.Season = model.Season(season)
	rec.Occasion = model.Occasion(occasion)
	rec.Notes = notes.String
	rec.Condition = model.Condition(condition)
	rec.Tags = splitTags(tags)
	if purchaseDate.Valid {
		t := purchaseDate.Time
		rec.PurchaseDate = &t
	}
	return &rec, nil
}

func nullableTime(t *time.Time) any {
	if t == nil {
		return nil
	}
	return *t
}

func joinTags(tags []string) string {
	var kept []string
	for _, tag := range tags {
		tag = strings.TrimSpace(tag)
		if tag != "" {
			kept = append(kept, tag)
		}
	}
	return strings.Join(kept, ";")
}

func splitTags(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ";")
	tags := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			tags = append(tags, p)
		}
	}
	if len(tags) == 0 {
		return nil
	}
	return tags
}
