package datastore

import (
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/huecraft/huecraft/internal/models"
)

// BrandRepository stores and retrieves brand colour collections.
type BrandRepository interface {
	Create(brand models.BrandCollection) (models.BrandCollection, error)
	Get(sessionID, id string) (models.BrandCollection, error)
	ListBySession(sessionID string, includeArchived bool) ([]models.BrandCollection, error)
	Update(brand models.BrandCollection) (models.BrandCollection, error)
	Delete(sessionID, id string) error
}

// BrandDatabase is the Postgres BrandRepository.
type BrandDatabase struct {
	database *sql.DB
}

// NewBrandDatabase wraps a database handle in a BrandDatabase.
func NewBrandDatabase(db *sql.DB) BrandDatabase {
	return BrandDatabase{database: db}
}

func (pgdb BrandDatabase) Create(brand models.BrandCollection) (models.BrandCollection, error) {
	db := pgdb.database

	primary, secondary, err := encodeBrandColors(brand)
	if err != nil {
		return brand, err
	}

	_, insertErr := db.Exec(`
		INSERT INTO brand_collections (
			id,
			name,
			description,
			logo_url,
			primary_colors,
			secondary_colors,
			project_type,
			client_name,
			session_id,
			is_archived,
			created_at,
			updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`,
		brand.ID,
		brand.Name,
		brand.Description,
		brand.LogoURL,
		primary,
		secondary,
		brand.ProjectType,
		brand.ClientName,
		brand.SessionID,
		brand.IsArchived,
		brand.CreatedAt,
		brand.UpdatedAt,
	)

	if insertErr != nil {
		return brand, insertErr
	}

	return brand, nil
}

func encodeBrandColors(brand models.BrandCollection) (primary, secondary []byte, err error) {
	primary, err = json.Marshal(brand.PrimaryColors)
	if err != nil {
		return nil, nil, fmt.Errorf("error encoding primary colors %v", err)
	}
	if brand.SecondaryColors == nil {
		brand.SecondaryColors = []string{}
	}
	secondary, err = json.Marshal(brand.SecondaryColors)
	if err != nil {
		return nil, nil, fmt.Errorf("error encoding secondary colors %v", err)
	}
	return primary, secondary, nil
}

func (pgdb BrandDatabase) Get(sessionID, id string) (models.BrandCollection, error) {
	db := pgdb.database

	row := db.QueryRow(`
		SELECT id, name, description, logo_url, primary_colors, secondary_colors,
		       project_type, client_name, session_id, is_archived, created_at, updated_at
		FROM brand_collections
		WHERE id = $1 AND session_id = $2`,
		id, sessionID,
	)

	var b models.BrandCollection
	var primary, secondary []byte

	scanErr := row.Scan(&b.ID, &b.Name, &b.Description, &b.LogoURL, &primary, &secondary,
		&b.ProjectType, &b.ClientName, &b.SessionID, &b.IsArchived, &b.CreatedAt, &b.UpdatedAt)
	if scanErr != nil {
		if scanErr == sql.ErrNoRows {
			return b, NoRowsError{Entity: "brand_collections", Err: scanErr}
		}
		return b, scanErr
	}

	if err := decodeBrandColors(&b, primary, secondary); err != nil {
		return b, err
	}

	return b, nil
}

func decodeBrandColors(b *models.BrandCollection, primary, secondary []byte) error {
	if err := json.Unmarshal(primary, &b.PrimaryColors); err != nil {
		return fmt.Errorf("error decoding primary colors %v", err)
	}
	if len(secondary) > 0 {
		if err := json.Unmarshal(secondary, &b.SecondaryColors); err != nil {
			return fmt.Errorf("error decoding secondary colors %v", err)
		}
	}
	return nil
}

func (pgdb BrandDatabase) ListBySession(sessionID string, includeArchived bool) ([]models.BrandCollection, error) {
	db := pgdb.database

	query := `
		SELECT id, name, description, logo_url, primary_colors, secondary_colors,
		       project_type, client_name, session_id, is_archived, created_at, updated_at
		FROM brand_collections
		WHERE session_id = $1`
	if !includeArchived {
		query += ` AND is_archived = FALSE`
	}
	query += ` ORDER BY created_at DESC`

	rows, err := db.Query(query, sessionID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	brands := []models.BrandCollection{}
	for rows.Next() {
		var b models.BrandCollection
		var primary, secondary []byte
		if err := rows.Scan(&b.ID, &b.Name, &b.Description, &b.LogoURL, &primary, &secondary,
			&b.ProjectType, &b.ClientName, &b.SessionID, &b.IsArchived, &b.CreatedAt, &b.UpdatedAt); err != nil {
			return nil, err
		}
		if err := decodeBrandColors(&b, primary, secondary); err != nil {
			return nil, err
		}
		brands = append(brands, b)
	}

	return brands, rows.Err()
}

func (pgdb BrandDatabase) Update(brand models.BrandCollection) (models.BrandCollection, error) {
	db := pgdb.database

	primary, secondary, err := encodeBrandColors(brand)
	if err != nil {
		return brand, err
	}

	result, updateErr := db.Exec(`
		UPDATE brand_collections
		SET name = $1, description = $2, logo_url = $3, primary_colors = $4,
		    secondary_colors = $5, project_type = $6, client_name = $7,
		    is_archived = $8, updated_at = $9
		WHERE id = $10 AND session_id = $11`,
		brand.Name,
		brand.Description,
		brand.LogoURL,
		primary,
		secondary,
		brand.ProjectType,
		brand.ClientName,
		brand.IsArchived,
		brand.UpdatedAt,
		brand.ID,
		brand.SessionID,
	)
	if updateErr != nil {
		return brand, updateErr
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return brand, err
	}
	if affected == 0 {
		return brand, NoRowsError{Entity: "brand_collections", Err: sql.ErrNoRows}
	}

	return brand, nil
}

func (pgdb BrandDatabase) Delete(sessionID, id string) error {
	db := pgdb.database

	result, err := db.Exec(`
		DELETE FROM brand_collections
		WHERE id = $1 AND session_id = $2`,
		id, sessionID,
	)
	if err != nil {
		return err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return NoRowsError{Entity: "brand_collections", Err: sql.ErrNoRows}
	}

	return nil
}
