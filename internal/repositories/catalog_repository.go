package repositories

import (
	"database/sql"
	"errors"

	"github.com/Masterminds/squirrel"

	intconfig "voyago/internal/config"
	intdb "voyago/internal/db"
	"voyago/internal/domain/models"
)

type CatalogRepository struct {
	DB *sql.DB
}

func (r CatalogRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

// GetExperienceByID returns the experience, or found=false when missing.
func (r CatalogRepository) GetExperienceByID(id int64) (models.Experience, bool, error) {
	query, args, err := intdb.Select("id", "title", "location", "price", "currency").
		From("experiences").
		Where(squirrel.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return models.Experience{}, false, err
	}

	var (
		exp      models.Experience
		price    sql.NullFloat64
		currency sql.NullString
	)
	err = r.db().QueryRow(query, args...).Scan(&exp.ID, &exp.Title, &exp.Location, &price, &currency)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Experience{}, false, nil
		}
		return models.Experience{}, false, err
	}
	if price.Valid {
		exp.Price = &price.Float64
	}
	exp.Currency = currency.String
	return exp, true, nil
}

// GetActivityByID returns the activity, or found=false when missing.
func (r CatalogRepository) GetActivityByID(id int64) (models.Activity, bool, error) {
	query, args, err := intdb.Select("id", "experience_id", "name", "price").
		From("activities").
		Where(squirrel.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return models.Activity{}, false, err
	}

	var (
		act   models.Activity
		price sql.NullFloat64
	)
	err = r.db().QueryRow(query, args...).Scan(&act.ID, &act.ExperienceID, &act.Name, &price)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Activity{}, false, nil
		}
		return models.Activity{}, false, err
	}
	if price.Valid {
		act.Price = &price.Float64
	}
	return act, true, nil
}

// ListExperiences returns the newest experiences first, capped by limit.
func (r CatalogRepository) ListExperiences(limit uint64) ([]models.Experience, error) {
	if limit == 0 {
		limit = 50
	}
	query, args, err := intdb.Select("id", "title", "location", "price", "currency").
		From("experiences").
		OrderBy("id DESC").
		Limit(limit).
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db().Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.Experience{}
	for rows.Next() {
		var (
			exp      models.Experience
			price    sql.NullFloat64
			currency sql.NullString
		)
		if err := rows.Scan(&exp.ID, &exp.Title, &exp.Location, &price, &currency); err != nil {
			return nil, err
		}
		if price.Valid {
			exp.Price = &price.Float64
		}
		exp.Currency = currency.String
		out = append(out, exp)
	}
	return out, rows.Err()
}

// InsertExperience stores a catalog entry and returns its ID.
func (r CatalogRepository) InsertExperience(exp models.Experience) (int64, error) {
	var price any
	if exp.Price != nil {
		price = *exp.Price
	}
	query, args, err := intdb.Insert("experiences").
		Columns("title", "location", "price", "currency").
		Values(exp.Title, exp.Location, price, intdb.NullIfEmpty(exp.Currency)).
		ToSql()
	if err != nil {
		return 0, err
	}
	res, err := r.db().Exec(query, args...)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

// InsertActivity stores an activity under an experience and returns its ID.
func (r CatalogRepository) InsertActivity(act models.Activity) (int64, error) {
	var price any
	if act.Price != nil {
		price = *act.Price
	}
	query, args, err := intdb.Insert("activities").
		Columns("experience_id", "name", "price").
		Values(act.ExperienceID, act.Name, price).
		ToSql()
	if err != nil {
		return 0, err
	}
	res, err := r.db().Exec(query, args...)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}
