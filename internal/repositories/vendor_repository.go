package repositories

import (
	"database/sql"
	"errors"

	"github.com/Masterminds/squirrel"

	intconfig "voyago/internal/config"
	intdb "voyago/internal/db"
	"voyago/internal/domain/models"
)

type VendorRepository struct {
	DB *sql.DB
}

func (r VendorRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

// GetProfile returns the vendor profile when one is configured. The app
// currently runs single-vendor, so the newest row wins.
func (r VendorRepository) GetProfile() (models.VendorProfile, bool, error) {
	query, args, err := intdb.Select(
		"id", "first_name", "last_name", "company_name", "address", "gst_number", "state", "logo_url",
	).
		From("vendor_profiles").
		OrderBy("id DESC").
		Limit(1).
		ToSql()
	if err != nil {
		return models.VendorProfile{}, false, err
	}

	var (
		v     models.VendorProfile
		state sql.NullString
		logo  sql.NullString
	)
	err = r.db().QueryRow(query, args...).Scan(
		&v.ID, &v.FirstName, &v.LastName, &v.CompanyName, &v.Address, &v.GSTNumber, &state, &logo,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.VendorProfile{}, false, nil
		}
		return models.VendorProfile{}, false, err
	}
	v.State = state.String
	v.LogoURL = logo.String
	return v, true, nil
}

// SaveProfile inserts or updates the single vendor profile.
func (r VendorRepository) SaveProfile(v models.VendorProfile) (models.VendorProfile, error) {
	if v.ID > 0 {
		query, args, err := intdb.Update("vendor_profiles").
			Set("first_name", v.FirstName).
			Set("last_name", v.LastName).
			Set("company_name", v.CompanyName).
			Set("address", v.Address).
			Set("gst_number", v.GSTNumber).
			Set("state", intdb.NullIfEmpty(v.State)).
			Set("logo_url", intdb.NullIfEmpty(v.LogoURL)).
			Where(squirrel.Eq{"id": v.ID}).
			ToSql()
		if err != nil {
			return models.VendorProfile{}, err
		}
		if _, err := r.db().Exec(query, args...); err != nil {
			return models.VendorProfile{}, err
		}
		return v, nil
	}

	query, args, err := intdb.Insert("vendor_profiles").
		Columns("first_name", "last_name", "company_name", "address", "gst_number", "state", "logo_url").
		Values(
			v.FirstName,
			v.LastName,
			v.CompanyName,
			v.Address,
			v.GSTNumber,
			intdb.NullIfEmpty(v.State),
			intdb.NullIfEmpty(v.LogoURL),
		).
		ToSql()
	if err != nil {
		return models.VendorProfile{}, err
	}
	res, err := r.db().Exec(query, args...)
	if err != nil {
		return models.VendorProfile{}, err
	}
	v.ID, err = res.LastInsertId()
	if err != nil {
		return models.VendorProfile{}, err
	}
	return v, nil
}
