package repositories

import (
	"database/sql"
	"time"

	"saferide/internal/models"
)

type UserRepository interface {
	Create(user *models.User) error
	GetByID(id int) (*models.User, error)
	GetByEmail(email string) (*models.User, error)
	Update(user *models.User) error
	UpdateLocation(id int, latitude, longitude float64) error
	UpdatePassword(id int, passwordHash string) error
	Delete(id int) error
	List(limit, offset int) ([]*models.User, error)
	Exists(id int) (bool, error)

	// refresh helpers
	UpdateRefresh(userID int, token string, expiresAt time.Time) error
	RotateRefresh(oldToken, newToken string, newExpiresAt time.Time) (*models.User, error)
	ClearRefresh(userID int) error
	GetByRefreshToken(token string) (*models.User, error)
}

type userRepository struct {
	DB *sql.DB
}

func NewUserRepository(db *sql.DB) UserRepository {
	return &userRepository{DB: db}
}

func (r *userRepository) Create(user *models.User) error {
	const q = `
		INSERT INTO users (
			username, email, password_hash, role_key, city, phone,
			latitude, longitude,
			refresh_token, refresh_expires_at, refresh_revoked
		)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,NULL,NULL,FALSE)
		RETURNING id, created_at, updated_at
	`
	return r.DB.QueryRow(q,
		user.Username,
		user.Email,
		user.PasswordHash,
		user.RoleKey,
		user.City,
		nullString(user.Phone),
		user.Latitude,
		user.Longitude,
	).Scan(&user.ID, &user.CreatedAt, &user.UpdatedAt)
}

func (r *userRepository) GetByID(id int) (*models.User, error) {
	const q = `
		SELECT
			id, username, email, password_hash, role_key, city, phone,
			latitude, longitude,
			refresh_token, refresh_expires_at, refresh_revoked,
			created_at, updated_at
		FROM users
		WHERE id = $1
	`
	return r.scanOne(r.DB.QueryRow(q, id))
}

func (r *userRepository) GetByEmail(email string) (*models.User, error) {
	const q = `
		SELECT
			id, username, email, password_hash, role_key, city, phone,
			latitude, longitude,
			refresh_token, refresh_expires_at, refresh_revoked,
			created_at, updated_at
		FROM users
		WHERE email = $1
	`
	return r.scanOne(r.DB.QueryRow(q, email))
}

func (r *userRepository) scanOne(row *sql.Row) (*models.User, error) {
	u := &models.User{}
	var (
		phone sql.NullString
		lat   sql.NullFloat64
		lng   sql.NullFloat64
		rt    sql.NullString
		rte   sql.NullTime
		rr    sql.NullBool
	)
	err := row.Scan(
		&u.ID, &u.Username, &u.Email, &u.PasswordHash, &u.RoleKey, &u.City, &phone,
		&lat, &lng,
		&rt, &rte, &rr,
		&u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if phone.Valid {
		u.Phone = phone.String
	}
	if lat.Valid {
		v := lat.Float64
		u.Latitude = &v
	}
	if lng.Valid {
		v := lng.Float64
		u.Longitude = &v
	}
	if rt.Valid {
		s := rt.String
		u.RefreshToken = &s
	}
	if rte.Valid {
		t := rte.Time
		u.RefreshExpiresAt = &t
	}
	if rr.Valid {
		u.RefreshRevoked = rr.Bool
	}
	return u, nil
}

func (r *userRepository) Update(user *models.User) error {
	const q = `
		UPDATE users
		SET
			username=$1,
			email=$2,
			role_key=$3,
			city=$4,
			phone=$5,
			updated_at=NOW()
		WHERE id=$6
	`
	_, err := r.DB.Exec(q,
		user.Username,
		user.Email,
		user.RoleKey,
		user.City,
		nullString(user.Phone),
		user.ID,
	)
	return err
}

func (r *userRepository) UpdateLocation(id int, latitude, longitude float64) error {
	_, err := r.DB.Exec(`
		UPDATE users
		SET latitude=$1, longitude=$2, updated_at=NOW()
		WHERE id=$3
	`, latitude, longitude, id)
	return err
}

func (r *userRepository) UpdatePassword(id int, passwordHash string) error {
	_, err := r.DB.Exec(`
		UPDATE users
		SET password_hash=$1, updated_at=NOW()
		WHERE id=$2
	`, passwordHash, id)
	return err
}

// Delete cascades to chat membership, messages and orders via FK constraints.
func (r *userRepository) Delete(id int) error {
	_, err := r.DB.Exec(`DELETE FROM users WHERE id=$1`, id)
	return err
}

func (r *userRepository) List(limit, offset int) ([]*models.User, error) {
	const q = `
		SELECT
			id, username, email, role_key, city, phone,
			latitude, longitude, created_at, updated_at
		FROM users
		ORDER BY id
		LIMIT $1 OFFSET $2
	`
	rows, err := r.DB.Query(q, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var res []*models.User
	for rows.Next() {
		u := &models.User{}
		var (
			phone sql.NullString
			lat   sql.NullFloat64
			lng   sql.NullFloat64
		)
		if err := rows.Scan(
			&u.ID, &u.Username, &u.Email, &u.RoleKey, &u.City, &phone,
			&lat, &lng, &u.CreatedAt, &u.UpdatedAt,
		); err != nil {
			return nil, err
		}
		if phone.Valid {
			u.Phone = phone.String
		}
		if lat.Valid {
			v := lat.Float64
			u.Latitude = &v
		}
		if lng.Valid {
			v := lng.Float64
			u.Longitude = &v
		}
		res = append(res, u)
	}
	return res, rows.Err()
}

func (r *userRepository) Exists(id int) (bool, error) {
	var dummy int
	err := r.DB.QueryRow(`SELECT 1 FROM users WHERE id=$1`, id).Scan(&dummy)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// ===== refresh helpers =====

func (r *userRepository) UpdateRefresh(userID int, token string, expiresAt time.Time) error {
	const q = `
		UPDATE users
		SET refresh_token=$1, refresh_expires_at=$2, refresh_revoked=FALSE
		WHERE id=$3
	`
	_, err := r.DB.Exec(q, token, expiresAt, userID)
	return err
}

func (r *userRepository) RotateRefresh(oldToken, newToken string, newExpiresAt time.Time) (*models.User, error) {
	const q = `
		UPDATE users
		SET refresh_token=$1, refresh_expires_at=$2, refresh_revoked=FALSE
		WHERE refresh_token=$3
		RETURNING
			id, username, email, password_hash, role_key, city, phone,
			latitude, longitude,
			refresh_token, refresh_expires_at, refresh_revoked,
			created_at, updated_at
	`
	return r.scanOne(r.DB.QueryRow(q, newToken, newExpiresAt, oldToken))
}

func (r *userRepository) ClearRefresh(userID int) error {
	_, err := r.DB.Exec(`
		UPDATE users
		SET refresh_token=NULL, refresh_expires_at=NULL, refresh_revoked=TRUE
		WHERE id=$1
	`, userID)
	return err
}

func (r *userRepository) GetByRefreshToken(token string) (*models.User, error) {
	const q = `
		SELECT
			id, username, email, password_hash, role_key, city, phone,
			latitude, longitude,
			refresh_token, refresh_expires_at, refresh_revoked,
			created_at, updated_at
		FROM users
		WHERE refresh_token = $1
	`
	return r.scanOne(r.DB.QueryRow(q, token))
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
