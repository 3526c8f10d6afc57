package repositories

import (
	"context"

	"stock-backend/internal/apperrors"
	"stock-backend/internal/models"

	"github.com/jackc/pgx/v5/pgxpool"
)

type UserRepository struct {
	DB *pgxpool.Pool
}

func NewUserRepository(db *pgxpool.Pool) *UserRepository {
	return &UserRepository{DB: db}
}

const userColumns = `id, username, password_hash, is_staff, is_admin, can_encode,
	firstname, middle_initial, lastname, gender, position,
	is_active, created_at, modified_at`

func (r *UserRepository) Create(ctx context.Context, u *models.UserAccount) error {
	err := r.DB.QueryRow(ctx,
		`INSERT INTO user_accounts(username, password_hash, is_staff, is_admin, can_encode,
                                   firstname, middle_initial, lastname, gender, position)
         VALUES($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
         RETURNING id, is_active, created_at, modified_at`,
		u.Username, u.PasswordHash, u.IsStaff, u.IsAdmin, u.CanEncode,
		u.Firstname, u.MiddleInitial, u.Lastname, u.Gender, u.Position,
	).Scan(&u.ID, &u.IsActive, &u.CreatedAt, &u.ModifiedAt)
	return apperrors.FromPg(err)
}

func (r *UserRepository) Get(ctx context.Context, id int) (*models.UserAccount, error) {
	row := r.DB.QueryRow(ctx,
		`SELECT `+userColumns+` FROM user_accounts WHERE id=$1`, id)
	return scanUser(row)
}

func (r *UserRepository) GetByUsername(ctx context.Context, username string) (*models.UserAccount, error) {
	row := r.DB.QueryRow(ctx,
		`SELECT `+userColumns+` FROM user_accounts WHERE username=$1`, username)
	return scanUser(row)
}

func (r *UserRepository) List(ctx context.Context) ([]*models.UserAccount, error) {
	rows, err := r.DB.Query(ctx,
		`SELECT `+userColumns+` FROM user_accounts ORDER BY username`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []*models.UserAccount
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	return users, rows.Err()
}

func (r *UserRepository) Update(ctx context.Context, u *models.UserAccount) error {
	tag, err := r.DB.Exec(ctx,
		`UPDATE user_accounts
         SET password_hash=$1, is_staff=$2, is_admin=$3, can_encode=$4,
             firstname=$5, middle_initial=$6, lastname=$7, gender=$8, position=$9,
             is_active=$10, modified_at=CURRENT_TIMESTAMP
         WHERE id=$11`,
		u.PasswordHash, u.IsStaff, u.IsAdmin, u.CanEncode,
		u.Firstname, u.MiddleInitial, u.Lastname, u.Gender, u.Position,
		u.IsActive, u.ID)
	if err != nil {
		return apperrors.FromPg(err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NotFoundf("user %d", u.ID)
	}
	return nil
}

func (r *UserRepository) ToggleActive(ctx context.Context, id int) error {
	tag, err := r.DB.Exec(ctx,
		`UPDATE user_accounts SET is_active = NOT is_active, modified_at=CURRENT_TIMESTAMP
         WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NotFoundf("user %d", id)
	}
	return nil
}

func scanUser(row interface{ Scan(dest ...any) error }) (*models.UserAccount, error) {
	var u models.UserAccount
	err := row.Scan(&u.ID, &u.Username, &u.PasswordHash, &u.IsStaff, &u.IsAdmin, &u.CanEncode,
		&u.Firstname, &u.MiddleInitial, &u.Lastname, &u.Gender, &u.Position,
		&u.IsActive, &u.CreatedAt, &u.ModifiedAt)
	if err != nil {
		return nil, apperrors.FromPg(err)
	}
	return &u, nil
}
