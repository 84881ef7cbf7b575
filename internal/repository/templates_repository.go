package repository

import (
	"context"
	"errors"
	"log"

	"github.com/bytedance/sonic"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	errorvalues "github.com/granger49/Protocol/internal/error_values"
	"github.com/granger49/Protocol/pkg/cleanup"
	"github.com/granger49/Protocol/pkg/entity"
)

type TemplatesRepository struct {
	conn PgConnection
}

func NewTemplatesRepo(cfg DBConfig) *TemplatesRepository {
	pool, err := pgxpool.New(context.Background(), cfg.ConnString())
	if err != nil {
		log.Fatal("creating connection for templatesRepo error: " + err.Error())
	}
	err = pool.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for templatesRepo: " + err.Error())
	}
	cleanup.Register(&cleanup.Job{
		Name: "closing pgxpool",
		F: func() error {
			pool.Close()
			return nil
		},
	})
	return &TemplatesRepository{
		conn: pool,
	}
}

func NewTemplatesRepoWithConn(conn PgConnection) *TemplatesRepository {
	err := conn.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for templatesRepo: " + err.Error())
	}
	return &TemplatesRepository{
		conn: conn,
	}
}

// Create inserts the template. When the new template is requested active, all
// other templates of the owner are deactivated first; both writes share one
// transaction so the single-active invariant holds even on failure.
func (tr *TemplatesRepository) Create(ctx context.Context, template *entity.Template) (*entity.Template, error) {
	scheduleJSON, err := sonic.ConfigDefault.Marshal(template.Schedule)
	if err != nil {
		return nil, errors.New("marshalling schedule error: " + err.Error())
	}
	tx, err := tr.conn.Begin(ctx)
	if err != nil {
		return nil, errors.New("beginning template creation tx error: " + err.Error())
	}
	defer tx.Rollback(ctx)
	if template.IsActive {
		_, err = tx.Exec(ctx, `UPDATE workout_templates SET is_active = FALSE, updated_at = NOW() WHERE user_id = $1 AND is_active;`,
			template.UserID,
		)
		if err != nil {
			return nil, errors.New("deactivating templates error: " + err.Error())
		}
	}
	row := tx.QueryRow(ctx, `INSERT INTO workout_templates (user_id, name, description, schedule, is_active, created_by, parent_template_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING id, version, created_at, updated_at;`,
		template.UserID,
		template.Name,
		template.Description,
		scheduleJSON,
		template.IsActive,
		template.CreatedBy,
		template.ParentTemplateID,
	)
	created := *template
	if err = row.Scan(&created.ID, &created.Version, &created.CreatedAt, &created.UpdatedAt); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			// FK violation
			case "23503":
				return nil, errorvalues.ErrOwnerNotFound
			}
		}
		return nil, errors.New("creating template db error: " + err.Error())
	}
	if err = tx.Commit(ctx); err != nil {
		return nil, errors.New("committing template creation error: " + err.Error())
	}
	return &created, nil
}

func (tr *TemplatesRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Template, error) {
	var (
		template     entity.Template
		scheduleJSON []byte
	)
	template.ID = id
	row := tr.conn.QueryRow(ctx, `SELECT user_id, name, description, schedule, is_active, created_by, version, parent_template_id, created_at, updated_at
		FROM workout_templates WHERE id = $1;`, id)
	err := row.Scan(&template.UserID, &template.Name, &template.Description, &scheduleJSON, &template.IsActive,
		&template.CreatedBy, &template.Version, &template.ParentTemplateID, &template.CreatedAt, &template.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrTemplateNotFound
		}
		return nil, errors.New("getting template by id error: " + err.Error())
	}
	if err = sonic.ConfigDefault.Unmarshal(scheduleJSON, &template.Schedule); err != nil {
		return nil, errors.New("unmarshalling schedule error: " + err.Error())
	}
	return &template, nil
}

func (tr *TemplatesRepository) GetByUserID(ctx context.Context, uid uuid.UUID) ([]*entity.Template, error) {
	templates := make([]*entity.Template, 0)
	rows, err := tr.conn.Query(ctx, `SELECT id, user_id, name, description, schedule, is_active, created_by, version, parent_template_id, created_at, updated_at
		FROM workout_templates WHERE user_id = $1 ORDER BY is_active DESC, created_at DESC;`, uid)
	if err != nil {
		return nil, errors.New("getting templates by uid error: " + err.Error())
	}
	defer rows.Close()
	for rows.Next() {
		var (
			t            entity.Template
			scheduleJSON []byte
		)
		err = rows.Scan(&t.ID, &t.UserID, &t.Name, &t.Description, &scheduleJSON, &t.IsActive,
			&t.CreatedBy, &t.Version, &t.ParentTemplateID, &t.CreatedAt, &t.UpdatedAt)
		if err != nil {
			return nil, errors.New("unmarshalling template error: " + err.Error())
		}
		if err = sonic.ConfigDefault.Unmarshal(scheduleJSON, &t.Schedule); err != nil {
			return nil, errors.New("unmarshalling schedule error: " + err.Error())
		}
		templates = append(templates, &t)
	}
	if rows.Err() != nil {
		return nil, errors.New("unexpected error after scanning: " + rows.Err().Error())
	}
	return templates, nil
}

func (tr *TemplatesRepository) GetActive(ctx context.Context, uid uuid.UUID) (*entity.Template, error) {
	var (
		template     entity.Template
		scheduleJSON []byte
	)
	template.UserID = uid
	row := tr.conn.QueryRow(ctx, `SELECT id, name, description, schedule, is_active, created_by, version, parent_template_id, created_at, updated_at
		FROM workout_templates WHERE user_id = $1 AND is_active;`, uid)
	err := row.Scan(&template.ID, &template.Name, &template.Description, &scheduleJSON, &template.IsActive,
		&template.CreatedBy, &template.Version, &template.ParentTemplateID, &template.CreatedAt, &template.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrTemplateNotFound
		}
		return nil, errors.New("getting active template error: " + err.Error())
	}
	if err = sonic.ConfigDefault.Unmarshal(scheduleJSON, &template.Schedule); err != nil {
		return nil, errors.New("unmarshalling schedule error: " + err.Error())
	}
	return &template, nil
}

// Activate deactivates every template of uid and activates exactly id. Both
// writes share one transaction.
func (tr *TemplatesRepository) Activate(ctx context.Context, uid, id uuid.UUID) (*entity.Template, error) {
	tx, err := tr.conn.Begin(ctx)
	if err != nil {
		return nil, errors.New("beginning template activation tx error: " + err.Error())
	}
	defer tx.Rollback(ctx)
	_, err = tx.Exec(ctx, `UPDATE workout_templates SET is_active = FALSE, updated_at = NOW() WHERE user_id = $1 AND is_active;`, uid)
	if err != nil {
		return nil, errors.New("deactivating templates error: " + err.Error())
	}
	var (
		template     entity.Template
		scheduleJSON []byte
	)
	template.ID = id
	template.UserID = uid
	row := tx.QueryRow(ctx, `UPDATE workout_templates SET is_active = TRUE, updated_at = NOW() WHERE id = $1 AND user_id = $2
		RETURNING name, description, schedule, is_active, created_by, version, parent_template_id, created_at, updated_at;`, id, uid)
	err = row.Scan(&template.Name, &template.Description, &scheduleJSON, &template.IsActive,
		&template.CreatedBy, &template.Version, &template.ParentTemplateID, &template.CreatedAt, &template.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrTemplateNotFound
		}
		return nil, errors.New("activating template error: " + err.Error())
	}
	if err = sonic.ConfigDefault.Unmarshal(scheduleJSON, &template.Schedule); err != nil {
		return nil, errors.New("unmarshalling schedule error: " + err.Error())
	}
	if err = tx.Commit(ctx); err != nil {
		return nil, errors.New("committing template activation error: " + err.Error())
	}
	return &template, nil
}

func (tr *TemplatesRepository) Delete(ctx context.Context, uid, id uuid.UUID) error {
	ct, err := tr.conn.Exec(ctx, `DELETE FROM workout_templates WHERE id = $1 AND user_id = $2;`, id, uid)
	if err != nil {
		return errors.New("error deleting template: " + err.Error())
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrTemplateNotFound
	}
	return nil
}

func (tr *TemplatesRepository) CountByUserID(ctx context.Context, uid uuid.UUID) (int, error) {
	row := tr.conn.QueryRow(ctx, `SELECT COUNT(*) FROM workout_templates WHERE user_id = $1;`, uid)
	var count int
	if err := row.Scan(&count); err != nil {
		return 0, errors.New("error counting templates: " + err.Error())
	}
	return count, nil
}
