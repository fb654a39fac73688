// Package repo provides postgres access for candidates
package repo

import (
	"context"
	"time"

	"gitinsight/internal/modkit/repokit"
	perr "gitinsight/internal/platform/errors"
)

// Repo is the minimal persistence surface for candidates
type Repo interface {
	Upsert(ctx context.Context, in UpsertInput) (Row, error)
	List(ctx context.Context) ([]Row, error)
	Delete(ctx context.Context, id int64) error
}

// UpsertInput carries the columns written on save
type UpsertInput struct {
	Username  string
	Name      string
	AvatarURL string
	Bio       string
	Summary   string
}

// Row represents a candidates table row
type Row struct {
	ID        int64
	Username  string
	Name      string
	AvatarURL string
	Bio       string
	Summary   string
	SavedAt   time.Time
}

type (
	// PG is a binder that can bind the repo to a Queryer or TxRunner
	PG struct{}
	// queries implements the Repo interface
	queries struct{ q repokit.Queryer }
)

// NewPG returns a binder that can bind the repo to a Queryer or TxRunner
func NewPG() repokit.Binder[Repo] { return PG{} }

// Bind wires a Queryer to the repo
func (PG) Bind(q repokit.Queryer) Repo { return &queries{q: q} }

// EnsureSchema creates the candidates table when it does not exist yet
func EnsureSchema(ctx context.Context, q repokit.Queryer) error {
	const sql = `
create table if not exists candidates (
	id bigint generated always as identity primary key,
	username text not null unique,
	name text,
	avatar_url text,
	bio text,
	summary varchar(2000) not null,
	saved_at timestamptz not null default now()
)
`
	if _, err := q.Exec(ctx, sql); err != nil {
		return perr.FromPostgresWithField(err, "ensure candidates")
	}
	return nil
}

const candidateCols = `id, username, coalesce(name, ''), coalesce(avatar_url, ''), coalesce(bio, ''), summary, saved_at`

func scanRow(r repokit.Row) (Row, error) {
	var out Row
	err := r.Scan(&out.ID, &out.Username, &out.Name, &out.AvatarURL, &out.Bio, &out.Summary, &out.SavedAt)
	return out, err
}

func (r *queries) Upsert(ctx context.Context, in UpsertInput) (Row, error) {
	const sql = `
insert into candidates (username, name, avatar_url, bio, summary)
values ($1, nullif($2, ''), nullif($3, ''), nullif($4, ''), $5)
on conflict (username) do update set
	name = excluded.name,
	avatar_url = excluded.avatar_url,
	bio = excluded.bio,
	summary = excluded.summary,
	saved_at = now()
returning ` + candidateCols

	row := r.q.QueryRow(ctx, sql, in.Username, in.Name, in.AvatarURL, in.Bio, in.Summary)
	out, err := scanRow(row)
	if err != nil {
		return Row{}, perr.FromPostgresWithField(err, "upsert candidate")
	}
	return out, nil
}

func (r *queries) List(ctx context.Context) ([]Row, error) {
	const sql = `
select ` + candidateCols + `
from candidates
order by saved_at desc, id desc
`
	rows, err := r.q.Query(ctx, sql)
	if err != nil {
		return nil, perr.FromPostgres(err, "list candidates")
	}
	defer rows.Close()

	var out []Row
	for rows.Next() {
		rr, err := scanRow(rows)
		if err != nil {
			return nil, perr.FromPostgres(err, "scan candidate")
		}
		out = append(out, rr)
	}
	return out, rows.Err()
}

func (r *queries) Delete(ctx context.Context, id int64) error {
	// idempotent, deleting a missing id is a no-op
	const sql = `delete from candidates where id = $1`
	if _, err := r.q.Exec(ctx, sql, id); err != nil {
		return perr.FromPostgres(err, "delete candidate")
	}
	return nil
}
